package overview

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"tableflip.dev/nodo/pkg/files"
	_ "tableflip.dev/nodo/pkg/files/markdown"
	"tableflip.dev/nodo/pkg/nodo"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func tree(t *testing.T) string {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.md"), "# A\n\n- [x] one\n- [ ] two\n")
	writeFile(t, filepath.Join(root, "p", "b.md"), "# B\n\n- [x] one\n- [x] two\n- [ ] three\n    - [x] nested is not counted\n")
	writeFile(t, filepath.Join(root, "p", "q", "c.md"), "# C\n\n- [ ] one\n- [ ] two\n- text\n")
	writeFile(t, filepath.Join(root, "p", "notes.txt"), "- [x] not a nodo\n")
	writeFile(t, filepath.Join(root, ".temp", "scratch.md"), "# S\n\n- [ ] hidden\n")
	return root
}

func hidden(path string) bool {
	return strings.HasPrefix(filepath.Base(path), ".")
}

func TestWalkSums(t *testing.T) {
	root := tree(t)
	n, err := Walk(root, Options{Extension: "md", Ignore: []func(string) bool{hidden}})
	if err != nil {
		t.Fatalf("Walk() error = %v", err)
	}
	if n.Completed != 3 || n.Total != 7 {
		t.Errorf("Walk() = (%d, %d), want (3, 7)", n.Completed, n.Total)
	}
	if len(n.Children) != 2 {
		t.Fatalf("root has %d children, want 2", len(n.Children))
	}
	if n.Children[0].Name != "a" || n.Children[1].Name != "p" {
		t.Errorf("children = %q, %q", n.Children[0].Name, n.Children[1].Name)
	}
	p := n.Children[1]
	if !p.IsDir || p.Completed != 2 || p.Total != 5 {
		t.Errorf("p = %+v", p)
	}
	if len(p.Children) != 2 {
		t.Errorf("p has %d children, want 2 (txt skipped)", len(p.Children))
	}
}

func TestWalkWithoutIgnore(t *testing.T) {
	root := tree(t)
	n, err := Walk(root, Options{Extension: "md"})
	if err != nil {
		t.Fatal(err)
	}
	if n.Completed != 3 || n.Total != 8 {
		t.Errorf("Walk() = (%d, %d), want (3, 8)", n.Completed, n.Total)
	}
}

func TestWalkFailingFileCountsZero(t *testing.T) {
	root := tree(t)
	writeFile(t, filepath.Join(root, "bad.md"), "# Bad\n\n- [x] counted only if readable\n")
	boom := errors.New("boom")
	h, err := files.ForExtension("md")
	if err != nil {
		t.Fatal(err)
	}
	read := func(path string) (*nodo.Document, error) {
		if filepath.Base(path) == "bad.md" {
			return nil, boom
		}
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return h.Read(f, files.Options{})
	}

	n, err := Walk(root, Options{Extension: "md", Read: read, Ignore: []func(string) bool{hidden}})
	if err != nil {
		t.Fatalf("Walk() error = %v", err)
	}
	if n.Completed != 3 || n.Total != 7 {
		t.Errorf("Walk() = (%d, %d), want (3, 7)", n.Completed, n.Total)
	}
	var bad *Node
	for _, c := range n.Children {
		if c.Name == "bad" {
			bad = c
		}
	}
	if bad == nil || !errors.Is(bad.Err, boom) {
		t.Errorf("bad node = %+v", bad)
	}
}

func TestWalkSingleFile(t *testing.T) {
	root := tree(t)
	n, err := Walk(filepath.Join(root, "a.md"), Options{Extension: "md"})
	if err != nil {
		t.Fatal(err)
	}
	if n.IsDir || n.Completed != 1 || n.Total != 2 {
		t.Errorf("Walk(file) = %+v", n)
	}
	if got := n.Percent(); got != 50 {
		t.Errorf("Percent() = %v, want 50", got)
	}
}

func TestWalkMissingRoot(t *testing.T) {
	if _, err := Walk(filepath.Join(t.TempDir(), "missing"), Options{Extension: "md"}); err == nil {
		t.Fatal("Walk() on a missing root should fail")
	}
}

func TestPercentWithoutTasks(t *testing.T) {
	if got := (&Node{}).Percent(); got != 0 {
		t.Errorf("Percent() = %v, want 0", got)
	}
}
