package due

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/nodo/pkg/files"
	"tableflip.dev/nodo/pkg/store"
)

func init() {
	color.NoColor = true
}

var now = time.Date(2024, time.March, 10, 9, 0, 0, 0, time.UTC)

func setup(t *testing.T) *Due {
	t.Helper()
	root := t.TempDir()
	cfg := &store.Config{
		RootDir:            root,
		DateFormat:         files.DefaultDateFormat,
		DefaultFiletype:    "md",
		TempDir:            filepath.Join(root, ".temp"),
		ArchiveDir:         filepath.Join(root, ".archive"),
		OverviewIgnoreDirs: []string{"private"},
	}
	for name, content := range map[string]string{
		"work/soon.md":      "---\ndue_date: 12/03/2024\n---\n\n# Soon\n\n- [x] a\n- [ ] b\n",
		"later.md":          "---\ndue_date: 01/05/2024\n---\n\n# Later\n",
		"late.md":           "---\ndue_date: 01/03/2024\n---\n\n# Late\n",
		"none.md":           "# None\n",
		"private/secret.md": "---\ndue_date: 11/03/2024\n---\n\n# Secret\n",
		".archive/old.md":   "---\ndue_date: 11/03/2024\n---\n\n# Old\n",
		"bad.md":            "---\ndue_date: 11/03/2024\n---\n\n# Bad\n\n<p>html</p>\n",
	} {
		path := filepath.Join(root, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	p, err := store.Load(cfg, nil)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	return &Due{Config: cfg, Persistence: p, Now: func() time.Time { return now }}
}

func targets(t *testing.T, d *Due) string {
	t.Helper()
	entries, err := d.Entries(context.Background(), now)
	if err != nil {
		t.Fatalf("Entries() error = %v", err)
	}
	var got []string
	for _, e := range entries {
		got = append(got, e.Target)
	}
	return strings.Join(got, ",")
}

func TestEntries(t *testing.T) {
	d := setup(t)
	if got, want := targets(t, d), "late,work/soon,later"; got != want {
		t.Errorf("Entries() = %s, want %s", got, want)
	}

	d.Within = "1w"
	if got, want := targets(t, d), "late,work/soon"; got != want {
		t.Errorf("Entries() within 1w = %s, want %s", got, want)
	}

	d.Within = "soon"
	if _, err := d.Entries(context.Background(), now); err == nil {
		t.Errorf("Entries() with a bad window should fail")
	}
}

func TestDo(t *testing.T) {
	d := setup(t)
	var out bytes.Buffer
	d.Out = &out
	d.Calendar = true
	if err := d.Do(context.Background()); err != nil {
		t.Fatalf("Do() error = %v", err)
	}
	got := out.String()
	for _, want := range []string{"Soon", "1/2", "2 days from now", "1 week ago", "March"} {
		if !strings.Contains(got, want) {
			t.Errorf("Do() missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "Secret") || strings.Contains(got, "Old") {
		t.Errorf("Do() listed an ignored nodo:\n%s", got)
	}
}
