package edit

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"tableflip.dev/nodo/pkg/files"
	"tableflip.dev/nodo/pkg/runner"
	"tableflip.dev/nodo/pkg/store"
)

func testConfig(t *testing.T) *store.Config {
	t.Helper()
	root := t.TempDir()
	return &store.Config{
		RootDir:         root,
		DateFormat:      files.DefaultDateFormat,
		DefaultFiletype: "md",
		TempDir:         filepath.Join(root, ".temp"),
		ArchiveDir:      filepath.Join(root, ".archive"),
		Editor:          "vi",
	}
}

// scribble stands in for the editor, appending sloppy markdown.
func scribble(edited *string) func(context.Context, string) error {
	return func(_ context.Context, path string) error {
		*edited = path
		f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return err
		}
		defer f.Close()
		_, err = f.WriteString("\n* [X] written in the editor\n")
		return err
	}
}

func TestEditReformats(t *testing.T) {
	cfg := testConfig(t)
	path := filepath.Join(cfg.RootDir, "inbox.md")
	if err := os.WriteFile(path, []byte("# Inbox\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	var edited string
	e := &Edit{Config: cfg, Target: "inbox", Launch: scribble(&edited)}
	if err := e.Do(context.Background()); err != nil {
		t.Fatalf("Do() error = %v", err)
	}
	if edited != path {
		t.Errorf("editor opened %q, want %q", edited, path)
	}
	got, _ := os.ReadFile(path)
	if want := "# Inbox\n\n- [x] written in the editor\n"; string(got) != want {
		t.Errorf("file = %q, want %q", got, want)
	}
}

func TestEditMissing(t *testing.T) {
	cfg := testConfig(t)
	e := &Edit{Config: cfg, Target: "work/plan", Launch: func(context.Context, string) error {
		t.Fatal("editor launched for a missing nodo")
		return nil
	}}
	var missing *runner.TargetMissingError
	if err := e.Do(context.Background()); !errors.As(err, &missing) {
		t.Fatalf("Do() error = %v, want TargetMissingError", err)
	}

	var edited string
	e = &Edit{Config: cfg, Target: "work/plan", Create: true, Launch: scribble(&edited)}
	if err := e.Do(context.Background()); err != nil {
		t.Fatalf("Do() with create error = %v", err)
	}
	got, _ := os.ReadFile(filepath.Join(cfg.RootDir, "work", "plan.md"))
	if want := "# plan\n\n- [x] written in the editor\n"; string(got) != want {
		t.Errorf("file = %q, want %q", got, want)
	}
}

func TestEditTemp(t *testing.T) {
	cfg := testConfig(t)
	now := time.Date(2024, time.March, 10, 9, 30, 0, 0, time.UTC)
	var edited string
	e := &Edit{Config: cfg, Temp: true, Launch: scribble(&edited), Now: func() time.Time { return now }}
	if err := e.Do(context.Background()); err != nil {
		t.Fatalf("Do() error = %v", err)
	}
	if filepath.Dir(edited) != cfg.TempDir || !strings.HasPrefix(filepath.Base(edited), "2024-03-10-093000-") {
		t.Errorf("temp nodo = %q", edited)
	}
	got, _ := os.ReadFile(edited)
	if !strings.HasPrefix(string(got), "# 2024-03-10 09:30:00\n") {
		t.Errorf("temp nodo content = %q", got)
	}

	e = &Edit{Config: cfg, Temp: true, Target: "inbox"}
	if err := e.Do(context.Background()); err == nil {
		t.Errorf("Do() with temp and a target should fail")
	}
}

func TestEditProject(t *testing.T) {
	cfg := testConfig(t)
	if err := os.MkdirAll(filepath.Join(cfg.RootDir, "work"), 0o755); err != nil {
		t.Fatal(err)
	}
	e := &Edit{Config: cfg, Target: "work"}
	if err := e.Do(context.Background()); err == nil {
		t.Errorf("Do() on a project should fail")
	}
}

func TestEditLocal(t *testing.T) {
	cfg := testConfig(t)
	dir := t.TempDir()
	var edited string
	e := &Edit{Config: cfg, Dir: dir, Create: true, Launch: scribble(&edited)}
	if err := e.Do(context.Background()); err != nil {
		t.Fatalf("Do() error = %v", err)
	}
	if edited != filepath.Join(dir, ".nodo.md") {
		t.Errorf("local nodo = %q", edited)
	}
}
