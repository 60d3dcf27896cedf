package store

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LocalName is the base name of the nodo kept next to a repository.
const LocalName = ".nodo"

// BuildPath turns a slash separated target into a path below RootDir. With
// addExt the default filetype extension is appended.
func (c *Config) BuildPath(target string, addExt bool) string {
	p := filepath.Join(c.RootDir, filepath.FromSlash(strings.Trim(target, "/")))
	if addExt {
		p += "." + c.DefaultFiletype
	}
	return p
}

// FindTarget returns the existing path for target, trying it as is first and
// then with the default extension. ok is false when neither exists.
func (c *Config) FindTarget(target string) (path string, isDir bool, ok bool) {
	for _, addExt := range []bool{false, true} {
		p := c.BuildPath(target, addExt)
		if info, err := os.Stat(p); err == nil {
			return p, info.IsDir(), true
		}
	}
	return "", false, false
}

// Target maps a path below RootDir back to its slash separated target,
// dropping the default extension.
func (c *Config) Target(path string) (string, error) {
	rel, err := filepath.Rel(c.RootDir, path)
	if err != nil {
		return "", err
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("store: %s is outside %s", path, c.RootDir)
	}
	if rel == "." {
		return "", nil
	}
	return strings.TrimSuffix(filepath.ToSlash(rel), "."+c.DefaultFiletype), nil
}

// IsHiddenDir reports whether path is the temp or archive directory, or
// lies below one of them.
func (c *Config) IsHiddenDir(path string) bool {
	for _, dir := range []string{c.TempDir, c.ArchiveDir} {
		if dir != "" && within(dir, path) {
			return true
		}
	}
	return false
}

// IsIgnored reports whether path is hidden or one of the configured overview
// ignore dirs, given relative to RootDir.
func (c *Config) IsIgnored(path string) bool {
	if c.IsHiddenDir(path) {
		return true
	}
	for _, d := range c.OverviewIgnoreDirs {
		if within(c.BuildPath(d, false), path) {
			return true
		}
	}
	return false
}

// HiddenFrom is IsHiddenDir for a walk started at root: the temp or archive
// directory only hides path when root lies outside of it.
func (c *Config) HiddenFrom(root, path string) bool {
	for _, dir := range []string{c.TempDir, c.ArchiveDir} {
		if dir != "" && within(dir, path) && !within(dir, root) {
			return true
		}
	}
	return false
}

// IgnoredFrom is IsIgnored for a walk started at root, with the same
// exemption as HiddenFrom for each skipped directory.
func (c *Config) IgnoredFrom(root, path string) bool {
	if c.HiddenFrom(root, path) {
		return true
	}
	for _, d := range c.OverviewIgnoreDirs {
		dir := c.BuildPath(d, false)
		if within(dir, path) && !within(dir, root) {
			return true
		}
	}
	return false
}

func within(dir, path string) bool {
	rel, err := filepath.Rel(filepath.Clean(dir), filepath.Clean(path))
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}

// LocalFile returns the path of the local nodo: at the root of the enclosing
// git work tree when there is one, else in dir. Inside a work tree the name
// is added to .git/info/exclude so it never gets committed.
func (c *Config) LocalFile(dir string) (string, error) {
	name := LocalName + "." + c.DefaultFiletype
	root, ok := gitRoot(dir)
	if !ok {
		return filepath.Join(dir, name), nil
	}
	if err := exclude(filepath.Join(root, ".git", "info", "exclude"), LocalName+".*"); err != nil {
		return "", err
	}
	return filepath.Join(root, name), nil
}

func gitRoot(dir string) (string, bool) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", false
	}
	for {
		if info, err := os.Stat(filepath.Join(dir, ".git")); err == nil && info.IsDir() {
			return dir, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

// exclude appends pattern to an exclude file unless it is already listed.
func exclude(file, pattern string) error {
	f, err := os.Open(file)
	switch {
	case err == nil:
		s := bufio.NewScanner(f)
		for s.Scan() {
			if strings.TrimSpace(s.Text()) == pattern {
				f.Close()
				return nil
			}
		}
		f.Close()
	case !errors.Is(err, os.ErrNotExist):
		return err
	}
	if err := os.MkdirAll(filepath.Dir(file), 0o755); err != nil {
		return fmt.Errorf("store: ensure %s: %w", filepath.Dir(file), err)
	}
	out, err := os.OpenFile(file, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer out.Close()
	_, err = fmt.Fprintln(out, pattern)
	return err
}
