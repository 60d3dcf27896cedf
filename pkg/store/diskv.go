package store

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/nodo/pkg/files"
	"tableflip.dev/nodo/pkg/logger"
	"tableflip.dev/nodo/pkg/nodo"
)

// Persistence defines the persistence contract for nodos below the root
// directory. Targets are slash separated paths without extension.
type Persistence interface {
	Read(target string) (*nodo.Document, error)
	Write(target string, doc *nodo.Document) error
	Erase(target string) error
	Has(target string) bool
	Keys(ctx context.Context) []string
	Watch(ctx context.Context) (<-chan Event, error)
}

// Load creates a Persistence backed by diskv using the provided config. A nil
// log discards watcher diagnostics.
func Load(cfg *Config, log *logger.Logger) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig("")
		if err != nil {
			return nil, err
		}
	}
	h, err := cfg.Handler()
	if err != nil {
		return nil, err
	}
	if log == nil {
		log = logger.Discard()
	}

	return &persistence{
		d: diskv.New(diskv.Options{
			BasePath:          cfg.BasePath(),
			AdvancedTransform: keyToPathTransform,
			InverseTransform:  pathToKeyTransform,
			// nodos are edited outside of this process, never serve stale
			// content from memory
			CacheSizeMax: 0,
			PathPerm:     0o755,
			FilePerm:     0o644,
		}),
		cfg: cfg,
		h:   h,
		log: log,
	}, nil
}

type persistence struct {
	d   *diskv.Diskv
	cfg *Config
	h   files.Handler
	log *logger.Logger
}

func (p *persistence) key(target string) string {
	key := strings.Trim(filepath.ToSlash(target), "/")
	if ext := "." + p.h.Extension(); !strings.HasSuffix(key, ext) {
		key += ext
	}
	return key
}

func (p *persistence) Read(target string) (*nodo.Document, error) {
	val, err := p.d.Read(p.key(target))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", files.ErrRead, err)
	}
	return p.h.Read(bytes.NewReader(val), p.cfg.FileOptions())
}

func (p *persistence) Write(target string, doc *nodo.Document) error {
	var buf bytes.Buffer
	if err := p.h.Write(&buf, doc, p.cfg.FileOptions()); err != nil {
		return err
	}
	if err := p.d.Write(p.key(target), buf.Bytes()); err != nil {
		return fmt.Errorf("%w: %w", files.ErrWrite, err)
	}
	return nil
}

func (p *persistence) Erase(target string) error {
	return p.d.Erase(p.key(target))
}

func (p *persistence) Has(target string) bool {
	return p.d.Has(p.key(target))
}

// Keys lists every nodo target outside the hidden directories, sorted.
func (p *persistence) Keys(ctx context.Context) []string {
	var targets []string
	ext := "." + p.h.Extension()
	for key := range p.d.Keys(ctx.Done()) {
		if !strings.HasSuffix(key, ext) {
			continue
		}
		if p.cfg.IsHiddenDir(filepath.Join(p.cfg.BasePath(), filepath.FromSlash(key))) || hiddenKey(key) {
			continue
		}
		targets = append(targets, strings.TrimSuffix(key, ext))
	}
	sort.Strings(targets)
	return targets
}

// hiddenKey skips dot directories such as .git below the root.
func hiddenKey(key string) bool {
	parts := strings.Split(key, "/")
	for _, part := range parts[:len(parts)-1] {
		if strings.HasPrefix(part, ".") {
			return true
		}
	}
	return false
}

// ReadFile parses the nodo at an arbitrary path with the handler matching
// its extension.
func ReadFile(path string, cfg *Config) (*nodo.Document, error) {
	h, err := handlerFor(path, cfg)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", files.ErrRead, err)
	}
	defer f.Close()
	return h.Read(f, cfg.FileOptions())
}

// Render returns the canonical form of doc for the file at path.
func Render(path string, doc *nodo.Document, cfg *Config) ([]byte, error) {
	h, err := handlerFor(path, cfg)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := h.Write(&buf, doc, cfg.FileOptions()); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteFile writes doc canonically to an arbitrary path.
func WriteFile(path string, doc *nodo.Document, cfg *Config) error {
	data, err := Render(path, doc, cfg)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("%w: %w", files.ErrWrite, err)
	}
	return nil
}

func handlerFor(path string, cfg *Config) (files.Handler, error) {
	if ext := filepath.Ext(path); ext != "" {
		return files.ForExtension(ext)
	}
	return cfg.Handler()
}

func keyToPathTransform(s string) *diskv.PathKey {
	parts := strings.Split(s, "/")
	return &diskv.PathKey{
		Path:     parts[:len(parts)-1],
		FileName: parts[len(parts)-1],
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	return strings.Join(append(append([]string{}, pathKey.Path...), pathKey.FileName), "/")
}
