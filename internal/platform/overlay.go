package platform

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"sync"
)

// Overlay is an FS that reads through to a base FS but keeps every write in
// memory. It backs --dry-run: generators run unchanged and the caller
// inspects Written afterwards. A nil base behaves as an empty disk.
type Overlay struct {
	base FS

	mu    sync.Mutex
	files map[string]string
	dirs  map[string]bool
}

// NewOverlay returns an Overlay over base.
func NewOverlay(base FS) *Overlay {
	return &Overlay{
		base:  base,
		files: map[string]string{},
		dirs:  map[string]bool{},
	}
}

// Exists reports whether path was written to the overlay or exists in base.
func (o *Overlay) Exists(path string) (bool, error) {
	o.mu.Lock()
	_, ok := o.files[path]
	if !ok {
		ok = o.dirs[path]
	}
	o.mu.Unlock()
	if ok || o.base == nil {
		return ok, nil
	}
	return o.base.Exists(path)
}

// ReadFile returns the overlay content for path, falling back to base.
func (o *Overlay) ReadFile(path string) (string, error) {
	o.mu.Lock()
	content, ok := o.files[path]
	o.mu.Unlock()
	if ok {
		return content, nil
	}
	if o.base == nil {
		return "", fmt.Errorf("reading %s: %w", path, fs.ErrNotExist)
	}
	return o.base.ReadFile(path)
}

// WriteFile records content for path without touching base.
func (o *Overlay) WriteFile(path, content string) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.files[path] = content
	return nil
}

// MkdirAll records path as a directory without touching base.
func (o *Overlay) MkdirAll(path string) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.dirs[path] = true
	return nil
}

// Join joins base and the slash-separated rel using the platform separator.
func (o *Overlay) Join(base, rel string) string {
	return filepath.Join(base, filepath.FromSlash(rel))
}

// Written returns the paths written so far, sorted.
func (o *Overlay) Written() []string {
	o.mu.Lock()
	defer o.mu.Unlock()
	paths := make([]string, 0, len(o.files))
	for p := range o.files {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// Dirs returns the directories created so far, sorted.
func (o *Overlay) Dirs() []string {
	o.mu.Lock()
	defer o.mu.Unlock()
	dirs := make([]string, 0, len(o.dirs))
	for d := range o.dirs {
		dirs = append(dirs, d)
	}
	sort.Strings(dirs)
	return dirs
}
