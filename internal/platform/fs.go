package platform

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Permission constants for generated files.
const (
	DirPerm  os.FileMode = 0755
	FilePerm os.FileMode = 0644
)

// FS is the file-system collaborator consumed by the generators.
type FS interface {
	// Exists reports whether path exists. Errors other than "not found"
	// are returned.
	Exists(path string) (bool, error)
	ReadFile(path string) (string, error)
	// WriteFile creates or truncates path, creating parent directories.
	WriteFile(path, content string) error
	// MkdirAll creates path and any missing parents.
	MkdirAll(path string) error
	// Join joins a base directory and a slash-separated relative path.
	Join(base, rel string) string
}

// OS implements FS on the local disk.
type OS struct{}

// Exists reports whether path exists.
func (OS) Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, fmt.Errorf("checking %s: %w", path, err)
}

// ReadFile reads path as text.
func (OS) ReadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), nil
}

// WriteFile writes content to path, creating intermediate directories.
func (OS) WriteFile(path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), DirPerm); err != nil {
		return fmt.Errorf("creating directory for %s: %w", path, err)
	}
	if err := os.WriteFile(path, []byte(content), FilePerm); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// MkdirAll creates path and its parents with DirPerm.
func (OS) MkdirAll(path string) error {
	if err := os.MkdirAll(path, DirPerm); err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	return nil
}

// Join joins base and the slash-separated rel using the platform separator.
func (OS) Join(base, rel string) string {
	return filepath.Join(base, filepath.FromSlash(rel))
}
