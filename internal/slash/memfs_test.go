package slash

import (
	"errors"
	"io/fs"
	"path"

	"github.com/Adamcf123/OpenSpec/internal/templates"
)

// memFS is an in-memory platform.FS that records every write.
type memFS struct {
	files      map[string]string
	writes     []string
	writeErrs  map[string]error
	existsErrs map[string]error
}

func newMemFS() *memFS {
	return &memFS{
		files:      map[string]string{},
		writeErrs:  map[string]error{},
		existsErrs: map[string]error{},
	}
}

func (m *memFS) Exists(p string) (bool, error) {
	if err := m.existsErrs[p]; err != nil {
		return false, err
	}
	_, ok := m.files[p]
	return ok, nil
}

func (m *memFS) ReadFile(p string) (string, error) {
	content, ok := m.files[p]
	if !ok {
		return "", &fs.PathError{Op: "open", Path: p, Err: fs.ErrNotExist}
	}
	return content, nil
}

func (m *memFS) WriteFile(p, content string) error {
	if err := m.writeErrs[p]; err != nil {
		return err
	}
	m.files[p] = content
	m.writes = append(m.writes, p)
	return nil
}

func (m *memFS) MkdirAll(p string) error { return nil }

func (m *memFS) Join(base, rel string) string {
	return path.Join(base, rel)
}

// staticBodies serves the same raw body for every command.
type staticBodies string

func (s staticBodies) Body(id templates.CommandID) (string, error) {
	if !id.Valid() {
		return "", templates.ErrUnknownCommand
	}
	return string(s), nil
}

// brokenBodies fails every lookup.
type brokenBodies struct{}

func (brokenBodies) Body(id templates.CommandID) (string, error) {
	return "", errors.Join(templates.ErrUnknownCommand, errors.New(string(id)))
}
