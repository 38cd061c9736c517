package templates

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/Adamcf123/OpenSpec/internal/platform"
)

// OverridesDir is the directory under the spec dir where projects can place
// their own command bodies (<id>.md).
const OverridesDir = "overrides"

// WithOverrides layers project-local bodies from dir over base, reading
// through fsys. Every override file is read once here; later edits need a
// new provider. A missing directory or file falls back to base.
func WithOverrides(base BodyProvider, fsys platform.FS, dir string) (BodyProvider, error) {
	m := make(bodyMap)
	for id, p := range OverridePaths(fsys, dir) {
		content, err := fsys.ReadFile(p)
		if err == nil {
			m[id] = content
			continue
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("reading override %s: %w", p, err)
		}
		body, err := base.Body(id)
		if err != nil {
			return nil, err
		}
		m[id] = body
	}
	return m, nil
}

// OverridePaths maps every command id to its override file under dir.
func OverridePaths(fsys platform.FS, dir string) map[CommandID]string {
	paths := make(map[CommandID]string, len(AllCommands()))
	for _, id := range AllCommands() {
		paths[id] = fsys.Join(dir, string(id)+".md")
	}
	return paths
}

// IsOverrideFile reports whether name is the file name of a command override.
func IsOverrideFile(name string) bool {
	for _, id := range AllCommands() {
		if name == string(id)+".md" {
			return true
		}
	}
	return false
}
