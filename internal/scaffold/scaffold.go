package scaffold

import (
	"bytes"
	"fmt"
	"path"
	"path/filepath"
	"text/template"

	"github.com/Adamcf123/OpenSpec/internal/platform"
	"github.com/Adamcf123/OpenSpec/internal/templates"
)

// Directories created empty under the spec directory.
var emptyDirs = []string{"specs", path.Join("changes", "archive")}

// RootAgentsFile is the project-root pointer file.
const RootAgentsFile = "AGENTS.md"

// Result holds the outcome of a scaffold generation.
type Result struct {
	SpecDir string
	// Files are written paths relative to the project root, slash-separated.
	Files []string
	// Skipped are existing files left untouched.
	Skipped []string
}

// NewProjectContext creates a ProjectContext with defaults filled in. The
// project name falls back to the base name of projectPath.
func NewProjectContext(projectPath, name string) *templates.ProjectContext {
	if name == "" {
		name = filepath.Base(filepath.Clean(projectPath))
	}
	return &templates.ProjectContext{
		ProjectName: name,
		Description: fmt.Sprintf("Spec-driven development workspace for %s.", name),
	}
}

// Generate writes the project templates under projectPath/specDir. Existing
// files are never overwritten.
func Generate(fsys platform.FS, projectPath, specDir string, data *templates.ProjectContext) (*Result, error) {
	tmpls, err := templates.ProjectTemplates()
	if err != nil {
		return nil, err
	}

	result := &Result{SpecDir: specDir}

	for _, tmpl := range tmpls {
		rel := path.Join(specDir, tmpl.Path)
		content := tmpl.Content
		if tmpl.Render {
			content, err = render(tmpl.Path, tmpl.Content, data)
			if err != nil {
				return nil, err
			}
		}
		if err := result.write(fsys, projectPath, rel, content); err != nil {
			return nil, err
		}
	}

	for _, dir := range emptyDirs {
		if err := fsys.MkdirAll(fsys.Join(projectPath, path.Join(specDir, dir))); err != nil {
			return nil, err
		}
	}

	if err := result.write(fsys, projectPath, RootAgentsFile, templates.RootAgentsStub()); err != nil {
		return nil, err
	}

	return result, nil
}

// RefreshAgents rewrites specDir/AGENTS.md with the current instructions.
// It reports whether the file content changed.
func RefreshAgents(fsys platform.FS, projectPath, specDir string) (bool, error) {
	abs := fsys.Join(projectPath, path.Join(specDir, "AGENTS.md"))
	want := templates.AgentsTemplate()

	exists, err := fsys.Exists(abs)
	if err != nil {
		return false, err
	}
	if exists {
		current, err := fsys.ReadFile(abs)
		if err != nil {
			return false, err
		}
		if current == want {
			return false, nil
		}
	}
	if err := fsys.WriteFile(abs, want); err != nil {
		return false, err
	}
	return true, nil
}

func (r *Result) write(fsys platform.FS, projectPath, rel, content string) error {
	abs := fsys.Join(projectPath, rel)
	exists, err := fsys.Exists(abs)
	if err != nil {
		return err
	}
	if exists {
		r.Skipped = append(r.Skipped, rel)
		return nil
	}
	if err := fsys.WriteFile(abs, content); err != nil {
		return err
	}
	r.Files = append(r.Files, rel)
	return nil
}

func render(name, text string, data *templates.ProjectContext) (string, error) {
	tmpl, err := template.New(name).Parse(text)
	if err != nil {
		return "", fmt.Errorf("parsing template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("executing template %s: %w", name, err)
	}
	return buf.String(), nil
}
