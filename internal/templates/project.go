package templates

import (
	"fmt"
	"io/fs"
	"path"
)

// ProjectContext fills the placeholders of project.md.
type ProjectContext struct {
	ProjectName string
	Description string
	TechStack   []string
	Conventions string
}

// Template is one file scaffolded under the spec directory.
type Template struct {
	// Path is slash-separated and relative to the spec directory.
	Path string
	// Content is the raw template text.
	Content string
	// Render marks Content as a text/template taking a ProjectContext.
	Render bool
}

// ProjectTemplates returns the spec directory templates in a fixed order.
func ProjectTemplates() ([]Template, error) {
	specs := []struct {
		src    string
		dst    string
		render bool
	}{
		{"AGENTS.md", "AGENTS.md", false},
		{"project.md.tmpl", "project.md", true},
		{"tasks.md", path.Join("changes", "_template", "tasks.md"), false},
		{"logs-tooling.md", path.Join("logs", "logs-tooling.md"), false},
	}

	out := make([]Template, 0, len(specs))
	for _, s := range specs {
		data, err := fs.ReadFile(projectFS, "project/"+s.src)
		if err != nil {
			return nil, fmt.Errorf("reading embedded template %s: %w", s.src, err)
		}
		out = append(out, Template{Path: s.dst, Content: string(data), Render: s.render})
	}
	return out, nil
}

var (
	agentsTemplate = mustReadProject("AGENTS.md")
	rootAgentsStub = mustReadProject("root-agents.md")
)

// AgentsTemplate returns the openspec/AGENTS.md instructions.
func AgentsTemplate() string {
	return agentsTemplate
}

// RootAgentsStub returns the short AGENTS.md placed at the project root that
// points assistants at openspec/AGENTS.md.
func RootAgentsStub() string {
	return rootAgentsStub
}

func mustReadProject(name string) string {
	data, err := fs.ReadFile(projectFS, "project/"+name)
	if err != nil {
		panic(fmt.Sprintf("templates: missing embedded project template %s: %v", name, err))
	}
	return string(data)
}
