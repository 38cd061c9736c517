package slash

import (
	"path"

	"github.com/Adamcf123/OpenSpec/internal/templates"
)

// Copilot writes GitHub Copilot prompt files to
// .github/prompts/openspec-<id>.prompt.md.
type Copilot struct{}

func (Copilot) ID() string      { return "copilot" }
func (Copilot) Available() bool { return true }
func (Copilot) Policy() Policy  { return PolicyMerge }

func (Copilot) RelativePath(id templates.CommandID) string {
	return path.Join(".github", "prompts", commandName(id)+".prompt.md")
}

func (Copilot) Frontmatter(id templates.CommandID) string {
	return fenced(field("description", commandSummaries[id]))
}
