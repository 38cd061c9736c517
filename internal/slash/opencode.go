package slash

import (
	"path"

	"github.com/Adamcf123/OpenSpec/internal/templates"
)

// OpenCode writes .opencode/command/openspec-<id>.md.
type OpenCode struct{}

func (OpenCode) ID() string      { return "opencode" }
func (OpenCode) Available() bool { return true }
func (OpenCode) Policy() Policy  { return PolicyMerge }

func (OpenCode) RelativePath(id templates.CommandID) string {
	return path.Join(".opencode", "command", commandName(id)+".md")
}

func (OpenCode) Frontmatter(id templates.CommandID) string {
	return fenced(
		field("agent", "build"),
		field("description", commandSummaries[id]),
	)
}
