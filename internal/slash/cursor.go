package slash

import (
	"path"

	"github.com/Adamcf123/OpenSpec/internal/branding"
	"github.com/Adamcf123/OpenSpec/internal/templates"
)

// Cursor writes .cursor/commands/openspec-<id>.md.
type Cursor struct{}

func (Cursor) ID() string      { return "cursor" }
func (Cursor) Available() bool { return true }
func (Cursor) Policy() Policy  { return PolicyMerge }

func (Cursor) RelativePath(id templates.CommandID) string {
	return path.Join(".cursor", "commands", commandName(id)+".md")
}

func (Cursor) Frontmatter(id templates.CommandID) string {
	name := commandName(id)
	return fenced(
		field("name", "/"+name),
		field("id", name),
		field("category", branding.DisplayName()),
		field("description", commandSummaries[id]),
	)
}

// commandName is the namespaced file stem, e.g. "openspec-apply".
func commandName(id templates.CommandID) string {
	return branding.CommandNamespace() + "-" + string(id)
}
