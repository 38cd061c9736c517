package slash

import (
	"path"

	"github.com/Adamcf123/OpenSpec/internal/templates"
)

var codexArgumentHints = map[templates.CommandID]string{
	templates.Proposal: "request or feature description",
	templates.Apply:    "change-id",
	templates.Archive:  "change-id",
}

// Codex writes prompts into the user's Codex home (prompts/openspec-<id>.md),
// which is shared by every project on the machine.
type Codex struct {
	home string
}

// NewCodex returns the Codex tool rooted at home (usually $CODEX_HOME or
// ~/.codex). An empty home makes the tool unavailable.
func NewCodex(home string) *Codex {
	return &Codex{home: home}
}

func (c *Codex) ID() string      { return "codex" }
func (c *Codex) Available() bool { return c.home != "" }
func (c *Codex) Policy() Policy  { return PolicyMerge }

// BaseDir ignores the project root: Codex prompts are global.
func (c *Codex) BaseDir(projectRoot string) string {
	return c.home
}

func (c *Codex) RelativePath(id templates.CommandID) string {
	return path.Join("prompts", commandName(id)+".md")
}

func (c *Codex) Frontmatter(id templates.CommandID) string {
	return fenced(
		field("description", commandSummaries[id]),
		field("argument-hint", codexArgumentHints[id]),
	)
}
