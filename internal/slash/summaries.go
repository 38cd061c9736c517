package slash

import "github.com/Adamcf123/OpenSpec/internal/templates"

// commandSummaries are the one-line descriptions shared by the tools that
// use English-only frontmatter.
var commandSummaries = map[templates.CommandID]string{
	templates.Proposal: "Scaffold a new OpenSpec change and validate strictly.",
	templates.Apply:    "Implement an approved OpenSpec change and keep tasks in sync.",
	templates.Archive:  "Archive a deployed OpenSpec change and update specs.",
}
