package slash

import "github.com/Adamcf123/OpenSpec/internal/templates"

// Policy controls how GenerateAll treats a command file that already exists.
type Policy int

const (
	// PolicyMerge keeps the existing frontmatter and replaces only the body.
	PolicyMerge Policy = iota
	// PolicyOverwrite rewrites frontmatter and body on every generate.
	PolicyOverwrite
)

func (p Policy) String() string {
	switch p {
	case PolicyMerge:
		return "merge"
	case PolicyOverwrite:
		return "overwrite"
	default:
		return "unknown"
	}
}

// TargetKind tags what a Target generates.
type TargetKind string

// KindSlash marks a slash-command file.
const KindSlash TargetKind = "slash"

// Target is one command file for one tool.
type Target struct {
	ID   templates.CommandID
	Path string // relative to the tool's base directory, slash-separated
	Kind TargetKind
}

// Tool describes one AI assistant integration.
type Tool interface {
	// ID is the stable tool identifier (e.g., "claude").
	ID() string
	// Available reports whether the integration applies in the current
	// environment.
	Available() bool
	// RelativePath returns the slash-separated file path for a command.
	RelativePath(id templates.CommandID) string
	// Frontmatter returns the fenced frontmatter for a command, or "" for none.
	Frontmatter(id templates.CommandID) string
	// Policy selects how GenerateAll treats existing files. UpdateExisting
	// always merges.
	Policy() Policy
}

// BaseDirResolver is implemented by tools whose files live outside the
// project, such as a per-user prompts directory.
type BaseDirResolver interface {
	BaseDir(projectRoot string) string
}
