// Package scaffold renders the spec directory of a new project from the
// embedded project templates. It powers "openspec init", producing
// AGENTS.md, project.md, the change template, the specs/ and
// changes/archive/ directories, and a root AGENTS.md pointer.
package scaffold
