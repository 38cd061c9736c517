// Package slash generates and maintains the slash-command files that AI
// coding assistants read from a project (or, for some tools, from a
// tool-global directory).
//
// Each integration implements Tool: where its files live, what frontmatter
// they carry, and whether GenerateAll rewrites files outright or merges the
// canonical body under the existing frontmatter. Configurator runs the shared
// generation and update algorithm over any Tool.
package slash
