// Package frontmatter splits, merges, and checks the fenced metadata block
// (delimited by --- lines) at the top of generated command files.
//
// Parsing is deliberately lenient: an unterminated fence is never an error,
// the text is simply treated as body.
package frontmatter
