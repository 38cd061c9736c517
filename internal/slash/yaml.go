package slash

import (
	"strconv"
	"strings"
)

// fenced wraps frontmatter lines in --- fences.
func fenced(lines ...string) string {
	return "---\n" + strings.Join(lines, "\n") + "\n---"
}

// field renders a YAML key with a double-quoted scalar when the value
// would otherwise not parse as a plain string.
func field(key, value string) string {
	if needsQuoting(value) {
		value = strconv.Quote(value)
	}
	return key + ": " + value
}

func needsQuoting(s string) bool {
	if s == "" || strings.TrimSpace(s) != s {
		return true
	}
	if strings.ContainsAny(s[:1], "*&!|>%@`[]{},#?-'\"") {
		return true
	}
	return strings.Contains(s, ": ") || strings.Contains(s, " #")
}
