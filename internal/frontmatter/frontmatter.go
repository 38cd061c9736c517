package frontmatter

import (
	"strings"
	"unicode"
)

const (
	fence        = "---"
	closingFence = "\n---"
)

// Normalize strips a leading frontmatter block and one following blank line
// from raw, returning the trimmed body. Text without a terminated fence is
// returned trimmed and otherwise unchanged.
func Normalize(raw string) string {
	trimmed := strings.TrimLeftFunc(raw, unicode.IsSpace)
	if strings.HasPrefix(trimmed, fence) {
		if end := closingIndex(trimmed); end != -1 {
			after := trimmed[end+len(closingFence):]
			if n, ok := blankLine(after); ok {
				after = after[n:]
			}
			return strings.TrimSpace(after)
		}
	}
	return strings.TrimSpace(raw)
}

// ReplaceBody swaps the body region of content for body, keeping the
// frontmatter and its separating blank line byte for byte. Without a
// well-formed leading fence the whole content is replaced by body.
func ReplaceBody(content, body string) string {
	body = strings.TrimSpace(body) + "\n"

	offset, hasBlank, ok := bodyOffset(content)
	if !ok {
		return body
	}

	head := content[:offset]
	if !strings.HasSuffix(head, "\n") {
		// closing fence was the last line of the file
		head += "\n"
	}
	if !hasBlank {
		head += "\n"
	}
	return head + body
}

// Compose builds the content of a new command file: the trimmed frontmatter
// (if any) and the trimmed body separated by one blank line, with a single
// trailing newline.
func Compose(frontmatter, body string) string {
	sections := make([]string, 0, 2)
	if fm := strings.TrimSpace(frontmatter); fm != "" {
		sections = append(sections, fm)
	}
	sections = append(sections, strings.TrimSpace(body))
	return strings.Join(sections, "\n\n") + "\n"
}

// Extract splits content into its fenced frontmatter block and trimmed body.
// fm is empty when content has no well-formed leading fence.
func Extract(content string) (fm, body string) {
	offset, _, ok := bodyOffset(content)
	if !ok {
		return "", strings.TrimSpace(content)
	}
	return strings.TrimSpace(content[:offset]), strings.TrimSpace(content[offset:])
}

// Inner returns the text between the opening and closing fences of fm.
func Inner(fm string) string {
	fm = strings.TrimSpace(fm)
	if !strings.HasPrefix(fm, fence) {
		return fm
	}
	end := closingIndex(fm)
	if end == -1 {
		return strings.TrimPrefix(fm, fence)
	}
	start := strings.IndexByte(fm, '\n')
	if start == -1 || start > end {
		return ""
	}
	return fm[start+1 : end+1]
}

// bodyOffset returns the byte offset where the body region of content
// starts: after the closing fence line and at most one blank line. ok is
// false when content does not open with a fence or the fence is never
// closed.
func bodyOffset(content string) (offset int, hasBlank, ok bool) {
	if !strings.HasPrefix(content, fence) {
		return 0, false, false
	}
	end := closingIndex(content)
	if end == -1 {
		return 0, false, false
	}

	offset = end + len(closingFence)
	if i := strings.IndexByte(content[offset:], '\n'); i != -1 {
		offset += i + 1
	} else {
		return len(content), false, true
	}

	if n, blank := blankLine(content[offset:]); blank {
		offset += n
		hasBlank = true
	}
	return offset, hasBlank, true
}

// closingIndex finds "\n---" at or after the end of the opening fence.
func closingIndex(s string) int {
	if len(s) < len(fence) {
		return -1
	}
	i := strings.Index(s[len(fence):], closingFence)
	if i == -1 {
		return -1
	}
	return i + len(fence)
}

// blankLine reports whether s opens with a whitespace-only line and returns
// its length including the newline.
func blankLine(s string) (int, bool) {
	i := strings.IndexByte(s, '\n')
	if i == -1 {
		return 0, false
	}
	if strings.TrimSpace(s[:i]) != "" {
		return 0, false
	}
	return i + 1, true
}
