package frontmatter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"plain body", "  body text \n", "body text"},
		{"frontmatter and blank line", "---\nfront: matter\n---\n\nBody content\n", "Body content"},
		{"extra blank lines folded by trim", "---\nfm\n---\n\n\nbody text\n", "body text"},
		{"leading whitespace before fence", "\n\n---\nfm\n---\nbody", "body"},
		{"no blank line after fence", "---\nfm\n---\nbody\nmore", "body\nmore"},
		{"unterminated fence", "---\nnever closed\n", "---\nnever closed"},
		{"fence only", "---", "---"},
		{"empty frontmatter", "---\n---\n\nbody", "body"},
		{"only first block stripped", "---\na: 1\n---\n\n---\nb: 2\n---\nbody", "---\nb: 2\n---\nbody"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.raw))
		})
	}
}

func TestReplaceBody(t *testing.T) {
	tests := []struct {
		name    string
		content string
		body    string
		want    string
	}{
		{
			name:    "preserves frontmatter bytes",
			content: "---\nfoo: bar\n---\n\nold body\n",
			body:    "new body",
			want:    "---\nfoo: bar\n---\n\nnew body\n",
		},
		{
			name:    "keeps whitespace-only separator verbatim",
			content: "---\nfoo: bar\n---\n  \nold\n",
			body:    "new",
			want:    "---\nfoo: bar\n---\n  \nnew\n",
		},
		{
			name:    "inserts missing separator",
			content: "---\nfoo: bar\n---\nold\n",
			body:    "new",
			want:    "---\nfoo: bar\n---\n\nnew\n",
		},
		{
			name:    "fence at end of file",
			content: "---\nfoo: bar\n---",
			body:    "new",
			want:    "---\nfoo: bar\n---\n\nnew\n",
		},
		{
			name:    "collapses extra blank lines into the body region",
			content: "---\nfoo: bar\n---\n\n\n\nold\n",
			body:    "new",
			want:    "---\nfoo: bar\n---\n\nnew\n",
		},
		{
			name:    "no frontmatter replaces everything",
			content: "old body\nwith lines\n",
			body:    "  new body  ",
			want:    "new body\n",
		},
		{
			name:    "unterminated fence replaces everything",
			content: "---\nfoo: bar\nold body\n",
			body:    "new",
			want:    "new\n",
		},
		{
			name:    "leading whitespace is not a fence",
			content: "\n---\nfoo: bar\n---\n\nold\n",
			body:    "new",
			want:    "new\n",
		},
		{
			name:    "crlf frontmatter",
			content: "---\r\nfoo: bar\r\n---\r\n\r\nold\r\n",
			body:    "new",
			want:    "---\r\nfoo: bar\r\n---\r\n\r\nnew\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ReplaceBody(tt.content, tt.body)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, ReplaceBody(got, tt.body), "second merge must be a no-op")
		})
	}
}

func TestBodyOffset(t *testing.T) {
	content := "---\nfoo: bar\n---\n\nbody\n"
	offset, hasBlank, ok := bodyOffset(content)
	require.True(t, ok)
	assert.True(t, hasBlank)
	assert.Equal(t, "body\n", content[offset:])

	_, _, ok = bodyOffset("body only\n")
	assert.False(t, ok)
}

func TestCompose(t *testing.T) {
	assert.Equal(t, "---\na: b\n---\n\nbody\n", Compose("\n---\na: b\n---\n", "\nbody\n\n"))
	assert.Equal(t, "body\n", Compose("", "body"))
	assert.Equal(t, "body\n", Compose("   ", "body"))
}

func TestExtract(t *testing.T) {
	fm, body := Extract("---\na: b\n---\n\nbody text\n")
	assert.Equal(t, "---\na: b\n---", fm)
	assert.Equal(t, "body text", body)

	fm, body = Extract("just body\n")
	assert.Empty(t, fm)
	assert.Equal(t, "just body", body)
}

func TestInner(t *testing.T) {
	assert.Equal(t, "a: b\nc: d\n", Inner("---\na: b\nc: d\n---"))
	assert.Equal(t, "", Inner("---\n---"))
	assert.Equal(t, "a: b", Inner("a: b"))
}
