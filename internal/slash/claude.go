package slash

import (
	"path"

	"github.com/Adamcf123/OpenSpec/internal/branding"
	"github.com/Adamcf123/OpenSpec/internal/templates"
	"golang.org/x/text/language"
)

// ClaudeCommandsDir is where Claude Code discovers project slash commands.
var ClaudeCommandsDir = path.Join(".claude", "commands", branding.CommandNamespace())

type claudeMeta struct {
	title        string
	tag          string
	argumentHint string
	description  map[language.Tag]string
}

var claudeCommands = map[templates.CommandID]claudeMeta{
	templates.Proposal: {
		title:        "Proposal",
		tag:          "change",
		argumentHint: "[title|description|prelude-id] [primary-capability]",
		description: map[language.Tag]string{
			language.English:           "Draft a new OpenSpec proposal; scaffold the change and the smallest verifiable spec",
			language.SimplifiedChinese: "起草新的 OpenSpec 提案；生成变更骨架并完成最小可验证规格",
		},
	},
	templates.Apply: {
		title:        "Apply",
		tag:          "apply",
		argumentHint: "[change-id|query]",
		description: map[language.Tag]string{
			language.English:           "Implement an approved OpenSpec change; follow tasks.md strictly and record evidence",
			language.SimplifiedChinese: "实施已批准的 OpenSpec 变更；严格按 tasks.md 执行并产出证据",
		},
	},
	templates.Archive: {
		title:        "Archive",
		tag:          "archive",
		argumentHint: "[change-id|query] [--skip-specs]",
		description: map[language.Tag]string{
			language.English:           "Archive an OpenSpec change and refresh specs; accepts a change-id or a search query",
			language.SimplifiedChinese: "归档 OpenSpec 变更并刷新规格；参数可为 change-id 或检索关键词",
		},
	},
}

// Claude writes .claude/commands/openspec/<id>.md. Claude's files are fully
// owned by the generator, so GenerateAll always rewrites them.
type Claude struct {
	locale language.Tag
}

// NewClaude returns the Claude tool with frontmatter in the given locale.
func NewClaude(locale language.Tag) *Claude {
	return &Claude{locale: locale}
}

func (c *Claude) ID() string      { return "claude" }
func (c *Claude) Available() bool { return true }
func (c *Claude) Policy() Policy  { return PolicyOverwrite }

// RelativePath returns .claude/commands/openspec/<id>.md.
func (c *Claude) RelativePath(id templates.CommandID) string {
	return path.Join(ClaudeCommandsDir, string(id)+".md")
}

// Frontmatter returns the static frontmatter for id in the tool's locale.
func (c *Claude) Frontmatter(id templates.CommandID) string {
	meta, ok := claudeCommands[id]
	if !ok {
		return ""
	}
	description, ok := meta.description[c.locale]
	if !ok {
		description = meta.description[language.English]
	}
	return fenced(
		field("name", branding.DisplayName()+": "+meta.title),
		field("description", description),
		field("category", branding.DisplayName()),
		"tags: ["+branding.CommandNamespace()+", "+meta.tag+"]",
		field("argument-hint", meta.argumentHint),
		field("allowed-tools", "*"),
	)
}
