package integrations

import (
	"fmt"

	"github.com/Adamcf123/OpenSpec/internal/platform"
	"github.com/Adamcf123/OpenSpec/internal/slash"
	"github.com/Adamcf123/OpenSpec/internal/templates"
)

// ToolName identifies a supported AI tool integration.
type ToolName string

const (
	Claude   ToolName = "claude"
	Cursor   ToolName = "cursor"
	OpenCode ToolName = "opencode"
	Copilot  ToolName = "copilot"
	Codex    ToolName = "codex"
)

// AllTools returns all supported tool names in display order.
func AllTools() []ToolName {
	return []ToolName{Claude, Cursor, OpenCode, Copilot, Codex}
}

// ParseToolName converts a string to a ToolName, returning false if invalid.
func ParseToolName(s string) (ToolName, bool) {
	switch s {
	case "claude":
		return Claude, true
	case "cursor":
		return Cursor, true
	case "opencode":
		return OpenCode, true
	case "copilot":
		return Copilot, true
	case "codex":
		return Codex, true
	default:
		return "", false
	}
}

// ParseToolNames converts a list of names, failing on the first unknown one.
func ParseToolNames(names []string) ([]ToolName, error) {
	tools := make([]ToolName, 0, len(names))
	for _, n := range names {
		tool, ok := ParseToolName(n)
		if !ok {
			return nil, fmt.Errorf("unknown tool: %s", n)
		}
		tools = append(tools, tool)
	}
	return tools, nil
}

// Options carry what tool construction needs from the environment.
type Options struct {
	// Locale is a BCP 47 preference for localized frontmatter.
	Locale string
	// CodexHome is the Codex global directory; empty disables Codex.
	CodexHome string
	// FS defaults to platform.OS.
	FS platform.FS
	// Bodies defaults to templates.Embedded.
	Bodies templates.BodyProvider
}

func (o Options) fs() platform.FS {
	if o.FS == nil {
		return platform.OS{}
	}
	return o.FS
}

func (o Options) bodies() templates.BodyProvider {
	if o.Bodies == nil {
		return templates.Embedded()
	}
	return o.Bodies
}

// NewTool builds the slash.Tool for name.
func NewTool(name ToolName, opts Options) (slash.Tool, error) {
	switch name {
	case Claude:
		return slash.NewClaude(slash.MatchLocale(opts.Locale)), nil
	case Cursor:
		return slash.Cursor{}, nil
	case OpenCode:
		return slash.OpenCode{}, nil
	case Copilot:
		return slash.Copilot{}, nil
	case Codex:
		return slash.NewCodex(opts.CodexHome), nil
	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// NewConfigurator builds the configurator for name.
func NewConfigurator(name ToolName, opts Options) (*slash.Configurator, error) {
	tool, err := NewTool(name, opts)
	if err != nil {
		return nil, err
	}
	return slash.New(tool, opts.fs(), opts.bodies()), nil
}
