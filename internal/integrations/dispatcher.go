package integrations

import (
	"fmt"

	"github.com/Adamcf123/OpenSpec/internal/slash"
)

// GenerateResult reports what one tool's run touched.
type GenerateResult struct {
	Tool     ToolName `json:"tool"`
	Policy   string   `json:"policy"`
	Written  []string `json:"written"`
	Skipped  bool     `json:"skipped"`
	Warnings []string `json:"warnings"`
}

// StatusResult reports the detected state of one tool's command files.
type StatusResult struct {
	Tool      ToolName             `json:"tool"`
	Available bool                 `json:"available"`
	Targets   []slash.TargetStatus `json:"targets"`
}

// Summary collapses target states into one word: "not-generated",
// "up-to-date", "stale", or "partial".
func (r StatusResult) Summary() string {
	counts := map[slash.State]int{}
	for _, t := range r.Targets {
		counts[t.State]++
	}
	switch {
	case counts[slash.StateMissing] == len(r.Targets):
		return "not-generated"
	case counts[slash.StateUpToDate] == len(r.Targets):
		return "up-to-date"
	case counts[slash.StateStale] > 0:
		return "stale"
	default:
		return "partial"
	}
}

// Generate runs GenerateAll for each tool in order. Unavailable tools are
// skipped with a warning; the first tool error aborts the run.
func Generate(tools []ToolName, projectPath, specDir string, opts Options) ([]GenerateResult, error) {
	return run(tools, opts, func(c *slash.Configurator) ([]string, error) {
		return c.GenerateAll(projectPath, specDir)
	})
}

// UpdateExisting runs UpdateExisting for each tool in order, touching only
// command files that are already present.
func UpdateExisting(tools []ToolName, projectPath, specDir string, opts Options) ([]GenerateResult, error) {
	return run(tools, opts, func(c *slash.Configurator) ([]string, error) {
		return c.UpdateExisting(projectPath, specDir)
	})
}

// Status inspects each tool's command files without writing.
func Status(tools []ToolName, projectPath string, opts Options) ([]StatusResult, error) {
	results := make([]StatusResult, 0, len(tools))
	for _, name := range tools {
		c, err := NewConfigurator(name, opts)
		if err != nil {
			return nil, err
		}
		result := StatusResult{Tool: name, Available: c.Tool().Available()}
		if result.Available {
			targets, err := c.Status(projectPath)
			if err != nil {
				return nil, fmt.Errorf("%s status failed: %w", name, err)
			}
			result.Targets = targets
		}
		results = append(results, result)
	}
	return results, nil
}

func run(tools []ToolName, opts Options, op func(*slash.Configurator) ([]string, error)) ([]GenerateResult, error) {
	results := make([]GenerateResult, 0, len(tools))
	for _, name := range tools {
		c, err := NewConfigurator(name, opts)
		if err != nil {
			return results, err
		}

		result := GenerateResult{Tool: name, Policy: c.Tool().Policy().String()}
		if !c.Tool().Available() {
			result.Skipped = true
			result.Warnings = append(result.Warnings, fmt.Sprintf("%s is not available in this environment", name))
			results = append(results, result)
			continue
		}

		written, err := op(c)
		result.Written = written
		if err != nil {
			results = append(results, result)
			return results, fmt.Errorf("%s: %w", name, err)
		}
		results = append(results, result)
	}
	return results, nil
}
