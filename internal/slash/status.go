package slash

import (
	"github.com/Adamcf123/OpenSpec/internal/frontmatter"
)

// State describes how a command file on disk compares to what GenerateAll
// would write.
type State string

const (
	StateMissing  State = "missing"
	StateUpToDate State = "up-to-date"
	StateStale    State = "stale"
)

// TargetStatus is the detected state of one target.
type TargetStatus struct {
	Target
	AbsPath string
	State   State
}

// Status inspects every target without writing. A merge-policy file is
// up to date when its body matches the canonical body; an overwrite-policy
// file must also carry the tool's frontmatter.
func (c *Configurator) Status(projectRoot string) ([]TargetStatus, error) {
	targets := c.Targets()
	statuses := make([]TargetStatus, 0, len(targets))

	for _, target := range targets {
		st := TargetStatus{
			Target:  target,
			AbsPath: c.ResolveAbsolutePath(projectRoot, target.ID),
			State:   StateMissing,
		}

		exists, err := c.fs.Exists(st.AbsPath)
		if err != nil {
			return nil, err
		}
		if !exists {
			statuses = append(statuses, st)
			continue
		}

		body, err := c.body(target.ID)
		if err != nil {
			return nil, err
		}
		current, err := c.fs.ReadFile(st.AbsPath)
		if err != nil {
			return nil, err
		}

		st.State = StateStale
		if c.tool.Policy() == PolicyOverwrite {
			if current == frontmatter.Compose(c.tool.Frontmatter(target.ID), body) {
				st.State = StateUpToDate
			}
		} else if _, got := frontmatter.Extract(current); got == body {
			st.State = StateUpToDate
		}
		statuses = append(statuses, st)
	}

	return statuses, nil
}
