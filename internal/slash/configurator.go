package slash

import (
	"fmt"

	"github.com/Adamcf123/OpenSpec/internal/frontmatter"
	"github.com/Adamcf123/OpenSpec/internal/platform"
	"github.com/Adamcf123/OpenSpec/internal/templates"
)

// Configurator generates and updates the command files of a single tool.
// Targets are processed sequentially in command order; the first error
// aborts the call and files written before it are left in place.
type Configurator struct {
	tool   Tool
	fs     platform.FS
	bodies templates.BodyProvider
}

// New returns a Configurator for tool.
func New(tool Tool, fsys platform.FS, bodies templates.BodyProvider) *Configurator {
	return &Configurator{tool: tool, fs: fsys, bodies: bodies}
}

// Tool returns the integration this configurator drives.
func (c *Configurator) Tool() Tool { return c.tool }

// Targets lists the tool's command files in command order.
func (c *Configurator) Targets() []Target {
	ids := templates.AllCommands()
	targets := make([]Target, 0, len(ids))
	for _, id := range ids {
		targets = append(targets, Target{
			ID:   id,
			Path: c.tool.RelativePath(id),
			Kind: KindSlash,
		})
	}
	return targets
}

// ResolveAbsolutePath returns the file location for a command without
// touching the disk. GenerateAll and UpdateExisting write to this path.
func (c *Configurator) ResolveAbsolutePath(projectRoot string, id templates.CommandID) string {
	base := projectRoot
	if r, ok := c.tool.(BaseDirResolver); ok {
		base = r.BaseDir(projectRoot)
	}
	return c.fs.Join(base, c.tool.RelativePath(id))
}

// GenerateAll creates every command file, or brings existing ones up to
// date according to the tool's Policy. It returns the relative path of every
// target processed, in order. specDir is accepted for callers that track
// the spec directory; the built-in tools do not use it.
func (c *Configurator) GenerateAll(projectRoot, specDir string) ([]string, error) {
	written := make([]string, 0, len(templates.AllCommands()))

	for _, target := range c.Targets() {
		body, err := c.body(target.ID)
		if err != nil {
			return written, err
		}
		path := c.ResolveAbsolutePath(projectRoot, target.ID)

		if c.tool.Policy() == PolicyOverwrite {
			if err := c.create(path, target.ID, body); err != nil {
				return written, err
			}
			written = append(written, target.Path)
			continue
		}

		exists, err := c.fs.Exists(path)
		if err != nil {
			return written, err
		}
		if exists {
			err = c.merge(path, body)
		} else {
			err = c.create(path, target.ID, body)
		}
		if err != nil {
			return written, err
		}
		written = append(written, target.Path)
	}

	return written, nil
}

// UpdateExisting merges the canonical body into command files that already
// exist and never creates new ones. The merge applies to every Policy,
// including PolicyOverwrite tools. It returns the relative paths updated.
func (c *Configurator) UpdateExisting(projectRoot, specDir string) ([]string, error) {
	var updated []string

	for _, target := range c.Targets() {
		path := c.ResolveAbsolutePath(projectRoot, target.ID)
		exists, err := c.fs.Exists(path)
		if err != nil {
			return updated, err
		}
		if !exists {
			continue
		}

		body, err := c.body(target.ID)
		if err != nil {
			return updated, err
		}
		if err := c.merge(path, body); err != nil {
			return updated, err
		}
		updated = append(updated, target.Path)
	}

	return updated, nil
}

// body returns the normalized canonical body for id.
func (c *Configurator) body(id templates.CommandID) (string, error) {
	raw, err := c.bodies.Body(id)
	if err != nil {
		return "", fmt.Errorf("%s: %w", c.tool.ID(), err)
	}
	return frontmatter.Normalize(raw), nil
}

func (c *Configurator) create(path string, id templates.CommandID, body string) error {
	return c.fs.WriteFile(path, frontmatter.Compose(c.tool.Frontmatter(id), body))
}

func (c *Configurator) merge(path, body string) error {
	current, err := c.fs.ReadFile(path)
	if err != nil {
		return err
	}
	return c.fs.WriteFile(path, frontmatter.ReplaceBody(current, body))
}
