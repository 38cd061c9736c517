package linker

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/Adamcf123/OpenSpec/internal/integrations"
	"github.com/Adamcf123/OpenSpec/internal/platform"
	"github.com/Adamcf123/OpenSpec/internal/slash"
	"github.com/Adamcf123/OpenSpec/internal/updater"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func initProject(t *testing.T, dir string, tools ...integrations.ToolName) *InitResult {
	t.Helper()
	result, err := InitProject(dir, InitOptions{
		Tools:   tools,
		Name:    "demo",
		Version: "0.9.0",
		Logger:  quietLogger(),
	})
	require.NoError(t, err)
	return result
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestInitProject(t *testing.T) {
	dir := t.TempDir()
	result := initProject(t, dir, integrations.Claude, integrations.Cursor)

	assert.Contains(t, result.Scaffold.Files, "openspec/AGENTS.md")
	require.Len(t, result.Tools, 2)
	assert.Len(t, result.Tools[0].Written, 3)
	assert.Len(t, result.Tools[1].Written, 3)

	config, err := LoadProject(platform.OS{}, dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"claude", "cursor"}, config.Tools)
	assert.Equal(t, DefaultLocale, config.Locale)
	assert.Equal(t, "0.9.0", config.Version)

	assert.FileExists(t, filepath.Join(dir, ".claude", "commands", "openspec", "apply.md"))
	assert.FileExists(t, filepath.Join(dir, ".cursor", "commands", "openspec-archive.md"))
}

func TestInitProjectTwice(t *testing.T) {
	dir := t.TempDir()
	initProject(t, dir, integrations.Cursor)

	_, err := InitProject(dir, InitOptions{Tools: []integrations.ToolName{integrations.Cursor}, Logger: quietLogger()})
	assert.True(t, errors.Is(err, ErrAlreadyInitialized), "got %v", err)
}

func TestInitProjectUsesOverrides(t *testing.T) {
	dir := t.TempDir()
	overrides := OverridesPath(dir)
	require.NoError(t, os.MkdirAll(overrides, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(overrides, "proposal.md"), []byte("Custom proposal steps.\n"), 0644))

	initProject(t, dir, integrations.Copilot)

	got := readFile(t, filepath.Join(dir, ".github", "prompts", "openspec-proposal.prompt.md"))
	assert.Contains(t, got, "\n\nCustom proposal steps.\n")
	assert.NotContains(t, readFile(t, filepath.Join(dir, ".github", "prompts", "openspec-apply.prompt.md")), "Custom")
}

func TestUpdateRefreshesBodiesAndKeepsFrontmatter(t *testing.T) {
	dir := t.TempDir()
	initProject(t, dir, integrations.OpenCode)

	path := filepath.Join(dir, ".opencode", "command", "openspec-apply.md")
	require.NoError(t, os.WriteFile(path, []byte("---\nagent: plan\ndescription: mine\n---\n\nedited body\n"), 0644))
	agents := filepath.Join(SpecRoot(dir), "AGENTS.md")
	require.NoError(t, os.WriteFile(agents, []byte("outdated"), 0644))

	result, err := Update(dir, UpdateOptions{Version: "0.9.1", Logger: quietLogger()})
	require.NoError(t, err)

	assert.True(t, result.AgentsRefreshed)
	assert.Equal(t, updater.DriftProjectOlder, result.Drift)
	assert.Empty(t, result.Warnings)

	got := readFile(t, path)
	assert.Contains(t, got, "---\nagent: plan\ndescription: mine\n---\n\n**Guardrails**")
	assert.NotContains(t, got, "edited body")

	config, err := LoadProject(platform.OS{}, dir)
	require.NoError(t, err)
	assert.Equal(t, "0.9.1", config.Version)
}

func TestUpdateTouchesUnconfiguredToolsWithExistingFiles(t *testing.T) {
	dir := t.TempDir()
	initProject(t, dir, integrations.Claude)

	stray := filepath.Join(dir, ".cursor", "commands", "openspec-proposal.md")
	require.NoError(t, os.MkdirAll(filepath.Dir(stray), 0755))
	require.NoError(t, os.WriteFile(stray, []byte("old"), 0644))

	result, err := Update(dir, UpdateOptions{Version: "0.9.0", Logger: quietLogger()})
	require.NoError(t, err)

	var cursor integrations.GenerateResult
	for _, r := range result.Tools {
		if r.Tool == integrations.Cursor {
			cursor = r
		}
	}
	assert.Equal(t, []string{".cursor/commands/openspec-proposal.md"}, cursor.Written)
	assert.NoFileExists(t, filepath.Join(dir, ".cursor", "commands", "openspec-apply.md"))
}

func TestUpdateWarnsWhenProjectIsNewer(t *testing.T) {
	dir := t.TempDir()
	initProject(t, dir)

	result, err := Update(dir, UpdateOptions{Version: "0.1.0", Logger: quietLogger()})
	require.NoError(t, err)
	assert.Equal(t, updater.DriftProjectNewer, result.Drift)
	require.Len(t, result.Warnings, 1)

	config, err := LoadProject(platform.OS{}, dir)
	require.NoError(t, err)
	assert.Equal(t, "0.9.0", config.Version, "newer recorded version must not be downgraded")
}

func TestUpdateNotInitialized(t *testing.T) {
	_, err := Update(t.TempDir(), UpdateOptions{Logger: quietLogger()})
	assert.True(t, errors.Is(err, ErrNotInitialized), "got %v", err)
}

func TestStatus(t *testing.T) {
	dir := t.TempDir()
	initProject(t, dir, integrations.Cursor)

	results, err := Status(dir, integrations.Options{})
	require.NoError(t, err)
	require.Len(t, results, 1)
	for _, target := range results[0].Targets {
		assert.Equal(t, slash.StateUpToDate, target.State, target.Path)
	}

	require.NoError(t, SaveProject(platform.OS{}, dir, &ProjectConfig{Tools: []string{"vim"}}))
	_, err = Status(dir, integrations.Options{})
	assert.Error(t, err)
}

func TestInitAndUpdateWithInjectedFSNeverTouchDisk(t *testing.T) {
	dir := t.TempDir()
	overrides := OverridesPath(dir)
	require.NoError(t, os.MkdirAll(overrides, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(overrides, "apply.md"), []byte("Apply from disk.\n"), 0644))

	fsys := platform.NewOverlay(platform.OS{})
	opts := integrations.Options{FS: fsys}

	result, err := InitProject(dir, InitOptions{
		Tools:        []integrations.ToolName{integrations.Cursor},
		Version:      "0.9.0",
		Integrations: opts,
		Logger:       quietLogger(),
	})
	require.NoError(t, err)
	assert.Len(t, result.Tools[0].Written, 3)

	cursorApply := filepath.Join(dir, ".cursor", "commands", "openspec-apply.md")
	content, err := fsys.ReadFile(cursorApply)
	require.NoError(t, err)
	assert.Contains(t, content, "Apply from disk.", "overrides are read through the injected FS")
	assert.Contains(t, fsys.Written(), ProjectConfigPath(dir))

	_, err = Update(dir, UpdateOptions{Version: "0.9.1", Integrations: opts, Logger: quietLogger()})
	require.NoError(t, err)

	config, err := LoadProject(fsys, dir)
	require.NoError(t, err)
	assert.Equal(t, "0.9.1", config.Version)

	assert.NoFileExists(t, ProjectConfigPath(dir))
	assert.NoFileExists(t, cursorApply)
	assert.NoDirExists(t, filepath.Join(SpecRoot(dir), "specs"))
	assert.NoFileExists(t, filepath.Join(dir, "AGENTS.md"))

	_, err = InitProject(dir, InitOptions{Integrations: opts, Logger: quietLogger()})
	assert.ErrorIs(t, err, ErrAlreadyInitialized, "initialization is detected through the injected FS")
}
