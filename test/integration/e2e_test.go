//go:build integration

package integration_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/Adamcf123/OpenSpec/internal/integrations"
	"github.com/Adamcf123/OpenSpec/internal/linker"
	"github.com/Adamcf123/OpenSpec/internal/platform"
	"github.com/Adamcf123/OpenSpec/internal/slash"
)

// TestFullFlowInitEditUpdate tests the complete flow:
// init project -> user edits files -> add override -> update -> verify state.
func TestFullFlowInitEditUpdate(t *testing.T) {
	env := setupTestEnv(t)
	opts := integrations.Options{CodexHome: env.CodexHome}

	// Step 1: Initialize a project with every tool.
	result, err := linker.InitProject(env.ProjectDir, linker.InitOptions{
		Tools:        integrations.AllTools(),
		Name:         "e2e",
		Version:      "0.9.0",
		Integrations: opts,
	})
	if err != nil {
		t.Fatalf("InitProject: %v", err)
	}
	if len(result.Tools) != len(integrations.AllTools()) {
		t.Fatalf("expected %d tool results, got %d", len(integrations.AllTools()), len(result.Tools))
	}

	expected := []string{
		filepath.Join(env.ProjectDir, ".claude", "commands", "openspec", "proposal.md"),
		filepath.Join(env.ProjectDir, ".cursor", "commands", "openspec-apply.md"),
		filepath.Join(env.ProjectDir, ".opencode", "command", "openspec-archive.md"),
		filepath.Join(env.ProjectDir, ".github", "prompts", "openspec-proposal.prompt.md"),
		filepath.Join(env.CodexHome, "prompts", "openspec-apply.md"),
		filepath.Join(env.ProjectDir, "openspec", "AGENTS.md"),
		filepath.Join(env.ProjectDir, "AGENTS.md"),
	}
	for _, path := range expected {
		assertFileExists(t, path)
	}
	assertFileNotExists(t, filepath.Join(env.ProjectDir, "prompts"))

	// Step 2: The user customizes frontmatter and scribbles over bodies.
	cursorApply := filepath.Join(env.ProjectDir, ".cursor", "commands", "openspec-apply.md")
	writeFile(t, cursorApply, "---\nname: my-apply\ndescription: team flavour\n---\n\nlocal notes\n")
	claudeProposal := filepath.Join(env.ProjectDir, ".claude", "commands", "openspec", "proposal.md")
	writeFile(t, claudeProposal, "---\ndescription: custom\n---\n\nlocal notes\n")

	// Step 3: Override the archive body for this project.
	writeFile(t, filepath.Join(linker.OverridesPath(env.ProjectDir), "archive.md"), "Archive with the team checklist.\n")

	// Step 4: Update.
	updated, err := linker.Update(env.ProjectDir, linker.UpdateOptions{Version: "0.9.1", Integrations: opts})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if len(updated.Warnings) != 0 {
		t.Errorf("unexpected warnings: %v", updated.Warnings)
	}

	// Step 5: Frontmatter survives, bodies are canonical again.
	cursor := readFile(t, cursorApply)
	assertContains(t, cursor, "---\nname: my-apply\ndescription: team flavour\n---\n\n**Guardrails**", "cursor apply")
	if strings.Contains(cursor, "local notes") {
		t.Error("cursor apply body was not replaced")
	}

	// Update merges even for the overwrite tool.
	claude := readFile(t, claudeProposal)
	assertContains(t, claude, "---\ndescription: custom\n---\n\n", "claude proposal")

	archive := readFile(t, filepath.Join(env.ProjectDir, ".opencode", "command", "openspec-archive.md"))
	assertContains(t, archive, "\n\nArchive with the team checklist.\n", "opencode archive")

	// Step 6: Status reports every configured file up to date, except the
	// claude file whose frontmatter no longer matches the generated one.
	statuses, err := linker.Status(env.ProjectDir, opts)
	if err != nil {
		t.Fatalf("Status: %v", err)
	}
	for _, st := range statuses {
		for _, target := range st.Targets {
			want := slash.StateUpToDate
			if st.Tool == integrations.Claude && target.ID == "proposal" {
				want = slash.StateStale
			}
			if target.State != want {
				t.Errorf("%s %s: state = %s, want %s", st.Tool, target.ID, target.State, want)
			}
		}
	}

	// Step 7: The recorded version moved forward.
	config, err := linker.LoadProject(platform.OS{}, env.ProjectDir)
	if err != nil {
		t.Fatalf("LoadProject: %v", err)
	}
	if config.Version != "0.9.1" {
		t.Errorf("Version = %q, want 0.9.1", config.Version)
	}
}

// TestUpdateIsIdempotent verifies that a second update rewrites identical bytes.
func TestUpdateIsIdempotent(t *testing.T) {
	env := setupTestEnv(t)
	opts := integrations.Options{CodexHome: env.CodexHome}

	if _, err := linker.InitProject(env.ProjectDir, linker.InitOptions{
		Tools:        []integrations.ToolName{integrations.Copilot},
		Integrations: opts,
	}); err != nil {
		t.Fatalf("InitProject: %v", err)
	}

	path := filepath.Join(env.ProjectDir, ".github", "prompts", "openspec-apply.prompt.md")
	writeFile(t, path, "---\ndescription: x\n---\n\n\n\nold\n")

	if _, err := linker.Update(env.ProjectDir, linker.UpdateOptions{Integrations: opts}); err != nil {
		t.Fatalf("first Update: %v", err)
	}
	first := readFile(t, path)

	if _, err := linker.Update(env.ProjectDir, linker.UpdateOptions{Integrations: opts}); err != nil {
		t.Fatalf("second Update: %v", err)
	}
	if second := readFile(t, path); second != first {
		t.Errorf("update is not idempotent:\nfirst:  %q\nsecond: %q", first, second)
	}
}
