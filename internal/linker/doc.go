// Package linker manages the project-level openspec/openspec.yaml
// configuration and orchestrates command file generation. It initializes a
// project (scaffold plus slash commands for the chosen tools), refreshes
// existing command files on update, and reports status across tools.
package linker
