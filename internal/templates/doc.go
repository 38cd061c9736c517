// Package templates holds the canonical text that the generator writes into a
// project: the slash-command bodies shared by every AI tool integration and
// the files scaffolded under the openspec/ directory. All content is embedded
// at build time and is read-only at runtime.
package templates
