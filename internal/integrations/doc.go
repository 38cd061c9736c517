// Package integrations maps tool names to slash-command configurators and
// runs generation, update, and status checks across a set of tools. It
// defines the GenerateResult and StatusResult types reported back to the
// CLI.
package integrations
