// Package output renders command results for the terminal using lipgloss
// styles.
package output
