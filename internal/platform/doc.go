// Package platform provides the file-system operations the generators rely
// on. OS is the real implementation and creates parent directories on
// write; Overlay reads through to another FS and keeps writes in memory for
// dry runs.
package platform
