// Package updater compares the generator version recorded in a project with
// the running CLI version, so update can tell when generated command files
// came from a newer or older release.
package updater
