// Package watch re-runs a project update whenever command body overrides
// under the spec directory change. Events are debounced so an editor's
// burst of writes triggers one update.
package watch
