package templates

import (
	"errors"
	"fmt"
	"io/fs"
)

// CommandID identifies one slash command. The set is closed.
type CommandID string

const (
	Proposal CommandID = "proposal"
	Apply    CommandID = "apply"
	Archive  CommandID = "archive"
)

// ErrUnknownCommand is returned when a body is requested for an id outside
// the closed CommandID set.
var ErrUnknownCommand = errors.New("unknown slash command")

// AllCommands returns every command id in generation order.
func AllCommands() []CommandID {
	return []CommandID{Proposal, Apply, Archive}
}

// Valid reports whether id belongs to the closed command set.
func (id CommandID) Valid() bool {
	switch id {
	case Proposal, Apply, Archive:
		return true
	}
	return false
}

// ParseCommandID converts a string to a CommandID, returning false if invalid.
func ParseCommandID(s string) (CommandID, bool) {
	id := CommandID(s)
	if !id.Valid() {
		return "", false
	}
	return id, true
}

// BodyProvider maps a command id to its canonical markdown body.
type BodyProvider interface {
	Body(id CommandID) (string, error)
}

// bodyMap is a BodyProvider backed by a fixed map. It is never mutated after
// construction.
type bodyMap map[CommandID]string

func (m bodyMap) Body(id CommandID) (string, error) {
	body, ok := m[id]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownCommand, id)
	}
	return body, nil
}

var embedded = mustLoadEmbedded()

// Embedded returns the provider serving the bodies compiled into the binary.
func Embedded() BodyProvider {
	return embedded
}

func mustLoadEmbedded() bodyMap {
	m := make(bodyMap, len(AllCommands()))
	for _, id := range AllCommands() {
		data, err := fs.ReadFile(slashFS, "slash/"+string(id)+".md")
		if err != nil {
			panic(fmt.Sprintf("templates: missing embedded body for %s: %v", id, err))
		}
		m[id] = string(data)
	}
	return m
}
