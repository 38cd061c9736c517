package updater

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Drift describes how a recorded project version relates to the running CLI.
type Drift int

const (
	// DriftUnknown means one side is missing or not a semantic version
	// (for example a "dev" build).
	DriftUnknown Drift = iota
	DriftNone
	// DriftProjectOlder means the project was generated by an older CLI.
	DriftProjectOlder
	// DriftProjectNewer means the project was generated by a newer CLI.
	DriftProjectNewer
)

func (d Drift) String() string {
	switch d {
	case DriftNone:
		return "current"
	case DriftProjectOlder:
		return "older"
	case DriftProjectNewer:
		return "newer"
	default:
		return "unknown"
	}
}

// CompareVersions compares two version strings using semver.
// Returns -1 if a < b, 0 if equal, 1 if a > b.
// Handles "v" prefix tolerance (strips leading "v" before parsing).
func CompareVersions(a, b string) (int, error) {
	av, err := parseSemver(a)
	if err != nil {
		return 0, fmt.Errorf("parsing version %q: %w", a, err)
	}
	bv, err := parseSemver(b)
	if err != nil {
		return 0, fmt.Errorf("parsing version %q: %w", b, err)
	}
	return av.Compare(bv), nil
}

// IsNewer returns true if candidate is strictly newer than base.
func IsNewer(candidate, base string) (bool, error) {
	cmp, err := CompareVersions(candidate, base)
	if err != nil {
		return false, err
	}
	return cmp == 1, nil
}

// Valid reports whether version parses as a semantic version.
func Valid(version string) bool {
	_, err := parseSemver(version)
	return err == nil
}

// CheckProject classifies the recorded project version against running.
func CheckProject(recorded, running string) Drift {
	if recorded == "" || running == "" {
		return DriftUnknown
	}
	newer, err := IsNewer(recorded, running)
	if err != nil {
		return DriftUnknown
	}
	if newer {
		return DriftProjectNewer
	}
	older, err := IsNewer(running, recorded)
	if err != nil {
		return DriftUnknown
	}
	if older {
		return DriftProjectOlder
	}
	return DriftNone
}

// parseSemver strips a leading "v" and parses the version string.
func parseSemver(version string) (*semver.Version, error) {
	version = strings.TrimPrefix(strings.TrimSpace(version), "v")
	return semver.NewVersion(version)
}
