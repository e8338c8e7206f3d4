// Package version interprets the build version string injected via
// ldflags. Tagged builds carry a semver string; everything else ("dev",
// snapshot hashes) is treated as unreleased.
package version

import (
	"strings"

	"github.com/Masterminds/semver/v3"
)

// parse strips a leading "v" and parses the version string.
func parse(v string) (*semver.Version, error) {
	return semver.NewVersion(strings.TrimPrefix(v, "v"))
}

// IsRelease reports whether v is a valid semver release string with no
// prerelease suffix.
func IsRelease(v string) bool {
	sv, err := parse(v)
	return err == nil && sv.Prerelease() == ""
}

// Normalize returns the canonical semver form of v (no "v" prefix), or v
// unchanged when it does not parse as semver.
func Normalize(v string) string {
	sv, err := parse(v)
	if err != nil {
		return v
	}
	return sv.String()
}
