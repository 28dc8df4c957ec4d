package protocol

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// Version is the wire protocol version this binary speaks. Hosts compare it
// against their own supported version before trusting envelope shapes.
const Version = "1.0.0"

// Compatible reports whether a host speaking hostVersion can consume this
// binary's output. Versions are compatible when they share a major version.
func Compatible(hostVersion string) (bool, error) {
	ours, err := semver.NewVersion(Version)
	if err != nil {
		return false, fmt.Errorf("parsing protocol version %q: %w", Version, err)
	}
	theirs, err := semver.NewVersion(hostVersion)
	if err != nil {
		return false, fmt.Errorf("parsing host version %q: %w", hostVersion, err)
	}
	return ours.Major() == theirs.Major(), nil
}
