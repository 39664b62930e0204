package manifest

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

const (
	// DefaultVersion is assumed for documents without a version field.
	DefaultVersion = "1.0.0"

	// SupportedVersions is the semver constraint a document version must meet.
	SupportedVersions = ">= 1.0.0, < 2.0.0"
)

// EffectiveVersion returns the document version, or DefaultVersion when unset.
func (d *Document) EffectiveVersion() string {
	if d.Version == "" {
		return DefaultVersion
	}
	return d.Version
}

// CheckVersion fails when the document format version is malformed or
// outside SupportedVersions.
func CheckVersion(doc *Document) error {
	raw := doc.EffectiveVersion()
	v, err := semver.NewVersion(strings.TrimPrefix(raw, "v"))
	if err != nil {
		return fmt.Errorf("parsing catalog version %q: %w", raw, err)
	}

	constraint, err := semver.NewConstraint(SupportedVersions)
	if err != nil {
		return fmt.Errorf("parsing version constraint: %w", err)
	}
	if !constraint.Check(v) {
		return fmt.Errorf("unsupported catalog version %s (supported: %s)", raw, SupportedVersions)
	}
	return nil
}
