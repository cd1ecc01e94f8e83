package version

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// versionToken finds the first dotted version number in free-form output,
// e.g. "5.0.1" in "5.0.1\n" or "4.2" in "django-admin 4.2".
var versionToken = regexp.MustCompile(`v?\d+(\.\d+){0,2}([-+][0-9A-Za-z.-]+)?`)

// Parse strips a leading "v" and parses the version string.
func Parse(v string) (*semver.Version, error) {
	return semver.NewVersion(strings.TrimPrefix(strings.TrimSpace(v), "v"))
}

// Extract parses the first version-looking token in output.
func Extract(output string) (*semver.Version, error) {
	tok := versionToken.FindString(output)
	if tok == "" {
		return nil, fmt.Errorf("no version found in %q", strings.TrimSpace(output))
	}
	return Parse(tok)
}

// Satisfies reports whether v meets constraint (e.g. ">= 4.0.0").
func Satisfies(v, constraint string) (bool, error) {
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return false, fmt.Errorf("parsing constraint %q: %w", constraint, err)
	}
	sv, err := Parse(v)
	if err != nil {
		return false, fmt.Errorf("parsing version %q: %w", v, err)
	}
	return c.Check(sv), nil
}
