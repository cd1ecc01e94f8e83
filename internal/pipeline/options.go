package pipeline

import (
	"fmt"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
)

// Options carries the settings of one project-creation run. Actions receive
// it by pointer and may mutate it; no action owns it exclusively.
type Options struct {
	ProjectPath  string   // target directory
	Name         string   // project name, defaults to the base of ProjectPath
	Package      string   // importable package name, defaults to Name
	Pretend      bool     // dry run: report activities without side effects
	Force        bool     // scaffold into a directory that already exists
	Update       bool     // update an existing project instead of creating one
	Requirements []string // runtime requirements of the generated project
	Extensions   []string // names of the active extensions
}

// Clone returns a deep copy of o.
func (o *Options) Clone() *Options {
	c := *o
	c.Requirements = slices.Clone(o.Requirements)
	c.Extensions = slices.Clone(o.Extensions)
	return &c
}

var packagePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// PackageName derives an importable package name from a project name:
// lower-cased, with anything outside [a-z0-9_] replaced by "_".
func PackageName(name string) string {
	var sb strings.Builder
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_':
			sb.WriteRune(r)
		default:
			sb.WriteRune('_')
		}
	}
	pkg := sb.String()
	if pkg != "" && pkg[0] >= '0' && pkg[0] <= '9' {
		pkg = "_" + pkg
	}
	return pkg
}

// ValidatePackage checks that pkg is a valid Python identifier.
func ValidatePackage(pkg string) error {
	if !packagePattern.MatchString(pkg) {
		return fmt.Errorf("%w: %q must match %s", ErrInvalidPackage, pkg, packagePattern)
	}
	return nil
}

// ProjectFile returns the on-disk location of a structure path.
func (o *Options) ProjectFile(rel string) string {
	return filepath.Join(o.ProjectPath, filepath.FromSlash(rel))
}
