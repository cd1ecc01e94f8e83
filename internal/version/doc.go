// Package version wraps Masterminds/semver for the few version questions the
// scaffolder asks: which host generation it is registering into, and whether
// the external generator reports a release the extension was tested against.
package version
