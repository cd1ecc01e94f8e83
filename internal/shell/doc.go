// Package shell runs external command-line programs on behalf of scaffolding
// steps. A Command resolves its binary on PATH, streams output to optional
// writers, and turns a non-zero exit into an *ExitError.
package shell
