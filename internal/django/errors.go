package django

import (
	"errors"
	"fmt"

	"github.com/scaffoldx/scaffoldx-django/internal/branding"
)

// Kind classifies the extension's failures.
type Kind int

const (
	// KindGeneratorNotInstalled: the generator could not be invoked at all.
	KindGeneratorNotInstalled Kind = iota + 1
	// KindVersionMightBeUnsupported: the generator ran, but its output does
	// not look the way the extension expects.
	KindVersionMightBeUnsupported
	// KindUpdateNotSupported is only ever logged; updates are skipped.
	KindUpdateNotSupported
)

func (k Kind) String() string {
	switch k {
	case KindGeneratorNotInstalled:
		return "generator not installed"
	case KindVersionMightBeUnsupported:
		return "generator version might be unsupported"
	case KindUpdateNotSupported:
		return "update not supported"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Error is the extension's error type. errors.Is matches on Kind, so
// errors.Is(err, ErrGeneratorNotInstalled) works for any message.
type Error struct {
	Kind    Kind
	Message string
	Hint    string
	Err     error
}

// Sentinels for errors.Is.
var (
	ErrGeneratorNotInstalled     = &Error{Kind: KindGeneratorNotInstalled}
	ErrVersionMightBeUnsupported = &Error{Kind: KindVersionMightBeUnsupported}
	ErrUpdateNotSupported        = &Error{Kind: KindUpdateNotSupported}
)

func (e *Error) Error() string {
	msg := e.Message
	if msg == "" {
		msg = e.Kind.String()
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	if e.Hint != "" {
		msg += "\n" + e.Hint
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// GeneratorNotInstalled reports a generator that failed its --version probe.
func GeneratorNotInstalled(command, requirement string, cause error) *Error {
	return &Error{
		Kind:    KindGeneratorNotInstalled,
		Message: fmt.Sprintf("%s is not installed, run: pip install %s", command, requirement),
		Err:     cause,
	}
}

// VersionMightBeUnsupported reports generator output that broke an assumption.
func VersionMightBeUnsupported(message string, cause error) *Error {
	if message == "" {
		message = "the files generated by django-admin are different from expected"
	}
	return &Error{
		Kind:    KindVersionMightBeUnsupported,
		Message: message,
		Hint: "A possible reason for that is that a new version of Django is " +
			"incompatible with the " + branding.CLIName() + " django extension.\n" +
			"Please visit the documentation in " + branding.DocsURL() + " " +
			"and follow the steps to integrate django manually.\n" +
			"Please also consider submitting a pull request with the fix.",
		Err: cause,
	}
}

// UpdateWarning is logged instead of touching generated files on --update.
const UpdateWarning = "Updating code generated using external tools is not " +
	"supported. The extension `django` will be ignored, only " +
	"changes in core features will take place."

// wrapUnexpected leaves the extension's own errors alone and turns anything
// else into VersionMightBeUnsupported.
func wrapUnexpected(err error, message string) error {
	if err == nil {
		return nil
	}
	var own *Error
	if errors.As(err, &own) {
		return err
	}
	return VersionMightBeUnsupported(message, err)
}
