package django

import (
	"context"

	"github.com/scaffoldx/scaffoldx-django/internal/branding"
	"github.com/scaffoldx/scaffoldx-django/internal/logging"
	"github.com/scaffoldx/scaffoldx-django/internal/pipeline"
)

func advisory() string {
	return "\nDjango is used to create web applications while " + branding.DisplayName() +
		" makes it easy to create re-usable Python (pip) packages, such as libraries.\n" +
		"There is nothing wrong with trying to distribute your web application " +
		"as an installable package, but you have to be aware about the changes " +
		"in mindset. Please check the docs in\n\n" +
		"\t" + branding.DocsURL() + "\n\n" +
		"for more information.\n"
}

// InstructUser warns about the library-versus-application mismatch.
func (e *Extension) InstructUser(ctx context.Context, s pipeline.Structure, opts *pipeline.Options) (pipeline.Structure, *pipeline.Options, error) {
	logging.ForComponent(ctx, e.Name()).WarnContext(ctx, advisory())
	return s, opts, nil
}
