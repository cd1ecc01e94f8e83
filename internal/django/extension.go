package django

import (
	"context"
	"fmt"
	"regexp"

	"github.com/scaffoldx/scaffoldx-django/internal/pipeline"
	"github.com/scaffoldx/scaffoldx-django/internal/shell"
	"github.com/scaffoldx/scaffoldx-django/internal/version"
)

// Action names registered by the extension.
const (
	ActionEnforceOptions = "enforce_options"
	ActionCreateDjango   = "create_django"
	ActionInstructUser   = "instruct_user"
)

// Hosts from this version on compute default options before extensions
// normalize them; older hosts expect the normalization first.
const modernHost = ">= 4.0.0"

// testedGenerators is the django-admin range whose settings.py layout the
// database patch was written against.
const testedGenerators = ">= 3.1.0"

// Extension generates Django project files.
type Extension struct {
	generator   shell.Runner
	requirement string
	hostVersion string
	pattern     *regexp.Regexp
	replacement string
}

// Option configures an Extension.
type Option func(*Extension)

// WithGenerator replaces the django-admin command.
func WithGenerator(r shell.Runner) Option {
	return func(e *Extension) { e.generator = r }
}

// WithRequirement sets the requirement added to generated projects.
func WithRequirement(req string) Option {
	return func(e *Extension) { e.requirement = req }
}

// WithHostVersion sets the host contract version used to pick anchors.
func WithHostVersion(v string) Option {
	return func(e *Extension) { e.hostVersion = v }
}

// WithDatabasePatch overrides the settings.py substitution.
func WithDatabasePatch(pattern *regexp.Regexp, replacement string) Option {
	return func(e *Extension) {
		e.pattern = pattern
		e.replacement = replacement
	}
}

// New returns an Extension that runs django-admin from PATH unless opts say
// otherwise.
func New(opts ...Option) *Extension {
	e := &Extension{
		generator:   shell.New("django-admin"),
		requirement: "django",
		hostVersion: pipeline.HostVersion,
		pattern:     DefaultDatabasePattern,
		replacement: DefaultDatabaseReplacement,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Extension) Name() string { return "django" }
func (e *Extension) Flag() string { return "--" + e.Name() }
func (e *Extension) Help() string { return "generate Django project files" }

// Activate returns actions with the extension's three actions inserted.
// It does not touch the filesystem.
func (e *Extension) Activate(actions []pipeline.Action) ([]pipeline.Action, error) {
	modern, err := version.Satisfies(e.hostVersion, modernHost)
	if err != nil {
		return nil, fmt.Errorf("checking host version: %w", err)
	}
	normalize := pipeline.After(pipeline.ActionGetDefaultOptions)
	if !modern {
		normalize = pipeline.Before(pipeline.ActionGetDefaultOptions)
	}

	steps := []struct {
		action pipeline.Action
		pos    pipeline.Position
	}{
		{pipeline.Action{Name: ActionEnforceOptions, Func: e.EnforceOptions}, normalize},
		{pipeline.Action{Name: ActionCreateDjango, Func: e.CreateDjango}, pipeline.Before(pipeline.ActionApplyUpdateRules)},
		{pipeline.Action{Name: ActionInstructUser, Func: e.InstructUser}, pipeline.Before(pipeline.ActionReportDone)},
	}
	for _, step := range steps {
		actions, err = pipeline.Register(actions, step.action, step.pos)
		if err != nil {
			return nil, err
		}
	}
	return actions, nil
}

// EnforceOptions lets generated files overwrite scaffolder defaults and
// declares the Django requirement.
func (e *Extension) EnforceOptions(_ context.Context, s pipeline.Structure, opts *pipeline.Options) (pipeline.Structure, *pipeline.Options, error) {
	opts.Force = true
	if opts.Requirements == nil {
		opts.Requirements = []string{}
	}
	opts.Requirements = append(opts.Requirements, e.requirement)
	return s, opts, nil
}
