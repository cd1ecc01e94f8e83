package pipeline

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/scaffoldx/scaffoldx-django/internal/logging"
	"github.com/scaffoldx/scaffoldx-django/internal/platform"
)

// HostVersion is the version of the action contract implemented here.
// Extensions consult it to pick anchors that moved between generations.
const HostVersion = "4.5.0"

// Names of the built-in actions, usable as Register anchors.
const (
	ActionGetDefaultOptions = "get_default_options"
	ActionVerifyProjectDir  = "verify_project_dir"
	ActionDefineStructure   = "define_structure"
	ActionApplyUpdateRules  = "apply_update_rules"
	ActionCreateStructure   = "create_structure"
	ActionReportDone        = "report_done"
)

// Extension contributes actions to the pipeline when its flag is given.
type Extension interface {
	Name() string
	Flag() string
	Help() string
	Activate(actions []Action) ([]Action, error)
}

// DefaultActions returns the built-in action list.
func DefaultActions() []Action {
	return []Action{
		{Name: ActionGetDefaultOptions, Func: GetDefaultOptions},
		{Name: ActionVerifyProjectDir, Func: VerifyProjectDir},
		{Name: ActionDefineStructure, Func: DefineStructure},
		{Name: ActionApplyUpdateRules, Func: ApplyUpdateRules},
		{Name: ActionCreateStructure, Func: CreateStructure},
		{Name: ActionReportDone, Func: ReportDone},
	}
}

// ActivateExtensions lets each extension register its actions, in order,
// and records the extension names in opts.
func ActivateExtensions(actions []Action, opts *Options, exts ...Extension) ([]Action, error) {
	for _, ext := range exts {
		var err error
		actions, err = ext.Activate(actions)
		if err != nil {
			return nil, fmt.Errorf("activating extension %s: %w", ext.Name(), err)
		}
		opts.Extensions = append(opts.Extensions, ext.Name())
	}
	return actions, nil
}

// GetDefaultOptions derives Name and Package and validates them.
func GetDefaultOptions(_ context.Context, s Structure, opts *Options) (Structure, *Options, error) {
	if opts.ProjectPath == "" {
		return s, opts, ErrNoProjectPath
	}
	opts.ProjectPath = filepath.Clean(opts.ProjectPath)
	if opts.Name == "" {
		abs, err := filepath.Abs(opts.ProjectPath)
		if err != nil {
			return s, opts, fmt.Errorf("resolving %s: %w", opts.ProjectPath, err)
		}
		opts.Name = filepath.Base(abs)
	}
	if opts.Package == "" {
		opts.Package = PackageName(opts.Name)
	}
	if err := ValidatePackage(opts.Package); err != nil {
		return s, opts, err
	}
	if opts.Requirements == nil {
		opts.Requirements = []string{}
	}
	return s, opts, nil
}

// VerifyProjectDir refuses to scaffold into an existing directory unless the
// run forces or updates.
func VerifyProjectDir(_ context.Context, s Structure, opts *Options) (Structure, *Options, error) {
	if platform.Exists(opts.ProjectPath) && !opts.Force && !opts.Update {
		return s, opts, fmt.Errorf("%w: %s", ErrProjectExists, opts.ProjectPath)
	}
	return s, opts, nil
}

// DefineStructure adds the default project files.
func DefineStructure(_ context.Context, s Structure, opts *Options) (Structure, *Options, error) {
	files := Structure{}
	entries := []struct {
		path, template string
		op             FileOp
	}{
		{".gitignore", "gitignore", NoOverwrite(Create)},
		{"README.md", "readme", NoOverwrite(Create)},
		{"requirements.txt", "requirements", Create},
		{"src/" + opts.Package + "/__init__.py", "init", Create},
	}
	for _, e := range entries {
		content, err := renderHostTemplate(e.template, opts)
		if err != nil {
			return s, opts, err
		}
		files[e.path] = File{Content: content, Op: e.op}
	}
	return Merge(files, s), opts, nil
}

// ApplyUpdateRules protects existing files when updating a project.
func ApplyUpdateRules(_ context.Context, s Structure, opts *Options) (Structure, *Options, error) {
	if !opts.Update {
		return s, opts, nil
	}
	out := make(Structure, len(s))
	for path, f := range s {
		out[path] = File{Content: f.Content, Op: NoOverwrite(f.Op)}
	}
	return out, opts, nil
}

// CreateStructure writes the structure to disk.
func CreateStructure(ctx context.Context, s Structure, opts *Options) (Structure, *Options, error) {
	if err := Materialize(ctx, s, opts); err != nil {
		return s, opts, err
	}
	return s, opts, nil
}

// ReportDone logs the end of the run.
func ReportDone(ctx context.Context, s Structure, opts *Options) (Structure, *Options, error) {
	log := logging.FromContext(ctx)
	if opts.Pretend {
		log.InfoContext(ctx, "done (pretend, nothing was written)", "project", opts.Name)
	} else {
		log.InfoContext(ctx, "done", "project", opts.Name, "path", opts.ProjectPath)
	}
	return s, opts, nil
}
