package django

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/scaffoldx/scaffoldx-django/internal/ignorefile"
	"github.com/scaffoldx/scaffoldx-django/internal/logging"
	"github.com/scaffoldx/scaffoldx-django/internal/pipeline"
	"github.com/scaffoldx/scaffoldx-django/internal/platform"
	"github.com/scaffoldx/scaffoldx-django/internal/version"
)

// ignoreBlock keeps the sqlite database beside the project root out of git.
var ignoreBlock = ignorefile.Block{Header: "Django", Patterns: []string{"/*.sqlite3"}}

// CreateDjango runs django-admin startproject in the project directory and
// reshapes its output into the src/<package> layout. Every filesystem change
// is skipped under Pretend, but reported the same way.
func (e *Extension) CreateDjango(ctx context.Context, s pipeline.Structure, opts *pipeline.Options) (pipeline.Structure, *pipeline.Options, error) {
	log := logging.ForComponent(ctx, e.Name())

	if opts.Update {
		log.WarnContext(ctx, UpdateWarning, "reason", ErrUpdateNotSupported.Kind.String())
		return s, opts, nil
	}

	found, err := e.probe(ctx)
	if err != nil {
		return s, opts, err
	}

	out, err := e.materialize(ctx, s, opts)
	if err != nil {
		msg := "creating the django project failed"
		if found != "" {
			msg += " (" + e.generator.String() + " " + found + ")"
		}
		return s, opts, wrapUnexpected(err, msg)
	}
	return out, opts, nil
}

// probe checks that the generator can be invoked at all and returns the
// version it reports, or "" when the output has none.
func (e *Extension) probe(ctx context.Context) (string, error) {
	log := logging.ForComponent(ctx, e.Name())

	out, err := e.generator.Run(ctx, "--version")
	if err != nil {
		return "", GeneratorNotInstalled(e.generator.String(), e.requirement, err)
	}

	v, err := version.Extract(out.Stdout)
	if err != nil {
		log.DebugContext(ctx, "could not parse generator version", "error", err)
		return "", nil
	}
	log.DebugContext(ctx, "generator found", "command", e.generator.String(), "version", v.String())
	if ok, _ := version.Satisfies(v.String(), testedGenerators); !ok {
		log.WarnContext(ctx, "generator version is older than the extension was tested with",
			"version", v.String(), "tested", testedGenerators)
	}
	return v.String(), nil
}

func (e *Extension) materialize(ctx context.Context, s pipeline.Structure, opts *pipeline.Options) (pipeline.Structure, error) {
	pretend := opts.Pretend
	projectPath := opts.ProjectPath
	pkg := opts.Package

	if !pretend {
		if err := platform.CreateDirectory(projectPath); err != nil {
			return s, err
		}
	}
	logging.Report(ctx, logging.ActivityCreate, projectPath)

	args := []string{"startproject", pkg, projectPath}
	logging.Report(ctx, logging.ActivityRun, e.generator.String()+" "+strings.Join(args, " "))
	if !pretend {
		if _, err := e.generator.Run(ctx, args...); err != nil {
			return s, err
		}
		if err := verifyLayout(os.DirFS(projectPath), pkg); err != nil {
			return s, err
		}
	}

	srcDir := filepath.Join(projectPath, "src")
	pkgDir := filepath.Join(srcDir, pkg)
	origDir := filepath.Join(projectPath, pkg)
	if err := relocate(ctx, origDir, pkgDir, pretend); err != nil {
		return s, err
	}

	manage := filepath.Join(projectPath, "manage.py")
	entry := filepath.Join(pkgDir, "__main__.py")
	if err := relocate(ctx, manage, entry, pretend); err != nil {
		return s, err
	}

	settings := filepath.Join(pkgDir, "settings.py")
	if err := ReplaceDefaultDatabase(ctx, settings, e.pattern, e.replacement, pretend); err != nil {
		return s, err
	}

	script, err := ManageScript(opts)
	if err != nil {
		return s, err
	}

	gitignore := s[".gitignore"]
	files := pipeline.Structure{
		".gitignore": {Content: ignorefile.Amend(gitignore.Content, ignoreBlock), Op: gitignore.Op},
		"manage.py":  {Content: script, Op: pipeline.AddPermissions(0o100, pipeline.Create)},
	}
	return pipeline.Merge(s, files), nil
}

func relocate(ctx context.Context, src, dst string, pretend bool) error {
	if !pretend {
		if err := platform.Move(src, dst); err != nil {
			return fmt.Errorf("relocating generated files: %w", err)
		}
	}
	logging.Report(ctx, logging.ActivityMove, src, logging.Target(dst))
	return nil
}
