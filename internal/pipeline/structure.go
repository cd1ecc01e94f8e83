package pipeline

import (
	"context"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"github.com/scaffoldx/scaffoldx-django/internal/logging"
	"github.com/scaffoldx/scaffoldx-django/internal/platform"
)

// File is a leaf of the project structure: content plus the operation that
// writes it. A nil Op means Create.
type File struct {
	Content string
	Op      FileOp
}

// Structure maps slash-separated paths, relative to the project directory,
// to the files that create_structure will write.
type Structure map[string]File

// Clone returns a shallow copy of s.
func (s Structure) Clone() Structure {
	return maps.Clone(s)
}

// Paths returns the structure's paths in sorted order.
func (s Structure) Paths() []string {
	return slices.Sorted(maps.Keys(s))
}

// Merge overlays files onto base and returns a new structure. base is not
// modified.
func Merge(base, files Structure) Structure {
	out := make(Structure, len(base)+len(files))
	maps.Copy(out, base)
	maps.Copy(out, files)
	return out
}

// FileOp writes content to path. It reports whether the file was (or, when
// pretending, would have been) written.
type FileOp func(ctx context.Context, path, content string, opts *Options) (bool, error)

// Create writes the file, creating parent directories as needed.
func Create(ctx context.Context, path, content string, opts *Options) (bool, error) {
	if !opts.Pretend {
		if err := platform.CreateDirectory(filepath.Dir(path)); err != nil {
			return false, err
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			return false, fmt.Errorf("writing %s: %w", path, err)
		}
	}
	logging.Report(ctx, logging.ActivityCreate, path)
	return true, nil
}

// NoOverwrite runs op only when path does not exist yet. Force does not
// override it: existing files are left to their owner.
func NoOverwrite(op FileOp) FileOp {
	op = orCreate(op)
	return func(ctx context.Context, path, content string, opts *Options) (bool, error) {
		if platform.Exists(path) {
			logging.Report(ctx, logging.ActivitySkip, path)
			return false, nil
		}
		return op(ctx, path, content, opts)
	}
}

// AddPermissions runs op and then ORs bits into the written file's mode.
func AddPermissions(bits os.FileMode, op FileOp) FileOp {
	op = orCreate(op)
	return func(ctx context.Context, path, content string, opts *Options) (bool, error) {
		written, err := op(ctx, path, content, opts)
		if err != nil || !written {
			return written, err
		}
		if !opts.Pretend {
			if err := platform.AddPermissions(path, bits); err != nil {
				return true, err
			}
		}
		logging.Report(ctx, logging.ActivityChmod, path, "bits", fmt.Sprintf("%#o", bits))
		return true, nil
	}
}

func orCreate(op FileOp) FileOp {
	if op == nil {
		return Create
	}
	return op
}

// Materialize writes every file of s below opts.ProjectPath, in path order.
func Materialize(ctx context.Context, s Structure, opts *Options) error {
	for _, rel := range s.Paths() {
		f := s[rel]
		if _, err := orCreate(f.Op)(ctx, opts.ProjectFile(rel), f.Content, opts); err != nil {
			return err
		}
	}
	return nil
}
