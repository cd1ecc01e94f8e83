package pipeline

import (
	"context"
	"fmt"
	"slices"

	"github.com/scaffoldx/scaffoldx-django/internal/logging"
)

// ActionFunc is one step of project creation.
type ActionFunc func(ctx context.Context, s Structure, opts *Options) (Structure, *Options, error)

// Action is a named, orderable step.
type Action struct {
	Name string
	Func ActionFunc
}

// Position anchors a new action relative to an existing one.
type Position struct {
	anchor string
	after  bool
}

// Before places an action immediately before the named action.
func Before(name string) Position { return Position{anchor: name} }

// After places an action immediately after the named action.
func After(name string) Position { return Position{anchor: name, after: true} }

// DefaultPosition is used when Register is called without a position.
var DefaultPosition = After(ActionDefineStructure)

func (p Position) String() string {
	if p.after {
		return "after " + p.anchor
	}
	return "before " + p.anchor
}

// Register returns a new action list with a inserted at pos. The input slice
// is never modified. At most one position may be given.
func Register(actions []Action, a Action, pos ...Position) ([]Action, error) {
	if len(pos) > 1 {
		return nil, fmt.Errorf("registering %s: at most one position, got %d", a.Name, len(pos))
	}
	p := DefaultPosition
	if len(pos) == 1 {
		p = pos[0]
	}

	if Index(actions, a.Name) >= 0 {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateAction, a.Name)
	}
	i := Index(actions, p.anchor)
	if i < 0 {
		return nil, fmt.Errorf("registering %s %s: %w", a.Name, p, ErrAnchorNotFound)
	}
	if p.after {
		i++
	}

	out := make([]Action, 0, len(actions)+1)
	out = append(out, actions[:i]...)
	out = append(out, a)
	out = append(out, actions[i:]...)
	return out, nil
}

// Index returns the position of the named action, or -1.
func Index(actions []Action, name string) int {
	return slices.IndexFunc(actions, func(a Action) bool { return a.Name == name })
}

// Names lists the action names in order.
func Names(actions []Action) []string {
	names := make([]string, len(actions))
	for i, a := range actions {
		names[i] = a.Name
	}
	return names
}

// Run folds actions over (s, opts) in order and stops at the first error.
// Errors are prefixed with the failing action's name and stay unwrappable.
func Run(ctx context.Context, actions []Action, s Structure, opts *Options) (Structure, *Options, error) {
	log := logging.FromContext(ctx)
	if s == nil {
		s = Structure{}
	}
	for _, a := range actions {
		if err := ctx.Err(); err != nil {
			return s, opts, err
		}
		log.DebugContext(ctx, "running action", "action", a.Name)

		var err error
		s, opts, err = a.Func(ctx, s, opts)
		if err != nil {
			return s, opts, fmt.Errorf("%s: %w", a.Name, err)
		}
	}
	return s, opts, nil
}
