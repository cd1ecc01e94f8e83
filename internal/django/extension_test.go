package django

import (
	"context"
	"testing"

	"github.com/scaffoldx/scaffoldx-django/internal/pipeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActivate_Order(t *testing.T) {
	tests := []struct {
		host string
		want []string
	}{
		{"4.5.0", []string{
			"get_default_options", "enforce_options", "verify_project_dir", "define_structure",
			"create_django", "apply_update_rules", "create_structure", "instruct_user", "report_done",
		}},
		{"3.3.0", []string{
			"enforce_options", "get_default_options", "verify_project_dir", "define_structure",
			"create_django", "apply_update_rules", "create_structure", "instruct_user", "report_done",
		}},
	}

	for _, tt := range tests {
		t.Run(tt.host, func(t *testing.T) {
			ext := New(WithGenerator(newFakeGenerator()), WithHostVersion(tt.host))
			base := pipeline.DefaultActions()

			got, err := ext.Activate(base)
			require.NoError(t, err)
			assert.Equal(t, tt.want, pipeline.Names(got))
			assert.Len(t, base, 6, "input is left alone")
		})
	}
}

func TestActivate_Errors(t *testing.T) {
	_, err := New(WithHostVersion("not a version")).Activate(pipeline.DefaultActions())
	assert.Error(t, err)

	_, err = New().Activate([]pipeline.Action{{Name: pipeline.ActionGetDefaultOptions}})
	assert.ErrorIs(t, err, pipeline.ErrAnchorNotFound)
}

func TestActivate_Twice(t *testing.T) {
	ext := New()
	actions, err := ext.Activate(pipeline.DefaultActions())
	require.NoError(t, err)

	_, err = ext.Activate(actions)
	assert.ErrorIs(t, err, pipeline.ErrDuplicateAction)
}

func TestEnforceOptions(t *testing.T) {
	ext := New()

	_, opts, err := ext.EnforceOptions(context.Background(), pipeline.Structure{}, &pipeline.Options{})
	require.NoError(t, err)
	assert.True(t, opts.Force)
	assert.Equal(t, []string{"django"}, opts.Requirements)

	ext = New(WithRequirement("django>=4.2"))
	_, opts, err = ext.EnforceOptions(context.Background(), pipeline.Structure{}, &pipeline.Options{Requirements: []string{"requests"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"requests", "django>=4.2"}, opts.Requirements)
}

func TestExtension_Identity(t *testing.T) {
	ext := New()
	assert.Equal(t, "django", ext.Name())
	assert.Equal(t, "--django", ext.Flag())
	assert.NotEmpty(t, ext.Help())

	var _ pipeline.Extension = ext
}

func TestInstructUser(t *testing.T) {
	ctx, buf := testContext(t)
	s := pipeline.Structure{"a": {Content: "x"}}
	opts := &pipeline.Options{Name: "proj"}

	gotS, gotOpts, err := New().InstructUser(ctx, s, opts)
	require.NoError(t, err)
	assert.Equal(t, s, gotS)
	assert.Same(t, opts, gotOpts)

	out := buf.String()
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "web applications")
	assert.Contains(t, out, "scaffoldx-django")
}
