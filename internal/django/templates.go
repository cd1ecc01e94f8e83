package django

import (
	"embed"

	"github.com/scaffoldx/scaffoldx-django/internal/pipeline"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// ManageScript renders the manage.py wrapper placed at the project root.
func ManageScript(opts *pipeline.Options) (string, error) {
	return pipeline.RenderTemplate(templateFS, "templates/manage.py.tmpl", opts)
}
