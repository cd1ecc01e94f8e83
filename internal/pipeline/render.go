package pipeline

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"text/template"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// RenderTemplate executes a text/template file from fsys with data.
func RenderTemplate(fsys fs.FS, name string, data any) (string, error) {
	tmplBytes, err := fs.ReadFile(fsys, name)
	if err != nil {
		return "", fmt.Errorf("reading template %s: %w", name, err)
	}

	tmpl, err := template.New(name).Option("missingkey=error").Parse(string(tmplBytes))
	if err != nil {
		return "", fmt.Errorf("parsing template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("executing template %s: %w", name, err)
	}
	return buf.String(), nil
}

func renderHostTemplate(name string, opts *Options) (string, error) {
	return RenderTemplate(templateFS, "templates/"+name+".tmpl", opts)
}
