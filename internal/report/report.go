// Where: apkbuild/internal/report/report.go
// What: Outcome message rendering for build invocations.
// Why: Keep user-facing wording in overridable templates with stable defaults.
package report

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

const (
	DefaultMissingWrapper = "Error: {{ .Wrapper }} not found. Is this a standard {{ .ProjectKind }} project?"
	DefaultSuccess        = "Build finished! Check {{ .ArtifactDir }} for your {{ .ArtifactName }}."
	DefaultFailure        = "Build failed: {{ .Detail }}"
	DefaultInternalError  = "Error: unable to run {{ .Wrapper }}: {{ .Detail }}"
)

// Data is the template input for every outcome message.
type Data struct {
	Wrapper      string
	Goal         string
	ProjectPath  string
	ArtifactDir  string
	ArtifactName string
	ProjectKind  string
	Detail       string
	ExitCode     int
}

// Templates holds the message templates per outcome. Empty fields use the defaults.
type Templates struct {
	MissingWrapper string
	Success        string
	Failure        string
	InternalError  string
}

// Renderer renders outcome messages from parsed templates.
type Renderer struct {
	missingWrapper *template.Template
	success        *template.Template
	failure        *template.Template
	internalError  *template.Template
}

// New parses the templates, falling back to defaults for empty entries.
func New(t Templates) (*Renderer, error) {
	var r Renderer
	entries := []struct {
		name   string
		source string
		def    string
		dst    **template.Template
	}{
		{"missing_wrapper", t.MissingWrapper, DefaultMissingWrapper, &r.missingWrapper},
		{"success", t.Success, DefaultSuccess, &r.success},
		{"failure", t.Failure, DefaultFailure, &r.failure},
		{"internal_error", t.InternalError, DefaultInternalError, &r.internalError},
	}
	for _, entry := range entries {
		source := entry.source
		if strings.TrimSpace(source) == "" {
			source = entry.def
		}
		tmpl, err := template.New(entry.name).
			Option("missingkey=error").
			Funcs(sprig.TxtFuncMap()).
			Parse(source)
		if err != nil {
			return nil, fmt.Errorf("parse %s message: %w", entry.name, err)
		}
		*entry.dst = tmpl
	}
	return &r, nil
}

func (r *Renderer) MissingWrapper(data Data) (string, error) {
	return render(r.missingWrapper, data)
}

func (r *Renderer) Success(data Data) (string, error) {
	return render(r.success, data)
}

func (r *Renderer) Failure(data Data) (string, error) {
	return render(r.failure, data)
}

func (r *Renderer) InternalError(data Data) (string, error) {
	return render(r.internalError, data)
}

func render(tmpl *template.Template, data Data) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render %s message: %w", tmpl.Name(), err)
	}
	return buf.String(), nil
}
