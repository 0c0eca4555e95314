package report

import (
	"bytes"
	"embed"
	"fmt"
	"strings"
	"text/template"
)

//go:embed templates/text/*.tmpl
var textTemplateFS embed.FS

var _ Renderer = (*TextRenderer)(nil)

// TextRenderer renders reports as plain text using templates
type TextRenderer struct {
	reportTmpl *template.Template
	callTmpl   *template.Template
}

// NewTextRenderer creates a new TextRenderer
func NewTextRenderer() *TextRenderer {
	r := &TextRenderer{}
	r.initTemplates()

	return r
}

func (r *TextRenderer) initTemplates() {
	funcMap := template.FuncMap{
		"renderCall": r.renderCallHelper,
		"value":      candidateValue,
	}

	r.reportTmpl = template.Must(template.New("report.tmpl").Funcs(funcMap).ParseFS(textTemplateFS, "templates/text/report.tmpl"))
	r.callTmpl = template.Must(template.New("call.tmpl").Funcs(funcMap).ParseFS(textTemplateFS, "templates/text/call.tmpl"))
}

// RenderReport renders a Report as plain text
func (r *TextRenderer) RenderReport(rep *Report) (string, error) {
	var buf bytes.Buffer
	if err := r.reportTmpl.Execute(&buf, rep); err != nil {
		return "", fmt.Errorf("%w report: %w", ErrRender, err)
	}

	return buf.String(), nil
}

// RenderReports renders each report in turn, separated by a rule
func (r *TextRenderer) RenderReports(reps []*Report) (string, error) {
	out := make([]string, len(reps))
	for i, rep := range reps {
		s, err := r.RenderReport(rep)
		if err != nil {
			return "", err
		}
		out[i] = s
	}

	return strings.Join(out, "\n"+strings.Repeat("-", 40)+"\n\n"), nil
}

// RenderCall renders a single call and its arguments
func (r *TextRenderer) RenderCall(c CallReport) (string, error) {
	var buf bytes.Buffer
	if err := r.callTmpl.Execute(&buf, c); err != nil {
		return "", fmt.Errorf("%w call: %w", ErrRender, err)
	}

	return buf.String(), nil
}

// candidateValue is the value shown for a candidate, or "-" when the word has no reading as it.
func candidateValue(c CandidateReport) string {
	if !c.Valid {
		return "-"
	}

	return c.Value
}

// renderCallHelper is RenderCall without the trailing newline, for embedding in the report template
func (r *TextRenderer) renderCallHelper(c CallReport) (string, error) {
	s, err := r.RenderCall(c)

	return strings.TrimSuffix(s, "\n"), err
}
