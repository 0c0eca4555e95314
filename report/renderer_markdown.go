package report

import (
	"bytes"
	"embed"
	"fmt"
	"strings"
	"text/template"
)

//go:embed templates/markdown/*.tmpl
var markdownTemplateFS embed.FS

var _ Renderer = (*MarkdownRenderer)(nil)

// MarkdownRenderer renders reports as Markdown with one table per call.
type MarkdownRenderer struct {
	reportTmpl *template.Template
	callTmpl   *template.Template
}

// NewMarkdownRenderer creates a new MarkdownRenderer with compiled templates
func NewMarkdownRenderer() *MarkdownRenderer {
	r := &MarkdownRenderer{}
	r.initTemplates()

	return r
}

func (r *MarkdownRenderer) initTemplates() {
	funcMap := template.FuncMap{
		"renderCall": r.renderCallHelper,
		"candidates": markdownCandidates,
	}

	r.reportTmpl = template.Must(template.New("report.tmpl").Funcs(funcMap).ParseFS(markdownTemplateFS, "templates/markdown/report.tmpl"))
	r.callTmpl = template.Must(template.New("call.tmpl").Funcs(funcMap).ParseFS(markdownTemplateFS, "templates/markdown/call.tmpl"))
}

// RenderReport renders a Report as Markdown.
func (r *MarkdownRenderer) RenderReport(rep *Report) (string, error) {
	var buf bytes.Buffer
	if err := r.reportTmpl.Execute(&buf, rep); err != nil {
		return "", fmt.Errorf("%w report: %w", ErrRender, err)
	}

	return buf.String(), nil
}

// RenderReports renders each report in turn, separated by a horizontal rule.
func (r *MarkdownRenderer) RenderReports(reps []*Report) (string, error) {
	out := make([]string, len(reps))
	for i, rep := range reps {
		s, err := r.RenderReport(rep)
		if err != nil {
			return "", err
		}
		out[i] = s
	}

	return strings.Join(out, "\n---\n\n"), nil
}

// RenderCall renders a call as a Markdown table of its arguments.
func (r *MarkdownRenderer) RenderCall(c CallReport) (string, error) {
	var buf bytes.Buffer
	if err := r.callTmpl.Execute(&buf, c); err != nil {
		return "", fmt.Errorf("%w call: %w", ErrRender, err)
	}

	return buf.String(), nil
}

// markdownCandidates lists the candidates of a word for a single table cell. Candidates with no
// valid reading are shown struck through.
func markdownCandidates(cs []CandidateReport) string {
	if len(cs) == 0 {
		return "_unclassified_"
	}

	parts := make([]string, len(cs))
	for i, c := range cs {
		if c.Valid {
			parts[i] = fmt.Sprintf("%s: `%s`", c.Type, c.Value)
		} else {
			parts[i] = fmt.Sprintf("~~%s~~", c.Type)
		}
	}

	return strings.Join(parts, "<br>")
}

// renderCallHelper is RenderCall without the trailing newline, for embedding in the report template
func (r *MarkdownRenderer) renderCallHelper(c CallReport) (string, error) {
	s, err := r.RenderCall(c)

	return strings.TrimSuffix(s, "\n"), err
}
