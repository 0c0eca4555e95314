package report

import (
	"fmt"

	"github.com/goccy/go-json"
	"github.com/goccy/go-yaml"
	"github.com/pelletier/go-toml/v2"
)

var _ Renderer = (*StructuredRenderer)(nil)

// StructuredRenderer renders reports as JSON, YAML or TOML documents.
type StructuredRenderer struct {
	format  Format
	marshal func(v any) ([]byte, error)
}

// reportList wraps a batch of reports, since TOML documents cannot have an array at the root.
type reportList struct {
	Reports []*Report `json:"reports" yaml:"reports" toml:"reports"`
}

// NewStructuredRenderer returns a renderer for one of the structured formats.
func NewStructuredRenderer(f Format) (*StructuredRenderer, error) {
	r := &StructuredRenderer{format: f}
	switch f {
	case FormatJSON:
		r.marshal = func(v any) ([]byte, error) {
			return json.MarshalIndent(v, "", "  ")
		}
	case FormatYAML:
		r.marshal = yaml.Marshal
	case FormatTOML:
		r.marshal = toml.Marshal
	default:
		return nil, fmt.Errorf("%w: %q is not a structured format", ErrUnsupportedFormat, f)
	}

	return r, nil
}

// Format returns the format the renderer produces.
func (r *StructuredRenderer) Format() Format {
	return r.format
}

// RenderReport renders a single report as a document.
func (r *StructuredRenderer) RenderReport(rep *Report) (string, error) {
	return r.render(rep, "report")
}

// RenderReports renders a batch of reports as one document with a top level "reports" list.
func (r *StructuredRenderer) RenderReports(reps []*Report) (string, error) {
	return r.render(reportList{Reports: reps}, "reports")
}

// RenderCall renders a single call as a document.
func (r *StructuredRenderer) RenderCall(c CallReport) (string, error) {
	return r.render(c, "call")
}

func (r *StructuredRenderer) render(v any, what string) (string, error) {
	b, err := r.marshal(v)
	if err != nil {
		return "", fmt.Errorf("%w %s as %s: %w", ErrRender, what, r.format, err)
	}

	out := string(b)
	if len(out) > 0 && out[len(out)-1] != '\n' {
		out += "\n"
	}

	return out, nil
}
