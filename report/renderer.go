package report

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnsupportedFormat is returned for an output format with no renderer.
var ErrUnsupportedFormat = errors.New("unsupported output format")

// Format names an output format.
type Format string

// Supported output formats.
const (
	FormatText     Format = "text"
	FormatMarkdown Format = "markdown"
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
	FormatTOML     Format = "toml"
)

// Formats lists every supported output format.
var Formats = []Format{FormatText, FormatMarkdown, FormatJSON, FormatYAML, FormatTOML}

// ParseFormat returns the Format named by s. "md" and "yml" are accepted as aliases.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatMarkdown, FormatJSON, FormatYAML, FormatTOML:
		return f, nil
	case "md":
		return FormatMarkdown, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
	}
}

// ErrRender is returned when a report cannot be rendered in the requested format.
var ErrRender = errors.New("failed to render")

// Renderer turns a Report into a concrete output format.
type Renderer interface {
	RenderReport(r *Report) (string, error)
	RenderReports(rs []*Report) (string, error)
	RenderCall(c CallReport) (string, error)
}

// NewRenderer returns the renderer for the given format.
func NewRenderer(f Format) (Renderer, error) {
	switch f {
	case FormatText:
		return NewTextRenderer(), nil
	case FormatMarkdown:
		return NewMarkdownRenderer(), nil
	case FormatJSON, FormatYAML, FormatTOML:
		return NewStructuredRenderer(f)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}
