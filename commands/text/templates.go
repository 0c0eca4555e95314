// Package text formats help text for CLI commands.
package text

import (
	"strings"
)

// Indentation is the indentation applied to every example line.
const Indentation = `  `

// LongDesc trims a command's long description, which is usually written as an indented raw
// string literal.
func LongDesc(s string) string {
	return dedent(s)
}

// Examples trims a command's examples and indents every line by Indentation.
func Examples(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}

	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = Indentation + strings.TrimSpace(line)
	}

	return strings.Join(lines, "\n")
}

// dedent trims s and strips the leading whitespace of every line.
func dedent(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}

	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}

	return strings.Join(lines, "\n")
}
