// Package flags provides reusable flag helpers for CLI commands.
//
// Only flags shared by several commands belong here. Command-specific flags are defined
// locally in the command file.
package flags

import (
	"github.com/spf13/cobra"
)

// MustString returns the string value, ignoring the error.
// Safe to use with registered flags where GetString cannot fail.
func MustString(s string, _ error) string { return s }

// MustBool returns the bool value, ignoring the error.
// Safe to use with registered flags where GetBool cannot fail.
func MustBool(b bool, _ error) bool { return b }

// MustInt returns the int value, ignoring the error.
// Safe to use with registered flags where GetInt cannot fail.
func MustInt(i int, _ error) int { return i }

// Config adds the --config/-c flag for the path of a YAML, TOML or JSON config file.
// Retrieve the value with cmd.Flags().GetString("config").
func Config(cmd *cobra.Command) {
	cmd.Flags().StringP("config", "c", "", "Config file path (environment variables only when empty)")
}

// Format adds the --format/-f flag for the output format. An empty value defers to the config.
// Retrieve the value with cmd.Flags().GetString("format").
func Format(cmd *cobra.Command) {
	cmd.Flags().StringP("format", "f", "", "Output format: text, markdown, json, yaml or toml")
}

// ClassifyOuter adds the --classify-outer flag. Only an explicitly set value overrides the config,
// so check cmd.Flags().Changed("classify-outer") before reading it.
func ClassifyOuter(cmd *cobra.Command) {
	cmd.Flags().Bool("classify-outer", true, "Infer candidate types for the outer call's words")
}

// Output adds the --out/-o flag for specifying output file path.
// Retrieve the value with cmd.Flags().GetString("out").
//
// Usage:
//
//	flags.Output(cmd, "")
//	// later in RunE:
//	outPath, _ := cmd.Flags().GetString("out")
func Output(cmd *cobra.Command, defaultValue string) {
	cmd.Flags().StringP("out", "o", defaultValue, "Output file path (stdout when empty)")
}
