package decode

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/smartcontractkit/chainlink-calldata-decoder/calldata"
	"github.com/smartcontractkit/chainlink-calldata-decoder/commands/flags"
	"github.com/smartcontractkit/chainlink-calldata-decoder/config"
	"github.com/smartcontractkit/chainlink-calldata-decoder/pkg/logger"
	"github.com/smartcontractkit/chainlink-calldata-decoder/report"
)

// Config holds the configuration for decode commands.
type Config struct {
	// Logger is the logger to use for command output. Required.
	Logger logger.Logger

	// Deps holds optional dependencies that can be overridden.
	// If fields are nil, production defaults are used.
	Deps Deps
}

// Validate checks that all required configuration fields are set.
func (c Config) Validate() error {
	var missing []string

	if c.Logger == nil {
		missing = append(missing, "Logger")
	}

	if len(missing) > 0 {
		return errors.New("decode.Config: missing required fields: " + strings.Join(missing, ", "))
	}

	return nil
}

// deps returns the Deps with defaults applied.
func (c *Config) deps() *Deps {
	c.Deps.applyDefaults()

	return &c.Deps
}

// settings is the loaded config with command line overrides applied.
type settings struct {
	cfg    *config.Config
	format report.Format
}

// loadSettings loads the config file named by --config and applies the --format and
// --classify-outer overrides.
func loadSettings(cmd *cobra.Command, cfg Config) (*settings, error) {
	deps := cfg.deps()

	appCfg, err := deps.ConfigLoader(flags.MustString(cmd.Flags().GetString("config")))
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if format := flags.MustString(cmd.Flags().GetString("format")); format != "" {
		appCfg.Output.Format = format
	}
	if cmd.Flags().Changed("classify-outer") {
		appCfg.Decoder.ClassifyOuter = flags.MustBool(cmd.Flags().GetBool("classify-outer"))
	}

	if err := appCfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	format, err := report.ParseFormat(appCfg.Output.Format)
	if err != nil {
		return nil, err
	}

	return &settings{cfg: appCfg, format: format}, nil
}

// decoder builds a Decoder from the settings.
func (s *settings) decoder(lggr logger.Logger) *calldata.Decoder {
	return calldata.NewDecoder(
		calldata.WithLogger(lggr.Named("decoder")),
		calldata.WithClassifyOuter(s.cfg.Decoder.ClassifyOuter),
	)
}

// writeOutput writes out to the --out file, or to the command's output when it is not set.
func writeOutput(cmd *cobra.Command, cfg Config, out string) error {
	path := flags.MustString(cmd.Flags().GetString("out"))
	if path == "" {
		_, err := fmt.Fprint(cmd.OutOrStdout(), out)
		return err
	}

	if err := cfg.deps().FileWriter(path, []byte(out)); err != nil {
		return fmt.Errorf("failed to write output to %s: %w", path, err)
	}
	cfg.Logger.Infow("Report written", "path", path)

	return nil
}

// addCommonFlags registers the flags shared by every decode command.
func addCommonFlags(cmd *cobra.Command) {
	flags.Config(cmd)
	flags.Format(cmd)
	flags.ClassifyOuter(cmd)
	flags.Output(cmd, "")
}
