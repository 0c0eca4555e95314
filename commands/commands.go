// Package commands provides the CLI command packages of the decoder.
//
// There are two ways to use commands from this package:
//
// 1. Via the Commands factory (recommended for most use cases):
//
//	cmds := commands.New(lggr)
//	root, err := cmds.Root()
//	if err != nil {
//	    return err
//	}
//
// 2. Via direct package imports (for advanced DI/testing):
//
//	import "github.com/smartcontractkit/chainlink-calldata-decoder/commands/decode"
//
//	cmd, err := decode.NewCommand(decode.Config{
//	    Logger: lggr,
//	    Deps:   decode.Deps{...}, // inject fakes for testing
//	})
package commands

import (
	"github.com/spf13/cobra"

	"github.com/smartcontractkit/chainlink-calldata-decoder/commands/decode"
	"github.com/smartcontractkit/chainlink-calldata-decoder/commands/text"
	"github.com/smartcontractkit/chainlink-calldata-decoder/pkg/logger"
)

var (
	rootShort = "Heuristic EVM call data decoder"

	rootLong = text.LongDesc(`
		Decodes EVM call data when the ABI of the called contract is unknown.

		Configuration is read from the file given by --config and from CALLDATA_DECODER_*
		environment variables, which take precedence.
	`)
)

// Commands provides a factory for creating CLI commands with shared configuration.
// This allows setting the logger once and reusing it across all commands.
type Commands struct {
	lggr logger.Logger
}

// New creates a new Commands factory with the given logger.
func New(lggr logger.Logger) *Commands {
	return &Commands{lggr: lggr}
}

// Decode creates the decode command for a single input.
func (c *Commands) Decode() (*cobra.Command, error) {
	return decode.NewCommand(decode.Config{Logger: c.lggr})
}

// Batch creates the batch command for decoding a file of inputs.
func (c *Commands) Batch() (*cobra.Command, error) {
	return decode.NewBatchCommand(decode.Config{Logger: c.lggr})
}

// Root creates the calldata-decoder root command with every subcommand attached.
func (c *Commands) Root() (*cobra.Command, error) {
	root := &cobra.Command{
		Use:           "calldata-decoder",
		Short:         rootShort,
		Long:          rootLong,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	for _, build := range []func() (*cobra.Command, error){c.Decode, c.Batch} {
		cmd, err := build()
		if err != nil {
			return nil, err
		}
		root.AddCommand(cmd)
	}

	return root, nil
}
