package decode

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/smartcontractkit/chainlink-calldata-decoder/commands/flags"
	"github.com/smartcontractkit/chainlink-calldata-decoder/commands/text"
	"github.com/smartcontractkit/chainlink-calldata-decoder/report"
)

var (
	decodeShort = "Decode call data without an ABI"

	decodeLong = text.LongDesc(`
		Decodes EVM call data without knowing the ABI of the called contract.

		The input is split into 32 byte words, nested calls are extracted from behind their
		byte lengths, and every word is given a list of candidate types ordered from most to
		least likely. Offsets into dynamic data are listed but not resolved.

		The call data is read from the argument, from stdin when the argument is "-", or from
		a mined transaction when --tx is set. Fetching a transaction needs rpc.url in the config.
	`)

	decodeExample = text.Examples(`
		# Decode an ERC20 transfer
		calldata-decoder decode 0xa9059cbb0000000000000000000000004d278b35b4fa66e7dc694197826abf76240533af0000000000000000000000000000000000000000000000000de0b6b3a7640000

		# Decode the input of a transaction as Markdown
		calldata-decoder decode --tx 0x5c504ed432cb51138bcf09aa5e8a410dd4a1e204ef84bfed1be16dfba1b22060 --format markdown

		# Read the call data from stdin and write JSON to a file
		cat input.hex | calldata-decoder decode - -f json -o report.json
	`)
)

type decodeFlags struct {
	input  string
	txHash string
}

// NewCommand creates the "decode" command.
func NewCommand(cfg Config) (*cobra.Command, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cfg.deps()

	cmd := &cobra.Command{
		Use:     "decode [hex]",
		Short:   decodeShort,
		Long:    decodeLong,
		Example: decodeExample,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f := decodeFlags{
				txHash: flags.MustString(cmd.Flags().GetString("tx")),
			}
			if len(args) == 1 {
				f.input = args[0]
			}

			return runDecode(cmd, cfg, f)
		},
	}

	// Shared flags
	addCommonFlags(cmd)

	// Local flags specific to this command
	cmd.Flags().String("tx", "", "Hash of a mined transaction whose input to decode")

	return cmd, nil
}

// runDecode executes the decode command logic.
func runDecode(cmd *cobra.Command, cfg Config, f decodeFlags) error {
	ctx := cmd.Context()
	deps := cfg.deps()

	if (f.input == "") == (f.txHash == "") {
		return errors.New("provide either call data or --tx, but not both")
	}

	// --- Load

	s, err := loadSettings(cmd, cfg)
	if err != nil {
		return err
	}

	input := f.input
	var buildOpts []report.BuildOption

	switch {
	case f.txHash != "":
		if s.cfg.RPC.URL == "" {
			return errors.New("--tx requires rpc.url to be configured")
		}

		src, srcErr := deps.SourceFactory(ctx, s.cfg.RPC, cfg.Logger.Named("txsource"))
		if srcErr != nil {
			return fmt.Errorf("failed to create transaction source: %w", srcErr)
		}
		defer src.Close()

		tx, fetchErr := src.Fetch(ctx, f.txHash)
		if fetchErr != nil {
			return fmt.Errorf("failed to fetch transaction %s: %w", f.txHash, fetchErr)
		}

		input = tx.InputHex()
		rs := report.Source{
			TxHash:    tx.Hash.Hex(),
			ChainID:   tx.ChainID.String(),
			ChainName: tx.ChainName,
		}
		if tx.ChainSelector != 0 {
			rs.ChainSelector = strconv.FormatUint(tx.ChainSelector, 10)
		}
		if tx.To != nil {
			rs.To = tx.To.Hex()
		}
		buildOpts = append(buildOpts, report.WithSource(rs))

	case input == "-":
		b, readErr := io.ReadAll(cmd.InOrStdin())
		if readErr != nil {
			return fmt.Errorf("failed to read call data from stdin: %w", readErr)
		}
		input = strings.TrimSpace(string(b))
	}

	// --- Execute

	res, err := s.decoder(cfg.Logger).Decode(input)
	if err != nil {
		return fmt.Errorf("failed to decode call data: %w", err)
	}

	renderer, err := report.NewRenderer(s.format)
	if err != nil {
		return err
	}

	out, err := renderer.RenderReport(report.Build(res, buildOpts...))
	if err != nil {
		return err
	}

	// --- Output

	return writeOutput(cmd, cfg, out)
}
