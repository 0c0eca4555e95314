package decode

import (
	"bufio"
	"bytes"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/smartcontractkit/chainlink-calldata-decoder/commands/flags"
	"github.com/smartcontractkit/chainlink-calldata-decoder/commands/text"
	"github.com/smartcontractkit/chainlink-calldata-decoder/report"
)

var (
	batchShort = "Decode many call data inputs from a file"

	batchLong = text.LongDesc(`
		Decodes every call data input listed in a file, one per line, and renders a report for
		each. Empty lines and lines starting with # are skipped.

		Inputs are decoded concurrently, at most batch.concurrency at a time. Inputs that fail
		to decode are logged and left out of the output, and the command exits with an error
		once the remaining reports have been written.
	`)

	batchExample = text.Examples(`
		# Decode every line of inputs.txt
		calldata-decoder batch --file inputs.txt

		# Decode with 16 workers and write a single YAML document
		calldata-decoder batch --file inputs.txt --concurrency 16 -f yaml -o reports.yaml
	`)
)

type batchFlags struct {
	file        string
	concurrency int
}

// input is one line of a batch file.
type input struct {
	line int
	data string
}

// NewBatchCommand creates the "batch" command.
func NewBatchCommand(cfg Config) (*cobra.Command, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cfg.deps()

	cmd := &cobra.Command{
		Use:     "batch",
		Short:   batchShort,
		Long:    batchLong,
		Example: batchExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f := batchFlags{
				file:        flags.MustString(cmd.Flags().GetString("file")),
				concurrency: flags.MustInt(cmd.Flags().GetInt("concurrency")),
			}

			return runBatch(cmd, cfg, f)
		},
	}

	// Shared flags
	addCommonFlags(cmd)

	// Local flags specific to this command
	cmd.Flags().String("file", "", "File with one call data input per line (required)")
	cmd.Flags().Int("concurrency", 0, "Maximum inputs decoded at once (defaults to batch.concurrency)")
	_ = cmd.MarkFlagRequired("file")

	return cmd, nil
}

// runBatch executes the batch command logic.
func runBatch(cmd *cobra.Command, cfg Config, f batchFlags) error {
	ctx := cmd.Context()
	deps := cfg.deps()

	// --- Load

	s, err := loadSettings(cmd, cfg)
	if err != nil {
		return err
	}
	if f.concurrency > 0 {
		s.cfg.Batch.Concurrency = f.concurrency
	}

	b, err := deps.FileReader(f.file)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", f.file, err)
	}

	inputs, err := parseInputs(b)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", f.file, err)
	}

	// --- Execute

	data := make([]string, len(inputs))
	for i, in := range inputs {
		data[i] = in.data
	}

	items, err := s.decoder(cfg.Logger).DecodeBatch(ctx, data, s.cfg.Batch.Concurrency)
	if err != nil {
		return fmt.Errorf("batch decode interrupted: %w", err)
	}

	reports := make([]*report.Report, 0, len(items))
	var failed int
	for _, item := range items {
		if item.Err != nil {
			failed++
			cfg.Logger.Errorw("Failed to decode input", "file", f.file, "line", inputs[item.Index].line, "err", item.Err)

			continue
		}
		reports = append(reports, report.Build(item.Result))
	}
	cfg.Logger.Infow("Decoded batch", "inputs", len(items), "failed", failed)

	renderer, err := report.NewRenderer(s.format)
	if err != nil {
		return err
	}

	out, err := renderer.RenderReports(reports)
	if err != nil {
		return err
	}

	// --- Output

	if err := writeOutput(cmd, cfg, out); err != nil {
		return err
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d inputs failed to decode", failed, len(items))
	}

	return nil
}

// parseInputs returns the non-empty, non-comment lines of b with their line numbers.
func parseInputs(b []byte) ([]input, error) {
	var inputs []input

	sc := bufio.NewScanner(bytes.NewReader(b))
	sc.Buffer(make([]byte, 0, 64*1024), len(b)+1)
	for n := 1; sc.Scan(); n++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		inputs = append(inputs, input{line: n, data: line})
	}

	return inputs, sc.Err()
}
