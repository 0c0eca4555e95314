package decode

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/smartcontractkit/chainlink-calldata-decoder/config"
	"github.com/smartcontractkit/chainlink-calldata-decoder/pkg/logger"
	"github.com/smartcontractkit/chainlink-calldata-decoder/report"
)

const batchFile = `# ERC20 calls
` + transferCalldata + `

0xd0e30db0
  0x095ea7b3000000000000000000000000c02aaa39b223fe8d0a0e5c4f27ead9083c756cc20000000000000000000000000000000000000000000000000000000000002710
`

func TestBatch(t *testing.T) {
	t.Parallel()

	fs := newMemFS(map[string]string{"inputs.txt": batchFile})
	deps := Deps{ConfigLoader: staticConfig(nil), FileReader: fs.read}

	out, err := execute(t, Config{Logger: logger.Test(t), Deps: deps}, NewBatchCommand, "--file", "inputs.txt", "-f", "json")
	require.NoError(t, err)

	var doc struct {
		Reports []report.Report `json:"reports"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))

	require.Len(t, doc.Reports, 3)
	assert.Equal(t, "a9059cbb", doc.Reports[0].Call.Selector)
	assert.Equal(t, "d0e30db0", doc.Reports[1].Call.Selector)
	assert.Empty(t, doc.Reports[1].Call.Arguments)
	assert.Equal(t, "095ea7b3", doc.Reports[2].Call.Selector)
}

func TestBatch_Failures(t *testing.T) {
	t.Parallel()

	fs := newMemFS(map[string]string{
		"inputs.txt": transferCalldata + "\n0x12\nnot hex at all\n",
	})
	deps := Deps{ConfigLoader: staticConfig(nil), FileReader: fs.read, FileWriter: fs.write}
	lggr, logs := logger.TestObserved(t, zapcore.InfoLevel)

	_, err := execute(t, Config{Logger: lggr, Deps: deps}, NewBatchCommand, "--file", "inputs.txt", "-o", "out.md", "-f", "md")
	require.Error(t, err)
	assert.Equal(t, "2 of 3 inputs failed to decode", err.Error())

	failures := logs.FilterMessage("Failed to decode input").All()
	require.Len(t, failures, 2)
	lines := []any{failures[0].ContextMap()["line"], failures[1].ContextMap()["line"]}
	assert.ElementsMatch(t, []any{int64(2), int64(3)}, lines)

	written, err := fs.read("out.md")
	require.NoError(t, err)
	assert.Contains(t, string(written), "**Selector:** `0xa9059cbb`")
	assert.NotContains(t, string(written), "\n---\n")
}

func TestBatch_ConcurrencyFlag(t *testing.T) {
	t.Parallel()

	fs := newMemFS(map[string]string{"inputs.txt": batchFile})

	var loaded *config.Config
	loader := func(string) (*config.Config, error) {
		loaded = config.Default()

		return loaded, nil
	}
	deps := Deps{ConfigLoader: loader, FileReader: fs.read}

	_, err := execute(t, Config{Logger: logger.Nop(), Deps: deps}, NewBatchCommand, "--file", "inputs.txt", "--concurrency", "9")
	require.NoError(t, err)

	assert.Equal(t, 9, loaded.Batch.Concurrency)
}

func TestBatch_Errors(t *testing.T) {
	t.Parallel()

	t.Run("missing file flag", func(t *testing.T) {
		t.Parallel()

		_, err := execute(t, Config{Logger: logger.Nop(), Deps: Deps{ConfigLoader: staticConfig(nil)}}, NewBatchCommand)
		require.Error(t, err)
		assert.Contains(t, err.Error(), `required flag(s) "file" not set`)
	})

	t.Run("unreadable file", func(t *testing.T) {
		t.Parallel()

		deps := Deps{ConfigLoader: staticConfig(nil), FileReader: newMemFS(nil).read}

		_, err := execute(t, Config{Logger: logger.Nop(), Deps: deps}, NewBatchCommand, "--file", "missing.txt")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read missing.txt")
	})
}

func TestParseInputs(t *testing.T) {
	t.Parallel()

	got, err := parseInputs([]byte(batchFile))
	require.NoError(t, err)

	require.Len(t, got, 3)
	assert.Equal(t, input{line: 2, data: transferCalldata}, got[0])
	assert.Equal(t, input{line: 4, data: "0xd0e30db0"}, got[1])
	assert.Equal(t, 5, got[2].line)

	empty, err := parseInputs(nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}
