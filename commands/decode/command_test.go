package decode

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartcontractkit/chainlink-calldata-decoder/config"
	"github.com/smartcontractkit/chainlink-calldata-decoder/internal/txsource"
	"github.com/smartcontractkit/chainlink-calldata-decoder/pkg/logger"
)

const (
	recipientWord = "0000000000000000000000004d278b35b4fa66e7dc694197826abf76240533af"
	amountWord    = "00000000000000000000000000000000000000000000000005f7aab8c56b0000"

	transferCalldata = "0xa9059cbb" + recipientWord + amountWord

	txHash = "0x5c504ed432cb51138bcf09aa5e8a410dd4a1e204ef84bfed1be16dfba1b22060"
)

// fakeSource serves one transaction and records the hashes it was asked for.
type fakeSource struct {
	tx     *txsource.Transaction
	err    error
	hashes []string
	closed bool
}

func (s *fakeSource) Fetch(_ context.Context, hash string) (*txsource.Transaction, error) {
	s.hashes = append(s.hashes, hash)
	if s.err != nil {
		return nil, s.err
	}

	return s.tx, nil
}

func (s *fakeSource) Close() { s.closed = true }

// memFS is an in-memory file store for the FileReader and FileWriter deps.
type memFS struct {
	mu    sync.Mutex
	files map[string][]byte
}

func newMemFS(files map[string]string) *memFS {
	fs := &memFS{files: make(map[string][]byte)}
	for k, v := range files {
		fs.files[k] = []byte(v)
	}

	return fs
}

func (m *memFS) read(path string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	b, ok := m.files[path]
	if !ok {
		return nil, errors.New("file not found: " + path)
	}

	return b, nil
}

func (m *memFS) write(path string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.files[path] = data

	return nil
}

func staticConfig(mutate func(c *config.Config)) ConfigLoaderFunc {
	return func(string) (*config.Config, error) {
		cfg := config.Default()
		if mutate != nil {
			mutate(cfg)
		}

		return cfg, nil
	}
}

func execute(t *testing.T, cfg Config, newCmd func(Config) (*cobra.Command, error), args ...string) (string, error) {
	t.Helper()

	cmd, err := newCmd(cfg)
	require.NoError(t, err)

	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)

	err = cmd.ExecuteContext(t.Context())

	return out.String(), err
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	require.NoError(t, Config{Logger: logger.Nop()}.Validate())

	err := Config{}.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing required fields: Logger")

	_, err = NewCommand(Config{})
	require.Error(t, err)
	_, err = NewBatchCommand(Config{})
	require.Error(t, err)
}

func TestNewCommand_Structure(t *testing.T) {
	t.Parallel()

	cmd, err := NewCommand(Config{Logger: logger.Nop()})
	require.NoError(t, err)

	assert.Equal(t, "decode [hex]", cmd.Use)
	assert.Equal(t, decodeShort, cmd.Short)
	assert.NotEmpty(t, cmd.Long)
	assert.NotEmpty(t, cmd.Example)

	for _, name := range []string{"config", "format", "classify-outer", "out", "tx"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), name)
	}

	batch, err := NewBatchCommand(Config{Logger: logger.Nop()})
	require.NoError(t, err)

	for _, name := range []string{"config", "format", "classify-outer", "out", "file", "concurrency"} {
		assert.NotNil(t, batch.Flags().Lookup(name), name)
	}
}
