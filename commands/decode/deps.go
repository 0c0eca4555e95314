// Package decode provides the CLI commands that decode call data without an ABI.
package decode

import (
	"context"
	"os"

	"github.com/smartcontractkit/chainlink-calldata-decoder/config"
	"github.com/smartcontractkit/chainlink-calldata-decoder/internal/txsource"
	"github.com/smartcontractkit/chainlink-calldata-decoder/pkg/logger"
)

// TxSource fetches transactions by hash.
type TxSource interface {
	Fetch(ctx context.Context, hash string) (*txsource.Transaction, error)
	Close()
}

// ConfigLoaderFunc loads the configuration from a file path, or from the environment when empty.
type ConfigLoaderFunc func(path string) (*config.Config, error)

// SourceFactoryFunc creates a transaction source for the configured RPC endpoint.
type SourceFactoryFunc func(ctx context.Context, cfg config.RPCConfig, lggr logger.Logger) (TxSource, error)

// FileReaderFunc reads a whole file.
type FileReaderFunc func(path string) ([]byte, error)

// FileWriterFunc writes a whole file.
type FileWriterFunc func(path string, data []byte) error

// defaultSourceFactory is the production implementation that dials the RPC endpoint.
func defaultSourceFactory(ctx context.Context, cfg config.RPCConfig, lggr logger.Logger) (TxSource, error) {
	return txsource.Dial(ctx, cfg.URL,
		txsource.WithRetry(cfg.RetryAttempts, cfg.RetryDelay),
		txsource.WithLogger(lggr),
	)
}

// defaultFileWriter is the production implementation that writes to disk.
func defaultFileWriter(path string, data []byte) error {
	return os.WriteFile(path, data, 0o644) //nolint:gosec // reports are not secret
}

// Deps holds the injectable dependencies for decode commands.
// All fields are optional; nil values will use production defaults.
type Deps struct {
	// ConfigLoader loads the configuration.
	// Default: config.Load
	ConfigLoader ConfigLoaderFunc

	// SourceFactory creates the transaction source used by --tx.
	// Default: txsource.Dial
	SourceFactory SourceFactoryFunc

	// FileReader reads batch input files.
	// Default: os.ReadFile
	FileReader FileReaderFunc

	// FileWriter writes reports when --out is set.
	// Default: os.WriteFile
	FileWriter FileWriterFunc
}

// applyDefaults fills in nil dependencies with production defaults.
func (d *Deps) applyDefaults() {
	if d.ConfigLoader == nil {
		d.ConfigLoader = config.Load
	}
	if d.SourceFactory == nil {
		d.SourceFactory = defaultSourceFactory
	}
	if d.FileReader == nil {
		d.FileReader = os.ReadFile
	}
	if d.FileWriter == nil {
		d.FileWriter = defaultFileWriter
	}
}
