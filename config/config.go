// Package config loads the decoder settings from a YAML or TOML file and the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"time"

	"github.com/spf13/viper"

	"github.com/smartcontractkit/chainlink-calldata-decoder/calldata"
	"github.com/smartcontractkit/chainlink-calldata-decoder/report"
)

// DecoderConfig configures the call data decoder.
type DecoderConfig struct {
	ClassifyOuter bool `mapstructure:"classify_outer" yaml:"classify_outer"` // Infer candidate types for the outer call as well as nested calls
}

// OutputConfig configures how reports are rendered.
type OutputConfig struct {
	Format string `mapstructure:"format" yaml:"format"` // One of text, markdown, json, yaml or toml
}

// BatchConfig configures batch decoding.
type BatchConfig struct {
	Concurrency int `mapstructure:"concurrency" yaml:"concurrency"` // Maximum number of inputs decoded at once
}

// RPCConfig is the configuration for fetching transactions from an EVM node.
//
// WARNING: URL may embed an API key and should not be logged.
type RPCConfig struct {
	URL           string        `mapstructure:"url" yaml:"url"`                       // Secret: The RPC endpoint of the node
	RetryAttempts uint          `mapstructure:"retry_attempts" yaml:"retry_attempts"` // Attempts per RPC call, including the first
	RetryDelay    time.Duration `mapstructure:"retry_delay" yaml:"retry_delay"`       // Base delay between attempts
}

// Config wraps the entire configuration for the decoder CLI.
type Config struct {
	Decoder DecoderConfig `mapstructure:"decoder" yaml:"decoder"`
	Output  OutputConfig  `mapstructure:"output" yaml:"output"`
	Batch   BatchConfig   `mapstructure:"batch" yaml:"batch"`
	RPC     RPCConfig     `mapstructure:"rpc" yaml:"rpc"`
}

// Validate reports settings that cannot be used.
func (c *Config) Validate() error {
	var errs []error

	if _, err := report.ParseFormat(c.Output.Format); err != nil {
		errs = append(errs, err)
	}
	if c.Batch.Concurrency <= 0 {
		errs = append(errs, fmt.Errorf("batch concurrency must be positive, got %d", c.Batch.Concurrency))
	}
	if c.RPC.RetryAttempts == 0 {
		errs = append(errs, errors.New("rpc retry attempts must be at least 1"))
	}
	if c.RPC.RetryDelay < 0 {
		errs = append(errs, fmt.Errorf("rpc retry delay must not be negative, got %s", c.RPC.RetryDelay))
	}

	return errors.Join(errs...)
}

// defaults are applied before the file and the environment are read.
var defaults = map[string]any{
	"decoder.classify_outer": true,
	"output.format":          string(report.FormatText),
	"batch.concurrency":      calldata.DefaultBatchConcurrency,
	"rpc.retry_attempts":     3,
	"rpc.retry_delay":        time.Second,
}

// Default returns the configuration used when no file or environment variables are set.
func Default() *Config {
	return &Config{
		Decoder: DecoderConfig{ClassifyOuter: true},
		Output:  OutputConfig{Format: string(report.FormatText)},
		Batch:   BatchConfig{Concurrency: calldata.DefaultBatchConcurrency},
		RPC: RPCConfig{
			RetryAttempts: 3,
			RetryDelay:    time.Second,
		},
	}
}

// Load loads the config from the file path, falling back to env vars if the file does not exist.
// If the file exists, any env vars that are set will override the values loaded from the file.
// An empty path loads from the environment only.
func Load(filePath string) (*Config, error) {
	v := newViper()

	if err := bindEnvs(v); err != nil {
		return nil, err
	}

	if filePath != "" {
		v.SetConfigFile(filePath)

		// If the config file exists, we continue to read it, otherwise we fallback to using
		// environment variables
		if _, err := os.Stat(filePath); !errors.Is(err, fs.ErrNotExist) {
			if err := v.ReadInConfig(); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{}
	err := v.Unmarshal(cfg)

	return cfg, err
}

// LoadEnv loads the config from the environment variables.
func LoadEnv() (*Config, error) {
	return Load("")
}

// LoadFile loads the config from a file. Environment variables are ignored.
func LoadFile(filePath string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(filePath)

	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	cfg := &Config{}
	err := v.Unmarshal(cfg)

	return cfg, err
}

func newViper() *viper.Viper {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	return v
}

var (
	// envBindings maps each config key to the environment variables that can provide its value.
	//
	// The first element is the preferred name. Any further names are legacy aliases. Viper uses
	// the first one that is set.
	envBindings = map[string][]string{
		"decoder.classify_outer": {"CALLDATA_DECODER_CLASSIFY_OUTER"},
		"output.format":          {"CALLDATA_DECODER_OUTPUT_FORMAT"},
		"batch.concurrency":      {"CALLDATA_DECODER_BATCH_CONCURRENCY"},
		"rpc.url":                {"CALLDATA_DECODER_RPC_URL", "RPC_URL"},
		"rpc.retry_attempts":     {"CALLDATA_DECODER_RPC_RETRY_ATTEMPTS"},
		"rpc.retry_delay":        {"CALLDATA_DECODER_RPC_RETRY_DELAY"},
	}
)

// bindEnvs binds the environment variables to the viper instance.
func bindEnvs(v *viper.Viper) error {
	for key, envs := range envBindings {
		// Prepend the env key to the start of the arguments
		inputs := slices.Insert(slices.Clone(envs), 0, key)

		if err := v.BindEnv(inputs...); err != nil {
			return err
		}
	}

	return nil
}
