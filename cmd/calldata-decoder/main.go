// Package main is the calldata-decoder CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/smartcontractkit/chainlink-calldata-decoder/commands"
	"github.com/smartcontractkit/chainlink-calldata-decoder/pkg/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	lggr, err := logger.New()
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer func() { _ = lggr.Sync() }()

	root, err := commands.New(lggr).Root()
	if err != nil {
		return fmt.Errorf("build commands: %w", err)
	}

	return root.ExecuteContext(ctx)
}
