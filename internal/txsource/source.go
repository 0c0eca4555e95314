// Package txsource fetches transaction input data from an EVM node.
package txsource

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	chainsel "github.com/smartcontractkit/chain-selectors"

	"github.com/smartcontractkit/chainlink-calldata-decoder/pkg/logger"
)

var (
	// ErrNotFound is returned when the node does not know the transaction.
	ErrNotFound = errors.New("transaction not found")
	// ErrPending is returned for a transaction that has not been mined yet.
	ErrPending = errors.New("transaction is pending")
	// ErrInvalidHash is returned for a hash that is not 32 hex encoded bytes.
	ErrInvalidHash = errors.New("invalid transaction hash")
)

const (
	defaultRetryAttempts = 3
	defaultRetryDelay    = time.Second
)

// Client is the subset of ethclient.Client used to fetch transactions.
type Client interface {
	TransactionByHash(ctx context.Context, hash common.Hash) (*types.Transaction, bool, error)
	ChainID(ctx context.Context) (*big.Int, error)
	Close()
}

var _ Client = (*ethclient.Client)(nil)

// Transaction is a fetched transaction reduced to what the decoder needs.
type Transaction struct {
	Hash          common.Hash
	ChainID       *big.Int
	ChainSelector uint64 // Zero when the chain is not known to chain-selectors
	ChainName     string // Empty when the chain is not known to chain-selectors
	To            *common.Address
	Input         []byte
}

// InputHex returns the input data as a 0x prefixed hex string.
func (t *Transaction) InputHex() string {
	return hexutil.Encode(t.Input)
}

// Option configures a Source.
type Option func(*Source)

// WithRetry sets how many times each RPC call is attempted and the delay between attempts.
// Attempts below 1 are treated as 1.
func WithRetry(attempts uint, delay time.Duration) Option {
	return func(s *Source) {
		s.attempts = max(attempts, 1)
		s.delay = delay
	}
}

// WithLogger sets the logger used to report retries.
func WithLogger(lggr logger.Logger) Option {
	return func(s *Source) {
		if lggr != nil {
			s.lggr = lggr
		}
	}
}

// Source fetches transactions through a Client, retrying failed RPC calls.
type Source struct {
	client   Client
	lggr     logger.Logger
	attempts uint
	delay    time.Duration
}

// New returns a Source reading from client.
func New(client Client, opts ...Option) *Source {
	s := &Source{
		client:   client,
		lggr:     logger.Nop(),
		attempts: defaultRetryAttempts,
		delay:    defaultRetryDelay,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Dial connects to the node at url and returns a Source reading from it.
func Dial(ctx context.Context, url string, opts ...Option) (*Source, error) {
	client, err := ethclient.DialContext(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("failed to dial rpc: %w", err)
	}

	return New(client, opts...), nil
}

// Close closes the underlying client.
func (s *Source) Close() {
	s.client.Close()
}

// Fetch returns the transaction with the given hash. Unknown and pending transactions are not
// retried.
func (s *Source) Fetch(ctx context.Context, hash string) (*Transaction, error) {
	h, err := parseHash(hash)
	if err != nil {
		return nil, err
	}

	tx, err := retry.DoWithData(func() (*types.Transaction, error) {
		tx, pending, err := s.client.TransactionByHash(ctx, h)
		if errors.Is(err, ethereum.NotFound) {
			return nil, retry.Unrecoverable(fmt.Errorf("%w: %s", ErrNotFound, h.Hex()))
		}
		if err != nil {
			return nil, err
		}
		if pending {
			return nil, retry.Unrecoverable(fmt.Errorf("%w: %s", ErrPending, h.Hex()))
		}

		return tx, nil
	}, s.retryOpts(ctx, "TransactionByHash")...)
	if err != nil {
		return nil, err
	}

	chainID, err := retry.DoWithData(func() (*big.Int, error) {
		return s.client.ChainID(ctx)
	}, s.retryOpts(ctx, "ChainID")...)
	if err != nil {
		return nil, fmt.Errorf("failed to get chain id: %w", err)
	}

	out := &Transaction{
		Hash:    h,
		ChainID: chainID,
		To:      tx.To(),
		Input:   tx.Data(),
	}

	details, err := chainsel.GetChainDetailsByChainIDAndFamily(chainID.String(), chainsel.FamilyEVM)
	if err != nil {
		s.lggr.Debugw("Chain is not known to chain-selectors", "chainID", chainID.String(), "err", err)
	} else {
		out.ChainSelector = details.ChainSelector
		out.ChainName = details.ChainName
	}

	return out, nil
}

func (s *Source) retryOpts(ctx context.Context, method string) []retry.Option {
	return []retry.Option{
		retry.Context(ctx),
		retry.Attempts(s.attempts),
		retry.Delay(s.delay),
		retry.DelayType(retry.FixedDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(attempt uint, err error) {
			s.lggr.Debugw("Retrying RPC call", "method", method, "attempt", attempt+1, "err", err)
		}),
	}
}

func parseHash(hash string) (common.Hash, error) {
	b, err := hexutil.Decode(hash)
	if err != nil {
		return common.Hash{}, fmt.Errorf("%w %q: %w", ErrInvalidHash, hash, err)
	}
	if len(b) != common.HashLength {
		return common.Hash{}, fmt.Errorf("%w %q: expected %d bytes, got %d", ErrInvalidHash, hash, common.HashLength, len(b))
	}

	return common.BytesToHash(b), nil
}
