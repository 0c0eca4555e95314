package calldata

import (
	"github.com/smartcontractkit/chainlink-calldata-decoder/pkg/logger"
)

// Decoder turns raw call data into a best-guess breakdown without an ABI.
// A Decoder holds no per-call state and is safe for concurrent use.
type Decoder struct {
	lggr          logger.Logger
	classifyOuter bool
	resolver      OffsetResolver
}

// Option configures a Decoder.
type Option func(*Decoder)

// WithLogger sets the logger used for debug output while scanning.
func WithLogger(lggr logger.Logger) Option {
	return func(d *Decoder) {
		if lggr != nil {
			d.lggr = lggr
		}
	}
}

// WithClassifyOuter controls whether the outer call's words get candidate types.
// Nested calls are always classified.
func WithClassifyOuter(classify bool) Option {
	return func(d *Decoder) {
		d.classifyOuter = classify
	}
}

// WithOffsetResolver sets the stage that consumes offset candidates after the scan.
func WithOffsetResolver(r OffsetResolver) Option {
	return func(d *Decoder) {
		if r != nil {
			d.resolver = r
		}
	}
}

// NewDecoder returns a Decoder. By default the outer call is classified and offsets are
// passed through unresolved.
func NewDecoder(opts ...Option) *Decoder {
	d := &Decoder{
		lggr:          logger.Nop(),
		classifyOuter: true,
		resolver:      NopOffsetResolver{},
	}
	for _, opt := range opts {
		opt(d)
	}

	return d
}

// Decode decodes a hex call data string, with or without the 0x prefix.
func (d *Decoder) Decode(input string) (*Result, error) {
	selector, words, layout, err := ParseSelector(input)
	if err != nil {
		return nil, err
	}

	s := newScanner(d.lggr, words)
	s.scan()

	res := &Result{
		Input:  Join(append([]string{selector}, words...)),
		Layout: layout,
		Call: CallRecord{
			Selector: selector,
			Words:    s.words,
		},
		Nested: s.nested,
	}
	res.PendingOffsets = d.resolver.ResolveOffsets(res.Call, s.offsets)

	for i := range res.Nested {
		res.Nested[i].classify()
	}
	if d.classifyOuter {
		res.Call.classify()
	}

	d.lggr.Debugw("Decoded call data",
		"selector", selector,
		"layout", layout.String(),
		"words", len(res.Call.Words),
		"nested", len(res.Nested),
		"offsets", len(res.PendingOffsets),
	)

	return res, nil
}

// Decode decodes input with a default Decoder.
func Decode(input string) (*Result, error) {
	return NewDecoder().Decode(input)
}
