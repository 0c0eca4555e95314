package calldata

import (
	"math/big"

	"github.com/smartcontractkit/chainlink-calldata-decoder/pkg/logger"
)

// scanner walks an argument word list, pulling nested calls out of it and noting words that
// look like offsets of dynamic values. The word list is rewritten in place as calls are
// extracted so the remaining stream stays word aligned.
type scanner struct {
	lggr    logger.Logger
	words   []string
	nested  []CallRecord
	offsets []PendingOffset
}

func newScanner(lggr logger.Logger, words []string) *scanner {
	w := make([]string, len(words))
	copy(w, words)

	return &scanner{lggr: lggr, words: w}
}

func (s *scanner) scan() {
	i, skip := 0, 0
	for i < len(s.words) {
		if skip > 0 {
			i += skip
			skip = 0
			if i >= len(s.words) {
				break
			}
		}

		if s.words[i] == Empty32 {
			s.words = PadLeftAndRealign(s.words, i)
			if i >= len(s.words) {
				break
			}
		}

		word := s.words[i]
		trimmed := TrimLeadingZeros(word)
		selector, residual := FindEmbeddedSelector(word)

		switch {
		case isSelector(selector):
			if n, ok := s.extractAt(i, selector, residual); ok {
				skip = n
			}
		// Offsets and lengths never carry a selector, and rarely need more than two bytes.
		case len(trimmed) <= 4:
			s.recordOffset(i, trimmed)
		}

		i++
	}
}

// extractAt tries to pull the call starting at words[i] out of the stream, using the
// previous word as its byte length. It returns the number of words to skip.
func (s *scanner) extractAt(i int, selector, residual string) (int, bool) {
	prev, ok := Previous(s.words, i)
	if !ok {
		return 0, false
	}

	length, err := BigEndianUint(TrimLeadingZeros(prev), 128)
	if err != nil {
		s.lggr.Debugw("Previous word is not a length", "index", i, "selector", selector, "err", err)
		return 0, false
	}

	skip, ok := s.extract(i, length)
	if !ok {
		return 0, false
	}

	s.words, _ = SpliceAndShift(s.words, i, residual)

	return skip, true
}

// extract cuts length bytes out of the stream starting at words[from]. When the cut is a
// selector followed by whole words it is recorded as a nested call. A length that is zero or
// runs past the end of the stream is rejected rather than truncated, so no partial call is
// recorded.
func (s *scanner) extract(from int, length *big.Int) (int, bool) {
	flat := Join(s.words[from:])
	if length.Sign() <= 0 || length.Cmp(big.NewInt(int64(len(flat)/2))) > 0 {
		return 0, false
	}

	n := int(length.Int64())
	cut := flat[:2*n]

	// TODO: a remainder of 56 is a length-prefixed string or bytes value; cut it out too.
	if (2*n)%WordSize != SelectorSize {
		return 0, false
	}

	call := CallRecord{
		Selector: cut[:SelectorSize],
		Words:    Chunk(cut[SelectorSize:], WordSize),
	}
	s.nested = append(s.nested, call)
	s.lggr.Debugw("Extracted nested call",
		"index", from,
		"selector", call.Selector,
		"bytes", n,
		"words", len(call.Words),
	)

	// A bare selector leaves nothing to skip.
	if n == 4 {
		return 0, false
	}

	return (n - 8) * 2 / WordSize, true
}

func (s *scanner) recordOffset(i int, trimmed string) {
	v, err := BigEndianUint(trimmed, 128)
	if err != nil {
		return
	}

	value := v.Uint64()
	limit := uint64(i)*WordSize + offsetSafetyNet
	if value < limit && value%WordSize == 0 {
		s.offsets = append(s.offsets, PendingOffset{
			WordIndex:   i,
			OffsetWords: value / WordSize,
		})
		s.lggr.Debugw("Recorded offset candidate", "index", i, "offsetWords", value/WordSize)
	}
}
