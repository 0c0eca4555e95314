package calldata

import (
	"errors"
	"strings"
)

const (
	// WordSize is the number of hex digits in one 32-byte word.
	WordSize = 64
	// SelectorSize is the number of hex digits in a 4-byte method selector.
	SelectorSize = 8

	// Empty4 is the 4-byte zero pattern. It doubles as the "no selector" sentinel.
	Empty4 = "00000000"
	// Mask4 is the 4-byte all-ones pattern.
	Mask4 = "ffffffff"

	// offsetSafetyNet bounds how far past the current word an offset may point.
	offsetSafetyNet = 1920
	// realignedWordSize is the length a word is cut back to after left padding.
	realignedWordSize = WordSize - SelectorSize
)

var (
	// Empty32 is the all-zero word.
	Empty32 = strings.Repeat("0", WordSize)
	// MaxUint256Word is the all-ones word.
	MaxUint256Word = strings.Repeat("f", WordSize)
	// MaxUint128Word is a word with the upper 128 bits clear and the lower 128 bits set.
	MaxUint128Word = strings.Repeat("0", WordSize/2) + strings.Repeat("f", WordSize/2)
)

var (
	// ErrInputTooShort is returned when the input cannot hold a selector.
	ErrInputTooShort = errors.New("call data shorter than a 4-byte selector")
	// ErrInvalidHex is returned when the input contains non-hex characters.
	ErrInvalidHex = errors.New("call data is not valid hex")
	// ErrWordTooWide is returned when a hex string has more digits than the target width holds.
	ErrWordTooWide = errors.New("hex string wider than target bit width")
	// ErrInvalidBitWidth is returned for bit widths that are not a positive multiple of 8 up to 512.
	ErrInvalidBitWidth = errors.New("bit width must be a positive multiple of 8 no larger than 512")
)
