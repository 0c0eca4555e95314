package calldata

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// Chunk splits s left to right into windows of size hex digits.
// The final window is shorter when len(s) is not a multiple of size.
func Chunk(s string, size int) []string {
	if size <= 0 || len(s) == 0 {
		return nil
	}

	chunks := make([]string, 0, (len(s)+size-1)/size)
	for i := 0; i < len(s); i += size {
		end := min(i+size, len(s))
		chunks = append(chunks, s[i:end])
	}

	return chunks
}

// Join concatenates words into one string.
func Join(words []string) string {
	return strings.Join(words, "")
}

// TrimLeadingZeros drops leading '0' digits. A word of only zeros trims to "".
func TrimLeadingZeros(word string) string {
	return strings.TrimLeft(word, "0")
}

// PadLeftAndRealign prefixes words[index] with Empty4, cuts it back to 56 digits and
// re-splits the whole list into words, shifting every later word left.
// The input slice is not modified.
func PadLeftAndRealign(words []string, index int) []string {
	if index < 0 || index >= len(words) {
		return words
	}

	padded := make([]string, len(words))
	copy(padded, words)

	w := Empty4 + padded[index]
	if len(w) > realignedWordSize {
		w = w[:realignedWordSize]
	}
	padded[index] = w

	return Chunk(Join(padded), WordSize)
}

// BigEndianUint interprets hexDigits most significant digit first as an unsigned integer
// of bitWidth bits.
func BigEndianUint(hexDigits string, bitWidth int) (*big.Int, error) {
	if bitWidth <= 0 || bitWidth%8 != 0 || bitWidth > 512 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidBitWidth, bitWidth)
	}
	if len(hexDigits) > bitWidth/4 {
		return nil, fmt.Errorf("%w: %d digits for %d bits", ErrWordTooWide, len(hexDigits), bitWidth)
	}
	if !isHex(hexDigits) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidHex, hexDigits)
	}

	// FromHex left-pads odd-length input with a zero nibble.
	return new(big.Int).SetBytes(common.FromHex(hexDigits)), nil
}

func isHex(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !('0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F') {
			return false
		}
	}

	return true
}
