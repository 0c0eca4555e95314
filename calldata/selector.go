package calldata

import (
	"fmt"
	"strings"
)

// ParseSelector splits call data into its method selector and argument words.
//
// Word-aligned input is cut into 64-digit words and the selector is taken from the head of
// word 0, which is left 56 digits long. Any other length falls back to byte chunks that are
// re-accumulated into words after the selector; the last word may be short.
func ParseSelector(input string) (string, []string, Layout, error) {
	data, err := normalize(input)
	if err != nil {
		return "", nil, LayoutPacked, err
	}

	if len(data)%WordSize == 0 {
		words := Chunk(data, WordSize)
		selector := words[0][:SelectorSize]
		words[0] = words[0][SelectorSize:]

		return selector, words, LayoutAligned, nil
	}

	bytes := Chunk(data, 2)
	selector := Join(bytes[:4])

	var words []string
	for _, b := range bytes[4:] {
		if len(words) == 0 || len(words[len(words)-1]) == WordSize {
			words = append(words, "")
		}
		words[len(words)-1] += b
	}

	return selector, words, LayoutPacked, nil
}

// normalize strips the 0x prefix, lowercases and validates the input.
func normalize(input string) (string, error) {
	data := strings.TrimSpace(input)
	if len(data) >= 2 && data[0] == '0' && (data[1] == 'x' || data[1] == 'X') {
		data = data[2:]
	}
	if len(data) < SelectorSize {
		return "", fmt.Errorf("%w: got %d hex digits", ErrInputTooShort, len(data))
	}
	if !isHex(data) {
		return "", ErrInvalidHex
	}

	return strings.ToLower(data), nil
}
