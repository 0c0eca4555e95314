package calldata

// FindEmbeddedSelector checks whether word starts with a 4-byte selector followed by a
// zero 4-byte chunk. It returns the selector and the word with the selector removed, or
// Empty4 and the word unchanged.
func FindEmbeddedSelector(word string) (string, string) {
	chunks := Chunk(word, SelectorSize)
	if hasSelectorShape(chunks) {
		return chunks[0], Join(chunks[1:])
	}

	return Empty4, Join(chunks)
}

func hasSelectorShape(chunks []string) bool {
	return len(chunks) > 1 &&
		chunks[0] != Empty4 &&
		chunks[0] != Mask4 &&
		chunks[1] == Empty4
}

// isSelector reports whether s is a real selector rather than one of the 4-byte sentinels.
func isSelector(s string) bool {
	return s != Empty4 && s != Mask4
}

// SpliceAndShift replaces words[index] with replacement, appends Empty4 to make up for the
// extracted selector, and re-splits the stream. It returns the new words and the flat string.
// The input slice is not modified.
func SpliceAndShift(words []string, index int, replacement string) ([]string, string) {
	spliced := make([]string, len(words))
	copy(spliced, words)
	if index >= 0 && index < len(spliced) {
		spliced[index] = replacement
	}

	flat := Join(spliced) + Empty4

	return Chunk(flat, WordSize), flat
}

// Previous returns the word before index, if any.
func Previous(words []string, index int) (string, bool) {
	if index <= 0 || index > len(words) {
		return "", false
	}

	return words[index-1], true
}

// Next returns the word after index, if any.
func Next(words []string, index int) (string, bool) {
	if index < 0 || index >= len(words)-1 {
		return "", false
	}

	return words[index+1], true
}
