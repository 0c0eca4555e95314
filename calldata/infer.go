package calldata

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// addressDigits is the trimmed length of a left-padded 20-byte address.
const addressDigits = 40

// InferTypes returns every type that plausibly fits word, most likely first.
// Rules are checked in order and the first match wins. Words shorter than 64 digits are
// treated as if left-padded with zeros.
func InferTypes(word string) CandidateTypeSet {
	w := strings.ToLower(word)

	if w == Empty32 {
		return CandidateTypeSet{AnyZero}
	}
	if len(w) > WordSize || !isHex(w) {
		return CandidateTypeSet{Bytes}
	}
	if TrimLeadingZeros(w) == "" {
		return CandidateTypeSet{ZeroUint}
	}

	w = padWord(w)
	switch w {
	case MaxUint128Word:
		return CandidateTypeSet{MaxUint128}
	case MaxUint256Word:
		return CandidateTypeSet{AnyMax}
	}

	chunks := Chunk(w, SelectorSize)
	if hasSelectorShape(chunks) {
		return CandidateTypeSet{Selector, String, Bytes}
	}
	// Negative two's complement values fill the high bits with ones.
	if chunks[0] == Mask4 {
		return CandidateTypeSet{Int}
	}

	if len(TrimLeadingZeros(w)) == addressDigits {
		return CandidateTypeSet{Address, Bytes20, Uint}
	}

	value := new(uint256.Int).SetBytes(common.FromHex(w))
	if value.IsUint64() {
		switch v := value.Uint64(); {
		case v <= 1:
			return CandidateTypeSet{Uint8, Bytes1, Bool}
		case v <= 8:
			return CandidateTypeSet{Uint8, Bytes1}
		}
	}

	return CandidateTypeSet{Int, String, Bytes}
}

func padWord(w string) string {
	if len(w) >= WordSize {
		return w
	}

	return strings.Repeat("0", WordSize-len(w)) + w
}
