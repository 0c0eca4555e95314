package calldata

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/holiman/uint256"
)

// Interpretation is one candidate type of a word together with how the word reads as that type.
type Interpretation struct {
	Type  TypeTag
	Value string
	// Valid is false when the word cannot be shown as Type, e.g. a 2 read as a Bool.
	Valid bool
}

// Interpret renders word as the given type. The second return value is false when the word
// has no sensible reading as that type. Nothing is validated beyond what rendering needs.
func Interpret(word string, tag TypeTag) (string, bool) {
	w := strings.ToLower(word)
	if len(w) > WordSize || !isHex(w) {
		return "", false
	}
	w = padWord(w)
	raw := common.FromHex(w)

	switch tag {
	case AnyZero, ZeroUint:
		return "0", true
	case AnyMax:
		return "type(uint256).max", true
	case MaxUint128:
		return "type(uint128).max", true
	case Uint:
		return new(uint256.Int).SetBytes(raw).Dec(), true
	case Int:
		v := new(uint256.Int).SetBytes(raw)
		if v.Sign() < 0 {
			return "-" + new(uint256.Int).Neg(v).Dec(), true
		}

		return v.Dec(), true
	case Bool:
		if !isSmall(raw, 1) {
			return "", false
		}

		return strconv.FormatBool(raw[len(raw)-1] == 1), true
	case Uint8:
		if !isSmall(raw, 0xff) {
			return "", false
		}

		return strconv.FormatUint(uint64(raw[len(raw)-1]), 10), true
	case Bytes1:
		return hexutil.Encode(raw[len(raw)-1:]), true
	case Address:
		return common.BytesToAddress(raw).Hex(), true
	case Bytes20:
		return hexutil.Encode(raw[len(raw)-common.AddressLength:]), true
	case Selector:
		return hexutil.Encode(raw[:4]), true
	case String:
		return interpretString(raw)
	case Bytes:
		return hexutil.Encode(raw), true
	default:
		return "", false
	}
}

// Interpretations renders word as every type in types, in order.
func Interpretations(word string, types CandidateTypeSet) []Interpretation {
	out := make([]Interpretation, len(types))
	for i, t := range types {
		v, ok := Interpret(word, t)
		out[i] = Interpretation{Type: t, Value: v, Valid: ok}
	}

	return out
}

// isSmall reports whether the big-endian value in raw is at most limit.
func isSmall(raw []byte, limit uint64) bool {
	v := new(uint256.Int).SetBytes(raw)

	return v.IsUint64() && v.Uint64() <= limit
}

// interpretString reads raw as right-padded UTF-8 text.
func interpretString(raw []byte) (string, bool) {
	end := len(raw)
	for end > 0 && raw[end-1] == 0 {
		end--
	}
	if end == 0 {
		return "", false
	}

	text := raw[:end]
	if !utf8.Valid(text) {
		return "", false
	}
	for _, r := range string(text) {
		if !unicode.IsPrint(r) && !unicode.IsSpace(r) {
			return "", false
		}
	}

	return strconv.Quote(string(text)), true
}
