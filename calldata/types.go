package calldata

import (
	"fmt"
	"strings"
)

// TypeTag names one ABI value interpretation a word may have.
type TypeTag int

const (
	AnyZero    TypeTag = iota // all-zero word, a zero of any type
	AnyMax                    // all-ones word, type(uint256).max or -1
	Uint                      // uint256
	Int                       // int256
	Bytes                     // dynamic bytes or an unknown 32 byte value
	Bool                      // bool
	Uint8                     // uint8 or a small enum
	Bytes1                    // bytes1
	Bytes20                   // bytes20
	Address                   // address
	Selector                  // bytes4 function selector
	String                    // string data
	ZeroUint                  // short all-zero word
	MaxUint128                // type(uint128).max
)

var typeTagNames = [...]string{
	AnyZero:    "AnyZero",
	AnyMax:     "AnyMax",
	Uint:       "Uint",
	Int:        "Int",
	Bytes:      "Bytes",
	Bool:       "Bool",
	Uint8:      "Uint8",
	Bytes1:     "Bytes1",
	Bytes20:    "Bytes20",
	Address:    "Address",
	Selector:   "Selector",
	String:     "String",
	ZeroUint:   "ZeroUint",
	MaxUint128: "MaxUint128",
}

func (t TypeTag) String() string {
	if t < 0 || int(t) >= len(typeTagNames) {
		return fmt.Sprintf("TypeTag(%d)", int(t))
	}

	return typeTagNames[t]
}

// IsSentinel reports whether the tag describes a special bit pattern rather than a value type.
func (t TypeTag) IsSentinel() bool {
	switch t {
	case AnyZero, AnyMax, ZeroUint, MaxUint128:
		return true
	default:
		return false
	}
}

// MarshalText implements encoding.TextMarshaler.
func (t TypeTag) MarshalText() ([]byte, error) {
	if t < 0 || int(t) >= len(typeTagNames) {
		return nil, fmt.Errorf("unknown type tag %d", int(t))
	}

	return []byte(typeTagNames[t]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *TypeTag) UnmarshalText(text []byte) error {
	tag, err := ParseTypeTag(string(text))
	if err != nil {
		return err
	}
	*t = tag

	return nil
}

// ParseTypeTag returns the tag with the given name. Matching is case-insensitive.
func ParseTypeTag(name string) (TypeTag, error) {
	for i, n := range typeTagNames {
		if strings.EqualFold(n, name) {
			return TypeTag(i), nil
		}
	}

	return 0, fmt.Errorf("unknown type tag %q", name)
}

// CandidateTypeSet holds every type judged plausible for one word, most likely first.
type CandidateTypeSet []TypeTag

// Primary returns the most likely candidate.
func (c CandidateTypeSet) Primary() TypeTag {
	if len(c) == 0 {
		return AnyZero
	}

	return c[0]
}

// Contains reports whether tag is one of the candidates.
func (c CandidateTypeSet) Contains(tag TypeTag) bool {
	for _, t := range c {
		if t == tag {
			return true
		}
	}

	return false
}

// String renders the set as "A|B|C".
func (c CandidateTypeSet) String() string {
	names := make([]string, len(c))
	for i, t := range c {
		names[i] = t.String()
	}

	return strings.Join(names, "|")
}

// CallRecord is one decoded call: the outer call or a call nested in its payload.
type CallRecord struct {
	Selector string
	Words    []string
	// Types runs parallel to Words and is only populated when Classified is true.
	Types      []CandidateTypeSet
	Classified bool
}

// classify fills Types for every word.
func (c *CallRecord) classify() {
	c.Types = make([]CandidateTypeSet, len(c.Words))
	for i, w := range c.Words {
		c.Types[i] = InferTypes(w)
	}
	c.Classified = true
}

// PendingOffset marks a word that looks like the offset of a dynamic value.
// Length stays zero until a resolver fills it in.
type PendingOffset struct {
	WordIndex   int
	OffsetWords uint64
	Length      uint64
}

// Layout tells which splitting strategy the selector parser used.
type Layout int

const (
	// LayoutAligned is used when the input length is a multiple of one word.
	LayoutAligned Layout = iota
	// LayoutPacked is the byte-oriented fallback for any other length.
	LayoutPacked
)

func (l Layout) String() string {
	switch l {
	case LayoutAligned:
		return "aligned"
	case LayoutPacked:
		return "packed"
	default:
		return fmt.Sprintf("Layout(%d)", int(l))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (l Layout) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// Result is the output of a decode session.
type Result struct {
	// Input is the call data with the 0x prefix stripped and lowercased.
	Input          string
	Layout         Layout
	Call           CallRecord
	Nested         []CallRecord
	PendingOffsets []PendingOffset
}
