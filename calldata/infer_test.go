package calldata

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInferTypes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		give string
		want CandidateTypeSet
	}{
		{name: "all zero", give: Empty32, want: CandidateTypeSet{AnyZero}},
		{name: "all ones", give: MaxUint256Word, want: CandidateTypeSet{AnyMax}},
		{name: "all ones uppercase", give: strings.ToUpper(MaxUint256Word), want: CandidateTypeSet{AnyMax}},
		{name: "max uint128", give: MaxUint128Word, want: CandidateTypeSet{MaxUint128}},
		{
			name: "embedded selector",
			give: "a9059cbb" + Empty4 + strings.Repeat("0", 47) + "1",
			want: CandidateTypeSet{Selector, String, Bytes},
		},
		{
			name: "negative int",
			give: "fffffffffffffffffffffffffffffffffffffffffffffffffffffffffffee530",
			want: CandidateTypeSet{Int},
		},
		{
			name: "ones head with zero second chunk is not a selector",
			give: Mask4 + Empty4 + strings.Repeat("1", 48),
			want: CandidateTypeSet{Int},
		},
		{name: "address", give: recipientWord, want: CandidateTypeSet{Address, Bytes20, Uint}},
		{name: "one", give: word(1), want: CandidateTypeSet{Uint8, Bytes1, Bool}},
		{name: "eight", give: word(8), want: CandidateTypeSet{Uint8, Bytes1}},
		{name: "nine", give: word(9), want: CandidateTypeSet{Int, String, Bytes}},
		{name: "amount", give: amountWord, want: CandidateTypeSet{Int, String, Bytes}},
		{name: "short zero word", give: strings.Repeat("0", 16), want: CandidateTypeSet{ZeroUint}},
		{name: "empty word", give: "", want: CandidateTypeSet{ZeroUint}},
		{name: "short word is left padded", give: "44", want: CandidateTypeSet{Int, String, Bytes}},
		{name: "not hex", give: "zz", want: CandidateTypeSet{Bytes}},
		{name: "too long", give: Empty32 + "1", want: CandidateTypeSet{Bytes}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := InferTypes(tt.give)
			assert.NotEmpty(t, got)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCandidateTypeSet(t *testing.T) {
	t.Parallel()

	set := CandidateTypeSet{Address, Bytes20, Uint}

	assert.Equal(t, Address, set.Primary())
	assert.True(t, set.Contains(Uint))
	assert.False(t, set.Contains(Bool))
	assert.Equal(t, "Address|Bytes20|Uint", set.String())
	assert.Equal(t, AnyZero, CandidateTypeSet{}.Primary())
}

func TestTypeTag_Text(t *testing.T) {
	t.Parallel()

	text, err := Selector.MarshalText()
	assert.NoError(t, err)
	assert.Equal(t, "Selector", string(text))

	_, err = ParseTypeTag("float")
	assert.Error(t, err)

	tag, err := ParseTypeTag("bytes20")
	assert.NoError(t, err)
	assert.Equal(t, Bytes20, tag)

	assert.True(t, MaxUint128.IsSentinel())
	assert.False(t, Address.IsSentinel())
	assert.Equal(t, "TypeTag(99)", TypeTag(99).String())
}
