package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextRenderer_RenderReport(t *testing.T) {
	t.Parallel()

	rpt := Build(decode(t, transferCalldata),
		WithID("r1"),
		WithSource(Source{TxHash: "0xabc", ChainID: "1", ChainName: "ethereum-mainnet"}),
	)

	expected := `Report: r1
Transaction: 0xabc
Chain: ethereum-mainnet (1)
Layout: packed

Call:
Selector: a9059cbb
  [0] ` + recipientWord + `
      Address: 0x4d278b35b4fA66e7dC694197826ABf76240533af
      Bytes20: 0x4d278b35b4fa66e7dc694197826abf76240533af
      Uint: 440474145299449499784112042299658682615892095919
  [1] ` + amountWord + `
      Int: 430000000000000000
      String: -
      Bytes: 0x` + amountWord + `
`

	got, err := NewTextRenderer().RenderReport(rpt)
	require.NoError(t, err)
	assert.Equal(t, expected, got)
}

func TestTextRenderer_RenderReport_NestedAndOffsets(t *testing.T) {
	t.Parallel()

	input := "0x8d80ff0a" +
		"0000000000000000000000000000000000000000000000000000000000000044" +
		"a9059cbb" + recipientWord + amountWord

	got, err := NewTextRenderer().RenderReport(Build(decode(t, input), WithID("r2")))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(got, "Report: r2\nLayout: packed\n"))
	assert.Contains(t, got, "\n\nNested call 0:\nSelector: a9059cbb\n")
	assert.Contains(t, got, "\n\nPending offsets:\n  word 3 -> offset 0 words, length 0\n")
	assert.NotContains(t, got, "Transaction:")
}

func TestTextRenderer_RenderCall_Unclassified(t *testing.T) {
	t.Parallel()

	call := CallReport{
		Selector: "a9059cbb",
		Arguments: []ArgumentReport{
			{Index: 0, Word: recipientWord},
		},
	}

	expected := "Selector: a9059cbb (unclassified)\n  [0] " + recipientWord + "\n"

	got, err := NewTextRenderer().RenderCall(call)
	require.NoError(t, err)
	assert.Equal(t, expected, got)
}

func TestTextRenderer_RenderReports(t *testing.T) {
	t.Parallel()

	res := decode(t, transferCalldata)
	r := NewTextRenderer()

	got, err := r.RenderReports([]*Report{Build(res, WithID("a")), Build(res, WithID("b"))})
	require.NoError(t, err)

	parts := strings.Split(got, strings.Repeat("-", 40))
	assert.Len(t, parts, 2)
	assert.True(t, strings.HasPrefix(parts[0], "Report: a\n"))
	assert.True(t, strings.HasPrefix(parts[1], "\n\nReport: b\n"))

	empty, err := r.RenderReports(nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}
