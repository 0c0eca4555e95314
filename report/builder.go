package report

import (
	"github.com/google/uuid"

	"github.com/smartcontractkit/chainlink-calldata-decoder/calldata"
)

type buildOptions struct {
	id     string
	source *Source
}

// BuildOption customizes Build.
type BuildOption func(*buildOptions)

// WithID sets the report ID instead of generating a random one.
func WithID(id string) BuildOption {
	return func(o *buildOptions) {
		o.id = id
	}
}

// WithSource attaches the transaction the input was read from.
func WithSource(src Source) BuildOption {
	return func(o *buildOptions) {
		o.source = &src
	}
}

// Build assembles a Report from a decode result.
func Build(res *calldata.Result, opts ...BuildOption) *Report {
	o := buildOptions{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.id == "" {
		o.id = uuid.NewString()
	}

	rpt := &Report{
		ID:             o.id,
		Source:         o.source,
		Input:          "0x" + res.Input,
		Layout:         res.Layout.String(),
		Call:           buildCall(res.Call),
		Nested:         make([]CallReport, len(res.Nested)),
		PendingOffsets: make([]OffsetReport, len(res.PendingOffsets)),
	}
	for i, n := range res.Nested {
		rpt.Nested[i] = buildCall(n)
	}
	for i, p := range res.PendingOffsets {
		rpt.PendingOffsets[i] = OffsetReport{
			WordIndex:   p.WordIndex,
			OffsetWords: p.OffsetWords,
			Length:      p.Length,
		}
	}

	return rpt
}

func buildCall(call calldata.CallRecord) CallReport {
	cr := CallReport{
		Selector:   call.Selector,
		Classified: call.Classified,
		Arguments:  make([]ArgumentReport, len(call.Words)),
	}

	for i, w := range call.Words {
		arg := ArgumentReport{Index: i, Word: w}
		if call.Classified && i < len(call.Types) {
			for _, in := range calldata.Interpretations(w, call.Types[i]) {
				arg.Candidates = append(arg.Candidates, CandidateReport{
					Type:  in.Type.String(),
					Value: in.Value,
					Valid: in.Valid,
				})
			}
		}
		cr.Arguments[i] = arg
	}

	return cr
}
