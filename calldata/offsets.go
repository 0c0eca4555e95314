package calldata

// OffsetResolver consumes the offset candidates collected while scanning a call and returns
// them with whatever it could work out, such as the length of the value each one points to.
//
// The scan itself never resolves offsets; dynamic string, bytes and array boundaries are
// left to this stage.
type OffsetResolver interface {
	ResolveOffsets(call CallRecord, offsets []PendingOffset) []PendingOffset
}

// OffsetResolverFunc adapts a function to the OffsetResolver interface.
type OffsetResolverFunc func(call CallRecord, offsets []PendingOffset) []PendingOffset

// ResolveOffsets calls f.
func (f OffsetResolverFunc) ResolveOffsets(call CallRecord, offsets []PendingOffset) []PendingOffset {
	return f(call, offsets)
}

// NopOffsetResolver returns the offsets untouched.
type NopOffsetResolver struct{}

// ResolveOffsets returns offsets unchanged.
func (NopOffsetResolver) ResolveOffsets(_ CallRecord, offsets []PendingOffset) []PendingOffset {
	return offsets
}
