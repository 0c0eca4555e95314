// Package calldata decodes EVM call data without an ABI.
//
// The input is split into 32 byte words after its 4 byte selector. The decoder walks the
// words looking for byte lengths followed by an embedded selector, extracts those nested
// calls, and records words that look like offsets into dynamic data. Every word is then
// given a CandidateTypeSet, ordered from most to least likely. Candidates are guesses and
// are never narrowed to a single type.
package calldata
