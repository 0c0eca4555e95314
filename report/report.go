// Package report turns decoded call data into reports and renders them as text,
// Markdown, JSON, YAML or TOML.
package report

// Report is a format-neutral description of decoded call data, ready to be rendered
// in any of the supported output formats.
type Report struct {
	ID             string         `json:"id" yaml:"id" toml:"id"`
	Source         *Source        `json:"source,omitempty" yaml:"source,omitempty" toml:"source,omitempty"`
	Input          string         `json:"input" yaml:"input" toml:"input"`
	Layout         string         `json:"layout" yaml:"layout" toml:"layout"`
	Call           CallReport     `json:"call" yaml:"call" toml:"call"`
	Nested         []CallReport   `json:"nested" yaml:"nested" toml:"nested"`
	PendingOffsets []OffsetReport `json:"pending_offsets" yaml:"pending_offsets" toml:"pending_offsets"`
}

// Source describes the transaction the input was read from, when it was fetched from a chain.
// ChainSelector is the decimal chain selector. It is a string because selectors use the full
// uint64 range, which TOML integers and JSON consumers cannot hold.
type Source struct {
	TxHash        string `json:"tx_hash" yaml:"tx_hash" toml:"tx_hash"`
	ChainID       string `json:"chain_id" yaml:"chain_id" toml:"chain_id"`
	ChainSelector string `json:"chain_selector,omitempty" yaml:"chain_selector,omitempty" toml:"chain_selector,omitempty"`
	ChainName     string `json:"chain_name,omitempty" yaml:"chain_name,omitempty" toml:"chain_name,omitempty"`
	To            string `json:"to,omitempty" yaml:"to,omitempty" toml:"to,omitempty"`
}

// CallReport is one call, outer or nested, with its arguments.
type CallReport struct {
	Selector   string           `json:"selector" yaml:"selector" toml:"selector"`
	Classified bool             `json:"classified" yaml:"classified" toml:"classified"`
	Arguments  []ArgumentReport `json:"arguments" yaml:"arguments" toml:"arguments"`
}

// ArgumentReport is a single word of a call and the ways it can be read.
type ArgumentReport struct {
	Index      int               `json:"index" yaml:"index" toml:"index"`
	Word       string            `json:"word" yaml:"word" toml:"word"`
	Candidates []CandidateReport `json:"candidates,omitempty" yaml:"candidates,omitempty" toml:"candidates,omitempty"`
}

// CandidateReport is one candidate type for a word. Value is empty when the word has no
// reading as Type.
type CandidateReport struct {
	Type  string `json:"type" yaml:"type" toml:"type"`
	Value string `json:"value,omitempty" yaml:"value,omitempty" toml:"value,omitempty"`
	Valid bool   `json:"valid" yaml:"valid" toml:"valid"`
}

// OffsetReport is an offset candidate left for later resolution.
type OffsetReport struct {
	WordIndex   int    `json:"word_index" yaml:"word_index" toml:"word_index"`
	OffsetWords uint64 `json:"offset_words" yaml:"offset_words" toml:"offset_words"`
	Length      uint64 `json:"length" yaml:"length" toml:"length"`
}
