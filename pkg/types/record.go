// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the amr-extract pipeline:
// annotation records and their branches, corpus document results, and the
// configuration passed into each pipeline entry point.
package types

// Record is one AMR annotation block: its metadata comment lines and the
// bracketed graph body that follows them.
type Record struct {
	// ID is the value of the first "::id" metadata field. Empty when the
	// block carried no id marker.
	ID string `json:"id" yaml:"id"`

	// Sentence is the value of the first "::snt" metadata field. Empty when
	// the block carried no sentence marker.
	Sentence string `json:"sentence" yaml:"sentence"`

	// Metadata holds the comment lines of the block in source order, as
	// written (including the leading "#").
	Metadata []string `json:"metadata" yaml:"metadata"`

	// Graph is the non-comment, non-blank lines of the block rejoined with
	// newlines.
	Graph string `json:"graph" yaml:"graph"`
}

// Branch is one ":sntN" subgraph of a multi-sentence graph.
type Branch struct {
	// Label is the digits following ":snt" (e.g. "3" for ":snt3").
	Label string `json:"label" yaml:"label"`

	// Content is the trimmed branch body.
	Content string `json:"content" yaml:"content"`
}

// Tag returns the branch label in the form used in derived sentences ("snt3").
func (b Branch) Tag() string {
	return "snt" + b.Label
}
