// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package keyword decides whether an AMR graph or a plain sentence mentions a
// target keyword.
package keyword

import (
	"fmt"
	"regexp"
	"strings"
)

// MatchKind describes how a keyword was found in a graph.
type MatchKind int

const (
	// NoMatch means the keyword does not occur at all.
	NoMatch MatchKind = iota
	// ConceptMatch means a node declares the keyword as its concept ("/ justice").
	ConceptMatch
	// QuotedMatch means the keyword occurs inside a double-quoted string
	// (names, wiki links).
	QuotedMatch
	// NearMiss means the keyword occurs as a substring but neither as a
	// concept nor inside quotes. It does not count as a match.
	NearMiss
)

func (k MatchKind) String() string {
	switch k {
	case ConceptMatch:
		return "concept"
	case QuotedMatch:
		return "quoted"
	case NearMiss:
		return "near-miss"
	default:
		return "none"
	}
}

// Matcher tests text for one keyword, case-insensitively.
type Matcher struct {
	keyword string
	lower   string
	concept *regexp.Regexp
	quoted  *regexp.Regexp
	word    *regexp.Regexp
}

// Word edges are Unicode-aware: a letter, digit, or underscore of any script
// next to the keyword means it is part of a longer word.
const (
	wordStart = `(?:^|[^\pL\pN_])`
	wordEnd   = `(?:$|[^\pL\pN_])`
)

// New compiles a Matcher for keyword. The keyword is matched literally.
func New(keyword string) (*Matcher, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return nil, fmt.Errorf("keyword must not be empty")
	}
	q := regexp.QuoteMeta(keyword)
	return &Matcher{
		keyword: keyword,
		lower:   strings.ToLower(keyword),
		concept: regexp.MustCompile(`(?i)/\s*` + q + wordEnd),
		quoted:  regexp.MustCompile(`(?i)"[^"]*` + q + `[^"]*"`),
		word:    regexp.MustCompile(`(?i)` + wordStart + q + wordEnd),
	}, nil
}

// Keyword returns the keyword the Matcher was built for.
func (m *Matcher) Keyword() string {
	return m.keyword
}

// Classify reports how the keyword occurs in graph. Concept declarations take
// precedence over quoted strings, and NearMiss is only reported when neither
// applies.
func (m *Matcher) Classify(graph string) MatchKind {
	if strings.TrimSpace(graph) == "" {
		return NoMatch
	}
	if m.concept.MatchString(graph) {
		return ConceptMatch
	}
	if m.quoted.MatchString(graph) {
		return QuotedMatch
	}
	if strings.Contains(strings.ToLower(graph), m.lower) {
		return NearMiss
	}
	return NoMatch
}

// Contains reports whether graph declares the keyword as a concept or
// mentions it inside a quoted string.
func (m *Matcher) Contains(graph string) bool {
	k := m.Classify(graph)
	return k == ConceptMatch || k == QuotedMatch
}

// ContainsWord reports whether sentence contains the keyword as a whole word.
func (m *Matcher) ContainsWord(sentence string) bool {
	return m.word.MatchString(sentence)
}
