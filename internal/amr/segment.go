// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package amr

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/pdiddy/amr-extract/pkg/types"
)

var (
	// multiSentenceNode matches a node declaration such as "(m / multi-sentence"
	// anywhere in a graph.
	multiSentenceNode = regexp.MustCompile(`(?i)\(\s*[^\s()/]+\s*/\s*multi-sentence`)

	// branchTag matches a ":sntN" role and captures the digits.
	branchTag = regexp.MustCompile(`:snt(\d+)`)
)

// IsMultiSentence reports whether graph declares a multi-sentence node.
func IsMultiSentence(graph string) bool {
	return multiSentenceNode.MatchString(graph)
}

// ExtractBranches returns the ":sntN" branches of graph in the order their
// tags appear in the text. Each branch body is the first balanced
// parenthesized expression after the tag. When the expression does not close
// before the next tag (or the end of the graph for the last tag), the branch
// falls back to the raw text up to that boundary. Branches that are empty after
// trimming are dropped.
func ExtractBranches(graph string) []types.Branch {
	matches := branchTag.FindAllStringSubmatchIndex(graph, -1)

	var branches []types.Branch
	for i, m := range matches {
		start := m[1]
		limit := len(graph)
		if i+1 < len(matches) {
			limit = matches[i+1][0]
		}

		end, ok := balancedEnd(graph, start, limit)
		if !ok {
			end = limit
		}

		content := strings.TrimSpace(graph[start:end])
		if content == "" {
			continue
		}
		branches = append(branches, types.Branch{
			Label:   graph[m[2]:m[3]],
			Content: content,
		})
	}
	return branches
}

// balancedEnd scans s[start:limit] counting parenthesis depth and returns the
// offset just past the parenthesis that brings the depth back to zero after it
// has been positive. It reports false when no such point exists.
func balancedEnd(s string, start, limit int) (int, bool) {
	depth := 0
	opened := false
	for j := start; j < limit; j++ {
		switch s[j] {
		case '(':
			depth++
			opened = true
		case ')':
			depth--
			if opened && depth == 0 {
				return j + 1, true
			}
		}
	}
	return 0, false
}

// Split turns a multi-sentence record into one derived record per branch. A
// record without a multi-sentence node is returned unchanged as the only
// element. A multi-sentence record with no extractable branches yields nil.
func Split(rec types.Record) []types.Record {
	if !IsMultiSentence(rec.Graph) {
		return []types.Record{rec}
	}
	branches := ExtractBranches(rec.Graph)
	if len(branches) == 0 {
		return nil
	}
	derived := make([]types.Record, len(branches))
	for i, b := range branches {
		derived[i] = Derive(rec, b, i+1)
	}
	return derived
}

// Derive builds the record for branch b at 1-based position ordinal within
// parent. Its metadata is regenerated as exactly an id line and a sentence
// line; other parent metadata is not carried over.
func Derive(parent types.Record, b types.Branch, ordinal int) types.Record {
	id := fmt.Sprintf("%s.%d", parent.ID, ordinal)
	sentence := strings.TrimSpace(fmt.Sprintf("[%s] %s", b.Tag(), parent.Sentence))
	return types.Record{
		ID:       id,
		Sentence: sentence,
		Metadata: []string{
			"# " + idMarker + " " + id,
			"# " + sentenceMarker + " " + sentence,
		},
		Graph: b.Content,
	}
}
