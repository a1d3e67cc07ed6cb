// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package amr reads, splits, and writes AMR annotation files.
//
// An annotation file is a sequence of blocks separated by blank lines. Each
// block has "#" metadata lines carrying "::id" and "::snt" markers, followed by
// a bracketed graph. Multi-sentence graphs are split into one record per
// ":sntN" branch.
package amr

import (
	"regexp"
	"strings"

	"github.com/pdiddy/amr-extract/pkg/types"
)

const (
	idMarker       = "::id"
	sentenceMarker = "::snt"
)

// blockSeparator matches a run of one or more blank lines, including blank
// lines that carry only whitespace.
var blockSeparator = regexp.MustCompile(`\n\s*\n+`)

// Parse splits raw annotation file content into records in source order.
// Malformed blocks are returned with whatever fields could be recovered; a
// missing id or sentence marker leaves the field empty.
func Parse(content string) []types.Record {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.TrimSpace(content)
	if content == "" {
		return nil
	}

	var records []types.Record
	for _, block := range blockSeparator.Split(content, -1) {
		if strings.TrimSpace(block) == "" {
			continue
		}
		records = append(records, parseBlock(block))
	}
	return records
}

// parseBlock partitions one block into metadata and graph lines.
func parseBlock(block string) types.Record {
	var rec types.Record
	var graphLines []string
	haveID, haveSentence := false, false

	for _, line := range strings.Split(block, "\n") {
		trimmed := strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(trimmed, "#"):
			rec.Metadata = append(rec.Metadata, line)
			if !haveID {
				if v, ok := fieldValue(line, idMarker); ok {
					rec.ID, haveID = v, true
					continue
				}
			}
			if !haveSentence {
				if v, ok := fieldValue(line, sentenceMarker); ok {
					rec.Sentence, haveSentence = v, true
				}
			}
		case trimmed != "":
			graphLines = append(graphLines, line)
		}
	}

	rec.Graph = strings.Join(graphLines, "\n")
	return rec
}

// fieldValue returns everything after the first occurrence of marker in line,
// trimmed. It reports false when the marker is absent.
func fieldValue(line, marker string) (string, bool) {
	_, after, ok := strings.Cut(line, marker)
	if !ok {
		return "", false
	}
	return strings.TrimSpace(after), true
}
