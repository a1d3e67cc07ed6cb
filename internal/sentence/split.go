// Package sentence splits plain text into sentences on terminal punctuation.
//
// A sentence ends after '.', '!' or '?' when the next character is
// whitespace. The whitespace run is the boundary and belongs to neither
// sentence. Abbreviations, decimals and quoted punctuation are not special
// cased.
package sentence

import (
	"unicode"
	"unicode/utf8"
)

// Split returns the sentences of text in order. Text without a boundary is
// returned as a single sentence; empty pieces are dropped.
func Split(text string) []string {
	var out []string
	start := 0
	for i := 0; i < len(text); {
		c := text[i]
		if c != '.' && c != '!' && c != '?' {
			_, size := utf8.DecodeRuneInString(text[i:])
			i += size
			continue
		}

		end := i + 1
		j := skipSpace(text, end)
		if j == end {
			i = end
			continue
		}
		if end > start {
			out = append(out, text[start:end])
		}
		start = j
		i = j
	}
	if start < len(text) {
		out = append(out, text[start:])
	}
	return out
}

// skipSpace returns the offset of the first non-whitespace rune at or after i.
func skipSpace(s string, i int) int {
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])
		if !unicode.IsSpace(r) {
			break
		}
		i += size
	}
	return i
}
