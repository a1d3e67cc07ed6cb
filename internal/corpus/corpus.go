// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package corpus

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/amr-extract/internal/keyword"
	"github.com/pdiddy/amr-extract/internal/sentence"
	"github.com/pdiddy/amr-extract/pkg/types"
)

// previewLen is the number of leading characters of each document echoed to
// the progress log.
const previewLen = 100

// Summary holds counts from a corpus extraction run.
type Summary struct {
	Files     int `json:"files" yaml:"files"`
	Extracted int `json:"extracted" yaml:"extracted"`
	Partial   int `json:"partial" yaml:"partial"`
	Failed    int `json:"failed" yaml:"failed"`
	Skipped   int `json:"skipped" yaml:"skipped"`
	Sentences int `json:"sentences" yaml:"sentences"`
	Matches   int `json:"matches" yaml:"matches"`
}

// HasFailures reports whether any file failed extraction.
func (s Summary) HasFailures() bool {
	return s.Failed > 0
}

// ListFiles returns the regular files directly inside each directory, in
// directory order and then name order. A missing directory is reported as
// types.ErrMissingInput.
func ListFiles(dirs ...string) ([]string, error) {
	var files []string
	for _, dir := range dirs {
		if dir == "" {
			continue
		}
		entries, err := os.ReadDir(dir)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, fmt.Errorf("%w: directory %s", types.ErrMissingInput, dir)
			}
			return nil, fmt.Errorf("reading directory %s: %w", dir, err)
		}
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			if e.Type().IsRegular() {
				names = append(names, e.Name())
			}
		}
		sort.Strings(names)
		for _, n := range names {
			files = append(files, filepath.Join(dir, n))
		}
	}
	return files, nil
}

// ExtractSentences extracts the text of each file, splits it into sentences,
// and returns the sentences that contain the matcher's keyword as a whole
// word, in file order. Per-file progress is written to w.
func ExtractSentences(r *Reader, files []string, m *keyword.Matcher, w io.Writer) ([]types.SentenceMatch, Summary) {
	var matches []types.SentenceMatch
	var summary Summary

	for i, path := range files {
		name := filepath.Base(path)
		summary.Files++
		fmt.Fprintf(w, "\n--- File %d: %s ---\n", i+1, name)

		res := r.ExtractText(path)
		switch res.Status {
		case types.DocumentOK:
			summary.Extracted++
		case types.DocumentPartial:
			summary.Partial++
		case types.DocumentFailed:
			summary.Failed++
		case types.DocumentSkipped:
			summary.Skipped++
		}

		fmt.Fprintf(w, "Extracted text length: %d\n", len(res.Text))
		if strings.TrimSpace(res.Text) == "" {
			continue
		}
		fmt.Fprintf(w, "First %d chars: %s\n", previewLen, preview(res.Text, previewLen))

		sentences := sentence.Split(res.Text)
		summary.Sentences += len(sentences)
		found := 0
		for _, s := range sentences {
			if m.ContainsWord(s) {
				matches = append(matches, types.SentenceMatch{Sentence: s, Source: name})
				found++
			}
		}
		summary.Matches += found
		fmt.Fprintf(w, "Sentences: %d\n", len(sentences))
		fmt.Fprintf(w, "Sentences with %q: %d\n", m.Keyword(), found)
	}

	return matches, summary
}

// PrintSummary writes the result section of a corpus run to w: per-status
// file counts, the number of matches, and the first match. A warning line
// follows when any file failed extraction.
func PrintSummary(w io.Writer, kw string, matches []types.SentenceMatch, s Summary) {
	fmt.Fprintf(w, "\n=== RESULT ===\n")
	fmt.Fprintf(w, "Files: %d (%d extracted, %d partial, %d failed, %d skipped)\n",
		s.Files, s.Extracted, s.Partial, s.Failed, s.Skipped)
	fmt.Fprintf(w, "Total sentences with %q: %d\n", kw, len(matches))
	if len(matches) > 0 {
		fmt.Fprintf(w, "First sentence: %s\n", preview(matches[0].Annotated(), 200))
	}
	if s.HasFailures() {
		fmt.Fprintf(w, "warning: %d file(s) failed extraction and contributed no sentences\n", s.Failed)
	}
}

// preview returns at most n runes of s.
func preview(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

// matchExport is the on-disk YAML form of a corpus run.
type matchExport struct {
	Keyword string                `yaml:"keyword"`
	Summary Summary               `yaml:"summary"`
	Matches []types.SentenceMatch `yaml:"matches"`
}

// WriteMatches saves matches to path. A .yaml or .yml path gets a YAML
// export with the run summary; any other path gets one annotated sentence
// per line.
func WriteMatches(path, kw string, matches []types.SentenceMatch, summary Summary) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err := yaml.Marshal(matchExport{Keyword: kw, Summary: summary, Matches: matches})
		if err != nil {
			return fmt.Errorf("marshaling matches: %w", err)
		}
		return os.WriteFile(path, data, 0o644)
	}

	var b strings.Builder
	for _, m := range matches {
		b.WriteString(m.Annotated())
		b.WriteByte('\n')
	}
	return os.WriteFile(path, []byte(b.String()), 0o644)
}
