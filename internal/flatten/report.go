// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package flatten

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/amr-extract/internal/amr"
	"github.com/pdiddy/amr-extract/internal/keyword"
	"github.com/pdiddy/amr-extract/pkg/types"
)

// Report is the on-disk record of a flatten run.
type Report struct {
	Input     string    `json:"input" yaml:"input"`
	Output    string    `json:"output" yaml:"output"`
	Keyword   string    `json:"keyword,omitempty" yaml:"keyword,omitempty"`
	Filter    bool      `json:"filter" yaml:"filter"`
	Summary   Summary   `json:"summary" yaml:"summary"`
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`
}

// WriteReport saves the run summary to path as YAML (the default) or JSON.
func WriteReport(path string, format types.ReportFormat, cfg types.FlattenConfig, s Summary) error {
	r := Report{
		Input:     cfg.InputPath,
		Output:    cfg.OutputPath,
		Keyword:   cfg.Keyword,
		Filter:    cfg.Filter,
		Summary:   s,
		Timestamp: time.Now().UTC(),
	}
	if err := validateReportFormat(format); err != nil {
		return err
	}

	var data []byte
	var err error
	if format == types.ReportJSON {
		data, err = json.MarshalIndent(&r, "", "  ")
	} else {
		data, err = yaml.Marshal(&r)
	}
	if err != nil {
		return fmt.Errorf("marshaling report: %w", err)
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating report directory: %w", err)
		}
	}
	return os.WriteFile(path, data, 0o644)
}

// validateReportFormat rejects formats other than yaml, json, or empty (yaml).
func validateReportFormat(format types.ReportFormat) error {
	switch format {
	case types.ReportYAML, types.ReportJSON, "":
		return nil
	}
	return fmt.Errorf("unsupported report format %q: use yaml or json", format)
}

// Debug prints, for the first n records, the record id, a sentence preview,
// and for multi-sentence records the keyword verdict of each branch. Branches
// where the keyword appears only as a near miss are flagged so the filter
// patterns can be checked by hand.
func Debug(w io.Writer, records []types.Record, proc *Processor, n int) {
	fmt.Fprintf(w, "\nDEBUG - analysis of the first %d graphs:\n", n)
	for i, rec := range records {
		if i >= n {
			break
		}
		multi := amr.IsMultiSentence(rec.Graph)
		fmt.Fprintf(w, "\n%s\n", strings.Repeat("=", 60))
		fmt.Fprintf(w, "ID: %s\n", rec.ID)
		fmt.Fprintf(w, "Sentence: %s...\n", truncate(rec.Sentence, sentencePreview))
		fmt.Fprintf(w, "Multi-sentence: %t\n", multi)

		if !multi {
			if proc.HasKeyword() {
				debugVerdict(w, proc, "graph", rec.Graph)
			}
			continue
		}

		branches := amr.ExtractBranches(rec.Graph)
		fmt.Fprintf(w, "Branches found: %d\n", len(branches))
		if !proc.HasKeyword() {
			continue
		}
		for _, b := range branches {
			debugVerdict(w, proc, b.Tag(), b.Content)
		}
	}
}

func debugVerdict(w io.Writer, proc *Processor, label, graph string) {
	kind := proc.matcher.Classify(graph)
	kept := proc.matcher.Contains(graph)
	fmt.Fprintf(w, "  %s: %s=%t (%s)\n", label, proc.matcher.Keyword(), kept, kind)
	if kind == keyword.NearMiss {
		fmt.Fprintf(w, "    keyword present but not as a concept or quoted name\n")
	}
	if !kept && proc.Filtering() {
		fmt.Fprintf(w, "    -> will be filtered\n")
		fmt.Fprintf(w, "    excerpt: %s...\n", truncate(graph, graphPreview))
	}
}

// Examples prints up to limit multi-sentence records with the number of
// branches found and the ids of the records kept from them.
func Examples(w io.Writer, records []types.Record, proc *Processor, limit int) {
	fmt.Fprintln(w, "\nTransformation examples:")
	shown := 0
	for _, rec := range records {
		if shown >= limit {
			break
		}
		if !amr.IsMultiSentence(rec.Graph) {
			continue
		}
		kept := proc.Process(rec)
		fmt.Fprintf(w, "\n   Original (ID %s):\n", rec.ID)
		fmt.Fprintf(w, "      - Sentence: %s...\n", truncate(rec.Sentence, 60))
		fmt.Fprintf(w, "      - Type: multi-sentence\n")
		fmt.Fprintf(w, "      -> %d branches found, %d kept\n", len(amr.ExtractBranches(rec.Graph)), len(kept))
		for _, k := range kept {
			fmt.Fprintf(w, "         kept: ID %s\n", k.ID)
		}
		shown++
	}
}
