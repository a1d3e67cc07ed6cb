// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package flatten runs the AMR pipeline: parse an annotation file, split
// multi-sentence graphs into one record per branch, optionally keep only the
// records that mention a keyword, and write the result.
package flatten

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pdiddy/amr-extract/internal/amr"
	"github.com/pdiddy/amr-extract/internal/keyword"
	"github.com/pdiddy/amr-extract/pkg/types"
)

const (
	// exampleLimit is the number of multi-sentence records shown in the
	// examples section of the report.
	exampleLimit = 3
	// sentencePreview is the number of sentence characters shown per record.
	sentencePreview = 80
	// graphPreview is the number of graph characters shown for filtered branches.
	graphPreview = 100
)

// Summary holds counts from one flatten run.
type Summary struct {
	Total          int `json:"total" yaml:"total"`
	MultiSentence  int `json:"multi_sentence" yaml:"multi_sentence"`
	Simple         int `json:"simple" yaml:"simple"`
	KeywordMatches int `json:"keyword_matches" yaml:"keyword_matches"`
	Branches       int `json:"branches" yaml:"branches"`
	Output         int `json:"output" yaml:"output"`
	FilteredOut    int `json:"filtered_out" yaml:"filtered_out"`
}

// Added returns the number of records gained (or lost, if negative) by
// flattening and filtering.
func (s Summary) Added() int {
	return s.Output - s.Total
}

// Processor flattens and filters records. Without a matcher no keyword
// statistics are gathered; without filter every record is kept.
type Processor struct {
	matcher *keyword.Matcher
	filter  bool
}

// NewProcessor returns a Processor that recognizes kw and, when filter is
// set, keeps only records mentioning it. An empty keyword is an error when
// filtering and disables keyword statistics otherwise.
func NewProcessor(kw string, filter bool) (*Processor, error) {
	if !filter && strings.TrimSpace(kw) == "" {
		return &Processor{}, nil
	}
	m, err := keyword.New(kw)
	if err != nil {
		return nil, err
	}
	return &Processor{matcher: m, filter: filter}, nil
}

// Filtering reports whether the Processor drops records without the keyword.
func (p *Processor) Filtering() bool {
	return p.filter
}

// HasKeyword reports whether the Processor has a keyword to look for.
func (p *Processor) HasKeyword() bool {
	return p.matcher != nil
}

// Process returns the output records for rec: the records amr.Split produces,
// minus those whose graph fails the filter. Kept branches keep the ordinal
// they had among all branches.
func (p *Processor) Process(rec types.Record) []types.Record {
	var out []types.Record
	for _, r := range amr.Split(rec) {
		if p.keep(r.Graph) {
			out = append(out, r)
		}
	}
	return out
}

func (p *Processor) keep(graph string) bool {
	return !p.filter || p.matcher.Contains(graph)
}

// Run executes one flatten pass described by cfg and writes progress and the
// summary to w. A missing input file returns an error wrapping
// types.ErrMissingInput and nothing is written.
func Run(cfg types.FlattenConfig, w io.Writer) (Summary, error) {
	if _, err := os.Stat(cfg.InputPath); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Summary{}, fmt.Errorf("%w: %s", types.ErrMissingInput, cfg.InputPath)
		}
		return Summary{}, fmt.Errorf("stat input %s: %w", cfg.InputPath, err)
	}

	proc, err := NewProcessor(cfg.Keyword, cfg.Filter)
	if err != nil {
		return Summary{}, err
	}
	if cfg.ReportPath != "" {
		if err := validateReportFormat(cfg.ReportFormat); err != nil {
			return Summary{}, err
		}
	}

	data, err := os.ReadFile(cfg.InputPath)
	if err != nil {
		return Summary{}, fmt.Errorf("reading input %s: %w", cfg.InputPath, err)
	}

	records := amr.Parse(string(data))
	summary := Analyze(records, proc)

	fmt.Fprintln(w, strings.Repeat("=", 80))
	if proc.Filtering() {
		fmt.Fprintf(w, "FLATTENING MULTI-SENTENCE AMR + FILTERING %q\n", strings.ToUpper(cfg.Keyword))
	} else {
		fmt.Fprintln(w, "FLATTENING MULTI-SENTENCE AMR")
	}
	fmt.Fprintln(w, strings.Repeat("=", 80))
	printSourceStats(w, summary, proc, cfg.Keyword)

	if cfg.DebugRecords > 0 {
		Debug(w, records, proc, cfg.DebugRecords)
	}

	var out []types.Record
	for _, rec := range records {
		derived := proc.Process(rec)
		if len(derived) == 0 {
			summary.FilteredOut++
		}
		out = append(out, derived...)
	}
	summary.Output = len(out)

	printResultStats(w, summary, proc, cfg.Keyword)
	Examples(w, records, proc, exampleLimit)

	if err := amr.WriteFile(cfg.OutputPath, out); err != nil {
		return summary, err
	}
	fmt.Fprintf(w, "\nFlattened file saved: %s\n", cfg.OutputPath)

	if cfg.ReportPath != "" {
		if err := WriteReport(cfg.ReportPath, cfg.ReportFormat, cfg, summary); err != nil {
			return summary, err
		}
		fmt.Fprintf(w, "Report saved: %s\n", cfg.ReportPath)
	}

	return summary, nil
}

// Analyze counts multi-sentence, simple, and keyword-bearing records and the
// branches found in multi-sentence records. Output and FilteredOut are left
// for the caller.
func Analyze(records []types.Record, proc *Processor) Summary {
	s := Summary{Total: len(records)}
	for _, rec := range records {
		if amr.IsMultiSentence(rec.Graph) {
			s.MultiSentence++
			s.Branches += len(amr.ExtractBranches(rec.Graph))
		}
		if proc.HasKeyword() && proc.matcher.Contains(rec.Graph) {
			s.KeywordMatches++
		}
	}
	s.Simple = s.Total - s.MultiSentence
	return s
}

func printSourceStats(w io.Writer, s Summary, proc *Processor, kw string) {
	fmt.Fprintln(w, "\nSource file statistics:")
	fmt.Fprintf(w, "   - Total AMR graphs: %d\n", s.Total)
	fmt.Fprintf(w, "   - Multi-sentence graphs: %d\n", s.MultiSentence)
	fmt.Fprintf(w, "   - Simple graphs: %d\n", s.Simple)
	if proc.HasKeyword() {
		fmt.Fprintf(w, "   - Graphs containing %q: %d\n", kw, s.KeywordMatches)
	}
}

func printResultStats(w io.Writer, s Summary, proc *Processor, kw string) {
	if proc.Filtering() {
		fmt.Fprintln(w, "\nAfter flattening and filtering:")
	} else {
		fmt.Fprintln(w, "\nAfter flattening:")
	}
	fmt.Fprintf(w, "   - Total AMR graphs: %d\n", s.Output)
	fmt.Fprintf(w, "   - Graphs added: %+d\n", s.Added())
	if proc.Filtering() {
		fmt.Fprintf(w, "   - Graphs filtered out (no %q): %d\n", kw, s.FilteredOut)
	}
}

// truncate returns at most n runes of s.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
