// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package flatten

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/amr-extract/internal/amr"
	"github.com/pdiddy/amr-extract/pkg/types"
)

const fixture = `# ::id r1
# ::snt The court delivered justice.
(d / deliver-01
   :ARG1 (j / justice))

# ::id r2
# ::snt Hello. Justice now.
(m / multi-sentence
   :snt1 (x / foo)
   :snt2 (y / justice))

# ::id r3
# ::snt Nothing relevant.
(d / dog)

# ::id r4
# ::snt Broken compound.
(m / multi-sentence :op1 (a / b))

# ::id r5
# ::snt Named.
(o / organization :name (n / name :op1 "International Criminal Justice"))`

func writeFixture(t *testing.T) (input, output string) {
	t.Helper()
	dir := t.TempDir()
	input = filepath.Join(dir, "in.amr")
	require.NoError(t, os.WriteFile(input, []byte(fixture), 0o644))
	return input, filepath.Join(dir, "out", "flat.amr")
}

func TestProcessor_Process(t *testing.T) {
	records := amr.Parse(fixture)
	require.Len(t, records, 5)

	filtering, err := NewProcessor("justice", true)
	require.NoError(t, err)
	plain, err := NewProcessor("", false)
	require.NoError(t, err)

	tests := []struct {
		name    string
		proc    *Processor
		rec     types.Record
		wantIDs []string
	}{
		{"simple kept", filtering, records[0], []string{"r1"}},
		{"compound keeps ordinal of kept branch", filtering, records[1], []string{"r2.2"}},
		{"simple dropped", filtering, records[2], nil},
		{"compound without branches", filtering, records[3], nil},
		{"quoted name kept", filtering, records[4], []string{"r5"}},
		{"no filter keeps every branch", plain, records[1], []string{"r2.1", "r2.2"}},
		{"no filter keeps simple", plain, records[2], []string{"r3"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ids []string
			for _, r := range tt.proc.Process(tt.rec) {
				ids = append(ids, r.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestProcessor_DerivedBranch(t *testing.T) {
	proc, err := NewProcessor("justice", true)
	require.NoError(t, err)

	got := proc.Process(amr.Parse(fixture)[1])
	require.Len(t, got, 1)
	assert.Equal(t, "[snt2] Hello. Justice now.", got[0].Sentence)
	assert.Equal(t, "(y / justice)", got[0].Graph)
	assert.Equal(t, []string{"# ::id r2.2", "# ::snt [snt2] Hello. Justice now."}, got[0].Metadata)
}

func TestNewProcessor_EmptyKeyword(t *testing.T) {
	_, err := NewProcessor("", true)
	assert.Error(t, err)
}

func TestRun_Filtered(t *testing.T) {
	input, output := writeFixture(t)
	var log bytes.Buffer

	summary, err := Run(types.FlattenConfig{
		InputPath:    input,
		OutputPath:   output,
		Keyword:      "justice",
		Filter:       true,
		DebugRecords: 5,
	}, &log)
	require.NoError(t, err)

	assert.Equal(t, 5, summary.Total)
	assert.Equal(t, 2, summary.MultiSentence)
	assert.Equal(t, 3, summary.Simple)
	assert.Equal(t, 3, summary.KeywordMatches)
	assert.Equal(t, 2, summary.Branches)
	assert.Equal(t, 3, summary.Output)
	assert.Equal(t, 2, summary.FilteredOut)
	assert.Equal(t, -2, summary.Added())

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	written := amr.Parse(string(data))
	require.Len(t, written, 3)
	assert.Equal(t, "r1", written[0].ID)
	assert.Equal(t, "r2.2", written[1].ID)
	assert.Equal(t, "r5", written[2].ID)

	out := log.String()
	assert.Contains(t, out, "Multi-sentence graphs: 2")
	assert.Contains(t, out, "Graphs filtered out")
	assert.Contains(t, out, "snt1: justice=false (none)")
	assert.Contains(t, out, "kept: ID r2.2")
}

func TestRun_Unfiltered(t *testing.T) {
	input, output := writeFixture(t)

	summary, err := Run(types.FlattenConfig{InputPath: input, OutputPath: output}, &bytes.Buffer{})
	require.NoError(t, err)

	// r4 is a compound graph without branches and disappears.
	assert.Equal(t, 5, summary.Output)
	assert.Equal(t, 1, summary.FilteredOut)
	assert.Equal(t, 0, summary.KeywordMatches)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	var ids []string
	for _, r := range amr.Parse(string(data)) {
		ids = append(ids, r.ID)
	}
	assert.Equal(t, []string{"r1", "r2.1", "r2.2", "r3", "r5"}, ids)
}

func TestRun_MissingInput(t *testing.T) {
	dir := t.TempDir()
	output := filepath.Join(dir, "flat.amr")

	_, err := Run(types.FlattenConfig{
		InputPath:  filepath.Join(dir, "absent.amr"),
		OutputPath: output,
		Keyword:    "justice",
		Filter:     true,
	}, &bytes.Buffer{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, types.ErrMissingInput))

	_, statErr := os.Stat(output)
	assert.True(t, os.IsNotExist(statErr), "no output should be written")
}

func TestRun_Report(t *testing.T) {
	tests := []struct {
		name   string
		format types.ReportFormat
		file   string
	}{
		{"yaml", types.ReportYAML, "report.yaml"},
		{"json", types.ReportJSON, "report.json"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input, output := writeFixture(t)
			reportPath := filepath.Join(filepath.Dir(output), tt.file)

			_, err := Run(types.FlattenConfig{
				InputPath:    input,
				OutputPath:   output,
				Keyword:      "justice",
				Filter:       true,
				ReportPath:   reportPath,
				ReportFormat: tt.format,
			}, &bytes.Buffer{})
			require.NoError(t, err)

			data, err := os.ReadFile(reportPath)
			require.NoError(t, err)

			var r Report
			if tt.format == types.ReportJSON {
				require.NoError(t, json.Unmarshal(data, &r))
			} else {
				require.NoError(t, yaml.Unmarshal(data, &r))
			}
			assert.Equal(t, "justice", r.Keyword)
			assert.Equal(t, 3, r.Summary.Output)
			assert.Equal(t, 2, r.Summary.FilteredOut)
		})
	}
}

func TestWriteReport_UnsupportedFormat(t *testing.T) {
	err := WriteReport(filepath.Join(t.TempDir(), "r.txt"), "toml", types.FlattenConfig{}, Summary{})
	assert.Error(t, err)
}

func TestProcessor_UnfilteredEqualsSplit(t *testing.T) {
	proc, err := NewProcessor("justice", false)
	require.NoError(t, err)

	for _, rec := range amr.Parse(fixture) {
		t.Run(rec.ID, func(t *testing.T) {
			assert.Equal(t, amr.Split(rec), proc.Process(rec))
		})
	}
}

func TestRun_KeywordCountedWithoutFilter(t *testing.T) {
	input, output := writeFixture(t)
	var log bytes.Buffer

	summary, err := Run(types.FlattenConfig{
		InputPath:  input,
		OutputPath: output,
		Keyword:    "justice",
	}, &log)
	require.NoError(t, err)

	assert.Equal(t, 3, summary.KeywordMatches)
	assert.Equal(t, 5, summary.Output)
	assert.Equal(t, 1, summary.FilteredOut)
	assert.Contains(t, log.String(), `Graphs containing "justice": 3`)
}

func TestRun_InvalidReportFormatWritesNothing(t *testing.T) {
	input, output := writeFixture(t)
	reportPath := filepath.Join(filepath.Dir(output), "report.toml")

	_, err := Run(types.FlattenConfig{
		InputPath:    input,
		OutputPath:   output,
		Keyword:      "justice",
		Filter:       true,
		ReportPath:   reportPath,
		ReportFormat: "toml",
	}, &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported report format")

	_, statErr := os.Stat(output)
	assert.True(t, os.IsNotExist(statErr), "flattened file should not be written")
	_, statErr = os.Stat(reportPath)
	assert.True(t, os.IsNotExist(statErr), "report should not be written")
}
