package types

// ReportFormat selects the run report serialization.
type ReportFormat string

const (
	ReportYAML ReportFormat = "yaml"
	ReportJSON ReportFormat = "json"
)

// FlattenConfig holds settings for the AMR flatten stage.
type FlattenConfig struct {
	// InputPath is the AMR annotation file to read.
	InputPath string `json:"input" yaml:"input"`

	// OutputPath is where the flattened annotation file is written.
	OutputPath string `json:"output" yaml:"output"`

	// Keyword is the concept searched for when Filter is set.
	Keyword string `json:"keyword" yaml:"keyword"`

	// Filter keeps only records and branches whose graph contains Keyword.
	// With Filter unset every branch of every record is written.
	Filter bool `json:"filter" yaml:"filter"`

	// DebugRecords prints a per-branch analysis of the first N records (0 disables).
	DebugRecords int `json:"debug" yaml:"debug"`

	// ReportPath, when set, receives a machine-readable copy of the run summary.
	ReportPath string `json:"report,omitempty" yaml:"report,omitempty"`

	// ReportFormat selects yaml or json for ReportPath (default yaml).
	ReportFormat ReportFormat `json:"report_format,omitempty" yaml:"report_format,omitempty"`
}

// CorpusConfig holds settings for the corpus sentence extraction stage.
type CorpusConfig struct {
	// DocsDir holds PDF and HTML documents.
	DocsDir string `json:"docs_dir" yaml:"docs_dir"`

	// TextsDir holds plain-text documents.
	TextsDir string `json:"texts_dir" yaml:"texts_dir"`

	// Keyword is matched as a whole word, case-insensitively, in each sentence.
	Keyword string `json:"keyword" yaml:"keyword"`

	// Encodings lists the encodings tried in order before auto-detection
	// (default utf-8, windows-1252, iso-8859-1).
	Encodings []string `json:"encodings" yaml:"encodings"`

	// Limit caps the number of files processed (0 = all).
	Limit int `json:"limit" yaml:"limit"`

	// OutputPath, when set, receives the matched sentences. A .yaml or .yml
	// extension writes a YAML export; anything else writes one line per match.
	OutputPath string `json:"output,omitempty" yaml:"output,omitempty"`
}

// PipelineConfig groups all stage configurations.
type PipelineConfig struct {
	Flatten FlattenConfig `json:"flatten" yaml:"flatten"`
	Corpus  CorpusConfig  `json:"corpus" yaml:"corpus"`
}

// DefaultEncodings is the fallback order used when CorpusConfig.Encodings is empty.
var DefaultEncodings = []string{"utf-8", "windows-1252", "iso-8859-1"}

// DefaultPipelineConfig returns the configuration used when no file, env
// variable, or flag overrides a value.
func DefaultPipelineConfig() PipelineConfig {
	return PipelineConfig{
		Flatten: FlattenConfig{
			InputPath:    "data/justice_AMR-500.amr",
			OutputPath:   "data/justice_AMR-500.amr-flattened.amr",
			Keyword:      "justice",
			Filter:       true,
			ReportFormat: ReportYAML,
		},
		Corpus: CorpusConfig{
			DocsDir:   "data/docs",
			TextsDir:  "data/txts",
			Keyword:   "justice",
			Encodings: append([]string(nil), DefaultEncodings...),
		},
	}
}
