// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// DocumentFormat identifies a corpus file type by extension.
type DocumentFormat string

const (
	FormatPDF         DocumentFormat = "pdf"
	FormatHTML        DocumentFormat = "html"
	FormatText        DocumentFormat = "txt"
	FormatUnsupported DocumentFormat = "unsupported"
)

// DocumentStatus records how text extraction went for one file.
type DocumentStatus string

const (
	DocumentOK      DocumentStatus = "ok"
	DocumentPartial DocumentStatus = "partial"
	DocumentFailed  DocumentStatus = "failed"
	DocumentSkipped DocumentStatus = "skipped"
)

// DocumentResult is the outcome of extracting text from one corpus file.
// Failures are carried as values: Text is whatever was recovered (possibly
// empty) and Err holds the last decode or parse error.
type DocumentResult struct {
	Path     string         `json:"path" yaml:"path"`
	Format   DocumentFormat `json:"format" yaml:"format"`
	Status   DocumentStatus `json:"status" yaml:"status"`
	Encoding string         `json:"encoding,omitempty" yaml:"encoding,omitempty"`
	Text     string         `json:"-" yaml:"-"`
	Warnings []string       `json:"warnings,omitempty" yaml:"warnings,omitempty"`
	Err      error          `json:"-" yaml:"-"`
}

// SentenceMatch is a corpus sentence containing the target keyword.
type SentenceMatch struct {
	// Sentence is the sentence text as split from the document.
	Sentence string `json:"sentence" yaml:"sentence"`

	// Source is the file name the sentence was extracted from.
	Source string `json:"source" yaml:"source"`
}

// Annotated returns the sentence followed by its provenance, in the form
// "<sentence> (extracted from <source>)".
func (m SentenceMatch) Annotated() string {
	return m.Sentence + " (extracted from " + m.Source + ")"
}
