// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package corpus turns PDF, HTML, and plain-text documents into text and pulls
// out the sentences that mention a keyword.
//
// Extraction never fails past this package: every file yields a
// types.DocumentResult carrying whatever text was recovered, with decode and
// parse failures recorded on the result and logged.
package corpus

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/amr-extract/pkg/types"
)

// Extraction is the text recovered from one document.
type Extraction struct {
	Text     string
	Encoding string
	Warnings []string
}

// Extractor turns the raw bytes of one document format into text. On error
// the returned Extraction may still hold partial text.
type Extractor interface {
	Extract(raw []byte) (Extraction, error)
}

// Reader dispatches files to an Extractor by extension.
type Reader struct {
	extractors map[string]registered
	log        io.Writer
}

type registered struct {
	format    types.DocumentFormat
	extractor Extractor
}

// NewReader returns a Reader for .pdf, .html, and .txt files. Text-bearing
// formats try encodings in order (types.DefaultEncodings when empty) before
// auto-detection. Warnings are written to log.
func NewReader(encodings []string, log io.Writer) *Reader {
	if len(encodings) == 0 {
		encodings = types.DefaultEncodings
	}
	if log == nil {
		log = io.Discard
	}
	r := &Reader{extractors: map[string]registered{}, log: log}
	r.Register(".pdf", types.FormatPDF, PDFExtractor{})
	r.Register(".html", types.FormatHTML, HTMLExtractor{Encodings: encodings})
	r.Register(".txt", types.FormatText, TextExtractor{Encodings: encodings})
	return r
}

// Register sets the Extractor used for files with extension ext.
func (r *Reader) Register(ext string, format types.DocumentFormat, e Extractor) {
	r.extractors[strings.ToLower(ext)] = registered{format: format, extractor: e}
}

// ExtractText reads path and returns its text. Unsupported extensions are
// skipped; read and decode failures produce a failed or partial result.
func (r *Reader) ExtractText(path string) types.DocumentResult {
	res := types.DocumentResult{Path: path, Format: types.FormatUnsupported}
	name := filepath.Base(path)

	reg, ok := r.extractors[strings.ToLower(filepath.Ext(path))]
	if !ok {
		res.Status = types.DocumentSkipped
		res.Warnings = append(res.Warnings, "unsupported file type")
		fmt.Fprintf(r.log, "skipping unsupported file type: %s\n", name)
		return res
	}
	res.Format = reg.format

	raw, err := os.ReadFile(path)
	if err != nil {
		res.Status = types.DocumentFailed
		res.Err = fmt.Errorf("reading %s: %w", path, err)
		fmt.Fprintf(r.log, "warning: could not read %s %s: %v\n", strings.ToUpper(string(reg.format)), name, err)
		return res
	}

	ex, err := reg.extractor.Extract(raw)
	res.Text = ex.Text
	res.Encoding = ex.Encoding
	res.Warnings = append(res.Warnings, ex.Warnings...)
	for _, w := range ex.Warnings {
		fmt.Fprintf(r.log, "warning: %s: %s\n", name, w)
	}

	switch {
	case err != nil:
		res.Err = err
		res.Status = types.DocumentFailed
		if strings.TrimSpace(res.Text) != "" {
			res.Status = types.DocumentPartial
		}
		fmt.Fprintf(r.log, "warning: could not read %s %s: %v\n", strings.ToUpper(string(reg.format)), name, err)
	case len(ex.Warnings) > 0:
		res.Status = types.DocumentPartial
	default:
		res.Status = types.DocumentOK
	}
	return res
}
