// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package corpus

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// PDFExtractor pulls plain text out of PDF documents page by page.
type PDFExtractor struct{}

// Extract returns the text of every readable page joined by spaces. Pages
// that fail to decode are skipped and reported as warnings.
func (PDFExtractor) Extract(raw []byte) (ex Extraction, err error) {
	if len(raw) == 0 {
		return ex, fmt.Errorf("empty PDF content")
	}

	// The parser panics on some malformed files.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("parsing pdf: %v", r)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(raw), int64(len(raw)))
	if err != nil {
		return ex, fmt.Errorf("open pdf: %w", err)
	}

	var pages []string
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, perr := page.GetPlainText(nil)
		if perr != nil {
			ex.Warnings = append(ex.Warnings, fmt.Sprintf("page %d: %v", i, perr))
			continue
		}
		if text = strings.TrimSpace(text); text != "" {
			pages = append(pages, text)
		}
		// Kept current so a panic on a later page still returns earlier pages.
		ex.Text = strings.Join(pages, " ")
	}
	return ex, nil
}
