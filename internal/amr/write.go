// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package amr

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/amr-extract/pkg/types"
)

// Write serializes records in annotation file form: records separated by one
// blank line, each record's metadata lines newline-terminated and followed
// directly by its graph. No newline follows the last graph.
func Write(w io.Writer, records []types.Record) error {
	for i, rec := range records {
		if i > 0 {
			if _, err := io.WriteString(w, "\n\n"); err != nil {
				return err
			}
		}
		for _, line := range rec.Metadata {
			if _, err := io.WriteString(w, line+"\n"); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, rec.Graph); err != nil {
			return err
		}
	}
	return nil
}

// Format returns the serialized form of records as a string.
func Format(records []types.Record) string {
	var b strings.Builder
	_ = Write(&b, records)
	return b.String()
}

// WriteFile writes records to path, creating parent directories as needed.
func WriteFile(path string, records []types.Record) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(Format(records)), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
