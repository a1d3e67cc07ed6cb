// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package corpus

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding/htmlindex"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Decode converts raw document bytes to text. Each named encoding is tried in
// order and the first that decodes cleanly wins. When none does, the encoding
// is detected from the content and bytes that fail to decode are dropped.
// It returns the text and the name of the encoding used.
func Decode(raw []byte, encodings []string) (string, string, error) {
	for _, name := range encodings {
		if text, ok := decodeStrict(raw, name); ok {
			return text, strings.ToLower(name), nil
		}
	}

	enc, name, _ := charset.DetermineEncoding(raw, "")
	out, err := enc.NewDecoder().Bytes(raw)
	if err != nil {
		return "", name, fmt.Errorf("decoding as detected %s: %w", name, err)
	}
	text := strings.ReplaceAll(strings.ToValidUTF8(string(out), ""), string(utf8.RuneError), "")
	return text, name, nil
}

// decodeStrict decodes raw with the named encoding and reports false when the
// encoding is unknown or any byte sequence is invalid for it.
func decodeStrict(raw []byte, name string) (string, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "utf-8", "utf8":
		if !utf8.Valid(raw) {
			return "", false
		}
		return string(bytes.TrimPrefix(raw, utf8BOM)), true
	}

	enc, err := htmlindex.Get(name)
	if err != nil {
		return "", false
	}
	out, err := enc.NewDecoder().Bytes(raw)
	if err != nil || bytes.ContainsRune(out, utf8.RuneError) {
		return "", false
	}
	return string(out), true
}
