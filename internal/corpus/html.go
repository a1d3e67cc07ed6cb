// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package corpus

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

// HTMLExtractor decodes an HTML document and returns its visible text.
type HTMLExtractor struct {
	// Encodings are tried in order before auto-detection.
	Encodings []string
}

// Extract decodes raw with the configured encodings and collects the text
// nodes of the parsed document, separated by spaces. Script and style
// contents are ignored.
func (e HTMLExtractor) Extract(raw []byte) (Extraction, error) {
	text, enc, err := Decode(raw, e.Encodings)
	if err != nil {
		return Extraction{Encoding: enc}, err
	}

	doc, err := html.Parse(strings.NewReader(text))
	if err != nil {
		return Extraction{Encoding: enc}, fmt.Errorf("parsing html: %w", err)
	}

	var parts []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
			return
		}
		if n.Type == html.TextNode {
			if s := strings.TrimSpace(n.Data); s != "" {
				parts = append(parts, s)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return Extraction{Text: strings.Join(parts, " "), Encoding: enc}, nil
}

// TextExtractor decodes a plain-text document.
type TextExtractor struct {
	// Encodings are tried in order before auto-detection.
	Encodings []string
}

// Extract returns raw decoded with the first encoding that fits.
func (e TextExtractor) Extract(raw []byte) (Extraction, error) {
	text, enc, err := Decode(raw, e.Encodings)
	if err != nil {
		return Extraction{Encoding: enc}, err
	}
	return Extraction{Text: text, Encoding: enc}, nil
}
