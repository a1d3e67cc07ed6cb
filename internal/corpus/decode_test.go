// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package corpus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/amr-extract/pkg/types"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name      string
		raw       []byte
		encodings []string
		wantText  string
		wantEnc   string
	}{
		{
			name:      "valid utf-8",
			raw:       []byte("café justice"),
			encodings: types.DefaultEncodings,
			wantText:  "café justice",
			wantEnc:   "utf-8",
		},
		{
			name:      "utf-8 bom stripped",
			raw:       []byte("\xEF\xBB\xBFhello"),
			encodings: types.DefaultEncodings,
			wantText:  "hello",
			wantEnc:   "utf-8",
		},
		{
			name:      "falls back to windows-1252",
			raw:       []byte("caf\xe9 \x93quoted\x94"),
			encodings: types.DefaultEncodings,
			wantText:  "café “quoted”",
			wantEnc:   "windows-1252",
		},
		{
			name:      "unknown encoding skipped",
			raw:       []byte("caf\xe9"),
			encodings: []string{"utf-8", "no-such-encoding", "iso-8859-1"},
			wantText:  "café",
			wantEnc:   "iso-8859-1",
		},
		{
			name:      "auto-detection after all fail",
			raw:       []byte("caf\xe9"),
			encodings: []string{"utf-8"},
			wantText:  "café",
			wantEnc:   "windows-1252",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, enc, err := Decode(tt.raw, tt.encodings)
			require.NoError(t, err)
			assert.Equal(t, tt.wantText, text)
			assert.Equal(t, tt.wantEnc, enc)
		})
	}
}

func TestHTMLExtractor(t *testing.T) {
	page := `<html><head><title>Court</title><style>p { color: red }</style>
<script>var justice = 1;</script></head>
<body><p>Justice is <b>served</b>.</p><p>Next one.</p></body></html>`

	ex, err := HTMLExtractor{Encodings: types.DefaultEncodings}.Extract([]byte(page))
	require.NoError(t, err)
	assert.Equal(t, "Court Justice is served . Next one.", ex.Text)
	assert.Equal(t, "utf-8", ex.Encoding)
	assert.NotContains(t, ex.Text, "var justice")
}

func TestTextExtractor(t *testing.T) {
	ex, err := TextExtractor{Encodings: types.DefaultEncodings}.Extract([]byte("plain\ntext"))
	require.NoError(t, err)
	assert.Equal(t, "plain\ntext", ex.Text)
}

func TestPDFExtractor_InvalidInput(t *testing.T) {
	_, err := PDFExtractor{}.Extract(nil)
	assert.Error(t, err)

	_, err = PDFExtractor{}.Extract([]byte("this is not a pdf"))
	assert.Error(t, err)
}
