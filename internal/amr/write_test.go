// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package amr

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/amr-extract/pkg/types"
)

func TestFormat(t *testing.T) {
	records := []types.Record{
		{Metadata: []string{"# ::id a", "# ::snt A."}, Graph: "(a / a1)"},
		{Metadata: []string{"# ::id b"}, Graph: "(b / b1\n   :mod (c / c1))"},
	}
	want := "# ::id a\n# ::snt A.\n(a / a1)\n\n# ::id b\n(b / b1\n   :mod (c / c1))"
	assert.Equal(t, want, Format(records))
	assert.Equal(t, "", Format(nil))
}

func TestRoundTrip(t *testing.T) {
	source := Parse(sampleFile + "\n\n# ::id doc.3\n# ::snt Two. Parts.\n" + compoundGraph)
	require.Len(t, source, 3)

	var flattened []types.Record
	for _, rec := range source {
		flattened = append(flattened, Split(rec)...)
	}
	require.Len(t, flattened, 4)

	reparsed := Parse(Format(flattened))
	require.Len(t, reparsed, len(flattened))
	for i := range flattened {
		assert.Equal(t, flattened[i].ID, reparsed[i].ID)
		assert.Equal(t, flattened[i].Sentence, reparsed[i].Sentence)
		assert.Equal(t, flattened[i].Graph, reparsed[i].Graph)
	}
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "flat.amr")
	records := []types.Record{{Metadata: []string{"# ::id z"}, Graph: "(z / zed)"}}

	require.NoError(t, WriteFile(path, records))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "# ::id z\n(z / zed)", string(data))
}
