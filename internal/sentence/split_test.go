package sentence

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "three terminators",
			text: "Justice matters. Does it? Yes!",
			want: []string{"Justice matters.", "Does it?", "Yes!"},
		},
		{
			name: "whitespace run consumed",
			text: "One.  \n\t Two.",
			want: []string{"One.", "Two."},
		},
		{
			name: "no space after period",
			text: "Version 1.2 is out. Really.",
			want: []string{"Version 1.2 is out.", "Really."},
		},
		{
			name: "abbreviation is split",
			text: "Mr. Smith arrived.",
			want: []string{"Mr.", "Smith arrived."},
		},
		{
			name: "trailing whitespace",
			text: "End. ",
			want: []string{"End."},
		},
		{
			name: "leading whitespace kept",
			text: "  Start here. Next",
			want: []string{"  Start here.", "Next"},
		},
		{
			name: "no terminator",
			text: "just words",
			want: []string{"just words"},
		},
		{
			name: "non-breaking space",
			text: "Fin.\u00a0Début.",
			want: []string{"Fin.", "Début."},
		},
		{
			name: "empty",
			text: "",
			want: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Split(tt.text))
		})
	}
}
