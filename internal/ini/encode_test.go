package ini

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncode_CanonicalForm(t *testing.T) {
	cfg := &Config{
		Sections: map[string]map[string]string{
			"B": {"y": "2", "x": "1"},
			"A": {"k": "v"},
		},
		Globals: map[string]string{"g": "0"},
	}

	assert.Equal(t, "g=0\n[A]\nk=v\n[B]\nx=1\ny=2\n", Encode(cfg))
}

func TestEncode_Empty(t *testing.T) {
	assert.Equal(t, "", Encode(NewConfig()))
}

func TestEncode_RoundTrip(t *testing.T) {
	documents := []string{
		"[A]\nk=v\n",
		"[ABC]\nx1E02_Manuf=hunter2\nx1E02_Compl=other\n[DEF]\nx1E02_Manuf=c2VjcmV0==\n",
		"top=level\n[S]\nempty=\n",
		"[Empty]\n[Full]\nk = v\n",
		"[a=b]\n",
	}

	for _, doc := range documents {
		t.Run(doc, func(t *testing.T) {
			parsed := Parse(doc)
			reparsed := Parse(Encode(parsed))

			assert.Equal(t, parsed, reparsed)
			assert.Equal(t, Encode(parsed), Encode(reparsed))
		})
	}
}
