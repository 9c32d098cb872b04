package raster

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSerializeDeserializeRoundTrip(t *testing.T) {
	g := NewGrid()
	g.Set(0, 0, "#ff0000")
	g.Set(31, 31, "#00ff00")
	g.Set(16, 7, "#123abc")

	data := g.Serialize()
	parsed, err := Deserialize(data)
	require.NoError(t, err)
	assert.True(t, g.Equal(parsed))

	// The canonical form must re-serialize byte for byte.
	assert.Equal(t, data, parsed.Serialize())
}

func TestSerializeShape(t *testing.T) {
	data := NewGrid().Serialize()
	assert.True(t, strings.HasPrefix(data, `[["transparent"`))
	assert.Equal(t, Size*Size, strings.Count(data, `"transparent"`))
}

func TestDeserializeRejectsMalformedInput(t *testing.T) {
	row := `["transparent"` + strings.Repeat(`,"transparent"`, Size-1) + `]`
	shortRow := `["transparent"` + strings.Repeat(`,"transparent"`, Size-2) + `]`
	badCell := `["#GG0000"` + strings.Repeat(`,"transparent"`, Size-1) + `]`

	cases := []struct {
		name string
		data string
	}{
		{"not json", `{{{`},
		{"not an array", `{"x":1}`},
		{"too few rows", "[" + row + "]"},
		{"too many rows", "[" + row + strings.Repeat(","+row, Size) + "]"},
		{"short row", "[" + shortRow + strings.Repeat(","+row, Size-1) + "]"},
		{"bad token", "[" + badCell + strings.Repeat(","+row, Size-1) + "]"},
		{"numeric cell", "[[1" + strings.Repeat(`,"transparent"`, Size-1) + "]" + strings.Repeat(","+row, Size-1) + "]"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			g, err := Deserialize(c.data)
			assert.Nil(t, g)
			var verr *ValidationError
			assert.ErrorAs(t, err, &verr)
		})
	}
}

func TestDeserializeAcceptsValidPayload(t *testing.T) {
	row := `["#0a0b0c"` + strings.Repeat(`,"transparent"`, Size-1) + `]`
	data := "[" + row + strings.Repeat(","+`["transparent"`+strings.Repeat(`,"transparent"`, Size-1)+`]`, Size-1) + "]"

	g, err := Deserialize(data)
	require.NoError(t, err)
	assert.Equal(t, Token("#0a0b0c"), g.Get(0, 0))
	assert.Equal(t, Transparent, g.Get(1, 0))
}
