package graphson

import (
	"errors"
	"strings"
	"testing"

	"github.com/lintang-b-s/interstatex/pkg/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadClassifiesLines(t *testing.T) {
	input := `{"id":"city:A_AA","label":"city","type":"vertex","properties":{"name":[{"id":"city:A_AA|name","value":"A"}]}}

{"id":"city:B_BB","label":"city","type":"vertex","properties":{"name":"B","tags":["x","y"]}}
{"id":"e1","label":"serves","outV":"city:A_AA","inV":"city:B_BB","properties":{"sequence":[{"id":"p","value":3}]}}
{"outV":"city:B_BB","inV":"city:A_AA","label":"back"}`

	g, err := Read(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, g.Vertices, 2)
	require.Len(t, g.Edges, 2)

	assert.Equal(t, "A", g.Vertices[0].Properties["name"])
	assert.Equal(t, "B", g.Vertices[1].Properties["name"])
	assert.Equal(t, "x", g.Vertices[1].Properties["tags"])
	assert.Equal(t, 3, g.Vertices[1].Line)

	assert.Equal(t, float64(3), g.Edges[0].Properties["sequence"])
	assert.Equal(t, "", g.Edges[1].ID)
	assert.Equal(t, "back", g.Edges[1].Label)
}

func TestReadErrors(t *testing.T) {
	testCases := []struct {
		name  string
		input string
	}{
		{name: "not json", input: "{\"id\":\"a\"}\nnot json\n"},
		{name: "array line", input: "[{\"id\":\"a\"}]\n"},
		{name: "neither id nor outV", input: "{\"label\":\"city\"}\n"},
		{name: "edge without inV", input: "{\"id\":\"e\",\"outV\":\"a\"}\n"},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Read(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.True(t, errors.Is(util.ErrorCode(err), util.ErrBadParamInput))
		})
	}
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile("does-not-exist.graphson")
	require.Error(t, err)
	assert.Equal(t, util.ErrNotFound, util.ErrorCode(err))
}
