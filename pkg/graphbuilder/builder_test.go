package graphbuilder

import (
	"bytes"
	"testing"

	"github.com/lintang-b-s/interstatex/pkg"
	"github.com/lintang-b-s/interstatex/pkg/datastructure"
	"github.com/lintang-b-s/interstatex/pkg/geo"
	"github.com/lintang-b-s/interstatex/pkg/graphson"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func smallRoutes() *datastructure.RouteTable {
	return datastructure.NewRouteTable(
		datastructure.NewInterstate("I-1", 1, pkg.NORTH_SOUTH,
			datastructure.NewCity("Alpha", "AA"),
			datastructure.NewCity("Beta City", "BB"),
		),
		datastructure.NewInterstate("I-2", 2, pkg.EAST_WEST,
			datastructure.NewCity("Beta City", "BB"),
			datastructure.NewCity("St. Gamma", "CC"),
		),
	)
}

// St. Gamma has no coordinates.
func smallCoordinates() *datastructure.CoordinateTable {
	return datastructure.NewCoordinateTable(map[datastructure.City]geo.Coordinate{
		datastructure.NewCity("Alpha", "AA"):     geo.NewCoordinate(10, 20),
		datastructure.NewCity("Beta City", "BB"): geo.NewCoordinate(10, 20),
	})
}

func newObservedBuilder(routes *datastructure.RouteTable,
	coords *datastructure.CoordinateTable) (*GraphBuilder, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.InfoLevel)
	return NewGraphBuilder(routes, coords, zap.New(core)), logs
}

func render(t *testing.T, elements []graphson.Element) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := graphson.NewWriter(&buf)
	require.NoError(t, w.WriteAll(elements))
	require.NoError(t, w.Flush())
	return buf.Bytes()
}

func elementIDs(elements []graphson.Element) []string {
	ids := make([]string, 0, len(elements))
	for _, el := range elements {
		ids = append(ids, el.GetID())
	}
	return ids
}

func TestServesGraphGolden(t *testing.T) {
	b, logs := newObservedBuilder(smallRoutes(), smallCoordinates())
	res := b.BuildServesGraph()

	assert.Empty(t, res.Warnings)
	assert.Equal(t, 0, logs.FilterLevelExact(zapcore.WarnLevel).Len())

	g := goldie.New(t)
	g.Assert(t, "serves_small", render(t, res.Elements))
}

func TestPathGraphGolden(t *testing.T) {
	b, logs := newObservedBuilder(smallRoutes(), smallCoordinates())
	res := b.BuildPathGraph()

	require.Len(t, res.Warnings, 2)
	assert.Equal(t, MISSING_CITY_COORDINATES, res.Warnings[0].Kind)
	assert.Equal(t, "No coordinates for St. Gamma, CC", res.Warnings[0].Message)
	assert.Equal(t, MISSING_SEGMENT_COORDINATES, res.Warnings[1].Kind)
	assert.Equal(t, "I-2", res.Warnings[1].Interstate)
	assert.Equal(t, "Missing coordinates for segment on I-2: Beta City, BB -> St. Gamma, CC", res.Warnings[1].Message)

	warnLogs := logs.FilterLevelExact(zapcore.WarnLevel).All()
	require.Len(t, warnLogs, 2)
	assert.Equal(t, res.Warnings[1].Message, warnLogs[1].Message)
	assert.Equal(t, "I-2", warnLogs[1].ContextMap()["interstate"])

	g := goldie.New(t)
	g.Assert(t, "path_small", render(t, res.Elements))
}

func TestServesGraphFullTable(t *testing.T) {
	routes := datastructure.PrimaryInterstates()
	b, _ := newObservedBuilder(routes, datastructure.CityCoordinates())
	res := b.BuildServesGraph()

	assert.Equal(t, 7+77, res.NumberOfVertices())
	assert.Equal(t, 86, res.NumberOfEdges())
	assert.Len(t, res.Elements, 170)
	assert.Empty(t, res.Warnings)

	ids := elementIDs(res.Elements)
	assert.Equal(t, "interstate:I-5", ids[0])
	assert.Equal(t, "interstate:I-95", ids[6])
	assert.Equal(t, "city:Albuquerque_NM", ids[7])
	assert.Equal(t, "city:Youngstown_OH", ids[83])
	assert.Equal(t, "edge:I-5:0", ids[84])
	assert.Equal(t, "edge:I-95:19", ids[169])

	// city vertices are sorted and unique
	cityIDs := ids[7:84]
	for i := 1; i < len(cityIDs); i++ {
		assert.Less(t, cityIDs[i-1], cityIDs[i])
	}

	servesPerInterstate := make(map[string]int)
	for _, el := range res.Elements {
		e, ok := el.(*graphson.Edge)
		if !ok {
			continue
		}
		assert.Equal(t, pkg.SERVES_LABEL, e.Label)
		assert.Equal(t, pkg.INTERSTATE_LABEL, e.OutVLabel)
		servesPerInterstate[e.OutV]++
	}
	routes.ForInterstates(func(hwy *datastructure.Interstate) {
		assert.Equal(t, hwy.NumberOfCities(), servesPerInterstate[graphson.MakeInterstateID(hwy.GetKey())], hwy.GetKey())
	})
}

func TestPathGraphFullTable(t *testing.T) {
	routes := datastructure.PrimaryInterstates()
	b, logs := newObservedBuilder(routes, datastructure.CityCoordinates())
	res := b.BuildPathGraph()

	assert.Equal(t, 7+77, res.NumberOfVertices())
	assert.Equal(t, 79, res.NumberOfEdges())
	assert.Len(t, res.Elements, 163)
	assert.Empty(t, res.Warnings)
	assert.Equal(t, 0, logs.FilterLevelExact(zapcore.WarnLevel).Len())

	pathsPerInterstate := make(map[string]int)
	for _, el := range res.Elements {
		switch el := el.(type) {
		case *graphson.Vertex:
			if el.Label != pkg.CITY_LABEL {
				continue
			}
			lat, _ := el.Properties.Get("latitude")
			lon, _ := el.Properties.Get("longitude")
			assert.IsType(t, graphson.Float(0), lat, el.ID)
			assert.IsType(t, graphson.Float(0), lon, el.ID)
		case *graphson.Edge:
			key, _ := el.Properties.Get("interstate")
			assert.Equal(t, el.Label, key)
			length, _ := el.Properties.Get("length_miles")
			assert.Greater(t, float64(length.(graphson.Float)), 0.0, el.ID)
			pathsPerInterstate[el.Label]++
		}
	}
	routes.ForInterstates(func(hwy *datastructure.Interstate) {
		assert.Equal(t, hwy.NumberOfCities()-1, pathsPerInterstate[hwy.GetKey()], hwy.GetKey())
	})

	first := res.Elements[84].(*graphson.Edge)
	assert.Equal(t, "edge:I-5:0-1", first.ID)
	assert.Equal(t, "city:San_Diego_CA", first.OutV)
	assert.Equal(t, "city:Los_Angeles_CA", first.InV)
	length, _ := first.Properties.Get("length_miles")
	assert.InDelta(t, 112, float64(length.(graphson.Float)), 3)
}

func TestPathGraphMissingCoordinatesNeverAborts(t *testing.T) {
	routes := datastructure.NewRouteTable(
		datastructure.NewInterstate("I-9", 9, pkg.NORTH_SOUTH,
			datastructure.NewCity("San Diego", "CA"),
			datastructure.NewCity("Atlantis", "ZZ"),
			datastructure.NewCity("Los Angeles", "CA"),
		),
	)
	b, logs := newObservedBuilder(routes, datastructure.CityCoordinates())
	res := b.BuildPathGraph()

	assert.Equal(t, 1+3, res.NumberOfVertices())
	assert.Equal(t, 2, res.NumberOfEdges())
	assert.Len(t, res.Warnings, 3)
	assert.Equal(t, 3, logs.FilterLevelExact(zapcore.WarnLevel).Len())

	for _, el := range res.Elements {
		switch el := el.(type) {
		case *graphson.Vertex:
			if el.ID != "city:Atlantis_ZZ" {
				continue
			}
			lat, ok := el.Properties.Get("latitude")
			assert.True(t, ok)
			assert.Nil(t, lat)
		case *graphson.Edge:
			length, _ := el.Properties.Get("length_miles")
			assert.Equal(t, graphson.Float(0), length, el.ID)
		}
	}
}

func TestBuildIsDeterministic(t *testing.T) {
	b, _ := newObservedBuilder(datastructure.PrimaryInterstates(), datastructure.CityCoordinates())
	assert.Equal(t, render(t, b.BuildPathGraph().Elements), render(t, b.BuildPathGraph().Elements))
	assert.Equal(t, render(t, b.BuildServesGraph().Elements), render(t, b.BuildServesGraph().Elements))
}

func TestDistinctCities(t *testing.T) {
	routes := datastructure.NewRouteTable(
		datastructure.NewInterstate("I-9", 9, pkg.NORTH_SOUTH,
			datastructure.NewCity("Zeta", "ZZ"),
			datastructure.NewCity("St. Gamma", "CC"),
			datastructure.NewCity("Alpha", "AA"),
		),
		datastructure.NewInterstate("I-8", 8, pkg.EAST_WEST,
			datastructure.NewCity("St Gamma", "CC"),
			datastructure.NewCity("Alpha", "AA"),
			datastructure.NewCity("Beta", "BB"),
		),
	)
	b := NewGraphBuilder(routes, datastructure.NewCoordinateTable(nil), zap.NewNop())

	cids, cities := b.distinctCities()

	assert.Equal(t, []string{"city:Alpha_AA", "city:Beta_BB", "city:St_Gamma_CC", "city:Zeta_ZZ"}, cids)
	assert.Len(t, cities, 4)
	assert.Equal(t, "St. Gamma", cities["city:St_Gamma_CC"].GetName())
}
