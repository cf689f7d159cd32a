package graphbuilder

import (
	"fmt"

	"github.com/lintang-b-s/interstatex/pkg"
	"github.com/lintang-b-s/interstatex/pkg/datastructure"
	"github.com/lintang-b-s/interstatex/pkg/geo"
	"github.com/lintang-b-s/interstatex/pkg/graphson"
	"go.uber.org/zap"
)

// BuildPathGraph. same vertices as the serves graph plus city latitude/longitude, then one
// city -> city edge per consecutive pair on each interstate, labelled with the interstate key.
func (b *GraphBuilder) BuildPathGraph() *Result {
	res := &Result{}

	b.interstateVertices(res)

	cids, cities := b.distinctCities()
	for _, cid := range cids {
		city := cities[cid]
		v := newCityVertex(cid, city)

		var lat, lon any
		if coord, ok := b.coords.GetCoordinate(city); ok {
			lat, lon = graphson.Float(coord.GetLat()), graphson.Float(coord.GetLon())
		} else {
			b.warn(res, Warning{
				Kind:    MISSING_CITY_COORDINATES,
				Cities:  []datastructure.City{city},
				Message: fmt.Sprintf("No coordinates for %s, %s", city.GetName(), city.GetState()),
			})
		}
		v.Properties.Set("latitude", lat)
		v.Properties.Set("longitude", lon)

		res.Elements = append(res.Elements, v)
	}

	b.routes.ForInterstates(func(hwy *datastructure.Interstate) {
		hwy.ForSegments(func(seq int, from, to datastructure.City) {
			length := b.segmentLengthMiles(res, hwy.GetKey(), from, to)

			e := graphson.NewEdge(graphson.MakePathEdgeID(hwy.GetKey(), seq), hwy.GetKey(),
				cityID(from), pkg.CITY_LABEL, cityID(to), pkg.CITY_LABEL)
			e.Properties.Set("interstate", hwy.GetKey())
			e.Properties.Set("interstate_number", hwy.GetNumber())
			e.Properties.Set("length_miles", graphson.Float(length))
			e.Properties.Set("sequence", seq)
			res.Elements = append(res.Elements, e)
		})
	})

	b.log.Info("path graph built",
		zap.Int("vertices", res.NumberOfVertices()), zap.Int("edges", res.NumberOfEdges()))
	return res
}

// segmentLengthMiles is the great-circle distance between the two city centers. A segment
// with a missing endpoint gets length 0.0 and a warning.
func (b *GraphBuilder) segmentLengthMiles(res *Result, interstate string, from, to datastructure.City) float64 {
	fromCoord, okFrom := b.coords.GetCoordinate(from)
	toCoord, okTo := b.coords.GetCoordinate(to)
	if !okFrom || !okTo {
		msg := fmt.Sprintf("Missing coordinates for segment on %s: %s, %s -> %s, %s",
			interstate, from.GetName(), from.GetState(), to.GetName(), to.GetState())
		b.warn(res, Warning{
			Kind:       MISSING_SEGMENT_COORDINATES,
			Interstate: interstate,
			Cities:     []datastructure.City{from, to},
			Message:    msg,
		})
		return 0.0
	}

	return geo.CalculateHaversineDistance(fromCoord.GetLat(), fromCoord.GetLon(),
		toCoord.GetLat(), toCoord.GetLon())
}
