package verifier

import (
	"math"
	"slices"

	"github.com/lintang-b-s/interstatex/pkg/geo"
	"github.com/tidwall/rtree"
	"golang.org/x/exp/maps"
)

// checkColocatedCities reports pairs of distinct city vertices whose centers are within
// colocatedRadius miles, usually the same city under two spellings.
func (v *Verifier) checkColocatedCities(report *Report, coords map[string]geo.Coordinate) {
	if v.colocatedRadius <= 0 || len(coords) < 2 {
		return
	}

	var tr rtree.RTreeG[string]
	cids := maps.Keys(coords)
	slices.Sort(cids)
	for _, cid := range cids {
		c := coords[cid]
		tr.Insert([2]float64{c.Lon, c.Lat}, [2]float64{c.Lon, c.Lat}, cid)
	}

	for _, cid := range cids {
		c := coords[cid]
		// corners of the square circumscribing the colocatedRadius circle
		diagonal := v.colocatedRadius * math.Sqrt2
		minLat, minLon := geo.GetDestinationPoint(c.Lat, c.Lon, 225, diagonal)
		maxLat, maxLon := geo.GetDestinationPoint(c.Lat, c.Lon, 45, diagonal)

		tr.Search([2]float64{minLon, minLat}, [2]float64{maxLon, maxLat},
			func(_, _ [2]float64, other string) bool {
				// each pair once
				if other <= cid {
					return true
				}
				o := coords[other]
				dist := geo.CalculateHaversineDistance(c.Lat, c.Lon, o.Lat, o.Lon)
				if dist <= v.colocatedRadius {
					report.addf(SEVERITY_WARNING, cid, "city %s is %.3f miles from %s", cid, dist, other)
				}
				return true
			})
	}
}
