package verifier

import (
	"cmp"
	"slices"
	"strings"

	"github.com/lintang-b-s/interstatex/pkg"
	"github.com/lintang-b-s/interstatex/pkg/datastructure"
	"github.com/lintang-b-s/interstatex/pkg/geo"
	"github.com/lintang-b-s/interstatex/pkg/graphson"
	"github.com/lintang-b-s/interstatex/pkg/util"
	"github.com/twpayne/go-polyline"
)

type RouteSummary struct {
	Interstate string
	Edges      int
	TotalMiles float64 // zero for serves graphs
	Polyline   string  // encoded city sequence, empty when a city has no coordinates
	serves     bool
}

type sequencedEdge struct {
	edge graphson.LoadedEdge
	seq  int
}

// routeKey names the interstate an edge belongs to: the interstate property of path
// edges, or the interstate vertex of serves edges.
func routeKey(e graphson.LoadedEdge, vertices map[string]graphson.LoadedVertex) string {
	if key, ok := propString(e.Properties, "interstate"); ok {
		return key
	}
	if e.OutVLabel == pkg.INTERSTATE_LABEL {
		if name, ok := propString(vertices[e.OutV].Properties, "name"); ok {
			return name
		}
		return strings.TrimPrefix(e.OutV, pkg.INTERSTATE_ID_PREFIX)
	}
	return e.Label
}

func (v *Verifier) summarizeRoutes(report *Report, g *graphson.Graph,
	vertices map[string]graphson.LoadedVertex, coords map[string]geo.Coordinate) []RouteSummary {
	var (
		order  []string
		groups = make(map[string][]sequencedEdge)
	)

	for _, e := range g.Edges {
		seq, ok := propFloat(e.Properties, "sequence")
		if !ok {
			report.addf(SEVERITY_ERROR, e.ID, "edge without sequence property")
			continue
		}
		key := routeKey(e, vertices)
		if _, seen := groups[key]; !seen {
			order = append(order, key)
		}
		groups[key] = append(groups[key], sequencedEdge{edge: e, seq: int(seq)})
	}

	summaries := make([]RouteSummary, 0, len(order))
	for _, key := range order {
		edges := groups[key]
		slices.SortStableFunc(edges, func(a, b sequencedEdge) int {
			return cmp.Compare(a.seq, b.seq)
		})

		summary := RouteSummary{
			Interstate: key,
			Edges:      len(edges),
			serves:     edges[0].edge.Label == pkg.SERVES_LABEL,
		}

		cityIDs := make([]string, 0, len(edges)+1)
		if !summary.serves {
			cityIDs = append(cityIDs, edges[0].edge.OutV)
		}
		for i, se := range edges {
			if se.seq != i {
				report.addf(SEVERITY_ERROR, se.edge.ID, "sequence %d on %s, expected %d", se.seq, key, i)
			}
			if !summary.serves && i > 0 && edges[i-1].edge.InV != se.edge.OutV {
				report.addf(SEVERITY_ERROR, se.edge.ID, "path on %s is broken: %s does not continue from %s",
					key, se.edge.OutV, edges[i-1].edge.InV)
			}
			if length, ok := propFloat(se.edge.Properties, "length_miles"); ok {
				summary.TotalMiles += length
			}
			cityIDs = append(cityIDs, se.edge.InV)
		}
		summary.TotalMiles = util.RoundFloat(summary.TotalMiles, 3)
		summary.Polyline = encodeRoute(cityIDs, coords)

		summaries = append(summaries, summary)
	}
	return summaries
}

func encodeRoute(cityIDs []string, coords map[string]geo.Coordinate) string {
	points := make([][]float64, 0, len(cityIDs))
	for _, cid := range cityIDs {
		coord, ok := coords[cid]
		if !ok {
			return ""
		}
		points = append(points, []float64{coord.GetLat(), coord.GetLon()})
	}
	return string(polyline.EncodeCoords(points))
}

// checkAgainstRouteTable compares edge and city counts with the route table the file was generated from.
func (v *Verifier) checkAgainstRouteTable(report *Report, g *graphson.Graph, summaries []RouteSummary) {
	servesGraph := len(summaries) > 0 && summaries[0].serves
	expectedEdges := func(hwy *datastructure.Interstate) int {
		if servesGraph {
			return hwy.NumberOfCities()
		}
		return max(hwy.NumberOfCities()-1, 0)
	}

	seen := make(map[string]bool, len(summaries))
	for _, summary := range summaries {
		seen[summary.Interstate] = true
		hwy, ok := v.routes.GetInterstate(summary.Interstate)
		if !ok {
			report.addf(SEVERITY_WARNING, graphson.MakeInterstateID(summary.Interstate),
				"interstate %s is not in the route table", summary.Interstate)
			continue
		}
		if want := expectedEdges(hwy); summary.Edges != want {
			report.addf(SEVERITY_ERROR, graphson.MakeInterstateID(summary.Interstate),
				"%s has %d edges, route table expects %d", summary.Interstate, summary.Edges, want)
		}
	}

	distinct := make(map[string]struct{})
	v.routes.ForInterstates(func(hwy *datastructure.Interstate) {
		if !seen[hwy.GetKey()] && expectedEdges(hwy) > 0 {
			report.addf(SEVERITY_ERROR, graphson.MakeInterstateID(hwy.GetKey()),
				"interstate %s has no edges", hwy.GetKey())
		}
		for _, city := range hwy.GetCities() {
			distinct[graphson.MakeCityID(city.GetName(), city.GetState())] = struct{}{}
		}
	})

	cityVertices := 0
	for _, vertex := range g.Vertices {
		if vertex.Label == pkg.CITY_LABEL {
			cityVertices++
		}
	}
	if cityVertices != len(distinct) {
		report.addf(SEVERITY_ERROR, "", "%d city vertices, route table has %d distinct cities",
			cityVertices, len(distinct))
	}
}
