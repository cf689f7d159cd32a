package graphbuilder

import (
	"slices"

	"github.com/lintang-b-s/interstatex/pkg"
	"github.com/lintang-b-s/interstatex/pkg/datastructure"
	"github.com/lintang-b-s/interstatex/pkg/graphson"
	"go.uber.org/zap"
	"golang.org/x/exp/maps"
)

type WarningKind uint8

const (
	MISSING_CITY_COORDINATES WarningKind = iota
	MISSING_SEGMENT_COORDINATES
)

// Warning is a recoverable data problem found while building; generation never stops for one.
type Warning struct {
	Kind       WarningKind
	Interstate string // empty for city vertex warnings
	Cities     []datastructure.City
	Message    string
}

type Result struct {
	Elements []graphson.Element
	Warnings []Warning
}

func (r *Result) NumberOfVertices() int {
	n := 0
	for _, el := range r.Elements {
		if el.GetType() == pkg.VERTEX_TYPE {
			n++
		}
	}
	return n
}

func (r *Result) NumberOfEdges() int {
	return len(r.Elements) - r.NumberOfVertices()
}

type GraphBuilder struct {
	routes *datastructure.RouteTable
	coords *datastructure.CoordinateTable
	log    *zap.Logger
}

func NewGraphBuilder(routes *datastructure.RouteTable, coords *datastructure.CoordinateTable,
	log *zap.Logger) *GraphBuilder {
	return &GraphBuilder{
		routes: routes,
		coords: coords,
		log:    log,
	}
}

func (b *GraphBuilder) warn(res *Result, w Warning) {
	res.Warnings = append(res.Warnings, w)
	fields := []zap.Field{}
	if w.Interstate != "" {
		fields = append(fields, zap.String("interstate", w.Interstate))
	}
	cities := make([]string, 0, len(w.Cities))
	for _, city := range w.Cities {
		cities = append(cities, city.GetName()+", "+city.GetState())
	}
	fields = append(fields, zap.Strings("cities", cities))
	b.log.Warn(w.Message, fields...)
}

// interstateVertices emits one vertex per interstate in declaration order.
func (b *GraphBuilder) interstateVertices(res *Result) {
	b.routes.ForInterstates(func(hwy *datastructure.Interstate) {
		v := graphson.NewVertex(graphson.MakeInterstateID(hwy.GetKey()), pkg.INTERSTATE_LABEL)
		v.Properties.Set("name", hwy.GetKey())
		v.Properties.Set("number", hwy.GetNumber())
		v.Properties.Set("direction", hwy.GetDirection().String())
		res.Elements = append(res.Elements, v)
	})
}

// distinctCities dedups cities over all routes by vertex id and returns the ids in ascending order.
// The first (name, state) seen for an id wins.
func (b *GraphBuilder) distinctCities() ([]string, map[string]datastructure.City) {
	cities := make(map[string]datastructure.City)
	b.routes.ForInterstates(func(hwy *datastructure.Interstate) {
		for _, city := range hwy.GetCities() {
			cid := graphson.MakeCityID(city.GetName(), city.GetState())
			if _, ok := cities[cid]; !ok {
				cities[cid] = city
			}
		}
	})

	cids := maps.Keys(cities)
	slices.Sort(cids)
	return cids, cities
}

func newCityVertex(cid string, city datastructure.City) *graphson.Vertex {
	v := graphson.NewVertex(cid, pkg.CITY_LABEL)
	v.Properties.Set("name", city.GetName())
	v.Properties.Set("state", city.GetState())
	return v
}

func cityID(city datastructure.City) string {
	return graphson.MakeCityID(city.GetName(), city.GetState())
}
