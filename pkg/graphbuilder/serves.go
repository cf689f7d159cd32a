package graphbuilder

import (
	"github.com/lintang-b-s/interstatex/pkg"
	"github.com/lintang-b-s/interstatex/pkg/datastructure"
	"github.com/lintang-b-s/interstatex/pkg/graphson"
	"go.uber.org/zap"
)

// BuildServesGraph. interstate vertices, then city vertices sorted by id, then one
// interstate -> city "serves" edge per route entry with its 0-based sequence.
func (b *GraphBuilder) BuildServesGraph() *Result {
	res := &Result{}

	b.interstateVertices(res)

	cids, cities := b.distinctCities()
	for _, cid := range cids {
		res.Elements = append(res.Elements, newCityVertex(cid, cities[cid]))
	}

	b.routes.ForInterstates(func(hwy *datastructure.Interstate) {
		outV := graphson.MakeInterstateID(hwy.GetKey())
		for seq, city := range hwy.GetCities() {
			e := graphson.NewEdge(graphson.MakeServesEdgeID(hwy.GetKey(), seq), pkg.SERVES_LABEL,
				outV, pkg.INTERSTATE_LABEL, cityID(city), pkg.CITY_LABEL)
			e.Properties.Set("sequence", seq)
			res.Elements = append(res.Elements, e)
		}
	})

	b.log.Info("serves graph built",
		zap.Int("vertices", res.NumberOfVertices()), zap.Int("edges", res.NumberOfEdges()))
	return res
}
