package graphson

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/lintang-b-s/interstatex/pkg"
)

var nonAlphanumeric = regexp.MustCompile(`[^A-Za-z0-9]+`)

// MakeCityID normalizes city + state to a GraphSON-safe vertex id:
// "San Diego", "CA" -> "city:San_Diego_CA"
func MakeCityID(name, state string) string {
	base := nonAlphanumeric.ReplaceAllString(name+"_"+state, "_")
	return pkg.CITY_ID_PREFIX + strings.Trim(base, "_")
}

func MakeInterstateID(key string) string {
	return pkg.INTERSTATE_ID_PREFIX + key
}

// MakeServesEdgeID. edge:<interstate>:<seq>
func MakeServesEdgeID(key string, seq int) string {
	return fmt.Sprintf("%s%s:%d", pkg.EDGE_ID_PREFIX, key, seq)
}

// MakePathEdgeID. edge:<interstate>:<seq>-<seq+1>
func MakePathEdgeID(key string, seq int) string {
	return fmt.Sprintf("%s%s:%d-%d", pkg.EDGE_ID_PREFIX, key, seq, seq+1)
}

func makePropertyID(vertexID, key string) string {
	return vertexID + "|" + key
}
