package pkg

// enum of interstate orientation
type Direction uint8

const (
	NORTH_SOUTH Direction = iota
	EAST_WEST
	UNKNOWN_DIRECTION
)

func (d Direction) String() string {
	switch d {
	case NORTH_SOUTH:
		return "N-S"
	case EAST_WEST:
		return "E-W"
	default:
		return "unknown"
	}
}

func GetDirection(direction string) Direction {
	switch direction {
	case "N-S":
		return NORTH_SOUTH
	case "E-W":
		return EAST_WEST
	default:
		return UNKNOWN_DIRECTION
	}
}

const (
	EARTH_RADIUS_MILES float64 = 3958.8

	// verifier defaults
	LENGTH_TOLERANCE_MILES = 0.5
	COLOCATED_RADIUS_MILES = 1.0
)

// graphson labels & id prefixes
const (
	VERTEX_TYPE = "vertex"
	EDGE_TYPE   = "edge"

	INTERSTATE_LABEL = "interstate"
	CITY_LABEL       = "city"
	SERVES_LABEL     = "serves"

	INTERSTATE_ID_PREFIX = "interstate:"
	CITY_ID_PREFIX       = "city:"
	EDGE_ID_PREFIX       = "edge:"
)

const (
	SERVES_OUTPUT_FILE = "us_primary_interstates_graph.graphson"
	PATH_OUTPUT_FILE   = "us_primary_interstates_path.graphson"
	BZIP2_SUFFIX       = ".bz2"
)
