package verifier

import (
	"context"
	"fmt"
	"math"
	"runtime"

	"github.com/lintang-b-s/interstatex/pkg"
	"github.com/lintang-b-s/interstatex/pkg/concurrent"
	"github.com/lintang-b-s/interstatex/pkg/datastructure"
	"github.com/lintang-b-s/interstatex/pkg/geo"
	"github.com/lintang-b-s/interstatex/pkg/graphson"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type Severity uint8

const (
	SEVERITY_WARNING Severity = iota
	SEVERITY_ERROR
)

func (s Severity) String() string {
	if s == SEVERITY_ERROR {
		return "error"
	}
	return "warning"
}

type Finding struct {
	Severity  Severity
	ElementID string
	Message   string
}

type Report struct {
	File     string
	Vertices int
	Edges    int
	Findings []Finding
	Routes   []RouteSummary
}

func (r *Report) HasErrors() bool {
	for _, f := range r.Findings {
		if f.Severity == SEVERITY_ERROR {
			return true
		}
	}
	return false
}

func (r *Report) NumberOf(severity Severity) int {
	n := 0
	for _, f := range r.Findings {
		if f.Severity == severity {
			n++
		}
	}
	return n
}

func (r *Report) addf(severity Severity, elementID, format string, a ...any) {
	r.Findings = append(r.Findings, Finding{
		Severity:  severity,
		ElementID: elementID,
		Message:   fmt.Sprintf(format, a...),
	})
}

type Verifier struct {
	routes          *datastructure.RouteTable
	coords          *datastructure.CoordinateTable
	lengthTolerance float64 // miles
	colocatedRadius float64 // miles
	log             *zap.Logger
}

// NewVerifier. routes and coords may be nil; with routes the per-interstate edge counts are
// checked against the table, coords fill in city coordinates missing from the file.
func NewVerifier(routes *datastructure.RouteTable, coords *datastructure.CoordinateTable,
	lengthTolerance, colocatedRadius float64, log *zap.Logger) *Verifier {
	return &Verifier{
		routes:          routes,
		coords:          coords,
		lengthTolerance: lengthTolerance,
		colocatedRadius: colocatedRadius,
		log:             log,
	}
}

// Verify checks the structural invariants of a loaded GraphSON graph and summarizes its routes.
func (v *Verifier) Verify(file string, g *graphson.Graph) *Report {
	report := &Report{
		File:     file,
		Vertices: len(g.Vertices),
		Edges:    len(g.Edges),
	}

	vertices := make(map[string]graphson.LoadedVertex, len(g.Vertices))
	for _, vertex := range g.Vertices {
		if prev, ok := vertices[vertex.ID]; ok {
			report.addf(SEVERITY_ERROR, vertex.ID, "duplicate vertex id (lines %d and %d)", prev.Line, vertex.Line)
			continue
		}
		vertices[vertex.ID] = vertex
	}

	edgeLines := make(map[string]int, len(g.Edges))
	for _, e := range g.Edges {
		if prevLine, ok := edgeLines[e.ID]; ok {
			report.addf(SEVERITY_ERROR, e.ID, "duplicate edge id (lines %d and %d)", prevLine, e.Line)
		} else {
			edgeLines[e.ID] = e.Line
		}
		v.checkEndpoint(report, vertices, e.ID, e.OutV, e.OutVLabel, "outV")
		v.checkEndpoint(report, vertices, e.ID, e.InV, e.InVLabel, "inV")
	}

	coords := v.cityCoordinates(g)
	v.checkSegmentLengths(report, g, coords)
	v.checkColocatedCities(report, coords)

	report.Routes = v.summarizeRoutes(report, g, vertices, coords)
	if v.routes != nil {
		v.checkAgainstRouteTable(report, g, report.Routes)
	}

	return report
}

func (v *Verifier) checkEndpoint(report *Report, vertices map[string]graphson.LoadedVertex,
	edgeID, vertexID, label, side string) {
	vertex, ok := vertices[vertexID]
	if !ok {
		report.addf(SEVERITY_ERROR, edgeID, "%s %q does not reference a vertex", side, vertexID)
		return
	}
	if label != "" && vertex.Label != label {
		report.addf(SEVERITY_ERROR, edgeID, "%s label %q does not match vertex label %q", side, label, vertex.Label)
	}
}

// cityCoordinates collects the coordinates of every city vertex, from the file itself or,
// when the file carries none, from the coordinate table.
func (v *Verifier) cityCoordinates(g *graphson.Graph) map[string]geo.Coordinate {
	coords := make(map[string]geo.Coordinate)
	for _, vertex := range g.Vertices {
		if vertex.Label != pkg.CITY_LABEL {
			continue
		}
		lat, okLat := propFloat(vertex.Properties, "latitude")
		lon, okLon := propFloat(vertex.Properties, "longitude")
		if okLat && okLon {
			coords[vertex.ID] = geo.NewCoordinate(lat, lon)
			continue
		}
		if v.coords == nil {
			continue
		}
		name, _ := propString(vertex.Properties, "name")
		state, _ := propString(vertex.Properties, "state")
		if coord, ok := v.coords.GetCoordinate(datastructure.NewCity(name, state)); ok {
			coords[vertex.ID] = coord
		}
	}
	return coords
}

type segmentCheck struct {
	edgeID   string
	length   float64
	from, to geo.Coordinate
}

// checkSegmentLengths compares every length_miles with an independent s2 great-circle distance.
func (v *Verifier) checkSegmentLengths(report *Report, g *graphson.Graph, coords map[string]geo.Coordinate) {
	var checks []segmentCheck
	for _, e := range g.Edges {
		length, ok := propFloat(e.Properties, "length_miles")
		if !ok {
			continue
		}
		from, okFrom := coords[e.OutV]
		to, okTo := coords[e.InV]
		if !okFrom || !okTo {
			if length == 0 {
				report.addf(SEVERITY_WARNING, e.ID, "placeholder length 0.0, endpoint coordinates unknown")
			}
			continue
		}
		if !geo.ValidCoordinate(from) || !geo.ValidCoordinate(to) {
			report.addf(SEVERITY_ERROR, e.ID, "endpoint coordinates out of range")
			continue
		}
		checks = append(checks, segmentCheck{edgeID: e.ID, length: length, from: from, to: to})
	}

	expected := concurrent.Map(runtime.GOMAXPROCS(0), checks, func(c segmentCheck) float64 {
		return geo.CalculateGreatCircleDistanceS2(c.from, c.to)
	})
	for i, c := range checks {
		if math.Abs(expected[i]-c.length) > v.lengthTolerance {
			report.addf(SEVERITY_WARNING, c.edgeID, "length_miles %.3f differs from great-circle distance %.3f",
				c.length, expected[i])
		}
	}
}

// VerifyFiles loads and verifies every file concurrently. Reports are returned in the order of files.
func (v *Verifier) VerifyFiles(ctx context.Context, files []string) ([]*Report, error) {
	reports := make([]*Report, len(files))

	group, ctx := errgroup.WithContext(ctx)
	for i, file := range files {
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			v.log.Info("verifying", zap.String("file", file))
			g, err := graphson.ReadFile(file)
			if err != nil {
				v.log.Error("load failed", zap.String("file", file), zap.Error(err))
				return err
			}
			reports[i] = v.Verify(file, g)
			v.log.Info("file verified",
				zap.String("file", file),
				zap.Int("elements", g.NumberOfElements()),
				zap.Int("findings", len(reports[i].Findings)))
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}

// LogReport writes the report through log, one line per finding and per route.
func LogReport(log *zap.Logger, report *Report) {
	for _, f := range report.Findings {
		if f.Severity == SEVERITY_ERROR {
			log.Error(f.Message, zap.String("file", report.File), zap.String("element", f.ElementID))
		} else {
			log.Warn(f.Message, zap.String("file", report.File), zap.String("element", f.ElementID))
		}
	}
	for _, route := range report.Routes {
		log.Info("route",
			zap.String("file", report.File),
			zap.String("interstate", route.Interstate),
			zap.Int("edges", route.Edges),
			zap.Float64("total_miles", route.TotalMiles),
			zap.String("polyline", route.Polyline))
	}
	log.Info("verified",
		zap.String("file", report.File),
		zap.Int("vertices", report.Vertices),
		zap.Int("edges", report.Edges),
		zap.Int("warnings", report.NumberOf(SEVERITY_WARNING)),
		zap.Int("errors", report.NumberOf(SEVERITY_ERROR)))
}

func propFloat(props map[string]any, key string) (float64, bool) {
	switch val := props[key].(type) {
	case float64:
		return val, true
	case int:
		return float64(val), true
	default:
		return 0, false
	}
}

func propString(props map[string]any, key string) (string, bool) {
	s, ok := props[key].(string)
	return s, ok
}
