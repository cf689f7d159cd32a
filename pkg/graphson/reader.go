package graphson

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dsnet/compress/bzip2"
	"github.com/lintang-b-s/interstatex/pkg"
	"github.com/lintang-b-s/interstatex/pkg/util"
)

// LoadedVertex is a vertex read back from a GraphSON file, with multi-properties
// flattened to their first value.
type LoadedVertex struct {
	ID         string
	Label      string
	Properties map[string]any
	Line       int
}

type LoadedEdge struct {
	ID         string
	Label      string
	OutV       string
	OutVLabel  string
	InV        string
	InVLabel   string
	Properties map[string]any
	Line       int
}

type Graph struct {
	Vertices []LoadedVertex
	Edges    []LoadedEdge
}

func (g *Graph) NumberOfElements() int {
	return len(g.Vertices) + len(g.Edges)
}

type rawElement struct {
	ID         *string                    `json:"id"`
	Label      string                     `json:"label"`
	Type       string                     `json:"type"`
	OutV       *string                    `json:"outV"`
	OutVLabel  string                     `json:"outVLabel"`
	InV        *string                    `json:"inV"`
	InVLabel   string                     `json:"inVLabel"`
	Properties map[string]json.RawMessage `json:"properties"`
}

// ReadFile loads a line-delimited GraphSON file. Files ending in .bz2 are decompressed.
func ReadFile(filename string) (*Graph, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, util.WrapErrorf(err, util.ErrNotFound, "open %s", filename)
	}
	defer f.Close()

	var in io.Reader = f
	if strings.HasSuffix(filename, pkg.BZIP2_SUFFIX) {
		bz, err := bzip2.NewReader(f, nil)
		if err != nil {
			return nil, util.WrapErrorf(err, util.ErrBadParamInput, "bzip2 reader for %s", filename)
		}
		defer bz.Close()
		in = bz
	}

	g, err := Read(in)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return g, nil
}

// Read parses one GraphSON element per line. Blank lines are skipped; a line with
// outV is an edge, any other line with an id is a vertex.
func Read(r io.Reader) (*Graph, error) {
	br := bufio.NewReader(r)
	g := &Graph{}

	lineNo := 0
	for {
		line, err := util.ReadLine(br)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, util.WrapErrorf(err, util.ErrInternalServerError, "read line %d", lineNo+1)
		}
		lineNo++

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		var raw rawElement
		if err := json.Unmarshal([]byte(line), &raw); err != nil {
			return nil, util.WrapErrorf(err, util.ErrBadParamInput, "line %d is not a JSON object", lineNo)
		}

		switch {
		case raw.OutV != nil:
			e, err := raw.toEdge(lineNo)
			if err != nil {
				return nil, err
			}
			g.Edges = append(g.Edges, e)
		case raw.ID != nil:
			v, err := raw.toVertex(lineNo)
			if err != nil {
				return nil, err
			}
			g.Vertices = append(g.Vertices, v)
		default:
			return nil, util.WrapErrorf(nil, util.ErrBadParamInput, "line %d has neither id nor outV", lineNo)
		}
	}

	return g, nil
}

func (raw rawElement) toVertex(lineNo int) (LoadedVertex, error) {
	props := make(map[string]any, len(raw.Properties))
	for key, msg := range raw.Properties {
		value, err := flattenProperty(msg)
		if err != nil {
			return LoadedVertex{}, util.WrapErrorf(err, util.ErrBadParamInput,
				"line %d: vertex property %q", lineNo, key)
		}
		props[key] = value
	}
	return LoadedVertex{
		ID:         *raw.ID,
		Label:      raw.Label,
		Properties: props,
		Line:       lineNo,
	}, nil
}

func (raw rawElement) toEdge(lineNo int) (LoadedEdge, error) {
	if raw.InV == nil {
		return LoadedEdge{}, util.WrapErrorf(nil, util.ErrBadParamInput, "line %d: edge without inV", lineNo)
	}
	props := make(map[string]any, len(raw.Properties))
	for key, msg := range raw.Properties {
		value, err := flattenProperty(msg)
		if err != nil {
			return LoadedEdge{}, util.WrapErrorf(err, util.ErrBadParamInput,
				"line %d: edge property %q", lineNo, key)
		}
		props[key] = value
	}
	id := ""
	if raw.ID != nil {
		id = *raw.ID
	}
	return LoadedEdge{
		ID:         id,
		Label:      raw.Label,
		OutV:       *raw.OutV,
		OutVLabel:  raw.OutVLabel,
		InV:        *raw.InV,
		InVLabel:   raw.InVLabel,
		Properties: props,
		Line:       lineNo,
	}, nil
}

// flattenProperty turns [{"id":..,"value":v}] into v and keeps plain values as they are.
func flattenProperty(msg json.RawMessage) (any, error) {
	trimmed := bytes.TrimSpace(msg)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var multi []VertexProperty
		if err := json.Unmarshal(trimmed, &multi); err == nil {
			if len(multi) == 0 {
				return nil, nil
			}
			return multi[0].Value, nil
		}
		var plain []any
		if err := json.Unmarshal(trimmed, &plain); err != nil {
			return nil, err
		}
		if len(plain) == 0 {
			return nil, nil
		}
		return plain[0], nil
	}

	var value any
	if err := json.Unmarshal(trimmed, &value); err != nil {
		return nil, err
	}
	return value, nil
}
