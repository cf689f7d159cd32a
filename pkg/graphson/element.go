package graphson

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/lintang-b-s/interstatex/pkg"
)

// Element is one GraphSON line, either a *Vertex or an *Edge.
type Element interface {
	GetID() string
	GetType() string
}

// Float is written the same way Python's json module writes floats: shortest
// round-trip digits, always with a decimal point or exponent.
type Float float64

func (f Float) MarshalJSON() ([]byte, error) {
	v := float64(f)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, fmt.Errorf("unsupported float value %v", v)
	}

	abs := math.Abs(v)
	if abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return []byte(strconv.FormatFloat(v, 'e', -1, 64)), nil
	}

	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return []byte(s), nil
}

type VertexProperty struct {
	ID    string `json:"id"`
	Value any    `json:"value"`
}

type vertexPropertyEntry struct {
	key    string
	values []VertexProperty
}

// VertexProperties keeps GraphSON multi-properties in insertion order. Every
// property currently has cardinality 1.
type VertexProperties struct {
	vertexID string
	entries  []vertexPropertyEntry
}

func (vp *VertexProperties) Set(key string, value any) {
	prop := VertexProperty{ID: makePropertyID(vp.vertexID, key), Value: value}
	for i := range vp.entries {
		if vp.entries[i].key == key {
			vp.entries[i].values = []VertexProperty{prop}
			return
		}
	}
	vp.entries = append(vp.entries, vertexPropertyEntry{key: key, values: []VertexProperty{prop}})
}

func (vp *VertexProperties) Get(key string) (any, bool) {
	for _, e := range vp.entries {
		if e.key == key && len(e.values) > 0 {
			return e.values[0].Value, true
		}
	}
	return nil, false
}

func (vp *VertexProperties) Keys() []string {
	keys := make([]string, 0, len(vp.entries))
	for _, e := range vp.entries {
		keys = append(keys, e.key)
	}
	return keys
}

func (vp *VertexProperties) MarshalJSON() ([]byte, error) {
	keys := make([]string, len(vp.entries))
	values := make([]any, len(vp.entries))
	for i, e := range vp.entries {
		keys[i] = e.key
		values[i] = e.values
	}
	return marshalOrdered(keys, values)
}

type edgePropertyEntry struct {
	key   string
	value any
}

// EdgeProperties are flat key/value pairs kept in insertion order.
type EdgeProperties struct {
	entries []edgePropertyEntry
}

func (ep *EdgeProperties) Set(key string, value any) {
	for i := range ep.entries {
		if ep.entries[i].key == key {
			ep.entries[i].value = value
			return
		}
	}
	ep.entries = append(ep.entries, edgePropertyEntry{key: key, value: value})
}

func (ep *EdgeProperties) Get(key string) (any, bool) {
	for _, e := range ep.entries {
		if e.key == key {
			return e.value, true
		}
	}
	return nil, false
}

func (ep *EdgeProperties) Keys() []string {
	keys := make([]string, 0, len(ep.entries))
	for _, e := range ep.entries {
		keys = append(keys, e.key)
	}
	return keys
}

func (ep *EdgeProperties) MarshalJSON() ([]byte, error) {
	keys := make([]string, len(ep.entries))
	values := make([]any, len(ep.entries))
	for i, e := range ep.entries {
		keys[i] = e.key
		values[i] = e.value
	}
	return marshalOrdered(keys, values)
}

type Vertex struct {
	ID         string            `json:"id"`
	Label      string            `json:"label"`
	Type       string            `json:"type"`
	Properties *VertexProperties `json:"properties"`
}

func NewVertex(id, label string) *Vertex {
	return &Vertex{
		ID:         id,
		Label:      label,
		Type:       pkg.VERTEX_TYPE,
		Properties: &VertexProperties{vertexID: id},
	}
}

func (v *Vertex) GetID() string {
	return v.ID
}

func (v *Vertex) GetType() string {
	return v.Type
}

type Edge struct {
	ID         string          `json:"id"`
	Label      string          `json:"label"`
	Type       string          `json:"type"`
	OutV       string          `json:"outV"`
	OutVLabel  string          `json:"outVLabel"`
	InV        string          `json:"inV"`
	InVLabel   string          `json:"inVLabel"`
	Properties *EdgeProperties `json:"properties"`
}

func NewEdge(id, label, outV, outVLabel, inV, inVLabel string) *Edge {
	return &Edge{
		ID:         id,
		Label:      label,
		Type:       pkg.EDGE_TYPE,
		OutV:       outV,
		OutVLabel:  outVLabel,
		InV:        inV,
		InVLabel:   inVLabel,
		Properties: &EdgeProperties{},
	}
}

func (e *Edge) GetID() string {
	return e.ID
}

func (e *Edge) GetType() string {
	return e.Type
}

// marshalOrdered writes a JSON object with keys in the given order.
func marshalOrdered(keys []string, values []any) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := marshalNoEscape(key)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		v, err := marshalNoEscape(values[i])
		if err != nil {
			return nil, fmt.Errorf("marshal property %q: %w", key, err)
		}
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func marshalNoEscape(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
