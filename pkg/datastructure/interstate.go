package datastructure

import (
	"github.com/lintang-b-s/interstatex/pkg"
	"github.com/lintang-b-s/interstatex/pkg/geo"
)

// City is identified by its (name, state-code) pair and is comparable, so it doubles as a map key.
type City struct {
	name  string
	state string
}

func NewCity(name, state string) City {
	return City{name: name, state: state}
}

func (c City) GetName() string {
	return c.name
}

func (c City) GetState() string {
	return c.state
}

type Interstate struct {
	key       string // table key, e.g. "I-5"
	number    int
	direction pkg.Direction
	cities    []City // physical routing order
}

func NewInterstate(key string, number int, direction pkg.Direction, cities ...City) *Interstate {
	return &Interstate{
		key:       key,
		number:    number,
		direction: direction,
		cities:    cities,
	}
}

func (i *Interstate) GetKey() string {
	return i.key
}

func (i *Interstate) GetNumber() int {
	return i.number
}

func (i *Interstate) GetDirection() pkg.Direction {
	return i.direction
}

func (i *Interstate) NumberOfCities() int {
	return len(i.cities)
}

func (i *Interstate) GetCity(seq int) City {
	return i.cities[seq]
}

func (i *Interstate) GetCities() []City {
	cities := make([]City, len(i.cities))
	copy(cities, i.cities)
	return cities
}

// ForSegments calls handle for every consecutive city pair, seq is the index of from.
func (i *Interstate) ForSegments(handle func(seq int, from, to City)) {
	for seq := 0; seq+1 < len(i.cities); seq++ {
		handle(seq, i.cities[seq], i.cities[seq+1])
	}
}

// RouteTable keeps interstates in declaration order.
type RouteTable struct {
	interstates []*Interstate
	keyIndex    map[string]int
}

func NewRouteTable(interstates ...*Interstate) *RouteTable {
	keyIndex := make(map[string]int, len(interstates))
	for idx, hwy := range interstates {
		keyIndex[hwy.GetKey()] = idx
	}
	return &RouteTable{
		interstates: interstates,
		keyIndex:    keyIndex,
	}
}

func (rt *RouteTable) NumberOfInterstates() int {
	return len(rt.interstates)
}

// NumberOfRouteEntries is the total number of (interstate, city) pairs.
func (rt *RouteTable) NumberOfRouteEntries() int {
	total := 0
	for _, hwy := range rt.interstates {
		total += hwy.NumberOfCities()
	}
	return total
}

// NumberOfSegments is the total number of consecutive city pairs over all interstates.
func (rt *RouteTable) NumberOfSegments() int {
	total := 0
	for _, hwy := range rt.interstates {
		if hwy.NumberOfCities() > 0 {
			total += hwy.NumberOfCities() - 1
		}
	}
	return total
}

func (rt *RouteTable) GetInterstate(key string) (*Interstate, bool) {
	idx, ok := rt.keyIndex[key]
	if !ok {
		return nil, false
	}
	return rt.interstates[idx], true
}

func (rt *RouteTable) ForInterstates(handle func(hwy *Interstate)) {
	for _, hwy := range rt.interstates {
		handle(hwy)
	}
}

type CoordinateTable struct {
	coords map[City]geo.Coordinate
}

func NewCoordinateTable(coords map[City]geo.Coordinate) *CoordinateTable {
	return &CoordinateTable{coords: coords}
}

func (ct *CoordinateTable) GetCoordinate(city City) (geo.Coordinate, bool) {
	coord, ok := ct.coords[city]
	return coord, ok
}

func (ct *CoordinateTable) Len() int {
	return len(ct.coords)
}
