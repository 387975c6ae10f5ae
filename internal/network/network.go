// Package network holds the immutable delivery network: a symmetric weight
// table plus an all-pairs shortest-path table computed once at construction.
package network

import (
	"bonus-route-planner/internal/domain"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
)

// Network answers travel-time queries over a fixed set of weighted edges.
// It is never mutated after New returns and is safe for concurrent readers.
type Network struct {
	locations []domain.Location
	index     map[domain.Location]int
	direct    adjacency
	dist      [][]float64
	computed  []domain.Location
}

type options struct {
	rows map[domain.Location]map[domain.Location]float64
}

// Option customizes network construction.
type Option func(*options)

// WithDistanceRows seeds shortest-path rows computed earlier for the same
// edge set (see Fingerprint). Origins present in rows are not searched again.
func WithDistanceRows(rows map[domain.Location]map[domain.Location]float64) Option {
	return func(o *options) { o.rows = rows }
}

// New builds a network from edges. Each edge is recorded in both directions;
// when the same pair appears more than once the last weight wins.
func New(edges []domain.Edge, opts ...Option) (*Network, error) {
	var cfg options
	for _, opt := range opts {
		opt(&cfg)
	}

	direct, err := buildDirect(edges)
	if err != nil {
		return nil, fmt.Errorf("new network: %w", err)
	}

	locations := sortedLocations(direct)
	index := make(map[domain.Location]int, len(locations))
	for i, loc := range locations {
		index[loc] = i
	}

	n := &Network{
		locations: locations,
		index:     index,
		direct:    direct,
		dist:      make([][]float64, len(locations)),
	}

	for i, origin := range locations {
		if row, ok := n.rowFromSeed(cfg.rows[origin]); ok {
			n.dist[i] = row
			continue
		}
		n.dist[i] = n.shortestFrom(i)
		n.computed = append(n.computed, origin)
	}

	return n, nil
}

// rowFromSeed converts a cached row into a dense distance row. Locations
// absent from the row are unreachable from its origin.
func (n *Network) rowFromSeed(seed map[domain.Location]float64) ([]float64, bool) {
	if len(seed) == 0 {
		return nil, false
	}
	row := make([]float64, len(n.locations))
	for i, loc := range n.locations {
		d, ok := seed[loc]
		if !ok {
			d = math.Inf(1)
		}
		row[i] = d
	}
	return row, true
}

// ShortestPathTime returns the minimal travel time from a to b over any path.
// The second result is false when b cannot be reached from a or either
// location is not part of the network.
func (n *Network) ShortestPathTime(a, b domain.Location) (float64, bool) {
	i, ok := n.index[a]
	if !ok {
		return math.Inf(1), false
	}
	j, ok := n.index[b]
	if !ok {
		return math.Inf(1), false
	}
	d := n.dist[i][j]
	if math.IsInf(d, 1) {
		return d, false
	}
	return d, true
}

// DirectEdgeTime returns the weight of the edge between a and b, if any.
func (n *Network) DirectEdgeTime(a, b domain.Location) (float64, bool) {
	w, ok := n.direct[a][b]
	if !ok {
		return math.Inf(1), false
	}
	return w, true
}

// HasLocation reports whether loc is an endpoint of at least one edge.
func (n *Network) HasLocation(loc domain.Location) bool {
	_, ok := n.index[loc]
	return ok
}

// Locations returns all known locations in ascending order.
func (n *Network) Locations() []domain.Location {
	return slices.Clone(n.locations)
}

// Row returns the shortest-path times from origin to every reachable location.
func (n *Network) Row(origin domain.Location) map[domain.Location]float64 {
	i, ok := n.index[origin]
	if !ok {
		return nil
	}
	out := make(map[domain.Location]float64, len(n.locations))
	for j, loc := range n.locations {
		if !math.IsInf(n.dist[i][j], 1) {
			out[loc] = n.dist[i][j]
		}
	}
	return out
}

// ComputedOrigins lists the origins whose rows were searched during New
// rather than taken from WithDistanceRows.
func (n *Network) ComputedOrigins() []domain.Location {
	return slices.Clone(n.computed)
}

// Fingerprint identifies the effective edge set. Two networks with the same
// fingerprint have identical distance tables.
func (n *Network) Fingerprint() string {
	return fingerprint(n.direct, n.locations)
}

// FingerprintOf returns the fingerprint New would assign to edges, without
// computing any shortest paths.
func FingerprintOf(edges []domain.Edge) (string, error) {
	direct, err := buildDirect(edges)
	if err != nil {
		return "", fmt.Errorf("fingerprint: %w", err)
	}
	return fingerprint(direct, sortedLocations(direct)), nil
}

type adjacency map[domain.Location]map[domain.Location]float64

// buildDirect records every edge in both directions; later duplicates
// overwrite earlier ones.
func buildDirect(edges []domain.Edge) (adjacency, error) {
	direct := make(adjacency)
	set := func(a, b domain.Location, w float64) {
		if direct[a] == nil {
			direct[a] = make(map[domain.Location]float64)
		}
		direct[a][b] = w
	}

	for i, e := range edges {
		from := domain.Location(strings.TrimSpace(string(e.From)))
		to := domain.Location(strings.TrimSpace(string(e.To)))
		if from == "" || to == "" {
			return nil, fmt.Errorf("edge #%d has an empty endpoint", i+1)
		}
		w := e.TravelTime
		if math.IsNaN(w) || math.IsInf(w, 0) || w <= 0 {
			return nil, fmt.Errorf("edge %s-%s weight=%v: %w", from, to, w, domain.ErrInvalidEdgeWeight)
		}
		set(from, to, w)
		set(to, from, w)
	}
	return direct, nil
}

func sortedLocations(direct adjacency) []domain.Location {
	locations := make([]domain.Location, 0, len(direct))
	for loc := range direct {
		locations = append(locations, loc)
	}
	slices.Sort(locations)
	return locations
}

func fingerprint(direct adjacency, locations []domain.Location) string {
	h := sha256.New()
	for _, a := range locations {
		neighbors := make([]domain.Location, 0, len(direct[a]))
		for b := range direct[a] {
			neighbors = append(neighbors, b)
		}
		slices.Sort(neighbors)
		for _, b := range neighbors {
			if b < a {
				continue
			}
			h.Write([]byte(a))
			h.Write([]byte{0})
			h.Write([]byte(b))
			h.Write([]byte{0})
			h.Write([]byte(strconv.FormatFloat(direct[a][b], 'g', -1, 64)))
			h.Write([]byte{'\n'})
		}
	}
	return hex.EncodeToString(h.Sum(nil))
}
