// SPDX-License-Identifier: MIT

// Package matrix - fixed-size directed, weighted graph over a dense adjacency matrix.
//
// Purpose:
//   - Store an n×n weight matrix in a flat row-major buffer (offset = i*n + j).
//   - Keep a parallel presence mask so that "no edge" and "edge of weight 0"
//     are distinct states.
//   - Guarantee safety at the public surface: mutators return ErrOutOfRange
//     instead of panicking; IsEdge returns 0 for invalid or absent cells.
//
// Concurrency:
//   - A Digraph is NOT safe for concurrent use. Callers serialize mutations,
//     or take a Clone() snapshot before handing the graph to a reader.
//
// Complexity quicksheet:
//   - NewDigraph/ResetEdges/Clone: O(n²); AddEdge/DelEdge/IsEdge/HasEdge: O(1);
//     Neighbors: O(n).
package matrix

import (
	"math"
	"strconv"
	"strings"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
	_fmtAbsent   = "."
)

// Digraph is a directed, weighted graph with a fixed vertex count.
//   - n is the vertex count, fixed at construction.
//   - weights is a flat buffer of length n*n in row-major order, indexed [source][dest].
//   - present marks which cells hold an edge; weights of absent cells are always 0.
//   - edges is the edge counter maintained according to policy.
type Digraph struct {
	n       int
	edges   int
	weights []int64
	present []bool
	policy  EdgeCountPolicy
}

// NewDigraph allocates a graph with n vertices and no edges.
// Implementation:
//   - Stage 1: validate n >= 0 and that n*n fits in an int; else ErrInvalidDimensions.
//   - Stage 2: gather options.
//   - Stage 3: allocate zero-filled weight buffer and presence mask.
//
// n == 0 is legal: every index is then out of range.
func NewDigraph(n int, opts ...Option) (*Digraph, error) {
	if n < 0 || (n > 0 && n > math.MaxInt/n) {
		return nil, ErrInvalidDimensions
	}
	o := gatherOptions(opts...)

	return &Digraph{
		n:       n,
		weights: make([]int64, n*n),
		present: make([]bool, n*n),
		policy:  o.edgeCount,
	}, nil
}

// VertexCount returns the number of vertices.
func (g *Digraph) VertexCount() int {
	if g == nil {
		return 0
	}

	return g.n
}

// EdgeCount returns the edge counter. Under EdgeCountTracked this equals the
// number of present cells; under EdgeCountLegacy it is the running balance of
// valid AddEdge/DelEdge calls.
func (g *Digraph) EdgeCount() int {
	if g == nil {
		return 0
	}

	return g.edges
}

// Policy reports the edge-count policy the graph was built with.
// A nil graph reports DefaultEdgeCountPolicy.
func (g *Digraph) Policy() EdgeCountPolicy {
	if g == nil {
		return DefaultEdgeCountPolicy
	}

	return g.policy
}

// ResetEdges clears every cell back to "no edge". The vertex count never
// changes. Under EdgeCountTracked the counter returns to 0; under
// EdgeCountLegacy it is left as it was.
func (g *Digraph) ResetEdges() {
	if g == nil {
		return
	}
	clear(g.weights)
	clear(g.present)
	if g.policy == EdgeCountTracked {
		g.edges = 0
	}
}

// inRange reports whether (source, dest) addresses a valid cell.
func (g *Digraph) inRange(source, dest int) bool {
	return source >= 0 && source < g.n && dest >= 0 && dest < g.n
}

// offset maps (source, dest) to the flat buffer index. Callers check inRange first.
func (g *Digraph) offset(source, dest int) int {
	return source*g.n + dest
}

// AddEdge stores the directed edge source→dest with the given weight.
// Self-loops are allowed. A weight of 0 creates a genuine zero-weight edge.
//
// Errors:
//   - ErrNilGraph on a nil receiver.
//   - ErrOutOfRange (wrapped with coordinates) when either index is outside
//     [0, n); the graph is left unchanged.
func (g *Digraph) AddEdge(source, dest int, weight int64) error {
	if g == nil {
		return ErrNilGraph
	}
	if !g.inRange(source, dest) {
		return digraphErrorf(ctxAddEdge, source, dest, ErrOutOfRange)
	}

	off := g.offset(source, dest)
	switch g.policy {
	case EdgeCountLegacy:
		g.edges++
	default:
		if !g.present[off] {
			g.edges++
		}
	}
	g.weights[off] = weight
	g.present[off] = true

	return nil
}

// DelEdge removes the directed edge source→dest.
//
// Errors:
//   - ErrNilGraph on a nil receiver.
//   - ErrOutOfRange (wrapped with coordinates) when either index is outside
//     [0, n); the graph is left unchanged.
//
// Deleting an absent edge is not an error. It changes the counter only
// under EdgeCountLegacy.
func (g *Digraph) DelEdge(source, dest int) error {
	if g == nil {
		return ErrNilGraph
	}
	if !g.inRange(source, dest) {
		return digraphErrorf(ctxDelEdge, source, dest, ErrOutOfRange)
	}

	off := g.offset(source, dest)
	switch g.policy {
	case EdgeCountLegacy:
		g.edges--
	default:
		if g.present[off] {
			g.edges--
		}
	}
	g.weights[off] = 0
	g.present[off] = false

	return nil
}

// IsEdge returns the weight of source→dest, or 0 when the indices are out of
// range or no edge is stored. A present zero-weight edge also yields 0; use
// HasEdge or Edge to tell the two apart.
func (g *Digraph) IsEdge(source, dest int) int64 {
	w, _ := g.Edge(source, dest)

	return w
}

// HasEdge reports whether an edge source→dest is present.
func (g *Digraph) HasEdge(source, dest int) bool {
	_, ok := g.Edge(source, dest)

	return ok
}

// Edge returns the weight of source→dest and whether the edge is present.
// Out-of-range indices yield (0, false).
func (g *Digraph) Edge(source, dest int) (int64, bool) {
	if g == nil || !g.inRange(source, dest) {
		return 0, false
	}
	off := g.offset(source, dest)

	return g.weights[off], g.present[off]
}

// Neighbors returns, in ascending order, every dest with a present edge
// source→dest.
//
// Errors:
//   - ErrNilGraph on a nil receiver.
//   - ErrOutOfRange when source is outside [0, n).
func (g *Digraph) Neighbors(source int) ([]int, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if source < 0 || source >= g.n {
		return nil, digraphErrorf(ctxNeighbors, source, 0, ErrOutOfRange)
	}

	var (
		base = source * g.n
		out  = make([]int, 0, defaultReserve)
		v    int
	)
	for v = 0; v < g.n; v++ {
		if g.present[base+v] {
			out = append(out, v)
		}
	}

	return out, nil
}

// defaultReserve is the initial capacity for neighbor slices.
const defaultReserve = 8

// Clone returns a deep copy sharing no storage with g.
func (g *Digraph) Clone() *Digraph {
	if g == nil {
		return nil
	}
	w := make([]int64, len(g.weights))
	copy(w, g.weights)
	p := make([]bool, len(g.present))
	copy(p, g.present)

	return &Digraph{
		n:       g.n,
		edges:   g.edges,
		weights: w,
		present: p,
		policy:  g.policy,
	}
}

// String renders one bracketed row per line; absent cells print as ".".
//
//	[., 10, 3]
//	[., ., .]
//	[., 4, .]
func (g *Digraph) String() string {
	if g == nil {
		return "<nil>"
	}
	var (
		b       strings.Builder
		i, j    int
		base    int
		present bool
	)
	for i = 0; i < g.n; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * g.n
		for j = 0; j < g.n; j++ {
			present = g.present[base+j]
			if present {
				b.WriteString(strconv.FormatInt(g.weights[base+j], 10))
			} else {
				b.WriteString(_fmtAbsent)
			}
			if j+1 < g.n {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
