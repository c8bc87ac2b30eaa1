// Package dijkstra implements Dijkstra's shortest-path algorithm on a dense
// matrix.Digraph.
//
// The graph is an n×n adjacency matrix, so the classic O(V²) array form is
// used instead of a heap: each round scans every vertex to select the
// closest unvisited one, then relaxes its row of the matrix.
//
// Complexity:
//
//   - Time:  O(V²)
//   - Space: O(V) for distance, parent and visited arrays.
//
// Notes on implementation choices:
//
//   - We perform an upfront scan of all cells (O(V²)) to detect negative weights and fail fast.
//   - Selection keeps the first minimum in index order: among equal tentative
//     distances the lowest index is visited first.
//   - Relaxation uses a strict "<", so an equal-cost alternative never replaces a parent.
//   - Zero-weight edges are real edges and are traversed.
//   - We treat any edge with weight ≥ InfEdgeThreshold as an impassable "wall".
package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/digraph/matrix"
)

// ShortestPath computes the shortest path from source to dest in g.
//
// Returns:
//
//   - Result with Distance and Path when dest is reachable.
//   - Result with Distance == Infinity, empty Path and Reachable == false otherwise.
//   - err if inputs are invalid or a negative weight is present.
//
// source == dest yields distance 0 and the single-element path [source].
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. source must lie in [0, n) (ErrSourceOutOfRange).
//  3. dest must lie in [0, n) (ErrDestOutOfRange).
//  4. No edge in g can have negative weight (ErrNegativeWeight).
func ShortestPath(g *matrix.Digraph, source, dest int, opts ...Option) (Result, error) {
	if g == nil {
		return Result{}, ErrNilGraph
	}
	n := g.VertexCount()
	if source < 0 || source >= n {
		return Result{}, fmt.Errorf("%w: %d", ErrSourceOutOfRange, source)
	}
	if dest < 0 || dest >= n {
		return Result{}, fmt.Errorf("%w: %d", ErrDestOutOfRange, dest)
	}

	t, err := Tree(g, source, opts...)
	if err != nil {
		return Result{}, err
	}

	return t.Result(dest), nil
}

// Tree runs Dijkstra from source and returns the full shortest-path tree:
// distances and parent links for every vertex of g.
func Tree(g *matrix.Digraph, source int, opts ...Option) (*PathTree, error) {
	// 1) Build Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	// 2) Validate inputs
	if g == nil {
		return nil, ErrNilGraph
	}
	n := g.VertexCount()
	if source < 0 || source >= n {
		return nil, fmt.Errorf("%w: %d", ErrSourceOutOfRange, source)
	}

	// 3) Pre-scan all cells to detect negative weights.
	var (
		u, v int
		w    int64
		ok   bool
	)
	for u = 0; u < n; u++ {
		for v = 0; v < n; v++ {
			if w, ok = g.Edge(u, v); ok && w < 0 {
				return nil, fmt.Errorf("%w: edge %d→%d weight=%d", ErrNegativeWeight, u, v, w)
			}
		}
	}

	// 4) Run
	r := newRunner(g, source, cfg)
	r.process()

	return &PathTree{
		source: source,
		dist:   r.dist,
		parent: r.parent,
	}, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *matrix.Digraph // The input graph; read-only within Dijkstra.
	options Options         // Configuration options.
	dist    []int64         // dist[v] = current best distance from source.
	parent  []int           // parent[v] = predecessor on the best-known path, or noParent.
	visited []bool          // visited[v] = distance of v is final.
}

// newRunner allocates the per-vertex arrays: dist=Infinity, parent=none,
// visited=false, and dist[source]=0.
func newRunner(g *matrix.Digraph, source int, cfg Options) *runner {
	n := g.VertexCount()
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make([]int64, n),
		parent:  make([]int, n),
		visited: make([]bool, n),
	}
	for v := 0; v < n; v++ {
		r.dist[v] = Infinity
		r.parent[v] = noParent
	}
	r.dist[source] = 0

	return r
}

// process is the main loop: at most n-1 rounds of select-then-relax.
// It stops early once no unvisited vertex has a finite distance.
func (r *runner) process() {
	n := r.g.VertexCount()
	var round, u int
	for round = 0; round < n-1; round++ {
		u = r.selectMin()
		if u == noParent {
			break // remaining vertices are unreachable
		}
		r.visited[u] = true
		r.relax(u)
	}
}

// selectMin returns the unvisited vertex with the smallest finite tentative
// distance, or noParent if there is none. Ties go to the lowest index: the
// scan is ascending and a later equal distance does not replace the pick.
func (r *runner) selectMin() int {
	var (
		best    = noParent
		minDist = Infinity
		v       int
	)
	for v = 0; v < len(r.dist); v++ {
		if r.visited[v] || r.dist[v] == Infinity {
			continue
		}
		if best == noParent || r.dist[v] < minDist {
			best, minDist = v, r.dist[v]
		}
	}

	return best
}

// relax walks row u of the matrix and improves every unvisited neighbor v
// for which dist[u]+w(u,v) is strictly smaller than dist[v].
func (r *runner) relax(u int) {
	var (
		v       int
		w       int64
		ok      bool
		newDist int64
		du      = r.dist[u]
	)
	for v = 0; v < len(r.dist); v++ {
		if r.visited[v] {
			continue
		}
		if w, ok = r.g.Edge(u, v); !ok {
			continue
		}

		// Skip any edge marked as impassable by InfEdgeThreshold.
		if w >= r.options.InfEdgeThreshold {
			continue
		}

		// Saturate instead of overflowing: a sum past Infinity is no path.
		if w > Infinity-du {
			continue
		}
		newDist = du + w

		if newDist > r.options.MaxDistance {
			continue
		}
		if newDist >= r.dist[v] {
			continue
		}

		r.dist[v] = newDist
		r.parent[v] = u
	}
}

// PathTree is the shortest-path tree rooted at one source vertex.
type PathTree struct {
	source int
	dist   []int64
	parent []int
}

// Source returns the root vertex of the tree.
func (t *PathTree) Source() int { return t.source }

// Distance returns the shortest distance from the source to dest, or
// Infinity if dest is unreachable or out of range.
func (t *PathTree) Distance(dest int) int64 {
	if dest < 0 || dest >= len(t.dist) {
		return Infinity
	}

	return t.dist[dest]
}

// Reachable reports whether dest has a finite distance from the source.
func (t *PathTree) Reachable(dest int) bool {
	return t.Distance(dest) != Infinity
}

// PathTo reconstructs the source→dest path by following parent links back
// from dest and reversing them. It returns nil when dest is unreachable or
// out of range.
func (t *PathTree) PathTo(dest int) []int {
	if !t.Reachable(dest) {
		return nil
	}

	var path []int
	for cur := dest; cur != noParent; cur = t.parent[cur] {
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// Result packages the distance and path to dest.
func (t *PathTree) Result(dest int) Result {
	return Result{
		Source:    t.source,
		Dest:      dest,
		Distance:  t.Distance(dest),
		Path:      t.PathTo(dest),
		Reachable: t.Reachable(dest),
	}
}
