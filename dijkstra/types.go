// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path algorithm on a dense matrix.Digraph.
//
// Options:
//
//	– MaxDistance:      optional cap on distances to explore; vertices beyond this stay unreachable.
//	– InfEdgeThreshold: edges with weight >= this threshold are treated as impassable.
//
// Errors (sentinel):
//
//	– ErrNilGraph          if the provided graph pointer is nil.
//	– ErrSourceOutOfRange  if source is outside [0, VertexCount()).
//	– ErrDestOutOfRange    if dest is outside [0, VertexCount()).
//	– ErrNegativeWeight    if a negative edge weight is present in the graph.
//	– ErrBadMaxDistance    if MaxDistance < 0.
//	– ErrBadInfThreshold   if InfEdgeThreshold <= 0.
package dijkstra

import (
	"errors"
	"math"
)

// Infinity is the distance reported for a vertex that cannot be reached.
// Callers must compare against it (or check Result.Reachable) before using a distance.
const Infinity int64 = math.MaxInt64

// noParent marks a vertex without a predecessor on the shortest-path tree.
const noParent = -1

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil *matrix.Digraph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrSourceOutOfRange indicates that the source index is not a vertex of the graph.
	ErrSourceOutOfRange = errors.New("dijkstra: source vertex out of range")

	// ErrDestOutOfRange indicates that the dest index is not a vertex of the graph.
	ErrDestOutOfRange = errors.New("dijkstra: dest vertex out of range")

	// ErrNegativeWeight indicates that a negative edge weight was detected in the graph.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative,
	// which would treat every edge as impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Options configures the behavior of the Dijkstra algorithm.
//
// MaxDistance      – relaxations producing a distance above this are skipped.
//
//	Must be ≥ 0. Default is Infinity (no cap).
//
// InfEdgeThreshold – edges with weight ≥ this threshold are impassable.
//
//	Must be > 0. Default is Infinity (no obstacles).
type Options struct {
	MaxDistance      int64 // Maximum distance to explore
	InfEdgeThreshold int64 // Weight threshold at or above which edges are non-traversable
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// WithMaxDistance sets a maximum distance threshold.
// Vertices whose shortest distance would exceed this value are reported unreachable.
// Panics with ErrBadMaxDistance on a negative value.
func WithMaxDistance(max int64) Option {
	if max < 0 {
		panic(ErrBadMaxDistance.Error())
	}

	return func(o *Options) {
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold defines a weight at or above which edges are skipped
// entirely. Panics with ErrBadInfThreshold on zero or a negative value.
func WithInfEdgeThreshold(threshold int64) Option {
	if threshold <= 0 {
		panic(ErrBadInfThreshold.Error())
	}

	return func(o *Options) {
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns Options with no distance cap and no impassable edges.
func DefaultOptions() Options {
	return Options{
		MaxDistance:      Infinity,
		InfEdgeThreshold: Infinity,
	}
}

// Result is the outcome of a single source→dest query.
//
// Distance is Infinity and Path is empty when dest is unreachable.
// Otherwise Path starts at Source, ends at Dest, and the sum of edge weights
// along it equals Distance.
type Result struct {
	Source    int
	Dest      int
	Distance  int64
	Path      []int
	Reachable bool
}
