// Package dijkstra provides single-source shortest paths over a dense,
// directed matrix.Digraph with non-negative edge weights.
//
// Overview:
//
//   - ShortestPath answers one source→dest query and returns a Result holding
//     the distance and the ordered vertex path.
//   - Tree runs the same computation once and keeps distances and parent links
//     for every vertex, so many destinations can be read from one run.
//   - Both are pure computations: nothing is printed. Rendering vertex names
//     is the job of package render.
//
// Unreachable vertices:
//
//   - Distance is Infinity (math.MaxInt64), Path is empty and Reachable is false.
//     Never use Distance without checking one of these first.
//
// Key features:
//
//   - Functional options: WithMaxDistance caps exploration; WithInfEdgeThreshold
//     turns heavy edges into walls.
//   - Zero-weight edges are real edges (the graph keeps a presence mask).
//   - Deterministic: ties are broken toward the lowest vertex index.
//
// Performance and complexity:
//
//   - Time:  O(V²), one selection scan and one matrix row per round.
//   - Space: O(V).
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph, ErrSourceOutOfRange, ErrDestOutOfRange, ErrNegativeWeight.
//   - Invalid option values panic with ErrBadMaxDistance / ErrBadInfThreshold text.
//
// Concurrency:
//
//   - The graph is read without locking. Do not mutate it while a query runs;
//     take a Digraph.Clone() snapshot if another goroutine may write.
package dijkstra
