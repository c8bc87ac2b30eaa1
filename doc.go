// Package digraph is a small, dense directed-graph toolkit built around one
// job: the shortest route between two vertices of a fixed-size weighted graph.
//
// What is inside?
//
//	matrix/    — Digraph: n×n adjacency matrix with a presence mask, AddEdge/DelEdge/IsEdge
//	dijkstra/  — O(V²) Dijkstra over a Digraph, returning distance + ordered path
//	render/    — vertex naming and the human-readable route report
//	loader/    — HCL network files → Digraph + names
//	cmd/digraph — command-line route query
//
// The engine (matrix + dijkstra) works on dense integer indices and never
// prints. Names, files and text live in the collaborator packages.
//
// Quick ASCII example:
//
//	    A ──10──▶ B ──2──▶ D ──7──▶ E
//	    │         ▲
//	    3         4
//	    ▼         │
//	    C ────────┘
//
// Shortest A→E is A→C→B→D→E with distance 16.
package digraph
