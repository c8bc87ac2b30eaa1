// Package loader reads a road-network description written in HCL and turns it
// into a matrix.Digraph plus the vertex names needed for rendering.
//
// File shape:
//
//	vertices = ["Chicago", "Detroit", "Denver"]
//	unit     = "miles"   # optional
//
//	edge "Chicago" "Detroit" { weight = 283 }
//
// Vertex i is the i-th entry of vertices. Edges are directed, from the first
// label to the second. The loader only reads; there is no write-back format.
package loader

import (
	"context"
	"errors"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/katalvlaran/digraph/internal/ctxlog"
	"github.com/katalvlaran/digraph/matrix"
	"github.com/katalvlaran/digraph/render"
)

// Sentinel errors returned while building a Network.
var (
	ErrEmptyVertexName = errors.New("loader: vertex name is empty")
	ErrDuplicateVertex = errors.New("loader: duplicate vertex name")
	ErrUnknownVertex   = errors.New("loader: unknown vertex")
	ErrDuplicateEdge   = errors.New("loader: duplicate edge")
	ErrNegativeWeight  = errors.New("loader: negative edge weight")
)

// hclNetworkFile represents the top-level structure of a network file for decoding.
type hclNetworkFile struct {
	Vertices []string   `hcl:"vertices"`
	Unit     string     `hcl:"unit,optional"`
	Edges    []*hclEdge `hcl:"edge,block"`
}

// hclEdge is one `edge "from" "to" { weight = N }` block.
type hclEdge struct {
	From   string `hcl:"from,label"`
	To     string `hcl:"to,label"`
	Weight int64  `hcl:"weight"`
}

// Network is a loaded graph with its vertex names.
type Network struct {
	Graph *matrix.Digraph
	Names render.Names
	Unit  string // empty when the file does not set one

	index map[string]int
}

// Index returns the vertex index for name.
func (n *Network) Index(name string) (int, bool) {
	i, ok := n.index[name]

	return i, ok
}

// Resolve is Index with an error: ErrUnknownVertex for a missing name.
func (n *Network) Resolve(name string) (int, error) {
	i, ok := n.index[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownVertex, name)
	}

	return i, nil
}

// LoadFile parses and decodes the HCL network at path.
func LoadFile(ctx context.Context, path string, opts ...matrix.Option) (*Network, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading network file.", "path", path)

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", path, diags)
	}

	return decode(ctx, file, path, opts...)
}

// LoadBytes parses and decodes src; filename is used in diagnostics only.
func LoadBytes(ctx context.Context, src []byte, filename string, opts ...matrix.Option) (*Network, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", filename, diags)
	}

	return decode(ctx, file, filename, opts...)
}

// decode maps the parsed body onto a Network.
func decode(ctx context.Context, file *hcl.File, filename string, opts ...matrix.Option) (*Network, error) {
	logger := ctxlog.FromContext(ctx)

	var parsed hclNetworkFile
	if diags := gohcl.DecodeBody(file.Body, nil, &parsed); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", filename, diags)
	}

	net, err := build(parsed, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	logger.Debug("Network loaded.",
		"file", filename,
		"vertices", net.Graph.VertexCount(),
		"edges", net.Graph.EdgeCount(),
	)

	return net, nil
}

// build validates names and edges, then fills the matrix.
func build(parsed hclNetworkFile, opts ...matrix.Option) (*Network, error) {
	index := make(map[string]int, len(parsed.Vertices))
	for i, name := range parsed.Vertices {
		if name == "" {
			return nil, fmt.Errorf("%w: vertices[%d]", ErrEmptyVertexName, i)
		}
		if prev, dup := index[name]; dup {
			return nil, fmt.Errorf("%w: %q at vertices[%d] and vertices[%d]", ErrDuplicateVertex, name, prev, i)
		}
		index[name] = i
	}

	g, err := matrix.NewDigraph(len(parsed.Vertices), opts...)
	if err != nil {
		return nil, err
	}

	var u, v int
	var ok bool
	for _, e := range parsed.Edges {
		if u, ok = index[e.From]; !ok {
			return nil, fmt.Errorf("%w: edge %q -> %q: %q", ErrUnknownVertex, e.From, e.To, e.From)
		}
		if v, ok = index[e.To]; !ok {
			return nil, fmt.Errorf("%w: edge %q -> %q: %q", ErrUnknownVertex, e.From, e.To, e.To)
		}
		if e.Weight < 0 {
			return nil, fmt.Errorf("%w: edge %q -> %q weight=%d", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
		if g.HasEdge(u, v) {
			return nil, fmt.Errorf("%w: %q -> %q", ErrDuplicateEdge, e.From, e.To)
		}
		if err = g.AddEdge(u, v, e.Weight); err != nil {
			return nil, err
		}
	}

	names := make(render.Names, len(parsed.Vertices))
	copy(names, parsed.Vertices)

	return &Network{
		Graph: g,
		Names: names,
		Unit:  parsed.Unit,
		index: index,
	}, nil
}
