// Package render turns dijkstra results into human-readable text.
//
// The engine works on dense integer indices only. A Namer maps an index to a
// display name at render time; names are optional and need not be unique.
// An index without a name renders as "#<index>".
package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/digraph/dijkstra"
)

// Rendering literals, matching the console format of the route report.
const (
	pathSep       = " -> "
	noPath        = "(none)"
	unreachable   = "unreachable"
	DefaultUnit   = "miles"
	unnamedPrefix = "#"
)

// Namer resolves a vertex index to a display name.
type Namer interface {
	Name(index int) (string, bool)
}

// Names is a Namer backed by a slice: Names[i] names vertex i.
// Empty strings count as missing.
type Names []string

// Name implements Namer.
func (n Names) Name(index int) (string, bool) {
	if index < 0 || index >= len(n) || n[index] == "" {
		return "", false
	}

	return n[index], true
}

// NamerFunc adapts a plain function to Namer.
type NamerFunc func(index int) (string, bool)

// Name implements Namer.
func (f NamerFunc) Name(index int) (string, bool) { return f(index) }

// Label returns the display name for index, falling back to "#<index>" when
// n is nil or has no name for it.
func Label(n Namer, index int) string {
	if n != nil {
		if s, ok := n.Name(index); ok {
			return s
		}
	}

	return unnamedPrefix + strconv.Itoa(index)
}

// FormatPath joins the labels of path with " -> ". An empty path renders as "(none)".
func FormatPath(n Namer, path []int) string {
	if len(path) == 0 {
		return noPath
	}
	parts := make([]string, len(path))
	for i, v := range path {
		parts[i] = Label(n, v)
	}

	return strings.Join(parts, pathSep)
}

// Options configures WritePath.
type Options struct {
	Unit string // distance unit word; empty prints the bare number
}

// Option represents a functional option for WritePath.
type Option func(*Options)

// WithUnit sets the unit printed after the distance. An empty unit prints the
// bare number.
func WithUnit(unit string) Option {
	return func(o *Options) {
		o.Unit = unit
	}
}

// WritePath writes a three-line route report:
//
//	Shortest Path from A to E:
//	Path: A -> C -> B -> D -> E
//	Distance: 16 miles
//
// An unreachable result prints "Path: (none)" and "Distance: unreachable".
func WritePath(w io.Writer, n Namer, res dijkstra.Result, opts ...Option) error {
	cfg := Options{Unit: DefaultUnit}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	distance := unreachable
	if res.Reachable {
		distance = strconv.FormatInt(res.Distance, 10)
		if cfg.Unit != "" {
			distance += " " + cfg.Unit
		}
	}

	_, err := fmt.Fprintf(w, "Shortest Path from %s to %s:\nPath: %s\nDistance: %s\n",
		Label(n, res.Source), Label(n, res.Dest), FormatPath(n, res.Path), distance)
	if err != nil {
		return fmt.Errorf("render: write path: %w", err)
	}

	return nil
}
