package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/digraph/internal/cli"
	"github.com/katalvlaran/digraph/loader"
	"github.com/stretchr/testify/require"
)

const cityNetwork = `
vertices = ["Chicago", "Detroit", "Denver", "Omaha"]
unit     = "km"

edge "Chicago" "Detroit" { weight = 455 }
edge "Chicago" "Omaha"   { weight = 755 }
edge "Omaha"   "Denver"  { weight = 869 }
edge "Detroit" "Omaha"   { weight = 1200 }
`

// writeNetwork stores src in a temp dir and returns its path.
func writeNetwork(t *testing.T, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "net.hcl")
	require.NoError(t, os.WriteFile(path, []byte(src), 0o600))

	return path
}

func TestRun_Route(t *testing.T) {
	t.Parallel()

	path := writeNetwork(t, cityNetwork)
	var out, logs bytes.Buffer
	err := run(context.Background(), &out, &logs, []string{"-from", "Chicago", "-to", "Denver", "-log-level", "info", path})
	require.NoError(t, err)
	require.Equal(t,
		"Shortest Path from Chicago to Denver:\nPath: Chicago -> Omaha -> Denver\nDistance: 1624 km\n",
		out.String())
	require.Contains(t, logs.String(), "Route computed.")
}

func TestRun_UnitOverride(t *testing.T) {
	t.Parallel()

	path := writeNetwork(t, cityNetwork)
	var out bytes.Buffer
	err := run(context.Background(), &out, &bytes.Buffer{}, []string{"-from", "Chicago", "-to", "Detroit", "-unit", "miles", path})
	require.NoError(t, err)
	require.Contains(t, out.String(), "Distance: 455 miles\n")
}

func TestRun_Unreachable(t *testing.T) {
	t.Parallel()

	path := writeNetwork(t, cityNetwork)
	var out bytes.Buffer
	err := run(context.Background(), &out, &bytes.Buffer{}, []string{"-from", "Denver", "-to", "Chicago", path})
	require.NoError(t, err)
	require.Contains(t, out.String(), "Path: (none)\nDistance: unreachable\n")
}

func TestRun_UnknownVertex(t *testing.T) {
	t.Parallel()

	path := writeNetwork(t, cityNetwork)
	err := run(context.Background(), &bytes.Buffer{}, &bytes.Buffer{}, []string{"-from", "Boston", "-to", "Denver", path})
	require.ErrorIs(t, err, loader.ErrUnknownVertex)
}

func TestRun_BadFile(t *testing.T) {
	t.Parallel()

	path := writeNetwork(t, `vertices = [`)
	err := run(context.Background(), &bytes.Buffer{}, &bytes.Buffer{}, []string{"-from", "a", "-to", "b", path})
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to load network")
}

func TestRun_UsageError(t *testing.T) {
	t.Parallel()

	err := run(context.Background(), &bytes.Buffer{}, &bytes.Buffer{}, []string{"-log-format", "yaml", "-from", "a", "-to", "b", "x.hcl"})
	var exitErr *cli.ExitError
	require.True(t, errors.As(err, &exitErr))
	require.Equal(t, 2, exitErr.Code)
}
