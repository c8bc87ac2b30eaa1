package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/katalvlaran/digraph/dijkstra"
	"github.com/katalvlaran/digraph/internal/cli"
	"github.com/katalvlaran/digraph/internal/ctxlog"
	"github.com/katalvlaran/digraph/loader"
	"github.com/katalvlaran/digraph/matrix"
	"github.com/katalvlaran/digraph/render"
)

// main is the entrypoint for the digraph route tool.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	// The real main function handles errors and exit codes.
	if err := run(context.Background(), os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		if exitErr, ok := err.(*cli.ExitError); ok {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run loads the network, answers one route query and prints the report to outW.
// Logs go to logW.
func run(ctx context.Context, outW, logW io.Writer, args []string) error {
	config, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	logger, err := ctxlog.New(config.LogLevel, config.LogFormat, logW)
	if err != nil {
		return &cli.ExitError{Code: 2, Message: err.Error()}
	}
	ctx = ctxlog.WithLogger(ctx, logger)
	logger.Debug("Logger configured successfully.")

	var graphOpts []matrix.Option
	if config.LegacyEdgeCount {
		graphOpts = append(graphOpts, matrix.WithLegacyEdgeCount())
	}

	net, err := loader.LoadFile(ctx, config.GraphPath, graphOpts...)
	if err != nil {
		return fmt.Errorf("failed to load network: %w", err)
	}

	source, err := net.Resolve(config.From)
	if err != nil {
		return err
	}
	dest, err := net.Resolve(config.To)
	if err != nil {
		return err
	}

	res, err := dijkstra.ShortestPath(net.Graph, source, dest)
	if err != nil {
		return fmt.Errorf("route %s -> %s: %w", config.From, config.To, err)
	}
	logger.Info("Route computed.",
		"from", config.From,
		"to", config.To,
		"reachable", res.Reachable,
		"hops", max(len(res.Path)-1, 0),
	)

	unit := render.DefaultUnit
	switch {
	case config.Unit != "":
		unit = config.Unit
	case net.Unit != "":
		unit = net.Unit
	}

	return render.WritePath(outW, net.Names, res, render.WithUnit(unit))
}
