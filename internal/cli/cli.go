// Package cli is responsible for parsing command-line arguments, validating
// user input, and handling process-level concerns like exit codes. It
// translates CLI flags into the route query configuration.
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Config holds everything a route query needs.
type Config struct {
	GraphPath string // hcl network file
	From      string // source vertex name
	To        string // dest vertex name
	Unit      string // overrides the file's unit when set

	LegacyEdgeCount bool

	LogFormat string
	LogLevel  string
}

// NewConfig validates cfg and returns a copy.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.GraphPath == "" {
		return nil, errors.New("GraphPath is a required configuration field and cannot be empty")
	}
	if cfg.From == "" || cfg.To == "" {
		return nil, errors.New("both -from and -to must be set")
	}

	return &cfg, nil
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("digraph", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
digraph - shortest routes over a directed, weighted road network.

Usage:
  digraph [options] -from NAME -to NAME GRAPH_PATH

Arguments:
  GRAPH_PATH
    Path to an .hcl network file.

Options:
`)
		flagSet.PrintDefaults()
	}

	graphFlag := flagSet.String("graph", "", "Path to the network file.")
	fromFlag := flagSet.String("from", "", "Name of the source vertex.")
	toFlag := flagSet.String("to", "", "Name of the destination vertex.")
	unitFlag := flagSet.String("unit", "", "Distance unit to print (defaults to the file's unit, then 'miles').")
	legacyFlag := flagSet.Bool("legacy-edge-count", false, "Count every add/delete call instead of real edge transitions.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	path := *graphFlag
	if path == "" && flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}
	slog.Debug("Graph path determined.", "path", path)

	if path == "" {
		// A bare invocation is a request for help; anything else missing a path is a usage error.
		if len(args) == 0 {
			flagSet.Usage()
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: "missing GRAPH_PATH: pass -graph or a positional argument"}
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	config, err := NewConfig(Config{
		GraphPath:       path,
		From:            *fromFlag,
		To:              *toFlag,
		Unit:            *unitFlag,
		LegacyEdgeCount: *legacyFlag,
		LogFormat:       logFormat,
		LogLevel:        logLevel,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
