package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vk/topoconf/internal/app"
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

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("topoconf", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
topoconf - Resolves cluster blueprint configuration against a topology.

Usage:
  topoconf --mode create|export --blueprint PATH --topology PATH [options]

Modes:
  create
    Rewrite a blueprint's host placeholders into the concrete hosts of the
    topology, producing deployable configuration.
  export
    Rewrite deployed configuration back into portable, host-group relative
    form.

Options:
`)
		flagSet.PrintDefaults()
	}

	modeFlag := flagSet.String("mode", "", "Resolution direction. Options: 'create' or 'export'.")
	blueprintFlag := flagSet.String("blueprint", "", "Path to the blueprint .hcl file or directory.")
	topologyFlag := flagSet.String("topology", "", "Path to the topology .hcl file or directory.")
	outputFlag := flagSet.String("output", "", "Path for the resolved JSON document. Defaults to stdout.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	if *modeFlag == "" && *blueprintFlag == "" && *topologyFlag == "" {
		slog.Debug("No arguments provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
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
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		Mode:          strings.ToLower(*modeFlag),
		BlueprintPath: *blueprintFlag,
		TopologyPath:  *topologyFlag,
		OutputPath:    *outputFlag,
		LogFormat:     logFormat,
		LogLevel:      logLevel,
	})

	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "mode", config.Mode)
	return config, false, nil
}
