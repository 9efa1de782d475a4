// Command edict2js converts the EDICT2 dictionary in the working directory
// (edict2) into edict2.js, the sorted data file loaded by edict2-browser.
// Entries are ordered by reading, falling back to the headword.
//
// Flags:
//
//	-min  export only the entries tagged (P)
//
// Logging and buffering are configured through CONFIG_PATH (YAML) and
// LOG_LEVEL, LOG_FORMAT, EDICT_SUBSET, EDICT_BUFFER_SIZE.
//
// Exit codes: 0 = success, 1 = error, 2 = bad usage.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/peetscott/edict2-browser/internal/app"
	"github.com/peetscott/edict2-browser/internal/app/exporter"
	"github.com/peetscott/edict2-browser/internal/config"
	"github.com/peetscott/edict2-browser/internal/domain"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("edict2js", flag.ContinueOnError)
	fs.SetOutput(stderr)
	minFlag := fs.Bool("min", false, "export only entries tagged (P)")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "load config: %v\n", err)
		return 1
	}

	logger := app.NewLogger(stderr, cfg.Log)

	// CLI flag overrides config.
	if *minFlag {
		cfg.Export.Subset = true
	}

	fmt.Fprintf(stdout, "Setup %s: Please wait ...\n", app.Name)
	logger.Info("starting edict2js", slog.String("version", app.BuildVersion()))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	result, err := exporter.NewPipeline(logger, cfg.Export).Run(ctx)
	if err != nil {
		logger.Error("export failed", slog.String("error", err.Error()))
		if errors.Is(err, domain.ErrInputNotFound) {
			fmt.Fprintln(stdout, "Error: edict2 file not found.")
		} else {
			fmt.Fprintln(stdout, err)
		}
		return 1
	}

	logger.Info("export completed",
		slog.String("run_id", result.RunID.String()),
		slog.Int("indexed", result.Indexed),
		slog.Int("written", result.Written),
		slog.Duration("duration", result.Duration),
	)
	return 0
}
