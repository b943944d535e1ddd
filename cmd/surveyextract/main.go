package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"

	"github.com/hydronode/surveyextract/internal/batch"
	"github.com/hydronode/surveyextract/internal/config"
)

var (
	version   = "dev"     // This will be set by build flags
	buildTime = "unknown" // This will be set by build flags
	gitCommit = "unknown" // This will be set by build flags
)

func main() {
	// Check for version flag before parsing other flags
	for _, arg := range os.Args[1:] {
		if arg == "-version" || arg == "--version" || arg == "-v" {
			printVersion()
			return
		}
	}

	cfg, err := config.LoadFromFlags()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger := setupLogging(cfg)

	// Set version if it was provided during build
	if version != "dev" {
		cfg.Version = version
	}

	if cfg.IsDebug() {
		logger.Debug("starting", "config", cfg.String())
	}

	runner := batch.NewRunner(cfg.MaxFileSize, logger)
	result, err := runner.Run(cfg.InputDir, cfg.OutputDir)
	if err != nil {
		logger.Error("batch run failed", "error", err)
		os.Exit(1)
	}

	printSummary(os.Stdout, result)
	if !result.AllSucceeded() {
		os.Exit(1)
	}
}

// setupLogging builds the process logger honoring the configured level.
func setupLogging(cfg *config.Config) *slog.Logger {
	var level slog.Level
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return logger
}

// printSummary writes the end-of-batch report: either an all-succeeded
// line or the enumerated failed inputs.
func printSummary(w io.Writer, result *batch.Result) {
	if result.AllSucceeded() {
		fmt.Fprintf(w, "All %d files processed successfully\n", len(result.Processed))
		return
	}

	fmt.Fprintf(w, "%d of %d files failed:\n",
		len(result.Failures), len(result.Processed)+len(result.Failures))
	for _, failure := range result.Failures {
		fmt.Fprintf(w, "  %s: %v\n", failure.Path, failure.Err)
	}
}

// printVersion prints version information
func printVersion() {
	fmt.Printf("Survey Extract\n")
	fmt.Printf("Version: %s\n", version)
	fmt.Printf("Build Time: %s\n", buildTime)
	fmt.Printf("Git Commit: %s\n", gitCommit)
	fmt.Printf("Built with: %s\n", runtime.Version())
}
