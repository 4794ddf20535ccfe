package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"runtime"

	"github.com/docpeek/pdf-outline/internal/batch"
	"github.com/docpeek/pdf-outline/internal/config"
	"github.com/docpeek/pdf-outline/internal/mcp"
	"github.com/docpeek/pdf-outline/internal/outline"
	"github.com/docpeek/pdf-outline/internal/pdf"
)

var (
	version   = "dev"     // This will be set by build flags
	buildTime = "unknown" // This will be set by build flags
	gitCommit = "unknown" // This will be set by build flags
)

// setupLogging configures logging based on the run mode.
func setupLogging(cfg *config.Config) {
	if cfg.IsMCPMode() {
		// In MCP mode, log to stderr to avoid interfering with the stdio protocol.
		log.SetOutput(os.Stderr)
		if !cfg.IsDebug() {
			log.SetOutput(os.NewFile(0, os.DevNull))
		}
	} else if cfg.IsDebug() {
		log.SetFlags(log.LstdFlags | log.Lshortfile)
	}
}

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
		log.Fatalf("Failed to load configuration: %v", err)
	}

	setupLogging(cfg)

	// Set version if it was provided during build
	if version != "dev" {
		cfg.Version = version
	}

	if cfg.IsDebug() && cfg.IsBatchMode() {
		log.Printf("Starting with configuration: %s", cfg.String())
	}

	extractor := pdf.NewExtractor(cfg.MaxFileSize)
	engine := outline.NewEngine(extractor, outline.NewDetector())

	if cfg.IsMCPMode() {
		runMCPMode(cfg, engine, extractor)
		return
	}
	runBatchMode(cfg, engine)
}

// runBatchMode processes the input directory once and exits.
func runBatchMode(cfg *config.Config, engine *outline.Engine) {
	runner := batch.NewRunner(cfg, engine)

	summary, err := runner.Run()
	if err != nil {
		log.Fatalf("Batch run failed: %v", err)
	}

	log.Printf("Complete: %d attempted, %d succeeded, %d failed",
		summary.Attempted, summary.Succeeded, summary.Failed)
}

// runMCPMode serves outline tools over stdio until the transport closes.
func runMCPMode(cfg *config.Config, engine *outline.Engine, extractor *pdf.Extractor) {
	srv, err := mcp.NewServer(cfg, engine, extractor)
	if err != nil {
		log.Fatalf("Failed to create MCP server: %v", err)
	}

	if err := srv.Run(context.Background()); err != nil {
		if os.Getenv("DEBUG") != "" {
			log.Printf("Server error: %v", err)
		}
		os.Exit(1)
	}
}

// printVersion prints version information.
func printVersion() {
	fmt.Printf("pdf-outline\n")
	fmt.Printf("Version: %s\n", version)
	fmt.Printf("Build Time: %s\n", buildTime)
	fmt.Printf("Git Commit: %s\n", gitCommit)
	fmt.Printf("Built with: %s\n", runtime.Version())
}
