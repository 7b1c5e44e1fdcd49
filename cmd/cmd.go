// Package cmd provides CLI commands for the tourism assistant service.
//
// Commands:
//   - serve: HTTP API server
//   - validate: check the tourism dataset file
//   - version: show version information
//
// Signal handling and graceful shutdown are implemented
// for all commands via context cancellation.
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/FabioCubas101/tfm-ai-api/internal/log"
)

// Execute is the main entry point for the tfm-ai-api CLI application.
func Execute() error {
	// Initialize logger once at entry point
	level := slog.LevelInfo
	if os.Getenv("DEBUG") != "" {
		level = slog.LevelDebug
	}
	slog.SetDefault(log.New(log.Config{Level: level, JSON: true}))

	if len(os.Args) < 2 {
		runHelp()
		return nil
	}

	switch os.Args[1] {
	case "serve":
		return runServe()
	case "validate":
		return runValidate()
	case "version", "--version", "-v":
		runVersion()
		return nil
	case "help", "--help", "-h":
		runHelp()
		return nil
	default:
		return fmt.Errorf("unknown command: %s", os.Args[1])
	}
}

// runHelp displays the help message.
func runHelp() {
	fmt.Println("tfm-ai-api - Canary Islands tourism assistant API")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  tfm-ai-api serve [addr]    Start HTTP API server (default: 127.0.0.1:8000)")
	fmt.Println("  tfm-ai-api validate [file] Validate the tourism dataset file")
	fmt.Println("  tfm-ai-api --version       Show version information")
	fmt.Println("  tfm-ai-api --help          Show this help")
	fmt.Println()
	fmt.Println("Environment Variables:")
	fmt.Println("  GEMINI_API_KEY     Required: Gemini API key")
	fmt.Println("  MASTER_API_KEY     Required: key clients present in X-API-Key")
	fmt.Println("  DEBUG              Optional: Enable debug logging")
}
