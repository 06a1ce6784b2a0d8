// Package cmd provides the CLI commands for gids.
//
// Commands:
//   - serve: HTTP API server (chat + admin endpoints)
//   - chat: interactive terminal chat client against a running server
//
// Signal handling and graceful shutdown are implemented for all commands
// via context cancellation.
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/orbinite/gids/internal/log"
)

// Version is injected at build time via ldflags.
var Version = "development"

// Execute is the main entry point for the gids CLI application.
func Execute() error {
	if len(os.Args) < 2 {
		runHelp()
		return nil
	}

	logger := log.New(log.Config{
		Level: logLevel(),
		JSON:  os.Getenv("GIDS_LOG_JSON") != "",
	})

	switch os.Args[1] {
	case "serve":
		return runServe(logger)
	case "chat":
		return runChat()
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

func logLevel() slog.Level {
	if os.Getenv("DEBUG") != "" {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}

// runHelp displays the help message.
func runHelp() {
	fmt.Println("gids - ORBINITE knowledge assistant")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  gids serve [addr]  Start the HTTP API server (default: 127.0.0.1:8080)")
	fmt.Println("  gids chat [url]    Start the terminal chat client (default: http://127.0.0.1:8080)")
	fmt.Println("  gids --version     Show version information")
	fmt.Println("  gids --help        Show this help")
	fmt.Println()
	fmt.Println("Chat commands (in interactive mode):")
	fmt.Println("  /reset             Start a new conversation")
	fmt.Println("  /exit, /quit       Exit")
	fmt.Println()
	fmt.Println("Shortcuts:")
	fmt.Println("  Ctrl+D             Exit")
	fmt.Println("  Ctrl+C             Cancel current input")
	fmt.Println()
	fmt.Println("Environment variables:")
	fmt.Println("  GEMINI_API_KEY     Required for serve: Gemini API key")
	fmt.Println("  ADMIN_PASSWORD     Admin shared secret for the config endpoints")
	fmt.Println("  GIDS_STORE_DRIVER  Config store driver: memory (default), redis, postgres")
	fmt.Println("  DEBUG              Enable debug logging")
}
