package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	tea "charm.land/bubbletea/v2"

	"github.com/orbinite/gids/internal/client"
	"github.com/orbinite/gids/internal/tui"
)

const defaultServerURL = "http://127.0.0.1:8080"

// runChat starts the interactive terminal client against a running server.
func runChat() error {
	baseURL := defaultServerURL
	if len(os.Args) > 2 && !strings.HasPrefix(os.Args[2], "-") {
		baseURL = os.Args[2]
	}
	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		return fmt.Errorf("invalid server URL %q: must start with http:// or https://", baseURL)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	conversation := client.NewConversation(client.New(baseURL))

	model, err := tui.New(ctx, conversation)
	if err != nil {
		return fmt.Errorf("creating chat interface: %w", err)
	}

	program := tea.NewProgram(model, tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("running chat interface: %w", err)
	}
	return nil
}
