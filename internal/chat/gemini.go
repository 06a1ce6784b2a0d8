package chat

import (
	"context"
	"fmt"
	"log/slog"

	"google.golang.org/genai"
)

// Gemini is a Generator backed by the Gemini API.
type Gemini struct {
	client *genai.Client
	model  string
	logger *slog.Logger
}

// NewGemini creates a Gemini-backed generator.
func NewGemini(ctx context.Context, apiKey, model string, logger *slog.Logger) (*Gemini, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("%w: missing API key", ErrProvider)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("creating genai client: %w", err)
	}

	return &Gemini{
		client: client,
		model:  model,
		logger: logger,
	}, nil
}

// Generate implements Generator.
//
// All turns before the last seed the chat session; the last turn's content
// is sent for completion. The system prompt rides along as the session's
// system instruction.
func (g *Gemini) Generate(ctx context.Context, systemPrompt string, history []Message) (string, error) {
	if err := ValidateHistory(history); err != nil {
		return "", err
	}

	prior, last := splitHistory(history)

	config := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemPrompt, genai.RoleUser),
	}

	session, err := g.client.Chats.Create(ctx, g.model, config, prior)
	if err != nil {
		return "", fmt.Errorf("%w: creating chat session: %w", ErrProvider, err)
	}

	g.logger.Debug("dispatching chat turn",
		"model", g.model,
		"history_turns", len(prior),
	)

	resp, err := session.SendMessage(ctx, genai.Part{Text: last.Content})
	if err != nil {
		return "", fmt.Errorf("%w: sending message: %w", ErrProvider, err)
	}

	text := resp.Text()
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}

// splitHistory separates the seed turns from the message to send. The
// history is assumed non-empty; the final turn's content becomes the new
// message regardless of its role.
func splitHistory(history []Message) ([]*genai.Content, Message) {
	last := history[len(history)-1]

	prior := make([]*genai.Content, 0, len(history)-1)
	for _, msg := range history[:len(history)-1] {
		role := genai.Role(genai.RoleUser)
		if msg.Role == RoleModel {
			role = genai.RoleModel
		}
		prior = append(prior, genai.NewContentFromText(msg.Content, role))
	}
	return prior, last
}
