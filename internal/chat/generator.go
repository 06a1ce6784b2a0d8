package chat

import "context"

// Generator produces a model reply for a conversation.
//
// Implementations receive the fully assembled system prompt and the
// validated history, newest user message last.
type Generator interface {
	Generate(ctx context.Context, systemPrompt string, history []Message) (string, error)
}
