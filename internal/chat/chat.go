// Package chat turns a client-held conversation history into a grounded
// model response.
//
// The server keeps no conversation state: every request carries the full
// ordered history, the newest user message last. The package validates the
// history, maps it onto the provider's turn format, and returns the model's
// reply as plain text.
package chat

import "errors"

// Conversation roles as they appear on the wire.
const (
	RoleUser  = "user"
	RoleModel = "model"
)

// Message is one turn of a conversation.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Common errors for chat operations.
var (
	// ErrEmptyHistory indicates a request without any messages.
	ErrEmptyHistory = errors.New("conversation history is empty")

	// ErrInvalidRole indicates a message role outside user/model.
	ErrInvalidRole = errors.New("invalid message role")

	// ErrProvider wraps failures from the model provider.
	ErrProvider = errors.New("model provider error")

	// ErrEmptyResponse indicates the provider returned no usable text.
	ErrEmptyResponse = errors.New("model returned an empty response")
)

// ValidateHistory checks that history is non-empty and uses only known
// roles. Turn ordering is not validated: the final turn is forwarded as
// the new message whatever its role, and role alternation is the client's
// concern.
func ValidateHistory(history []Message) error {
	if len(history) == 0 {
		return ErrEmptyHistory
	}
	for _, msg := range history {
		if msg.Role != RoleUser && msg.Role != RoleModel {
			return ErrInvalidRole
		}
	}
	return nil
}
