package client

import (
	"context"

	"github.com/orbinite/gids/internal/chat"
)

// Greeting seeds every conversation as the assistant's opening turn.
const Greeting = "Hallo! Waarmee kan ik je helpen? Wat zou je willen weten over Orbinite?"

// errorPrefix introduces an error notice shown as an assistant turn.
const errorPrefix = "Sorry, er is iets misgegaan: "

// Chatter is the API surface Conversation needs, so tests can script it.
type Chatter interface {
	Chat(ctx context.Context, history []chat.Message) (string, error)
}

// Conversation is the client-held message log.
//
// Send appends the user turn, posts the ENTIRE history, and appends the
// reply as a model turn. On failure the error notice is appended as a model
// turn instead, and the conversation stays usable: the next Send simply
// includes the notice in the history.
//
// Not safe for concurrent use; the TUI drives it from a single goroutine.
type Conversation struct {
	api      Chatter
	messages []chat.Message
}

// NewConversation creates a conversation seeded with the greeting.
func NewConversation(api Chatter) *Conversation {
	c := &Conversation{api: api}
	c.Reset()
	return c
}

// Messages returns the conversation so far. The returned slice is a copy.
func (c *Conversation) Messages() []chat.Message {
	out := make([]chat.Message, len(c.messages))
	copy(out, c.messages)
	return out
}

// Send posts the user's message along with the whole history and returns
// the assistant's reply. The returned error is also recorded in the log as
// a model turn so the transcript shows what happened.
func (c *Conversation) Send(ctx context.Context, content string) (string, error) {
	c.messages = append(c.messages, chat.Message{Role: chat.RoleUser, Content: content})

	reply, err := c.api.Chat(ctx, c.messages)
	if err != nil {
		notice := errorPrefix + err.Error()
		c.messages = append(c.messages, chat.Message{Role: chat.RoleModel, Content: notice})
		return "", err
	}

	c.messages = append(c.messages, chat.Message{Role: chat.RoleModel, Content: reply})
	return reply, nil
}

// Reset discards the history and restores the greeting.
func (c *Conversation) Reset() {
	c.messages = []chat.Message{{Role: chat.RoleModel, Content: Greeting}}
}
