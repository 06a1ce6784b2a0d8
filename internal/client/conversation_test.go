package client

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orbinite/gids/internal/chat"
)

type scriptedChatter struct {
	reply string
	err   error

	lastHistory []chat.Message
}

func (s *scriptedChatter) Chat(_ context.Context, history []chat.Message) (string, error) {
	s.lastHistory = append([]chat.Message(nil), history...)
	if s.err != nil {
		return "", s.err
	}
	return s.reply, nil
}

func TestConversationSeededWithGreeting(t *testing.T) {
	t.Parallel()

	conv := NewConversation(&scriptedChatter{})

	messages := conv.Messages()
	require.Len(t, messages, 1)
	assert.Equal(t, chat.RoleModel, messages[0].Role)
	assert.Equal(t, Greeting, messages[0].Content)
}

func TestConversationSendAppendsTurns(t *testing.T) {
	t.Parallel()

	api := &scriptedChatter{reply: "ORBINITE is een additief."}
	conv := NewConversation(api)

	reply, err := conv.Send(context.Background(), "Wat is ORBINITE?")
	require.NoError(t, err)
	assert.Equal(t, "ORBINITE is een additief.", reply)

	messages := conv.Messages()
	require.Len(t, messages, 3)
	assert.Equal(t, chat.RoleUser, messages[1].Role)
	assert.Equal(t, "Wat is ORBINITE?", messages[1].Content)
	assert.Equal(t, chat.RoleModel, messages[2].Role)
	assert.Equal(t, "ORBINITE is een additief.", messages[2].Content)
}

func TestConversationSendsEntireHistory(t *testing.T) {
	t.Parallel()

	api := &scriptedChatter{reply: "antwoord"}
	conv := NewConversation(api)

	ctx := context.Background()
	_, err := conv.Send(ctx, "eerste")
	require.NoError(t, err)
	_, err = conv.Send(ctx, "tweede")
	require.NoError(t, err)

	// Second call carries greeting + first exchange + new user turn.
	require.Len(t, api.lastHistory, 4)
	assert.Equal(t, Greeting, api.lastHistory[0].Content)
	assert.Equal(t, "eerste", api.lastHistory[1].Content)
	assert.Equal(t, "antwoord", api.lastHistory[2].Content)
	assert.Equal(t, "tweede", api.lastHistory[3].Content)
}

func TestConversationErrorBecomesModelTurn(t *testing.T) {
	t.Parallel()

	api := &scriptedChatter{err: errors.New("server onbereikbaar")}
	conv := NewConversation(api)

	_, err := conv.Send(context.Background(), "hallo")
	require.Error(t, err)

	messages := conv.Messages()
	require.Len(t, messages, 3)
	assert.Equal(t, chat.RoleModel, messages[2].Role)
	assert.Contains(t, messages[2].Content, "Sorry, er is iets misgegaan:")
	assert.Contains(t, messages[2].Content, "server onbereikbaar")
}

func TestConversationStaysUsableAfterError(t *testing.T) {
	t.Parallel()

	api := &scriptedChatter{err: errors.New("tijdelijk")}
	conv := NewConversation(api)

	ctx := context.Background()
	_, err := conv.Send(ctx, "eerste poging")
	require.Error(t, err)

	// Recovery: the next send succeeds and includes the error notice in
	// the history it posts.
	api.err = nil
	api.reply = "weer online"

	reply, err := conv.Send(ctx, "tweede poging")
	require.NoError(t, err)
	assert.Equal(t, "weer online", reply)

	require.Len(t, api.lastHistory, 4)
	assert.Contains(t, api.lastHistory[2].Content, "Sorry, er is iets misgegaan:")
}

func TestConversationReset(t *testing.T) {
	t.Parallel()

	api := &scriptedChatter{reply: "x"}
	conv := NewConversation(api)

	_, err := conv.Send(context.Background(), "hallo")
	require.NoError(t, err)
	require.Len(t, conv.Messages(), 3)

	conv.Reset()

	messages := conv.Messages()
	require.Len(t, messages, 1)
	assert.Equal(t, Greeting, messages[0].Content)
}

func TestConversationMessagesIsACopy(t *testing.T) {
	t.Parallel()

	conv := NewConversation(&scriptedChatter{})

	messages := conv.Messages()
	messages[0].Content = "geknoei"

	assert.Equal(t, Greeting, conv.Messages()[0].Content)
}
