package api

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/orbinite/gids/internal/chat"
	"github.com/orbinite/gids/internal/configstore"
	"github.com/orbinite/gids/internal/log"
)

const testAdminPassword = "geheim-wachtwoord"

// fakeGenerator is a scripted chat.Generator for handler tests.
type fakeGenerator struct {
	reply string
	err   error

	// captured inputs from the last call
	lastSystemPrompt string
	lastHistory      []chat.Message
	calls            int
}

func (f *fakeGenerator) Generate(_ context.Context, systemPrompt string, history []chat.Message) (string, error) {
	f.calls++
	f.lastSystemPrompt = systemPrompt
	f.lastHistory = history
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

// failingStore returns an error on every operation.
type failingStore struct {
	err error
}

func (s *failingStore) Get(context.Context, configstore.Key) (string, bool, error) {
	return "", false, s.err
}

func (s *failingStore) Set(context.Context, configstore.Key, string) error {
	return s.err
}

func (s *failingStore) Close() error { return nil }

type testServerOption func(*testServerConfig)

type testServerConfig struct {
	store         configstore.Store
	generator     chat.Generator
	adminPassword string
	maxKnowledge  int
}

func withStore(store configstore.Store) testServerOption {
	return func(c *testServerConfig) { c.store = store }
}

func withGenerator(g chat.Generator) testServerOption {
	return func(c *testServerConfig) { c.generator = g }
}

func withAdminPassword(password string) testServerOption {
	return func(c *testServerConfig) { c.adminPassword = password }
}

func withMaxKnowledgeBytes(n int) testServerOption {
	return func(c *testServerConfig) { c.maxKnowledge = n }
}

// newTestHandler builds a fully wired handler with an in-memory store and a
// scripted generator unless overridden.
func newTestHandler(t *testing.T, opts ...testServerOption) http.Handler {
	t.Helper()

	cfg := &testServerConfig{
		store:         configstore.NewMemory(),
		generator:     &fakeGenerator{reply: "testantwoord"},
		adminPassword: testAdminPassword,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	srv, err := NewServer(cfg.store, cfg.generator, ServerConfig{
		AdminPassword:     cfg.adminPassword,
		MaxKnowledgeBytes: cfg.maxKnowledge,
		RequestTimeout:    5 * time.Second,
	}, log.NewNop())
	require.NoError(t, err)

	return srv.Handler()
}

// adminToken authenticates against the handler and returns a valid token.
func adminToken(t *testing.T, handler http.Handler) string {
	t.Helper()

	resp := doJSON(t, handler, http.MethodPost, "/api/admin/authenticate",
		map[string]string{"password": testAdminPassword})
	require.Equal(t, http.StatusOK, resp.Code)

	var body AuthenticateResponse
	decodeBody(t, resp, &body)
	require.True(t, body.Success)
	require.NotEmpty(t, body.Token)
	return body.Token
}
