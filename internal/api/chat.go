package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/orbinite/gids/internal/chat"
	"github.com/orbinite/gids/internal/configstore"
	"github.com/orbinite/gids/internal/prompt"
)

// maxChatBodyBytes bounds the chat request body (history included).
const maxChatBodyBytes = 1 << 20 // 1 MB

// ChatRequest is the chat endpoint request body.
type ChatRequest struct {
	History []chat.Message `json:"history"`
}

// ChatResponse is the chat endpoint response body.
type ChatResponse struct {
	Text string `json:"text"`
}

// ChatHandler handles the chat endpoint.
//
// Every request resolves the stored configuration fresh, assembles the
// grounding prompt, and dispatches the full client-held history. Nothing is
// cached or persisted between requests, so an admin write is visible on the
// next turn.
type ChatHandler struct {
	store     configstore.Store
	generator chat.Generator
	timeout   time.Duration
	logger    *slog.Logger
}

// NewChatHandler creates a new chat handler.
func NewChatHandler(store configstore.Store, generator chat.Generator, timeout time.Duration, logger *slog.Logger) *ChatHandler {
	return &ChatHandler{
		store:     store,
		generator: generator,
		timeout:   timeout,
		logger:    logger,
	}
}

// RegisterRoutes registers chat routes on the given mux.
func (h *ChatHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/chat", h.handleChat)
}

func (h *ChatHandler) handleChat(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxChatBodyBytes)

	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			writeError(w, http.StatusRequestEntityTooLarge, "request_too_large",
				"request body exceeds the size limit", h.logger)
			return
		}
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body", h.logger)
		return
	}

	if err := chat.ValidateHistory(req.History); err != nil {
		switch {
		case errors.Is(err, chat.ErrEmptyHistory):
			writeError(w, http.StatusBadRequest, "missing_history",
				"history must contain at least one message", h.logger)
		case errors.Is(err, chat.ErrInvalidRole):
			writeError(w, http.StatusBadRequest, "invalid_role",
				"message roles must be \"user\" or \"model\"", h.logger)
		default:
			writeError(w, http.StatusBadRequest, "invalid_request", err.Error(), h.logger)
		}
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	cfg, err := configstore.Resolve(ctx, h.store)
	if err != nil {
		h.logger.Error("resolving config failed", "error", err)
		writeError(w, http.StatusInternalServerError, "config_store_error",
			"failed to load assistant configuration", h.logger)
		return
	}

	systemPrompt := prompt.Assemble(cfg.SystemInstructions, cfg.KnowledgeBase)

	text, err := h.generator.Generate(ctx, systemPrompt, req.History)
	if err != nil {
		h.logger.Error("chat generation failed", "error", err, "turns", len(req.History))
		writeError(w, http.StatusInternalServerError, "provider_error",
			"failed to generate a response", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, ChatResponse{Text: text}, h.logger)
}
