package api

import (
	"crypto/subtle"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/orbinite/gids/internal/configstore"
)

// maxAdminBodyBytes bounds admin request bodies. Knowledge bases are text
// documents, so 4 MB leaves ample headroom.
const maxAdminBodyBytes = 4 << 20

// AuthenticateRequest is the authenticate request body.
type AuthenticateRequest struct {
	Password string `json:"password"`
}

// AuthenticateResponse is the authenticate response body.
type AuthenticateResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
}

// KnowledgeBaseBody carries the knowledge base content in both directions.
type KnowledgeBaseBody struct {
	Content string `json:"content"`
}

// SystemInstructionsBody carries the system instructions in both directions.
type SystemInstructionsBody struct {
	Instructions string `json:"instructions"`
}

// SuccessResponse acknowledges a write.
type SuccessResponse struct {
	Success bool `json:"success"`
}

// AdminHandler handles authentication and the config endpoints.
//
// Authentication exchanges the shared admin password for a short-lived HMAC
// token; every config read and write must present that token as a bearer
// credential.
type AdminHandler struct {
	store             configstore.Store
	adminPassword     string
	maxKnowledgeBytes int
	tokens            *tokenIssuer
	logger            *slog.Logger
}

// NewAdminHandler creates a new admin handler.
// An empty adminPassword leaves admin access unconfigured: authentication
// reports a server error instead of a denial.
func NewAdminHandler(store configstore.Store, adminPassword string, maxKnowledgeBytes int, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		store:             store,
		adminPassword:     adminPassword,
		maxKnowledgeBytes: maxKnowledgeBytes,
		tokens:            newTokenIssuer(adminPassword),
		logger:            logger,
	}
}

// RegisterRoutes registers admin routes on the given mux.
func (h *AdminHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/admin/authenticate", h.handleAuthenticate)

	mux.Handle("GET /api/admin/knowledge-base", h.requireToken(h.handleGetKnowledgeBase))
	mux.Handle("POST /api/admin/knowledge-base", h.requireToken(h.handleSetKnowledgeBase))
	mux.Handle("GET /api/admin/system-instructions", h.requireToken(h.handleGetSystemInstructions))
	mux.Handle("POST /api/admin/system-instructions", h.requireToken(h.handleSetSystemInstructions))
}

func (h *AdminHandler) handleAuthenticate(w http.ResponseWriter, r *http.Request) {
	if h.adminPassword == "" {
		// Misconfiguration, not a denial: there is no password to match.
		h.logger.Error("admin authentication attempted but no admin password is configured")
		writeError(w, http.StatusInternalServerError, "admin_not_configured",
			"admin access is not configured on this server", h.logger)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxAdminBodyBytes)

	var req AuthenticateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body", h.logger)
		return
	}

	if subtle.ConstantTimeCompare([]byte(req.Password), []byte(h.adminPassword)) != 1 {
		writeError(w, http.StatusUnauthorized, "unauthorized", "invalid password", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, AuthenticateResponse{
		Success: true,
		Token:   h.tokens.Issue(),
	}, h.logger)
}

// requireToken gates a handler behind a valid admin token.
func (h *AdminHandler) requireToken(next http.HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.adminPassword == "" {
			writeError(w, http.StatusInternalServerError, "admin_not_configured",
				"admin access is not configured on this server", h.logger)
			return
		}

		token := bearerToken(r)
		if err := h.tokens.Verify(token); err != nil {
			h.logger.Warn("admin token rejected", "error", err, "path", r.URL.Path)
			writeError(w, http.StatusUnauthorized, "unauthorized", "invalid or expired token", h.logger)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// bearerToken extracts the token from the Authorization header.
func bearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if len(auth) > len(prefix) && strings.EqualFold(auth[:len(prefix)], prefix) {
		return auth[len(prefix):]
	}
	return ""
}

func (h *AdminHandler) handleGetKnowledgeBase(w http.ResponseWriter, r *http.Request) {
	value, err := configstore.ResolveKey(r.Context(), h.store, configstore.KeyKnowledgeBase)
	if err != nil {
		h.logger.Error("reading knowledge base failed", "error", err)
		writeError(w, http.StatusInternalServerError, "config_store_error",
			"failed to read knowledge base", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, KnowledgeBaseBody{Content: value}, h.logger)
}

func (h *AdminHandler) handleSetKnowledgeBase(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxAdminBodyBytes)

	var req KnowledgeBaseBody
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

	// Empty content is a valid state: chat falls back to the compiled-in
	// default. Only the size cap is enforced.
	if h.maxKnowledgeBytes > 0 && len(req.Content) > h.maxKnowledgeBytes {
		writeError(w, http.StatusRequestEntityTooLarge, "content_too_large",
			"knowledge base exceeds the configured size cap", h.logger)
		return
	}

	if err := h.store.Set(r.Context(), configstore.KeyKnowledgeBase, req.Content); err != nil {
		h.logger.Error("writing knowledge base failed", "error", err)
		writeError(w, http.StatusInternalServerError, "config_store_error",
			"failed to store knowledge base", h.logger)
		return
	}

	h.logger.Info("knowledge base updated", "bytes", len(req.Content))
	writeJSON(w, http.StatusOK, SuccessResponse{Success: true}, h.logger)
}

func (h *AdminHandler) handleGetSystemInstructions(w http.ResponseWriter, r *http.Request) {
	value, err := configstore.ResolveKey(r.Context(), h.store, configstore.KeySystemInstructions)
	if err != nil {
		h.logger.Error("reading system instructions failed", "error", err)
		writeError(w, http.StatusInternalServerError, "config_store_error",
			"failed to read system instructions", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, SystemInstructionsBody{Instructions: value}, h.logger)
}

func (h *AdminHandler) handleSetSystemInstructions(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxAdminBodyBytes)

	var req SystemInstructionsBody
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body", h.logger)
		return
	}

	// Empty instructions would silently strip the assistant's persona, so
	// the write is rejected and the store left unchanged.
	if strings.TrimSpace(req.Instructions) == "" {
		writeError(w, http.StatusBadRequest, "empty_instructions",
			"instructions must not be empty", h.logger)
		return
	}

	if err := h.store.Set(r.Context(), configstore.KeySystemInstructions, req.Instructions); err != nil {
		h.logger.Error("writing system instructions failed", "error", err)
		writeError(w, http.StatusInternalServerError, "config_store_error",
			"failed to store system instructions", h.logger)
		return
	}

	h.logger.Info("system instructions updated", "bytes", len(req.Instructions))
	writeJSON(w, http.StatusOK, SuccessResponse{Success: true}, h.logger)
}
