// Package api provides the HTTP REST API for the assistant.
//
// Endpoints:
//
//	GET  /health                         → liveness probe
//	GET  /ready                          → readiness probe (store reachable)
//	POST /api/chat                       → grounded chat completion
//	POST /api/admin/authenticate         → password → admin token
//	GET  /api/admin/knowledge-base       → effective knowledge base
//	POST /api/admin/knowledge-base       → replace knowledge base
//	GET  /api/admin/system-instructions  → effective system instructions
//	POST /api/admin/system-instructions  → replace system instructions
//
// Admin config endpoints require a bearer token from /api/admin/authenticate.
// The server holds no conversation state: clients send the full history on
// every chat request.
//
// File structure:
//   - server.go: HTTP server setup and lifecycle
//   - middleware.go: HTTP middleware (recovery, request ID, logging, CORS)
//   - health.go: health check endpoints (/health, /ready)
//   - chat.go: chat endpoint
//   - admin.go: admin authentication and config endpoints
//   - token.go: HMAC admin token issuing and verification
//   - response.go: JSON response helpers
package api
