package api

import (
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/triagelabs/healthbot/internal/domain"
)

// truthyValues are the query string forms accepted as "enable AI".
// Anything else present in the parameter means an explicit disable.
var truthyValues = map[string]bool{"1": true, "true": true, "yes": true, "on": true}

// faviconPNG is a 1x1 transparent PNG served so favicon requests stay
// out of the error logs.
var faviconPNG, _ = base64.StdEncoding.DecodeString(
	"iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAQAAAC1HAwCAAAAC0lEQVR4nGNgYAAAAAMAASsJTYQAAAAASUVORK5CYII=")

// ChatHandler handles the chat, status, and history endpoints.
type ChatHandler struct {
	*Handler
}

// NewChatHandler creates a new chat handler.
func NewChatHandler(base *Handler) *ChatHandler {
	return &ChatHandler{Handler: base}
}

// RegisterRoutes registers the chat routes.
func (h *ChatHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.Status)
	r.Get("/chat", h.Chat)
	r.Post("/chat", h.Chat)
	r.Get("/history", h.History)
	r.Post("/history/clear", h.ClearHistory)
	r.Get("/favicon.ico", h.Favicon)
}

// chatRequest is the POST /chat body. UseAI is tri-state: absent or
// null leaves the assistant's default in force.
type chatRequest struct {
	Message string `json:"message"`
	UseAI   *bool  `json:"use_ai"`
}

// Chat produces a reply for the submitted message. GET reads message
// and use_ai from the query string; POST reads a JSON body. The
// endpoint always answers with a reply: a malformed body degrades to an
// empty message, and AI problems are absorbed by the assistant's
// rule-based fallback.
func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	message, useAI := parseChatRequest(r)

	res := h.assistant.Respond(r.Context(), message, useAI)

	// Best-effort append; a persistence problem must never break the chat.
	if err := h.history.Append(r.Context(), domain.NewEntry(message, res.Reply, res.UsedAI)); err != nil {
		slog.Warn("Failed to append history entry", "error", err)
	}

	JSON(w, http.StatusOK, map[string]interface{}{
		"reply": res.Reply,
		"ai":    res.UsedAI,
	})
}

// parseChatRequest extracts the message and the tri-state AI override
// from either request form.
func parseChatRequest(r *http.Request) (string, *bool) {
	if r.Method == http.MethodGet {
		q := r.URL.Query()
		message := q.Get("message")
		if !q.Has("use_ai") {
			return message, nil
		}
		enabled := truthyValues[strings.ToLower(q.Get("use_ai"))]
		return message, &enabled
	}

	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return "", nil
	}
	return req.Message, req.UseAI
}

// Status reports liveness and points callers at the chat endpoint.
func (h *ChatHandler) Status(w http.ResponseWriter, _ *http.Request) {
	JSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"message": `Health Assistant running. Use POST /chat with JSON {"message": "..."} or GET /chat?message=...`,
	})
}

// History returns the full persisted history, oldest first.
func (h *ChatHandler) History(w http.ResponseWriter, r *http.Request) {
	entries, err := h.history.List(r.Context())
	if err != nil {
		slog.Error("Failed to read history", "error", err)
		Error(w, http.StatusInternalServerError, "failed to read history")
		return
	}
	JSON(w, http.StatusOK, map[string]interface{}{"history": entries})
}

// ClearHistory truncates the history to empty.
func (h *ChatHandler) ClearHistory(w http.ResponseWriter, r *http.Request) {
	if err := h.history.Clear(r.Context()); err != nil {
		slog.Error("Failed to clear history", "error", err)
		Error(w, http.StatusInternalServerError, "failed to clear history")
		return
	}
	JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Favicon returns the tiny built-in favicon.
func (h *ChatHandler) Favicon(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(faviconPNG)
}
