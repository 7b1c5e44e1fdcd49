package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/FabioCubas101/tfm-ai-api/internal/assistant"
	"github.com/FabioCubas101/tfm-ai-api/internal/log"
)

// maxMessageLength bounds the chat message size in characters.
const maxMessageLength = 1000

// maxBodyBytes bounds the request body size. UTF-8 messages up to
// maxMessageLength runes fit comfortably.
const maxBodyBytes = 16 << 10

// Responder produces an answer for a chat message.
// *assistant.Agent satisfies this interface.
type Responder interface {
	Answer(ctx context.Context, message string) (string, error)
}

// ChatRequest is the request payload for POST /chat.
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResponse is the response payload for POST /chat.
type ChatResponse struct {
	Response string `json:"response"`
}

// ChatHandler handles the chat endpoint.
type ChatHandler struct {
	responder Responder
	logger    log.Logger
}

// NewChatHandler creates a new chat handler.
func NewChatHandler(responder Responder, logger log.Logger) *ChatHandler {
	return &ChatHandler{responder: responder, logger: logger}
}

// handleChat handles POST /chat.
//
// Responses:
//   - 200 with the assistant's answer
//   - 400 for malformed JSON, empty, or over-long messages
//   - 503 when the assistant is not available
//   - 500 when generation fails after retries
func (h *ChatHandler) handleChat(w http.ResponseWriter, r *http.Request) {
	if h.responder == nil {
		writeError(w, http.StatusServiceUnavailable, "unavailable", "assistant not initialized", h.logger)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body", h.logger)
		return
	}

	message := strings.TrimSpace(req.Message)
	if message == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "message is required", h.logger)
		return
	}
	if len([]rune(message)) > maxMessageLength {
		writeError(w, http.StatusBadRequest, "invalid_request", "message exceeds 1000 characters", h.logger)
		return
	}

	answer, err := h.responder.Answer(r.Context(), message)
	if err != nil {
		requestID, _ := RequestIDFromContext(r.Context())
		h.logger.Error("chat answer failed", "error", err, "request_id", requestID)
		if errors.Is(err, assistant.ErrGenerationFailed) {
			writeError(w, http.StatusInternalServerError, "generation_failed", "could not generate a response", h.logger)
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", "internal server error", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, ChatResponse{Response: answer}, h.logger)
}
