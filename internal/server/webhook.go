package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/tidwall/gjson"

	"github.com/bluefightred/TheHive-Slack-Notifications/internal/core/event"
	"github.com/bluefightred/TheHive-Slack-Notifications/internal/utils/logger"
)

type statusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

type webhookHandler struct {
	events  EventHandler
	log     *logger.Logger
	maxBody int64
}

func (h *webhookHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeJSON(w, http.StatusMethodNotAllowed, statusResponse{Status: "error", Message: "method not allowed"})
		return
	}
	reqID := requestID(r)
	w.Header().Set("X-Request-Id", reqID)
	log := h.log.With("request_id", reqID)

	if !isJSONContentType(r.Header.Get("Content-Type")) {
		writeJSON(w, http.StatusBadRequest, statusResponse{Status: "error", Message: "Content-Type must be application/json"})
		return
	}
	if h.maxBody > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxBody)
	}
	body, err := io.ReadAll(r.Body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		msg := "failed to read request body"
		if errors.As(err, &tooLarge) {
			msg = "request body too large"
		}
		log.Warnf("%s: %v", msg, err)
		writeJSON(w, http.StatusBadRequest, statusResponse{Status: "error", Message: msg})
		return
	}
	if !gjson.ValidBytes(body) {
		log.Warnf("rejected webhook: body is not valid JSON")
		writeJSON(w, http.StatusBadRequest, statusResponse{Status: "error", Message: "request body is not valid JSON"})
		return
	}

	ctx := logger.NewContext(context.WithoutCancel(r.Context()), log)
	h.events.Handle(ctx, event.Decode(body))

	writeJSON(w, http.StatusOK, statusResponse{Status: "success"})
}

// isJSONContentType accepts application/json and application/*+json.
func isJSONContentType(raw string) bool {
	mediaType, _, err := mime.ParseMediaType(raw)
	if err != nil {
		return false
	}
	if mediaType == "application/json" {
		return true
	}
	return strings.HasPrefix(mediaType, "application/") && strings.HasSuffix(mediaType, "+json")
}

func requestID(r *http.Request) string {
	if id := strings.TrimSpace(r.Header.Get("X-Request-Id")); id != "" {
		return id
	}
	if id := strings.TrimSpace(r.Header.Get("X-Correlation-Id")); id != "" {
		return id
	}
	return uuid.NewString()
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
