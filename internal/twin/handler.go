package twin

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/wikizero/twin-gateway/internal/logger"
	"github.com/wikizero/twin-gateway/internal/metrics"
)

type Handler struct {
	svc         Service
	ownerSecret string
}

func NewHandler(svc Service, ownerSecret string) *Handler {
	return &Handler{svc: svc, ownerSecret: ownerSecret}
}

type chatRequest struct {
	History    []Turn `json:"history"`
	NewMessage string `json:"newMessage"`
}

// HandleChat — POST /chat/{botId}. Public and stateless: the whole
// transcript arrives with the request.
func (h *Handler) HandleChat(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	botID := chi.URLParam(r, "botId")

	var payload chatRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		h.writeError(w, botID, badRequest("invalid request body"), start)
		return
	}

	reply, err := h.svc.Chat(r.Context(), botID, payload.History, payload.NewMessage)
	if err != nil {
		h.writeError(w, botID, AsGatewayError(err), start)
		return
	}

	metrics.ChatRequestsTotal.WithLabelValues("ok").Inc()
	log := logger.Get()
	log.Info().
		Str("bot_id", botID).
		Dur("elapsed", time.Since(start)).
		Msg("chat turn ok")

	writeJSON(w, http.StatusOK, map[string]string{"response": reply})
}

func (h *Handler) writeError(w http.ResponseWriter, botID string, gerr *GatewayError, start time.Time) {
	metrics.ChatRequestsTotal.WithLabelValues(string(gerr.Kind)).Inc()
	log := logger.Get()
	log.Info().
		Str("bot_id", botID).
		Str("kind", string(gerr.Kind)).
		Int("status", gerr.Status).
		Dur("elapsed", time.Since(start)).
		Msg("chat turn failed")

	writeJSON(w, gerr.Status, map[string]string{"error": gerr.Message})
}

// HandleValidateKey — POST /keys/validate. Owner-only: the caller proves
// ownership with the shared secret, so the responses may be more detailed
// than the chat taxonomy allows.
func (h *Handler) HandleValidateKey(w http.ResponseWriter, r *http.Request) {
	if h.ownerSecret == "" || !h.ownerAuthorized(r.Header.Get("Authorization")) {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "No valid authorization token provided."})
		return
	}

	var payload struct {
		APIKey string `json:"apiKey"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || strings.TrimSpace(payload.APIKey) == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "No API key provided."})
		return
	}

	err := h.svc.ValidateKey(r.Context(), payload.APIKey)
	status, msg := OwnerProbeResult(err)
	if err != nil {
		metrics.KeyValidationsTotal.WithLabelValues("rejected").Inc()
		log := logger.Get()
		log.Warn().Int("status", status).Msg("owner key validation failed")
		writeJSON(w, status, map[string]string{"error": msg})
		return
	}

	metrics.KeyValidationsTotal.WithLabelValues("ok").Inc()
	writeJSON(w, status, map[string]string{"message": msg})
}

// ownerAuthorized compares the Authorization header against the shared
// owner secret in constant time.
func (h *Handler) ownerAuthorized(header string) bool {
	want := "Bearer " + h.ownerSecret
	return subtle.ConstantTimeCompare([]byte(header), []byte(want)) == 1
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
