package twin

import "github.com/go-chi/chi/v5"

func RegisterRoutes(r chi.Router, h *Handler) {
	r.Post("/chat/{botId}", h.HandleChat)
	r.Post("/keys/validate", h.HandleValidateKey)
}
