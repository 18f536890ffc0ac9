package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/nelld28/chorebender/internal/motivation"
)

type MotivationHandler struct {
	generator motivation.Generator
	logger    *slog.Logger
}

func NewMotivationHandler(g motivation.Generator, logger *slog.Logger) *MotivationHandler {
	return &MotivationHandler{generator: g, logger: logger}
}

// Generate produces one motivational message. A backend failure is terminal
// for the request; the client decides whether to ask again.
func (h *MotivationHandler) Generate(w http.ResponseWriter, r *http.Request) {
	if h.generator == nil {
		writeError(w, http.StatusServiceUnavailable, "motivation generator is not configured")
		return
	}

	var req struct {
		Element            string  `json:"element"`
		ProgressPercentage float64 `json:"progress_percentage"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	element, err := motivation.ValidateInput(req.Element, req.ProgressPercentage)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	msg, err := h.generator.Generate(r.Context(), element, req.ProgressPercentage)
	if err != nil {
		h.logger.Error("generate motivation", "element", element, "error", err)
		writeError(w, http.StatusBadGateway, "failed to generate message")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": msg})
}
