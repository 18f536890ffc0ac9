package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/nelld28/chorebender/internal/model"
	"github.com/nelld28/chorebender/internal/store"
	"github.com/nelld28/chorebender/internal/websocket"
)

type ProfileHandler struct {
	store  *store.ProfileStore
	hub    *websocket.Hub
	logger *slog.Logger
}

func NewProfileHandler(s *store.ProfileStore, hub *websocket.Hub, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{store: s, hub: hub, logger: logger}
}

func (h *ProfileHandler) broadcast(msg websocket.Message) {
	if h.hub != nil {
		h.hub.Broadcast(msg)
	}
}

func (h *ProfileHandler) List(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.store.List()
	if err != nil {
		h.logger.Error("list profiles", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to list profiles")
		return
	}
	if profiles == nil {
		profiles = []model.Profile{}
	}
	writeJSON(w, http.StatusOK, profiles)
}

func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	p, err := h.store.GetByID(id)
	if err != nil {
		h.logger.Error("get profile", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to get profile")
		return
	}
	if p == nil {
		writeError(w, http.StatusNotFound, "profile not found")
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *ProfileHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name      string `json:"name"`
		Element   string `json:"element"`
		AvatarURL string `json:"avatar_url"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}
	element, err := model.ParseElement(req.Element)
	if err != nil {
		writeError(w, http.StatusBadRequest, "element must be one of air, water, earth, fire")
		return
	}

	p, err := h.store.Create(req.Name, element, req.AvatarURL)
	if err != nil {
		h.logger.Error("create profile", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to create profile")
		return
	}

	h.broadcast(websocket.NewMessage("profile", "created", p.ID, nil))

	writeJSON(w, http.StatusCreated, p)
}

func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	existing, err := h.store.GetByID(id)
	if err != nil {
		h.logger.Error("get profile", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to get profile")
		return
	}
	if existing == nil {
		writeError(w, http.StatusNotFound, "profile not found")
		return
	}

	var req struct {
		Name       *string `json:"name"`
		Element    *string `json:"element"`
		AvatarURL  *string `json:"avatar_url"`
		StepsToday *int    `json:"steps_today"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	var u store.ProfileUpdate
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			writeError(w, http.StatusBadRequest, "name must not be empty")
			return
		}
		u.Name = &name
	}
	if req.Element != nil {
		element, err := model.ParseElement(*req.Element)
		if err != nil {
			writeError(w, http.StatusBadRequest, "element must be one of air, water, earth, fire")
			return
		}
		u.Element = &element
	}
	if req.AvatarURL != nil {
		u.AvatarURL = req.AvatarURL
	}
	if req.StepsToday != nil {
		if *req.StepsToday < 0 {
			writeError(w, http.StatusBadRequest, "steps_today must be >= 0")
			return
		}
		u.StepsToday = req.StepsToday
	}

	p, err := h.store.Update(id, u)
	if err != nil {
		h.logger.Error("update profile", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to update profile")
		return
	}

	h.broadcast(websocket.NewMessage("profile", "updated", id, nil))

	writeJSON(w, http.StatusOK, p)
}
