package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	chorelist "github.com/nelld28/chorebender/internal/chore"
	"github.com/nelld28/chorebender/internal/lifecycle"
	"github.com/nelld28/chorebender/internal/model"
	"github.com/nelld28/chorebender/internal/store"
	"github.com/nelld28/chorebender/internal/websocket"
)

type ChoreHandler struct {
	svc    *lifecycle.Service
	store  *store.ChoreStore
	hub    *websocket.Hub
	logger *slog.Logger
}

func NewChoreHandler(svc *lifecycle.Service, cs *store.ChoreStore, hub *websocket.Hub, logger *slog.Logger) *ChoreHandler {
	return &ChoreHandler{svc: svc, store: cs, hub: hub, logger: logger}
}

func (h *ChoreHandler) broadcast(msg websocket.Message) {
	if h.hub != nil {
		h.hub.Broadcast(msg)
	}
}

// writeLifecycleError maps service errors to HTTP statuses: validation to
// 400, unknown chore to 404, everything else to a logged 500.
func (h *ChoreHandler) writeLifecycleError(w http.ResponseWriter, op string, err error) {
	var verr *lifecycle.ValidationError
	switch {
	case errors.As(err, &verr):
		writeError(w, http.StatusBadRequest, verr.Error())
	case errors.Is(err, lifecycle.ErrChoreNotFound):
		writeError(w, http.StatusNotFound, "chore not found")
	default:
		h.logger.Error(op, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to "+op)
	}
}

type choreRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	AssignedTo  string `json:"assigned_to"`
	DueDate     string `json:"due_date"`
	ElementType string `json:"element_type"`
}

func (h *ChoreHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req choreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	id, err := h.svc.Create(lifecycle.ChoreInput{
		Name:        req.Name,
		Description: req.Description,
		AssignedTo:  req.AssignedTo,
		DueDate:     req.DueDate,
		ElementType: req.ElementType,
	})
	if err != nil {
		h.writeLifecycleError(w, "create chore", err)
		return
	}

	c, err := h.store.GetByID(id)
	if err != nil {
		h.logger.Error("get created chore", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to read created chore")
		return
	}

	h.broadcast(websocket.NewMessage("chore", "created", id, nil))

	writeJSON(w, http.StatusCreated, c)
}

// List returns chores ordered for display (incomplete first, then due date).
// Optional query params: element, assigned_to.
func (h *ChoreHandler) List(w http.ResponseWriter, r *http.Request) {
	var (
		chores []model.Chore
		err    error
	)
	switch {
	case r.URL.Query().Get("assigned_to") != "":
		chores, err = h.store.ListByAssignee(r.URL.Query().Get("assigned_to"))
	case r.URL.Query().Get("element") != "":
		element, perr := model.ParseElement(r.URL.Query().Get("element"))
		if perr != nil {
			writeError(w, http.StatusBadRequest, "element must be one of air, water, earth, fire")
			return
		}
		chores, err = h.store.ListByElement(element)
	default:
		chores, err = h.store.List()
	}
	if err != nil {
		h.logger.Error("list chores", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to list chores")
		return
	}

	chorelist.Sort(chores)
	if chores == nil {
		chores = []model.Chore{}
	}
	writeJSON(w, http.StatusOK, chores)
}

func (h *ChoreHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	c, err := h.store.GetByID(id)
	if err != nil {
		h.logger.Error("get chore", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to get chore")
		return
	}
	if c == nil {
		writeError(w, http.StatusNotFound, "chore not found")
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h *ChoreHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var req struct {
		Name        *string `json:"name"`
		Description *string `json:"description"`
		AssignedTo  *string `json:"assigned_to"`
		DueDate     *string `json:"due_date"`
		ElementType *string `json:"element_type"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	err := h.svc.Update(id, lifecycle.ChoreUpdate{
		Name:        req.Name,
		Description: req.Description,
		AssignedTo:  req.AssignedTo,
		DueDate:     req.DueDate,
		ElementType: req.ElementType,
	})
	if err != nil {
		h.writeLifecycleError(w, "update chore", err)
		return
	}

	c, err := h.store.GetByID(id)
	if err != nil {
		h.logger.Error("get updated chore", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to read updated chore")
		return
	}

	h.broadcast(websocket.NewMessage("chore", "updated", id, nil))

	writeJSON(w, http.StatusOK, c)
}

func (h *ChoreHandler) Complete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var req struct {
		IsCompleted bool `json:"is_completed"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	if err := h.svc.ToggleComplete(id, req.IsCompleted); err != nil {
		h.writeLifecycleError(w, "toggle chore completion", err)
		return
	}

	c, err := h.store.GetByID(id)
	if err != nil {
		h.logger.Error("get toggled chore", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to read chore")
		return
	}

	action := "completed"
	if !req.IsCompleted {
		action = "updated"
	}
	h.broadcast(websocket.NewMessage("chore", action, id, nil))

	writeJSON(w, http.StatusOK, c)
}

func (h *ChoreHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	if err := h.svc.Delete(id); err != nil {
		h.writeLifecycleError(w, "delete chore", err)
		return
	}

	h.broadcast(websocket.NewMessage("chore", "deleted", id, nil))

	w.WriteHeader(http.StatusNoContent)
}
