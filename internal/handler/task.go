package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/BuzzLyutic/simplido/internal/auth"
	"github.com/BuzzLyutic/simplido/internal/model"
	"github.com/BuzzLyutic/simplido/internal/repo"
	"github.com/BuzzLyutic/simplido/internal/service"
	"github.com/BuzzLyutic/simplido/pkg/respond"
)

type TaskHandler struct {
	service *service.TaskService
	logger  *zap.Logger
}

func NewTaskHandler(srv *service.TaskService, logger *zap.Logger) *TaskHandler {
	return &TaskHandler{
		service: srv,
		logger:  logger,
	}
}

type taskRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Completed   bool    `json:"completed"`
}

// owner берет пользователя, которого положил в контекст гейт.
// На защищенных роутах он есть всегда, проверка на случай кривой сборки роутера.
func (h *TaskHandler) owner(w http.ResponseWriter, r *http.Request) (model.User, bool) {
	user, ok := auth.CurrentUser(r.Context())
	if !ok {
		w.Header().Set("WWW-Authenticate", "Bearer")
		respond.Error(w, r, http.StatusUnauthorized, "could not validate credentials")
	}
	return user, ok
}

func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, ok := h.owner(w, r)
	if !ok {
		return
	}

	if r.ContentLength == 0 {
		respond.Error(w, r, http.StatusBadRequest, "empty request body")
		return
	}

	var req taskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("failed to decode json", zap.Error(err))
		respond.Error(w, r, http.StatusBadRequest, fmt.Sprintf("invalid json: %v", err))
		return
	}

	task, err := h.service.Create(r.Context(), user, req.Title, req.Description)
	if err != nil {
		h.handleErrors(w, r, err)
		return
	}

	respond.JSON(w, r, http.StatusOK, task)
}

func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	user, ok := h.owner(w, r)
	if !ok {
		return
	}

	tasks, err := h.service.ListForOwner(r.Context(), user)
	if err != nil {
		h.handleErrors(w, r, err)
		return
	}
	respond.JSON(w, r, http.StatusOK, tasks)
}

func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	user, ok := h.owner(w, r)
	if !ok {
		return
	}

	id, _ := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)

	var req taskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, r, http.StatusBadRequest, "invalid json")
		return
	}

	task, err := h.service.Update(r.Context(), user, id, req.Title, req.Description, req.Completed)
	if err != nil {
		h.handleErrors(w, r, err)
		return
	}

	respond.JSON(w, r, http.StatusOK, task)
}

func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user, ok := h.owner(w, r)
	if !ok {
		return
	}

	id, _ := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)

	if err := h.service.Delete(r.Context(), user, id); err != nil {
		h.handleErrors(w, r, err)
		return
	}

	respond.Message(w, r, http.StatusOK, "Task deleted successfully")
}

func (h *TaskHandler) Stats(w http.ResponseWriter, r *http.Request) {
	user, ok := h.owner(w, r)
	if !ok {
		return
	}

	stats, err := h.service.StatsForOwner(r.Context(), user)
	if err != nil {
		h.handleErrors(w, r, err)
		return
	}
	respond.JSON(w, r, http.StatusOK, stats)
}

func (h *TaskHandler) handleErrors(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, repo.ErrorNotFound):
		// Одинаковый ответ для несуществующей и чужой задачи
		respond.Error(w, r, http.StatusNotFound, "task not found or you don't have permission to modify this task")
	case errors.Is(err, service.ErrValidation):
		respond.Error(w, r, http.StatusBadRequest, "validation error")
	default:
		h.logger.Error("internal error", zap.Error(err))
		respond.Error(w, r, http.StatusInternalServerError, "internal error")
	}
}
