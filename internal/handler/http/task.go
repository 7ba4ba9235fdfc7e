package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/Rahul-Sharma5/teamtimetracker/internal/domain/task"
	"github.com/Rahul-Sharma5/teamtimetracker/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type TaskHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	AddComment(w http.ResponseWriter, r *http.Request)
	ListComments(w http.ResponseWriter, r *http.Request)
}

type TaskHandlerImpl struct {
	taskService task.TaskService
}

func NewTaskHandler(taskService task.TaskService) TaskHandler {
	return &TaskHandlerImpl{taskService: taskService}
}

// Create implements TaskHandler.
func (h *TaskHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req task.CreateTaskRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create task decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	t, err := h.taskService.Create(r.Context(), req)
	if err != nil {
		slog.Error("Create task service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Task created", t)
}

// Get implements TaskHandler.
func (h *TaskHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	t, err := h.taskService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		slog.Error("Get task service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, t)
}

// Update implements TaskHandler.
func (h *TaskHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req task.UpdateTaskRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update task decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	t, err := h.taskService.Update(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		slog.Error("Update task service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Task updated", t)
}

// UpdateStatus implements TaskHandler.
func (h *TaskHandlerImpl) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req task.UpdateStatusRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateStatus task decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	t, err := h.taskService.UpdateStatus(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		slog.Error("UpdateStatus task service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Task status updated", t)
}

// Delete implements TaskHandler.
func (h *TaskHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.taskService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		slog.Error("Delete task service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Task deleted", nil)
}

// List implements TaskHandler.
func (h *TaskHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	limit, _ := strconv.Atoi(q.Get("limit"))
	offset, _ := strconv.Atoi(q.Get("offset"))

	filter := task.ListFilter{
		Status: q.Get("status"),
		Limit:  limit,
		Offset: offset,
	}

	tasks, total, err := h.taskService.List(r.Context(), filter)
	if err != nil {
		slog.Error("List tasks service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, tasks, &response.Meta{
		Limit:      filter.Limit,
		TotalItems: total,
	})
}

// AddComment implements TaskHandler.
func (h *TaskHandlerImpl) AddComment(w http.ResponseWriter, r *http.Request) {
	var req task.AddCommentRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("AddComment decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	c, err := h.taskService.AddComment(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		slog.Error("AddComment service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Comment added", c)
}

// ListComments implements TaskHandler.
func (h *TaskHandlerImpl) ListComments(w http.ResponseWriter, r *http.Request) {
	comments, err := h.taskService.ListComments(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		slog.Error("ListComments service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, comments)
}
