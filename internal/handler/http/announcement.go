package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/Rahul-Sharma5/teamtimetracker/internal/domain/announcement"
	"github.com/Rahul-Sharma5/teamtimetracker/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type AnnouncementHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type AnnouncementHandlerImpl struct {
	announcementService announcement.AnnouncementService
}

func NewAnnouncementHandler(announcementService announcement.AnnouncementService) AnnouncementHandler {
	return &AnnouncementHandlerImpl{announcementService: announcementService}
}

// Create implements AnnouncementHandler.
func (h *AnnouncementHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req announcement.CreateAnnouncementRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create announcement decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	a, err := h.announcementService.Create(r.Context(), req)
	if err != nil {
		slog.Error("Create announcement service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Announcement posted", a)
}

// Delete implements AnnouncementHandler.
func (h *AnnouncementHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.announcementService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		slog.Error("Delete announcement service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Announcement deleted", nil)
}

// List implements AnnouncementHandler.
func (h *AnnouncementHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	limit, _ := strconv.Atoi(q.Get("limit"))
	offset, _ := strconv.Atoi(q.Get("offset"))

	announcements, total, err := h.announcementService.List(r.Context(), limit, offset)
	if err != nil {
		slog.Error("List announcements service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, announcements, &response.Meta{
		Limit:      limit,
		TotalItems: total,
	})
}
