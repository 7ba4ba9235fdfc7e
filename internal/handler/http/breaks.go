package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/Rahul-Sharma5/teamtimetracker/internal/domain/breaks"
	"github.com/Rahul-Sharma5/teamtimetracker/internal/handler/http/response"
)

type BreakHandler interface {
	Start(w http.ResponseWriter, r *http.Request)
	End(w http.ResponseWriter, r *http.Request)
	Today(w http.ResponseWriter, r *http.Request)
	TeamList(w http.ResponseWriter, r *http.Request)
}

type BreakHandlerImpl struct {
	breakService breaks.BreakService
}

func NewBreakHandler(breakService breaks.BreakService) BreakHandler {
	return &BreakHandlerImpl{breakService: breakService}
}

// Start implements BreakHandler.
func (h *BreakHandlerImpl) Start(w http.ResponseWriter, r *http.Request) {
	var req breaks.StartBreakRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Start break decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	b, err := h.breakService.Start(r.Context(), req)
	if err != nil {
		slog.Error("Start break service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Break started", b)
}

// End implements BreakHandler.
func (h *BreakHandlerImpl) End(w http.ResponseWriter, r *http.Request) {
	b, err := h.breakService.End(r.Context())
	if err != nil {
		slog.Error("End break service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Break ended", b)
}

// Today implements BreakHandler.
func (h *BreakHandlerImpl) Today(w http.ResponseWriter, r *http.Request) {
	resp, err := h.breakService.Today(r.Context())
	if err != nil {
		slog.Error("Today breaks service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// TeamList implements BreakHandler.
func (h *BreakHandlerImpl) TeamList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	limit, _ := strconv.Atoi(q.Get("limit"))
	offset, _ := strconv.Atoi(q.Get("offset"))

	filter := breaks.ListFilter{
		EmployeeID: q.Get("employee_id"),
		Date:       q.Get("date"),
		Limit:      limit,
		Offset:     offset,
	}

	teamBreaks, total, err := h.breakService.TeamList(r.Context(), filter)
	if err != nil {
		slog.Error("TeamList breaks service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, teamBreaks, &response.Meta{
		Limit:      filter.Limit,
		TotalItems: total,
	})
}
