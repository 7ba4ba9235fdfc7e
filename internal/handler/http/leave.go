package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/Rahul-Sharma5/teamtimetracker/internal/domain/employee"
	"github.com/Rahul-Sharma5/teamtimetracker/internal/domain/leave"
	"github.com/Rahul-Sharma5/teamtimetracker/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type LeaveHandler interface {
	Apply(w http.ResponseWriter, r *http.Request)
	Approvers(w http.ResponseWriter, r *http.Request)
	Decide(w http.ResponseWriter, r *http.Request)
	RequestCancellation(w http.ResponseWriter, r *http.Request)
	ResolveCancellation(w http.ResponseWriter, r *http.Request)
	Mine(w http.ResponseWriter, r *http.Request)
	TeamList(w http.ResponseWriter, r *http.Request)
}

type LeaveHandlerImpl struct {
	leaveService leave.LeaveService
}

func NewLeaveHandler(leaveService leave.LeaveService) LeaveHandler {
	return &LeaveHandlerImpl{leaveService: leaveService}
}

// Apply implements LeaveHandler.
func (h *LeaveHandlerImpl) Apply(w http.ResponseWriter, r *http.Request) {
	var req leave.ApplyLeaveRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Apply leave decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	l, err := h.leaveService.Apply(r.Context(), req)
	if err != nil {
		slog.Error("Apply leave service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave application submitted", l)
}

// Approvers implements LeaveHandler.
func (h *LeaveHandlerImpl) Approvers(w http.ResponseWriter, r *http.Request) {
	eligible, err := h.leaveService.Approvers(r.Context())
	if err != nil {
		slog.Error("Approvers service error", "error", err)
		response.HandleError(w, err)
		return
	}

	resp := make([]employee.EmployeeResponse, 0, len(eligible))
	for _, e := range eligible {
		resp = append(resp, employee.ToResponse(e))
	}

	response.Success(w, resp)
}

// Decide implements LeaveHandler.
func (h *LeaveHandlerImpl) Decide(w http.ResponseWriter, r *http.Request) {
	var req leave.DecideLeaveRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Decide leave decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	l, err := h.leaveService.Decide(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		slog.Error("Decide leave service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave "+string(l.Status), l)
}

// RequestCancellation implements LeaveHandler.
func (h *LeaveHandlerImpl) RequestCancellation(w http.ResponseWriter, r *http.Request) {
	var req leave.CancelLeaveRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("RequestCancellation decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	l, err := h.leaveService.RequestCancellation(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		slog.Error("RequestCancellation service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Cancellation requested", l)
}

// ResolveCancellation implements LeaveHandler.
func (h *LeaveHandlerImpl) ResolveCancellation(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Confirm bool `json:"confirm"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("ResolveCancellation decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	l, err := h.leaveService.ResolveCancellation(r.Context(), chi.URLParam(r, "id"), req.Confirm)
	if err != nil {
		slog.Error("ResolveCancellation service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Cancellation resolved", l)
}

// Mine implements LeaveHandler.
func (h *LeaveHandlerImpl) Mine(w http.ResponseWriter, r *http.Request) {
	filter := leaveFilterFromQuery(r)

	leaves, total, err := h.leaveService.Mine(r.Context(), filter)
	if err != nil {
		slog.Error("Mine leaves service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, leaves, &response.Meta{
		Limit:      filter.Limit,
		TotalItems: total,
	})
}

// TeamList implements LeaveHandler.
func (h *LeaveHandlerImpl) TeamList(w http.ResponseWriter, r *http.Request) {
	filter := leaveFilterFromQuery(r)
	filter.EmployeeID = r.URL.Query().Get("employee_id")

	leaves, total, err := h.leaveService.TeamList(r.Context(), filter)
	if err != nil {
		slog.Error("TeamList leaves service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, leaves, &response.Meta{
		Limit:      filter.Limit,
		TotalItems: total,
	})
}

func leaveFilterFromQuery(r *http.Request) leave.ListFilter {
	q := r.URL.Query()
	limit, _ := strconv.Atoi(q.Get("limit"))
	offset, _ := strconv.Atoi(q.Get("offset"))
	return leave.ListFilter{
		Status: q.Get("status"),
		Limit:  limit,
		Offset: offset,
	}
}
