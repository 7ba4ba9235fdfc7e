package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/Rahul-Sharma5/teamtimetracker/internal/domain/attendance"
	"github.com/Rahul-Sharma5/teamtimetracker/internal/handler/http/response"
)

type AttendanceHandler interface {
	PunchIn(w http.ResponseWriter, r *http.Request)
	PunchOut(w http.ResponseWriter, r *http.Request)
	UpdateWorkLog(w http.ResponseWriter, r *http.Request)
	Today(w http.ResponseWriter, r *http.Request)
	History(w http.ResponseWriter, r *http.Request)
	TeamList(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &AttendanceHandlerImpl{attendanceService: attendanceService}
}

// PunchIn implements AttendanceHandler.
func (h *AttendanceHandlerImpl) PunchIn(w http.ResponseWriter, r *http.Request) {
	var req attendance.PunchRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("PunchIn decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.attendanceService.PunchIn(r.Context(), req)
	if err != nil {
		slog.Error("PunchIn service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Punched in", resp)
}

// PunchOut implements AttendanceHandler.
func (h *AttendanceHandlerImpl) PunchOut(w http.ResponseWriter, r *http.Request) {
	var req attendance.PunchOutRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("PunchOut decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.attendanceService.PunchOut(r.Context(), req)
	if err != nil {
		slog.Error("PunchOut service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Punched out", resp)
}

// UpdateWorkLog implements AttendanceHandler.
func (h *AttendanceHandlerImpl) UpdateWorkLog(w http.ResponseWriter, r *http.Request) {
	var req attendance.UpdateWorkLogRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateWorkLog decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	att, err := h.attendanceService.UpdateWorkLog(r.Context(), req)
	if err != nil {
		slog.Error("UpdateWorkLog service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Work log updated", att)
}

// Today implements AttendanceHandler.
func (h *AttendanceHandlerImpl) Today(w http.ResponseWriter, r *http.Request) {
	att, err := h.attendanceService.Today(r.Context())
	if err != nil {
		if errors.Is(err, attendance.ErrAttendanceNotFound) {
			// No record yet today is a normal state for the punch clock.
			response.Success(w, nil)
			return
		}
		slog.Error("Today attendance service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, att)
}

// History implements AttendanceHandler.
func (h *AttendanceHandlerImpl) History(w http.ResponseWriter, r *http.Request) {
	filter := attendanceFilterFromQuery(r)

	records, total, err := h.attendanceService.History(r.Context(), filter)
	if err != nil {
		slog.Error("History service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, records, &response.Meta{
		Limit:      filter.Limit,
		TotalItems: total,
	})
}

// TeamList implements AttendanceHandler.
func (h *AttendanceHandlerImpl) TeamList(w http.ResponseWriter, r *http.Request) {
	filter := attendanceFilterFromQuery(r)
	filter.EmployeeID = r.URL.Query().Get("employee_id")

	records, total, err := h.attendanceService.TeamList(r.Context(), filter)
	if err != nil {
		slog.Error("TeamList service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, records, &response.Meta{
		Limit:      filter.Limit,
		TotalItems: total,
	})
}

func attendanceFilterFromQuery(r *http.Request) attendance.ListFilter {
	q := r.URL.Query()
	limit, _ := strconv.Atoi(q.Get("limit"))
	offset, _ := strconv.Atoi(q.Get("offset"))
	return attendance.ListFilter{
		DateFrom: q.Get("date_from"),
		DateTo:   q.Get("date_to"),
		Limit:    limit,
		Offset:   offset,
	}
}
