package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/Rahul-Sharma5/teamtimetracker/internal/domain/report"
	"github.com/Rahul-Sharma5/teamtimetracker/internal/handler/http/response"
)

type ReportHandler interface {
	ExportCSV(w http.ResponseWriter, r *http.Request)
	ExportPDF(w http.ResponseWriter, r *http.Request)
}

type ReportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &ReportHandlerImpl{reportService: reportService}
}

// ExportCSV implements ReportHandler.
func (h *ReportHandlerImpl) ExportCSV(w http.ResponseWriter, r *http.Request) {
	export, err := h.reportService.ExportCSV(r.Context(), exportFilterFromQuery(r))
	if err != nil {
		slog.Error("ExportCSV service error", "error", err)
		response.HandleError(w, err)
		return
	}

	writeExport(w, export)
}

// ExportPDF implements ReportHandler.
func (h *ReportHandlerImpl) ExportPDF(w http.ResponseWriter, r *http.Request) {
	export, err := h.reportService.ExportPDF(r.Context(), exportFilterFromQuery(r))
	if err != nil {
		slog.Error("ExportPDF service error", "error", err)
		response.HandleError(w, err)
		return
	}

	writeExport(w, export)
}

func exportFilterFromQuery(r *http.Request) report.ExportFilter {
	q := r.URL.Query()
	return report.ExportFilter{
		EmployeeID: q.Get("employee_id"),
		DateFrom:   q.Get("date_from"),
		DateTo:     q.Get("date_to"),
	}
}

func writeExport(w http.ResponseWriter, export report.Export) {
	w.Header().Set("Content-Type", export.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.FileName))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(export.Data)
}
