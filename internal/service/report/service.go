package report

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"time"

	"github.com/Rahul-Sharma5/teamtimetracker/internal/domain/attendance"
	"github.com/Rahul-Sharma5/teamtimetracker/internal/domain/employee"
	"github.com/Rahul-Sharma5/teamtimetracker/internal/domain/report"
	"github.com/go-chi/jwtauth/v5"
	"github.com/jung-kurt/gofpdf"
)

// exportRowLimit caps one export. A year of daily records for a mid-size
// team fits comfortably.
const exportRowLimit = 50000

// absentFillMaxDays bounds the range for which missing days are padded
// with Absent rows. Larger ranges export recorded days only.
const absentFillMaxDays = 92

type ReportServiceImpl struct {
	attendance.AttendanceRepository
	employee.EmployeeRepository
}

func NewReportService(attendanceRepo attendance.AttendanceRepository, employeeRepo employee.EmployeeRepository) report.ReportService {
	return &ReportServiceImpl{
		AttendanceRepository: attendanceRepo,
		EmployeeRepository:   employeeRepo,
	}
}

var exportHeader = []string{"Employee", "Date", "Punch In", "Punch Out", "Duration (minutes)", "Work Log", "Status"}

// ExportCSV implements report.ReportService.
func (s *ReportServiceImpl) ExportCSV(ctx context.Context, filter report.ExportFilter) (report.Export, error) {
	rows, err := s.exportRows(ctx, filter)
	if err != nil {
		return report.Export{}, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(exportHeader); err != nil {
		return report.Export{}, fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return report.Export{}, fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return report.Export{}, fmt.Errorf("failed to flush csv: %w", err)
	}

	return report.Export{
		FileName:    exportFileName(filter, "csv"),
		ContentType: "text/csv",
		Data:        buf.Bytes(),
	}, nil
}

// ExportPDF implements report.ReportService.
func (s *ReportServiceImpl) ExportPDF(ctx context.Context, filter report.ExportFilter) (report.Export, error) {
	rows, err := s.exportRows(ctx, filter)
	if err != nil {
		return report.Export{}, err
	}

	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetTitle("Attendance Report", false)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 10, "Attendance Report")
	pdf.Ln(8)

	pdf.SetFont("Arial", "", 9)
	rangeLabel := "All dates"
	if filter.DateFrom != "" || filter.DateTo != "" {
		rangeLabel = fmt.Sprintf("%s to %s", orDash(filter.DateFrom), orDash(filter.DateTo))
	}
	pdf.Cell(0, 6, rangeLabel)
	pdf.Ln(10)

	widths := []float64{58, 26, 24, 24, 32, 80, 24}

	pdf.SetFont("Arial", "B", 8)
	pdf.SetFillColor(230, 230, 230)
	for i, h := range exportHeader {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 8)
	for _, row := range rows {
		for i, cell := range row {
			if len(cell) > 48 {
				cell = cell[:45] + "..."
			}
			pdf.CellFormat(widths[i], 6, cell, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return report.Export{}, fmt.Errorf("failed to render pdf: %w", err)
	}

	return report.Export{
		FileName:    exportFileName(filter, "pdf"),
		ContentType: "application/pdf",
		Data:        buf.Bytes(),
	}, nil
}

// exportRows resolves permissions, loads the matching records, and renders
// them as table rows. Bounded ranges are padded with Absent rows for
// employees who have no record on a day; open-ended exports list recorded
// days only.
func (s *ReportServiceImpl) exportRows(ctx context.Context, filter report.ExportFilter) ([][]string, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	callerID, _ := claims["employee_id"].(string)
	roleStr, _ := claims["role"].(string)
	role := employee.Role(roleStr)

	// Regular employees export their own records only.
	if role != employee.RoleManager && role != employee.RoleAdmin {
		if filter.EmployeeID != "" && filter.EmployeeID != callerID {
			return nil, employee.ErrNotPermitted
		}
		filter.EmployeeID = callerID
	}

	records, err := s.AttendanceRepository.List(ctx, attendance.ListFilter{
		EmployeeID: filter.EmployeeID,
		DateFrom:   filter.DateFrom,
		DateTo:     filter.DateTo,
		Limit:      exportRowLimit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance for export: %w", err)
	}

	if len(records) == 0 {
		return nil, report.ErrNothingToExport
	}

	dates := fillDates(filter)
	if dates == nil {
		rows := make([][]string, 0, len(records))
		for _, att := range records {
			rows = append(rows, presentRow(att))
		}
		return rows, nil
	}

	roster, err := s.exportRoster(ctx, filter.EmployeeID)
	if err != nil {
		return nil, err
	}

	recorded := make(map[string]attendance.Attendance, len(records))
	for _, att := range records {
		recorded[att.EmployeeID+"|"+att.Date] = att
	}

	rows := make([][]string, 0, len(dates)*len(roster))
	for _, date := range dates {
		for _, emp := range roster {
			if att, ok := recorded[emp.ID+"|"+date]; ok {
				rows = append(rows, presentRow(att))
			} else {
				rows = append(rows, []string{emp.Name, date, "", "", "", "", "Absent"})
			}
		}
	}

	return rows, nil
}

// exportRoster returns the employees a padded export covers: either the
// one selected employee or every active one.
func (s *ReportServiceImpl) exportRoster(ctx context.Context, employeeID string) ([]employee.Employee, error) {
	if employeeID != "" {
		emp, err := s.EmployeeRepository.GetByID(ctx, employeeID)
		if err != nil {
			return nil, fmt.Errorf("failed to get employee for export: %w", err)
		}
		return []employee.Employee{emp}, nil
	}

	all, err := s.EmployeeRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees for export: %w", err)
	}

	active := make([]employee.Employee, 0, len(all))
	for _, emp := range all {
		if emp.IsActive() {
			active = append(active, emp)
		}
	}
	return active, nil
}

// fillDates returns the dates of a bounded range, newest first, or nil
// when the range is open-ended or too large to pad.
func fillDates(filter report.ExportFilter) []string {
	if filter.DateFrom == "" || filter.DateTo == "" {
		return nil
	}

	from, err := time.Parse("2006-01-02", filter.DateFrom)
	if err != nil {
		return nil
	}
	to, err := time.Parse("2006-01-02", filter.DateTo)
	if err != nil || to.Before(from) {
		return nil
	}
	if int(to.Sub(from).Hours()/24) >= absentFillMaxDays {
		return nil
	}

	dates := make([]string, 0)
	for d := to; !d.Before(from); d = d.AddDate(0, 0, -1) {
		dates = append(dates, d.Format("2006-01-02"))
	}
	return dates
}

func presentRow(att attendance.Attendance) []string {
	name := ""
	if att.EmployeeName != nil {
		name = *att.EmployeeName
	}

	duration := ""
	if att.PunchOut != nil {
		duration = fmt.Sprintf("%d", att.WorkingMinutes)
	}

	workLog := ""
	if att.WorkLog != nil {
		workLog = *att.WorkLog
	}

	return []string{
		name,
		att.Date,
		formatClock(att.PunchIn),
		formatClock(att.PunchOut),
		duration,
		workLog,
		"Present",
	}
}

func formatClock(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("15:04")
}

func exportFileName(filter report.ExportFilter, ext string) string {
	suffix := time.Now().Format("20060102")
	if filter.DateFrom != "" && filter.DateTo != "" {
		suffix = filter.DateFrom + "_" + filter.DateTo
	}
	return "attendance_" + suffix + "." + ext
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
