package report

import (
	"github.com/Rahul-Sharma5/teamtimetracker/internal/pkg/validator"
)

// ExportFilter selects the attendance rows included in an export.
// EmployeeID empty means all employees (Manager or Admin only).
type ExportFilter struct {
	EmployeeID string
	DateFrom   string
	DateTo     string
}

func (f *ExportFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.DateFrom != "" && !validator.IsValidDate(f.DateFrom) {
		errs = append(errs, validator.ValidationError{
			Field:   "date_from",
			Message: "date_from must be in YYYY-MM-DD format",
		})
	}

	if f.DateTo != "" && !validator.IsValidDate(f.DateTo) {
		errs = append(errs, validator.ValidationError{
			Field:   "date_to",
			Message: "date_to must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Export is a generated file ready to stream to the client.
type Export struct {
	FileName    string
	ContentType string
	Data        []byte
}
