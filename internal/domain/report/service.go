package report

import "context"

type ReportService interface {
	// ExportCSV renders matching attendance rows as a CSV file. Returns
	// ErrNothingToExport when the range matches no records. Exporting
	// other employees requires Manager or Admin.
	ExportCSV(ctx context.Context, filter ExportFilter) (Export, error)

	// ExportPDF renders the same rows as a tabular PDF document.
	ExportPDF(ctx context.Context, filter ExportFilter) (Export, error)
}
