package report

import "errors"

var (
	ErrNothingToExport = errors.New("no attendance records in the selected range")
)
