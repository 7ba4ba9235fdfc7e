package breaks

import "errors"

// Break domain errors
var (
	ErrBreakNotFound     = errors.New("break not found")
	ErrBreakAlreadyOpen  = errors.New("another break is already in progress")
	ErrBreakAlreadyEnded = errors.New("break has already ended")
	ErrInvalidBreakType  = errors.New("invalid break type")
)
