package shift

import "errors"

var (
	ErrShiftNotFound     = errors.New("shift not found")
	ErrHalfShiftNotFound = errors.New("half shift not found")
	ErrShiftNameExists   = errors.New("a shift with this name already exists")
)
