package attendance

import "errors"

var (
	ErrShiftNotFound   = errors.New("work shift not found")
	ErrDayNotFound     = errors.New("attendance day not found")
	ErrHolidayNotFound = errors.New("holiday not found")
	ErrWarningNotFound = errors.New("worker warning not found")

	// Scan processing
	ErrScanTooSoon       = errors.New("scan rejected: within 10 minutes of the previous scan")
	ErrAlreadyCheckedIn  = errors.New("worker has already checked in today")
	ErrNotCheckedIn      = errors.New("worker has not checked in yet")
	ErrDayCompleted      = errors.New("attendance day already has both punches")
	ErrInvalidScanType   = errors.New("scan type must be in or out")
)
