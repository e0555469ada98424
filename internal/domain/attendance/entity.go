package attendance

import (
	"time"

	"github.com/shopspring/decimal"
)

// WorkShift is pure configuration consumed when processing scans.
type WorkShift struct {
	ID                   string
	Name                 string
	StartTime            string // HH:MM
	EndTime              string // HH:MM
	LateToleranceMinutes int
	EarlyLeaveMinutes    int
	OvertimeAfterMinutes int
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

type ScanType string

const (
	ScanIn  ScanType = "in"
	ScanOut ScanType = "out"
)

// Scan is a raw punch event.
type Scan struct {
	ID       string
	WorkerID string
	Type     ScanType
	ScanTime time.Time
}

type DayStatus string

const (
	StatusPresent DayStatus = "present"
	StatusLate    DayStatus = "late"
	StatusAbsent  DayStatus = "absent"
)

// Day is the derived per-(worker, date) attendance row. Created on the first
// "in" scan, completed on the matching "out" scan. Manual edits are
// authoritative and never recomputed.
type Day struct {
	ID                string
	WorkerID          string
	Date              string // YYYY-MM-DD
	CheckIn           *string
	CheckOut          *string
	Status            DayStatus
	LateMinutes       int
	EarlyLeaveMinutes int
	OvertimeMinutes   int
	CreatedAt         time.Time
	UpdatedAt         time.Time

	WorkerName *string
}

// Completed reports whether both punches exist; a completed day rejects
// further scans.
func (d Day) Completed() bool {
	return d.CheckIn != nil && d.CheckOut != nil
}

type Holiday struct {
	ID        string
	Date      string // YYYY-MM-DD
	Name      *string
	CreatedAt time.Time
}

type Warning struct {
	ID        string
	WorkerID  string
	Date      string // YYYY-MM-DD
	Reason    *string
	CreatedAt time.Time

	WorkerName *string
}

// PenaltyWeight constants used by the bonus/payroll aggregation.
var (
	PenaltyAbsenceSaturday = decimal.NewFromFloat(2.0)
	PenaltyAbsenceWeekday  = decimal.NewFromFloat(1.5)
	PenaltyLate            = decimal.NewFromFloat(0.5)
	PenaltyWarning         = decimal.NewFromFloat(0.5)
)
