package attendance

import (
	"github.com/tadbir-app/tadbir-backend-go/internal/pkg/validator"
)

type CreateShiftRequest struct {
	Name                 string `json:"name"`
	StartTime            string `json:"start_time"`
	EndTime              string `json:"end_time"`
	LateToleranceMinutes int    `json:"late_tolerance_minutes"`
	EarlyLeaveMinutes    int    `json:"early_leave_minutes"`
	OvertimeAfterMinutes int    `json:"overtime_after_minutes"`
}

func (r *CreateShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	if _, ok := validator.IsValidTimeOfDay(r.StartTime); !ok {
		errs = append(errs, validator.ValidationError{Field: "start_time", Message: "start_time must be in HH:MM format"})
	}
	if _, ok := validator.IsValidTimeOfDay(r.EndTime); !ok {
		errs = append(errs, validator.ValidationError{Field: "end_time", Message: "end_time must be in HH:MM format"})
	}
	if r.LateToleranceMinutes < 0 {
		errs = append(errs, validator.ValidationError{Field: "late_tolerance_minutes", Message: "must be non-negative"})
	}
	if r.EarlyLeaveMinutes < 0 {
		errs = append(errs, validator.ValidationError{Field: "early_leave_minutes", Message: "must be non-negative"})
	}
	if r.OvertimeAfterMinutes < 0 {
		errs = append(errs, validator.ValidationError{Field: "overtime_after_minutes", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ScanRequest struct {
	WorkerID string `json:"worker_id"`
	Type     string `json:"type"`
}

func (r *ScanRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.WorkerID) {
		errs = append(errs, validator.ValidationError{Field: "worker_id", Message: "worker_id is required"})
	}
	if !validator.IsInSlice(r.Type, []string{string(ScanIn), string(ScanOut)}) {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "type must be in or out"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateDayRequest overwrites attendance day fields verbatim; edited values
// are authoritative.
type UpdateDayRequest struct {
	ID                string  `json:"-"`
	CheckIn           *string `json:"check_in,omitempty"`
	CheckOut          *string `json:"check_out,omitempty"`
	Status            *string `json:"status,omitempty"`
	LateMinutes       *int    `json:"late_minutes,omitempty"`
	EarlyLeaveMinutes *int    `json:"early_leave_minutes,omitempty"`
	OvertimeMinutes   *int    `json:"overtime_minutes,omitempty"`
}

func (r *UpdateDayRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.CheckIn != nil && *r.CheckIn != "" {
		if _, ok := validator.IsValidTimeOfDay(*r.CheckIn); !ok {
			errs = append(errs, validator.ValidationError{Field: "check_in", Message: "check_in must be in HH:MM format"})
		}
	}
	if r.CheckOut != nil && *r.CheckOut != "" {
		if _, ok := validator.IsValidTimeOfDay(*r.CheckOut); !ok {
			errs = append(errs, validator.ValidationError{Field: "check_out", Message: "check_out must be in HH:MM format"})
		}
	}
	if r.Status != nil && !validator.IsInSlice(*r.Status, []string{
		string(StatusPresent), string(StatusLate), string(StatusAbsent),
	}) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "status must be present, late or absent"})
	}
	for field, v := range map[string]*int{
		"late_minutes":        r.LateMinutes,
		"early_leave_minutes": r.EarlyLeaveMinutes,
		"overtime_minutes":    r.OvertimeMinutes,
	} {
		if v != nil && *v < 0 {
			errs = append(errs, validator.ValidationError{Field: field, Message: "must be non-negative"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CreateHolidayRequest struct {
	Date string  `json:"date"`
	Name *string `json:"name,omitempty"`
}

func (r *CreateHolidayRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "date must be in YYYY-MM-DD format"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CreateWarningRequest struct {
	WorkerID string  `json:"-"`
	Date     string  `json:"date"`
	Reason   *string `json:"reason,omitempty"`
}

func (r *CreateWarningRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "date must be in YYYY-MM-DD format"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type DayResponse struct {
	ID                string  `json:"id"`
	WorkerID          string  `json:"worker_id"`
	WorkerName        *string `json:"worker_name,omitempty"`
	Date              string  `json:"date"`
	CheckIn           *string `json:"check_in,omitempty"`
	CheckOut          *string `json:"check_out,omitempty"`
	Status            string  `json:"status"`
	LateMinutes       int     `json:"late_minutes"`
	EarlyLeaveMinutes int     `json:"early_leave_minutes"`
	OvertimeMinutes   int     `json:"overtime_minutes"`
}

func ToDayResponse(d Day) DayResponse {
	return DayResponse{
		ID:                d.ID,
		WorkerID:          d.WorkerID,
		WorkerName:        d.WorkerName,
		Date:              d.Date,
		CheckIn:           d.CheckIn,
		CheckOut:          d.CheckOut,
		Status:            string(d.Status),
		LateMinutes:       d.LateMinutes,
		EarlyLeaveMinutes: d.EarlyLeaveMinutes,
		OvertimeMinutes:   d.OvertimeMinutes,
	}
}

type ShiftResponse struct {
	ID                   string `json:"id"`
	Name                 string `json:"name"`
	StartTime            string `json:"start_time"`
	EndTime              string `json:"end_time"`
	LateToleranceMinutes int    `json:"late_tolerance_minutes"`
	EarlyLeaveMinutes    int    `json:"early_leave_minutes"`
	OvertimeAfterMinutes int    `json:"overtime_after_minutes"`
}

func ToShiftResponse(s WorkShift) ShiftResponse {
	return ShiftResponse{
		ID:                   s.ID,
		Name:                 s.Name,
		StartTime:            s.StartTime,
		EndTime:              s.EndTime,
		LateToleranceMinutes: s.LateToleranceMinutes,
		EarlyLeaveMinutes:    s.EarlyLeaveMinutes,
		OvertimeAfterMinutes: s.OvertimeAfterMinutes,
	}
}
