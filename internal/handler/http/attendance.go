package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/tadbir-app/tadbir-backend-go/internal/domain/attendance"
	"github.com/tadbir-app/tadbir-backend-go/internal/handler/http/response"
	serviceAttendance "github.com/tadbir-app/tadbir-backend-go/internal/service/attendance"
)

type AttendanceHandler interface {
	CreateShift(w http.ResponseWriter, r *http.Request)
	ListShifts(w http.ResponseWriter, r *http.Request)
	UpdateShift(w http.ResponseWriter, r *http.Request)
	DeleteShift(w http.ResponseWriter, r *http.Request)

	Scan(w http.ResponseWriter, r *http.Request)

	ListDays(w http.ResponseWriter, r *http.Request)
	UpdateDay(w http.ResponseWriter, r *http.Request)
	DeleteDay(w http.ResponseWriter, r *http.Request)

	CreateHoliday(w http.ResponseWriter, r *http.Request)
	ListHolidays(w http.ResponseWriter, r *http.Request)
	DeleteHoliday(w http.ResponseWriter, r *http.Request)

	CreateWarning(w http.ResponseWriter, r *http.Request)
	ListWarnings(w http.ResponseWriter, r *http.Request)
	DeleteWarning(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService serviceAttendance.AttendanceService
}

func NewAttendanceHandler(attendanceService serviceAttendance.AttendanceService) AttendanceHandler {
	return &AttendanceHandlerImpl{attendanceService: attendanceService}
}

// CreateShift implements AttendanceHandler.
func (a *AttendanceHandlerImpl) CreateShift(w http.ResponseWriter, r *http.Request) {
	tenant, ok := tenantFrom(w, r)
	if !ok {
		return
	}

	var req attendance.CreateShiftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create shift decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := a.attendanceService.CreateShift(r.Context(), tenant, req)
	if err != nil {
		slog.Error("Create shift service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Work shift created successfully", created)
}

// ListShifts implements AttendanceHandler.
func (a *AttendanceHandlerImpl) ListShifts(w http.ResponseWriter, r *http.Request) {
	tenant, ok := tenantFrom(w, r)
	if !ok {
		return
	}

	shifts, err := a.attendanceService.ListShifts(r.Context(), tenant)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, shifts)
}

// UpdateShift implements AttendanceHandler.
func (a *AttendanceHandlerImpl) UpdateShift(w http.ResponseWriter, r *http.Request) {
	tenant, ok := tenantFrom(w, r)
	if !ok {
		return
	}

	var req attendance.CreateShiftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update shift decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := a.attendanceService.UpdateShift(r.Context(), tenant, chi.URLParam(r, "id"), req); err != nil {
		slog.Error("Update shift service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Work shift updated successfully", nil)
}

// DeleteShift implements AttendanceHandler.
func (a *AttendanceHandlerImpl) DeleteShift(w http.ResponseWriter, r *http.Request) {
	tenant, ok := tenantFrom(w, r)
	if !ok {
		return
	}

	if err := a.attendanceService.DeleteShift(r.Context(), tenant, chi.URLParam(r, "id")); err != nil {
		slog.Error("Delete shift service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Work shift deleted successfully", nil)
}

// Scan implements AttendanceHandler.
func (a *AttendanceHandlerImpl) Scan(w http.ResponseWriter, r *http.Request) {
	tenant, ok := tenantFrom(w, r)
	if !ok {
		return
	}

	var req attendance.ScanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Scan decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	day, err := a.attendanceService.ProcessScan(r.Context(), tenant, req)
	if err != nil {
		slog.Error("Scan service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Scan recorded successfully", day)
}

// ListDays implements AttendanceHandler.
func (a *AttendanceHandlerImpl) ListDays(w http.ResponseWriter, r *http.Request) {
	tenant, ok := tenantFrom(w, r)
	if !ok {
		return
	}

	days, err := a.attendanceService.ListDays(r.Context(), tenant, r.URL.Query().Get("start_date"), r.URL.Query().Get("end_date"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, days)
}

// UpdateDay implements AttendanceHandler.
func (a *AttendanceHandlerImpl) UpdateDay(w http.ResponseWriter, r *http.Request) {
	tenant, ok := tenantFrom(w, r)
	if !ok {
		return
	}

	var req attendance.UpdateDayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update attendance day decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	if err := a.attendanceService.UpdateDay(r.Context(), tenant, req); err != nil {
		slog.Error("Update attendance day service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance day updated successfully", nil)
}

// DeleteDay implements AttendanceHandler.
func (a *AttendanceHandlerImpl) DeleteDay(w http.ResponseWriter, r *http.Request) {
	tenant, ok := tenantFrom(w, r)
	if !ok {
		return
	}

	if err := a.attendanceService.DeleteDay(r.Context(), tenant, chi.URLParam(r, "id")); err != nil {
		slog.Error("Delete attendance day service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance day deleted successfully", nil)
}

// CreateHoliday implements AttendanceHandler.
func (a *AttendanceHandlerImpl) CreateHoliday(w http.ResponseWriter, r *http.Request) {
	tenant, ok := tenantFrom(w, r)
	if !ok {
		return
	}

	var req attendance.CreateHolidayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create holiday decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := a.attendanceService.CreateHoliday(r.Context(), tenant, req)
	if err != nil {
		slog.Error("Create holiday service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Holiday created successfully", created)
}

// ListHolidays implements AttendanceHandler.
func (a *AttendanceHandlerImpl) ListHolidays(w http.ResponseWriter, r *http.Request) {
	tenant, ok := tenantFrom(w, r)
	if !ok {
		return
	}

	holidays, err := a.attendanceService.ListHolidays(r.Context(), tenant, r.URL.Query().Get("start_date"), r.URL.Query().Get("end_date"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, holidays)
}

// DeleteHoliday implements AttendanceHandler.
func (a *AttendanceHandlerImpl) DeleteHoliday(w http.ResponseWriter, r *http.Request) {
	tenant, ok := tenantFrom(w, r)
	if !ok {
		return
	}

	if err := a.attendanceService.DeleteHoliday(r.Context(), tenant, chi.URLParam(r, "id")); err != nil {
		slog.Error("Delete holiday service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Holiday deleted successfully", nil)
}

// CreateWarning implements AttendanceHandler.
func (a *AttendanceHandlerImpl) CreateWarning(w http.ResponseWriter, r *http.Request) {
	tenant, ok := tenantFrom(w, r)
	if !ok {
		return
	}

	var req attendance.CreateWarningRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create warning decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.WorkerID = chi.URLParam(r, "id")

	created, err := a.attendanceService.CreateWarning(r.Context(), tenant, req)
	if err != nil {
		slog.Error("Create warning service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Worker warning created successfully", created)
}

// ListWarnings implements AttendanceHandler.
func (a *AttendanceHandlerImpl) ListWarnings(w http.ResponseWriter, r *http.Request) {
	tenant, ok := tenantFrom(w, r)
	if !ok {
		return
	}

	warnings, err := a.attendanceService.ListWarnings(r.Context(), tenant, r.URL.Query().Get("start_date"), r.URL.Query().Get("end_date"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, warnings)
}

// DeleteWarning implements AttendanceHandler.
func (a *AttendanceHandlerImpl) DeleteWarning(w http.ResponseWriter, r *http.Request) {
	tenant, ok := tenantFrom(w, r)
	if !ok {
		return
	}

	if err := a.attendanceService.DeleteWarning(r.Context(), tenant, chi.URLParam(r, "id")); err != nil {
		slog.Error("Delete warning service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Worker warning deleted successfully", nil)
}
