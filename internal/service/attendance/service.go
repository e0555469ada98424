package attendance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/tadbir-app/tadbir-backend-go/internal/domain/attendance"
	"github.com/tadbir-app/tadbir-backend-go/internal/domain/user"
	"github.com/tadbir-app/tadbir-backend-go/internal/domain/worker"
	"github.com/tadbir-app/tadbir-backend-go/internal/pkg/database"
	"github.com/tadbir-app/tadbir-backend-go/internal/repository/postgresql"
)

type AttendanceService interface {
	CreateShift(ctx context.Context, tenant user.TenantContext, req attendance.CreateShiftRequest) (attendance.ShiftResponse, error)
	ListShifts(ctx context.Context, tenant user.TenantContext) ([]attendance.ShiftResponse, error)
	UpdateShift(ctx context.Context, tenant user.TenantContext, id string, req attendance.CreateShiftRequest) error
	DeleteShift(ctx context.Context, tenant user.TenantContext, id string) error

	// ProcessScan runs the punch state machine and returns the affected day.
	ProcessScan(ctx context.Context, tenant user.TenantContext, req attendance.ScanRequest) (attendance.DayResponse, error)

	ListDays(ctx context.Context, tenant user.TenantContext, startDate, endDate string) ([]attendance.DayResponse, error)
	UpdateDay(ctx context.Context, tenant user.TenantContext, req attendance.UpdateDayRequest) error
	DeleteDay(ctx context.Context, tenant user.TenantContext, id string) error

	CreateHoliday(ctx context.Context, tenant user.TenantContext, req attendance.CreateHolidayRequest) (attendance.Holiday, error)
	ListHolidays(ctx context.Context, tenant user.TenantContext, startDate, endDate string) ([]attendance.Holiday, error)
	DeleteHoliday(ctx context.Context, tenant user.TenantContext, id string) error

	CreateWarning(ctx context.Context, tenant user.TenantContext, req attendance.CreateWarningRequest) (attendance.Warning, error)
	ListWarnings(ctx context.Context, tenant user.TenantContext, startDate, endDate string) ([]attendance.Warning, error)
	DeleteWarning(ctx context.Context, tenant user.TenantContext, id string) error
}

type AttendanceServiceImpl struct {
	db *database.DB
	attendance.ShiftRepository
	attendance.ScanRepository
	attendance.DayRepository
	attendance.HolidayRepository
	attendance.WarningRepository
	workers worker.WorkerRepository
}

func NewAttendanceService(
	db *database.DB,
	shifts attendance.ShiftRepository,
	scans attendance.ScanRepository,
	days attendance.DayRepository,
	holidays attendance.HolidayRepository,
	warnings attendance.WarningRepository,
	workers worker.WorkerRepository,
) AttendanceService {
	return &AttendanceServiceImpl{
		db:                db,
		ShiftRepository:   shifts,
		ScanRepository:    scans,
		DayRepository:     days,
		HolidayRepository: holidays,
		WarningRepository: warnings,
		workers:           workers,
	}
}

func (s *AttendanceServiceImpl) CreateShift(ctx context.Context, tenant user.TenantContext, req attendance.CreateShiftRequest) (attendance.ShiftResponse, error) {
	if !tenant.Can(user.PermissionAttendanceManage) {
		return attendance.ShiftResponse{}, user.ErrPermissionDenied
	}
	if err := req.Validate(); err != nil {
		return attendance.ShiftResponse{}, err
	}

	created, err := s.ShiftRepository.Create(ctx, attendance.WorkShift{
		Name:                 req.Name,
		StartTime:            req.StartTime,
		EndTime:              req.EndTime,
		LateToleranceMinutes: req.LateToleranceMinutes,
		EarlyLeaveMinutes:    req.EarlyLeaveMinutes,
		OvertimeAfterMinutes: req.OvertimeAfterMinutes,
	})
	if err != nil {
		return attendance.ShiftResponse{}, fmt.Errorf("create work shift: %w", err)
	}
	return attendance.ToShiftResponse(created), nil
}

func (s *AttendanceServiceImpl) ListShifts(ctx context.Context, tenant user.TenantContext) ([]attendance.ShiftResponse, error) {
	if !tenant.Can(user.PermissionAttendanceView) {
		return nil, user.ErrPermissionDenied
	}

	shifts, err := s.ShiftRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list work shifts: %w", err)
	}

	responses := make([]attendance.ShiftResponse, 0, len(shifts))
	for _, sh := range shifts {
		responses = append(responses, attendance.ToShiftResponse(sh))
	}
	return responses, nil
}

func (s *AttendanceServiceImpl) UpdateShift(ctx context.Context, tenant user.TenantContext, id string, req attendance.CreateShiftRequest) error {
	if !tenant.Can(user.PermissionAttendanceManage) {
		return user.ErrPermissionDenied
	}
	if err := req.Validate(); err != nil {
		return err
	}

	return s.ShiftRepository.Update(ctx, attendance.WorkShift{
		ID:                   id,
		Name:                 req.Name,
		StartTime:            req.StartTime,
		EndTime:              req.EndTime,
		LateToleranceMinutes: req.LateToleranceMinutes,
		EarlyLeaveMinutes:    req.EarlyLeaveMinutes,
		OvertimeAfterMinutes: req.OvertimeAfterMinutes,
	})
}

func (s *AttendanceServiceImpl) DeleteShift(ctx context.Context, tenant user.TenantContext, id string) error {
	if !tenant.Can(user.PermissionAttendanceManage) {
		return user.ErrPermissionDenied
	}
	return s.ShiftRepository.Delete(ctx, id)
}

func (s *AttendanceServiceImpl) ProcessScan(ctx context.Context, tenant user.TenantContext, req attendance.ScanRequest) (attendance.DayResponse, error) {
	if !tenant.Can(user.PermissionAttendanceManage) {
		return attendance.DayResponse{}, user.ErrPermissionDenied
	}
	if err := req.Validate(); err != nil {
		return attendance.DayResponse{}, err
	}

	now := time.Now()

	var day attendance.Day
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		w, err := s.workers.GetByID(txCtx, req.WorkerID)
		if err != nil {
			return err
		}

		latest, err := s.ScanRepository.LatestByWorker(txCtx, req.WorkerID)
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			// first ever scan for this worker
		case err != nil:
			return fmt.Errorf("load latest scan: %w", err)
		case now.Sub(latest.ScanTime) < duplicateScanWindow:
			return attendance.ErrScanTooSoon
		}

		shift, err := s.shiftFor(txCtx, w)
		if err != nil {
			return err
		}

		if _, err := s.ScanRepository.Create(txCtx, attendance.Scan{
			WorkerID: req.WorkerID,
			Type:     attendance.ScanType(req.Type),
			ScanTime: now,
		}); err != nil {
			return fmt.Errorf("record scan: %w", err)
		}

		switch attendance.ScanType(req.Type) {
		case attendance.ScanIn:
			day, err = s.applyCheckIn(txCtx, req.WorkerID, shift, now)
		case attendance.ScanOut:
			day, err = s.applyCheckOut(txCtx, req.WorkerID, shift, now)
		default:
			err = attendance.ErrInvalidScanType
		}
		return err
	})
	if err != nil {
		return attendance.DayResponse{}, err
	}
	return attendance.ToDayResponse(day), nil
}

// shiftFor resolves the worker's assigned shift. A missing assignment, or a
// dangling shift id, means the worker is tracked without shift rules.
func (s *AttendanceServiceImpl) shiftFor(ctx context.Context, w worker.Worker) (*attendance.WorkShift, error) {
	if w.ShiftID == nil {
		return nil, nil
	}
	shift, err := s.ShiftRepository.GetByID(ctx, *w.ShiftID)
	if errors.Is(err, attendance.ErrShiftNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load shift: %w", err)
	}
	return &shift, nil
}

func (s *AttendanceServiceImpl) applyCheckIn(ctx context.Context, workerID string, shift *attendance.WorkShift, now time.Time) (attendance.Day, error) {
	date := now.Format("2006-01-02")
	checkIn := now.Format("15:04")
	lateMinutes, status := checkInResult(shift, now)

	day, err := s.DayRepository.GetByWorkerAndDate(ctx, workerID, date)
	if errors.Is(err, attendance.ErrDayNotFound) {
		created, err := s.DayRepository.Create(ctx, attendance.Day{
			WorkerID:    workerID,
			Date:        date,
			CheckIn:     &checkIn,
			Status:      status,
			LateMinutes: lateMinutes,
		})
		if err != nil {
			return attendance.Day{}, fmt.Errorf("create attendance day: %w", err)
		}
		return created, nil
	}
	if err != nil {
		return attendance.Day{}, err
	}

	if day.Completed() {
		return attendance.Day{}, attendance.ErrDayCompleted
	}
	if day.CheckIn != nil {
		return attendance.Day{}, attendance.ErrAlreadyCheckedIn
	}

	day.CheckIn = &checkIn
	day.Status = status
	day.LateMinutes = lateMinutes
	if err := s.DayRepository.Update(ctx, day); err != nil {
		return attendance.Day{}, fmt.Errorf("update attendance day: %w", err)
	}
	return day, nil
}

func (s *AttendanceServiceImpl) applyCheckOut(ctx context.Context, workerID string, shift *attendance.WorkShift, now time.Time) (attendance.Day, error) {
	date := now.Format("2006-01-02")
	checkOut := now.Format("15:04")

	day, err := s.DayRepository.GetByWorkerAndDate(ctx, workerID, date)
	if errors.Is(err, attendance.ErrDayNotFound) {
		return attendance.Day{}, attendance.ErrNotCheckedIn
	}
	if err != nil {
		return attendance.Day{}, err
	}

	if day.CheckIn == nil {
		return attendance.Day{}, attendance.ErrNotCheckedIn
	}
	if day.CheckOut != nil {
		return attendance.Day{}, attendance.ErrDayCompleted
	}

	earlyLeave, overtime, status := checkOutResult(shift, day.LateMinutes, now)
	day.CheckOut = &checkOut
	day.Status = status
	day.EarlyLeaveMinutes = earlyLeave
	day.OvertimeMinutes = overtime
	if err := s.DayRepository.Update(ctx, day); err != nil {
		return attendance.Day{}, fmt.Errorf("update attendance day: %w", err)
	}
	return day, nil
}

func (s *AttendanceServiceImpl) ListDays(ctx context.Context, tenant user.TenantContext, startDate, endDate string) ([]attendance.DayResponse, error) {
	if !tenant.Can(user.PermissionAttendanceView) {
		return nil, user.ErrPermissionDenied
	}

	days, err := s.DayRepository.ListByRange(ctx, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("list attendance days: %w", err)
	}

	responses := make([]attendance.DayResponse, 0, len(days))
	for _, d := range days {
		responses = append(responses, attendance.ToDayResponse(d))
	}
	return responses, nil
}

// UpdateDay overwrites the provided fields verbatim. Corrections made here
// are authoritative; nothing is recomputed from scans afterwards.
func (s *AttendanceServiceImpl) UpdateDay(ctx context.Context, tenant user.TenantContext, req attendance.UpdateDayRequest) error {
	if !tenant.Can(user.PermissionAttendanceManage) {
		return user.ErrPermissionDenied
	}
	if err := req.Validate(); err != nil {
		return err
	}

	day, err := s.DayRepository.GetByID(ctx, req.ID)
	if err != nil {
		return err
	}

	if req.CheckIn != nil {
		day.CheckIn = req.CheckIn
	}
	if req.CheckOut != nil {
		day.CheckOut = req.CheckOut
	}
	if req.Status != nil {
		day.Status = attendance.DayStatus(*req.Status)
	}
	if req.LateMinutes != nil {
		day.LateMinutes = *req.LateMinutes
	}
	if req.EarlyLeaveMinutes != nil {
		day.EarlyLeaveMinutes = *req.EarlyLeaveMinutes
	}
	if req.OvertimeMinutes != nil {
		day.OvertimeMinutes = *req.OvertimeMinutes
	}
	return s.DayRepository.Update(ctx, day)
}

func (s *AttendanceServiceImpl) DeleteDay(ctx context.Context, tenant user.TenantContext, id string) error {
	if !tenant.Can(user.PermissionAttendanceManage) {
		return user.ErrPermissionDenied
	}
	return s.DayRepository.Delete(ctx, id)
}

func (s *AttendanceServiceImpl) CreateHoliday(ctx context.Context, tenant user.TenantContext, req attendance.CreateHolidayRequest) (attendance.Holiday, error) {
	if !tenant.Can(user.PermissionAttendanceManage) {
		return attendance.Holiday{}, user.ErrPermissionDenied
	}
	if err := req.Validate(); err != nil {
		return attendance.Holiday{}, err
	}

	created, err := s.HolidayRepository.Create(ctx, attendance.Holiday{
		Date: req.Date,
		Name: req.Name,
	})
	if err != nil {
		return attendance.Holiday{}, fmt.Errorf("create holiday: %w", err)
	}
	return created, nil
}

func (s *AttendanceServiceImpl) ListHolidays(ctx context.Context, tenant user.TenantContext, startDate, endDate string) ([]attendance.Holiday, error) {
	if !tenant.Can(user.PermissionAttendanceView) {
		return nil, user.ErrPermissionDenied
	}

	holidays, err := s.HolidayRepository.ListByRange(ctx, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("list holidays: %w", err)
	}
	return holidays, nil
}

func (s *AttendanceServiceImpl) DeleteHoliday(ctx context.Context, tenant user.TenantContext, id string) error {
	if !tenant.Can(user.PermissionAttendanceManage) {
		return user.ErrPermissionDenied
	}
	return s.HolidayRepository.Delete(ctx, id)
}

func (s *AttendanceServiceImpl) CreateWarning(ctx context.Context, tenant user.TenantContext, req attendance.CreateWarningRequest) (attendance.Warning, error) {
	if !tenant.Can(user.PermissionAttendanceManage) {
		return attendance.Warning{}, user.ErrPermissionDenied
	}
	if err := req.Validate(); err != nil {
		return attendance.Warning{}, err
	}

	if _, err := s.workers.GetByID(ctx, req.WorkerID); err != nil {
		return attendance.Warning{}, err
	}

	created, err := s.WarningRepository.Create(ctx, attendance.Warning{
		WorkerID: req.WorkerID,
		Date:     req.Date,
		Reason:   req.Reason,
	})
	if err != nil {
		return attendance.Warning{}, fmt.Errorf("create worker warning: %w", err)
	}
	return created, nil
}

func (s *AttendanceServiceImpl) ListWarnings(ctx context.Context, tenant user.TenantContext, startDate, endDate string) ([]attendance.Warning, error) {
	if !tenant.Can(user.PermissionAttendanceView) {
		return nil, user.ErrPermissionDenied
	}

	warnings, err := s.WarningRepository.ListByRange(ctx, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("list worker warnings: %w", err)
	}
	return warnings, nil
}

func (s *AttendanceServiceImpl) DeleteWarning(ctx context.Context, tenant user.TenantContext, id string) error {
	if !tenant.Can(user.PermissionAttendanceManage) {
		return user.ErrPermissionDenied
	}
	return s.WarningRepository.Delete(ctx, id)
}
