package payroll

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tadbir-app/tadbir-backend-go/internal/domain/attendance"
	"github.com/tadbir-app/tadbir-backend-go/internal/domain/payroll"
	"github.com/tadbir-app/tadbir-backend-go/internal/domain/user"
	"github.com/tadbir-app/tadbir-backend-go/internal/domain/worker"
)

// PayrollService computes bonus and salary figures on demand. Results are
// returned directly and never written back.
type PayrollService interface {
	Bonus(ctx context.Context, tenant user.TenantContext, req payroll.PeriodRequest) ([]payroll.BonusRow, error)
	Statement(ctx context.Context, tenant user.TenantContext, req payroll.PeriodRequest) ([]payroll.StatementRow, error)
}

type PayrollServiceImpl struct {
	workers      worker.WorkerRepository
	transactions worker.WorkerTransactionRepository
	days         attendance.DayRepository
	holidays     attendance.HolidayRepository
	warnings     attendance.WarningRepository
}

func NewPayrollService(
	workers worker.WorkerRepository,
	transactions worker.WorkerTransactionRepository,
	days attendance.DayRepository,
	holidays attendance.HolidayRepository,
	warnings attendance.WarningRepository,
) PayrollService {
	return &PayrollServiceImpl{
		workers:      workers,
		transactions: transactions,
		days:         days,
		holidays:     holidays,
		warnings:     warnings,
	}
}

type windowData struct {
	workers  []worker.Worker
	days     []attendance.Day
	holidays []attendance.Holiday
	warnings []attendance.Warning
	start    time.Time
	end      time.Time
}

func (s *PayrollServiceImpl) loadWindow(ctx context.Context, req payroll.PeriodRequest) (windowData, error) {
	start, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return windowData{}, fmt.Errorf("parse start_date: %w", err)
	}
	end, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return windowData{}, fmt.Errorf("parse end_date: %w", err)
	}

	workers, err := s.workers.List(ctx)
	if err != nil {
		return windowData{}, fmt.Errorf("list workers: %w", err)
	}
	days, err := s.days.ListByRange(ctx, req.StartDate, req.EndDate)
	if err != nil {
		return windowData{}, fmt.Errorf("list attendance days: %w", err)
	}
	holidays, err := s.holidays.ListByRange(ctx, req.StartDate, req.EndDate)
	if err != nil {
		return windowData{}, fmt.Errorf("list holidays: %w", err)
	}
	warnings, err := s.warnings.ListByRange(ctx, req.StartDate, req.EndDate)
	if err != nil {
		return windowData{}, fmt.Errorf("list worker warnings: %w", err)
	}

	return windowData{
		workers:  workers,
		days:     days,
		holidays: holidays,
		warnings: warnings,
		start:    start,
		end:      end,
	}, nil
}

func (s *PayrollServiceImpl) Bonus(ctx context.Context, tenant user.TenantContext, req payroll.PeriodRequest) ([]payroll.BonusRow, error) {
	if !tenant.Can(user.PermissionPayrollView) {
		return nil, user.ErrPermissionDenied
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	data, err := s.loadWindow(ctx, req)
	if err != nil {
		return nil, err
	}
	return ComputeBonus(data.workers, data.days, data.holidays, data.warnings, data.start, data.end), nil
}

func (s *PayrollServiceImpl) Statement(ctx context.Context, tenant user.TenantContext, req payroll.PeriodRequest) ([]payroll.StatementRow, error) {
	if !tenant.Can(user.PermissionPayrollView) {
		return nil, user.ErrPermissionDenied
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	data, err := s.loadWindow(ctx, req)
	if err != nil {
		return nil, err
	}

	advanceRows, err := s.transactions.ListByTypeInRange(ctx, worker.TransactionAdvance, req.StartDate, req.EndDate)
	if err != nil {
		return nil, fmt.Errorf("list advances: %w", err)
	}
	advances := make(map[string]decimal.Decimal, len(advanceRows))
	for _, t := range advanceRows {
		advances[t.WorkerID] = advances[t.WorkerID].Add(t.Amount)
	}

	return ComputeStatement(data.workers, data.days, data.holidays, data.warnings, advances, data.start, data.end), nil
}
