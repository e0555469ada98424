package postgresql

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/tadbir-app/tadbir-backend-go/internal/domain/attendance"
	"github.com/tadbir-app/tadbir-backend-go/internal/pkg/database"
)

type shiftRepositoryImpl struct {
	db *database.DB
}

func NewShiftRepository(db *database.DB) attendance.ShiftRepository {
	return &shiftRepositoryImpl{db: db}
}

const shiftColumns = `id, name, start_time, end_time, late_tolerance_minutes,
	early_leave_minutes, overtime_after_minutes, created_at, updated_at`

func scanShift(row pgx.Row) (attendance.WorkShift, error) {
	var s attendance.WorkShift
	err := row.Scan(&s.ID, &s.Name, &s.StartTime, &s.EndTime, &s.LateToleranceMinutes,
		&s.EarlyLeaveMinutes, &s.OvertimeAfterMinutes, &s.CreatedAt, &s.UpdatedAt)
	return s, err
}

func (r *shiftRepositoryImpl) Create(ctx context.Context, newShift attendance.WorkShift) (attendance.WorkShift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO work_shifts (name, start_time, end_time, late_tolerance_minutes,
			early_leave_minutes, overtime_after_minutes)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + shiftColumns

	created, err := scanShift(q.QueryRow(ctx, query,
		newShift.Name, newShift.StartTime, newShift.EndTime, newShift.LateToleranceMinutes,
		newShift.EarlyLeaveMinutes, newShift.OvertimeAfterMinutes))
	if err != nil {
		return attendance.WorkShift{}, err
	}
	return created, nil
}

func (r *shiftRepositoryImpl) GetByID(ctx context.Context, id string) (attendance.WorkShift, error) {
	q := GetQuerier(ctx, r.db)

	found, err := scanShift(q.QueryRow(ctx, `SELECT `+shiftColumns+` FROM work_shifts WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.WorkShift{}, attendance.ErrShiftNotFound
		}
		return attendance.WorkShift{}, err
	}
	return found, nil
}

func (r *shiftRepositoryImpl) List(ctx context.Context) ([]attendance.WorkShift, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT `+shiftColumns+` FROM work_shifts ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var shifts []attendance.WorkShift
	for rows.Next() {
		s, err := scanShift(rows)
		if err != nil {
			return nil, err
		}
		shifts = append(shifts, s)
	}
	return shifts, rows.Err()
}

func (r *shiftRepositoryImpl) Update(ctx context.Context, s attendance.WorkShift) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE work_shifts
		SET name = $1, start_time = $2, end_time = $3, late_tolerance_minutes = $4,
			early_leave_minutes = $5, overtime_after_minutes = $6, updated_at = NOW()
		WHERE id = $7
	`, s.Name, s.StartTime, s.EndTime, s.LateToleranceMinutes,
		s.EarlyLeaveMinutes, s.OvertimeAfterMinutes, s.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrShiftNotFound
	}
	return nil
}

func (r *shiftRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM work_shifts WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrShiftNotFound
	}
	return nil
}

type scanRepositoryImpl struct {
	db *database.DB
}

func NewScanRepository(db *database.DB) attendance.ScanRepository {
	return &scanRepositoryImpl{db: db}
}

func (r *scanRepositoryImpl) Create(ctx context.Context, newScan attendance.Scan) (attendance.Scan, error) {
	q := GetQuerier(ctx, r.db)

	if newScan.ID == "" {
		newScan.ID = uuid.New().String()
	}

	query := `
		INSERT INTO attendance_scans (id, worker_id, type, scan_time)
		VALUES ($1, $2, $3, $4)
		RETURNING id, worker_id, type, scan_time
	`

	var created attendance.Scan
	err := q.QueryRow(ctx, query, newScan.ID, newScan.WorkerID, newScan.Type, newScan.ScanTime).
		Scan(&created.ID, &created.WorkerID, &created.Type, &created.ScanTime)
	if err != nil {
		return attendance.Scan{}, err
	}
	return created, nil
}

// LatestByWorker returns pgx.ErrNoRows untouched; the scan processor treats
// that as "no previous scan".
func (r *scanRepositoryImpl) LatestByWorker(ctx context.Context, workerID string) (attendance.Scan, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, worker_id, type, scan_time
		FROM attendance_scans WHERE worker_id = $1
		ORDER BY scan_time DESC LIMIT 1
	`

	var found attendance.Scan
	err := q.QueryRow(ctx, query, workerID).
		Scan(&found.ID, &found.WorkerID, &found.Type, &found.ScanTime)
	if err != nil {
		return attendance.Scan{}, err
	}
	return found, nil
}

type dayRepositoryImpl struct {
	db *database.DB
}

func NewDayRepository(db *database.DB) attendance.DayRepository {
	return &dayRepositoryImpl{db: db}
}

const dayColumns = `d.id, d.worker_id, d.date, d.check_in, d.check_out, d.status,
	d.late_minutes, d.early_leave_minutes, d.overtime_minutes, d.created_at, d.updated_at, w.name`

func scanDay(row pgx.Row) (attendance.Day, error) {
	var d attendance.Day
	err := row.Scan(&d.ID, &d.WorkerID, &d.Date, &d.CheckIn, &d.CheckOut, &d.Status,
		&d.LateMinutes, &d.EarlyLeaveMinutes, &d.OvertimeMinutes,
		&d.CreatedAt, &d.UpdatedAt, &d.WorkerName)
	return d, err
}

func (r *dayRepositoryImpl) Create(ctx context.Context, newDay attendance.Day) (attendance.Day, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_days (worker_id, date, check_in, check_out, status,
			late_minutes, early_leave_minutes, overtime_minutes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, worker_id, date, check_in, check_out, status,
			late_minutes, early_leave_minutes, overtime_minutes, created_at, updated_at
	`

	var created attendance.Day
	err := q.QueryRow(ctx, query,
		newDay.WorkerID, newDay.Date, newDay.CheckIn, newDay.CheckOut, newDay.Status,
		newDay.LateMinutes, newDay.EarlyLeaveMinutes, newDay.OvertimeMinutes,
	).Scan(&created.ID, &created.WorkerID, &created.Date, &created.CheckIn, &created.CheckOut,
		&created.Status, &created.LateMinutes, &created.EarlyLeaveMinutes,
		&created.OvertimeMinutes, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		return attendance.Day{}, err
	}
	return created, nil
}

func (r *dayRepositoryImpl) GetByID(ctx context.Context, id string) (attendance.Day, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + dayColumns + `
		FROM attendance_days d
		JOIN workers w ON w.id = d.worker_id
		WHERE d.id = $1
	`

	found, err := scanDay(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Day{}, attendance.ErrDayNotFound
		}
		return attendance.Day{}, err
	}
	return found, nil
}

func (r *dayRepositoryImpl) GetByWorkerAndDate(ctx context.Context, workerID, date string) (attendance.Day, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + dayColumns + `
		FROM attendance_days d
		JOIN workers w ON w.id = d.worker_id
		WHERE d.worker_id = $1 AND d.date = $2
	`

	found, err := scanDay(q.QueryRow(ctx, query, workerID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Day{}, attendance.ErrDayNotFound
		}
		return attendance.Day{}, err
	}
	return found, nil
}

func (r *dayRepositoryImpl) ListByRange(ctx context.Context, startDate, endDate string) ([]attendance.Day, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + dayColumns + `
		FROM attendance_days d
		JOIN workers w ON w.id = d.worker_id
		WHERE d.date >= $1 AND d.date <= $2
		ORDER BY d.date, w.name
	`

	rows, err := q.Query(ctx, query, startDate, endDate)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var days []attendance.Day
	for rows.Next() {
		d, err := scanDay(rows)
		if err != nil {
			return nil, err
		}
		days = append(days, d)
	}
	return days, rows.Err()
}

func (r *dayRepositoryImpl) Update(ctx context.Context, d attendance.Day) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE attendance_days
		SET check_in = $1, check_out = $2, status = $3, late_minutes = $4,
			early_leave_minutes = $5, overtime_minutes = $6, updated_at = NOW()
		WHERE id = $7
	`, d.CheckIn, d.CheckOut, d.Status, d.LateMinutes,
		d.EarlyLeaveMinutes, d.OvertimeMinutes, d.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrDayNotFound
	}
	return nil
}

func (r *dayRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM attendance_days WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrDayNotFound
	}
	return nil
}

type holidayRepositoryImpl struct {
	db *database.DB
}

func NewHolidayRepository(db *database.DB) attendance.HolidayRepository {
	return &holidayRepositoryImpl{db: db}
}

func (r *holidayRepositoryImpl) Create(ctx context.Context, newHoliday attendance.Holiday) (attendance.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO holidays (date, name)
		VALUES ($1, $2)
		RETURNING id, date, name, created_at
	`

	var created attendance.Holiday
	err := q.QueryRow(ctx, query, newHoliday.Date, newHoliday.Name).
		Scan(&created.ID, &created.Date, &created.Name, &created.CreatedAt)
	if err != nil {
		return attendance.Holiday{}, err
	}
	return created, nil
}

func (r *holidayRepositoryImpl) ListByRange(ctx context.Context, startDate, endDate string) ([]attendance.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT id, date, name, created_at
		FROM holidays WHERE date >= $1 AND date <= $2
		ORDER BY date
	`, startDate, endDate)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var holidays []attendance.Holiday
	for rows.Next() {
		var h attendance.Holiday
		if err := rows.Scan(&h.ID, &h.Date, &h.Name, &h.CreatedAt); err != nil {
			return nil, err
		}
		holidays = append(holidays, h)
	}
	return holidays, rows.Err()
}

func (r *holidayRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM holidays WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrHolidayNotFound
	}
	return nil
}

type warningRepositoryImpl struct {
	db *database.DB
}

func NewWarningRepository(db *database.DB) attendance.WarningRepository {
	return &warningRepositoryImpl{db: db}
}

func (r *warningRepositoryImpl) Create(ctx context.Context, newWarning attendance.Warning) (attendance.Warning, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO worker_warnings (worker_id, date, reason)
		VALUES ($1, $2, $3)
		RETURNING id, worker_id, date, reason, created_at
	`

	var created attendance.Warning
	err := q.QueryRow(ctx, query, newWarning.WorkerID, newWarning.Date, newWarning.Reason).
		Scan(&created.ID, &created.WorkerID, &created.Date, &created.Reason, &created.CreatedAt)
	if err != nil {
		return attendance.Warning{}, err
	}
	return created, nil
}

func (r *warningRepositoryImpl) ListByRange(ctx context.Context, startDate, endDate string) ([]attendance.Warning, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT ww.id, ww.worker_id, ww.date, ww.reason, ww.created_at, w.name
		FROM worker_warnings ww
		JOIN workers w ON w.id = ww.worker_id
		WHERE ww.date >= $1 AND ww.date <= $2
		ORDER BY ww.date
	`, startDate, endDate)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var warnings []attendance.Warning
	for rows.Next() {
		var wn attendance.Warning
		if err := rows.Scan(&wn.ID, &wn.WorkerID, &wn.Date, &wn.Reason, &wn.CreatedAt, &wn.WorkerName); err != nil {
			return nil, err
		}
		warnings = append(warnings, wn)
	}
	return warnings, rows.Err()
}

func (r *warningRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM worker_warnings WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrWarningNotFound
	}
	return nil
}
