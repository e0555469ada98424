package attendance

import "context"

type ShiftRepository interface {
	Create(ctx context.Context, s WorkShift) (WorkShift, error)
	GetByID(ctx context.Context, id string) (WorkShift, error)
	List(ctx context.Context) ([]WorkShift, error)
	Update(ctx context.Context, s WorkShift) error
	Delete(ctx context.Context, id string) error
}

type ScanRepository interface {
	Create(ctx context.Context, s Scan) (Scan, error)

	// LatestByWorker returns the worker's most recent scan for the duplicate
	// guard; implementations signal "no scans" with pgx.ErrNoRows.
	LatestByWorker(ctx context.Context, workerID string) (Scan, error)
}

type DayRepository interface {
	Create(ctx context.Context, d Day) (Day, error)
	GetByID(ctx context.Context, id string) (Day, error)
	GetByWorkerAndDate(ctx context.Context, workerID, date string) (Day, error)
	ListByRange(ctx context.Context, startDate, endDate string) ([]Day, error)
	Update(ctx context.Context, d Day) error
	Delete(ctx context.Context, id string) error
}

type HolidayRepository interface {
	Create(ctx context.Context, h Holiday) (Holiday, error)
	ListByRange(ctx context.Context, startDate, endDate string) ([]Holiday, error)
	Delete(ctx context.Context, id string) error
}

type WarningRepository interface {
	Create(ctx context.Context, w Warning) (Warning, error)
	ListByRange(ctx context.Context, startDate, endDate string) ([]Warning, error)
	Delete(ctx context.Context, id string) error
}
