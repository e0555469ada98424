package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/tadbir-app/tadbir-backend-go/internal/domain/truck"
	"github.com/tadbir-app/tadbir-backend-go/internal/pkg/database"
)

type truckRepositoryImpl struct {
	db *database.DB
}

func NewTruckRepository(db *database.DB) truck.TruckRepository {
	return &truckRepositoryImpl{db: db}
}

func (t *truckRepositoryImpl) Create(ctx context.Context, newTruck truck.Truck) (truck.Truck, error) {
	q := GetQuerier(ctx, t.db)

	query := `
		INSERT INTO trucks (name, plate_number, balance, fuel_formula, driver_wage, driver_commission_rate)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, name, plate_number, balance, fuel_formula, driver_wage, driver_commission_rate,
		          created_at, updated_at
	`

	var created truck.Truck
	err := q.QueryRow(ctx, query,
		newTruck.Name, newTruck.PlateNumber, newTruck.Balance, newTruck.FuelFormula,
		newTruck.DriverWage, newTruck.DriverCommissionRate,
	).Scan(&created.ID, &created.Name, &created.PlateNumber, &created.Balance, &created.FuelFormula,
		&created.DriverWage, &created.DriverCommissionRate, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		return truck.Truck{}, err
	}
	return created, nil
}

func (t *truckRepositoryImpl) GetByID(ctx context.Context, id string) (truck.Truck, error) {
	q := GetQuerier(ctx, t.db)

	query := `
		SELECT id, name, plate_number, balance, fuel_formula, driver_wage, driver_commission_rate,
		       created_at, updated_at
		FROM trucks WHERE id = $1
	`

	var found truck.Truck
	err := q.QueryRow(ctx, query, id).
		Scan(&found.ID, &found.Name, &found.PlateNumber, &found.Balance, &found.FuelFormula,
			&found.DriverWage, &found.DriverCommissionRate, &found.CreatedAt, &found.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return truck.Truck{}, truck.ErrTruckNotFound
		}
		return truck.Truck{}, err
	}
	return found, nil
}

func (t *truckRepositoryImpl) List(ctx context.Context) ([]truck.Truck, error) {
	q := GetQuerier(ctx, t.db)

	query := `
		SELECT id, name, plate_number, balance, fuel_formula, driver_wage, driver_commission_rate,
		       created_at, updated_at
		FROM trucks ORDER BY name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var trucks []truck.Truck
	for rows.Next() {
		var tr truck.Truck
		if err := rows.Scan(&tr.ID, &tr.Name, &tr.PlateNumber, &tr.Balance, &tr.FuelFormula,
			&tr.DriverWage, &tr.DriverCommissionRate, &tr.CreatedAt, &tr.UpdatedAt); err != nil {
			return nil, err
		}
		trucks = append(trucks, tr)
	}
	return trucks, rows.Err()
}

func (t *truckRepositoryImpl) Update(ctx context.Context, id string, req truck.UpdateTruckRequest) error {
	q := GetQuerier(ctx, t.db)

	setClauses := map[string]interface{}{}
	if req.Name != nil {
		setClauses["name"] = *req.Name
	}
	if req.PlateNumber != nil {
		setClauses["plate_number"] = *req.PlateNumber
	}
	if req.FuelFormula != nil {
		setClauses["fuel_formula"] = *req.FuelFormula
	}
	if req.DriverWage != nil {
		setClauses["driver_wage"] = *req.DriverWage
	}
	if req.DriverCommissionRate != nil {
		setClauses["driver_commission_rate"] = *req.DriverCommissionRate
	}
	if len(setClauses) == 0 {
		return nil
	}

	query := "UPDATE trucks SET updated_at = NOW()"
	args := []interface{}{}
	i := 1
	for col, val := range setClauses {
		query += fmt.Sprintf(", %s = $%d", col, i)
		args = append(args, val)
		i++
	}
	query += fmt.Sprintf(" WHERE id = $%d", i)
	args = append(args, id)

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return truck.ErrTruckNotFound
	}
	return nil
}

func (t *truckRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, t.db)

	tag, err := q.Exec(ctx, `DELETE FROM trucks WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return truck.ErrTruckNotFound
	}
	return nil
}

func (t *truckRepositoryImpl) AdjustBalance(ctx context.Context, id string, delta decimal.Decimal) error {
	q := GetQuerier(ctx, t.db)

	tag, err := q.Exec(ctx, `
		UPDATE trucks SET balance = balance + $1, updated_at = NOW() WHERE id = $2
	`, delta, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return truck.ErrTruckNotFound
	}
	return nil
}

type truckExpenseRepositoryImpl struct {
	db *database.DB
}

func NewTruckExpenseRepository(db *database.DB) truck.TruckExpenseRepository {
	return &truckExpenseRepositoryImpl{db: db}
}

func (t *truckExpenseRepositoryImpl) Create(ctx context.Context, newExpense truck.TruckExpense) (truck.TruckExpense, error) {
	q := GetQuerier(ctx, t.db)

	query := `
		INSERT INTO truck_expenses (truck_id, type, title, amount, note, date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, truck_id, type, title, amount, note, date, created_at, updated_at
	`

	var created truck.TruckExpense
	err := q.QueryRow(ctx, query,
		newExpense.TruckID, newExpense.Type, newExpense.Title, newExpense.Amount,
		newExpense.Note, newExpense.Date,
	).Scan(&created.ID, &created.TruckID, &created.Type, &created.Title, &created.Amount,
		&created.Note, &created.Date, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		return truck.TruckExpense{}, err
	}
	return created, nil
}

func (t *truckExpenseRepositoryImpl) GetByID(ctx context.Context, id string) (truck.TruckExpense, error) {
	q := GetQuerier(ctx, t.db)

	query := `
		SELECT id, truck_id, type, title, amount, note, date, created_at, updated_at
		FROM truck_expenses WHERE id = $1
	`

	var found truck.TruckExpense
	err := q.QueryRow(ctx, query, id).
		Scan(&found.ID, &found.TruckID, &found.Type, &found.Title, &found.Amount,
			&found.Note, &found.Date, &found.CreatedAt, &found.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return truck.TruckExpense{}, truck.ErrTruckExpenseNotFound
		}
		return truck.TruckExpense{}, err
	}
	return found, nil
}

func (t *truckExpenseRepositoryImpl) ListByTruck(ctx context.Context, truckID string, startDate, endDate *string) ([]truck.TruckExpense, error) {
	q := GetQuerier(ctx, t.db)

	query := `
		SELECT id, truck_id, type, title, amount, note, date, created_at, updated_at
		FROM truck_expenses WHERE truck_id = $1
	`
	args := []interface{}{truckID}
	i := 2

	if startDate != nil {
		query += fmt.Sprintf(" AND COALESCE(date, to_char(created_at, 'YYYY-MM-DD')) >= $%d", i)
		args = append(args, *startDate)
		i++
	}
	if endDate != nil {
		query += fmt.Sprintf(" AND COALESCE(date, to_char(created_at, 'YYYY-MM-DD')) <= $%d", i)
		args = append(args, *endDate)
		i++
	}
	query += " ORDER BY created_at DESC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var expenses []truck.TruckExpense
	for rows.Next() {
		var ex truck.TruckExpense
		if err := rows.Scan(&ex.ID, &ex.TruckID, &ex.Type, &ex.Title, &ex.Amount,
			&ex.Note, &ex.Date, &ex.CreatedAt, &ex.UpdatedAt); err != nil {
			return nil, err
		}
		expenses = append(expenses, ex)
	}
	return expenses, rows.Err()
}

func (t *truckExpenseRepositoryImpl) UpdateAmount(ctx context.Context, id string, amount decimal.Decimal) error {
	q := GetQuerier(ctx, t.db)

	tag, err := q.Exec(ctx, `
		UPDATE truck_expenses SET amount = $1, updated_at = NOW() WHERE id = $2
	`, amount, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return truck.ErrTruckExpenseNotFound
	}
	return nil
}

func (t *truckExpenseRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, t.db)

	tag, err := q.Exec(ctx, `DELETE FROM truck_expenses WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return truck.ErrTruckExpenseNotFound
	}
	return nil
}

type truckTripRepositoryImpl struct {
	db *database.DB
}

func NewTruckTripRepository(db *database.DB) truck.TruckTripRepository {
	return &truckTripRepositoryImpl{db: db}
}

const tripColumns = `id, truck_id, destination, old_odometer, new_odometer, trip_fare,
	fuel_expense, food_expense, spare_parts_expense, driver_wage_entry, commission_entry,
	expected_fuel, net_result, date, created_at, updated_at`

func scanTrip(row pgx.Row) (truck.TruckTrip, error) {
	var tr truck.TruckTrip
	err := row.Scan(&tr.ID, &tr.TruckID, &tr.Destination, &tr.OldOdometer, &tr.NewOdometer,
		&tr.TripFare, &tr.FuelExpense, &tr.FoodExpense, &tr.SparePartsExpense,
		&tr.DriverWageEntry, &tr.CommissionEntry, &tr.ExpectedFuel, &tr.NetResult,
		&tr.Date, &tr.CreatedAt, &tr.UpdatedAt)
	return tr, err
}

func (t *truckTripRepositoryImpl) Create(ctx context.Context, newTrip truck.TruckTrip) (truck.TruckTrip, error) {
	q := GetQuerier(ctx, t.db)

	query := `
		INSERT INTO truck_trips (truck_id, destination, old_odometer, new_odometer, trip_fare,
			fuel_expense, food_expense, spare_parts_expense, driver_wage_entry, commission_entry,
			expected_fuel, net_result, date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING ` + tripColumns

	created, err := scanTrip(q.QueryRow(ctx, query,
		newTrip.TruckID, newTrip.Destination, newTrip.OldOdometer, newTrip.NewOdometer,
		newTrip.TripFare, newTrip.FuelExpense, newTrip.FoodExpense, newTrip.SparePartsExpense,
		newTrip.DriverWageEntry, newTrip.CommissionEntry, newTrip.ExpectedFuel, newTrip.NetResult,
		newTrip.Date))
	if err != nil {
		return truck.TruckTrip{}, err
	}
	return created, nil
}

func (t *truckTripRepositoryImpl) GetByID(ctx context.Context, id string) (truck.TruckTrip, error) {
	q := GetQuerier(ctx, t.db)

	found, err := scanTrip(q.QueryRow(ctx, `SELECT `+tripColumns+` FROM truck_trips WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return truck.TruckTrip{}, truck.ErrTripNotFound
		}
		return truck.TruckTrip{}, err
	}
	return found, nil
}

func (t *truckTripRepositoryImpl) ListByTruck(ctx context.Context, truckID string, startDate, endDate *string) ([]truck.TruckTrip, error) {
	q := GetQuerier(ctx, t.db)

	query := `SELECT ` + tripColumns + ` FROM truck_trips WHERE truck_id = $1`
	args := []interface{}{truckID}
	i := 2

	if startDate != nil {
		query += fmt.Sprintf(" AND COALESCE(date, to_char(created_at, 'YYYY-MM-DD')) >= $%d", i)
		args = append(args, *startDate)
		i++
	}
	if endDate != nil {
		query += fmt.Sprintf(" AND COALESCE(date, to_char(created_at, 'YYYY-MM-DD')) <= $%d", i)
		args = append(args, *endDate)
		i++
	}
	query += " ORDER BY created_at DESC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var trips []truck.TruckTrip
	for rows.Next() {
		tr, err := scanTrip(rows)
		if err != nil {
			return nil, err
		}
		trips = append(trips, tr)
	}
	return trips, rows.Err()
}

func (t *truckTripRepositoryImpl) Update(ctx context.Context, trip truck.TruckTrip) error {
	q := GetQuerier(ctx, t.db)

	tag, err := q.Exec(ctx, `
		UPDATE truck_trips
		SET destination = $1, old_odometer = $2, new_odometer = $3, trip_fare = $4,
			fuel_expense = $5, food_expense = $6, spare_parts_expense = $7,
			driver_wage_entry = $8, commission_entry = $9, expected_fuel = $10,
			net_result = $11, date = $12, updated_at = NOW()
		WHERE id = $13
	`, trip.Destination, trip.OldOdometer, trip.NewOdometer, trip.TripFare,
		trip.FuelExpense, trip.FoodExpense, trip.SparePartsExpense,
		trip.DriverWageEntry, trip.CommissionEntry, trip.ExpectedFuel,
		trip.NetResult, trip.Date, trip.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return truck.ErrTripNotFound
	}
	return nil
}

func (t *truckTripRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, t.db)

	tag, err := q.Exec(ctx, `DELETE FROM truck_trips WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return truck.ErrTripNotFound
	}
	return nil
}
