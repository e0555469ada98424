package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/tadbir-app/tadbir-backend-go/internal/domain/factory"
	"github.com/tadbir-app/tadbir-backend-go/internal/pkg/database"
)

type factorySettingsRepositoryImpl struct {
	db *database.DB
}

func NewFactorySettingsRepository(db *database.DB) factory.SettingsRepository {
	return &factorySettingsRepositoryImpl{db: db}
}

// Get returns the singleton settings row, creating it lazily with a zero
// balance on first access.
func (f *factorySettingsRepositoryImpl) Get(ctx context.Context) (factory.Settings, error) {
	q := GetQuerier(ctx, f.db)

	var s factory.Settings
	err := q.QueryRow(ctx, `SELECT id, balance, updated_at FROM factory_settings LIMIT 1`).
		Scan(&s.ID, &s.Balance, &s.UpdatedAt)
	if err == nil {
		return s, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return factory.Settings{}, err
	}

	err = q.QueryRow(ctx, `
		INSERT INTO factory_settings (balance) VALUES (0)
		RETURNING id, balance, updated_at
	`).Scan(&s.ID, &s.Balance, &s.UpdatedAt)
	if err != nil {
		return factory.Settings{}, err
	}
	return s, nil
}

func (f *factorySettingsRepositoryImpl) AdjustBalance(ctx context.Context, delta decimal.Decimal) error {
	if _, err := f.Get(ctx); err != nil {
		return err
	}

	q := GetQuerier(ctx, f.db)
	_, err := q.Exec(ctx, `UPDATE factory_settings SET balance = balance + $1, updated_at = NOW()`, delta)
	return err
}

type fundEntryRepositoryImpl struct {
	db *database.DB
}

func NewFundEntryRepository(db *database.DB) factory.FundEntryRepository {
	return &fundEntryRepositoryImpl{db: db}
}

func (f *fundEntryRepositoryImpl) Create(ctx context.Context, entry factory.FundEntry) (factory.FundEntry, error) {
	q := GetQuerier(ctx, f.db)

	query := `
		INSERT INTO factory_fund_entries (direction, amount, note, date)
		VALUES ($1, $2, $3, $4)
		RETURNING id, direction, amount, note, date, created_at
	`

	var created factory.FundEntry
	err := q.QueryRow(ctx, query, entry.Direction, entry.Amount, entry.Note, entry.Date).
		Scan(&created.ID, &created.Direction, &created.Amount, &created.Note, &created.Date, &created.CreatedAt)
	if err != nil {
		return factory.FundEntry{}, err
	}
	return created, nil
}

func (f *fundEntryRepositoryImpl) GetByID(ctx context.Context, id string) (factory.FundEntry, error) {
	q := GetQuerier(ctx, f.db)

	query := `SELECT id, direction, amount, note, date, created_at FROM factory_fund_entries WHERE id = $1`

	var found factory.FundEntry
	err := q.QueryRow(ctx, query, id).
		Scan(&found.ID, &found.Direction, &found.Amount, &found.Note, &found.Date, &found.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return factory.FundEntry{}, factory.ErrFundEntryNotFound
		}
		return factory.FundEntry{}, err
	}
	return found, nil
}

func (f *fundEntryRepositoryImpl) List(ctx context.Context) ([]factory.FundEntry, error) {
	q := GetQuerier(ctx, f.db)

	rows, err := q.Query(ctx, `
		SELECT id, direction, amount, note, date, created_at
		FROM factory_fund_entries ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []factory.FundEntry
	for rows.Next() {
		var entry factory.FundEntry
		if err := rows.Scan(&entry.ID, &entry.Direction, &entry.Amount, &entry.Note,
			&entry.Date, &entry.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

func (f *fundEntryRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, f.db)

	tag, err := q.Exec(ctx, `DELETE FROM factory_fund_entries WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return factory.ErrFundEntryNotFound
	}
	return nil
}

type workshopExpenseRepositoryImpl struct {
	db *database.DB
}

func NewWorkshopExpenseRepository(db *database.DB) factory.WorkshopExpenseRepository {
	return &workshopExpenseRepositoryImpl{db: db}
}

func (w *workshopExpenseRepositoryImpl) Create(ctx context.Context, newExpense factory.WorkshopExpense) (factory.WorkshopExpense, error) {
	q := GetQuerier(ctx, w.db)

	query := `
		INSERT INTO workshop_expenses (title, amount, note, date)
		VALUES ($1, $2, $3, $4)
		RETURNING id, title, amount, note, date, created_at, updated_at
	`

	var created factory.WorkshopExpense
	err := q.QueryRow(ctx, query, newExpense.Title, newExpense.Amount, newExpense.Note, newExpense.Date).
		Scan(&created.ID, &created.Title, &created.Amount, &created.Note, &created.Date,
			&created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		return factory.WorkshopExpense{}, err
	}
	return created, nil
}

func (w *workshopExpenseRepositoryImpl) GetByID(ctx context.Context, id string) (factory.WorkshopExpense, error) {
	q := GetQuerier(ctx, w.db)

	query := `SELECT id, title, amount, note, date, created_at, updated_at FROM workshop_expenses WHERE id = $1`

	var found factory.WorkshopExpense
	err := q.QueryRow(ctx, query, id).
		Scan(&found.ID, &found.Title, &found.Amount, &found.Note, &found.Date,
			&found.CreatedAt, &found.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return factory.WorkshopExpense{}, factory.ErrWorkshopExpenseNotFound
		}
		return factory.WorkshopExpense{}, err
	}
	return found, nil
}

func (w *workshopExpenseRepositoryImpl) List(ctx context.Context, startDate, endDate *string) ([]factory.WorkshopExpense, error) {
	q := GetQuerier(ctx, w.db)

	query := `
		SELECT id, title, amount, note, date, created_at, updated_at
		FROM workshop_expenses WHERE 1=1
	`
	args := []interface{}{}
	i := 1

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

	var expenses []factory.WorkshopExpense
	for rows.Next() {
		var ex factory.WorkshopExpense
		if err := rows.Scan(&ex.ID, &ex.Title, &ex.Amount, &ex.Note, &ex.Date,
			&ex.CreatedAt, &ex.UpdatedAt); err != nil {
			return nil, err
		}
		expenses = append(expenses, ex)
	}
	return expenses, rows.Err()
}

func (w *workshopExpenseRepositoryImpl) UpdateAmount(ctx context.Context, id string, amount decimal.Decimal) error {
	q := GetQuerier(ctx, w.db)

	tag, err := q.Exec(ctx, `
		UPDATE workshop_expenses SET amount = $1, updated_at = NOW() WHERE id = $2
	`, amount, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return factory.ErrWorkshopExpenseNotFound
	}
	return nil
}

func (w *workshopExpenseRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, w.db)

	tag, err := q.Exec(ctx, `DELETE FROM workshop_expenses WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return factory.ErrWorkshopExpenseNotFound
	}
	return nil
}

type stockItemRepositoryImpl struct {
	db *database.DB
}

func NewStockItemRepository(db *database.DB) factory.StockItemRepository {
	return &stockItemRepositoryImpl{db: db}
}

func (s *stockItemRepositoryImpl) Create(ctx context.Context, item factory.StockItem) (factory.StockItem, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		INSERT INTO stock_items (kind, name, unit, quantity)
		VALUES ($1, $2, $3, $4)
		RETURNING id, kind, name, unit, quantity, created_at, updated_at
	`

	var created factory.StockItem
	err := q.QueryRow(ctx, query, item.Kind, item.Name, item.Unit, item.Quantity).
		Scan(&created.ID, &created.Kind, &created.Name, &created.Unit, &created.Quantity,
			&created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		return factory.StockItem{}, err
	}
	return created, nil
}

func (s *stockItemRepositoryImpl) GetByID(ctx context.Context, id string) (factory.StockItem, error) {
	q := GetQuerier(ctx, s.db)

	query := `SELECT id, kind, name, unit, quantity, created_at, updated_at FROM stock_items WHERE id = $1`

	var found factory.StockItem
	err := q.QueryRow(ctx, query, id).
		Scan(&found.ID, &found.Kind, &found.Name, &found.Unit, &found.Quantity,
			&found.CreatedAt, &found.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return factory.StockItem{}, factory.ErrStockItemNotFound
		}
		return factory.StockItem{}, err
	}
	return found, nil
}

func (s *stockItemRepositoryImpl) ListByKind(ctx context.Context, kind factory.StockKind) ([]factory.StockItem, error) {
	q := GetQuerier(ctx, s.db)

	rows, err := q.Query(ctx, `
		SELECT id, kind, name, unit, quantity, created_at, updated_at
		FROM stock_items WHERE kind = $1 ORDER BY name
	`, kind)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []factory.StockItem
	for rows.Next() {
		var item factory.StockItem
		if err := rows.Scan(&item.ID, &item.Kind, &item.Name, &item.Unit, &item.Quantity,
			&item.CreatedAt, &item.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (s *stockItemRepositoryImpl) AdjustQuantity(ctx context.Context, id string, delta decimal.Decimal) error {
	q := GetQuerier(ctx, s.db)

	tag, err := q.Exec(ctx, `
		UPDATE stock_items SET quantity = quantity + $1, updated_at = NOW() WHERE id = $2
	`, delta, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return factory.ErrStockItemNotFound
	}
	return nil
}

func (s *stockItemRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, s.db)

	tag, err := q.Exec(ctx, `DELETE FROM stock_items WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return factory.ErrStockItemNotFound
	}
	return nil
}

type stockPurchaseRepositoryImpl struct {
	db *database.DB
}

func NewStockPurchaseRepository(db *database.DB) factory.StockPurchaseRepository {
	return &stockPurchaseRepositoryImpl{db: db}
}

func (s *stockPurchaseRepositoryImpl) Create(ctx context.Context, purchase factory.StockPurchase) (factory.StockPurchase, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		INSERT INTO stock_purchases (item_id, quantity, cost, note, date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, item_id, quantity, cost, note, date, created_at
	`

	var created factory.StockPurchase
	err := q.QueryRow(ctx, query,
		purchase.ItemID, purchase.Quantity, purchase.Cost, purchase.Note, purchase.Date,
	).Scan(&created.ID, &created.ItemID, &created.Quantity, &created.Cost,
		&created.Note, &created.Date, &created.CreatedAt)
	if err != nil {
		return factory.StockPurchase{}, err
	}
	return created, nil
}

func (s *stockPurchaseRepositoryImpl) GetByID(ctx context.Context, id string) (factory.StockPurchase, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		SELECT p.id, p.item_id, p.quantity, p.cost, p.note, p.date, p.created_at, i.name
		FROM stock_purchases p
		JOIN stock_items i ON i.id = p.item_id
		WHERE p.id = $1
	`

	var found factory.StockPurchase
	err := q.QueryRow(ctx, query, id).
		Scan(&found.ID, &found.ItemID, &found.Quantity, &found.Cost, &found.Note,
			&found.Date, &found.CreatedAt, &found.ItemName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return factory.StockPurchase{}, factory.ErrPurchaseNotFound
		}
		return factory.StockPurchase{}, err
	}
	return found, nil
}

func (s *stockPurchaseRepositoryImpl) ListByItem(ctx context.Context, itemID string) ([]factory.StockPurchase, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		SELECT p.id, p.item_id, p.quantity, p.cost, p.note, p.date, p.created_at, i.name
		FROM stock_purchases p
		JOIN stock_items i ON i.id = p.item_id
		WHERE p.item_id = $1
		ORDER BY p.created_at DESC
	`

	rows, err := q.Query(ctx, query, itemID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var purchases []factory.StockPurchase
	for rows.Next() {
		var pur factory.StockPurchase
		if err := rows.Scan(&pur.ID, &pur.ItemID, &pur.Quantity, &pur.Cost, &pur.Note,
			&pur.Date, &pur.CreatedAt, &pur.ItemName); err != nil {
			return nil, err
		}
		purchases = append(purchases, pur)
	}
	return purchases, rows.Err()
}

func (s *stockPurchaseRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, s.db)

	tag, err := q.Exec(ctx, `DELETE FROM stock_purchases WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return factory.ErrPurchaseNotFound
	}
	return nil
}

type stockConsumptionRepositoryImpl struct {
	db *database.DB
}

func NewStockConsumptionRepository(db *database.DB) factory.StockConsumptionRepository {
	return &stockConsumptionRepositoryImpl{db: db}
}

func (s *stockConsumptionRepositoryImpl) Create(ctx context.Context, consumption factory.StockConsumption) (factory.StockConsumption, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		INSERT INTO stock_consumptions (item_id, quantity, note, date)
		VALUES ($1, $2, $3, $4)
		RETURNING id, item_id, quantity, note, date, created_at
	`

	var created factory.StockConsumption
	err := q.QueryRow(ctx, query,
		consumption.ItemID, consumption.Quantity, consumption.Note, consumption.Date,
	).Scan(&created.ID, &created.ItemID, &created.Quantity, &created.Note,
		&created.Date, &created.CreatedAt)
	if err != nil {
		return factory.StockConsumption{}, err
	}
	return created, nil
}

func (s *stockConsumptionRepositoryImpl) GetByID(ctx context.Context, id string) (factory.StockConsumption, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		SELECT c.id, c.item_id, c.quantity, c.note, c.date, c.created_at, i.name
		FROM stock_consumptions c
		JOIN stock_items i ON i.id = c.item_id
		WHERE c.id = $1
	`

	var found factory.StockConsumption
	err := q.QueryRow(ctx, query, id).
		Scan(&found.ID, &found.ItemID, &found.Quantity, &found.Note,
			&found.Date, &found.CreatedAt, &found.ItemName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return factory.StockConsumption{}, factory.ErrConsumptionNotFound
		}
		return factory.StockConsumption{}, err
	}
	return found, nil
}

func (s *stockConsumptionRepositoryImpl) ListByItem(ctx context.Context, itemID string) ([]factory.StockConsumption, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		SELECT c.id, c.item_id, c.quantity, c.note, c.date, c.created_at, i.name
		FROM stock_consumptions c
		JOIN stock_items i ON i.id = c.item_id
		WHERE c.item_id = $1
		ORDER BY c.created_at DESC
	`

	rows, err := q.Query(ctx, query, itemID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var consumptions []factory.StockConsumption
	for rows.Next() {
		var con factory.StockConsumption
		if err := rows.Scan(&con.ID, &con.ItemID, &con.Quantity, &con.Note,
			&con.Date, &con.CreatedAt, &con.ItemName); err != nil {
			return nil, err
		}
		consumptions = append(consumptions, con)
	}
	return consumptions, rows.Err()
}

func (s *stockConsumptionRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, s.db)

	tag, err := q.Exec(ctx, `DELETE FROM stock_consumptions WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return factory.ErrConsumptionNotFound
	}
	return nil
}
