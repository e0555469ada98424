package factory

import (
	"github.com/shopspring/decimal"
	"github.com/tadbir-app/tadbir-backend-go/internal/pkg/validator"
)

type FundRequest struct {
	Direction string          `json:"direction"`
	Amount    decimal.Decimal `json:"amount"`
	Note      *string         `json:"note,omitempty"`
	Date      *string         `json:"date,omitempty"`
}

func (r *FundRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.Direction, []string{string(FundAdd), string(FundWithdraw)}) {
		errs = append(errs, validator.ValidationError{Field: "direction", Message: "direction must be add or withdraw"})
	}
	if !r.Amount.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "amount must be greater than zero"})
	}
	if r.Date != nil && *r.Date != "" {
		if _, ok := validator.IsValidDate(*r.Date); !ok {
			errs = append(errs, validator.ValidationError{Field: "date", Message: "date must be in YYYY-MM-DD format"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CreateWorkshopExpenseRequest struct {
	Title  string          `json:"title"`
	Amount decimal.Decimal `json:"amount"`
	Note   *string         `json:"note,omitempty"`
	Date   *string         `json:"date,omitempty"`
}

func (r *CreateWorkshopExpenseRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{Field: "title", Message: "title is required"})
	}
	if r.Amount.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "amount must be non-negative"})
	}
	if r.Date != nil && *r.Date != "" {
		if _, ok := validator.IsValidDate(*r.Date); !ok {
			errs = append(errs, validator.ValidationError{Field: "date", Message: "date must be in YYYY-MM-DD format"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateWorkshopExpenseRequest struct {
	ID     string          `json:"-"`
	Amount decimal.Decimal `json:"amount"`
}

func (r *UpdateWorkshopExpenseRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Amount.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "amount must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CreateStockItemRequest struct {
	Kind string  `json:"kind"`
	Name string  `json:"name"`
	Unit *string `json:"unit,omitempty"`
}

func (r *CreateStockItemRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.Kind, []string{string(StockSparePart), string(StockRawMaterial)}) {
		errs = append(errs, validator.ValidationError{Field: "kind", Message: "kind must be spare_part or raw_material"})
	}
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PurchaseRequest struct {
	ItemID   string          `json:"-"`
	Quantity decimal.Decimal `json:"quantity"`
	Cost     decimal.Decimal `json:"cost"`
	Note     *string         `json:"note,omitempty"`
	Date     *string         `json:"date,omitempty"`
}

func (r *PurchaseRequest) Validate() error {
	var errs validator.ValidationErrors

	if !r.Quantity.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "quantity", Message: "quantity must be greater than zero"})
	}
	if r.Cost.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "cost", Message: "cost must be non-negative"})
	}
	if r.Date != nil && *r.Date != "" {
		if _, ok := validator.IsValidDate(*r.Date); !ok {
			errs = append(errs, validator.ValidationError{Field: "date", Message: "date must be in YYYY-MM-DD format"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ConsumptionRequest struct {
	ItemID   string          `json:"-"`
	Quantity decimal.Decimal `json:"quantity"`
	Note     *string         `json:"note,omitempty"`
	Date     *string         `json:"date,omitempty"`
}

func (r *ConsumptionRequest) Validate() error {
	var errs validator.ValidationErrors

	if !r.Quantity.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "quantity", Message: "quantity must be greater than zero"})
	}
	if r.Date != nil && *r.Date != "" {
		if _, ok := validator.IsValidDate(*r.Date); !ok {
			errs = append(errs, validator.ValidationError{Field: "date", Message: "date must be in YYYY-MM-DD format"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SettingsResponse struct {
	Balance   decimal.Decimal `json:"balance"`
	UpdatedAt string          `json:"updated_at"`
}

type FundEntryResponse struct {
	ID        string          `json:"id"`
	Direction string          `json:"direction"`
	Amount    decimal.Decimal `json:"amount"`
	Note      *string         `json:"note,omitempty"`
	Date      *string         `json:"date,omitempty"`
	CreatedAt string          `json:"created_at"`
}

func ToFundEntryResponse(e FundEntry) FundEntryResponse {
	return FundEntryResponse{
		ID:        e.ID,
		Direction: string(e.Direction),
		Amount:    e.Amount,
		Note:      e.Note,
		Date:      e.Date,
		CreatedAt: e.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

type WorkshopExpenseResponse struct {
	ID        string          `json:"id"`
	Title     string          `json:"title"`
	Amount    decimal.Decimal `json:"amount"`
	Note      *string         `json:"note,omitempty"`
	Date      *string         `json:"date,omitempty"`
	CreatedAt string          `json:"created_at"`
}

func ToWorkshopExpenseResponse(e WorkshopExpense) WorkshopExpenseResponse {
	return WorkshopExpenseResponse{
		ID:        e.ID,
		Title:     e.Title,
		Amount:    e.Amount,
		Note:      e.Note,
		Date:      e.Date,
		CreatedAt: e.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

type StockItemResponse struct {
	ID        string          `json:"id"`
	Kind      string          `json:"kind"`
	Name      string          `json:"name"`
	Unit      *string         `json:"unit,omitempty"`
	Quantity  decimal.Decimal `json:"quantity"`
	CreatedAt string          `json:"created_at"`
}

func ToStockItemResponse(i StockItem) StockItemResponse {
	return StockItemResponse{
		ID:        i.ID,
		Kind:      string(i.Kind),
		Name:      i.Name,
		Unit:      i.Unit,
		Quantity:  i.Quantity,
		CreatedAt: i.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

type PurchaseResponse struct {
	ID        string          `json:"id"`
	ItemID    string          `json:"item_id"`
	ItemName  *string         `json:"item_name,omitempty"`
	Quantity  decimal.Decimal `json:"quantity"`
	Cost      decimal.Decimal `json:"cost"`
	Note      *string         `json:"note,omitempty"`
	Date      *string         `json:"date,omitempty"`
	CreatedAt string          `json:"created_at"`
}

func ToPurchaseResponse(p StockPurchase) PurchaseResponse {
	return PurchaseResponse{
		ID:        p.ID,
		ItemID:    p.ItemID,
		ItemName:  p.ItemName,
		Quantity:  p.Quantity,
		Cost:      p.Cost,
		Note:      p.Note,
		Date:      p.Date,
		CreatedAt: p.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

type ConsumptionResponse struct {
	ID        string          `json:"id"`
	ItemID    string          `json:"item_id"`
	ItemName  *string         `json:"item_name,omitempty"`
	Quantity  decimal.Decimal `json:"quantity"`
	Note      *string         `json:"note,omitempty"`
	Date      *string         `json:"date,omitempty"`
	CreatedAt string          `json:"created_at"`
}

func ToConsumptionResponse(c StockConsumption) ConsumptionResponse {
	return ConsumptionResponse{
		ID:        c.ID,
		ItemID:    c.ItemID,
		ItemName:  c.ItemName,
		Quantity:  c.Quantity,
		Note:      c.Note,
		Date:      c.Date,
		CreatedAt: c.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
