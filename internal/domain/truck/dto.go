package truck

import (
	"github.com/shopspring/decimal"
	"github.com/tadbir-app/tadbir-backend-go/internal/pkg/validator"
)

type CreateTruckRequest struct {
	Name                 string           `json:"name"`
	PlateNumber          *string          `json:"plate_number,omitempty"`
	FuelFormula          *decimal.Decimal `json:"fuel_formula,omitempty"`
	DriverWage           *decimal.Decimal `json:"driver_wage,omitempty"`
	DriverCommissionRate *decimal.Decimal `json:"driver_commission_rate,omitempty"`
}

func (r *CreateTruckRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	if r.FuelFormula != nil && r.FuelFormula.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "fuel_formula", Message: "must be non-negative"})
	}
	if r.DriverWage != nil && r.DriverWage.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "driver_wage", Message: "must be non-negative"})
	}
	if r.DriverCommissionRate != nil && r.DriverCommissionRate.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "driver_commission_rate", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateTruckRequest struct {
	ID                   string           `json:"-"`
	Name                 *string          `json:"name,omitempty"`
	PlateNumber          *string          `json:"plate_number,omitempty"`
	FuelFormula          *decimal.Decimal `json:"fuel_formula,omitempty"`
	DriverWage           *decimal.Decimal `json:"driver_wage,omitempty"`
	DriverCommissionRate *decimal.Decimal `json:"driver_commission_rate,omitempty"`
}

func (r *UpdateTruckRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name must not be empty"})
	}
	if r.FuelFormula != nil && r.FuelFormula.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "fuel_formula", Message: "must be non-negative"})
	}
	if r.DriverWage != nil && r.DriverWage.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "driver_wage", Message: "must be non-negative"})
	}
	if r.DriverCommissionRate != nil && r.DriverCommissionRate.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "driver_commission_rate", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CreateTruckExpenseRequest struct {
	TruckID string          `json:"-"`
	Type    string          `json:"type"`
	Title   string          `json:"title"`
	Amount  decimal.Decimal `json:"amount"`
	Note    *string         `json:"note,omitempty"`
	Date    *string         `json:"date,omitempty"`
}

func (r *CreateTruckExpenseRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.Type, []string{string(ExpenseTypeIncome), string(ExpenseTypeExpense)}) {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "type must be income or expense"})
	}
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

type UpdateTruckExpenseRequest struct {
	ID     string          `json:"-"`
	Amount decimal.Decimal `json:"amount"`
}

func (r *UpdateTruckExpenseRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Amount.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "amount must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type TripRequest struct {
	ID                string          `json:"-"`
	TruckID           string          `json:"-"`
	Destination       *string         `json:"destination,omitempty"`
	OldOdometer       decimal.Decimal `json:"old_odometer"`
	NewOdometer       decimal.Decimal `json:"new_odometer"`
	TripFare          decimal.Decimal `json:"trip_fare"`
	FuelExpense       decimal.Decimal `json:"fuel_expense"`
	FoodExpense       decimal.Decimal `json:"food_expense"`
	SparePartsExpense decimal.Decimal `json:"spare_parts_expense"`
	DriverWageEntry   decimal.Decimal `json:"driver_wage_entry"`
	CommissionEntry   decimal.Decimal `json:"commission_entry"`
	Date              *string         `json:"date,omitempty"`
}

func (r *TripRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.NewOdometer.LessThan(r.OldOdometer) {
		errs = append(errs, validator.ValidationError{Field: "new_odometer", Message: "new odometer must not be less than old odometer"})
	}
	for field, amount := range map[string]decimal.Decimal{
		"old_odometer":        r.OldOdometer,
		"trip_fare":           r.TripFare,
		"fuel_expense":        r.FuelExpense,
		"food_expense":        r.FoodExpense,
		"spare_parts_expense": r.SparePartsExpense,
		"driver_wage_entry":   r.DriverWageEntry,
		"commission_entry":    r.CommissionEntry,
	} {
		if amount.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: field, Message: "must be non-negative"})
		}
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

type TruckResponse struct {
	ID                   string          `json:"id"`
	Name                 string          `json:"name"`
	PlateNumber          *string         `json:"plate_number,omitempty"`
	Balance              decimal.Decimal `json:"balance"`
	FuelFormula          decimal.Decimal `json:"fuel_formula"`
	DriverWage           decimal.Decimal `json:"driver_wage"`
	DriverCommissionRate decimal.Decimal `json:"driver_commission_rate"`
	CreatedAt            string          `json:"created_at"`
}

func ToTruckResponse(t Truck) TruckResponse {
	return TruckResponse{
		ID:                   t.ID,
		Name:                 t.Name,
		PlateNumber:          t.PlateNumber,
		Balance:              t.Balance,
		FuelFormula:          t.FuelFormula,
		DriverWage:           t.DriverWage,
		DriverCommissionRate: t.DriverCommissionRate,
		CreatedAt:            t.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

type TruckExpenseResponse struct {
	ID        string          `json:"id"`
	TruckID   string          `json:"truck_id"`
	Type      string          `json:"type"`
	Title     string          `json:"title"`
	Amount    decimal.Decimal `json:"amount"`
	Note      *string         `json:"note,omitempty"`
	Date      *string         `json:"date,omitempty"`
	CreatedAt string          `json:"created_at"`
}

func ToTruckExpenseResponse(e TruckExpense) TruckExpenseResponse {
	return TruckExpenseResponse{
		ID:        e.ID,
		TruckID:   e.TruckID,
		Type:      string(e.Type),
		Title:     e.Title,
		Amount:    e.Amount,
		Note:      e.Note,
		Date:      e.Date,
		CreatedAt: e.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

type TripResponse struct {
	ID                string          `json:"id"`
	TruckID           string          `json:"truck_id"`
	Destination       *string         `json:"destination,omitempty"`
	OldOdometer       decimal.Decimal `json:"old_odometer"`
	NewOdometer       decimal.Decimal `json:"new_odometer"`
	DistanceKM        decimal.Decimal `json:"distance_km"`
	TripFare          decimal.Decimal `json:"trip_fare"`
	FuelExpense       decimal.Decimal `json:"fuel_expense"`
	FoodExpense       decimal.Decimal `json:"food_expense"`
	SparePartsExpense decimal.Decimal `json:"spare_parts_expense"`
	DriverWageEntry   decimal.Decimal `json:"driver_wage_entry"`
	CommissionEntry   decimal.Decimal `json:"commission_entry"`
	ExpectedFuel      decimal.Decimal `json:"expected_fuel"`
	NetResult         decimal.Decimal `json:"net_result"`
	Date              *string         `json:"date,omitempty"`
	CreatedAt         string          `json:"created_at"`
}

func ToTripResponse(t TruckTrip) TripResponse {
	return TripResponse{
		ID:                t.ID,
		TruckID:           t.TruckID,
		Destination:       t.Destination,
		OldOdometer:       t.OldOdometer,
		NewOdometer:       t.NewOdometer,
		DistanceKM:        t.DistanceKM(),
		TripFare:          t.TripFare,
		FuelExpense:       t.FuelExpense,
		FoodExpense:       t.FoodExpense,
		SparePartsExpense: t.SparePartsExpense,
		DriverWageEntry:   t.DriverWageEntry,
		CommissionEntry:   t.CommissionEntry,
		ExpectedFuel:      t.ExpectedFuel,
		NetResult:         t.NetResult,
		Date:              t.Date,
		CreatedAt:         t.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
