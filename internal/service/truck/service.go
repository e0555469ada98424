package truck

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/tadbir-app/tadbir-backend-go/internal/domain/ledger"
	"github.com/tadbir-app/tadbir-backend-go/internal/domain/truck"
	"github.com/tadbir-app/tadbir-backend-go/internal/domain/user"
	"github.com/tadbir-app/tadbir-backend-go/internal/pkg/database"
	"github.com/tadbir-app/tadbir-backend-go/internal/repository/postgresql"
	ledgersvc "github.com/tadbir-app/tadbir-backend-go/internal/service/ledger"
)

type TruckService interface {
	Create(ctx context.Context, tenant user.TenantContext, req truck.CreateTruckRequest) (truck.TruckResponse, error)
	GetByID(ctx context.Context, tenant user.TenantContext, id string) (truck.TruckResponse, error)
	List(ctx context.Context, tenant user.TenantContext) ([]truck.TruckResponse, error)
	Update(ctx context.Context, tenant user.TenantContext, req truck.UpdateTruckRequest) error
	Delete(ctx context.Context, tenant user.TenantContext, id string) error

	CreateExpense(ctx context.Context, tenant user.TenantContext, req truck.CreateTruckExpenseRequest) (truck.TruckExpenseResponse, error)
	ListExpenses(ctx context.Context, tenant user.TenantContext, truckID string, startDate, endDate *string) ([]truck.TruckExpenseResponse, error)
	UpdateExpense(ctx context.Context, tenant user.TenantContext, req truck.UpdateTruckExpenseRequest) error
	DeleteExpense(ctx context.Context, tenant user.TenantContext, id string) error

	CreateTrip(ctx context.Context, tenant user.TenantContext, req truck.TripRequest) (truck.TripResponse, error)
	ListTrips(ctx context.Context, tenant user.TenantContext, truckID string, startDate, endDate *string) ([]truck.TripResponse, error)
	UpdateTrip(ctx context.Context, tenant user.TenantContext, req truck.TripRequest) error
	DeleteTrip(ctx context.Context, tenant user.TenantContext, id string) error
}

type TruckServiceImpl struct {
	db *database.DB
	truck.TruckRepository
	truck.TruckExpenseRepository
	truck.TruckTripRepository
	applier *ledgersvc.Applier
}

func NewTruckService(
	db *database.DB,
	trucks truck.TruckRepository,
	expenses truck.TruckExpenseRepository,
	trips truck.TruckTripRepository,
	applier *ledgersvc.Applier,
) TruckService {
	return &TruckServiceImpl{
		db:                     db,
		TruckRepository:        trucks,
		TruckExpenseRepository: expenses,
		TruckTripRepository:    trips,
		applier:                applier,
	}
}

func (s *TruckServiceImpl) Create(ctx context.Context, tenant user.TenantContext, req truck.CreateTruckRequest) (truck.TruckResponse, error) {
	if !tenant.Can(user.PermissionTruckManage) {
		return truck.TruckResponse{}, user.ErrPermissionDenied
	}
	if err := req.Validate(); err != nil {
		return truck.TruckResponse{}, err
	}

	newTruck := truck.Truck{
		Name:        req.Name,
		PlateNumber: req.PlateNumber,
		Balance:     decimal.Zero,
	}
	if req.FuelFormula != nil {
		newTruck.FuelFormula = *req.FuelFormula
	}
	if req.DriverWage != nil {
		newTruck.DriverWage = *req.DriverWage
	}
	if req.DriverCommissionRate != nil {
		newTruck.DriverCommissionRate = *req.DriverCommissionRate
	}

	created, err := s.TruckRepository.Create(ctx, newTruck)
	if err != nil {
		return truck.TruckResponse{}, fmt.Errorf("create truck: %w", err)
	}
	return truck.ToTruckResponse(created), nil
}

func (s *TruckServiceImpl) GetByID(ctx context.Context, tenant user.TenantContext, id string) (truck.TruckResponse, error) {
	if !tenant.Can(user.PermissionTruckView) {
		return truck.TruckResponse{}, user.ErrPermissionDenied
	}

	found, err := s.TruckRepository.GetByID(ctx, id)
	if err != nil {
		return truck.TruckResponse{}, err
	}
	return truck.ToTruckResponse(found), nil
}

func (s *TruckServiceImpl) List(ctx context.Context, tenant user.TenantContext) ([]truck.TruckResponse, error) {
	if !tenant.Can(user.PermissionTruckView) {
		return nil, user.ErrPermissionDenied
	}

	trucks, err := s.TruckRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list trucks: %w", err)
	}

	responses := make([]truck.TruckResponse, 0, len(trucks))
	for _, t := range trucks {
		responses = append(responses, truck.ToTruckResponse(t))
	}
	return responses, nil
}

func (s *TruckServiceImpl) Update(ctx context.Context, tenant user.TenantContext, req truck.UpdateTruckRequest) error {
	if !tenant.Can(user.PermissionTruckManage) {
		return user.ErrPermissionDenied
	}
	if err := req.Validate(); err != nil {
		return err
	}
	return s.TruckRepository.Update(ctx, req.ID, req)
}

func (s *TruckServiceImpl) Delete(ctx context.Context, tenant user.TenantContext, id string) error {
	if !tenant.Can(user.PermissionTruckManage) {
		return user.ErrPermissionDenied
	}
	return s.TruckRepository.Delete(ctx, id)
}

// CreateExpense records an income or expense line against a truck: both the
// truck balance and the parent balance move by the amount in the line's
// direction.
func (s *TruckServiceImpl) CreateExpense(ctx context.Context, tenant user.TenantContext, req truck.CreateTruckExpenseRequest) (truck.TruckExpenseResponse, error) {
	if !tenant.Can(user.PermissionTruckManage) {
		return truck.TruckExpenseResponse{}, user.ErrPermissionDenied
	}
	if err := req.Validate(); err != nil {
		return truck.TruckExpenseResponse{}, err
	}

	kind := ledger.EventTruckExpense
	if truck.ExpenseType(req.Type) == truck.ExpenseTypeIncome {
		kind = ledger.EventTruckIncome
	}

	var created truck.TruckExpense
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if _, err := s.TruckRepository.GetByID(txCtx, req.TruckID); err != nil {
			return err
		}

		var err error
		created, err = s.TruckExpenseRepository.Create(txCtx, truck.TruckExpense{
			TruckID: req.TruckID,
			Type:    truck.ExpenseType(req.Type),
			Title:   req.Title,
			Amount:  req.Amount,
			Note:    req.Note,
			Date:    req.Date,
		})
		if err != nil {
			return fmt.Errorf("create truck expense: %w", err)
		}
		return s.applier.ApplyEffect(txCtx, ledger.Effect{Kind: kind, SinkID: req.TruckID, Amount: req.Amount})
	})
	if err != nil {
		return truck.TruckExpenseResponse{}, err
	}
	return truck.ToTruckExpenseResponse(created), nil
}

func (s *TruckServiceImpl) ListExpenses(ctx context.Context, tenant user.TenantContext, truckID string, startDate, endDate *string) ([]truck.TruckExpenseResponse, error) {
	if !tenant.Can(user.PermissionTruckView) {
		return nil, user.ErrPermissionDenied
	}

	expenses, err := s.TruckExpenseRepository.ListByTruck(ctx, truckID, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("list truck expenses: %w", err)
	}

	responses := make([]truck.TruckExpenseResponse, 0, len(expenses))
	for _, e := range expenses {
		responses = append(responses, truck.ToTruckExpenseResponse(e))
	}
	return responses, nil
}

func (s *TruckServiceImpl) UpdateExpense(ctx context.Context, tenant user.TenantContext, req truck.UpdateTruckExpenseRequest) error {
	if !tenant.Can(user.PermissionTruckManage) {
		return user.ErrPermissionDenied
	}
	if err := req.Validate(); err != nil {
		return err
	}

	return postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		current, err := s.TruckExpenseRepository.GetByID(txCtx, req.ID)
		if err != nil {
			return err
		}
		kind := ledger.EventTruckExpense
		if current.Type == truck.ExpenseTypeIncome {
			kind = ledger.EventTruckIncome
		}
		if err := s.TruckExpenseRepository.UpdateAmount(txCtx, req.ID, req.Amount); err != nil {
			return fmt.Errorf("update truck expense: %w", err)
		}
		return s.applier.ApplyDiff(txCtx, kind, current.TruckID, current.Amount, req.Amount)
	})
}

func (s *TruckServiceImpl) DeleteExpense(ctx context.Context, tenant user.TenantContext, id string) error {
	if !tenant.Can(user.PermissionTruckManage) {
		return user.ErrPermissionDenied
	}

	return postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		current, err := s.TruckExpenseRepository.GetByID(txCtx, id)
		if err != nil {
			return err
		}
		kind := ledger.EventTruckExpense
		if current.Type == truck.ExpenseTypeIncome {
			kind = ledger.EventTruckIncome
		}
		if err := s.TruckExpenseRepository.Delete(txCtx, id); err != nil {
			return err
		}
		return s.applier.Reverse(txCtx, ledger.Effect{Kind: kind, SinkID: current.TruckID, Amount: current.Amount})
	})
}

// CreateTrip records a round trip: expected fuel and net result are derived
// from the itemized figures and the truck's fuel formula, and the signed net
// result lands on both the truck and parent balances.
func (s *TruckServiceImpl) CreateTrip(ctx context.Context, tenant user.TenantContext, req truck.TripRequest) (truck.TripResponse, error) {
	if !tenant.Can(user.PermissionTruckManage) {
		return truck.TripResponse{}, user.ErrPermissionDenied
	}
	if err := req.Validate(); err != nil {
		return truck.TripResponse{}, err
	}

	var created truck.TruckTrip
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		owner, err := s.TruckRepository.GetByID(txCtx, req.TruckID)
		if err != nil {
			return err
		}

		trip := tripFromRequest(req)
		trip.ComputeDerived(owner.FuelFormula)

		created, err = s.TruckTripRepository.Create(txCtx, trip)
		if err != nil {
			return fmt.Errorf("create truck trip: %w", err)
		}
		return s.applier.ApplyEffect(txCtx, ledger.Effect{
			Kind:   ledger.EventTruckTrip,
			SinkID: req.TruckID,
			Amount: created.NetResult,
		})
	})
	if err != nil {
		return truck.TripResponse{}, err
	}
	return truck.ToTripResponse(created), nil
}

func (s *TruckServiceImpl) ListTrips(ctx context.Context, tenant user.TenantContext, truckID string, startDate, endDate *string) ([]truck.TripResponse, error) {
	if !tenant.Can(user.PermissionTruckView) {
		return nil, user.ErrPermissionDenied
	}

	trips, err := s.TruckTripRepository.ListByTruck(ctx, truckID, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("list truck trips: %w", err)
	}

	responses := make([]truck.TripResponse, 0, len(trips))
	for _, t := range trips {
		responses = append(responses, truck.ToTripResponse(t))
	}
	return responses, nil
}

// UpdateTrip recomputes derived figures and applies only the difference
// between the old and new net result to the balances.
func (s *TruckServiceImpl) UpdateTrip(ctx context.Context, tenant user.TenantContext, req truck.TripRequest) error {
	if !tenant.Can(user.PermissionTruckManage) {
		return user.ErrPermissionDenied
	}
	if err := req.Validate(); err != nil {
		return err
	}

	return postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		current, err := s.TruckTripRepository.GetByID(txCtx, req.ID)
		if err != nil {
			return err
		}
		owner, err := s.TruckRepository.GetByID(txCtx, current.TruckID)
		if err != nil {
			return err
		}

		updated := tripFromRequest(req)
		updated.ID = current.ID
		updated.TruckID = current.TruckID
		updated.ComputeDerived(owner.FuelFormula)

		if err := s.TruckTripRepository.Update(txCtx, updated); err != nil {
			return fmt.Errorf("update truck trip: %w", err)
		}
		return s.applier.ApplyDiff(txCtx, ledger.EventTruckTrip, current.TruckID, current.NetResult, updated.NetResult)
	})
}

func (s *TruckServiceImpl) DeleteTrip(ctx context.Context, tenant user.TenantContext, id string) error {
	if !tenant.Can(user.PermissionTruckManage) {
		return user.ErrPermissionDenied
	}

	return postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		current, err := s.TruckTripRepository.GetByID(txCtx, id)
		if err != nil {
			return err
		}
		if err := s.TruckTripRepository.Delete(txCtx, id); err != nil {
			return err
		}
		return s.applier.Reverse(txCtx, ledger.Effect{
			Kind:   ledger.EventTruckTrip,
			SinkID: current.TruckID,
			Amount: current.NetResult,
		})
	})
}

func tripFromRequest(req truck.TripRequest) truck.TruckTrip {
	return truck.TruckTrip{
		TruckID:           req.TruckID,
		Destination:       req.Destination,
		OldOdometer:       req.OldOdometer,
		NewOdometer:       req.NewOdometer,
		TripFare:          req.TripFare,
		FuelExpense:       req.FuelExpense,
		FoodExpense:       req.FoodExpense,
		SparePartsExpense: req.SparePartsExpense,
		DriverWageEntry:   req.DriverWageEntry,
		CommissionEntry:   req.CommissionEntry,
		Date:              req.Date,
	}
}
