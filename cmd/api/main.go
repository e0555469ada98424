package main

import (
	"fmt"
	"net/http"

	"github.com/tadbir-app/tadbir-backend-go/internal/config"
	appHTTP "github.com/tadbir-app/tadbir-backend-go/internal/handler/http"
	"github.com/tadbir-app/tadbir-backend-go/internal/pkg/database"
	"github.com/tadbir-app/tadbir-backend-go/internal/pkg/jwt"
	"github.com/tadbir-app/tadbir-backend-go/internal/repository/postgresql"
	attendanceService "github.com/tadbir-app/tadbir-backend-go/internal/service/attendance"
	serviceAuth "github.com/tadbir-app/tadbir-backend-go/internal/service/auth"
	serviceCompany "github.com/tadbir-app/tadbir-backend-go/internal/service/company"
	debtService "github.com/tadbir-app/tadbir-backend-go/internal/service/debt"
	expenseService "github.com/tadbir-app/tadbir-backend-go/internal/service/expense"
	factoryService "github.com/tadbir-app/tadbir-backend-go/internal/service/factory"
	ledgerService "github.com/tadbir-app/tadbir-backend-go/internal/service/ledger"
	memberService "github.com/tadbir-app/tadbir-backend-go/internal/service/member"
	payrollService "github.com/tadbir-app/tadbir-backend-go/internal/service/payroll"
	projectService "github.com/tadbir-app/tadbir-backend-go/internal/service/project"
	transferService "github.com/tadbir-app/tadbir-backend-go/internal/service/transfer"
	truckService "github.com/tadbir-app/tadbir-backend-go/internal/service/truck"
	workerService "github.com/tadbir-app/tadbir-backend-go/internal/service/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	userRepo := postgresql.NewUserRepository(db)
	companyRepo := postgresql.NewCompanyRepository(db)
	transferRepo := postgresql.NewTransferRepository(db)
	expenseRepo := postgresql.NewExpenseRepository(db)
	externalFundRepo := postgresql.NewExternalFundRepository(db)
	memberRepo := postgresql.NewMemberRepository(db)
	memberTransferRepo := postgresql.NewMemberTransferRepository(db)
	truckRepo := postgresql.NewTruckRepository(db)
	truckExpenseRepo := postgresql.NewTruckExpenseRepository(db)
	truckTripRepo := postgresql.NewTruckTripRepository(db)
	projectRepo := postgresql.NewProjectRepository(db)
	projectTransactionRepo := postgresql.NewProjectTransactionRepository(db)
	debtRepo := postgresql.NewDebtRepository(db)
	debtPaymentRepo := postgresql.NewDebtPaymentRepository(db)
	factorySettingsRepo := postgresql.NewFactorySettingsRepository(db)
	fundEntryRepo := postgresql.NewFundEntryRepository(db)
	workshopExpenseRepo := postgresql.NewWorkshopExpenseRepository(db)
	stockItemRepo := postgresql.NewStockItemRepository(db)
	stockPurchaseRepo := postgresql.NewStockPurchaseRepository(db)
	stockConsumptionRepo := postgresql.NewStockConsumptionRepository(db)
	workerRepo := postgresql.NewWorkerRepository(db)
	workerTransactionRepo := postgresql.NewWorkerTransactionRepository(db)
	shiftRepo := postgresql.NewShiftRepository(db)
	scanRepo := postgresql.NewScanRepository(db)
	dayRepo := postgresql.NewDayRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	warningRepo := postgresql.NewWarningRepository(db)
	idempotencyRepo := postgresql.NewIdempotencyRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	applier := ledgerService.NewApplier(companyRepo, truckRepo, workerRepo, projectRepo, memberRepo, factorySettingsRepo)

	authSvc := serviceAuth.NewAuthService(db, userRepo, companyRepo, JWTService)
	companySvc := serviceCompany.NewCompanyService(companyRepo)
	transferSvc := transferService.NewTransferService(db, transferRepo, companyRepo)
	expenseSvc := expenseService.NewExpenseService(db, expenseRepo, externalFundRepo, applier)
	memberSvc := memberService.NewMemberService(db, memberRepo, memberTransferRepo, applier)
	truckSvc := truckService.NewTruckService(db, truckRepo, truckExpenseRepo, truckTripRepo, applier)
	projectSvc := projectService.NewProjectService(db, projectRepo, projectTransactionRepo, applier)
	debtSvc := debtService.NewDebtService(db, debtRepo, debtPaymentRepo)
	factorySvc := factoryService.NewFactoryService(db, factorySettingsRepo, fundEntryRepo, workshopExpenseRepo, stockItemRepo, stockPurchaseRepo, stockConsumptionRepo, applier)
	workerSvc := workerService.NewWorkerService(db, workerRepo, workerTransactionRepo, applier)
	attendanceSvc := attendanceService.NewAttendanceService(db, shiftRepo, scanRepo, dayRepo, holidayRepo, warningRepo, workerRepo)
	payrollSvc := payrollService.NewPayrollService(workerRepo, workerTransactionRepo, dayRepo, holidayRepo, warningRepo)

	authHandler := appHTTP.NewAuthHandler(JWTService, authSvc)
	companyHandler := appHTTP.NewCompanyHandler(companySvc)
	transferHandler := appHTTP.NewTransferHandler(transferSvc)
	expenseHandler := appHTTP.NewExpenseHandler(expenseSvc)
	memberHandler := appHTTP.NewMemberHandler(memberSvc)
	truckHandler := appHTTP.NewTruckHandler(truckSvc)
	projectHandler := appHTTP.NewProjectHandler(projectSvc)
	debtHandler := appHTTP.NewDebtHandler(debtSvc)
	factoryHandler := appHTTP.NewFactoryHandler(factorySvc)
	workerHandler := appHTTP.NewWorkerHandler(workerSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)

	router := appHTTP.NewRouter(
		JWTService,
		idempotencyRepo,
		authHandler,
		companyHandler,
		transferHandler,
		expenseHandler,
		memberHandler,
		truckHandler,
		projectHandler,
		debtHandler,
		factoryHandler,
		workerHandler,
		attendanceHandler,
		payrollHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
