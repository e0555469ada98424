package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/tadbir-app/tadbir-backend-go/internal/domain/idempotency"
	"github.com/tadbir-app/tadbir-backend-go/internal/handler/http/middleware"
	"github.com/tadbir-app/tadbir-backend-go/internal/pkg/jwt"
)

func NewRouter(
	JWTService jwt.Service,
	idempotencyRepo idempotency.Repository,
	authHandler AuthHandler,
	companyHandler CompanyHandler,
	transferHandler TransferHandler,
	expenseHandler ExpenseHandler,
	memberHandler MemberHandler,
	truckHandler TruckHandler,
	projectHandler ProjectHandler,
	debtHandler DebtHandler,
	factoryHandler FactoryHandler,
	workerHandler WorkerHandler,
	attendanceHandler AttendanceHandler,
	payrollHandler PayrollHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "tadbir-backend"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "Idempotency-Key"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.RefreshToken)
			r.Post("/logout", authHandler.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))
			r.Use(middleware.Idempotency(idempotencyRepo))

			r.Route("/companies", func(r chi.Router) {
				r.Get("/", companyHandler.List)
				r.Post("/", companyHandler.Create)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", companyHandler.GetByID)
					r.Put("/", companyHandler.Update)
					r.Delete("/", companyHandler.Delete)
				})
			})

			r.Route("/transfers", func(r chi.Router) {
				r.Get("/", transferHandler.List)
				r.Post("/", transferHandler.Create)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", transferHandler.GetByID)
					r.Delete("/", transferHandler.Delete)
					r.Post("/approve", transferHandler.Approve)
					r.Post("/reject", transferHandler.Reject)
				})
			})

			r.Route("/expenses", func(r chi.Router) {
				r.Get("/", expenseHandler.List)
				r.Post("/", expenseHandler.Create)
				r.Put("/{id}", expenseHandler.Update)
				r.Delete("/{id}", expenseHandler.Delete)
			})

			r.Route("/external-funds", func(r chi.Router) {
				r.Get("/", expenseHandler.ListFunds)
				r.Post("/", expenseHandler.CreateFund)
				r.Delete("/{id}", expenseHandler.DeleteFund)
			})

			r.Route("/members", func(r chi.Router) {
				r.Get("/", memberHandler.List)
				r.Post("/", memberHandler.Create)
				r.Route("/{id}", func(r chi.Router) {
					r.Delete("/", memberHandler.Delete)
					r.Get("/transfers", memberHandler.ListTransfers)
					r.Post("/transfers", memberHandler.CreateTransfer)
					r.Delete("/transfers/{transferID}", memberHandler.DeleteTransfer)
				})
			})

			r.Route("/trucks", func(r chi.Router) {
				r.Get("/", truckHandler.List)
				r.Post("/", truckHandler.Create)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", truckHandler.GetByID)
					r.Put("/", truckHandler.Update)
					r.Delete("/", truckHandler.Delete)

					r.Get("/expenses", truckHandler.ListExpenses)
					r.Post("/expenses", truckHandler.CreateExpense)
					r.Put("/expenses/{expenseID}", truckHandler.UpdateExpense)
					r.Delete("/expenses/{expenseID}", truckHandler.DeleteExpense)

					r.Get("/trips", truckHandler.ListTrips)
					r.Post("/trips", truckHandler.CreateTrip)
					r.Put("/trips/{tripID}", truckHandler.UpdateTrip)
					r.Delete("/trips/{tripID}", truckHandler.DeleteTrip)
				})
			})

			r.Route("/projects", func(r chi.Router) {
				r.Get("/", projectHandler.List)
				r.Post("/", projectHandler.Create)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", projectHandler.GetByID)
					r.Delete("/", projectHandler.Delete)

					r.Get("/transactions", projectHandler.ListTransactions)
					r.Post("/transactions", projectHandler.CreateTransaction)
					r.Put("/transactions/{transactionID}", projectHandler.UpdateTransaction)
					r.Delete("/transactions/{transactionID}", projectHandler.DeleteTransaction)
				})
			})

			r.Route("/debts", func(r chi.Router) {
				r.Get("/", debtHandler.List)
				r.Post("/", debtHandler.Create)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", debtHandler.GetByID)
					r.Delete("/", debtHandler.Delete)

					r.Get("/payments", debtHandler.ListPayments)
					r.Post("/payments", debtHandler.CreatePayment)
					r.Delete("/payments/{paymentID}", debtHandler.DeletePayment)
				})
			})

			r.Route("/factory", func(r chi.Router) {
				r.Get("/settings", factoryHandler.GetSettings)

				r.Get("/funds", factoryHandler.ListFunds)
				r.Post("/funds", factoryHandler.CreateFund)
				r.Delete("/funds/{id}", factoryHandler.DeleteFund)

				r.Get("/workshop-expenses", factoryHandler.ListWorkshopExpenses)
				r.Post("/workshop-expenses", factoryHandler.CreateWorkshopExpense)
				r.Put("/workshop-expenses/{id}", factoryHandler.UpdateWorkshopExpense)
				r.Delete("/workshop-expenses/{id}", factoryHandler.DeleteWorkshopExpense)

				r.Route("/stock-items", func(r chi.Router) {
					r.Get("/", factoryHandler.ListStockItems)
					r.Post("/", factoryHandler.CreateStockItem)
					r.Route("/{id}", func(r chi.Router) {
						r.Delete("/", factoryHandler.DeleteStockItem)

						r.Get("/purchases", factoryHandler.ListPurchases)
						r.Post("/purchases", factoryHandler.CreatePurchase)
						r.Delete("/purchases/{purchaseID}", factoryHandler.DeletePurchase)

						r.Get("/consumptions", factoryHandler.ListConsumptions)
						r.Post("/consumptions", factoryHandler.CreateConsumption)
						r.Delete("/consumptions/{consumptionID}", factoryHandler.DeleteConsumption)
					})
				})
			})

			r.Route("/workers", func(r chi.Router) {
				r.Get("/", workerHandler.List)
				r.Post("/", workerHandler.Create)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", workerHandler.GetByID)
					r.Put("/", workerHandler.Update)
					r.Delete("/", workerHandler.Delete)

					r.Get("/transactions", workerHandler.ListTransactions)
					r.Post("/transactions", workerHandler.CreateTransaction)
					r.Delete("/transactions/{transactionID}", workerHandler.DeleteTransaction)

					r.Post("/warnings", attendanceHandler.CreateWarning)
				})
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Route("/shifts", func(r chi.Router) {
					r.Get("/", attendanceHandler.ListShifts)
					r.Post("/", attendanceHandler.CreateShift)
					r.Put("/{id}", attendanceHandler.UpdateShift)
					r.Delete("/{id}", attendanceHandler.DeleteShift)
				})

				r.Post("/scan", attendanceHandler.Scan)

				r.Get("/days", attendanceHandler.ListDays)
				r.Put("/days/{id}", attendanceHandler.UpdateDay)
				r.Delete("/days/{id}", attendanceHandler.DeleteDay)

				r.Get("/holidays", attendanceHandler.ListHolidays)
				r.Post("/holidays", attendanceHandler.CreateHoliday)
				r.Delete("/holidays/{id}", attendanceHandler.DeleteHoliday)

				r.Get("/warnings", attendanceHandler.ListWarnings)
				r.Delete("/warnings/{id}", attendanceHandler.DeleteWarning)
			})

			r.Route("/payroll", func(r chi.Router) {
				r.Get("/bonus", payrollHandler.Bonus)
				r.Get("/statement", payrollHandler.Statement)
			})
		})
	})
	return r
}
