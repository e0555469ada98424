package http

import (
	"net/http"

	"github.com/tadbir-app/tadbir-backend-go/internal/domain/payroll"
	"github.com/tadbir-app/tadbir-backend-go/internal/handler/http/response"
	servicePayroll "github.com/tadbir-app/tadbir-backend-go/internal/service/payroll"
)

type PayrollHandler interface {
	Bonus(w http.ResponseWriter, r *http.Request)
	Statement(w http.ResponseWriter, r *http.Request)
}

type PayrollHandlerImpl struct {
	payrollService servicePayroll.PayrollService
}

func NewPayrollHandler(payrollService servicePayroll.PayrollService) PayrollHandler {
	return &PayrollHandlerImpl{payrollService: payrollService}
}

func periodFromQuery(r *http.Request) payroll.PeriodRequest {
	return payroll.PeriodRequest{
		StartDate: r.URL.Query().Get("start_date"),
		EndDate:   r.URL.Query().Get("end_date"),
	}
}

// Bonus implements PayrollHandler.
func (p *PayrollHandlerImpl) Bonus(w http.ResponseWriter, r *http.Request) {
	tenant, ok := tenantFrom(w, r)
	if !ok {
		return
	}

	rows, err := p.payrollService.Bonus(r.Context(), tenant, periodFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, rows)
}

// Statement implements PayrollHandler.
func (p *PayrollHandlerImpl) Statement(w http.ResponseWriter, r *http.Request) {
	tenant, ok := tenantFrom(w, r)
	if !ok {
		return
	}

	rows, err := p.payrollService.Statement(r.Context(), tenant, periodFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, rows)
}
