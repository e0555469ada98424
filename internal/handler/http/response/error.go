package response

import (
	"errors"
	"net/http"

	"github.com/tadbir-app/tadbir-backend-go/internal/domain/attendance"
	"github.com/tadbir-app/tadbir-backend-go/internal/domain/auth"
	"github.com/tadbir-app/tadbir-backend-go/internal/domain/company"
	"github.com/tadbir-app/tadbir-backend-go/internal/domain/debt"
	"github.com/tadbir-app/tadbir-backend-go/internal/domain/expense"
	"github.com/tadbir-app/tadbir-backend-go/internal/domain/factory"
	"github.com/tadbir-app/tadbir-backend-go/internal/domain/idempotency"
	"github.com/tadbir-app/tadbir-backend-go/internal/domain/member"
	"github.com/tadbir-app/tadbir-backend-go/internal/domain/project"
	"github.com/tadbir-app/tadbir-backend-go/internal/domain/transfer"
	"github.com/tadbir-app/tadbir-backend-go/internal/domain/truck"
	"github.com/tadbir-app/tadbir-backend-go/internal/domain/user"
	"github.com/tadbir-app/tadbir-backend-go/internal/domain/worker"
	"github.com/tadbir-app/tadbir-backend-go/internal/pkg/validator"
)

// notFoundErrors all map to 404; the sentinel message doubles as the body.
var notFoundErrors = []error{
	user.ErrUserNotFound,
	auth.ErrUserNotFound,
	auth.ErrCompanyNotFound,
	company.ErrCompanyNotFound,
	company.ErrParentNotFound,
	transfer.ErrTransferNotFound,
	expense.ErrExpenseNotFound,
	expense.ErrExternalFundNotFound,
	member.ErrMemberNotFound,
	member.ErrMemberTransferNotFound,
	truck.ErrTruckNotFound,
	truck.ErrTruckExpenseNotFound,
	truck.ErrTripNotFound,
	project.ErrProjectNotFound,
	project.ErrTransactionNotFound,
	debt.ErrDebtNotFound,
	debt.ErrPaymentNotFound,
	factory.ErrWorkshopExpenseNotFound,
	factory.ErrFundEntryNotFound,
	factory.ErrStockItemNotFound,
	factory.ErrPurchaseNotFound,
	factory.ErrConsumptionNotFound,
	worker.ErrWorkerNotFound,
	worker.ErrTransactionNotFound,
	attendance.ErrShiftNotFound,
	attendance.ErrDayNotFound,
	attendance.ErrHolidayNotFound,
	attendance.ErrWarningNotFound,
}

// conflictErrors are state violations on records that exist: the request is
// well-formed but the record cannot move that way.
var conflictErrors = []error{
	user.ErrUsernameExists,
	company.ErrCompanyNameExists,
	transfer.ErrTransferNotPending,
	transfer.ErrApprovedNotDeletable,
	attendance.ErrScanTooSoon,
	attendance.ErrAlreadyCheckedIn,
	attendance.ErrNotCheckedIn,
	attendance.ErrDayCompleted,
	idempotency.ErrDuplicateKey,
}

// badRequestErrors are business-rule rejections made before any mutation.
var badRequestErrors = []error{
	transfer.ErrSameCompany,
	debt.ErrPaymentExceedsRemaining,
	truck.ErrInvalidExpenseType,
	truck.ErrOdometerBackwards,
	expense.ErrInvalidFundDirection,
	factory.ErrInvalidFundDirection,
	factory.ErrInvalidStockKind,
	project.ErrInvalidType,
	worker.ErrInvalidTransactionType,
	attendance.ErrInvalidScanType,
}

// HandleError maps domain errors to HTTP responses.
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	case errors.Is(err, auth.ErrInvalidCredentials),
		errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrTokenExpired),
		errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, err.Error())
		return

	case errors.Is(err, user.ErrPermissionDenied),
		errors.Is(err, user.ErrParentCompanyRequired),
		errors.Is(err, user.ErrOwnerPrivilegeRequired):
		Forbidden(w, err.Error())
		return
	}

	for _, sentinel := range notFoundErrors {
		if errors.Is(err, sentinel) {
			NotFound(w, sentinel.Error())
			return
		}
	}
	for _, sentinel := range conflictErrors {
		if errors.Is(err, sentinel) {
			Conflict(w, sentinel.Error())
			return
		}
	}
	for _, sentinel := range badRequestErrors {
		if errors.Is(err, sentinel) {
			BadRequest(w, sentinel.Error(), nil)
			return
		}
	}

	InternalServerError(w, "An unexpected error occurred")
}
