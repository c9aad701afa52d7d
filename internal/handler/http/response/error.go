package response

import (
	"errors"
	"net/http"

	"github.com/caribhr/payroll-backend-go/internal/domain/employee"
	"github.com/caribhr/payroll-backend-go/internal/domain/loan"
	"github.com/caribhr/payroll-backend-go/internal/domain/payroll"
	"github.com/caribhr/payroll-backend-go/internal/domain/rates"
	"github.com/caribhr/payroll-backend-go/internal/domain/specialpay"
	"github.com/caribhr/payroll-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeCodeExists):
		Conflict(w, "Employee code already exists")
	case errors.Is(err, employee.ErrInvalidClassification):
		BadRequest(w, "Invalid employee classification", nil)
	case errors.Is(err, employee.ErrMissingBaseCompensation):
		BadRequest(w, "Employee is missing base compensation", nil)

	// Rate table errors
	case errors.Is(err, rates.ErrNoActiveRateTable):
		Conflict(w, "No active statutory rate table is configured")

	// Special pay errors
	case errors.Is(err, specialpay.ErrEntryNotFound):
		NotFound(w, "Special pay entry not found")
	case errors.Is(err, specialpay.ErrInvalidDateRange):
		BadRequest(w, "Entry end date is before start date", nil)

	// Loan errors
	case errors.Is(err, loan.ErrLoanNotFound):
		NotFound(w, "Loan not found")
	case errors.Is(err, loan.ErrLoanNotActive):
		Conflict(w, "Loan is not active")

	// Payroll errors
	case errors.Is(err, payroll.ErrRunNotFound):
		NotFound(w, "Payroll run not found")
	case errors.Is(err, payroll.ErrItemNotFound):
		NotFound(w, "Payroll item not found")
	case errors.Is(err, payroll.ErrDuplicateRunPeriod):
		Conflict(w, "A payroll run already exists for this period")
	case errors.Is(err, payroll.ErrRunNotCompleted):
		Conflict(w, "Payroll run is not in a completed state")
	case errors.Is(err, payroll.ErrRunAlreadyFinal):
		Conflict(w, "Payroll run is already finalized")
	case errors.Is(err, payroll.ErrRunFinalized):
		Conflict(w, "Payroll run is finalized and cannot be modified")
	case errors.Is(err, payroll.ErrInvalidPeriod):
		BadRequest(w, "Pay period end date is before start date", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
