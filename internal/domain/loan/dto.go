package loan

import (
	"github.com/caribhr/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateLoanRequest struct {
	EmployeeID   string          `json:"employee_id"`
	Type         string          `json:"type"`
	Amount       decimal.Decimal `json:"amount"`
	Installment  decimal.Decimal `json:"installment"`
	PayeeName    string          `json:"payee_name,omitempty"`
	PayeeAccount string          `json:"payee_account,omitempty"`
	StartDate    string          `json:"start_date"`
}

func (r *CreateLoanRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if !LoanType(r.Type).Valid() {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "must be internal or third_party"})
	}
	if !r.Amount.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "must be positive"})
	}
	if !r.Installment.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "installment", Message: "must be positive"})
	}
	if LoanType(r.Type) == LoanTypeThirdParty && validator.IsEmpty(r.PayeeName) {
		errs = append(errs, validator.ValidationError{Field: "payee_name", Message: "is required for third_party loans"})
	}
	if _, ok := validator.IsValidDate(r.StartDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must be YYYY-MM-DD"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LoanResponse struct {
	ID               string          `json:"id"`
	EmployeeID       string          `json:"employee_id"`
	Type             string          `json:"type"`
	OriginalAmount   decimal.Decimal `json:"original_amount"`
	RemainingBalance decimal.Decimal `json:"remaining_balance"`
	Installment      decimal.Decimal `json:"installment"`
	Status           string          `json:"status"`
	PayeeName        string          `json:"payee_name,omitempty"`
	StartDate        string          `json:"start_date"`
}
