package payroll

import (
	"github.com/caribhr/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type RunPayrollRequest struct {
	PeriodStart string `json:"period_start"`
	PeriodEnd   string `json:"period_end"`
	Frequency   string `json:"frequency"`
	PayDate     string `json:"pay_date,omitempty"`
	RunBy       string `json:"run_by"`
}

func (r *RunPayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	start, okStart := validator.IsValidDate(r.PeriodStart)
	if !okStart {
		errs = append(errs, validator.ValidationError{Field: "period_start", Message: "must be YYYY-MM-DD"})
	}
	end, okEnd := validator.IsValidDate(r.PeriodEnd)
	if !okEnd {
		errs = append(errs, validator.ValidationError{Field: "period_end", Message: "must be YYYY-MM-DD"})
	}
	if okStart && okEnd && end.Before(start) {
		errs = append(errs, validator.ValidationError{Field: "period_end", Message: "must not be before period_start"})
	}
	if !validator.IsInSlice(r.Frequency, []string{"Monthly", "Bi-Weekly", "Semi-Monthly"}) {
		errs = append(errs, validator.ValidationError{Field: "frequency", Message: "must be one of Monthly, Bi-Weekly, Semi-Monthly"})
	}
	if r.PayDate != "" {
		if _, ok := validator.IsValidDate(r.PayDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "pay_date", Message: "must be YYYY-MM-DD"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type OverrideRequest struct {
	NetPay    decimal.Decimal  `json:"net_pay"`
	GrossPay  *decimal.Decimal `json:"gross_pay,omitempty"`
	Reason    string           `json:"reason"`
	AppliedBy string           `json:"applied_by"`
}

func (r *OverrideRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.NetPay.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "net_pay", Message: "must not be negative"})
	}
	if r.GrossPay != nil && r.GrossPay.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "gross_pay", Message: "must not be negative"})
	}
	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{Field: "reason", Message: "is required"})
	}
	if validator.IsEmpty(r.AppliedBy) {
		errs = append(errs, validator.ValidationError{Field: "applied_by", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RunSummaryResponse struct {
	ID            string          `json:"id"`
	PeriodStart   string          `json:"period_start"`
	PeriodEnd     string          `json:"period_end"`
	PayDate       string          `json:"pay_date"`
	Status        string          `json:"status"`
	EmployeeCount int             `json:"employee_count"`
	TotalGross    decimal.Decimal `json:"total_gross"`
	TotalNet      decimal.Decimal `json:"total_net"`
	Errors        []RunError      `json:"errors,omitempty"`
}
