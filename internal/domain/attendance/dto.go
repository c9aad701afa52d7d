package attendance

import (
	"github.com/caribhr/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateHourEntryRequest struct {
	EmployeeID    string          `json:"employee_id"`
	WorkDate      string          `json:"work_date"`
	Hours         decimal.Decimal `json:"hours"`
	StartTime     *string         `json:"start_time,omitempty"`
	LunchExcluded bool            `json:"lunch_excluded"`
}

func (r *CreateHourEntryRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if _, ok := validator.IsValidDate(r.WorkDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "work_date", Message: "must be YYYY-MM-DD"})
	}
	if r.Hours.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "hours", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
