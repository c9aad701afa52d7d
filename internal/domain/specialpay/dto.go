package specialpay

import (
	"github.com/caribhr/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateEntryRequest struct {
	EmployeeID   string           `json:"employee_id"`
	Type         string           `json:"type"`
	StartDate    string           `json:"start_date"`
	EndDate      string           `json:"end_date"`
	TotalHours   decimal.Decimal  `json:"total_hours"`
	RateOverride *decimal.Decimal `json:"rate_override,omitempty"`
	Note         string           `json:"note,omitempty"`
}

func (r *CreateEntryRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if !EntryType(r.Type).Valid() {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "must be one of vacation, leave, holiday"})
	}
	start, okStart := validator.IsValidDate(r.StartDate)
	if !okStart {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must be YYYY-MM-DD"})
	}
	end, okEnd := validator.IsValidDate(r.EndDate)
	if !okEnd {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must be YYYY-MM-DD"})
	}
	if okStart && okEnd && end.Before(start) {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must not be before start_date"})
	}
	if EntryType(r.Type) != EntryTypeHoliday && !r.TotalHours.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "total_hours", Message: "must be positive"})
	}
	if r.RateOverride != nil && !r.RateOverride.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "rate_override", Message: "must be positive"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
