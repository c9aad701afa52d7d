package employee

import (
	"github.com/caribhr/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateEmployeeRequest struct {
	EmployeeCode         string           `json:"employee_code"`
	FullName             string           `json:"full_name"`
	Classification       string           `json:"classification"`
	PayFrequency         string           `json:"pay_frequency"`
	MonthlySalary        *decimal.Decimal `json:"monthly_salary,omitempty"`
	HourlyRate           *decimal.Decimal `json:"hourly_rate,omitempty"`
	StandardHoursPerWeek decimal.Decimal  `json:"standard_hours_per_week"`
	ShiftsPerWeek        *int             `json:"shifts_per_week,omitempty"`
	IsExemptSS           bool             `json:"is_exempt_ss"`
	IsExemptMedical      bool             `json:"is_exempt_medical"`
	DOB                  *string          `json:"dob,omitempty"`
	BankName             string           `json:"bank_name,omitempty"`
	BankAccountNumber    string           `json:"bank_account_number,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{Field: "employee_code", Message: "is required"})
	}
	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{Field: "full_name", Message: "is required"})
	}
	if !Classification(r.Classification).Valid() {
		errs = append(errs, validator.ValidationError{Field: "classification", Message: "must be one of salary, hourly, private_duty_nurse, supervisor"})
	}
	if !PayFrequency(r.PayFrequency).Valid() {
		errs = append(errs, validator.ValidationError{Field: "pay_frequency", Message: "must be one of Monthly, Bi-Weekly, Semi-Monthly"})
	}
	if !r.StandardHoursPerWeek.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "standard_hours_per_week", Message: "must be positive"})
	}

	// Exactly one of monthly salary and hourly rate is meaningful per classification.
	switch Classification(r.Classification) {
	case ClassificationSalary, ClassificationSupervisor:
		if r.MonthlySalary == nil || !r.MonthlySalary.IsPositive() {
			errs = append(errs, validator.ValidationError{Field: "monthly_salary", Message: "is required for salaried classifications"})
		}
		if r.HourlyRate != nil {
			errs = append(errs, validator.ValidationError{Field: "hourly_rate", Message: "must not be set for salaried classifications"})
		}
	case ClassificationHourly, ClassificationNurse:
		if r.HourlyRate == nil || !r.HourlyRate.IsPositive() {
			errs = append(errs, validator.ValidationError{Field: "hourly_rate", Message: "is required for hourly classifications"})
		}
		if r.MonthlySalary != nil {
			errs = append(errs, validator.ValidationError{Field: "monthly_salary", Message: "must not be set for hourly classifications"})
		}
	}

	if r.DOB != nil {
		if _, ok := validator.IsValidDate(*r.DOB); !ok {
			errs = append(errs, validator.ValidationError{Field: "dob", Message: "must be YYYY-MM-DD"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	ID                   string
	FullName             *string          `json:"full_name,omitempty"`
	MonthlySalary        *decimal.Decimal `json:"monthly_salary,omitempty"`
	HourlyRate           *decimal.Decimal `json:"hourly_rate,omitempty"`
	StandardHoursPerWeek *decimal.Decimal `json:"standard_hours_per_week,omitempty"`
	IsExemptSS           *bool            `json:"is_exempt_ss,omitempty"`
	IsExemptMedical      *bool            `json:"is_exempt_medical,omitempty"`
	EmploymentStatus     *string          `json:"employment_status,omitempty"`
	BankName             *string          `json:"bank_name,omitempty"`
	BankAccountNumber    *string          `json:"bank_account_number,omitempty"`
}

type EmployeeResponse struct {
	ID                   string           `json:"id"`
	EmployeeCode         string           `json:"employee_code"`
	FullName             string           `json:"full_name"`
	Classification       string           `json:"classification"`
	PayFrequency         string           `json:"pay_frequency"`
	MonthlySalary        *decimal.Decimal `json:"monthly_salary,omitempty"`
	HourlyRate           *decimal.Decimal `json:"hourly_rate,omitempty"`
	StandardHoursPerWeek decimal.Decimal  `json:"standard_hours_per_week"`
	ShiftsPerWeek        int              `json:"shifts_per_week,omitempty"`
	IsExemptSS           bool             `json:"is_exempt_ss"`
	IsExemptMedical      bool             `json:"is_exempt_medical"`
	DOB                  *string          `json:"dob,omitempty"`
	EmploymentStatus     string           `json:"employment_status"`
	HasBankInfo          bool             `json:"has_bank_info"`
}
