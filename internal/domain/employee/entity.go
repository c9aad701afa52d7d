package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID                   string
	EmployeeCode         string
	FullName             string
	Classification       Classification
	PayFrequency         PayFrequency
	MonthlySalary        *decimal.Decimal
	HourlyRate           *decimal.Decimal
	StandardHoursPerWeek decimal.Decimal
	ShiftsPerWeek        int
	IsExemptSS           bool
	IsExemptMedical      bool
	DOB                  *time.Time
	EmploymentStatus     EmploymentStatus
	BankName             string
	BankAccountNumber    string
	CreatedAt            time.Time
	UpdatedAt            time.Time
	DeletedAt            *time.Time
}

type Classification string

const (
	ClassificationSalary     Classification = "salary"
	ClassificationHourly     Classification = "hourly"
	ClassificationNurse      Classification = "private_duty_nurse"
	ClassificationSupervisor Classification = "supervisor"
)

// IsSalaried reports whether the classification is paid from a monthly salary
// rather than an hourly rate.
func (c Classification) IsSalaried() bool {
	return c == ClassificationSalary || c == ClassificationSupervisor
}

func (c Classification) Valid() bool {
	switch c {
	case ClassificationSalary, ClassificationHourly, ClassificationNurse, ClassificationSupervisor:
		return true
	}
	return false
}

type PayFrequency string

const (
	PayFrequencyMonthly     PayFrequency = "Monthly"
	PayFrequencyBiWeekly    PayFrequency = "Bi-Weekly"
	PayFrequencySemiMonthly PayFrequency = "Semi-Monthly"
)

// PeriodsPerYear returns how many pay periods a year holds for the frequency.
func (f PayFrequency) PeriodsPerYear() int {
	switch f {
	case PayFrequencyBiWeekly:
		return 26
	case PayFrequencySemiMonthly:
		return 24
	default:
		return 12
	}
}

func (f PayFrequency) Valid() bool {
	switch f {
	case PayFrequencyMonthly, PayFrequencyBiWeekly, PayFrequencySemiMonthly:
		return true
	}
	return false
}

type EmploymentStatus string

const (
	EmploymentStatusActive     EmploymentStatus = "active"
	EmploymentStatusResigned   EmploymentStatus = "resigned"
	EmploymentStatusTerminated EmploymentStatus = "terminated"
)

// AgeAt returns the employee's age in whole years at the given date, or -1
// when no date of birth is on file.
func (e Employee) AgeAt(date time.Time) int {
	if e.DOB == nil {
		return -1
	}
	age := date.Year() - e.DOB.Year()
	anniversary := time.Date(date.Year(), e.DOB.Month(), e.DOB.Day(), 0, 0, 0, 0, time.UTC)
	if date.Before(anniversary) {
		age--
	}
	return age
}

// HasBankInfo reports whether the employee carries enough banking detail to be
// included in a direct deposit export.
func (e Employee) HasBankInfo() bool {
	return e.BankName != "" && e.BankAccountNumber != ""
}
