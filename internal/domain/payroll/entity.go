package payroll

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/caribhr/payroll-backend-go/internal/domain/employee"
)

type RunStatus string

const (
	RunStatusProcessing          RunStatus = "processing"
	RunStatusCompleted           RunStatus = "completed"
	RunStatusCompletedWithErrors RunStatus = "completed_with_errors"
	RunStatusFinalized           RunStatus = "finalized"
)

// PayPeriod is the date window a run covers, inclusive on both ends.
type PayPeriod struct {
	Start     time.Time
	End       time.Time
	Frequency employee.PayFrequency
}

func (p PayPeriod) Valid() bool {
	return !p.End.Before(p.Start) && p.Frequency.Valid()
}

// StandardHours returns the expected working hours in this period for an
// employee with the given standard weekly hours.
func (p PayPeriod) StandardHours(weeklyHours decimal.Decimal) decimal.Decimal {
	periods := decimal.NewFromInt(int64(p.Frequency.PeriodsPerYear()))
	return weeklyHours.Mul(decimal.NewFromInt(52)).Div(periods)
}

// PayrollRun is one execution of the payroll engine over the active roster.
type PayrollRun struct {
	ID            string
	PeriodStart   time.Time
	PeriodEnd     time.Time
	PayDate       time.Time
	Status        RunStatus
	RunBy         string
	RunAt         time.Time
	FinalizedAt   *time.Time
	EmployeeCount int
	TotalGross    decimal.Decimal
	TotalNet      decimal.Decimal
	Errors        []RunError
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// RunError records an employee whose calculation failed. The run continues
// past failures and reports them in the manifest.
type RunError struct {
	EmployeeID   string `json:"employee_id"`
	EmployeeCode string `json:"employee_code"`
	Message      string `json:"message"`
}

// PayrollItem is the full calculation result for one employee in one run.
type PayrollItem struct {
	ID           string
	PayrollRunID string
	EmployeeID   string
	EmployeeCode string

	RegularHours  decimal.Decimal
	OvertimeHours decimal.Decimal
	VacationHours decimal.Decimal
	LeaveHours    decimal.Decimal
	HolidayHours  decimal.Decimal
	LunchHours    decimal.Decimal

	BasePay     decimal.Decimal
	OvertimePay decimal.Decimal
	VacationPay decimal.Decimal
	LeavePay    decimal.Decimal
	HolidayPay  decimal.Decimal
	GrossPay    decimal.Decimal

	SSEmployee decimal.Decimal
	SSEmployer decimal.Decimal
	MBEmployee decimal.Decimal
	MBEmployer decimal.Decimal
	EduLevy    decimal.Decimal

	LoanInternal   decimal.Decimal
	LoanThirdParty decimal.Decimal

	NetPay decimal.Decimal

	// Override bookkeeping. When Overridden is set, NetPay (and optionally
	// GrossPay) hold the administrator's figures and the originals are kept.
	Overridden       bool
	OverrideReason   string
	OverrideBy       string
	OriginalNetPay   decimal.Decimal
	OriginalGrossPay decimal.Decimal

	// Employee YTD totals after this item is folded in.
	YTDGross      decimal.Decimal
	YTDSSEmployee decimal.Decimal
	YTDMBEmployee decimal.Decimal
	YTDEduLevy    decimal.Decimal
	YTDNet        decimal.Decimal

	Warnings []string

	CreatedAt time.Time
}

// TotalDeductions sums the statutory and loan deductions on the item.
func (it PayrollItem) TotalDeductions() decimal.Decimal {
	return it.SSEmployee.Add(it.MBEmployee).Add(it.EduLevy).
		Add(it.LoanInternal).Add(it.LoanThirdParty)
}

// YTDSummary accumulates an employee's calendar-year totals across runs.
type YTDSummary struct {
	EmployeeID string
	Year       int

	Gross      decimal.Decimal
	SSEmployee decimal.Decimal
	SSEmployer decimal.Decimal
	MBEmployee decimal.Decimal
	MBEmployer decimal.Decimal
	EduLevy    decimal.Decimal
	LoanRepaid decimal.Decimal
	Net        decimal.Decimal

	UpdatedAt time.Time
}
