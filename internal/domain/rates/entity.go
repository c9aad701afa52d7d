package rates

import (
	"time"

	"github.com/shopspring/decimal"
)

// RateTable is the active statutory rate snapshot. A payroll run loads it once
// and passes it by value into every computation so mid-run settings changes
// cannot skew results.
type RateTable struct {
	ID string

	// Social Security
	SSEmployeeRate        decimal.Decimal
	SSEmployerRate        decimal.Decimal
	SSMaxMonthlyInsurable decimal.Decimal

	// Medical Benefits
	MBEmployeeRate       decimal.Decimal
	MBEmployerRate       decimal.Decimal
	MBSeniorEmployeeRate decimal.Decimal
	SeniorAge            int
	MaxAge               int

	// Education Levy; threshold and exemption are defined at the monthly
	// reference frequency and scaled to the employee's pay period.
	ELLowRate          decimal.Decimal
	ELHighRate         decimal.Decimal
	ELMonthlyThreshold decimal.Decimal
	ELMonthlyExemption decimal.Decimal

	// Private duty nurse shift rates and day window (hour of day, [start, end)).
	NurseDayRate     decimal.Decimal
	NurseNightRate   decimal.Decimal
	NurseWeekendRate decimal.Decimal
	DayShiftStart    int
	DayShiftEnd      int

	HolidayPayEnabled bool

	EffectiveDate time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ScaleMonthlyToPeriod converts a monthly-reference amount to the equivalent
// amount for a pay period of the given frequency.
func ScaleMonthlyToPeriod(monthly decimal.Decimal, periodsPerYear int) decimal.Decimal {
	return monthly.Mul(decimal.NewFromInt(12)).Div(decimal.NewFromInt(int64(periodsPerYear)))
}
