package payroll

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/caribhr/payroll-backend-go/internal/domain/attendance"
	"github.com/caribhr/payroll-backend-go/internal/domain/employee"
	"github.com/caribhr/payroll-backend-go/internal/domain/payroll"
	"github.com/caribhr/payroll-backend-go/internal/domain/rates"
)

var (
	overtimeMultiplier = decimal.NewFromFloat(1.5)
	twelve             = decimal.NewFromInt(12)
)

// PayResult is the base gross pay split produced for one employee.
type PayResult struct {
	RegularHours  decimal.Decimal
	OvertimeHours decimal.Decimal
	LunchHours    decimal.Decimal
	BasePay       decimal.Decimal
	OvertimePay   decimal.Decimal
}

// PeriodBasePay returns the salaried base amount for one pay period.
func PeriodBasePay(monthlySalary decimal.Decimal, freq employee.PayFrequency) decimal.Decimal {
	return monthlySalary.Mul(twelve).Div(decimal.NewFromInt(int64(freq.PeriodsPerYear())))
}

// EffectiveHourlyRate is the rate used to price vacation and leave hours.
// Salaried employees derive it from the period base over standard hours.
func EffectiveHourlyRate(emp employee.Employee, period payroll.PayPeriod) decimal.Decimal {
	if emp.Classification.IsSalaried() {
		standard := period.StandardHours(emp.StandardHoursPerWeek)
		if standard.IsZero() {
			return decimal.Zero
		}
		return PeriodBasePay(*emp.MonthlySalary, period.Frequency).Div(standard)
	}
	if emp.HourlyRate == nil {
		return decimal.Zero
	}
	return *emp.HourlyRate
}

// ComputeBasePay turns the period's worked hour entries into regular/overtime
// hours and base gross pay using the employee's classification strategy.
// specialHours is the sum of approved vacation/leave/holiday hours, which
// counts toward the salaried proration budget but is paid separately.
func ComputeBasePay(emp employee.Employee, period payroll.PayPeriod, entries []attendance.HourEntry, table rates.RateTable, specialHours decimal.Decimal) (PayResult, error) {
	var res PayResult

	worked := decimal.Zero
	for _, e := range entries {
		if e.Hours.IsNegative() {
			return PayResult{}, fmt.Errorf("hour entry on %s has negative hours", e.WorkDate.Format("2006-01-02"))
		}
		worked = worked.Add(e.Hours)
		if e.LunchExcluded {
			res.LunchHours = res.LunchHours.Add(e.Hours)
		}
	}

	switch emp.Classification {
	case employee.ClassificationSalary, employee.ClassificationSupervisor:
		if emp.MonthlySalary == nil {
			return PayResult{}, employee.ErrMissingBaseCompensation
		}
		standard := period.StandardHours(emp.StandardHoursPerWeek)
		base := PeriodBasePay(*emp.MonthlySalary, period.Frequency)
		credited := worked.Add(specialHours)
		if credited.LessThan(standard) {
			base = base.Mul(credited).Div(standard)
		}
		res.RegularHours = worked
		res.BasePay = base
		return res, nil

	case employee.ClassificationHourly:
		if emp.HourlyRate == nil {
			return PayResult{}, employee.ErrMissingBaseCompensation
		}
		standard := period.StandardHours(emp.StandardHoursPerWeek)
		regular := decimal.Min(worked, standard)
		overtime := worked.Sub(regular)
		res.RegularHours = regular
		res.OvertimeHours = overtime
		res.BasePay = regular.Mul(*emp.HourlyRate)
		res.OvertimePay = overtime.Mul(*emp.HourlyRate).Mul(overtimeMultiplier)
		return res, nil

	case employee.ClassificationNurse:
		res.RegularHours = worked
		res.BasePay = nurseShiftPay(entries, table)
		return res, nil

	default:
		return PayResult{}, fmt.Errorf("%w: %q", employee.ErrInvalidClassification, emp.Classification)
	}
}

// nurseShiftPay prices each shift by weekday/weekend and the rate table's day
// window. Shift rates already encode differentials, so no overtime applies.
func nurseShiftPay(entries []attendance.HourEntry, table rates.RateTable) decimal.Decimal {
	total := decimal.Zero
	for _, e := range entries {
		rate := table.NurseDayRate
		switch {
		case isWeekend(e.WorkDate):
			rate = table.NurseWeekendRate
		case e.StartTime != nil && !inDayWindow(e.StartTime.Hour(), table):
			rate = table.NurseNightRate
		}
		total = total.Add(e.Hours.Mul(rate))
	}
	return total
}

func isWeekend(d time.Time) bool {
	wd := d.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

func inDayWindow(hour int, table rates.RateTable) bool {
	return hour >= table.DayShiftStart && hour < table.DayShiftEnd
}
