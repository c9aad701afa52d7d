package payroll

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/caribhr/payroll-backend-go/internal/domain/employee"
	"github.com/caribhr/payroll-backend-go/internal/domain/payroll"
	"github.com/caribhr/payroll-backend-go/internal/domain/rates"
	"github.com/caribhr/payroll-backend-go/internal/domain/specialpay"
)

var five = decimal.NewFromInt(5)

// SpecialPayResult carries the supplemental paid hours and amounts from
// approved vacation, leave, and public holiday entries.
type SpecialPayResult struct {
	VacationHours decimal.Decimal
	VacationPay   decimal.Decimal
	LeaveHours    decimal.Decimal
	LeavePay      decimal.Decimal
	HolidayHours  decimal.Decimal
	HolidayPay    decimal.Decimal
	Warnings      []string
}

// TotalHours sums the three categories' hours.
func (r SpecialPayResult) TotalHours() decimal.Decimal {
	return r.VacationHours.Add(r.LeaveHours).Add(r.HolidayHours)
}

// TotalPay sums the three categories' amounts.
func (r SpecialPayResult) TotalPay() decimal.Decimal {
	return r.VacationPay.Add(r.LeavePay).Add(r.HolidayPay)
}

// ResolveSpecialPay reconciles approved entries intersecting the pay period.
// Supervisors are excluded from all three categories by policy. Categories
// overlapping on a calendar date still both pay, with a warning attached.
func ResolveSpecialPay(emp employee.Employee, period payroll.PayPeriod, entries []specialpay.Entry, table rates.RateTable) SpecialPayResult {
	var res SpecialPayResult

	if emp.Classification == employee.ClassificationSupervisor {
		return res
	}

	rate := EffectiveHourlyRate(emp, period)

	var inPeriod []specialpay.Entry
	for _, e := range entries {
		if e.Status != specialpay.EntryStatusApproved || !e.Overlaps(period.Start, period.End) {
			continue
		}
		inPeriod = append(inPeriod, e)

		switch e.Type {
		case specialpay.EntryTypeVacation:
			res.VacationHours = res.VacationHours.Add(e.TotalHours)
			res.VacationPay = res.VacationPay.Add(e.TotalHours.Mul(entryRate(e, rate)))
		case specialpay.EntryTypeLeave:
			res.LeaveHours = res.LeaveHours.Add(e.TotalHours)
			res.LeavePay = res.LeavePay.Add(e.TotalHours.Mul(entryRate(e, rate)))
		case specialpay.EntryTypeHoliday:
			if !table.HolidayPayEnabled || e.StartDate.Before(period.Start) || e.StartDate.After(period.End) {
				continue
			}
			hours := holidayHours(emp)
			res.HolidayHours = res.HolidayHours.Add(hours)
			res.HolidayPay = res.HolidayPay.Add(hours.Mul(holidayRate(emp, rate, table)))
		}
	}

	res.Warnings = overlapWarnings(inPeriod)
	return res
}

func entryRate(e specialpay.Entry, effective decimal.Decimal) decimal.Decimal {
	if e.RateOverride != nil {
		return *e.RateOverride
	}
	return effective
}

// holidayHours is one standard working day: weekly hours over five days, or
// over the configured shift count for nurses.
func holidayHours(emp employee.Employee) decimal.Decimal {
	divisor := five
	if emp.Classification == employee.ClassificationNurse && emp.ShiftsPerWeek > 0 {
		divisor = decimal.NewFromInt(int64(emp.ShiftsPerWeek))
	}
	return emp.StandardHoursPerWeek.Div(divisor)
}

func holidayRate(emp employee.Employee, effective decimal.Decimal, table rates.RateTable) decimal.Decimal {
	if emp.Classification == employee.ClassificationNurse {
		return table.NurseDayRate
	}
	return effective
}

// overlapWarnings reports pairs of different-type entries sharing a calendar
// date. The amounts still sum; the warning surfaces the double payment.
func overlapWarnings(entries []specialpay.Entry) []string {
	var warnings []string
	for i := 0; i < len(entries); i++ {
		for j := i + 1; j < len(entries); j++ {
			a, b := entries[i], entries[j]
			if a.Type == b.Type || !a.Overlaps(b.StartDate, b.EndDate) {
				continue
			}
			day := laterOf(a.StartDate, b.StartDate)
			warnings = append(warnings, fmt.Sprintf(
				"%s and %s entries both cover %s; both amounts were paid",
				a.Type, b.Type, day.Format("2006-01-02"),
			))
		}
	}
	return warnings
}

func laterOf(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}
