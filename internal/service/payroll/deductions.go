package payroll

import (
	"github.com/shopspring/decimal"

	"github.com/caribhr/payroll-backend-go/internal/domain/rates"
)

// Deductions holds the statutory amounts for one employee for one period.
// Employer sides are liabilities, not withheld from net pay.
type Deductions struct {
	SSEmployee decimal.Decimal
	SSEmployer decimal.Decimal
	MBEmployee decimal.Decimal
	MBEmployer decimal.Decimal
	EduLevy    decimal.Decimal
}

// EmployeeTotal is the amount withheld from the employee's gross pay.
func (d Deductions) EmployeeTotal() decimal.Decimal {
	return d.SSEmployee.Add(d.MBEmployee).Add(d.EduLevy)
}

// ComputeDeductions derives Social Security, Medical Benefits and Education
// Levy from gross pay. Age is whole years at the pay date; a negative age
// means date of birth is unknown and the standard bands apply. Thresholds and
// ceilings in the rate table are monthly amounts scaled to the period length.
// All amounts round half-up to 2 decimal places.
func ComputeDeductions(gross decimal.Decimal, age int, exemptSS, exemptMB bool, table rates.RateTable, periodsPerYear int) Deductions {
	var d Deductions

	// Social Security
	if !exemptSS {
		ceiling := rates.ScaleMonthlyToPeriod(table.SSMaxMonthlyInsurable, periodsPerYear)
		base := decimal.Min(gross, ceiling)
		d.SSEmployee = roundMoney(base.Mul(table.SSEmployeeRate))
		d.SSEmployer = roundMoney(base.Mul(table.SSEmployerRate))
	}

	// Medical Benefits
	if !exemptMB {
		switch {
		case age >= 0 && age >= table.MaxAge:
			// no coverage past max age
		case age >= table.SeniorAge && age < table.MaxAge:
			d.MBEmployee = roundMoney(gross.Mul(table.MBSeniorEmployeeRate))
		default:
			d.MBEmployee = roundMoney(gross.Mul(table.MBEmployeeRate))
			d.MBEmployer = roundMoney(gross.Mul(table.MBEmployerRate))
		}
	}

	// Education Levy
	exemption := rates.ScaleMonthlyToPeriod(table.ELMonthlyExemption, periodsPerYear)
	threshold := rates.ScaleMonthlyToPeriod(table.ELMonthlyThreshold, periodsPerYear)
	taxable := decimal.Max(decimal.Zero, gross.Sub(exemption))
	if taxable.LessThanOrEqual(threshold) {
		d.EduLevy = roundMoney(taxable.Mul(table.ELLowRate))
	} else {
		low := threshold.Mul(table.ELLowRate)
		high := taxable.Sub(threshold).Mul(table.ELHighRate)
		d.EduLevy = roundMoney(low.Add(high))
	}

	return d
}

// roundMoney rounds to 2 decimal places, half away from zero, which is
// half-up for the non-negative amounts flowing through payroll.
func roundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}
