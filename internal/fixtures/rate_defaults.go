// Package fixtures holds the seed statutory values used when no rate table
// has been configured yet.
package fixtures

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/caribhr/payroll-backend-go/internal/domain/rates"
)

// DefaultRateTable returns the Antigua and Barbuda statutory defaults.
func DefaultRateTable() rates.RateTable {
	return rates.RateTable{
		SSEmployeeRate:        decimal.NewFromFloat(0.07),
		SSEmployerRate:        decimal.NewFromFloat(0.09),
		SSMaxMonthlyInsurable: decimal.NewFromInt(6500),

		MBEmployeeRate:       decimal.NewFromFloat(0.035),
		MBEmployerRate:       decimal.NewFromFloat(0.035),
		MBSeniorEmployeeRate: decimal.NewFromFloat(0.025),
		SeniorAge:            60,
		MaxAge:               70,

		ELLowRate:          decimal.NewFromFloat(0.025),
		ELHighRate:         decimal.NewFromFloat(0.05),
		ELMonthlyThreshold: decimal.NewFromFloat(5416.67),
		ELMonthlyExemption: decimal.NewFromFloat(541.67),

		NurseDayRate:     decimal.NewFromInt(25),
		NurseNightRate:   decimal.NewFromInt(30),
		NurseWeekendRate: decimal.NewFromInt(35),
		DayShiftStart:    7,
		DayShiftEnd:      19,

		HolidayPayEnabled: true,

		EffectiveDate: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
	}
}
