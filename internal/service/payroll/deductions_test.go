package payroll

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/caribhr/payroll-backend-go/internal/fixtures"
)

const monthlyPeriods = 12

func TestComputeDeductions_StandardEmployee(t *testing.T) {
	t.Parallel()

	d := ComputeDeductions(dec("3000"), 30, false, false, fixtures.DefaultRateTable(), monthlyPeriods)

	eq(t, "210", d.SSEmployee) // 3000 * 7%
	eq(t, "270", d.SSEmployer) // 3000 * 9%
	eq(t, "105", d.MBEmployee) // 3000 * 3.5%
	eq(t, "105", d.MBEmployer)
	eq(t, "61.46", d.EduLevy) // (3000 - 541.67) * 2.5%
	eq(t, "376.46", d.EmployeeTotal())
}

func TestComputeDeductions_SSCeilingCapsBase(t *testing.T) {
	t.Parallel()

	d := ComputeDeductions(dec("10000"), 30, false, false, fixtures.DefaultRateTable(), monthlyPeriods)

	// Insurable earnings cap at 6500 monthly.
	eq(t, "455", d.SSEmployee)
	eq(t, "585", d.SSEmployer)
}

func TestComputeDeductions_EduLevyTwoTier(t *testing.T) {
	t.Parallel()

	d := ComputeDeductions(dec("10000"), 30, false, false, fixtures.DefaultRateTable(), monthlyPeriods)

	// taxable 9458.33: first 5416.67 at 2.5%, remainder 4041.66 at 5%.
	eq(t, "337.50", d.EduLevy)
}

func TestComputeDeductions_EduLevyAtOrBelowExemption(t *testing.T) {
	t.Parallel()

	table := fixtures.DefaultRateTable()

	eq(t, "0", ComputeDeductions(dec("541.67"), 30, false, false, table, monthlyPeriods).EduLevy)
	eq(t, "0", ComputeDeductions(dec("400"), 30, false, false, table, monthlyPeriods).EduLevy)
}

func TestComputeDeductions_EduLevyMonotonicAtThreshold(t *testing.T) {
	t.Parallel()

	table := fixtures.DefaultRateTable()

	// Crossing the tier threshold must never reduce the levy.
	below := ComputeDeductions(dec("5958.33"), 30, false, false, table, monthlyPeriods).EduLevy
	at := ComputeDeductions(dec("5958.34"), 30, false, false, table, monthlyPeriods).EduLevy
	above := ComputeDeductions(dec("5960"), 30, false, false, table, monthlyPeriods).EduLevy

	assert.True(t, at.GreaterThanOrEqual(below), "levy fell at threshold: %s -> %s", below, at)
	assert.True(t, above.GreaterThanOrEqual(at), "levy fell past threshold: %s -> %s", at, above)
}

func TestComputeDeductions_SSExemption(t *testing.T) {
	t.Parallel()

	d := ComputeDeductions(dec("3000"), 30, true, false, fixtures.DefaultRateTable(), monthlyPeriods)

	eq(t, "0", d.SSEmployee)
	eq(t, "0", d.SSEmployer)
	eq(t, "105", d.MBEmployee) // medical unaffected
}

func TestComputeDeductions_MedicalExemption(t *testing.T) {
	t.Parallel()

	d := ComputeDeductions(dec("3000"), 30, false, true, fixtures.DefaultRateTable(), monthlyPeriods)

	eq(t, "0", d.MBEmployee)
	eq(t, "0", d.MBEmployer)
	eq(t, "210", d.SSEmployee)
}

func TestComputeDeductions_MedicalAgeBands(t *testing.T) {
	t.Parallel()

	table := fixtures.DefaultRateTable()

	tests := []struct {
		name         string
		age          int
		wantEmployee string
		wantEmployer string
	}{
		{"under senior age", 59, "105", "105"},
		{"senior band start", 60, "75", "0"}, // 3000 * 2.5%, employer drops
		{"senior band end", 69, "75", "0"},
		{"max age reached", 70, "0", "0"},
		{"past max age", 75, "0", "0"},
		{"unknown date of birth", -1, "105", "105"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			d := ComputeDeductions(dec("3000"), tt.age, false, false, table, monthlyPeriods)
			eq(t, tt.wantEmployee, d.MBEmployee)
			eq(t, tt.wantEmployer, d.MBEmployer)
		})
	}
}

func TestComputeDeductions_SemiMonthlyScaling(t *testing.T) {
	t.Parallel()

	d := ComputeDeductions(dec("4000"), 30, false, false, fixtures.DefaultRateTable(), 24)

	// Ceiling scales to 3250 per semi-monthly period.
	eq(t, "227.50", d.SSEmployee)
	eq(t, "292.50", d.SSEmployer)
	// Exemption 270.835 and threshold 2708.335 scale the same way:
	// taxable 3729.165, low tier 67.708375, high tier 51.0415.
	eq(t, "118.75", d.EduLevy)
}

func TestRoundMoney_HalfUp(t *testing.T) {
	t.Parallel()

	eq(t, "61.46", roundMoney(dec("61.455")))
	eq(t, "61.45", roundMoney(dec("61.454")))
	eq(t, "0", roundMoney(dec("0")))
}
