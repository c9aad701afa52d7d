package payroll

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caribhr/payroll-backend-go/internal/domain/attendance"
	"github.com/caribhr/payroll-backend-go/internal/domain/employee"
	"github.com/caribhr/payroll-backend-go/internal/domain/payroll"
	"github.com/caribhr/payroll-backend-go/internal/fixtures"
)

func eq(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, got.Equal(decimal.RequireFromString(want)), "want %s, got %s", want, got)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

// biWeeklyPeriod is a two-week window: 40 weekly hours give exactly 80
// standard hours (40 * 52 / 26).
func biWeeklyPeriod() payroll.PayPeriod {
	return payroll.PayPeriod{
		Start:     time.Date(2025, time.June, 2, 0, 0, 0, 0, time.UTC),
		End:       time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC),
		Frequency: employee.PayFrequencyBiWeekly,
	}
}

func hourEntry(day int, hours string) attendance.HourEntry {
	return attendance.HourEntry{
		WorkDate: time.Date(2025, time.June, day, 0, 0, 0, 0, time.UTC),
		Hours:    dec(hours),
	}
}

func TestComputeBasePay_Hourly_OvertimeAboveStandard(t *testing.T) {
	t.Parallel()

	emp := employee.Employee{
		Classification:       employee.ClassificationHourly,
		HourlyRate:           decPtr("20"),
		StandardHoursPerWeek: dec("40"),
	}
	entries := []attendance.HourEntry{
		hourEntry(2, "45"),
		hourEntry(9, "45"),
	}

	res, err := ComputeBasePay(emp, biWeeklyPeriod(), entries, fixtures.DefaultRateTable(), decimal.Zero)

	require.NoError(t, err)
	eq(t, "80", res.RegularHours)
	eq(t, "10", res.OvertimeHours)
	eq(t, "1600", res.BasePay)
	eq(t, "300", res.OvertimePay) // 10h at 20 * 1.5
}

func TestComputeBasePay_Hourly_UnderStandardNoOvertime(t *testing.T) {
	t.Parallel()

	emp := employee.Employee{
		Classification:       employee.ClassificationHourly,
		HourlyRate:           decPtr("20"),
		StandardHoursPerWeek: dec("40"),
	}
	entries := []attendance.HourEntry{hourEntry(2, "30")}

	res, err := ComputeBasePay(emp, biWeeklyPeriod(), entries, fixtures.DefaultRateTable(), decimal.Zero)

	require.NoError(t, err)
	eq(t, "30", res.RegularHours)
	eq(t, "0", res.OvertimeHours)
	eq(t, "600", res.BasePay)
	eq(t, "0", res.OvertimePay)
}

func TestComputeBasePay_Salaried_ProratedBelowStandard(t *testing.T) {
	t.Parallel()

	// 5200 monthly over Bi-Weekly periods is exactly 2400 per period.
	emp := employee.Employee{
		Classification:       employee.ClassificationSalary,
		MonthlySalary:        decPtr("5200"),
		StandardHoursPerWeek: dec("40"),
	}
	entries := []attendance.HourEntry{hourEntry(2, "40")}

	res, err := ComputeBasePay(emp, biWeeklyPeriod(), entries, fixtures.DefaultRateTable(), decimal.Zero)

	require.NoError(t, err)
	eq(t, "1200", res.BasePay) // 2400 * 40 / 80
}

func TestComputeBasePay_Salaried_SpecialHoursCountTowardStandard(t *testing.T) {
	t.Parallel()

	emp := employee.Employee{
		Classification:       employee.ClassificationSalary,
		MonthlySalary:        decPtr("5200"),
		StandardHoursPerWeek: dec("40"),
	}
	entries := []attendance.HourEntry{hourEntry(2, "40")}

	// 40 worked + 40 approved vacation meets the 80-hour standard.
	res, err := ComputeBasePay(emp, biWeeklyPeriod(), entries, fixtures.DefaultRateTable(), dec("40"))

	require.NoError(t, err)
	eq(t, "2400", res.BasePay)
}

func TestComputeBasePay_Salaried_OverStandardNotInflated(t *testing.T) {
	t.Parallel()

	emp := employee.Employee{
		Classification:       employee.ClassificationSupervisor,
		MonthlySalary:        decPtr("5200"),
		StandardHoursPerWeek: dec("40"),
	}
	entries := []attendance.HourEntry{
		hourEntry(2, "50"),
		hourEntry(9, "50"),
	}

	res, err := ComputeBasePay(emp, biWeeklyPeriod(), entries, fixtures.DefaultRateTable(), decimal.Zero)

	require.NoError(t, err)
	eq(t, "2400", res.BasePay)
	eq(t, "0", res.OvertimePay)
}

func TestComputeBasePay_Nurse_ShiftClassification(t *testing.T) {
	t.Parallel()

	emp := employee.Employee{Classification: employee.ClassificationNurse}
	dayStart := time.Date(2025, time.June, 9, 10, 0, 0, 0, time.UTC)   // Monday 10:00
	nightStart := time.Date(2025, time.June, 10, 21, 0, 0, 0, time.UTC) // Tuesday 21:00

	entries := []attendance.HourEntry{
		{WorkDate: time.Date(2025, time.June, 7, 0, 0, 0, 0, time.UTC), Hours: dec("8")}, // Saturday
		{WorkDate: dayStart, StartTime: &dayStart, Hours: dec("8")},
		{WorkDate: nightStart, StartTime: &nightStart, Hours: dec("8")},
	}

	res, err := ComputeBasePay(emp, biWeeklyPeriod(), entries, fixtures.DefaultRateTable(), decimal.Zero)

	require.NoError(t, err)
	// 8h weekend at 35, 8h day at 25, 8h night at 30.
	eq(t, "720", res.BasePay)
	eq(t, "0", res.OvertimePay)
}

func TestComputeBasePay_Nurse_WeekendWinsOverNight(t *testing.T) {
	t.Parallel()

	emp := employee.Employee{Classification: employee.ClassificationNurse}
	start := time.Date(2025, time.June, 8, 22, 0, 0, 0, time.UTC) // Sunday 22:00

	entries := []attendance.HourEntry{{WorkDate: start, StartTime: &start, Hours: dec("8")}}

	res, err := ComputeBasePay(emp, biWeeklyPeriod(), entries, fixtures.DefaultRateTable(), decimal.Zero)

	require.NoError(t, err)
	eq(t, "280", res.BasePay) // weekend rate 35, not night 30
}

func TestComputeBasePay_NegativeHoursRejected(t *testing.T) {
	t.Parallel()

	emp := employee.Employee{
		Classification:       employee.ClassificationHourly,
		HourlyRate:           decPtr("20"),
		StandardHoursPerWeek: dec("40"),
	}
	entries := []attendance.HourEntry{hourEntry(2, "-4")}

	_, err := ComputeBasePay(emp, biWeeklyPeriod(), entries, fixtures.DefaultRateTable(), decimal.Zero)

	assert.Error(t, err)
}

func TestComputeBasePay_UnknownClassification(t *testing.T) {
	t.Parallel()

	emp := employee.Employee{Classification: "contractor"}

	_, err := ComputeBasePay(emp, biWeeklyPeriod(), nil, fixtures.DefaultRateTable(), decimal.Zero)

	assert.ErrorIs(t, err, employee.ErrInvalidClassification)
}

func TestComputeBasePay_MissingCompensation(t *testing.T) {
	t.Parallel()

	emp := employee.Employee{
		Classification:       employee.ClassificationSalary,
		StandardHoursPerWeek: dec("40"),
	}

	_, err := ComputeBasePay(emp, biWeeklyPeriod(), nil, fixtures.DefaultRateTable(), decimal.Zero)

	assert.ErrorIs(t, err, employee.ErrMissingBaseCompensation)
}

func TestComputeBasePay_LunchHoursTracked(t *testing.T) {
	t.Parallel()

	emp := employee.Employee{
		Classification:       employee.ClassificationHourly,
		HourlyRate:           decPtr("20"),
		StandardHoursPerWeek: dec("40"),
	}
	entries := []attendance.HourEntry{
		{WorkDate: time.Date(2025, time.June, 2, 0, 0, 0, 0, time.UTC), Hours: dec("7.5"), LunchExcluded: true},
		hourEntry(3, "8"),
	}

	res, err := ComputeBasePay(emp, biWeeklyPeriod(), entries, fixtures.DefaultRateTable(), decimal.Zero)

	require.NoError(t, err)
	eq(t, "7.5", res.LunchHours)
	eq(t, "15.5", res.RegularHours)
}

func TestEffectiveHourlyRate(t *testing.T) {
	t.Parallel()

	salaried := employee.Employee{
		Classification:       employee.ClassificationSalary,
		MonthlySalary:        decPtr("5200"),
		StandardHoursPerWeek: dec("40"),
	}
	hourly := employee.Employee{
		Classification: employee.ClassificationHourly,
		HourlyRate:     decPtr("18.50"),
	}

	eq(t, "30", EffectiveHourlyRate(salaried, biWeeklyPeriod())) // 2400 / 80
	eq(t, "18.50", EffectiveHourlyRate(hourly, biWeeklyPeriod()))
}
