package payroll

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/caribhr/payroll-backend-go/internal/domain/employee"
)

func TestPayPeriod_StandardHours(t *testing.T) {
	t.Parallel()

	weekly := decimal.NewFromInt(40)

	tests := []struct {
		freq employee.PayFrequency
		want string
	}{
		{employee.PayFrequencyBiWeekly, "80"},
		{employee.PayFrequencySemiMonthly, "86.6666666666666667"},
		{employee.PayFrequencyMonthly, "173.3333333333333333"},
	}
	for _, tt := range tests {
		p := PayPeriod{Frequency: tt.freq}
		got := p.StandardHours(weekly)
		assert.True(t, got.Equal(decimal.RequireFromString(tt.want)), "%s: got %s", tt.freq, got)
	}
}

func TestPayPeriod_Valid(t *testing.T) {
	t.Parallel()

	start := time.Date(2025, time.June, 2, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)

	assert.True(t, PayPeriod{Start: start, End: end, Frequency: employee.PayFrequencyBiWeekly}.Valid())
	assert.True(t, PayPeriod{Start: start, End: start, Frequency: employee.PayFrequencyMonthly}.Valid())
	assert.False(t, PayPeriod{Start: end, End: start, Frequency: employee.PayFrequencyBiWeekly}.Valid())
	assert.False(t, PayPeriod{Start: start, End: end, Frequency: "Weekly"}.Valid())
}

func TestPayrollItem_TotalDeductions(t *testing.T) {
	t.Parallel()

	item := PayrollItem{
		SSEmployee:     decimal.RequireFromString("210"),
		MBEmployee:     decimal.RequireFromString("105"),
		EduLevy:        decimal.RequireFromString("61.46"),
		LoanInternal:   decimal.RequireFromString("150"),
		LoanThirdParty: decimal.RequireFromString("75"),
	}

	assert.True(t, item.TotalDeductions().Equal(decimal.RequireFromString("601.46")))
}
