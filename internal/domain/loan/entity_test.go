package loan

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestLoan_NextDeduction(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		balance     string
		installment string
		status      LoanStatus
		want        string
	}{
		{"balance covers installment", "1000", "150", LoanStatusActive, "150"},
		{"final payment bounded by balance", "100", "150", LoanStatusActive, "100"},
		{"exact last installment", "150", "150", LoanStatusActive, "150"},
		{"completed loan takes nothing", "0", "150", LoanStatusCompleted, "0"},
		{"cancelled loan takes nothing", "500", "150", LoanStatusCancelled, "0"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			l := Loan{
				RemainingBalance: decimal.RequireFromString(tt.balance),
				Installment:      decimal.RequireFromString(tt.installment),
				Status:           tt.status,
			}
			got := l.NextDeduction()
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)), "got %s", got)
		})
	}
}
