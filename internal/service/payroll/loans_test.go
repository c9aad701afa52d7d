package payroll

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caribhr/payroll-backend-go/internal/domain/loan"
)

func activeLoan(id string, typ loan.LoanType, balance, installment string) loan.Loan {
	return loan.Loan{
		ID:               id,
		Type:             typ,
		RemainingBalance: dec(balance),
		Installment:      dec(installment),
		Status:           loan.LoanStatusActive,
	}
}

func TestComputeLoanDeductions_FullInstallment(t *testing.T) {
	t.Parallel()

	res := ComputeLoanDeductions([]loan.Loan{activeLoan("l1", loan.LoanTypeInternal, "1000", "150")})

	eq(t, "150", res.Internal)
	eq(t, "0", res.ThirdParty)
	require.Len(t, res.Ledger, 1)
	eq(t, "150", res.Ledger[0].Amount)
	eq(t, "850", res.Ledger[0].NewBalance)
	assert.Equal(t, loan.LoanStatusActive, res.Ledger[0].NewStatus)
}

func TestComputeLoanDeductions_FinalPaymentBoundedByBalance(t *testing.T) {
	t.Parallel()

	res := ComputeLoanDeductions([]loan.Loan{activeLoan("l1", loan.LoanTypeInternal, "100", "150")})

	eq(t, "100", res.Internal)
	require.Len(t, res.Ledger, 1)
	eq(t, "0", res.Ledger[0].NewBalance)
	assert.Equal(t, loan.LoanStatusCompleted, res.Ledger[0].NewStatus)
}

func TestComputeLoanDeductions_NonActiveSkipped(t *testing.T) {
	t.Parallel()

	cancelled := activeLoan("l1", loan.LoanTypeInternal, "500", "150")
	cancelled.Status = loan.LoanStatusCancelled
	completed := activeLoan("l2", loan.LoanTypeThirdParty, "0", "150")
	completed.Status = loan.LoanStatusCompleted

	res := ComputeLoanDeductions([]loan.Loan{cancelled, completed})

	eq(t, "0", res.Total())
	assert.Empty(t, res.Ledger)
	assert.Equal(t, []string{"l1", "l2"}, res.Skipped)
}

func TestComputeLoanDeductions_ZeroBalanceActiveProducesNothing(t *testing.T) {
	t.Parallel()

	res := ComputeLoanDeductions([]loan.Loan{activeLoan("l1", loan.LoanTypeInternal, "0", "150")})

	eq(t, "0", res.Total())
	assert.Empty(t, res.Ledger)
	assert.Empty(t, res.Skipped)
}

func TestComputeLoanDeductions_SplitsByType(t *testing.T) {
	t.Parallel()

	res := ComputeLoanDeductions([]loan.Loan{
		activeLoan("l1", loan.LoanTypeInternal, "1000", "100"),
		activeLoan("l2", loan.LoanTypeThirdParty, "600", "75"),
		activeLoan("l3", loan.LoanTypeThirdParty, "50", "75"),
	})

	eq(t, "100", res.Internal)
	eq(t, "125", res.ThirdParty) // 75 + the bounded 50
	eq(t, "225", res.Total())
	assert.Len(t, res.Ledger, 3)
}
