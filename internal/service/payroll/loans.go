package payroll

import (
	"github.com/shopspring/decimal"

	"github.com/caribhr/payroll-backend-go/internal/domain/loan"
)

// LedgerInstruction tells the persistence step how to update one loan after a
// deduction is taken.
type LedgerInstruction struct {
	LoanID     string
	Amount     decimal.Decimal
	NewBalance decimal.Decimal
	NewStatus  loan.LoanStatus
}

// LoanDeductionResult is the pure outcome of amortizing an employee's loans
// for one period. Nothing is mutated until the instructions are applied
// inside the run's transaction.
type LoanDeductionResult struct {
	Internal   decimal.Decimal
	ThirdParty decimal.Decimal
	Ledger     []LedgerInstruction
	Skipped    []string
}

// Total is the combined deduction across both loan types.
func (r LoanDeductionResult) Total() decimal.Decimal {
	return r.Internal.Add(r.ThirdParty)
}

// ComputeLoanDeductions takes min(installment, remaining balance) per active
// loan. Non-active loans are skipped and reported, never fatal.
func ComputeLoanDeductions(loans []loan.Loan) LoanDeductionResult {
	res := LoanDeductionResult{
		Internal:   decimal.Zero,
		ThirdParty: decimal.Zero,
	}

	for _, l := range loans {
		if l.Status != loan.LoanStatusActive {
			res.Skipped = append(res.Skipped, l.ID)
			continue
		}

		amount := decimal.Min(l.Installment, l.RemainingBalance)
		if !amount.IsPositive() {
			continue
		}

		newBalance := l.RemainingBalance.Sub(amount)
		newStatus := loan.LoanStatusActive
		if newBalance.IsZero() {
			newStatus = loan.LoanStatusCompleted
		}

		res.Ledger = append(res.Ledger, LedgerInstruction{
			LoanID:     l.ID,
			Amount:     amount,
			NewBalance: newBalance,
			NewStatus:  newStatus,
		})

		if l.Type == loan.LoanTypeThirdParty {
			res.ThirdParty = res.ThirdParty.Add(amount)
		} else {
			res.Internal = res.Internal.Add(amount)
		}
	}

	return res
}
