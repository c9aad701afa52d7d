package loan

import (
	"time"

	"github.com/shopspring/decimal"
)

type LoanType string

const (
	LoanTypeInternal   LoanType = "internal"
	LoanTypeThirdParty LoanType = "third_party"
)

func (t LoanType) Valid() bool {
	return t == LoanTypeInternal || t == LoanTypeThirdParty
}

type LoanStatus string

const (
	LoanStatusActive    LoanStatus = "active"
	LoanStatusCompleted LoanStatus = "completed"
	LoanStatusCancelled LoanStatus = "cancelled"
)

// Loan is a staff advance or garnishment repaid through payroll. The remaining
// balance only ever decreases, never below zero, and only inside a payroll
// finalization transaction.
type Loan struct {
	ID               string
	EmployeeID       string
	Type             LoanType
	OriginalAmount   decimal.Decimal
	RemainingBalance decimal.Decimal
	Installment      decimal.Decimal
	Status           LoanStatus
	PayeeName        string
	PayeeAccount     string
	StartDate        time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// NextDeduction returns the amount the next payroll period would take.
func (l Loan) NextDeduction() decimal.Decimal {
	if l.Status != LoanStatusActive {
		return decimal.Zero
	}
	return decimal.Min(l.Installment, l.RemainingBalance)
}

// LoanPayment is one ledger row recording a deduction applied to a loan by a
// payroll run.
type LoanPayment struct {
	ID            string
	LoanID        string
	PayrollItemID string
	Amount        decimal.Decimal
	BalanceAfter  decimal.Decimal
	CreatedAt     time.Time
}
