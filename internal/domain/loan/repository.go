package loan

import (
	"context"

	"github.com/shopspring/decimal"
)

type LoanRepository interface {
	Create(ctx context.Context, l Loan) (Loan, error)
	GetByID(ctx context.Context, id string) (Loan, error)
	GetByEmployee(ctx context.Context, employeeID string) ([]Loan, error)
	// GetActiveForUpdate locks the employee's active loan rows for the duration
	// of the surrounding transaction.
	GetActiveForUpdate(ctx context.Context, employeeID string) ([]Loan, error)
	UpdateBalance(ctx context.Context, id string, balance decimal.Decimal, status LoanStatus) error
	Cancel(ctx context.Context, id string) error
	RecordPayment(ctx context.Context, payment LoanPayment) error
	GetPayments(ctx context.Context, loanID string) ([]LoanPayment, error)
	// GetPaymentsByRun returns the ledger rows a run produced, joined through its
	// payroll items. Used when a run is deleted and its deductions reversed.
	GetPaymentsByRun(ctx context.Context, runID string) ([]LoanPayment, error)
}
