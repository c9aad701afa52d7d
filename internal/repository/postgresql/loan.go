package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/caribhr/payroll-backend-go/internal/domain/loan"
	"github.com/caribhr/payroll-backend-go/internal/pkg/database"
)

type loanRepository struct {
	db *database.DB
}

func NewLoanRepository(db *database.DB) loan.LoanRepository {
	return &loanRepository{db: db}
}

const loanColumns = `
	id, employee_id, type, original_amount, remaining_balance, installment,
	status, payee_name, payee_account, start_date, created_at, updated_at
`

func scanLoan(row pgx.Row) (loan.Loan, error) {
	var l loan.Loan
	err := row.Scan(
		&l.ID, &l.EmployeeID, &l.Type, &l.OriginalAmount, &l.RemainingBalance, &l.Installment,
		&l.Status, &l.PayeeName, &l.PayeeAccount, &l.StartDate, &l.CreatedAt, &l.UpdatedAt,
	)
	return l, err
}

func (r *loanRepository) Create(ctx context.Context, l loan.Loan) (loan.Loan, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO loans (employee_id, type, original_amount, remaining_balance, installment, status, payee_name, payee_account, start_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + loanColumns

	created, err := scanLoan(q.QueryRow(ctx, query,
		l.EmployeeID, l.Type, l.OriginalAmount, l.RemainingBalance, l.Installment, l.Status, l.PayeeName, l.PayeeAccount, l.StartDate,
	))
	if err != nil {
		return loan.Loan{}, fmt.Errorf("failed to create loan: %w", err)
	}

	return created, nil
}

func (r *loanRepository) GetByID(ctx context.Context, id string) (loan.Loan, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + loanColumns + ` FROM loans WHERE id = $1`

	l, err := scanLoan(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return loan.Loan{}, loan.ErrLoanNotFound
		}
		return loan.Loan{}, fmt.Errorf("failed to get loan: %w", err)
	}

	return l, nil
}

func (r *loanRepository) GetByEmployee(ctx context.Context, employeeID string) ([]loan.Loan, error) {
	query := `SELECT ` + loanColumns + ` FROM loans WHERE employee_id = $1 ORDER BY created_at`
	return r.queryLoans(ctx, query, employeeID)
}

// GetActiveForUpdate locks the employee's active loan rows so two concurrent
// runs cannot both draw down the same balance.
func (r *loanRepository) GetActiveForUpdate(ctx context.Context, employeeID string) ([]loan.Loan, error) {
	query := `
		SELECT ` + loanColumns + `
		FROM loans
		WHERE employee_id = $1 AND status = 'active'
		ORDER BY created_at
		FOR UPDATE
	`
	return r.queryLoans(ctx, query, employeeID)
}

func (r *loanRepository) queryLoans(ctx context.Context, query string, args ...interface{}) ([]loan.Loan, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list loans: %w", err)
	}
	defer rows.Close()

	var loans []loan.Loan
	for rows.Next() {
		l, err := scanLoan(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan loan: %w", err)
		}
		loans = append(loans, l)
	}

	return loans, nil
}

func (r *loanRepository) UpdateBalance(ctx context.Context, id string, balance decimal.Decimal, status loan.LoanStatus) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE loans
		SET remaining_balance = $2, status = $3, updated_at = NOW()
		WHERE id = $1
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query, id, balance, status).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return loan.ErrLoanNotFound
		}
		return fmt.Errorf("failed to update loan balance: %w", err)
	}

	return nil
}

func (r *loanRepository) Cancel(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE loans
		SET status = 'cancelled', updated_at = NOW()
		WHERE id = $1 AND status = 'active'
		RETURNING id
	`

	var cancelledID string
	err := q.QueryRow(ctx, query, id).Scan(&cancelledID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return loan.ErrLoanNotActive
		}
		return fmt.Errorf("failed to cancel loan: %w", err)
	}

	return nil
}

func (r *loanRepository) RecordPayment(ctx context.Context, payment loan.LoanPayment) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO loan_payments (loan_id, payroll_item_id, amount, balance_after)
		VALUES ($1, $2, $3, $4)
	`

	_, err := q.Exec(ctx, query,
		payment.LoanID, payment.PayrollItemID, payment.Amount, payment.BalanceAfter,
	)
	if err != nil {
		return fmt.Errorf("failed to record loan payment: %w", err)
	}

	return nil
}

func (r *loanRepository) GetPayments(ctx context.Context, loanID string) ([]loan.LoanPayment, error) {
	query := `
		SELECT id, loan_id, payroll_item_id, amount, balance_after, created_at
		FROM loan_payments
		WHERE loan_id = $1
		ORDER BY created_at
	`
	return r.queryPayments(ctx, query, loanID)
}

func (r *loanRepository) GetPaymentsByRun(ctx context.Context, runID string) ([]loan.LoanPayment, error) {
	query := `
		SELECT lp.id, lp.loan_id, lp.payroll_item_id, lp.amount, lp.balance_after, lp.created_at
		FROM loan_payments lp
		JOIN payroll_items pi ON lp.payroll_item_id = pi.id
		WHERE pi.payroll_run_id = $1
		ORDER BY lp.created_at
	`
	return r.queryPayments(ctx, query, runID)
}

func (r *loanRepository) queryPayments(ctx context.Context, query string, args ...interface{}) ([]loan.LoanPayment, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list loan payments: %w", err)
	}
	defer rows.Close()

	var payments []loan.LoanPayment
	for rows.Next() {
		var p loan.LoanPayment
		if err := rows.Scan(
			&p.ID, &p.LoanID, &p.PayrollItemID, &p.Amount, &p.BalanceAfter, &p.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan loan payment: %w", err)
		}
		payments = append(payments, p)
	}

	return payments, nil
}
