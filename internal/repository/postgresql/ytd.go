package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/caribhr/payroll-backend-go/internal/domain/payroll"
	"github.com/caribhr/payroll-backend-go/internal/pkg/database"
)

type ytdRepository struct {
	db *database.DB
}

func NewYTDRepository(db *database.DB) payroll.YTDRepository {
	return &ytdRepository{db: db}
}

func (r *ytdRepository) Get(ctx context.Context, employeeID string, year int) (payroll.YTDSummary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT employee_id, year, gross, ss_employee, ss_employer,
			mb_employee, mb_employer, edu_levy, loan_repaid, net, updated_at
		FROM ytd_summaries
		WHERE employee_id = $1 AND year = $2
	`

	var s payroll.YTDSummary
	err := q.QueryRow(ctx, query, employeeID, year).Scan(
		&s.EmployeeID, &s.Year, &s.Gross, &s.SSEmployee, &s.SSEmployer,
		&s.MBEmployee, &s.MBEmployer, &s.EduLevy, &s.LoanRepaid, &s.Net, &s.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			// A missing row reads as a zeroed summary.
			return payroll.YTDSummary{
				EmployeeID: employeeID,
				Year:       year,
				Gross:      decimal.Zero,
				SSEmployee: decimal.Zero,
				SSEmployer: decimal.Zero,
				MBEmployee: decimal.Zero,
				MBEmployer: decimal.Zero,
				EduLevy:    decimal.Zero,
				LoanRepaid: decimal.Zero,
				Net:        decimal.Zero,
			}, nil
		}
		return payroll.YTDSummary{}, fmt.Errorf("failed to get ytd summary: %w", err)
	}

	return s, nil
}

func (r *ytdRepository) Upsert(ctx context.Context, summary payroll.YTDSummary) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO ytd_summaries (
			employee_id, year, gross, ss_employee, ss_employer,
			mb_employee, mb_employer, edu_levy, loan_repaid, net
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (employee_id, year) DO UPDATE SET
			gross = EXCLUDED.gross,
			ss_employee = EXCLUDED.ss_employee,
			ss_employer = EXCLUDED.ss_employer,
			mb_employee = EXCLUDED.mb_employee,
			mb_employer = EXCLUDED.mb_employer,
			edu_levy = EXCLUDED.edu_levy,
			loan_repaid = EXCLUDED.loan_repaid,
			net = EXCLUDED.net,
			updated_at = NOW()
	`

	_, err := q.Exec(ctx, query,
		summary.EmployeeID, summary.Year, summary.Gross, summary.SSEmployee, summary.SSEmployer,
		summary.MBEmployee, summary.MBEmployer, summary.EduLevy, summary.LoanRepaid, summary.Net,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert ytd summary: %w", err)
	}

	return nil
}
