package postgresql

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/caribhr/payroll-backend-go/internal/domain/payroll"
	"github.com/caribhr/payroll-backend-go/internal/pkg/database"
)

type payrollRunRepository struct {
	db *database.DB
}

func NewPayrollRunRepository(db *database.DB) payroll.PayrollRunRepository {
	return &payrollRunRepository{db: db}
}

const runColumns = `
	id, period_start, period_end, pay_date, status, run_by, run_at, finalized_at,
	employee_count, total_gross, total_net, errors, created_at, updated_at
`

func scanRun(row pgx.Row) (payroll.PayrollRun, error) {
	var run payroll.PayrollRun
	var errBytes []byte
	err := row.Scan(
		&run.ID, &run.PeriodStart, &run.PeriodEnd, &run.PayDate, &run.Status, &run.RunBy, &run.RunAt, &run.FinalizedAt,
		&run.EmployeeCount, &run.TotalGross, &run.TotalNet, &errBytes, &run.CreatedAt, &run.UpdatedAt,
	)
	if err != nil {
		return payroll.PayrollRun{}, err
	}
	if len(errBytes) > 0 {
		_ = json.Unmarshal(errBytes, &run.Errors)
	}
	return run, nil
}

func (r *payrollRunRepository) Create(ctx context.Context, run payroll.PayrollRun) (payroll.PayrollRun, error) {
	q := GetQuerier(ctx, r.db)

	errsJSON, _ := json.Marshal(run.Errors)

	query := `
		INSERT INTO payroll_runs (period_start, period_end, pay_date, status, run_by, run_at, employee_count, total_gross, total_net, errors)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + runColumns

	created, err := scanRun(q.QueryRow(ctx, query,
		run.PeriodStart, run.PeriodEnd, run.PayDate, run.Status, run.RunBy, run.RunAt,
		run.EmployeeCount, run.TotalGross, run.TotalNet, errsJSON,
	))
	if err != nil {
		if strings.Contains(err.Error(), "uk_payroll_run_period") {
			return payroll.PayrollRun{}, payroll.ErrDuplicateRunPeriod
		}
		return payroll.PayrollRun{}, fmt.Errorf("failed to create payroll run: %w", err)
	}

	return created, nil
}

func (r *payrollRunRepository) GetByID(ctx context.Context, id string) (payroll.PayrollRun, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + runColumns + ` FROM payroll_runs WHERE id = $1`

	run, err := scanRun(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.PayrollRun{}, payroll.ErrRunNotFound
		}
		return payroll.PayrollRun{}, fmt.Errorf("failed to get payroll run: %w", err)
	}

	return run, nil
}

func (r *payrollRunRepository) GetByPeriod(ctx context.Context, start, end time.Time) (payroll.PayrollRun, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + runColumns + ` FROM payroll_runs WHERE period_start = $1 AND period_end = $2`

	run, err := scanRun(q.QueryRow(ctx, query, start, end))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.PayrollRun{}, payroll.ErrRunNotFound
		}
		return payroll.PayrollRun{}, fmt.Errorf("failed to get payroll run by period: %w", err)
	}

	return run, nil
}

func (r *payrollRunRepository) List(ctx context.Context, limit, offset int) ([]payroll.PayrollRun, error) {
	q := GetQuerier(ctx, r.db)

	if limit <= 0 {
		limit = 20
	}

	query := `
		SELECT ` + runColumns + `
		FROM payroll_runs
		ORDER BY period_start DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll runs: %w", err)
	}
	defer rows.Close()

	var runs []payroll.PayrollRun
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payroll run: %w", err)
		}
		runs = append(runs, run)
	}

	return runs, nil
}

func (r *payrollRunRepository) UpdateCompletion(ctx context.Context, id string, status payroll.RunStatus, employeeCount int, totals payroll.RunTotals, runErrs []payroll.RunError) error {
	q := GetQuerier(ctx, r.db)

	errsJSON, _ := json.Marshal(runErrs)

	query := `
		UPDATE payroll_runs
		SET status = $2, employee_count = $3, total_gross = $4, total_net = $5, errors = $6, updated_at = NOW()
		WHERE id = $1
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query, id, status, employeeCount, totals.Gross, totals.Net, errsJSON).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.ErrRunNotFound
		}
		return fmt.Errorf("failed to update payroll run: %w", err)
	}

	return nil
}

func (r *payrollRunRepository) MarkFinalized(ctx context.Context, id string, finalizedAt time.Time) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payroll_runs
		SET status = 'finalized', finalized_at = $2, updated_at = NOW()
		WHERE id = $1 AND status IN ('completed', 'completed_with_errors')
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query, id, finalizedAt).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.ErrRunNotCompleted
		}
		return fmt.Errorf("failed to finalize payroll run: %w", err)
	}

	return nil
}

func (r *payrollRunRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM payroll_runs WHERE id = $1 AND status != 'finalized' RETURNING id`

	var deletedID string
	err := q.QueryRow(ctx, query, id).Scan(&deletedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.ErrRunNotFound
		}
		return fmt.Errorf("failed to delete payroll run: %w", err)
	}

	return nil
}

type payrollItemRepository struct {
	db *database.DB
}

func NewPayrollItemRepository(db *database.DB) payroll.PayrollItemRepository {
	return &payrollItemRepository{db: db}
}

const itemColumns = `
	id, payroll_run_id, employee_id, employee_code,
	regular_hours, overtime_hours, vacation_hours, leave_hours, holiday_hours, lunch_hours,
	base_pay, overtime_pay, vacation_pay, leave_pay, holiday_pay, gross_pay,
	ss_employee, ss_employer, mb_employee, mb_employer, edu_levy,
	loan_internal, loan_third_party, net_pay,
	overridden, override_reason, override_by, original_net_pay, original_gross_pay,
	ytd_gross, ytd_ss_employee, ytd_mb_employee, ytd_edu_levy, ytd_net,
	warnings, created_at
`

func scanItem(row pgx.Row) (payroll.PayrollItem, error) {
	var it payroll.PayrollItem
	var warnBytes []byte
	err := row.Scan(
		&it.ID, &it.PayrollRunID, &it.EmployeeID, &it.EmployeeCode,
		&it.RegularHours, &it.OvertimeHours, &it.VacationHours, &it.LeaveHours, &it.HolidayHours, &it.LunchHours,
		&it.BasePay, &it.OvertimePay, &it.VacationPay, &it.LeavePay, &it.HolidayPay, &it.GrossPay,
		&it.SSEmployee, &it.SSEmployer, &it.MBEmployee, &it.MBEmployer, &it.EduLevy,
		&it.LoanInternal, &it.LoanThirdParty, &it.NetPay,
		&it.Overridden, &it.OverrideReason, &it.OverrideBy, &it.OriginalNetPay, &it.OriginalGrossPay,
		&it.YTDGross, &it.YTDSSEmployee, &it.YTDMBEmployee, &it.YTDEduLevy, &it.YTDNet,
		&warnBytes, &it.CreatedAt,
	)
	if err != nil {
		return payroll.PayrollItem{}, err
	}
	if len(warnBytes) > 0 {
		_ = json.Unmarshal(warnBytes, &it.Warnings)
	}
	return it, nil
}

func (r *payrollItemRepository) CreateBatch(ctx context.Context, items []payroll.PayrollItem) ([]payroll.PayrollItem, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payroll_items (
			payroll_run_id, employee_id, employee_code,
			regular_hours, overtime_hours, vacation_hours, leave_hours, holiday_hours, lunch_hours,
			base_pay, overtime_pay, vacation_pay, leave_pay, holiday_pay, gross_pay,
			ss_employee, ss_employer, mb_employee, mb_employer, edu_levy,
			loan_internal, loan_third_party, net_pay,
			overridden, override_reason, override_by, original_net_pay, original_gross_pay,
			ytd_gross, ytd_ss_employee, ytd_mb_employee, ytd_edu_levy, ytd_net, warnings
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17,
			$18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28, $29, $30, $31, $32, $33, $34)
		RETURNING ` + itemColumns

	created := make([]payroll.PayrollItem, 0, len(items))
	for _, it := range items {
		warnJSON, _ := json.Marshal(it.Warnings)
		saved, err := scanItem(q.QueryRow(ctx, query,
			it.PayrollRunID, it.EmployeeID, it.EmployeeCode,
			it.RegularHours, it.OvertimeHours, it.VacationHours, it.LeaveHours, it.HolidayHours, it.LunchHours,
			it.BasePay, it.OvertimePay, it.VacationPay, it.LeavePay, it.HolidayPay, it.GrossPay,
			it.SSEmployee, it.SSEmployer, it.MBEmployee, it.MBEmployer, it.EduLevy,
			it.LoanInternal, it.LoanThirdParty, it.NetPay,
			it.Overridden, it.OverrideReason, it.OverrideBy, it.OriginalNetPay, it.OriginalGrossPay,
			it.YTDGross, it.YTDSSEmployee, it.YTDMBEmployee, it.YTDEduLevy, it.YTDNet, warnJSON,
		))
		if err != nil {
			return nil, fmt.Errorf("failed to insert payroll item for %s: %w", it.EmployeeCode, err)
		}
		created = append(created, saved)
	}

	return created, nil
}

func (r *payrollItemRepository) GetByID(ctx context.Context, id string) (payroll.PayrollItem, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + itemColumns + ` FROM payroll_items WHERE id = $1`

	it, err := scanItem(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.PayrollItem{}, payroll.ErrItemNotFound
		}
		return payroll.PayrollItem{}, fmt.Errorf("failed to get payroll item: %w", err)
	}

	return it, nil
}

func (r *payrollItemRepository) GetByRun(ctx context.Context, runID string) ([]payroll.PayrollItem, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + itemColumns + ` FROM payroll_items WHERE payroll_run_id = $1 ORDER BY employee_code`

	rows, err := q.Query(ctx, query, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll items: %w", err)
	}
	defer rows.Close()

	var items []payroll.PayrollItem
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payroll item: %w", err)
		}
		items = append(items, it)
	}

	return items, nil
}

func (r *payrollItemRepository) Update(ctx context.Context, item payroll.PayrollItem) error {
	q := GetQuerier(ctx, r.db)

	warnJSON, _ := json.Marshal(item.Warnings)

	query := `
		UPDATE payroll_items
		SET gross_pay = $2, net_pay = $3,
			overridden = $4, override_reason = $5, override_by = $6,
			original_net_pay = $7, original_gross_pay = $8,
			ytd_gross = $9, ytd_ss_employee = $10, ytd_mb_employee = $11, ytd_edu_levy = $12, ytd_net = $13,
			warnings = $14
		WHERE id = $1
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query,
		item.ID, item.GrossPay, item.NetPay,
		item.Overridden, item.OverrideReason, item.OverrideBy,
		item.OriginalNetPay, item.OriginalGrossPay,
		item.YTDGross, item.YTDSSEmployee, item.YTDMBEmployee, item.YTDEduLevy, item.YTDNet,
		warnJSON,
	).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.ErrItemNotFound
		}
		return fmt.Errorf("failed to update payroll item: %w", err)
	}

	return nil
}

func (r *payrollItemRepository) DeleteByRun(ctx context.Context, runID string) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM payroll_items WHERE payroll_run_id = $1`, runID); err != nil {
		return fmt.Errorf("failed to delete payroll items: %w", err)
	}

	return nil
}
