package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/caribhr/payroll-backend-go/internal/domain/employee"
	"github.com/caribhr/payroll-backend-go/internal/pkg/database"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

const employeeColumns = `
	id, employee_code, full_name, classification, pay_frequency,
	monthly_salary, hourly_rate, standard_hours_per_week, shifts_per_week,
	is_exempt_ss, is_exempt_medical, dob, employment_status,
	bank_name, bank_account_number, created_at, updated_at, deleted_at
`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var e employee.Employee
	err := row.Scan(
		&e.ID, &e.EmployeeCode, &e.FullName, &e.Classification, &e.PayFrequency,
		&e.MonthlySalary, &e.HourlyRate, &e.StandardHoursPerWeek, &e.ShiftsPerWeek,
		&e.IsExemptSS, &e.IsExemptMedical, &e.DOB, &e.EmploymentStatus,
		&e.BankName, &e.BankAccountNumber, &e.CreatedAt, &e.UpdatedAt, &e.DeletedAt,
	)
	return e, err
}

func (r *employeeRepository) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (
			employee_code, full_name, classification, pay_frequency,
			monthly_salary, hourly_rate, standard_hours_per_week, shifts_per_week,
			is_exempt_ss, is_exempt_medical, dob, employment_status,
			bank_name, bank_account_number
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING ` + employeeColumns

	created, err := scanEmployee(q.QueryRow(ctx, query,
		emp.EmployeeCode, emp.FullName, emp.Classification, emp.PayFrequency,
		emp.MonthlySalary, emp.HourlyRate, emp.StandardHoursPerWeek, emp.ShiftsPerWeek,
		emp.IsExemptSS, emp.IsExemptMedical, emp.DOB, emp.EmploymentStatus,
		emp.BankName, emp.BankAccountNumber,
	))
	if err != nil {
		if strings.Contains(err.Error(), "uk_employee_code") {
			return employee.Employee{}, employee.ErrEmployeeCodeExists
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return created, nil
}

func (r *employeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1 AND deleted_at IS NULL`

	e, err := scanEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return e, nil
}

func (r *employeeRepository) GetActive(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees
		WHERE employment_status = 'active' AND deleted_at IS NULL
		ORDER BY employee_code
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list active employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, e)
	}

	return employees, nil
}

func (r *employeeRepository) Update(ctx context.Context, req employee.UpdateEmployeeRequest) error {
	q := GetQuerier(ctx, r.db)

	setParts := []string{"updated_at = NOW()"}
	args := []interface{}{req.ID}
	argIdx := 2

	if req.FullName != nil {
		setParts = append(setParts, fmt.Sprintf("full_name = $%d", argIdx))
		args = append(args, *req.FullName)
		argIdx++
	}
	if req.MonthlySalary != nil {
		setParts = append(setParts, fmt.Sprintf("monthly_salary = $%d", argIdx))
		args = append(args, *req.MonthlySalary)
		argIdx++
	}
	if req.HourlyRate != nil {
		setParts = append(setParts, fmt.Sprintf("hourly_rate = $%d", argIdx))
		args = append(args, *req.HourlyRate)
		argIdx++
	}
	if req.StandardHoursPerWeek != nil {
		setParts = append(setParts, fmt.Sprintf("standard_hours_per_week = $%d", argIdx))
		args = append(args, *req.StandardHoursPerWeek)
		argIdx++
	}
	if req.IsExemptSS != nil {
		setParts = append(setParts, fmt.Sprintf("is_exempt_ss = $%d", argIdx))
		args = append(args, *req.IsExemptSS)
		argIdx++
	}
	if req.IsExemptMedical != nil {
		setParts = append(setParts, fmt.Sprintf("is_exempt_medical = $%d", argIdx))
		args = append(args, *req.IsExemptMedical)
		argIdx++
	}
	if req.EmploymentStatus != nil {
		setParts = append(setParts, fmt.Sprintf("employment_status = $%d", argIdx))
		args = append(args, *req.EmploymentStatus)
		argIdx++
	}
	if req.BankName != nil {
		setParts = append(setParts, fmt.Sprintf("bank_name = $%d", argIdx))
		args = append(args, *req.BankName)
		argIdx++
	}
	if req.BankAccountNumber != nil {
		setParts = append(setParts, fmt.Sprintf("bank_account_number = $%d", argIdx))
		args = append(args, *req.BankAccountNumber)
		argIdx++
	}

	query := fmt.Sprintf(`
		UPDATE employees
		SET %s
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING id
	`, strings.Join(setParts, ", "))

	var updatedID string
	err := q.QueryRow(ctx, query, args...).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to update employee: %w", err)
	}

	return nil
}

func (r *employeeRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET deleted_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING id
	`

	var deletedID string
	err := q.QueryRow(ctx, query, id).Scan(&deletedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to delete employee: %w", err)
	}

	return nil
}
