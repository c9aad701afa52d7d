package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/caribhr/payroll-backend-go/internal/domain/specialpay"
	"github.com/caribhr/payroll-backend-go/internal/pkg/database"
)

type specialPayRepository struct {
	db *database.DB
}

func NewSpecialPayRepository(db *database.DB) specialpay.EntryRepository {
	return &specialPayRepository{db: db}
}

func (r *specialPayRepository) Create(ctx context.Context, entry specialpay.Entry) (specialpay.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO special_pay_entries (employee_id, type, start_date, end_date, total_hours, rate_override, status, note)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, employee_id, type, start_date, end_date, total_hours, rate_override, status, note, created_at, updated_at
	`

	var e specialpay.Entry
	err := q.QueryRow(ctx, query,
		entry.EmployeeID, entry.Type, entry.StartDate, entry.EndDate, entry.TotalHours, entry.RateOverride, entry.Status, entry.Note,
	).Scan(
		&e.ID, &e.EmployeeID, &e.Type, &e.StartDate, &e.EndDate, &e.TotalHours, &e.RateOverride, &e.Status, &e.Note, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return specialpay.Entry{}, fmt.Errorf("failed to create special pay entry: %w", err)
	}

	return e, nil
}

func (r *specialPayRepository) GetApprovedByEmployeeAndRange(ctx context.Context, employeeID string, start, end time.Time) ([]specialpay.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, type, start_date, end_date, total_hours, rate_override, status, note, created_at, updated_at
		FROM special_pay_entries
		WHERE employee_id = $1 AND status = 'approved'
			AND start_date <= $3 AND end_date >= $2
		ORDER BY start_date
	`

	rows, err := q.Query(ctx, query, employeeID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list special pay entries: %w", err)
	}
	defer rows.Close()

	var entries []specialpay.Entry
	for rows.Next() {
		var e specialpay.Entry
		if err := rows.Scan(
			&e.ID, &e.EmployeeID, &e.Type, &e.StartDate, &e.EndDate, &e.TotalHours, &e.RateOverride, &e.Status, &e.Note, &e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan special pay entry: %w", err)
		}
		entries = append(entries, e)
	}

	return entries, nil
}

func (r *specialPayRepository) UpdateStatus(ctx context.Context, id string, status specialpay.EntryStatus) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE special_pay_entries
		SET status = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query, id, status).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return specialpay.ErrEntryNotFound
		}
		return fmt.Errorf("failed to update special pay entry status: %w", err)
	}

	return nil
}
