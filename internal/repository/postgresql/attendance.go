package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/caribhr/payroll-backend-go/internal/domain/attendance"
	"github.com/caribhr/payroll-backend-go/internal/pkg/database"
)

type hourEntryRepository struct {
	db *database.DB
}

func NewHourEntryRepository(db *database.DB) attendance.HourEntryRepository {
	return &hourEntryRepository{db: db}
}

func (r *hourEntryRepository) Create(ctx context.Context, entry attendance.HourEntry) (attendance.HourEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO hour_entries (employee_id, work_date, hours, start_time, lunch_excluded)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, employee_id, work_date, hours, start_time, lunch_excluded, created_at
	`

	var e attendance.HourEntry
	err := q.QueryRow(ctx, query,
		entry.EmployeeID, entry.WorkDate, entry.Hours, entry.StartTime, entry.LunchExcluded,
	).Scan(
		&e.ID, &e.EmployeeID, &e.WorkDate, &e.Hours, &e.StartTime, &e.LunchExcluded, &e.CreatedAt,
	)
	if err != nil {
		return attendance.HourEntry{}, fmt.Errorf("failed to create hour entry: %w", err)
	}

	return e, nil
}

func (r *hourEntryRepository) GetByEmployeeAndRange(ctx context.Context, employeeID string, start, end time.Time) ([]attendance.HourEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, work_date, hours, start_time, lunch_excluded, created_at
		FROM hour_entries
		WHERE employee_id = $1 AND work_date >= $2 AND work_date <= $3
		ORDER BY work_date
	`

	rows, err := q.Query(ctx, query, employeeID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list hour entries: %w", err)
	}
	defer rows.Close()

	var entries []attendance.HourEntry
	for rows.Next() {
		var e attendance.HourEntry
		if err := rows.Scan(
			&e.ID, &e.EmployeeID, &e.WorkDate, &e.Hours, &e.StartTime, &e.LunchExcluded, &e.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan hour entry: %w", err)
		}
		entries = append(entries, e)
	}

	return entries, nil
}
