package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/caribhr/payroll-backend-go/internal/domain/rates"
	"github.com/caribhr/payroll-backend-go/internal/pkg/database"
)

type rateTableRepository struct {
	db *database.DB
}

func NewRateTableRepository(db *database.DB) rates.RateTableRepository {
	return &rateTableRepository{db: db}
}

const rateTableColumns = `
	id, ss_employee_rate, ss_employer_rate, ss_max_monthly_insurable,
	mb_employee_rate, mb_employer_rate, mb_senior_employee_rate, senior_age, max_age,
	el_low_rate, el_high_rate, el_monthly_threshold, el_monthly_exemption,
	nurse_day_rate, nurse_night_rate, nurse_weekend_rate, day_shift_start, day_shift_end,
	holiday_pay_enabled, effective_date, created_at, updated_at
`

func scanRateTable(row pgx.Row) (rates.RateTable, error) {
	var t rates.RateTable
	err := row.Scan(
		&t.ID, &t.SSEmployeeRate, &t.SSEmployerRate, &t.SSMaxMonthlyInsurable,
		&t.MBEmployeeRate, &t.MBEmployerRate, &t.MBSeniorEmployeeRate, &t.SeniorAge, &t.MaxAge,
		&t.ELLowRate, &t.ELHighRate, &t.ELMonthlyThreshold, &t.ELMonthlyExemption,
		&t.NurseDayRate, &t.NurseNightRate, &t.NurseWeekendRate, &t.DayShiftStart, &t.DayShiftEnd,
		&t.HolidayPayEnabled, &t.EffectiveDate, &t.CreatedAt, &t.UpdatedAt,
	)
	return t, err
}

func (r *rateTableRepository) GetActive(ctx context.Context) (rates.RateTable, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + rateTableColumns + `
		FROM rate_tables
		WHERE effective_date <= CURRENT_DATE
		ORDER BY effective_date DESC
		LIMIT 1
	`

	t, err := scanRateTable(q.QueryRow(ctx, query))
	if err != nil {
		if err == pgx.ErrNoRows {
			return rates.RateTable{}, rates.ErrNoActiveRateTable
		}
		return rates.RateTable{}, fmt.Errorf("failed to get active rate table: %w", err)
	}

	return t, nil
}

func (r *rateTableRepository) Upsert(ctx context.Context, table rates.RateTable) (rates.RateTable, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO rate_tables (
			ss_employee_rate, ss_employer_rate, ss_max_monthly_insurable,
			mb_employee_rate, mb_employer_rate, mb_senior_employee_rate, senior_age, max_age,
			el_low_rate, el_high_rate, el_monthly_threshold, el_monthly_exemption,
			nurse_day_rate, nurse_night_rate, nurse_weekend_rate, day_shift_start, day_shift_end,
			holiday_pay_enabled, effective_date
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
		ON CONFLICT (effective_date) DO UPDATE SET
			ss_employee_rate = EXCLUDED.ss_employee_rate,
			ss_employer_rate = EXCLUDED.ss_employer_rate,
			ss_max_monthly_insurable = EXCLUDED.ss_max_monthly_insurable,
			mb_employee_rate = EXCLUDED.mb_employee_rate,
			mb_employer_rate = EXCLUDED.mb_employer_rate,
			mb_senior_employee_rate = EXCLUDED.mb_senior_employee_rate,
			senior_age = EXCLUDED.senior_age,
			max_age = EXCLUDED.max_age,
			el_low_rate = EXCLUDED.el_low_rate,
			el_high_rate = EXCLUDED.el_high_rate,
			el_monthly_threshold = EXCLUDED.el_monthly_threshold,
			el_monthly_exemption = EXCLUDED.el_monthly_exemption,
			nurse_day_rate = EXCLUDED.nurse_day_rate,
			nurse_night_rate = EXCLUDED.nurse_night_rate,
			nurse_weekend_rate = EXCLUDED.nurse_weekend_rate,
			day_shift_start = EXCLUDED.day_shift_start,
			day_shift_end = EXCLUDED.day_shift_end,
			holiday_pay_enabled = EXCLUDED.holiday_pay_enabled,
			updated_at = NOW()
		RETURNING ` + rateTableColumns

	t, err := scanRateTable(q.QueryRow(ctx, query,
		table.SSEmployeeRate, table.SSEmployerRate, table.SSMaxMonthlyInsurable,
		table.MBEmployeeRate, table.MBEmployerRate, table.MBSeniorEmployeeRate, table.SeniorAge, table.MaxAge,
		table.ELLowRate, table.ELHighRate, table.ELMonthlyThreshold, table.ELMonthlyExemption,
		table.NurseDayRate, table.NurseNightRate, table.NurseWeekendRate, table.DayShiftStart, table.DayShiftEnd,
		table.HolidayPayEnabled, table.EffectiveDate,
	))
	if err != nil {
		return rates.RateTable{}, fmt.Errorf("failed to upsert rate table: %w", err)
	}

	return t, nil
}
