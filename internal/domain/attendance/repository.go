package attendance

import (
	"context"
	"time"
)

type HourEntryRepository interface {
	Create(ctx context.Context, entry HourEntry) (HourEntry, error)
	GetByEmployeeAndRange(ctx context.Context, employeeID string, start, end time.Time) ([]HourEntry, error)
}
