package specialpay

import (
	"context"
	"time"
)

type EntryRepository interface {
	Create(ctx context.Context, entry Entry) (Entry, error)
	GetApprovedByEmployeeAndRange(ctx context.Context, employeeID string, start, end time.Time) ([]Entry, error)
	UpdateStatus(ctx context.Context, id string, status EntryStatus) error
}
