package payroll

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type PayrollRunRepository interface {
	Create(ctx context.Context, run PayrollRun) (PayrollRun, error)
	GetByID(ctx context.Context, id string) (PayrollRun, error)
	GetByPeriod(ctx context.Context, start, end time.Time) (PayrollRun, error)
	List(ctx context.Context, limit, offset int) ([]PayrollRun, error)
	UpdateCompletion(ctx context.Context, id string, status RunStatus, employeeCount int, totals RunTotals, errs []RunError) error
	MarkFinalized(ctx context.Context, id string, finalizedAt time.Time) error
	Delete(ctx context.Context, id string) error
}

// RunTotals carries the aggregate figures written back when a run completes.
type RunTotals struct {
	Gross decimal.Decimal
	Net   decimal.Decimal
}

type PayrollItemRepository interface {
	CreateBatch(ctx context.Context, items []PayrollItem) ([]PayrollItem, error)
	GetByID(ctx context.Context, id string) (PayrollItem, error)
	GetByRun(ctx context.Context, runID string) ([]PayrollItem, error)
	Update(ctx context.Context, item PayrollItem) error
	DeleteByRun(ctx context.Context, runID string) error
}

type YTDRepository interface {
	Get(ctx context.Context, employeeID string, year int) (YTDSummary, error)
	Upsert(ctx context.Context, summary YTDSummary) error
}
