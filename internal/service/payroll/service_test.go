package payroll

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/caribhr/payroll-backend-go/internal/domain/payroll"
	"github.com/caribhr/payroll-backend-go/internal/pkg/validator"
)

// The guard paths below (request validation, duplicate-period conflict,
// finalized-run refusal) all reject before the run transaction opens, so they
// are exercised with repository stubs and no database.

type stubRunRepo struct {
	byPeriod payroll.PayrollRun
	byID     payroll.PayrollRun
	created  int
}

func (r *stubRunRepo) Create(ctx context.Context, run payroll.PayrollRun) (payroll.PayrollRun, error) {
	r.created++
	return run, nil
}

func (r *stubRunRepo) GetByID(ctx context.Context, id string) (payroll.PayrollRun, error) {
	if r.byID.ID == "" {
		return payroll.PayrollRun{}, payroll.ErrRunNotFound
	}
	return r.byID, nil
}

func (r *stubRunRepo) GetByPeriod(ctx context.Context, start, end time.Time) (payroll.PayrollRun, error) {
	if r.byPeriod.ID == "" {
		return payroll.PayrollRun{}, payroll.ErrRunNotFound
	}
	return r.byPeriod, nil
}

func (r *stubRunRepo) List(ctx context.Context, limit, offset int) ([]payroll.PayrollRun, error) {
	return nil, nil
}

func (r *stubRunRepo) UpdateCompletion(ctx context.Context, id string, status payroll.RunStatus, employeeCount int, totals payroll.RunTotals, errs []payroll.RunError) error {
	return nil
}

func (r *stubRunRepo) MarkFinalized(ctx context.Context, id string, finalizedAt time.Time) error {
	return nil
}

func (r *stubRunRepo) Delete(ctx context.Context, id string) error { return nil }

type stubItemRepo struct {
	byID payroll.PayrollItem
}

func (r *stubItemRepo) CreateBatch(ctx context.Context, items []payroll.PayrollItem) ([]payroll.PayrollItem, error) {
	return items, nil
}

func (r *stubItemRepo) GetByID(ctx context.Context, id string) (payroll.PayrollItem, error) {
	if r.byID.ID == "" {
		return payroll.PayrollItem{}, payroll.ErrItemNotFound
	}
	return r.byID, nil
}

func (r *stubItemRepo) GetByRun(ctx context.Context, runID string) ([]payroll.PayrollItem, error) {
	return nil, nil
}

func (r *stubItemRepo) Update(ctx context.Context, item payroll.PayrollItem) error { return nil }

func (r *stubItemRepo) DeleteByRun(ctx context.Context, runID string) error { return nil }

func guardTestService(runRepo *stubRunRepo, itemRepo *stubItemRepo) *Service {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	return NewService(nil, nil, nil, nil, nil, nil, runRepo, itemRepo, nil, logger, 1)
}

func TestRun_InvalidRequestRejected(t *testing.T) {
	t.Parallel()

	s := guardTestService(&stubRunRepo{}, &stubItemRepo{})

	_, err := s.Run(context.Background(), payroll.RunPayrollRequest{
		PeriodStart: "2025-06-15",
		PeriodEnd:   "2025-06-02",
		Frequency:   "Bi-Weekly",
	})

	var verrs validator.ValidationErrors
	assert.ErrorAs(t, err, &verrs)
}

func TestRun_DuplicatePeriodConflict(t *testing.T) {
	t.Parallel()

	runRepo := &stubRunRepo{
		byPeriod: payroll.PayrollRun{ID: "run-1", Status: payroll.RunStatusCompleted},
	}
	s := guardTestService(runRepo, &stubItemRepo{})

	_, err := s.Run(context.Background(), payroll.RunPayrollRequest{
		PeriodStart: "2025-06-02",
		PeriodEnd:   "2025-06-15",
		Frequency:   "Bi-Weekly",
		RunBy:       "admin",
	})

	assert.ErrorIs(t, err, payroll.ErrDuplicateRunPeriod)
	assert.Zero(t, runRepo.created, "nothing may persist on a conflict")
}

func TestRun_FinalizedPeriodConflict(t *testing.T) {
	t.Parallel()

	runRepo := &stubRunRepo{
		byPeriod: payroll.PayrollRun{ID: "run-1", Status: payroll.RunStatusFinalized},
	}
	s := guardTestService(runRepo, &stubItemRepo{})

	_, err := s.Run(context.Background(), payroll.RunPayrollRequest{
		PeriodStart: "2025-06-02",
		PeriodEnd:   "2025-06-15",
		Frequency:   "Bi-Weekly",
		RunBy:       "admin",
	})

	assert.ErrorIs(t, err, payroll.ErrDuplicateRunPeriod)
}

func TestFinalize_AlreadyFinalized(t *testing.T) {
	t.Parallel()

	runRepo := &stubRunRepo{
		byID: payroll.PayrollRun{ID: "run-1", Status: payroll.RunStatusFinalized},
	}
	s := guardTestService(runRepo, &stubItemRepo{})

	_, err := s.Finalize(context.Background(), "run-1")

	assert.ErrorIs(t, err, payroll.ErrRunAlreadyFinal)
}

func TestDeleteRun_FinalizedRefused(t *testing.T) {
	t.Parallel()

	runRepo := &stubRunRepo{
		byID: payroll.PayrollRun{ID: "run-1", Status: payroll.RunStatusFinalized},
	}
	s := guardTestService(runRepo, &stubItemRepo{})

	err := s.DeleteRun(context.Background(), "run-1")

	assert.ErrorIs(t, err, payroll.ErrRunFinalized)
}

func TestOverrideItem_FinalizedRunRefused(t *testing.T) {
	t.Parallel()

	runRepo := &stubRunRepo{
		byID: payroll.PayrollRun{ID: "run-1", Status: payroll.RunStatusFinalized},
	}
	itemRepo := &stubItemRepo{
		byID: payroll.PayrollItem{ID: "item-1", PayrollRunID: "run-1"},
	}
	s := guardTestService(runRepo, itemRepo)

	_, err := s.OverrideItem(context.Background(), "item-1", payroll.OverrideRequest{
		NetPay:    dec("2500"),
		Reason:    "adjustment",
		AppliedBy: "admin",
	})

	assert.ErrorIs(t, err, payroll.ErrRunFinalized)
}
