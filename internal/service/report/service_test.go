package report

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caribhr/payroll-backend-go/internal/domain/employee"
	"github.com/caribhr/payroll-backend-go/internal/domain/payroll"
)

type stubRunRepo struct {
	runs map[string]payroll.PayrollRun
}

func (r *stubRunRepo) Create(ctx context.Context, run payroll.PayrollRun) (payroll.PayrollRun, error) {
	return run, nil
}

func (r *stubRunRepo) GetByID(ctx context.Context, id string) (payroll.PayrollRun, error) {
	run, ok := r.runs[id]
	if !ok {
		return payroll.PayrollRun{}, payroll.ErrRunNotFound
	}
	return run, nil
}

func (r *stubRunRepo) GetByPeriod(ctx context.Context, start, end time.Time) (payroll.PayrollRun, error) {
	return payroll.PayrollRun{}, payroll.ErrRunNotFound
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
	items []payroll.PayrollItem
}

func (r *stubItemRepo) CreateBatch(ctx context.Context, items []payroll.PayrollItem) ([]payroll.PayrollItem, error) {
	return items, nil
}

func (r *stubItemRepo) GetByID(ctx context.Context, id string) (payroll.PayrollItem, error) {
	return payroll.PayrollItem{}, payroll.ErrItemNotFound
}

func (r *stubItemRepo) GetByRun(ctx context.Context, runID string) ([]payroll.PayrollItem, error) {
	return r.items, nil
}

func (r *stubItemRepo) Update(ctx context.Context, item payroll.PayrollItem) error { return nil }

func (r *stubItemRepo) DeleteByRun(ctx context.Context, runID string) error { return nil }

type stubEmployeeRepo struct {
	employees map[string]employee.Employee
}

func (r *stubEmployeeRepo) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	return emp, nil
}

func (r *stubEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	emp, ok := r.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (r *stubEmployeeRepo) GetActive(ctx context.Context) ([]employee.Employee, error) {
	return nil, nil
}

func (r *stubEmployeeRepo) Update(ctx context.Context, req employee.UpdateEmployeeRequest) error {
	return nil
}

func (r *stubEmployeeRepo) Delete(ctx context.Context, id string) error { return nil }

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func testService(runs map[string]payroll.PayrollRun, items []payroll.PayrollItem, employees map[string]employee.Employee) *Service {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	return NewService(
		&stubRunRepo{runs: runs},
		&stubItemRepo{items: items},
		&stubEmployeeRepo{employees: employees},
		logger,
	)
}

func TestBuildACHExport_FlagsMissingBankInfo(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	payDate := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)
	runs := map[string]payroll.PayrollRun{
		"run-1": {ID: "run-1", PayDate: payDate, Status: payroll.RunStatusCompleted},
	}
	employees := map[string]employee.Employee{
		"e1": {ID: "e1", FullName: "Anna Joseph", BankName: "ACB", BankAccountNumber: "100200"},
		"e2": {ID: "e2", FullName: "Kwame Browne"}, // no bank details
	}
	items := []payroll.PayrollItem{
		{EmployeeID: "e1", EmployeeCode: "EMP-001", NetPay: dec("2398.54")},
		{EmployeeID: "e2", EmployeeCode: "EMP-002", NetPay: dec("1800")},
	}

	export, err := testService(runs, items, employees).BuildACHExport(ctx, "run-1")

	require.NoError(t, err)
	assert.NotEmpty(t, export.BatchID)
	assert.Equal(t, "2025-06-15", export.PayDate)
	require.Len(t, export.Rows, 1)
	assert.Equal(t, "EMP-001", export.Rows[0].EmployeeCode)
	assert.Equal(t, "ACB", export.Rows[0].BankName)
	require.Len(t, export.Flagged, 1)
	assert.Equal(t, "EMP-002", export.Flagged[0].EmployeeCode)
	// Flagged items never count toward the transfer total.
	assert.True(t, export.Total.Equal(dec("2398.54")), "got %s", export.Total)
}

func TestBuildACHExport_RunNotFound(t *testing.T) {
	t.Parallel()

	_, err := testService(map[string]payroll.PayrollRun{}, nil, nil).BuildACHExport(context.Background(), "missing")

	assert.ErrorIs(t, err, payroll.ErrRunNotFound)
}

func TestBuildDeductionsReport_TotalsAllStatutoryAmounts(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	runs := map[string]payroll.PayrollRun{"run-1": {ID: "run-1"}}
	items := []payroll.PayrollItem{
		{SSEmployee: dec("210"), SSEmployer: dec("270"), MBEmployee: dec("105"), MBEmployer: dec("105"), EduLevy: dec("61.46")},
		{SSEmployee: dec("140"), SSEmployer: dec("180"), MBEmployee: dec("70"), MBEmployer: dec("70"), EduLevy: dec("30")},
	}

	rep, err := testService(runs, items, nil).BuildDeductionsReport(ctx, "run-1")

	require.NoError(t, err)
	assert.True(t, rep.SSEmployee.Equal(dec("350")))
	assert.True(t, rep.SSEmployer.Equal(dec("450")))
	assert.True(t, rep.MBEmployee.Equal(dec("175")))
	assert.True(t, rep.MBEmployer.Equal(dec("175")))
	assert.True(t, rep.EduLevy.Equal(dec("91.46")))
	assert.True(t, rep.Total.Equal(dec("1241.46")), "got %s", rep.Total)
}
