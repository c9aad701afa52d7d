package payroll

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/caribhr/payroll-backend-go/internal/domain/attendance"
	"github.com/caribhr/payroll-backend-go/internal/domain/employee"
	"github.com/caribhr/payroll-backend-go/internal/domain/loan"
	"github.com/caribhr/payroll-backend-go/internal/domain/payroll"
	"github.com/caribhr/payroll-backend-go/internal/domain/rates"
	"github.com/caribhr/payroll-backend-go/internal/domain/specialpay"
	"github.com/caribhr/payroll-backend-go/internal/pkg/database"
	"github.com/caribhr/payroll-backend-go/internal/repository/postgresql"
)

// Service orchestrates payroll runs: it fans per-employee computation across
// a bounded worker pool, joins the results, and persists the run atomically.
type Service struct {
	db           *database.DB
	employeeRepo employee.EmployeeRepository
	rateRepo     rates.RateTableRepository
	hourRepo     attendance.HourEntryRepository
	specialRepo  specialpay.EntryRepository
	loanRepo     loan.LoanRepository
	runRepo      payroll.PayrollRunRepository
	itemRepo     payroll.PayrollItemRepository
	ytdRepo      payroll.YTDRepository
	logger       *slog.Logger
	workers      int
}

func NewService(
	db *database.DB,
	employeeRepo employee.EmployeeRepository,
	rateRepo rates.RateTableRepository,
	hourRepo attendance.HourEntryRepository,
	specialRepo specialpay.EntryRepository,
	loanRepo loan.LoanRepository,
	runRepo payroll.PayrollRunRepository,
	itemRepo payroll.PayrollItemRepository,
	ytdRepo payroll.YTDRepository,
	logger *slog.Logger,
	workers int,
) *Service {
	if workers < 1 {
		workers = 1
	}
	return &Service{
		db:           db,
		employeeRepo: employeeRepo,
		rateRepo:     rateRepo,
		hourRepo:     hourRepo,
		specialRepo:  specialRepo,
		loanRepo:     loanRepo,
		runRepo:      runRepo,
		itemRepo:     itemRepo,
		ytdRepo:      ytdRepo,
		logger:       logger,
		workers:      workers,
	}
}

// RunResult is what a caller gets back from a payroll run: the persisted run
// with its manifest and the ordered items that committed.
type RunResult struct {
	Run   payroll.PayrollRun
	Items []payroll.PayrollItem
}

type computeOutcome struct {
	item payroll.PayrollItem
	err  error
	emp  employee.Employee
}

// Run executes payroll for every active employee over the requested period.
// Per-employee failures are collected into the run's error manifest and the
// run completes as completed_with_errors; configuration and conflict errors
// reject the request before anything persists.
func (s *Service) Run(ctx context.Context, req payroll.RunPayrollRequest) (RunResult, error) {
	if err := req.Validate(); err != nil {
		return RunResult{}, err
	}

	start, _ := time.Parse("2006-01-02", req.PeriodStart)
	end, _ := time.Parse("2006-01-02", req.PeriodEnd)
	payDate := end
	if req.PayDate != "" {
		payDate, _ = time.Parse("2006-01-02", req.PayDate)
	}

	period := payroll.PayPeriod{Start: start, End: end, Frequency: employee.PayFrequency(req.Frequency)}

	// Duplicate fingerprint check. A run that completed with errors is
	// replaced on re-run; any other existing run for the window is a conflict.
	if existing, err := s.runRepo.GetByPeriod(ctx, start, end); err == nil {
		if existing.Status != payroll.RunStatusCompletedWithErrors {
			return RunResult{}, payroll.ErrDuplicateRunPeriod
		}
		if err := s.DeleteRun(ctx, existing.ID); err != nil {
			return RunResult{}, fmt.Errorf("replace errored run: %w", err)
		}
	} else if !errors.Is(err, payroll.ErrRunNotFound) {
		return RunResult{}, err
	}

	table, err := s.rateRepo.GetActive(ctx)
	if err != nil {
		return RunResult{}, err
	}

	employees, err := s.employeeRepo.GetActive(ctx)
	if err != nil {
		return RunResult{}, err
	}

	outcomes := s.computeAll(ctx, employees, period, payDate, table)

	var items []payroll.PayrollItem
	var manifest []payroll.RunError
	for _, out := range outcomes {
		if out.err != nil {
			s.logger.Warn("employee payroll computation failed",
				slog.String("employee_code", out.emp.EmployeeCode),
				slog.String("error", out.err.Error()),
			)
			manifest = append(manifest, payroll.RunError{
				EmployeeID:   out.emp.ID,
				EmployeeCode: out.emp.EmployeeCode,
				Message:      out.err.Error(),
			})
			continue
		}
		items = append(items, out.item)
	}

	sort.Slice(items, func(i, j int) bool { return items[i].EmployeeCode < items[j].EmployeeCode })

	status := payroll.RunStatusCompleted
	if len(manifest) > 0 {
		status = payroll.RunStatusCompletedWithErrors
	}

	var result RunResult
	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		run, err := s.runRepo.Create(txCtx, payroll.PayrollRun{
			PeriodStart: start,
			PeriodEnd:   end,
			PayDate:     payDate,
			Status:      payroll.RunStatusProcessing,
			RunBy:       req.RunBy,
			RunAt:       time.Now().UTC(),
			TotalGross:  decimal.Zero,
			TotalNet:    decimal.Zero,
		})
		if err != nil {
			return err
		}

		// Loan deduction and YTD folding happen here, under the transaction,
		// with per-loan row locks; the order per employee is fixed: compute,
		// deduct loans, update YTD.
		ledgers := make([][]LedgerInstruction, len(items))
		totals := payroll.RunTotals{Gross: decimal.Zero, Net: decimal.Zero}
		for i := range items {
			items[i].PayrollRunID = run.ID

			loans, err := s.loanRepo.GetActiveForUpdate(txCtx, items[i].EmployeeID)
			if err != nil {
				return err
			}
			ld := ComputeLoanDeductions(loans)
			for _, skipped := range ld.Skipped {
				s.logger.Warn("skipping non-active loan", slog.String("loan_id", skipped))
			}
			items[i].LoanInternal = roundMoney(ld.Internal)
			items[i].LoanThirdParty = roundMoney(ld.ThirdParty)
			items[i].NetPay = roundMoney(items[i].GrossPay.
				Sub(items[i].SSEmployee).Sub(items[i].MBEmployee).Sub(items[i].EduLevy).
				Sub(items[i].LoanInternal).Sub(items[i].LoanThirdParty))
			ledgers[i] = ld.Ledger

			prior, err := s.ytdRepo.Get(txCtx, items[i].EmployeeID, payDate.Year())
			if err != nil {
				return err
			}
			updated := FoldYTD(prior, items[i])
			items[i].YTDGross = updated.Gross
			items[i].YTDSSEmployee = updated.SSEmployee
			items[i].YTDMBEmployee = updated.MBEmployee
			items[i].YTDEduLevy = updated.EduLevy
			items[i].YTDNet = updated.Net
			if err := s.ytdRepo.Upsert(txCtx, updated); err != nil {
				return err
			}

			totals.Gross = totals.Gross.Add(items[i].GrossPay)
			totals.Net = totals.Net.Add(items[i].NetPay)
		}

		saved, err := s.itemRepo.CreateBatch(txCtx, items)
		if err != nil {
			return err
		}

		for i, instrs := range ledgers {
			for _, instr := range instrs {
				if err := s.loanRepo.RecordPayment(txCtx, loan.LoanPayment{
					LoanID:        instr.LoanID,
					PayrollItemID: saved[i].ID,
					Amount:        instr.Amount,
					BalanceAfter:  instr.NewBalance,
				}); err != nil {
					return err
				}
				if err := s.loanRepo.UpdateBalance(txCtx, instr.LoanID, instr.NewBalance, instr.NewStatus); err != nil {
					return err
				}
			}
		}

		if err := s.runRepo.UpdateCompletion(txCtx, run.ID, status, len(saved), totals, manifest); err != nil {
			return err
		}

		run.Status = status
		run.EmployeeCount = len(saved)
		run.TotalGross = totals.Gross
		run.TotalNet = totals.Net
		run.Errors = manifest
		result = RunResult{Run: run, Items: saved}
		return nil
	})
	if err != nil {
		return RunResult{}, err
	}

	s.logger.Info("payroll run completed",
		slog.String("run_id", result.Run.ID),
		slog.String("status", string(status)),
		slog.Int("employees", result.Run.EmployeeCount),
		slog.Int("failures", len(manifest)),
	)

	return result, nil
}

// computeAll fans per-employee computation across the worker pool. Each
// computation is independent; results join before persistence.
func (s *Service) computeAll(ctx context.Context, employees []employee.Employee, period payroll.PayPeriod, payDate time.Time, table rates.RateTable) []computeOutcome {
	outcomes := make([]computeOutcome, len(employees))
	jobs := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < s.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				item, err := s.computeEmployee(ctx, employees[i], period, payDate, table)
				outcomes[i] = computeOutcome{item: item, err: err, emp: employees[i]}
			}
		}()
	}

	for i := range employees {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return outcomes
}

// computeEmployee produces one employee's item up to the statutory
// deductions. Loans and YTD are resolved later inside the run transaction.
func (s *Service) computeEmployee(ctx context.Context, emp employee.Employee, period payroll.PayPeriod, payDate time.Time, table rates.RateTable) (payroll.PayrollItem, error) {
	entries, err := s.hourRepo.GetByEmployeeAndRange(ctx, emp.ID, period.Start, period.End)
	if err != nil {
		return payroll.PayrollItem{}, fmt.Errorf("load hour entries: %w", err)
	}

	special, err := s.specialRepo.GetApprovedByEmployeeAndRange(ctx, emp.ID, period.Start, period.End)
	if err != nil {
		return payroll.PayrollItem{}, fmt.Errorf("load special pay entries: %w", err)
	}

	sp := ResolveSpecialPay(emp, period, special, table)

	pay, err := ComputeBasePay(emp, period, entries, table, sp.TotalHours())
	if err != nil {
		return payroll.PayrollItem{}, err
	}

	gross := pay.BasePay.Add(pay.OvertimePay).Add(sp.TotalPay())
	if gross.IsNegative() {
		return payroll.PayrollItem{}, fmt.Errorf("computed gross pay is negative")
	}

	ded := ComputeDeductions(gross, emp.AgeAt(payDate), emp.IsExemptSS, emp.IsExemptMedical, table, period.Frequency.PeriodsPerYear())

	grossRounded := roundMoney(gross)
	item := payroll.PayrollItem{
		EmployeeID:   emp.ID,
		EmployeeCode: emp.EmployeeCode,

		RegularHours:  pay.RegularHours,
		OvertimeHours: pay.OvertimeHours,
		VacationHours: sp.VacationHours,
		LeaveHours:    sp.LeaveHours,
		HolidayHours:  sp.HolidayHours,
		LunchHours:    pay.LunchHours,

		BasePay:     roundMoney(pay.BasePay),
		OvertimePay: roundMoney(pay.OvertimePay),
		VacationPay: roundMoney(sp.VacationPay),
		LeavePay:    roundMoney(sp.LeavePay),
		HolidayPay:  roundMoney(sp.HolidayPay),
		GrossPay:    grossRounded,

		SSEmployee: ded.SSEmployee,
		SSEmployer: ded.SSEmployer,
		MBEmployee: ded.MBEmployee,
		MBEmployer: ded.MBEmployer,
		EduLevy:    ded.EduLevy,

		LoanInternal:   decimal.Zero,
		LoanThirdParty: decimal.Zero,
		NetPay:         grossRounded.Sub(ded.EmployeeTotal()),

		OriginalNetPay:   decimal.Zero,
		OriginalGrossPay: decimal.Zero,

		Warnings: sp.Warnings,
	}

	return item, nil
}

// GetRun returns a run with its ordered items.
func (s *Service) GetRun(ctx context.Context, id string) (RunResult, error) {
	run, err := s.runRepo.GetByID(ctx, id)
	if err != nil {
		return RunResult{}, err
	}
	items, err := s.itemRepo.GetByRun(ctx, id)
	if err != nil {
		return RunResult{}, err
	}
	return RunResult{Run: run, Items: items}, nil
}

// ListRuns pages through runs, newest period first.
func (s *Service) ListRuns(ctx context.Context, limit, offset int) ([]payroll.PayrollRun, error) {
	return s.runRepo.List(ctx, limit, offset)
}

// GetItem returns one payroll item.
func (s *Service) GetItem(ctx context.Context, id string) (payroll.PayrollItem, error) {
	return s.itemRepo.GetByID(ctx, id)
}

// Finalize locks a completed run against recomputation and deletion.
func (s *Service) Finalize(ctx context.Context, id string) (payroll.PayrollRun, error) {
	run, err := s.runRepo.GetByID(ctx, id)
	if err != nil {
		return payroll.PayrollRun{}, err
	}
	if run.Status == payroll.RunStatusFinalized {
		return payroll.PayrollRun{}, payroll.ErrRunAlreadyFinal
	}

	now := time.Now().UTC()
	if err := s.runRepo.MarkFinalized(ctx, id, now); err != nil {
		return payroll.PayrollRun{}, err
	}

	run.Status = payroll.RunStatusFinalized
	run.FinalizedAt = &now

	s.logger.Info("payroll run finalized", slog.String("run_id", id))
	return run, nil
}

// DeleteRun removes a non-finalized run, retracting its YTD contribution and
// reversing its loan deductions in one transaction.
func (s *Service) DeleteRun(ctx context.Context, id string) error {
	run, err := s.runRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if run.Status == payroll.RunStatusFinalized {
		return payroll.ErrRunFinalized
	}

	return postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		items, err := s.itemRepo.GetByRun(txCtx, id)
		if err != nil {
			return err
		}

		payments, err := s.loanRepo.GetPaymentsByRun(txCtx, id)
		if err != nil {
			return err
		}
		for _, p := range payments {
			l, err := s.loanRepo.GetByID(txCtx, p.LoanID)
			if err != nil {
				return err
			}
			restored := l.RemainingBalance.Add(p.Amount)
			if err := s.loanRepo.UpdateBalance(txCtx, l.ID, restored, loan.LoanStatusActive); err != nil {
				return err
			}
		}

		for _, it := range items {
			current, err := s.ytdRepo.Get(txCtx, it.EmployeeID, run.PayDate.Year())
			if err != nil {
				return err
			}
			if err := s.ytdRepo.Upsert(txCtx, RetractYTD(current, it)); err != nil {
				return err
			}
		}

		if err := s.itemRepo.DeleteByRun(txCtx, id); err != nil {
			return err
		}
		return s.runRepo.Delete(txCtx, id)
	})
}

// OverrideItem replaces an item's net (and optionally gross) pay with an
// administrator value. The employee's YTD is adjusted to reflect the paid
// amounts. Finalized runs refuse overrides.
func (s *Service) OverrideItem(ctx context.Context, itemID string, req payroll.OverrideRequest) (payroll.PayrollItem, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayrollItem{}, err
	}

	item, err := s.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		return payroll.PayrollItem{}, err
	}
	run, err := s.runRepo.GetByID(ctx, item.PayrollRunID)
	if err != nil {
		return payroll.PayrollItem{}, err
	}
	if run.Status == payroll.RunStatusFinalized {
		return payroll.PayrollItem{}, payroll.ErrRunFinalized
	}

	updated := ApplyOverride(item, req.NetPay, req.GrossPay, req.Reason, req.AppliedBy)

	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		current, err := s.ytdRepo.Get(txCtx, item.EmployeeID, run.PayDate.Year())
		if err != nil {
			return err
		}
		adjusted := FoldYTD(RetractYTD(current, item), updated)
		if err := s.ytdRepo.Upsert(txCtx, adjusted); err != nil {
			return err
		}

		updated.YTDGross = adjusted.Gross
		updated.YTDSSEmployee = adjusted.SSEmployee
		updated.YTDMBEmployee = adjusted.MBEmployee
		updated.YTDEduLevy = adjusted.EduLevy
		updated.YTDNet = adjusted.Net
		return s.itemRepo.Update(txCtx, updated)
	})
	if err != nil {
		return payroll.PayrollItem{}, err
	}

	s.logger.Info("payroll item overridden",
		slog.String("item_id", itemID),
		slog.String("applied_by", req.AppliedBy),
	)

	return updated, nil
}
