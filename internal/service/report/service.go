package report

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/caribhr/payroll-backend-go/internal/domain/employee"
	"github.com/caribhr/payroll-backend-go/internal/domain/payroll"
	"github.com/caribhr/payroll-backend-go/internal/domain/report"
)

// Service builds the post-run exports: the ACH direct-deposit batch and the
// statutory deductions remittance summary.
type Service struct {
	runRepo      payroll.PayrollRunRepository
	itemRepo     payroll.PayrollItemRepository
	employeeRepo employee.EmployeeRepository
	logger       *slog.Logger
}

func NewService(runRepo payroll.PayrollRunRepository, itemRepo payroll.PayrollItemRepository, employeeRepo employee.EmployeeRepository, logger *slog.Logger) *Service {
	return &Service{
		runRepo:      runRepo,
		itemRepo:     itemRepo,
		employeeRepo: employeeRepo,
		logger:       logger,
	}
}

// BuildACHExport assembles the direct-deposit batch for a run. Items whose
// employee lacks banking information are flagged and excluded from the total.
func (s *Service) BuildACHExport(ctx context.Context, runID string) (report.ACHExport, error) {
	run, err := s.runRepo.GetByID(ctx, runID)
	if err != nil {
		return report.ACHExport{}, err
	}

	items, err := s.itemRepo.GetByRun(ctx, runID)
	if err != nil {
		return report.ACHExport{}, err
	}

	export := report.ACHExport{
		BatchID: uuid.NewString(),
		RunID:   run.ID,
		PayDate: run.PayDate.Format("2006-01-02"),
		Total:   decimal.Zero,
	}

	for _, it := range items {
		emp, err := s.employeeRepo.GetByID(ctx, it.EmployeeID)
		if err != nil {
			return report.ACHExport{}, err
		}
		if !emp.HasBankInfo() {
			export.Flagged = append(export.Flagged, report.ACHFlag{
				EmployeeCode: it.EmployeeCode,
				Reason:       "missing banking information",
			})
			continue
		}
		export.Rows = append(export.Rows, report.ACHRow{
			EmployeeCode:      it.EmployeeCode,
			FullName:          emp.FullName,
			BankName:          emp.BankName,
			BankAccountNumber: emp.BankAccountNumber,
			Amount:            it.NetPay,
		})
		export.Total = export.Total.Add(it.NetPay)
	}

	s.logger.Info("ach export built",
		slog.String("run_id", runID),
		slog.Int("rows", len(export.Rows)),
		slog.Int("flagged", len(export.Flagged)),
	)

	return export, nil
}

// BuildDeductionsReport totals the statutory amounts for remittance.
func (s *Service) BuildDeductionsReport(ctx context.Context, runID string) (report.DeductionsReport, error) {
	if _, err := s.runRepo.GetByID(ctx, runID); err != nil {
		return report.DeductionsReport{}, err
	}

	items, err := s.itemRepo.GetByRun(ctx, runID)
	if err != nil {
		return report.DeductionsReport{}, err
	}

	rep := report.DeductionsReport{
		RunID:      runID,
		SSEmployee: decimal.Zero,
		SSEmployer: decimal.Zero,
		MBEmployee: decimal.Zero,
		MBEmployer: decimal.Zero,
		EduLevy:    decimal.Zero,
	}
	for _, it := range items {
		rep.SSEmployee = rep.SSEmployee.Add(it.SSEmployee)
		rep.SSEmployer = rep.SSEmployer.Add(it.SSEmployer)
		rep.MBEmployee = rep.MBEmployee.Add(it.MBEmployee)
		rep.MBEmployer = rep.MBEmployer.Add(it.MBEmployer)
		rep.EduLevy = rep.EduLevy.Add(it.EduLevy)
	}
	rep.Total = rep.SSEmployee.Add(rep.SSEmployer).Add(rep.MBEmployee).Add(rep.MBEmployer).Add(rep.EduLevy)

	return rep, nil
}
