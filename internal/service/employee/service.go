package employee

import (
	"context"
	"log/slog"
	"time"

	"github.com/caribhr/payroll-backend-go/internal/domain/employee"
)

type Service struct {
	repo   employee.EmployeeRepository
	logger *slog.Logger
}

func NewService(repo employee.EmployeeRepository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

func (s *Service) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.Employee, error) {
	if err := req.Validate(); err != nil {
		return employee.Employee{}, err
	}

	emp := employee.Employee{
		EmployeeCode:         req.EmployeeCode,
		FullName:             req.FullName,
		Classification:       employee.Classification(req.Classification),
		PayFrequency:         employee.PayFrequency(req.PayFrequency),
		MonthlySalary:        req.MonthlySalary,
		HourlyRate:           req.HourlyRate,
		StandardHoursPerWeek: req.StandardHoursPerWeek,
		IsExemptSS:           req.IsExemptSS,
		IsExemptMedical:      req.IsExemptMedical,
		EmploymentStatus:     employee.EmploymentStatusActive,
		BankName:             req.BankName,
		BankAccountNumber:    req.BankAccountNumber,
	}
	if req.ShiftsPerWeek != nil {
		emp.ShiftsPerWeek = *req.ShiftsPerWeek
	}
	if req.DOB != nil {
		dob, _ := time.Parse("2006-01-02", *req.DOB)
		emp.DOB = &dob
	}

	created, err := s.repo.Create(ctx, emp)
	if err != nil {
		return employee.Employee{}, err
	}

	s.logger.Info("employee created",
		slog.String("employee_id", created.ID),
		slog.String("employee_code", created.EmployeeCode),
	)

	return created, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListActive(ctx context.Context) ([]employee.Employee, error) {
	return s.repo.GetActive(ctx)
}

func (s *Service) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.Employee, error) {
	if err := s.repo.Update(ctx, req); err != nil {
		return employee.Employee{}, err
	}
	return s.repo.GetByID(ctx, req.ID)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
