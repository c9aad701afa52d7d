package loan

import (
	"context"
	"log/slog"
	"time"

	"github.com/caribhr/payroll-backend-go/internal/domain/employee"
	"github.com/caribhr/payroll-backend-go/internal/domain/loan"
)

type Service struct {
	loanRepo     loan.LoanRepository
	employeeRepo employee.EmployeeRepository
	logger       *slog.Logger
}

func NewService(loanRepo loan.LoanRepository, employeeRepo employee.EmployeeRepository, logger *slog.Logger) *Service {
	return &Service{
		loanRepo:     loanRepo,
		employeeRepo: employeeRepo,
		logger:       logger,
	}
}

func (s *Service) Create(ctx context.Context, req loan.CreateLoanRequest) (loan.Loan, error) {
	if err := req.Validate(); err != nil {
		return loan.Loan{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return loan.Loan{}, err
	}

	startDate, _ := time.Parse("2006-01-02", req.StartDate)

	created, err := s.loanRepo.Create(ctx, loan.Loan{
		EmployeeID:       req.EmployeeID,
		Type:             loan.LoanType(req.Type),
		OriginalAmount:   req.Amount,
		RemainingBalance: req.Amount,
		Installment:      req.Installment,
		Status:           loan.LoanStatusActive,
		PayeeName:        req.PayeeName,
		PayeeAccount:     req.PayeeAccount,
		StartDate:        startDate,
	})
	if err != nil {
		return loan.Loan{}, err
	}

	s.logger.Info("loan created",
		slog.String("loan_id", created.ID),
		slog.String("employee_id", created.EmployeeID),
		slog.String("type", string(created.Type)),
	)

	return created, nil
}

func (s *Service) GetByEmployee(ctx context.Context, employeeID string) ([]loan.Loan, error) {
	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return nil, err
	}
	return s.loanRepo.GetByEmployee(ctx, employeeID)
}

func (s *Service) Cancel(ctx context.Context, id string) error {
	if err := s.loanRepo.Cancel(ctx, id); err != nil {
		return err
	}
	s.logger.Info("loan cancelled", slog.String("loan_id", id))
	return nil
}

func (s *Service) GetPayments(ctx context.Context, loanID string) ([]loan.LoanPayment, error) {
	if _, err := s.loanRepo.GetByID(ctx, loanID); err != nil {
		return nil, err
	}
	return s.loanRepo.GetPayments(ctx, loanID)
}
