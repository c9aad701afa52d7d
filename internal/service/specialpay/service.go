package specialpay

import (
	"context"
	"log/slog"
	"time"

	"github.com/caribhr/payroll-backend-go/internal/domain/employee"
	"github.com/caribhr/payroll-backend-go/internal/domain/specialpay"
)

type Service struct {
	repo         specialpay.EntryRepository
	employeeRepo employee.EmployeeRepository
	logger       *slog.Logger
}

func NewService(repo specialpay.EntryRepository, employeeRepo employee.EmployeeRepository, logger *slog.Logger) *Service {
	return &Service{repo: repo, employeeRepo: employeeRepo, logger: logger}
}

func (s *Service) Create(ctx context.Context, req specialpay.CreateEntryRequest) (specialpay.Entry, error) {
	if err := req.Validate(); err != nil {
		return specialpay.Entry{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return specialpay.Entry{}, err
	}

	start, _ := time.Parse("2006-01-02", req.StartDate)
	end, _ := time.Parse("2006-01-02", req.EndDate)

	created, err := s.repo.Create(ctx, specialpay.Entry{
		EmployeeID:   req.EmployeeID,
		Type:         specialpay.EntryType(req.Type),
		StartDate:    start,
		EndDate:      end,
		TotalHours:   req.TotalHours,
		RateOverride: req.RateOverride,
		Status:       specialpay.EntryStatusPending,
		Note:         req.Note,
	})
	if err != nil {
		return specialpay.Entry{}, err
	}

	s.logger.Info("special pay entry created",
		slog.String("entry_id", created.ID),
		slog.String("type", string(created.Type)),
	)

	return created, nil
}

func (s *Service) Approve(ctx context.Context, id string) error {
	return s.repo.UpdateStatus(ctx, id, specialpay.EntryStatusApproved)
}

func (s *Service) Reject(ctx context.Context, id string) error {
	return s.repo.UpdateStatus(ctx, id, specialpay.EntryStatusRejected)
}

func (s *Service) GetApprovedForPeriod(ctx context.Context, employeeID string, start, end time.Time) ([]specialpay.Entry, error) {
	return s.repo.GetApprovedByEmployeeAndRange(ctx, employeeID, start, end)
}
