package attendance

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/caribhr/payroll-backend-go/internal/domain/attendance"
	"github.com/caribhr/payroll-backend-go/internal/domain/employee"
	"github.com/caribhr/payroll-backend-go/internal/pkg/validator"
)

type Service struct {
	repo         attendance.HourEntryRepository
	employeeRepo employee.EmployeeRepository
	logger       *slog.Logger
}

func NewService(repo attendance.HourEntryRepository, employeeRepo employee.EmployeeRepository, logger *slog.Logger) *Service {
	return &Service{repo: repo, employeeRepo: employeeRepo, logger: logger}
}

// Record stores one normalized hour entry. The source format is the
// collaborator's problem; by this point the lunch exclusion is already applied.
func (s *Service) Record(ctx context.Context, req attendance.CreateHourEntryRequest) (attendance.HourEntry, error) {
	if err := req.Validate(); err != nil {
		return attendance.HourEntry{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return attendance.HourEntry{}, err
	}

	workDate, _ := time.Parse("2006-01-02", req.WorkDate)

	entry := attendance.HourEntry{
		EmployeeID:    req.EmployeeID,
		WorkDate:      workDate,
		Hours:         req.Hours,
		LunchExcluded: req.LunchExcluded,
	}
	if req.StartTime != nil {
		t, err := time.Parse("15:04", *req.StartTime)
		if err != nil {
			return attendance.HourEntry{}, validator.ValidationErrors{
				{Field: "start_time", Message: "must be HH:MM"},
			}
		}
		start := time.Date(workDate.Year(), workDate.Month(), workDate.Day(), t.Hour(), t.Minute(), 0, 0, time.UTC)
		entry.StartTime = &start
	}

	created, err := s.repo.Create(ctx, entry)
	if err != nil {
		return attendance.HourEntry{}, fmt.Errorf("record hour entry: %w", err)
	}

	return created, nil
}

// ListForPeriod returns an employee's entries inside a date window.
func (s *Service) ListForPeriod(ctx context.Context, employeeID string, start, end time.Time) ([]attendance.HourEntry, error) {
	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return nil, err
	}
	return s.repo.GetByEmployeeAndRange(ctx, employeeID, start, end)
}
