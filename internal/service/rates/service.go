package rates

import (
	"context"
	"errors"
	"log/slog"

	"github.com/caribhr/payroll-backend-go/internal/domain/rates"
	"github.com/caribhr/payroll-backend-go/internal/fixtures"
)

type Service struct {
	repo   rates.RateTableRepository
	logger *slog.Logger
}

func NewService(repo rates.RateTableRepository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// GetActive returns the statutory rate snapshot currently in effect.
func (s *Service) GetActive(ctx context.Context) (rates.RateTable, error) {
	return s.repo.GetActive(ctx)
}

// Update stores a new rate table version.
func (s *Service) Update(ctx context.Context, table rates.RateTable) (rates.RateTable, error) {
	saved, err := s.repo.Upsert(ctx, table)
	if err != nil {
		return rates.RateTable{}, err
	}
	s.logger.Info("rate table updated", slog.String("rate_table_id", saved.ID))
	return saved, nil
}

// SeedDefaults installs the statutory default table when none exists yet.
// Called once at startup.
func (s *Service) SeedDefaults(ctx context.Context) error {
	_, err := s.repo.GetActive(ctx)
	if err == nil {
		return nil
	}
	if !errors.Is(err, rates.ErrNoActiveRateTable) {
		return err
	}

	seeded, err := s.repo.Upsert(ctx, fixtures.DefaultRateTable())
	if err != nil {
		return err
	}
	s.logger.Info("seeded default rate table", slog.String("rate_table_id", seeded.ID))
	return nil
}
