package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/statement_ledger/internal/apperrors"
	"github.com/SscSPs/statement_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/statement_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/statement_ledger/internal/core/ports/services"
	"github.com/SscSPs/statement_ledger/internal/dto"
)

type usdRateService struct {
	BaseService
	rateRepo portsrepo.USDRateRepositoryFacade
}

// NewUSDRateService creates a service for daily USD quotes.
func NewUSDRateService(repo portsrepo.USDRateRepositoryFacade) portssvc.USDRateSvcFacade {
	return &usdRateService{rateRepo: repo}
}

var _ portssvc.USDRateSvcFacade = (*usdRateService)(nil)

func (s *usdRateService) GetUSDRate(ctx context.Context, date time.Time) (*domain.USDRate, error) {
	rate, err := s.rateRepo.FindUSDRate(ctx, domain.DateOnly(date))
	if err != nil {
		return nil, fmt.Errorf("failed to get USD rate for %s: %w", date.Format("2006-01-02"), err)
	}
	return rate, nil
}

func (s *usdRateService) UpsertUSDRate(ctx context.Context, date time.Time, req dto.UpsertUSDRateRequest) (*domain.USDRate, error) {
	if !req.Official.IsPositive() || !req.Blue.IsPositive() {
		return nil, apperrors.NewValidationError("official and blue quotes must be positive")
	}

	now := time.Now()
	rate := domain.USDRate{
		RateDate:      domain.DateOnly(date),
		Official:      req.Official,
		Blue:          req.Blue,
		CreatedAt:     now,
		LastUpdatedAt: now,
	}
	if err := s.rateRepo.SaveUSDRate(ctx, rate); err != nil {
		s.LogError(ctx, err, "Failed to save USD rate", slog.String("date", date.Format("2006-01-02")))
		return nil, fmt.Errorf("failed to save USD rate: %w", err)
	}

	s.LogInfo(ctx, "USD rate saved",
		slog.String("date", rate.RateDate.Format("2006-01-02")),
		slog.String("official", rate.Official.String()),
		slog.String("blue", rate.Blue.String()))
	return &rate, nil
}
