package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/statement_ledger/internal/core/domain"
	"github.com/SscSPs/statement_ledger/internal/core/ports/events"
	portsrepo "github.com/SscSPs/statement_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/statement_ledger/internal/core/ports/services"
	"github.com/SscSPs/statement_ledger/internal/dto"
	"github.com/google/uuid"
)

// cardService implements the CardSvcFacade interface
type cardService struct {
	BaseService
	cardRepo  portsrepo.CardRepositoryFacade
	templates []domain.CardTemplate
	publisher events.Publisher
}

// CardServiceOption is a functional option for configuring the card service
type CardServiceOption func(*cardService)

// WithDefaultCards sets the starter cards created by EnsureDefaultCards.
func WithDefaultCards(templates []domain.CardTemplate) CardServiceOption {
	return func(s *cardService) {
		if len(templates) > 0 {
			s.templates = templates
		}
	}
}

// WithCardEventPublisher sets the publisher notified when a card is deleted.
func WithCardEventPublisher(p events.Publisher) CardServiceOption {
	return func(s *cardService) {
		if p != nil {
			s.publisher = p
		}
	}
}

// NewCardService creates a new card service with the provided options
func NewCardService(repo portsrepo.CardRepositoryFacade, options ...CardServiceOption) portssvc.CardSvcFacade {
	svc := &cardService{
		cardRepo:  repo,
		templates: domain.DefaultCardTemplates(),
		publisher: events.NopPublisher{},
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

var _ portssvc.CardSvcFacade = (*cardService)(nil)

func (s *cardService) CreateCard(ctx context.Context, ownerID string, req dto.CreateCardRequest) (*domain.Card, error) {
	if err := s.RequireOwner(ctx, ownerID); err != nil {
		return nil, err
	}

	name, err := domain.NormalizeCardName(req.Name)
	if err != nil {
		return nil, err
	}
	if err := domain.ValidateClosingDay(req.ClosingDay); err != nil {
		return nil, err
	}

	card := newCard(ownerID, name, req.ClosingDay, time.Now())
	if err := s.cardRepo.SaveCard(ctx, card); err != nil {
		s.LogError(ctx, err, "Failed to save card",
			slog.String("owner_id", ownerID),
			slog.String("name", name))
		return nil, fmt.Errorf("failed to create card %q: %w", name, err)
	}

	s.LogInfo(ctx, "Card created",
		slog.String("card_id", card.CardID),
		slog.Int("closing_day", card.ClosingDay))
	return &card, nil
}

func (s *cardService) GetCard(ctx context.Context, ownerID, cardID string) (*domain.Card, error) {
	if err := s.RequireOwner(ctx, ownerID); err != nil {
		return nil, err
	}
	card, err := s.cardRepo.FindCardByID(ctx, ownerID, cardID)
	if err != nil {
		return nil, fmt.Errorf("failed to get card %s: %w", cardID, err)
	}
	return card, nil
}

func (s *cardService) ListCards(ctx context.Context, ownerID string) ([]domain.Card, error) {
	if err := s.RequireOwner(ctx, ownerID); err != nil {
		return nil, err
	}
	cards, err := s.cardRepo.ListCardsByOwner(ctx, ownerID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list cards", slog.String("owner_id", ownerID))
		return nil, fmt.Errorf("failed to list cards: %w", err)
	}
	if cards == nil {
		return []domain.Card{}, nil
	}
	return cards, nil
}

func (s *cardService) UpdateClosingDay(ctx context.Context, ownerID, cardID string, req dto.UpdateClosingDayRequest) (*domain.Card, error) {
	if err := s.RequireOwner(ctx, ownerID); err != nil {
		return nil, err
	}
	if err := domain.ValidateClosingDay(req.ClosingDay); err != nil {
		return nil, err
	}

	if err := s.cardRepo.UpdateClosingDay(ctx, ownerID, cardID, req.ClosingDay, time.Now()); err != nil {
		s.LogError(ctx, err, "Failed to update closing day",
			slog.String("card_id", cardID),
			slog.Int("closing_day", req.ClosingDay))
		return nil, fmt.Errorf("failed to update closing day of card %s: %w", cardID, err)
	}

	card, err := s.cardRepo.FindCardByID(ctx, ownerID, cardID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload card %s: %w", cardID, err)
	}

	s.LogInfo(ctx, "Card closing day updated; existing entries keep their payment dates",
		slog.String("card_id", cardID),
		slog.Int("closing_day", req.ClosingDay))
	return card, nil
}

func (s *cardService) DeleteCard(ctx context.Context, ownerID, cardID string) error {
	if err := s.RequireOwner(ctx, ownerID); err != nil {
		return err
	}
	if err := s.cardRepo.DeleteCard(ctx, ownerID, cardID); err != nil {
		s.LogError(ctx, err, "Failed to delete card", slog.String("card_id", cardID))
		return fmt.Errorf("failed to delete card %s: %w", cardID, err)
	}

	event := events.LedgerEvent{
		Type:       events.CardDeleted,
		OwnerID:    ownerID,
		CardID:     cardID,
		OccurredAt: time.Now().UTC(),
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.LogError(ctx, err, "Failed to publish card event", slog.String("card_id", cardID))
	}
	return nil
}

func (s *cardService) EnsureDefaultCards(ctx context.Context, ownerID string) ([]domain.Card, error) {
	existing, err := s.ListCards(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		s.LogDebug(ctx, "Owner already has cards, skipping defaults", slog.Int("count", len(existing)))
		return existing, nil
	}

	now := time.Now()
	cards := make([]domain.Card, 0, len(s.templates))
	for _, t := range s.templates {
		name, err := domain.NormalizeCardName(t.Name)
		if err != nil {
			return nil, err
		}
		if err := domain.ValidateClosingDay(t.ClosingDay); err != nil {
			return nil, err
		}
		cards = append(cards, newCard(ownerID, name, t.ClosingDay, now))
	}

	if err := s.cardRepo.SaveCards(ctx, cards); err != nil {
		s.LogError(ctx, err, "Failed to create default cards", slog.String("owner_id", ownerID))
		return nil, fmt.Errorf("failed to create default cards: %w", err)
	}

	s.LogInfo(ctx, "Default cards created", slog.Int("count", len(cards)))
	return cards, nil
}

func newCard(ownerID, name string, closingDay int, now time.Time) domain.Card {
	return domain.Card{
		CardID:     uuid.NewString(),
		OwnerID:    ownerID,
		Name:       name,
		ClosingDay: closingDay,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     ownerID,
			LastUpdatedAt: now,
			LastUpdatedBy: ownerID,
		},
	}
}
