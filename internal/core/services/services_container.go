package services

import (
	"github.com/SscSPs/statement_ledger/internal/core/domain"
	"github.com/SscSPs/statement_ledger/internal/core/ports/events"
	portsrepo "github.com/SscSPs/statement_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/statement_ledger/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider, publisher events.Publisher, defaultCards []domain.CardTemplate) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Card = NewCardService(
		repos.CardRepo,
		WithDefaultCards(defaultCards),
		WithCardEventPublisher(publisher),
	)
	container.Ledger = NewLedgerService(
		repos.CardRepo,
		repos.EntryRepo,
		WithEventPublisher(publisher),
	)
	container.Reporting = NewReportingService(repos.EntryRepo, repos.CardRepo)
	container.USDRate = NewUSDRateService(repos.USDRateRepo)

	return container
}
