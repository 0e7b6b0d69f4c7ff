package pgsql

import (
	portsrepo "github.com/SscSPs/statement_ledger/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider builds every repository on top of one pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		CardRepo:    newPgxCardRepository(dbPool),
		EntryRepo:   newPgxLedgerEntryRepository(dbPool),
		USDRateRepo: newPgxUSDRateRepository(dbPool),
	}
}
