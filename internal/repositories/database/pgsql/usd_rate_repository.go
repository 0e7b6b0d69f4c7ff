package pgsql

import (
	"context"
	"time"

	"github.com/SscSPs/statement_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/statement_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/statement_ledger/internal/models"
	"github.com/SscSPs/statement_ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxUSDRateRepository implements portsrepo.USDRateRepositoryFacade using pgxpool.
type PgxUSDRateRepository struct {
	BaseRepository
}

func newPgxUSDRateRepository(pool *pgxpool.Pool) portsrepo.USDRateRepositoryFacade {
	return &PgxUSDRateRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.USDRateRepositoryFacade = (*PgxUSDRateRepository)(nil)

// SaveUSDRate inserts the quote of a day or replaces the existing one.
func (r *PgxUSDRateRepository) SaveUSDRate(ctx context.Context, rate domain.USDRate) error {
	m := mapping.ToModelUSDRate(rate)
	query := `
		INSERT INTO usd_rates (rate_date, official, blue, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (rate_date) DO UPDATE
		SET official = EXCLUDED.official, blue = EXCLUDED.blue, last_updated_at = EXCLUDED.last_updated_at;
	`
	_, err := r.Pool.Exec(ctx, query, domain.DateOnly(m.RateDate), m.Official, m.Blue, m.CreatedAt, m.LastUpdatedAt)
	if err != nil {
		return translateError(err, "failed to save USD rate for "+m.RateDate.Format(time.DateOnly))
	}
	return nil
}

// FindUSDRate retrieves the quote of one day.
func (r *PgxUSDRateRepository) FindUSDRate(ctx context.Context, date time.Time) (*domain.USDRate, error) {
	query := `
		SELECT rate_date, official, blue, created_at, last_updated_at
		FROM usd_rates
		WHERE rate_date = $1;
	`
	var m models.USDRate
	err := r.Pool.QueryRow(ctx, query, domain.DateOnly(date)).Scan(
		&m.RateDate, &m.Official, &m.Blue, &m.CreatedAt, &m.LastUpdatedAt,
	)
	if err != nil {
		return nil, translateError(err, "USD rate for "+date.Format(time.DateOnly))
	}
	rate := mapping.ToDomainUSDRate(m)
	return &rate, nil
}
