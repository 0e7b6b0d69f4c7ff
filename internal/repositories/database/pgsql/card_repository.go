package pgsql

import (
	"context"
	"time"

	"github.com/SscSPs/statement_ledger/internal/apperrors"
	"github.com/SscSPs/statement_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/statement_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/statement_ledger/internal/models"
	"github.com/SscSPs/statement_ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const cardColumns = `card_id, owner_id, name, closing_day, created_at, created_by, last_updated_at, last_updated_by`

const insertCardQuery = `
	INSERT INTO credit_cards (` + cardColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
`

// PgxCardRepository implements portsrepo.CardRepositoryFacade using pgxpool.
type PgxCardRepository struct {
	BaseRepository
}

func newPgxCardRepository(pool *pgxpool.Pool) portsrepo.CardRepositoryFacade {
	return &PgxCardRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.CardRepositoryFacade = (*PgxCardRepository)(nil)

func cardArgs(m models.Card) []any {
	return []any{m.CardID, m.OwnerID, m.Name, m.ClosingDay, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy}
}

func scanCard(row pgx.Row) (models.Card, error) {
	var m models.Card
	err := row.Scan(
		&m.CardID, &m.OwnerID, &m.Name, &m.ClosingDay,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	return m, err
}

// SaveCard inserts a new card.
func (r *PgxCardRepository) SaveCard(ctx context.Context, card domain.Card) error {
	_, err := r.Pool.Exec(ctx, insertCardQuery, cardArgs(mapping.ToModelCard(card))...)
	if err != nil {
		return translateError(err, "card named "+card.Name)
	}
	return nil
}

// SaveCards inserts several cards in one transaction. Either all are stored or none.
func (r *PgxCardRepository) SaveCards(ctx context.Context, cards []domain.Card) error {
	if len(cards) == 0 {
		return nil
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	batch := &pgx.Batch{}
	for _, card := range cards {
		batch.Queue(insertCardQuery, cardArgs(mapping.ToModelCard(card))...)
	}
	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return translateError(err, "failed to save cards")
	}

	return r.Commit(ctx, tx)
}

// FindCardByID retrieves a card of the owner.
func (r *PgxCardRepository) FindCardByID(ctx context.Context, ownerID, cardID string) (*domain.Card, error) {
	query := `SELECT ` + cardColumns + ` FROM credit_cards WHERE owner_id = $1 AND card_id = $2;`

	m, err := scanCard(r.Pool.QueryRow(ctx, query, ownerID, cardID))
	if err != nil {
		return nil, translateError(err, "card "+cardID)
	}
	card := mapping.ToDomainCard(m)
	return &card, nil
}

// FindCardByName retrieves a card of the owner by exact name.
func (r *PgxCardRepository) FindCardByName(ctx context.Context, ownerID, name string) (*domain.Card, error) {
	query := `SELECT ` + cardColumns + ` FROM credit_cards WHERE owner_id = $1 AND name = $2;`

	m, err := scanCard(r.Pool.QueryRow(ctx, query, ownerID, name))
	if err != nil {
		return nil, translateError(err, "card named "+name)
	}
	card := mapping.ToDomainCard(m)
	return &card, nil
}

// ListCardsByOwner retrieves all cards of the owner ordered by name.
func (r *PgxCardRepository) ListCardsByOwner(ctx context.Context, ownerID string) ([]domain.Card, error) {
	query := `SELECT ` + cardColumns + ` FROM credit_cards WHERE owner_id = $1 ORDER BY name;`

	rows, err := r.Pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, apperrors.NewPersistenceError("failed to list cards", err)
	}
	defer rows.Close()

	var ms []models.Card
	for rows.Next() {
		m, err := scanCard(rows)
		if err != nil {
			return nil, apperrors.NewPersistenceError("failed to scan card", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewPersistenceError("error iterating cards", err)
	}

	return mapping.ToDomainCardSlice(ms), nil
}

// UpdateClosingDay changes only the card row; stored entries keep their payment dates.
func (r *PgxCardRepository) UpdateClosingDay(ctx context.Context, ownerID, cardID string, closingDay int, now time.Time) error {
	query := `
		UPDATE credit_cards
		SET closing_day = $1, last_updated_at = $2, last_updated_by = $3
		WHERE owner_id = $3 AND card_id = $4;
	`
	result, err := r.Pool.Exec(ctx, query, closingDay, now, ownerID, cardID)
	if err != nil {
		return translateError(err, "failed to update card "+cardID)
	}
	if result.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("card " + cardID + " not found")
	}
	return nil
}

// DeleteCard removes a card. The foreign key from ledger_entries rejects the
// delete while any entry references the card.
func (r *PgxCardRepository) DeleteCard(ctx context.Context, ownerID, cardID string) error {
	result, err := r.Pool.Exec(ctx, `DELETE FROM credit_cards WHERE owner_id = $1 AND card_id = $2;`, ownerID, cardID)
	if err != nil {
		return translateError(err, "card "+cardID)
	}
	if result.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("card " + cardID + " not found")
	}
	return nil
}
