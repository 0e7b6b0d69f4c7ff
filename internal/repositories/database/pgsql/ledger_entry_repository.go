package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/statement_ledger/internal/apperrors"
	"github.com/SscSPs/statement_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/statement_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/statement_ledger/internal/models"
	"github.com/SscSPs/statement_ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const entryColumns = `entry_id, owner_id, purchase_id, kind, transaction_date, payment_date, amount,
	category, description, card_id, installment_count, installment_index, sequence, created_at`

// PgxLedgerEntryRepository implements portsrepo.LedgerEntryRepositoryFacade using pgxpool.
type PgxLedgerEntryRepository struct {
	BaseRepository
}

func newPgxLedgerEntryRepository(pool *pgxpool.Pool) portsrepo.LedgerEntryRepositoryFacade {
	return &PgxLedgerEntryRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.LedgerEntryRepositoryFacade = (*PgxLedgerEntryRepository)(nil)

// SaveEntries inserts all entries in one transaction and returns them with the
// sequence numbers the database assigned. A failure on any row stores nothing.
func (r *PgxLedgerEntryRepository) SaveEntries(ctx context.Context, ownerID string, entries []domain.LedgerEntry) ([]domain.LedgerEntry, error) {
	if len(entries) == 0 {
		return nil, nil
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	query := `
		INSERT INTO ledger_entries (
			entry_id, owner_id, purchase_id, kind, transaction_date, payment_date, amount,
			category, description, card_id, installment_count, installment_index, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING sequence;
	`
	batch := &pgx.Batch{}
	for _, entry := range entries {
		m := mapping.ToModelLedgerEntry(entry)
		m.OwnerID = ownerID
		batch.Queue(query,
			m.EntryID,
			m.OwnerID,
			m.PurchaseID,
			m.Kind,
			m.TransactionDate,
			m.PaymentDate,
			m.Amount,
			m.Category,
			m.Description,
			m.CardID,
			m.InstallmentCount,
			m.InstallmentIndex,
			m.CreatedAt,
		)
	}

	saved := make([]domain.LedgerEntry, len(entries))
	br := tx.SendBatch(ctx, batch)
	for i, entry := range entries {
		if err := br.QueryRow().Scan(&entry.Sequence); err != nil {
			br.Close()
			if isForeignKeyViolation(err) {
				return nil, apperrors.NewNotFoundError("card of entry " + entry.EntryID + " not found")
			}
			return nil, translateError(err, fmt.Sprintf("failed to insert entry %d of purchase %s", i+1, entry.PurchaseID))
		}
		entry.OwnerID = ownerID
		saved[i] = entry
	}
	if err := br.Close(); err != nil {
		return nil, translateError(err, "failed to insert entries")
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return saved, nil
}

// ListEntries retrieves the owner's entries matching filter in insertion order.
func (r *PgxLedgerEntryRepository) ListEntries(ctx context.Context, ownerID string, filter portsrepo.EntryFilter) ([]domain.LedgerEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM ledger_entries WHERE owner_id = $1`
	args := []any{ownerID}
	argNum := 2

	if filter.From != nil {
		query += fmt.Sprintf(" AND payment_date >= $%d", argNum)
		args = append(args, domain.DateOnly(*filter.From))
		argNum++
	}
	if filter.To != nil {
		query += fmt.Sprintf(" AND payment_date < $%d", argNum)
		args = append(args, domain.DateOnly(*filter.To))
		argNum++
	}
	if filter.Kind != nil {
		query += fmt.Sprintf(" AND kind = $%d", argNum)
		args = append(args, string(*filter.Kind))
	}
	query += " ORDER BY sequence;"

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewPersistenceError("failed to list entries", err)
	}
	defer rows.Close()

	var ms []models.LedgerEntry
	for rows.Next() {
		var m models.LedgerEntry
		err := rows.Scan(
			&m.EntryID,
			&m.OwnerID,
			&m.PurchaseID,
			&m.Kind,
			&m.TransactionDate,
			&m.PaymentDate,
			&m.Amount,
			&m.Category,
			&m.Description,
			&m.CardID,
			&m.InstallmentCount,
			&m.InstallmentIndex,
			&m.Sequence,
			&m.CreatedAt,
		)
		if err != nil {
			return nil, apperrors.NewPersistenceError("failed to scan entry", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewPersistenceError("error iterating entries", err)
	}

	return mapping.ToDomainLedgerEntrySlice(ms), nil
}

// DeleteEntry removes one entry of the owner.
func (r *PgxLedgerEntryRepository) DeleteEntry(ctx context.Context, ownerID, entryID string) error {
	result, err := r.Pool.Exec(ctx, `DELETE FROM ledger_entries WHERE owner_id = $1 AND entry_id = $2;`, ownerID, entryID)
	if err != nil {
		return apperrors.NewPersistenceError("failed to delete entry "+entryID, err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("entry " + entryID + " not found")
	}
	return nil
}
