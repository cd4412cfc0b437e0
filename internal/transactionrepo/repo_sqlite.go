// Package transactionrepo manages repository layer of transactions.
package transactionrepo

import (
	"context"
	"database/sql"
	"strings"

	"github.com/rs/zerolog"

	"github.com/ledgerlite/ledgerlite/internal/domain"
	"github.com/ledgerlite/ledgerlite/pkg/dbpkg"
	"github.com/ledgerlite/ledgerlite/pkg/errorspkg"
)

// RepoSQLite facilitates transaction repository layer logic.
type RepoSQLite struct {
	db dbpkg.SQLInterface
}

// NewRepoSQLite returns transaction RepoSQLite.
func NewRepoSQLite(db dbpkg.SQLInterface) *RepoSQLite {
	return &RepoSQLite{
		db: db,
	}
}

const createQuery = `
INSERT INTO
    transactions (id, type, amount, currency, category_id, date, note, created_at, updated_at)
VALUES
    (?, ?, ?, ?, ?, ?, ?, ?, ?)
RETURNING id, type, amount, currency, category_id, date, note, created_at, updated_at
`

// Create inserts the transaction and then returns it. The referenced category
// must exist, which the schema enforces with a foreign key.
func (r *RepoSQLite) Create(ctx context.Context, tx domain.Transaction) (domain.Transaction, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, createQuery,
		tx.ID, tx.Type, tx.Amount, tx.Currency, tx.CategoryID, tx.Date, tx.Note, tx.CreatedAt, tx.UpdatedAt)

	created, err := scanTransaction(row)
	if err != nil {
		l.Error().Err(err).Send()

		if isForeignKeyErr(err) {
			return created, domain.ErrCategoryNotFound
		}

		return created, errorspkg.ErrInternal
	}

	return created, nil
}

const getQuery = `
SELECT
    id, type, amount, currency, category_id, date, note, created_at, updated_at
FROM transactions
WHERE id = ?
`

// Get returns the transaction with the given id.
func (r *RepoSQLite) Get(ctx context.Context, id string) (domain.Transaction, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, getQuery, id)

	tx, err := scanTransaction(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return tx, domain.ErrTransactionNotFound
		}

		l.Error().Err(err).Send()

		return tx, errorspkg.ErrInternal
	}

	return tx, nil
}

const listQuery = `
SELECT
    id, type, amount, currency, category_id, date, note, created_at, updated_at
FROM transactions
ORDER BY date DESC, created_at DESC
`

// List returns all transactions ordered by date, newest first.
func (r *RepoSQLite) List(ctx context.Context) ([]domain.Transaction, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, listQuery)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	items := []domain.Transaction{}

	for rows.Next() {
		var tx domain.Transaction

		err := rows.Scan(
			&tx.ID, &tx.Type, &tx.Amount, &tx.Currency, &tx.CategoryID,
			&tx.Date, &tx.Note, &tx.CreatedAt, &tx.UpdatedAt)
		if err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		items = append(items, tx)
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return items, nil
}

const updateQuery = `
UPDATE transactions
SET type = ?, amount = ?, currency = ?, category_id = ?, date = ?, note = ?, updated_at = ?
WHERE id = ?
RETURNING id, type, amount, currency, category_id, date, note, created_at, updated_at
`

// Update replaces the mutable fields of the transaction and returns the
// stored row.
func (r *RepoSQLite) Update(ctx context.Context, tx domain.Transaction) (domain.Transaction, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, updateQuery,
		tx.Type, tx.Amount, tx.Currency, tx.CategoryID, tx.Date, tx.Note, tx.UpdatedAt, tx.ID)

	updated, err := scanTransaction(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return updated, domain.ErrTransactionNotFound
		}

		l.Error().Err(err).Send()

		if isForeignKeyErr(err) {
			return updated, domain.ErrCategoryNotFound
		}

		return updated, errorspkg.ErrInternal
	}

	return updated, nil
}

const deleteQuery = `
DELETE FROM transactions
WHERE id = ?
`

// Delete removes the transaction with the given id.
func (r *RepoSQLite) Delete(ctx context.Context, id string) error {
	l := zerolog.Ctx(ctx)

	res, err := r.db.ExecContext(ctx, deleteQuery, id)
	if err != nil {
		l.Error().Err(err).Send()
		return errorspkg.ErrInternal
	}

	n, err := res.RowsAffected()
	if err != nil {
		l.Error().Err(err).Send()
		return errorspkg.ErrInternal
	}

	if n == 0 {
		return domain.ErrTransactionNotFound
	}

	return nil
}

func scanTransaction(row *sql.Row) (domain.Transaction, error) {
	var tx domain.Transaction

	err := row.Scan(
		&tx.ID, &tx.Type, &tx.Amount, &tx.Currency, &tx.CategoryID,
		&tx.Date, &tx.Note, &tx.CreatedAt, &tx.UpdatedAt)

	return tx, err
}

func isForeignKeyErr(err error) bool {
	return err != nil && strings.Contains(err.Error(), "FOREIGN KEY constraint failed")
}
