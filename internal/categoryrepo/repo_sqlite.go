// Package categoryrepo manages repository layer of categories.
package categoryrepo

import (
	"context"
	"database/sql"
	"strings"

	"github.com/rs/zerolog"

	"github.com/ledgerlite/ledgerlite/internal/domain"
	"github.com/ledgerlite/ledgerlite/pkg/dbpkg"
	"github.com/ledgerlite/ledgerlite/pkg/errorspkg"
)

// RepoSQLite facilitates category repository layer logic.
type RepoSQLite struct {
	db dbpkg.SQLInterface
}

// NewRepoSQLite returns category RepoSQLite.
func NewRepoSQLite(db dbpkg.SQLInterface) *RepoSQLite {
	return &RepoSQLite{
		db: db,
	}
}

const createQuery = `
INSERT INTO
    categories (id, name, type, color, created_at)
VALUES
    (?, ?, ?, ?, ?)
RETURNING id, name, type, color, created_at
`

// Create inserts the category and then returns it. Names are unique
// case-insensitively.
func (r *RepoSQLite) Create(ctx context.Context, c domain.Category) (domain.Category, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, createQuery, c.ID, c.Name, c.Type, c.Color, c.CreatedAt)

	created, err := scanCategory(row)
	if err != nil {
		l.Error().Err(err).Send()

		if isUniqueNameErr(err) {
			return created, domain.ErrCategoryNameTaken
		}

		return created, errorspkg.ErrInternal
	}

	return created, nil
}

const getQuery = `
SELECT
    id, name, type, color, created_at
FROM categories
WHERE id = ?
`

// Get returns the category with the given id.
func (r *RepoSQLite) Get(ctx context.Context, id string) (domain.Category, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, getQuery, id)

	c, err := scanCategory(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return c, domain.ErrCategoryNotFound
		}

		l.Error().Err(err).Send()

		return c, errorspkg.ErrInternal
	}

	return c, nil
}

const listQuery = `
SELECT
    id, name, type, color, created_at
FROM categories
ORDER BY name
`

// List returns all categories ordered by name.
func (r *RepoSQLite) List(ctx context.Context) ([]domain.Category, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, listQuery)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	items := []domain.Category{}

	for rows.Next() {
		var c domain.Category

		if err := rows.Scan(&c.ID, &c.Name, &c.Type, &c.Color, &c.CreatedAt); err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		items = append(items, c)
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return items, nil
}

const updateQuery = `
UPDATE categories
SET name = ?, color = ?
WHERE id = ?
RETURNING id, name, type, color, created_at
`

// Update renames or recolors the category and returns the stored row.
func (r *RepoSQLite) Update(ctx context.Context, c domain.Category) (domain.Category, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, updateQuery, c.Name, c.Color, c.ID)

	updated, err := scanCategory(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return updated, domain.ErrCategoryNotFound
		}

		l.Error().Err(err).Send()

		if isUniqueNameErr(err) {
			return updated, domain.ErrCategoryNameTaken
		}

		return updated, errorspkg.ErrInternal
	}

	return updated, nil
}

const countTransactionsQuery = `
SELECT COUNT(*) FROM transactions WHERE category_id = ?
`

const deleteQuery = `
DELETE FROM categories
WHERE id = ?
`

// Delete removes the category unless it is referenced by a transaction.
func (r *RepoSQLite) Delete(ctx context.Context, id string) error {
	l := zerolog.Ctx(ctx)

	var inUse int64
	if err := r.db.QueryRowContext(ctx, countTransactionsQuery, id).Scan(&inUse); err != nil {
		l.Error().Err(err).Send()
		return errorspkg.ErrInternal
	}

	if inUse > 0 {
		return domain.ErrCategoryInUse
	}

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
		return domain.ErrCategoryNotFound
	}

	return nil
}

func scanCategory(row *sql.Row) (domain.Category, error) {
	var c domain.Category

	err := row.Scan(&c.ID, &c.Name, &c.Type, &c.Color, &c.CreatedAt)

	return c, err
}

func isUniqueNameErr(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
