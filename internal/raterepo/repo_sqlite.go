// Package raterepo manages repository layer of the exchange rate table.
package raterepo

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/ledgerlite/ledgerlite/internal/fx"
	"github.com/ledgerlite/ledgerlite/pkg/dbpkg"
	"github.com/ledgerlite/ledgerlite/pkg/errorspkg"
)

// RepoSQLite facilitates rate table repository layer logic.
type RepoSQLite struct {
	db dbpkg.SQLInterface
}

// NewRepoSQLite returns rate RepoSQLite.
func NewRepoSQLite(db dbpkg.SQLInterface) *RepoSQLite {
	return &RepoSQLite{
		db: db,
	}
}

const getQuery = `
SELECT currency, rate FROM rates
`

// Get returns the stored rate table, falling back to the default table
// before the first Set.
func (r *RepoSQLite) Get(ctx context.Context) (fx.Table, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, getQuery)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	stored := map[string]float64{}

	for rows.Next() {
		var (
			currency string
			rate     float64
		)

		if err := rows.Scan(&currency, &rate); err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		stored[currency] = rate
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	if len(stored) == 0 {
		return fx.DefaultTable(), nil
	}

	return fx.NewTable(stored), nil
}

const deleteAllQuery = `
DELETE FROM rates
`

const insertQuery = `
INSERT INTO rates (currency, rate) VALUES (?, ?)
`

// Set overwrites the stored table wholesale. No history is kept.
func (r *RepoSQLite) Set(ctx context.Context, table fx.Table) error {
	l := zerolog.Ctx(ctx)

	if _, err := r.db.ExecContext(ctx, deleteAllQuery); err != nil {
		l.Error().Err(err).Send()
		return errorspkg.ErrInternal
	}

	for currency, rate := range table {
		if _, err := r.db.ExecContext(ctx, insertQuery, currency, rate); err != nil {
			l.Error().Err(err).Send()
			return errorspkg.ErrInternal
		}
	}

	return nil
}
