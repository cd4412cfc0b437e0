// Package settingsrepo manages repository layer of the settings singleton.
package settingsrepo

import (
	"context"
	"database/sql"

	"github.com/rs/zerolog"

	"github.com/ledgerlite/ledgerlite/internal/domain"
	"github.com/ledgerlite/ledgerlite/pkg/dbpkg"
	"github.com/ledgerlite/ledgerlite/pkg/errorspkg"
)

// RepoSQLite facilitates settings repository layer logic.
type RepoSQLite struct {
	db dbpkg.SQLInterface
}

// NewRepoSQLite returns settings RepoSQLite.
func NewRepoSQLite(db dbpkg.SQLInterface) *RepoSQLite {
	return &RepoSQLite{
		db: db,
	}
}

const getQuery = `
SELECT
    display_currency, precision, language, theme
FROM settings
WHERE id = 1
`

// Get returns the settings record, falling back to defaults before the first
// Set.
func (r *RepoSQLite) Get(ctx context.Context) (domain.Settings, error) {
	l := zerolog.Ctx(ctx)

	var s domain.Settings

	row := r.db.QueryRowContext(ctx, getQuery)

	err := row.Scan(&s.DisplayCurrency, &s.Precision, &s.Language, &s.Theme)
	if err != nil {
		if err == sql.ErrNoRows {
			return domain.DefaultSettings(), nil
		}

		l.Error().Err(err).Send()

		return s, errorspkg.ErrInternal
	}

	return s, nil
}

const setQuery = `
INSERT INTO
    settings (id, display_currency, precision, language, theme)
VALUES
    (1, ?, ?, ?, ?)
ON CONFLICT (id) DO UPDATE SET
    display_currency = excluded.display_currency,
    precision = excluded.precision,
    language = excluded.language,
    theme = excluded.theme
`

// Set overwrites the settings singleton.
func (r *RepoSQLite) Set(ctx context.Context, s domain.Settings) error {
	l := zerolog.Ctx(ctx)

	_, err := r.db.ExecContext(ctx, setQuery, s.DisplayCurrency, s.Precision, s.Language, s.Theme)
	if err != nil {
		l.Error().Err(err).Send()
		return errorspkg.ErrInternal
	}

	return nil
}
