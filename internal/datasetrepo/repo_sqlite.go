// Package datasetrepo manages whole-dataset export and import.
package datasetrepo

import (
	"context"
	"database/sql"

	"github.com/rs/zerolog"

	"github.com/ledgerlite/ledgerlite/internal/categoryrepo"
	"github.com/ledgerlite/ledgerlite/internal/domain"
	"github.com/ledgerlite/ledgerlite/internal/raterepo"
	"github.com/ledgerlite/ledgerlite/internal/settingsrepo"
	"github.com/ledgerlite/ledgerlite/internal/transactionrepo"
	"github.com/ledgerlite/ledgerlite/pkg/errorspkg"
)

// RepoSQLite reads and replaces the whole dataset. Import runs inside one
// database transaction so a failed import leaves the previous data intact.
type RepoSQLite struct {
	db *sql.DB
}

// NewRepoSQLite returns dataset RepoSQLite.
func NewRepoSQLite(db *sql.DB) *RepoSQLite {
	return &RepoSQLite{
		db: db,
	}
}

// Export returns a snapshot of all persisted entities.
func (r *RepoSQLite) Export(ctx context.Context) (domain.Dataset, error) {
	var ds domain.Dataset

	settings, err := settingsrepo.NewRepoSQLite(r.db).Get(ctx)
	if err != nil {
		return ds, err
	}

	rates, err := raterepo.NewRepoSQLite(r.db).Get(ctx)
	if err != nil {
		return ds, err
	}

	categories, err := categoryrepo.NewRepoSQLite(r.db).List(ctx)
	if err != nil {
		return ds, err
	}

	transactions, err := transactionrepo.NewRepoSQLite(r.db).List(ctx)
	if err != nil {
		return ds, err
	}

	ds = domain.Dataset{
		Settings:     settings,
		Rates:        rates,
		Categories:   categories,
		Transactions: transactions,
	}

	return ds, nil
}

// Import atomically replaces the whole dataset.
func (r *RepoSQLite) Import(ctx context.Context, ds domain.Dataset) error {
	l := zerolog.Ctx(ctx)

	dbtx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		l.Error().Err(err).Send()
		return errorspkg.ErrInternal
	}
	defer dbtx.Rollback()

	for _, q := range []string{"DELETE FROM transactions", "DELETE FROM categories", "DELETE FROM rates", "DELETE FROM settings"} {
		if _, err := dbtx.ExecContext(ctx, q); err != nil {
			l.Error().Err(err).Send()
			return errorspkg.ErrInternal
		}
	}

	if err := settingsrepo.NewRepoSQLite(dbtx).Set(ctx, ds.Settings); err != nil {
		return err
	}

	if err := raterepo.NewRepoSQLite(dbtx).Set(ctx, ds.Rates); err != nil {
		return err
	}

	categories := categoryrepo.NewRepoSQLite(dbtx)
	for _, c := range ds.Categories {
		if _, err := categories.Create(ctx, c); err != nil {
			return err
		}
	}

	transactions := transactionrepo.NewRepoSQLite(dbtx)
	for _, tx := range ds.Transactions {
		if _, err := transactions.Create(ctx, tx); err != nil {
			return err
		}
	}

	if err := dbtx.Commit(); err != nil {
		l.Error().Err(err).Send()
		return errorspkg.ErrInternal
	}

	return nil
}
