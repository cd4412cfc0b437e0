package filestore

import (
	"context"

	"github.com/ledgerlite/ledgerlite/internal/domain"
	"github.com/ledgerlite/ledgerlite/internal/fx"
)

// The view types below expose the store under the same per-entity contracts
// as the sqlite repositories, so the two backends are interchangeable at
// service construction time.

// TransactionRepo is the transactions view of the store.
type TransactionRepo struct{ s *Store }

// Transactions returns the transactions view of the store.
func (s *Store) Transactions() *TransactionRepo { return &TransactionRepo{s} }

// Create inserts the transaction.
func (r *TransactionRepo) Create(ctx context.Context, tx domain.Transaction) (domain.Transaction, error) {
	return r.s.CreateTransaction(ctx, tx)
}

// Get returns the transaction with the given id.
func (r *TransactionRepo) Get(ctx context.Context, id string) (domain.Transaction, error) {
	return r.s.GetTransaction(ctx, id)
}

// List returns all transactions ordered by date, newest first.
func (r *TransactionRepo) List(ctx context.Context) ([]domain.Transaction, error) {
	return r.s.ListTransactions(ctx)
}

// Update replaces the stored transaction.
func (r *TransactionRepo) Update(ctx context.Context, tx domain.Transaction) (domain.Transaction, error) {
	return r.s.UpdateTransaction(ctx, tx)
}

// Delete removes the transaction with the given id.
func (r *TransactionRepo) Delete(ctx context.Context, id string) error {
	return r.s.DeleteTransaction(ctx, id)
}

// CategoryRepo is the categories view of the store.
type CategoryRepo struct{ s *Store }

// Categories returns the categories view of the store.
func (s *Store) Categories() *CategoryRepo { return &CategoryRepo{s} }

// Create inserts the category.
func (r *CategoryRepo) Create(ctx context.Context, c domain.Category) (domain.Category, error) {
	return r.s.CreateCategory(ctx, c)
}

// Get returns the category with the given id.
func (r *CategoryRepo) Get(ctx context.Context, id string) (domain.Category, error) {
	return r.s.GetCategory(ctx, id)
}

// List returns all categories ordered by name.
func (r *CategoryRepo) List(ctx context.Context) ([]domain.Category, error) {
	return r.s.ListCategories(ctx)
}

// Update renames or recolors the category.
func (r *CategoryRepo) Update(ctx context.Context, c domain.Category) (domain.Category, error) {
	return r.s.UpdateCategory(ctx, c)
}

// Delete removes the category unless it is in use.
func (r *CategoryRepo) Delete(ctx context.Context, id string) error {
	return r.s.DeleteCategory(ctx, id)
}

// SettingsRepo is the settings view of the store.
type SettingsRepo struct{ s *Store }

// Settings returns the settings view of the store.
func (s *Store) Settings() *SettingsRepo { return &SettingsRepo{s} }

// Get returns the settings singleton.
func (r *SettingsRepo) Get(ctx context.Context) (domain.Settings, error) {
	return r.s.GetSettings(ctx)
}

// Set overwrites the settings singleton.
func (r *SettingsRepo) Set(ctx context.Context, s domain.Settings) error {
	return r.s.SetSettings(ctx, s)
}

// RateRepo is the rate table view of the store.
type RateRepo struct{ s *Store }

// Rates returns the rate table view of the store.
func (s *Store) Rates() *RateRepo { return &RateRepo{s} }

// Get returns a snapshot of the rate table.
func (r *RateRepo) Get(ctx context.Context) (fx.Table, error) {
	return r.s.GetRates(ctx)
}

// Set overwrites the rate table wholesale.
func (r *RateRepo) Set(ctx context.Context, table fx.Table) error {
	return r.s.SetRates(ctx, table)
}

// DatasetRepo is the export/import view of the store.
type DatasetRepo struct{ s *Store }

// Dataset returns the export/import view of the store.
func (s *Store) Dataset() *DatasetRepo { return &DatasetRepo{s} }

// Export returns a snapshot of the whole dataset.
func (r *DatasetRepo) Export(ctx context.Context) (domain.Dataset, error) {
	return r.s.Export(ctx)
}

// Import replaces the whole dataset.
func (r *DatasetRepo) Import(ctx context.Context, ds domain.Dataset) error {
	return r.s.Import(ctx, ds)
}
