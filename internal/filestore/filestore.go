// Package filestore is the file-backed persistence adapter. The whole
// dataset lives in one JSON document which is rewritten on every mutation.
// It implements the same repository contracts as the sqlite packages.
package filestore

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/ledgerlite/ledgerlite/internal/domain"
	"github.com/ledgerlite/ledgerlite/internal/fx"
	"github.com/ledgerlite/ledgerlite/pkg/errorspkg"
)

// Store holds the dataset in memory and mirrors it to disk. All methods are
// safe for concurrent use; readers get copies, never internal slices.
type Store struct {
	mu   sync.Mutex
	path string
	data domain.Dataset
}

// Open loads the dataset at path, seeding defaults when the file does not
// exist yet.
func Open(path string) (*Store, error) {
	s := &Store{path: path}

	raw, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		s.data = domain.Dataset{
			Settings:     domain.DefaultSettings(),
			Rates:        fx.DefaultTable(),
			Categories:   []domain.Category{},
			Transactions: []domain.Transaction{},
		}

		if err := s.persist(); err != nil {
			return nil, err
		}
	case err != nil:
		return nil, err
	default:
		if err := json.Unmarshal(raw, &s.data); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// persist writes the dataset to a temp file first so a crash mid-write
// cannot truncate the previous state. Callers must hold mu.
func (s *Store) persist() error {
	raw, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return err
	}

	return os.Rename(tmp, s.path)
}

func (s *Store) fail(ctx context.Context, err error) error {
	zerolog.Ctx(ctx).Error().Err(err).Send()
	return errorspkg.ErrInternal
}

// CreateTransaction inserts the transaction after checking that its category
// exists.
func (s *Store) CreateTransaction(ctx context.Context, tx domain.Transaction) (domain.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.categoryExists(tx.CategoryID) {
		return domain.Transaction{}, domain.ErrCategoryNotFound
	}

	s.data.Transactions = append(s.data.Transactions, tx)

	if err := s.persist(); err != nil {
		return domain.Transaction{}, s.fail(ctx, err)
	}

	return tx, nil
}

// GetTransaction returns the transaction with the given id.
func (s *Store) GetTransaction(_ context.Context, id string) (domain.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, tx := range s.data.Transactions {
		if tx.ID == id {
			return tx, nil
		}
	}

	return domain.Transaction{}, domain.ErrTransactionNotFound
}

// ListTransactions returns a copy of all transactions ordered by date,
// newest first.
func (s *Store) ListTransactions(_ context.Context) ([]domain.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]domain.Transaction, len(s.data.Transactions))
	copy(items, s.data.Transactions)

	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Date != items[j].Date {
			return items[i].Date > items[j].Date
		}

		return items[i].CreatedAt.After(items[j].CreatedAt)
	})

	return items, nil
}

// UpdateTransaction replaces the stored transaction with the same id.
func (s *Store) UpdateTransaction(ctx context.Context, tx domain.Transaction) (domain.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.categoryExists(tx.CategoryID) {
		return domain.Transaction{}, domain.ErrCategoryNotFound
	}

	for i := range s.data.Transactions {
		if s.data.Transactions[i].ID != tx.ID {
			continue
		}

		tx.CreatedAt = s.data.Transactions[i].CreatedAt
		s.data.Transactions[i] = tx

		if err := s.persist(); err != nil {
			return domain.Transaction{}, s.fail(ctx, err)
		}

		return tx, nil
	}

	return domain.Transaction{}, domain.ErrTransactionNotFound
}

// DeleteTransaction removes the transaction with the given id.
func (s *Store) DeleteTransaction(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.data.Transactions {
		if s.data.Transactions[i].ID != id {
			continue
		}

		s.data.Transactions = append(s.data.Transactions[:i], s.data.Transactions[i+1:]...)

		if err := s.persist(); err != nil {
			return s.fail(ctx, err)
		}

		return nil
	}

	return domain.ErrTransactionNotFound
}

// CreateCategory inserts the category, enforcing case-insensitive name
// uniqueness.
func (s *Store) CreateCategory(ctx context.Context, c domain.Category) (domain.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.categoryNameTaken(c.Name, c.ID) {
		return domain.Category{}, domain.ErrCategoryNameTaken
	}

	s.data.Categories = append(s.data.Categories, c)

	if err := s.persist(); err != nil {
		return domain.Category{}, s.fail(ctx, err)
	}

	return c, nil
}

// GetCategory returns the category with the given id.
func (s *Store) GetCategory(_ context.Context, id string) (domain.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range s.data.Categories {
		if c.ID == id {
			return c, nil
		}
	}

	return domain.Category{}, domain.ErrCategoryNotFound
}

// ListCategories returns a copy of all categories ordered by name.
func (s *Store) ListCategories(_ context.Context) ([]domain.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]domain.Category, len(s.data.Categories))
	copy(items, s.data.Categories)

	sort.Slice(items, func(i, j int) bool {
		return strings.ToLower(items[i].Name) < strings.ToLower(items[j].Name)
	})

	return items, nil
}

// UpdateCategory replaces the name and color of the stored category.
func (s *Store) UpdateCategory(ctx context.Context, c domain.Category) (domain.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.categoryNameTaken(c.Name, c.ID) {
		return domain.Category{}, domain.ErrCategoryNameTaken
	}

	for i := range s.data.Categories {
		if s.data.Categories[i].ID != c.ID {
			continue
		}

		s.data.Categories[i].Name = c.Name
		s.data.Categories[i].Color = c.Color

		if err := s.persist(); err != nil {
			return domain.Category{}, s.fail(ctx, err)
		}

		return s.data.Categories[i], nil
	}

	return domain.Category{}, domain.ErrCategoryNotFound
}

// DeleteCategory removes the category unless a transaction references it.
func (s *Store) DeleteCategory(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, tx := range s.data.Transactions {
		if tx.CategoryID == id {
			return domain.ErrCategoryInUse
		}
	}

	for i := range s.data.Categories {
		if s.data.Categories[i].ID != id {
			continue
		}

		s.data.Categories = append(s.data.Categories[:i], s.data.Categories[i+1:]...)

		if err := s.persist(); err != nil {
			return s.fail(ctx, err)
		}

		return nil
	}

	return domain.ErrCategoryNotFound
}

// GetSettings returns the settings singleton.
func (s *Store) GetSettings(_ context.Context) (domain.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.data.Settings, nil
}

// SetSettings overwrites the settings singleton.
func (s *Store) SetSettings(ctx context.Context, settings domain.Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data.Settings = settings

	if err := s.persist(); err != nil {
		return s.fail(ctx, err)
	}

	return nil
}

// GetRates returns a snapshot of the rate table.
func (s *Store) GetRates(_ context.Context) (fx.Table, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.data.Rates) == 0 {
		return fx.DefaultTable(), nil
	}

	return fx.NewTable(s.data.Rates), nil
}

// SetRates overwrites the rate table wholesale.
func (s *Store) SetRates(ctx context.Context, table fx.Table) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data.Rates = table

	if err := s.persist(); err != nil {
		return s.fail(ctx, err)
	}

	return nil
}

// Export returns a snapshot of the whole dataset.
func (s *Store) Export(_ context.Context) (domain.Dataset, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ds := domain.Dataset{
		Settings:     s.data.Settings,
		Rates:        map[string]float64{},
		Categories:   make([]domain.Category, len(s.data.Categories)),
		Transactions: make([]domain.Transaction, len(s.data.Transactions)),
	}

	for code, rate := range s.data.Rates {
		ds.Rates[code] = rate
	}

	copy(ds.Categories, s.data.Categories)
	copy(ds.Transactions, s.data.Transactions)

	return ds, nil
}

// Import replaces the whole dataset in one rewrite.
func (s *Store) Import(ctx context.Context, ds domain.Dataset) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	previous := s.data
	s.data = ds

	if err := s.persist(); err != nil {
		s.data = previous
		return s.fail(ctx, err)
	}

	return nil
}

func (s *Store) categoryExists(id string) bool {
	for _, c := range s.data.Categories {
		if c.ID == id {
			return true
		}
	}

	return false
}

func (s *Store) categoryNameTaken(name, excludeID string) bool {
	for _, c := range s.data.Categories {
		if c.ID != excludeID && strings.EqualFold(c.Name, name) {
			return true
		}
	}

	return false
}
