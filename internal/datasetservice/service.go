// Package datasetservice manages whole-dataset export and import.
package datasetservice

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/ledgerlite/ledgerlite/internal/domain"
	"github.com/ledgerlite/ledgerlite/internal/fx"
	"github.com/ledgerlite/ledgerlite/pkg/currencypkg"
)

// Repo provides data access layer interface needed by dataset service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package datasetservice
type Repo interface {
	Export(ctx context.Context) (domain.Dataset, error)
	Import(ctx context.Context, ds domain.Dataset) error
}

// Service facilitates dataset service layer logic.
type Service struct {
	repo Repo
}

// New returns dataset service struct.
func New(r Repo) *Service {
	return &Service{repo: r}
}

// Export returns the whole dataset.
func (s *Service) Export(ctx context.Context) (domain.Dataset, error) {
	return s.repo.Export(ctx)
}

// Import validates the dataset and atomically replaces the stored one. The
// first invariant violation rejects the whole payload. Rates go through the
// usual clamp policy instead of strict validation.
func (s *Service) Import(ctx context.Context, ds domain.Dataset) error {
	l := zerolog.Ctx(ctx)

	if err := validate(ds); err != nil {
		l.Info().Err(err).Send()
		return err
	}

	ds.Rates = fx.NewTable(ds.Rates)

	return s.repo.Import(ctx, ds)
}

func validate(ds domain.Dataset) error {
	if !currencypkg.IsSupported(ds.Settings.DisplayCurrency) {
		return fmt.Errorf("%w: display currency %q", domain.ErrInvalidDataset, ds.Settings.DisplayCurrency)
	}

	if ds.Settings.Precision < 0 || ds.Settings.Precision > 4 {
		return fmt.Errorf("%w: precision %d out of range", domain.ErrInvalidDataset, ds.Settings.Precision)
	}

	categoryIDs := make(map[string]bool, len(ds.Categories))
	names := make(map[string]bool, len(ds.Categories))

	for _, c := range ds.Categories {
		if c.ID == "" {
			return fmt.Errorf("%w: category with empty id", domain.ErrInvalidDataset)
		}

		if categoryIDs[c.ID] {
			return fmt.Errorf("%w: duplicate category id %q", domain.ErrInvalidDataset, c.ID)
		}

		name := strings.ToLower(c.Name)
		if names[name] {
			return fmt.Errorf("%w: duplicate category name %q", domain.ErrInvalidDataset, c.Name)
		}

		if c.Type != domain.TypeIncome && c.Type != domain.TypeExpense {
			return fmt.Errorf("%w: category %q type %q", domain.ErrInvalidDataset, c.ID, c.Type)
		}

		categoryIDs[c.ID] = true
		names[name] = true
	}

	transactionIDs := make(map[string]bool, len(ds.Transactions))

	for _, tx := range ds.Transactions {
		if tx.ID == "" || transactionIDs[tx.ID] {
			return fmt.Errorf("%w: missing or duplicate transaction id %q", domain.ErrInvalidDataset, tx.ID)
		}

		transactionIDs[tx.ID] = true

		if tx.Type != domain.TypeIncome && tx.Type != domain.TypeExpense {
			return fmt.Errorf("%w: transaction %q type %q", domain.ErrInvalidDataset, tx.ID, tx.Type)
		}

		amount, err := decimal.NewFromString(tx.Amount)
		if err != nil || amount.LessThanOrEqual(decimal.Zero) {
			return fmt.Errorf("%w: transaction %q amount %q", domain.ErrInvalidDataset, tx.ID, tx.Amount)
		}

		if !currencypkg.IsSupported(tx.Currency) {
			return fmt.Errorf("%w: transaction %q currency %q", domain.ErrInvalidDataset, tx.ID, tx.Currency)
		}

		if _, err := time.Parse("2006-01-02", tx.Date); err != nil {
			return fmt.Errorf("%w: transaction %q date %q", domain.ErrInvalidDataset, tx.ID, tx.Date)
		}

		if !categoryIDs[tx.CategoryID] {
			return fmt.Errorf("%w: transaction %q references unknown category %q", domain.ErrInvalidDataset, tx.ID, tx.CategoryID)
		}
	}

	return nil
}
