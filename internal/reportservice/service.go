// Package reportservice assembles the read-only snapshots the aggregation
// core needs and runs it.
package reportservice

import (
	"context"

	"github.com/ledgerlite/ledgerlite/internal/domain"
	"github.com/ledgerlite/ledgerlite/internal/fx"
	"github.com/ledgerlite/ledgerlite/internal/report"
)

// TransactionRepo provides the transaction snapshot for one aggregation pass.
//
//go:generate mockgen -source service.go -destination service_mock.go -package reportservice
type TransactionRepo interface {
	List(ctx context.Context) ([]domain.Transaction, error)
}

// CategoryRepo provides the known categories for bucket resolution.
type CategoryRepo interface {
	List(ctx context.Context) ([]domain.Category, error)
}

// RateRepo provides the rate table snapshot.
type RateRepo interface {
	Get(ctx context.Context) (fx.Table, error)
}

// SettingsRepo provides the display currency default.
type SettingsRepo interface {
	Get(ctx context.Context) (domain.Settings, error)
}

// Service facilitates report service layer logic.
type Service struct {
	transactions TransactionRepo
	categories   CategoryRepo
	rates        RateRepo
	settings     SettingsRepo
}

// New returns report service struct.
func New(tr TransactionRepo, cr CategoryRepo, rr RateRepo, sr SettingsRepo) *Service {
	return &Service{
		transactions: tr,
		categories:   cr,
		rates:        rr,
		settings:     sr,
	}
}

// Build filters the transactions and aggregates them into the display
// currency. An empty displayCurrency falls back to the settings value.
func (s *Service) Build(ctx context.Context, filter domain.TransactionFilter, displayCurrency string) (domain.ReportSummary, error) {
	if displayCurrency == "" {
		settings, err := s.settings.Get(ctx)
		if err != nil {
			return domain.ReportSummary{}, err
		}

		displayCurrency = settings.DisplayCurrency
	}

	txs, err := s.transactions.List(ctx)
	if err != nil {
		return domain.ReportSummary{}, err
	}

	categories, err := s.categories.List(ctx)
	if err != nil {
		return domain.ReportSummary{}, err
	}

	rates, err := s.rates.Get(ctx)
	if err != nil {
		return domain.ReportSummary{}, err
	}

	known := make(map[string]bool, len(categories))
	for _, c := range categories {
		known[c.ID] = true
	}

	summary := report.Build(report.Apply(txs, filter), report.Options{
		DisplayCurrency: displayCurrency,
		Rates:           rates,
		KnownCategories: known,
	})

	return summary, nil
}
