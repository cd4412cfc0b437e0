// Package report builds currency-normalized summaries out of transaction
// snapshots. It never persists or mutates anything and never fails on
// malformed records: bad fields are replaced with safe defaults and counted
// in the summary degradations.
package report

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/ledgerlite/ledgerlite/internal/domain"
	"github.com/ledgerlite/ledgerlite/internal/fx"
)

// Options carries the explicit inputs of one aggregation pass. Rates and
// KnownCategories are read-only snapshots supplied by the caller. A nil
// KnownCategories set keeps every non-empty category reference as is.
type Options struct {
	DisplayCurrency string
	Rates           fx.Table
	KnownCategories map[string]bool
}

// Build walks the transactions once and produces totals, a per-category
// expense grouping and an ascending per-day series, all converted into the
// display currency.
func Build(txs []domain.Transaction, opts Options) domain.ReportSummary {
	summary := domain.ReportSummary{
		Currency:   opts.DisplayCurrency,
		ByCategory: []domain.CategoryTotal{},
		ByDate:     []domain.DateTotal{},
	}

	byCategory := make(map[string]float64)
	byDate := make(map[string]*domain.DateTotal)

	for _, tx := range txs {
		amount, ok := parseAmount(tx.Amount)
		if !ok {
			summary.Degradations.ZeroedAmounts++
		}

		if tx.Currency != opts.DisplayCurrency && !opts.Rates.Has(tx.Currency) {
			summary.Degradations.UnknownCurrencies++
		}

		converted := opts.Rates.Convert(amount, tx.Currency, opts.DisplayCurrency)

		income := tx.Type == domain.TypeIncome
		if income {
			summary.Income += converted
		} else {
			summary.Expense += converted
			byCategory[categoryBucket(tx.CategoryID, opts.KnownCategories)] += converted
		}

		date := tx.Date
		if _, ok := parseDate(date); !ok {
			// Still counted in the totals above, only the series skips it.
			summary.Degradations.SkippedDates++
			continue
		}

		bucket, ok := byDate[date]
		if !ok {
			bucket = &domain.DateTotal{Date: date}
			byDate[date] = bucket
		}

		if income {
			bucket.Income += converted
		} else {
			bucket.Expense += converted
		}
	}

	summary.Balance = summary.Income - summary.Expense

	for categoryID, amount := range byCategory {
		summary.ByCategory = append(summary.ByCategory, domain.CategoryTotal{
			CategoryID: categoryID,
			Amount:     amount,
		})
	}

	sort.Slice(summary.ByCategory, func(i, j int) bool {
		if summary.ByCategory[i].Amount != summary.ByCategory[j].Amount {
			return summary.ByCategory[i].Amount > summary.ByCategory[j].Amount
		}

		return summary.ByCategory[i].CategoryID < summary.ByCategory[j].CategoryID
	})

	for _, bucket := range byDate {
		summary.ByDate = append(summary.ByDate, *bucket)
	}

	// YYYY-MM-DD sorts chronologically.
	sort.Slice(summary.ByDate, func(i, j int) bool {
		return summary.ByDate[i].Date < summary.ByDate[j].Date
	})

	return summary
}

// parseAmount reads the decimal magnitude of an amount string. Malformed
// amounts degrade to 0.
func parseAmount(s string) (float64, bool) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, false
	}

	return d.Abs().InexactFloat64(), true
}

func categoryBucket(categoryID string, known map[string]bool) string {
	if categoryID == "" {
		return domain.FallbackCategoryID
	}

	if known != nil && !known[categoryID] {
		return domain.FallbackCategoryID
	}

	return categoryID
}
