package report

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ledgerlite/ledgerlite/internal/domain"
	"github.com/ledgerlite/ledgerlite/pkg/randompkg"
)

func sampleTransactions() []domain.Transaction {
	return []domain.Transaction{
		{ID: "1", Type: domain.TypeExpense, CategoryID: "food", Date: "2024-01-05", Note: "Groceries at the market"},
		{ID: "2", Type: domain.TypeIncome, CategoryID: "salary", Date: "2024-01-06", Note: "January salary"},
		{ID: "3", Type: domain.TypeExpense, CategoryID: "transport", Date: "2024-01-10", Note: "metro pass"},
		{ID: "4", Type: domain.TypeExpense, CategoryID: "food", Date: "garbage", Note: "lunch"},
	}
}

func TestMatch(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		filter  domain.TransactionFilter
		wantIDs []string
	}{
		{
			name:    "NoConstraints",
			filter:  domain.TransactionFilter{},
			wantIDs: []string{"1", "2", "3", "4"},
		},
		{
			name:    "ByType",
			filter:  domain.TransactionFilter{Type: domain.TypeIncome},
			wantIDs: []string{"2"},
		},
		{
			name:    "ByCategory",
			filter:  domain.TransactionFilter{CategoryID: "food"},
			wantIDs: []string{"1", "4"},
		},
		{
			name:    "SearchIsCaseInsensitive",
			filter:  domain.TransactionFilter{Search: "SALARY"},
			wantIDs: []string{"2"},
		},
		{
			name:    "DateRangeInclusiveBothEnds",
			filter:  domain.TransactionFilter{From: "2024-01-05", To: "2024-01-06"},
			wantIDs: []string{"1", "2"},
		},
		{
			name:    "DateRangeExcludesUnparseableDates",
			filter:  domain.TransactionFilter{From: "2024-01-01"},
			wantIDs: []string{"1", "2", "3"},
		},
		{
			name:    "ConjunctionOfAxes",
			filter:  domain.TransactionFilter{Type: domain.TypeExpense, From: "2024-01-06"},
			wantIDs: []string{"3"},
		},
		{
			name:    "UnparseableFilterDateDisablesAxis",
			filter:  domain.TransactionFilter{From: "not-a-date"},
			wantIDs: []string{"1", "2", "3", "4"},
		},
	}

	for _, tc := range testCases {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var gotIDs []string
			for _, tx := range Apply(sampleTransactions(), tc.filter) {
				gotIDs = append(gotIDs, tx.ID)
			}

			if diff := cmp.Diff(tc.wantIDs, gotIDs); diff != "" {
				t.Errorf("Apply(%+v) mismatch (-want +got):\n%s", tc.filter, diff)
			}
		})
	}
}

func TestApplyStricterFilterNeverReturnsMore(t *testing.T) {
	t.Parallel()

	txs := make([]domain.Transaction, 100)
	for i := range txs {
		txs[i] = domain.Transaction{
			ID:         randompkg.String(8),
			Type:       randompkg.TransactionType(),
			CategoryID: randompkg.String(3),
			Date:       randompkg.Date(),
			Note:       randompkg.String(12),
		}
	}

	loose := domain.TransactionFilter{Type: domain.TypeExpense}
	strict := domain.TransactionFilter{Type: domain.TypeExpense, Search: "a"}

	if got, want := len(Apply(txs, loose)), len(Apply(txs, domain.TransactionFilter{})); got > want {
		t.Errorf("loose filter returned %d rows, unfiltered %d", got, want)
	}

	if got, want := len(Apply(txs, strict)), len(Apply(txs, loose)); got > want {
		t.Errorf("strict filter returned %d rows, loose %d", got, want)
	}
}
