package report

import (
	"strings"
	"time"

	"github.com/ledgerlite/ledgerlite/internal/domain"
)

const dateLayout = "2006-01-02"

// Match reports whether the transaction passes every supplied filter axis.
// Unset axes impose no constraint. An unparseable filter date disables its
// axis; a transaction with an unparseable date cannot match a date axis.
func Match(tx domain.Transaction, f domain.TransactionFilter) bool {
	if f.Type != "" && tx.Type != f.Type {
		return false
	}

	if f.CategoryID != "" && tx.CategoryID != f.CategoryID {
		return false
	}

	if f.Search != "" && !strings.Contains(strings.ToLower(tx.Note), strings.ToLower(f.Search)) {
		return false
	}

	from, hasFrom := parseDate(f.From)
	to, hasTo := parseDate(f.To)

	if hasFrom || hasTo {
		txDate, ok := parseDate(tx.Date)
		if !ok {
			return false
		}

		if hasFrom && txDate.Before(from) {
			return false
		}

		// The range end covers the whole last day.
		if hasTo && !txDate.Before(to.AddDate(0, 0, 1)) {
			return false
		}
	}

	return true
}

// Apply returns the transactions passing the filter, preserving order.
func Apply(txs []domain.Transaction, f domain.TransactionFilter) []domain.Transaction {
	filtered := make([]domain.Transaction, 0, len(txs))

	for _, tx := range txs {
		if Match(tx, f) {
			filtered = append(filtered, tx)
		}
	}

	return filtered
}

func parseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}

	d, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, false
	}

	return d, true
}
