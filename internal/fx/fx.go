// Package fx holds the exchange rate table and the currency conversion
// function. Everything here is pure: tables are treated as immutable
// snapshots and Merge returns a new table.
package fx

import (
	"math"

	"github.com/ledgerlite/ledgerlite/pkg/currencypkg"
)

// Table maps a currency code to units per one base currency unit. The base
// currency always maps to exactly 1.
type Table map[string]float64

// DefaultTable returns the rate table seeded on first use.
func DefaultTable() Table {
	return NewTable(currencypkg.DefaultRates)
}

// NewTable copies the given rates into a table, dropping non-positive and
// non-finite entries and forcing the base currency rate to 1.
func NewTable(rates map[string]float64) Table {
	t := Table{currencypkg.Base: 1}

	for code, rate := range rates {
		if code == currencypkg.Base {
			continue
		}

		if validRate(rate) {
			t[code] = rate
		}
	}

	return t
}

// Merge returns a new table with the supplied entries applied on top of t.
// Non-positive and non-finite values are ignored and the previous value is
// kept. The base currency rate stays 1 regardless of input.
func (t Table) Merge(partial map[string]float64) Table {
	merged := make(Table, len(t)+len(partial))
	for code, rate := range t {
		merged[code] = rate
	}

	for code, rate := range partial {
		if code == currencypkg.Base || !validRate(rate) {
			continue
		}

		merged[code] = rate
	}

	merged[currencypkg.Base] = 1

	return merged
}

// Has reports whether the table holds a usable rate for the code.
func (t Table) Has(code string) bool {
	rate, ok := t[code]
	return ok && validRate(rate)
}

// Rate returns the conversion factor for the code. Unknown or unusable codes
// fall back to 1, the identity with the base currency. Callers needing strict
// validation must check Has beforehand.
func (t Table) Rate(code string) float64 {
	if t.Has(code) {
		return t[code]
	}

	return 1
}

// Convert converts amount from one currency to another by normalizing to the
// base currency first. A non-finite amount converts to 0. Identity
// conversions return the input unchanged.
func (t Table) Convert(amount float64, from, to string) float64 {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return 0
	}

	if from == to {
		return amount
	}

	return amount / t.Rate(from) * t.Rate(to)
}

func validRate(rate float64) bool {
	return rate > 0 && !math.IsInf(rate, 0)
}
