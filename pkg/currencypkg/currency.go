// Package currencypkg provides common currency related functionality for apps.
package currencypkg

import "github.com/go-playground/validator/v10"

// Base is the currency against which all exchange rates are expressed.
// Its rate is fixed at 1.
const Base = "EUR"

// Constants for all supported currencies.
const (
	EUR = "EUR"
	USD = "USD"
	RUB = "RUB"
	GBP = "GBP"
	CNY = "CNY"
)

// SupportedCurrencies holds all the supported currencies.
var SupportedCurrencies = []string{
	EUR,
	USD,
	RUB,
	GBP,
	CNY,
}

// DefaultRates seeds the rate table on first use, expressed as units per one
// base currency unit.
var DefaultRates = map[string]float64{
	EUR: 1,
	USD: 1.08,
	RUB: 95,
	GBP: 0.85,
	CNY: 7.8,
}

// IsSupported returns true if the currency is supported.
func IsSupported(currency string) bool {
	for _, c := range SupportedCurrencies {
		if c == currency {
			return true
		}
	}

	return false
}

// ValidCurrency implements the gin binding rule for currency fields.
var ValidCurrency validator.Func = func(fl validator.FieldLevel) bool {
	if currency, ok := fl.Field().Interface().(string); ok {
		return IsSupported(currency)
	}

	return false
}
