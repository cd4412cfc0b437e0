package domain

import "errors"

// ErrUnsupportedCurrency indicates a currency code outside the known set.
var ErrUnsupportedCurrency = errors.New("currency is not supported")

// Settings is the singleton user preferences record.
type Settings struct {
	DisplayCurrency string `json:"display_currency"`
	Precision       int32  `json:"precision"` // decimal places, 0-4
	Language        string `json:"language"`
	Theme           string `json:"theme"`
}

// DefaultSettings returns the settings seeded on first use.
func DefaultSettings() Settings {
	return Settings{
		DisplayCurrency: "EUR",
		Precision:       2,
		Language:        "en",
		Theme:           "light",
	}
}
