package domain

// CategoryTotal is a converted expense total accumulated per category.
type CategoryTotal struct {
	CategoryID string  `json:"category_id"`
	Amount     float64 `json:"amount"`
}

// DateTotal is a per-day bucket of converted income and expense sums.
type DateTotal struct {
	Date    string  `json:"date"`
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
}

// Degradations counts the safe defaults substituted while aggregating, so
// callers can tell a clean summary from a best-effort one.
type Degradations struct {
	SkippedDates      int `json:"skipped_dates"`
	UnknownCurrencies int `json:"unknown_currencies"`
	ZeroedAmounts     int `json:"zeroed_amounts"`
}

// ReportSummary is the currency-normalized aggregation result. All monetary
// values are expressed in Currency; rounding is left to the delivery layer.
type ReportSummary struct {
	Currency     string          `json:"currency"`
	Income       float64         `json:"income"`
	Expense      float64         `json:"expense"`
	Balance      float64         `json:"balance"`
	ByCategory   []CategoryTotal `json:"by_category"`
	ByDate       []DateTotal     `json:"by_date"`
	Degradations Degradations    `json:"degradations"`
}
