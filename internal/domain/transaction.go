// Package domain provides defenitions of all entities.
package domain

import (
	"errors"
	"time"
)

// Transaction types.
const (
	TypeIncome  = "income"
	TypeExpense = "expense"
)

var (
	// ErrTransactionNotFound indicates that the transaction is not found.
	ErrTransactionNotFound = errors.New("transaction not found")
	// ErrInvalidAmount indicates that the amount is not a valid decimal number.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrNonPositiveAmount indicates that the amount is zero or negative.
	ErrNonPositiveAmount = errors.New("amount must be positive")
	// ErrInvalidDate indicates that the date does not parse as a calendar date.
	ErrInvalidDate = errors.New("invalid date")
)

// Transaction holds a single income or expense record. Amount is a positive
// decimal string, the sign is implied by Type. Date is a calendar date in
// YYYY-MM-DD format without a time component.
type Transaction struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	Amount     string    `json:"amount"`
	Currency   string    `json:"currency"`
	CategoryID string    `json:"category_id"`
	Date       string    `json:"date"`
	Note       string    `json:"note"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// CreateTransactionParams is the input data for creating a transaction.
type CreateTransactionParams struct {
	Type       string `json:"type"`
	Amount     string `json:"amount"`
	Currency   string `json:"currency"`
	CategoryID string `json:"category_id"`
	Date       string `json:"date"`
	Note       string `json:"note"`
}

// UpdateTransactionParams is the input data for partially updating a
// transaction. Nil fields are left unchanged.
type UpdateTransactionParams struct {
	Type       *string `json:"type"`
	Amount     *string `json:"amount"`
	Currency   *string `json:"currency"`
	CategoryID *string `json:"category_id"`
	Date       *string `json:"date"`
	Note       *string `json:"note"`
}

// TransactionFilter narrows a transaction list. Zero-valued axes impose no
// constraint. From and To are inclusive calendar dates, To covers the whole
// end day.
type TransactionFilter struct {
	Type       string
	CategoryID string
	From       string
	To         string
	Search     string
}
