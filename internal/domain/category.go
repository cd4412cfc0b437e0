package domain

import (
	"errors"
	"time"
)

var (
	// ErrCategoryNotFound indicates that the category is not found.
	ErrCategoryNotFound = errors.New("category not found")
	// ErrCategoryNameTaken indicates that a category with the same name already exists.
	ErrCategoryNameTaken = errors.New("category name already exists")
	// ErrCategoryInUse indicates that the category is referenced by at least one transaction.
	ErrCategoryInUse = errors.New("category is in use")
)

// FallbackCategoryID is the bucket that collects amounts of transactions
// whose category is empty or no longer resolvable.
const FallbackCategoryID = "uncategorized"

// Category groups transactions for reporting. Name is unique case-insensitively.
type Category struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateCategoryParams is the input data for creating a category.
type CreateCategoryParams struct {
	Name  string `json:"name"`
	Type  string `json:"type"`
	Color string `json:"color"`
}

// UpdateCategoryParams is the input data for partially updating a category.
// Nil fields are left unchanged.
type UpdateCategoryParams struct {
	Name  *string `json:"name"`
	Color *string `json:"color"`
}
