// Package helpers provides random domain fixtures for tests.
package helpers

import (
	"time"

	"github.com/google/uuid"

	"github.com/ledgerlite/ledgerlite/internal/domain"
	"github.com/ledgerlite/ledgerlite/pkg/randompkg"
)

// RandomCategory returns a category of the given type with random name and color.
func RandomCategory(categoryType string) domain.Category {
	return domain.Category{
		ID:        uuid.NewString(),
		Name:      randompkg.String(10),
		Type:      categoryType,
		Color:     randompkg.HexColor(),
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
}

// RandomTransaction returns a transaction referencing the given category.
func RandomTransaction(categoryID string) domain.Transaction {
	now := time.Now().UTC().Truncate(time.Second)

	return domain.Transaction{
		ID:         uuid.NewString(),
		Type:       randompkg.TransactionType(),
		Amount:     randompkg.MoneyAmountBetween(1, 1000),
		Currency:   randompkg.Currency(),
		CategoryID: categoryID,
		Date:       randompkg.Date(),
		Note:       randompkg.String(20),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}
