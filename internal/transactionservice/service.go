// Package transactionservice manages business logic layer of transactions.
package transactionservice

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/ledgerlite/ledgerlite/internal/domain"
	"github.com/ledgerlite/ledgerlite/internal/report"
)

// Repo provides data access layer interface needed by transaction service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package transactionservice
type Repo interface {
	Create(ctx context.Context, tx domain.Transaction) (domain.Transaction, error)
	Get(ctx context.Context, id string) (domain.Transaction, error)
	List(ctx context.Context) ([]domain.Transaction, error)
	Update(ctx context.Context, tx domain.Transaction) (domain.Transaction, error)
	Delete(ctx context.Context, id string) error
}

// Service facilitates transaction service layer logic.
type Service struct {
	repo Repo
}

// New returns transaction service struct to manage transaction bussines logic.
func New(r Repo) *Service {
	return &Service{repo: r}
}

// validAmount checks that the amount is a positive decimal and returns its
// normalized string form.
func validAmount(ctx context.Context, amount string) (string, error) {
	l := zerolog.Ctx(ctx)

	d, err := decimal.NewFromString(amount)
	if err != nil {
		l.Info().Err(err).Send()
		return "", domain.ErrInvalidAmount
	}

	if d.LessThanOrEqual(decimal.Zero) {
		return "", domain.ErrNonPositiveAmount
	}

	return d.String(), nil
}

func validDate(date string) error {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return domain.ErrInvalidDate
	}

	return nil
}

// Create validates and creates the transaction.
func (s *Service) Create(ctx context.Context, arg domain.CreateTransactionParams) (domain.Transaction, error) {
	amount, err := validAmount(ctx, arg.Amount)
	if err != nil {
		return domain.Transaction{}, err
	}

	if err := validDate(arg.Date); err != nil {
		return domain.Transaction{}, err
	}

	now := time.Now().UTC()

	tx := domain.Transaction{
		ID:         uuid.NewString(),
		Type:       arg.Type,
		Amount:     amount,
		Currency:   arg.Currency,
		CategoryID: arg.CategoryID,
		Date:       arg.Date,
		Note:       arg.Note,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	return s.repo.Create(ctx, tx)
}

// Get returns the transaction with the given id.
func (s *Service) Get(ctx context.Context, id string) (domain.Transaction, error) {
	return s.repo.Get(ctx, id)
}

// List returns the transactions passing the filter, newest first.
func (s *Service) List(ctx context.Context, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	txs, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	return report.Apply(txs, filter), nil
}

// Update applies the non-nil fields to the stored transaction and returns it.
func (s *Service) Update(ctx context.Context, id string, arg domain.UpdateTransactionParams) (domain.Transaction, error) {
	tx, err := s.repo.Get(ctx, id)
	if err != nil {
		return domain.Transaction{}, err
	}

	if arg.Type != nil {
		tx.Type = *arg.Type
	}

	if arg.Amount != nil {
		amount, err := validAmount(ctx, *arg.Amount)
		if err != nil {
			return domain.Transaction{}, err
		}

		tx.Amount = amount
	}

	if arg.Currency != nil {
		tx.Currency = *arg.Currency
	}

	if arg.CategoryID != nil {
		tx.CategoryID = *arg.CategoryID
	}

	if arg.Date != nil {
		if err := validDate(*arg.Date); err != nil {
			return domain.Transaction{}, err
		}

		tx.Date = *arg.Date
	}

	if arg.Note != nil {
		tx.Note = *arg.Note
	}

	tx.UpdatedAt = time.Now().UTC()

	return s.repo.Update(ctx, tx)
}

// Delete removes the transaction with the given id.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
