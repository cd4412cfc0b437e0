// Package rateservice manages business logic layer of the exchange rate table.
package rateservice

import (
	"context"

	"github.com/ledgerlite/ledgerlite/internal/fx"
)

// Repo provides data access layer interface needed by rate service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package rateservice
type Repo interface {
	Get(ctx context.Context) (fx.Table, error)
	Set(ctx context.Context, table fx.Table) error
}

// Service facilitates rate service layer logic.
type Service struct {
	repo Repo
}

// New returns rate service struct.
func New(r Repo) *Service {
	return &Service{repo: r}
}

// Get returns the current rate table snapshot.
func (s *Service) Get(ctx context.Context) (fx.Table, error) {
	return s.repo.Get(ctx)
}

// Merge applies the partial update onto the current table with the fx clamp
// policy, persists the result wholesale and returns it. Invalid entries are
// ignored rather than rejected.
func (s *Service) Merge(ctx context.Context, partial map[string]float64) (fx.Table, error) {
	current, err := s.repo.Get(ctx)
	if err != nil {
		return nil, err
	}

	merged := current.Merge(partial)

	if err := s.repo.Set(ctx, merged); err != nil {
		return nil, err
	}

	return merged, nil
}
