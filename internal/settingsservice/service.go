// Package settingsservice manages business logic layer of the settings singleton.
package settingsservice

import (
	"context"

	"github.com/ledgerlite/ledgerlite/internal/domain"
)

// Repo provides data access layer interface needed by settings service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package settingsservice
type Repo interface {
	Get(ctx context.Context) (domain.Settings, error)
	Set(ctx context.Context, s domain.Settings) error
}

// Service facilitates settings service layer logic.
type Service struct {
	repo Repo
}

// New returns settings service struct.
func New(r Repo) *Service {
	return &Service{repo: r}
}

// Get returns the settings singleton.
func (s *Service) Get(ctx context.Context) (domain.Settings, error) {
	return s.repo.Get(ctx)
}

// Set overwrites the settings singleton and returns the stored record.
func (s *Service) Set(ctx context.Context, settings domain.Settings) (domain.Settings, error) {
	if err := s.repo.Set(ctx, settings); err != nil {
		return domain.Settings{}, err
	}

	return settings, nil
}
