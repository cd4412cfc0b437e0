// Package categoryservice manages business logic layer of categories.
package categoryservice

import (
	"context"
	"fmt"
	"hash/fnv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ledgerlite/ledgerlite/internal/domain"
)

// Repo provides data access layer interface needed by category service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package categoryservice
type Repo interface {
	Create(ctx context.Context, c domain.Category) (domain.Category, error)
	Get(ctx context.Context, id string) (domain.Category, error)
	List(ctx context.Context) ([]domain.Category, error)
	Update(ctx context.Context, c domain.Category) (domain.Category, error)
	Delete(ctx context.Context, id string) error
}

// Service facilitates category service layer logic.
type Service struct {
	repo Repo
}

// New returns category service struct to manage category bussines logic.
func New(r Repo) *Service {
	return &Service{repo: r}
}

// DefaultColor derives a stable hex color from the category name, so a
// category without an explicit color keeps the same one across restarts.
func DefaultColor(name string) string {
	h := fnv.New32a()
	h.Write([]byte(strings.ToLower(name)))

	return fmt.Sprintf("#%06x", h.Sum32()&0xffffff)
}

// Create creates and returns the category.
func (s *Service) Create(ctx context.Context, arg domain.CreateCategoryParams) (domain.Category, error) {
	color := arg.Color
	if color == "" {
		color = DefaultColor(arg.Name)
	}

	c := domain.Category{
		ID:        uuid.NewString(),
		Name:      arg.Name,
		Type:      arg.Type,
		Color:     color,
		CreatedAt: time.Now().UTC(),
	}

	return s.repo.Create(ctx, c)
}

// Get returns the category with the given id.
func (s *Service) Get(ctx context.Context, id string) (domain.Category, error) {
	return s.repo.Get(ctx, id)
}

// List returns all categories.
func (s *Service) List(ctx context.Context) ([]domain.Category, error) {
	return s.repo.List(ctx)
}

// Update applies the non-nil fields to the stored category and returns it.
func (s *Service) Update(ctx context.Context, id string, arg domain.UpdateCategoryParams) (domain.Category, error) {
	c, err := s.repo.Get(ctx, id)
	if err != nil {
		return domain.Category{}, err
	}

	if arg.Name != nil {
		c.Name = *arg.Name
	}

	if arg.Color != nil {
		c.Color = *arg.Color
	}

	return s.repo.Update(ctx, c)
}

// Delete removes the category unless it is in use by a transaction.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
