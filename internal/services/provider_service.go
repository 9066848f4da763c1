package services

import (
	"context"
	"errors"

	"github.com/ezycar/booking-api/internal/audit"
	"github.com/ezycar/booking-api/internal/models"
	repo "github.com/ezycar/booking-api/internal/repository"
)

type ProviderService struct {
	providers repo.Providers
	audit     *audit.Recorder
}

func NewProviderService(providers repo.Providers, rec *audit.Recorder) *ProviderService {
	return &ProviderService{providers: providers, audit: rec}
}

// UpdateProviderInput is a partial update; nil fields are left as-is.
type UpdateProviderInput struct {
	Name    *string `json:"name"`
	Address *string `json:"address"`
	Tel     *string `json:"tel"`
}

func (s *ProviderService) List(ctx context.Context) ([]models.Provider, error) {
	return s.providers.List(ctx)
}

func (s *ProviderService) Get(ctx context.Context, id string) (models.Provider, error) {
	p, err := s.providers.GetByID(ctx, id)
	if errors.Is(err, models.ErrNotFound) {
		return models.Provider{}, models.NotFound("Provider not found")
	}
	return p, err
}

func (s *ProviderService) Create(ctx context.Context, actor models.Principal, p models.Provider) (models.Provider, error) {
	if err := p.Validate(); err != nil {
		return models.Provider{}, err
	}
	created, err := s.providers.Create(ctx, p)
	if err != nil {
		return models.Provider{}, err
	}
	s.audit.Record("provider", created.ID, "created", actor.ID, map[string]any{"name": created.Name})
	return created, nil
}

func (s *ProviderService) Update(ctx context.Context, actor models.Principal, id string, in UpdateProviderInput) (models.Provider, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return models.Provider{}, err
	}
	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.Address != nil {
		p.Address = *in.Address
	}
	if in.Tel != nil {
		p.Tel = *in.Tel
	}
	if err := p.Validate(); err != nil {
		return models.Provider{}, err
	}
	updated, err := s.providers.Update(ctx, p)
	if errors.Is(err, models.ErrNotFound) {
		return models.Provider{}, models.NotFound("Provider not found")
	}
	if err != nil {
		return models.Provider{}, err
	}
	s.audit.Record("provider", id, "updated", actor.ID, nil)
	return updated, nil
}

// Delete removes the provider only. Bookings referencing it are left in
// place with a dangling reference.
func (s *ProviderService) Delete(ctx context.Context, actor models.Principal, id string) error {
	err := s.providers.Delete(ctx, id)
	if errors.Is(err, models.ErrNotFound) {
		return models.NotFound("Provider not found")
	}
	if err != nil {
		return err
	}
	s.audit.Record("provider", id, "deleted", actor.ID, nil)
	return nil
}
