// Package catalog manages the bookable service offerings.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/bookora/bookora_backend/internal/model"
)

type CreateRequest struct {
	Name            string
	DurationMinutes int
}

type UpdateRequest struct {
	Name            *string
	DurationMinutes *int
}

// Store is the persistence surface the catalog service needs.
type Store interface {
	CreateService(ctx context.Context, svc *model.Service) error
	UpdateService(ctx context.Context, svc *model.Service) error
	DeleteService(ctx context.Context, ownerID, id uuid.UUID) error
	ServiceByID(ctx context.Context, ownerID, id uuid.UUID) (*model.Service, error)
	ServiceByName(ctx context.Context, ownerID uuid.UUID, name string) (*model.Service, error)
	ListServices(ctx context.Context, ownerID uuid.UUID) ([]model.Service, error)
}

type Service interface {
	Create(ctx context.Context, ownerID uuid.UUID, req CreateRequest) (*model.Service, error)
	Update(ctx context.Context, ownerID, id uuid.UUID, req UpdateRequest) (*model.Service, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
	GetByID(ctx context.Context, ownerID, id uuid.UUID) (*model.Service, error)
	List(ctx context.Context, ownerID uuid.UUID) ([]model.Service, error)
}

type catalogService struct {
	store Store
}

func New(store Store) Service {
	return &catalogService{store: store}
}

func (s *catalogService) Create(ctx context.Context, ownerID uuid.UUID, req CreateRequest) (*model.Service, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, ErrMissingName
	}
	if !slices.Contains(model.ServiceDurations, req.DurationMinutes) {
		return nil, ErrInvalidDuration
	}

	existing, err := s.store.ServiceByName(ctx, ownerID, name)
	if err != nil {
		return nil, fmt.Errorf("check name: %w", err)
	}
	if existing != nil {
		return nil, ErrNameTaken
	}

	svc := &model.Service{
		ID:              uuid.New(),
		OwnerID:         ownerID,
		Name:            name,
		DurationMinutes: req.DurationMinutes,
	}
	if err := s.store.CreateService(ctx, svc); err != nil {
		return nil, fmt.Errorf("create service: %w", err)
	}
	return svc, nil
}

func (s *catalogService) Update(ctx context.Context, ownerID, id uuid.UUID, req UpdateRequest) (*model.Service, error) {
	svc, err := s.store.ServiceByID(ctx, ownerID, id)
	if err != nil {
		return nil, fmt.Errorf("get service: %w", err)
	}
	if svc == nil {
		return nil, ErrNotFound
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, ErrMissingName
		}
		if name != svc.Name {
			other, err := s.store.ServiceByName(ctx, ownerID, name)
			if err != nil {
				return nil, fmt.Errorf("check name: %w", err)
			}
			if other != nil {
				return nil, ErrNameTaken
			}
		}
		svc.Name = name
	}
	if req.DurationMinutes != nil {
		if !slices.Contains(model.ServiceDurations, *req.DurationMinutes) {
			return nil, ErrInvalidDuration
		}
		svc.DurationMinutes = *req.DurationMinutes
	}

	if err := s.store.UpdateService(ctx, svc); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("update service: %w", err)
	}
	return svc, nil
}

func (s *catalogService) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	if err := s.store.DeleteService(ctx, ownerID, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("delete service: %w", err)
	}
	return nil
}

func (s *catalogService) GetByID(ctx context.Context, ownerID, id uuid.UUID) (*model.Service, error) {
	svc, err := s.store.ServiceByID(ctx, ownerID, id)
	if err != nil {
		return nil, fmt.Errorf("get service: %w", err)
	}
	if svc == nil {
		return nil, ErrNotFound
	}
	return svc, nil
}

func (s *catalogService) List(ctx context.Context, ownerID uuid.UUID) ([]model.Service, error) {
	return s.store.ListServices(ctx, ownerID)
}
