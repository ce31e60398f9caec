// Package staff manages the roster of service providers.
package staff

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/bookora/bookora_backend/internal/model"
)

type CreateRequest struct {
	Name          string
	ServiceType   string
	DailyCapacity int
	Status        string
}

type UpdateRequest struct {
	Name          *string
	ServiceType   *string
	DailyCapacity *int
	Status        *string
}

// Store is the persistence surface the staff service needs.
type Store interface {
	CreateStaff(ctx context.Context, st *model.Staff) error
	UpdateStaff(ctx context.Context, st *model.Staff) error
	DeleteStaff(ctx context.Context, ownerID, id uuid.UUID) error
	StaffByID(ctx context.Context, ownerID, staffID uuid.UUID) (*model.Staff, error)
	StaffByName(ctx context.Context, ownerID uuid.UUID, name string) (*model.Staff, error)
	ListStaff(ctx context.Context, ownerID uuid.UUID) ([]model.Staff, error)
}

type Service interface {
	Create(ctx context.Context, ownerID uuid.UUID, req CreateRequest) (*model.Staff, error)
	Update(ctx context.Context, ownerID, id uuid.UUID, req UpdateRequest) (*model.Staff, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
	GetByID(ctx context.Context, ownerID, id uuid.UUID) (*model.Staff, error)
	List(ctx context.Context, ownerID uuid.UUID) ([]model.Staff, error)
}

type staffService struct {
	store Store
}

func New(store Store) Service {
	return &staffService{store: store}
}

func (s *staffService) Create(ctx context.Context, ownerID uuid.UUID, req CreateRequest) (*model.Staff, error) {
	name := strings.TrimSpace(req.Name)
	serviceType := strings.TrimSpace(req.ServiceType)
	if name == "" || serviceType == "" {
		return nil, ErrMissingFields
	}
	if req.DailyCapacity < 1 {
		return nil, ErrInvalidCapacity
	}

	status := model.StaffAvailable
	if req.Status != "" {
		status = model.StaffStatus(req.Status)
		if status != model.StaffAvailable && status != model.StaffOnLeave {
			return nil, ErrInvalidStatus
		}
	}

	existing, err := s.store.StaffByName(ctx, ownerID, name)
	if err != nil {
		return nil, fmt.Errorf("check name: %w", err)
	}
	if existing != nil {
		return nil, ErrNameTaken
	}

	st := &model.Staff{
		ID:            uuid.New(),
		OwnerID:       ownerID,
		Name:          name,
		ServiceType:   serviceType,
		DailyCapacity: req.DailyCapacity,
		Status:        status,
	}
	if err := s.store.CreateStaff(ctx, st); err != nil {
		return nil, fmt.Errorf("create staff: %w", err)
	}
	return st, nil
}

func (s *staffService) Update(ctx context.Context, ownerID, id uuid.UUID, req UpdateRequest) (*model.Staff, error) {
	st, err := s.store.StaffByID(ctx, ownerID, id)
	if err != nil {
		return nil, fmt.Errorf("get staff: %w", err)
	}
	if st == nil {
		return nil, ErrNotFound
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, ErrMissingFields
		}
		if name != st.Name {
			other, err := s.store.StaffByName(ctx, ownerID, name)
			if err != nil {
				return nil, fmt.Errorf("check name: %w", err)
			}
			if other != nil {
				return nil, ErrNameTaken
			}
		}
		st.Name = name
	}
	if req.ServiceType != nil {
		serviceType := strings.TrimSpace(*req.ServiceType)
		if serviceType == "" {
			return nil, ErrMissingFields
		}
		st.ServiceType = serviceType
	}
	if req.DailyCapacity != nil {
		if *req.DailyCapacity < 1 {
			return nil, ErrInvalidCapacity
		}
		st.DailyCapacity = *req.DailyCapacity
	}
	if req.Status != nil {
		status := model.StaffStatus(*req.Status)
		if status != model.StaffAvailable && status != model.StaffOnLeave {
			return nil, ErrInvalidStatus
		}
		st.Status = status
	}

	if err := s.store.UpdateStaff(ctx, st); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("update staff: %w", err)
	}
	return st, nil
}

func (s *staffService) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	if err := s.store.DeleteStaff(ctx, ownerID, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("delete staff: %w", err)
	}
	return nil
}

func (s *staffService) GetByID(ctx context.Context, ownerID, id uuid.UUID) (*model.Staff, error) {
	st, err := s.store.StaffByID(ctx, ownerID, id)
	if err != nil {
		return nil, fmt.Errorf("get staff: %w", err)
	}
	if st == nil {
		return nil, ErrNotFound
	}
	return st, nil
}

func (s *staffService) List(ctx context.Context, ownerID uuid.UUID) ([]model.Staff, error) {
	return s.store.ListStaff(ctx, ownerID)
}
