package facility

import (
	"context"

	"commonhub/internal/logger"

	"github.com/google/uuid"
)

type Service interface {
	CreateFacility(ctx context.Context, req CreateFacilityRequest) (*Facility, error)
	GetFacility(ctx context.Context, id uuid.UUID) (*Facility, error)
	ListFacilities(ctx context.Context, communityID *uuid.UUID) ([]Facility, error)
	UpdateConfig(ctx context.Context, id uuid.UUID, cfg Config) (*Facility, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{
		repo: repo,
	}
}

func (s *service) CreateFacility(ctx context.Context, req CreateFacilityRequest) (*Facility, error) {
	communityID, err := uuid.Parse(req.CommunityID)
	if err != nil {
		return nil, ErrInvalidConfig
	}

	if err := ValidateConfig(req.Config); err != nil {
		return nil, err
	}

	f, err := s.repo.CreateFacility(ctx, &Facility{
		ID:          uuid.New(),
		CommunityID: communityID,
		Name:        req.Name,
		Description: req.Description,
		Config:      req.Config,
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Facility created",
		"facility_id", f.ID,
		"community_id", f.CommunityID,
		"mode", f.Config.Mode,
	)
	return f, nil
}

func (s *service) GetFacility(ctx context.Context, id uuid.UUID) (*Facility, error) {
	return s.repo.GetFacilityByID(ctx, id)
}

func (s *service) ListFacilities(ctx context.Context, communityID *uuid.UUID) ([]Facility, error) {
	return s.repo.ListFacilities(ctx, communityID)
}

func (s *service) UpdateConfig(ctx context.Context, id uuid.UUID, cfg Config) (*Facility, error) {
	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}

	f, err := s.repo.UpdateConfig(ctx, id, cfg)
	if err != nil {
		return nil, err
	}

	logger.Info("Facility config updated", "facility_id", id, "mode", cfg.Mode)
	return f, nil
}
