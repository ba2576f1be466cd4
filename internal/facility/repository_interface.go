package facility

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	CreateFacility(ctx context.Context, f *Facility) (*Facility, error)
	GetFacilityByID(ctx context.Context, id uuid.UUID) (*Facility, error)
	ListFacilities(ctx context.Context, communityID *uuid.UUID) ([]Facility, error)
	UpdateConfig(ctx context.Context, id uuid.UUID, cfg Config) (*Facility, error)
}
