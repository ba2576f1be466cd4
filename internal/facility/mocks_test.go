package facility

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockRepository struct{ mock.Mock }

func (m *MockRepository) CreateFacility(ctx context.Context, f *Facility) (*Facility, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Facility), args.Error(1)
}

func (m *MockRepository) GetFacilityByID(ctx context.Context, id uuid.UUID) (*Facility, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Facility), args.Error(1)
}

func (m *MockRepository) ListFacilities(ctx context.Context, communityID *uuid.UUID) ([]Facility, error) {
	args := m.Called(ctx, communityID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Facility), args.Error(1)
}

func (m *MockRepository) UpdateConfig(ctx context.Context, id uuid.UUID, cfg Config) (*Facility, error) {
	args := m.Called(ctx, id, cfg)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Facility), args.Error(1)
}

type MockService struct{ mock.Mock }

func (m *MockService) CreateFacility(ctx context.Context, req CreateFacilityRequest) (*Facility, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Facility), args.Error(1)
}

func (m *MockService) GetFacility(ctx context.Context, id uuid.UUID) (*Facility, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Facility), args.Error(1)
}

func (m *MockService) ListFacilities(ctx context.Context, communityID *uuid.UUID) ([]Facility, error) {
	args := m.Called(ctx, communityID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Facility), args.Error(1)
}

func (m *MockService) UpdateConfig(ctx context.Context, id uuid.UUID, cfg Config) (*Facility, error) {
	args := m.Called(ctx, id, cfg)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Facility), args.Error(1)
}
