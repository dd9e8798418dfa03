package application

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/sanosuguru/go-event-calendar/internal/domain/event"
	"github.com/sanosuguru/go-event-calendar/internal/domain/person"
	"github.com/sanosuguru/go-event-calendar/internal/domain/registration"
)

// === Mock implementations ===

// MockPersonRepository implements person.Repository
type MockPersonRepository struct {
	mock.Mock
}

func (m *MockPersonRepository) Create(ctx context.Context, p *person.Person) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPersonRepository) List(ctx context.Context) ([]*person.Person, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*person.Person), args.Error(1)
}

// MockEventRepository implements event.Repository
type MockEventRepository struct {
	mock.Mock
}

func (m *MockEventRepository) Create(ctx context.Context, e *event.Event) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockEventRepository) List(ctx context.Context) ([]*event.Event, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*event.Event), args.Error(1)
}

// MockRegistrationRepository implements registration.Repository
type MockRegistrationRepository struct {
	mock.Mock
}

func (m *MockRegistrationRepository) Create(ctx context.Context, r *registration.Registration) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRegistrationRepository) Delete(ctx context.Context, eventID, personID string) error {
	args := m.Called(ctx, eventID, personID)
	return args.Error(0)
}

func (m *MockRegistrationRepository) List(ctx context.Context) ([]*registration.Registration, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*registration.Registration), args.Error(1)
}

// MockParticipantCache implements ParticipantCache
type MockParticipantCache struct {
	mock.Mock
}

func (m *MockParticipantCache) GetParticipantCount(ctx context.Context, eventID string) (int, error) {
	args := m.Called(ctx, eventID)
	return args.Int(0), args.Error(1)
}

func (m *MockParticipantCache) SetParticipantCount(ctx context.Context, eventID string, count int, ttl time.Duration) error {
	args := m.Called(ctx, eventID, count, ttl)
	return args.Error(0)
}

func (m *MockParticipantCache) Invalidate(ctx context.Context, eventID string) error {
	args := m.Called(ctx, eventID)
	return args.Error(0)
}

var (
	_ person.Repository       = (*MockPersonRepository)(nil)
	_ event.Repository        = (*MockEventRepository)(nil)
	_ registration.Repository = (*MockRegistrationRepository)(nil)
	_ ParticipantCache        = (*MockParticipantCache)(nil)
)
