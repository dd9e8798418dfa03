package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/sanosuguru/go-event-calendar/internal/application"
	"github.com/sanosuguru/go-event-calendar/internal/domain/event"
	"github.com/sanosuguru/go-event-calendar/internal/domain/person"
)

// MockPersonService はPersonServiceInterfaceのモック
type MockPersonService struct {
	mock.Mock
}

func (m *MockPersonService) CreatePerson(ctx context.Context, input application.CreatePersonInput) (*person.Person, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*person.Person), args.Error(1)
}

func (m *MockPersonService) GetPerson(ctx context.Context, id string) (*person.Person, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*person.Person), args.Error(1)
}

func (m *MockPersonService) ListPersons(ctx context.Context) []*person.Person {
	args := m.Called(ctx)
	return args.Get(0).([]*person.Person)
}

func (m *MockPersonService) GetEventsForPerson(ctx context.Context, personID string) ([]*event.Event, error) {
	args := m.Called(ctx, personID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*event.Event), args.Error(1)
}

func (m *MockPersonService) CountEventsForPerson(ctx context.Context, personID string) (int, error) {
	args := m.Called(ctx, personID)
	return args.Int(0), args.Error(1)
}

// MockEventService はEventServiceInterfaceのモック
type MockEventService struct {
	mock.Mock
}

func (m *MockEventService) CreateEvent(ctx context.Context, input application.CreateEventInput) (*event.Event, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*event.Event), args.Error(1)
}

func (m *MockEventService) GetEvent(ctx context.Context, title string) (*event.Event, error) {
	args := m.Called(ctx, title)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*event.Event), args.Error(1)
}

func (m *MockEventService) GetEventByID(ctx context.Context, id string) (*event.Event, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*event.Event), args.Error(1)
}

func (m *MockEventService) ListEvents(ctx context.Context) []*event.Event {
	args := m.Called(ctx)
	return args.Get(0).([]*event.Event)
}

func (m *MockEventService) GetParticipantsForEvent(ctx context.Context, eventID string) ([]*person.Person, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*person.Person), args.Error(1)
}

func (m *MockEventService) GetAvailability(ctx context.Context, eventID string) (*application.Availability, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*application.Availability), args.Error(1)
}

func (m *MockEventService) CancelEvent(ctx context.Context, eventID string) error {
	args := m.Called(ctx, eventID)
	return args.Error(0)
}

// MockRegistrationService はRegistrationServiceInterfaceのモック
type MockRegistrationService struct {
	mock.Mock
}

func (m *MockRegistrationService) RegisterPersonForEvent(ctx context.Context, personID, eventID string) error {
	args := m.Called(ctx, personID, eventID)
	return args.Error(0)
}

func (m *MockRegistrationService) UnregisterPersonForEvent(ctx context.Context, personID, eventID string) error {
	args := m.Called(ctx, personID, eventID)
	return args.Error(0)
}
