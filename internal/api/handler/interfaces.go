package handler

import (
	"context"

	"github.com/sanosuguru/go-event-calendar/internal/application"
	"github.com/sanosuguru/go-event-calendar/internal/domain/event"
	"github.com/sanosuguru/go-event-calendar/internal/domain/person"
)

// PersonServiceInterface は人物操作のインターフェース
type PersonServiceInterface interface {
	CreatePerson(ctx context.Context, input application.CreatePersonInput) (*person.Person, error)
	GetPerson(ctx context.Context, id string) (*person.Person, error)
	ListPersons(ctx context.Context) []*person.Person
	GetEventsForPerson(ctx context.Context, personID string) ([]*event.Event, error)
	CountEventsForPerson(ctx context.Context, personID string) (int, error)
}

// EventServiceInterface はイベント操作のインターフェース
type EventServiceInterface interface {
	CreateEvent(ctx context.Context, input application.CreateEventInput) (*event.Event, error)
	GetEvent(ctx context.Context, title string) (*event.Event, error)
	GetEventByID(ctx context.Context, id string) (*event.Event, error)
	ListEvents(ctx context.Context) []*event.Event
	GetParticipantsForEvent(ctx context.Context, eventID string) ([]*person.Person, error)
	GetAvailability(ctx context.Context, eventID string) (*application.Availability, error)
	CancelEvent(ctx context.Context, eventID string) error
}

// RegistrationServiceInterface は参加登録のインターフェース
type RegistrationServiceInterface interface {
	RegisterPersonForEvent(ctx context.Context, personID, eventID string) error
	UnregisterPersonForEvent(ctx context.Context, personID, eventID string) error
}

var (
	_ PersonServiceInterface       = (*application.RegistryService)(nil)
	_ EventServiceInterface        = (*application.RegistryService)(nil)
	_ RegistrationServiceInterface = (*application.RegistryService)(nil)
)
