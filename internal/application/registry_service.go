package application

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/sanosuguru/go-event-calendar/internal/domain/event"
	"github.com/sanosuguru/go-event-calendar/internal/domain/person"
	"github.com/sanosuguru/go-event-calendar/internal/domain/registration"
	"github.com/sanosuguru/go-event-calendar/internal/pkg/apperr"
	"github.com/sanosuguru/go-event-calendar/internal/pkg/logger"
	"github.com/sanosuguru/go-event-calendar/internal/pkg/metrics"
)

// Journal はレジストリの変更を記録するリポジトリ群
// nil のフィールドは記録しない
type Journal struct {
	Persons       person.Repository
	Events        event.Repository
	Registrations registration.Repository
}

// RegistryService はイベントと人物を保持し、参加登録のルールを一元的に適用する
//
// イベントと人物はIDで引けるアリーナに保持し、Event.ParticipantIDs と
// Person.EventIDs の双方向の参照は常にこのサービスだけが更新する。
// タイトルの一意性確認と作成、参加者リストの変更は同じロックの中で行う。
type RegistryService struct {
	mu          sync.RWMutex
	events      []*event.Event
	eventsByID  map[string]*event.Event
	persons     map[string]*person.Person
	personOrder []string

	journal *Journal
	cache   ParticipantCache
	metrics *metrics.Metrics
	now     func() time.Time
}

// NewRegistryService は空のレジストリを作成する
// journal, cache, m はいずれも nil を許容する
func NewRegistryService(journal *Journal, cache ParticipantCache, m *metrics.Metrics) *RegistryService {
	return &RegistryService{
		eventsByID: make(map[string]*event.Event),
		persons:    make(map[string]*person.Person),
		journal:    journal,
		cache:      cache,
		metrics:    m,
		now:        time.Now,
	}
}

type CreatePersonInput struct {
	LastName    string
	FirstName   string
	MailAddress string
	PhoneNumber string
}

// CreatePerson は人物をレジストリに追加する
func (s *RegistryService) CreatePerson(ctx context.Context, input CreatePersonInput) (*person.Person, error) {
	p := person.NewPerson(input.LastName, input.FirstName)
	p.MailAddress = input.MailAddress
	p.PhoneNumber = input.PhoneNumber
	if err := p.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.journal != nil && s.journal.Persons != nil {
		if err := s.record(ctx, "person", func(ctx context.Context) error {
			return s.journal.Persons.Create(ctx, p)
		}); err != nil {
			return nil, fmt.Errorf("人物の記録に失敗: %w", err)
		}
	}

	s.addPersonLocked(p)
	logger.Info("人物を登録しました", zap.String("person_id", p.ID))
	return p.Clone(), nil
}

// GetPerson はIDから人物を取得する
func (s *RegistryService) GetPerson(ctx context.Context, id string) (*person.Person, error) {
	if id == "" {
		return nil, person.ErrPersonRequired
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.persons[id]
	if !ok {
		return nil, person.ErrPersonNotFound
	}
	return p.Clone(), nil
}

// ListPersons は人物を登録順に返す
func (s *RegistryService) ListPersons(ctx context.Context) []*person.Person {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*person.Person, 0, len(s.personOrder))
	for _, id := range s.personOrder {
		result = append(result, s.persons[id].Clone())
	}
	return result
}

type CreateEventInput struct {
	OrganizerID     string
	Title           string
	DateTime        time.Time
	MaxParticipants int
}

// CreateEvent は主催者・タイトル・開催日時からイベントを作成する
// MaxParticipants が 0 なら定員なし、正の値なら定員付きイベントになる。
// 主催者のイベント一覧は変更しない。
func (s *RegistryService) CreateEvent(ctx context.Context, input CreateEventInput) (*event.Event, error) {
	e, err := s.createEvent(ctx, input)
	s.observeEventCreation(err)
	if err != nil {
		logger.Debug("イベント作成を拒否しました", zap.String("title", input.Title), zap.Error(err))
		return nil, err
	}
	logger.Info("イベントを作成しました",
		zap.String("event_id", e.ID),
		zap.String("title", e.Title),
		zap.Int("max_participants", e.MaxParticipants),
	)
	return e, nil
}

func (s *RegistryService) createEvent(ctx context.Context, input CreateEventInput) (*event.Event, error) {
	e := event.NewEvent(input.OrganizerID, input.Title, input.DateTime, input.MaxParticipants)
	if err := e.Validate(s.now()); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.uniqueTitleLocked(e.Title) {
		return nil, event.ErrTitleNotUnique
	}
	if _, ok := s.persons[e.OrganizerID]; !ok {
		return nil, person.ErrPersonNotFound
	}

	if s.journal != nil && s.journal.Events != nil {
		if err := s.record(ctx, "event", func(ctx context.Context) error {
			return s.journal.Events.Create(ctx, e)
		}); err != nil {
			return nil, fmt.Errorf("イベントの記録に失敗: %w", err)
		}
	}

	s.addEventLocked(e)
	return e.Clone(), nil
}

// UniqueTitle は同じタイトルのイベントが存在しないかを返す（大文字小文字を区別）
func (s *RegistryService) UniqueTitle(ctx context.Context, title string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.uniqueTitleLocked(title)
}

func (s *RegistryService) uniqueTitleLocked(title string) bool {
	for _, e := range s.events {
		if e.Title == title {
			return false
		}
	}
	return true
}

// GetEvent はタイトルが完全一致するイベントを返す
// 該当するイベントがない場合はエラーなしで nil を返す
func (s *RegistryService) GetEvent(ctx context.Context, title string) (*event.Event, error) {
	if event.IsBlankTitle(title) {
		return nil, event.ErrTitleRequired
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	var found *event.Event
	for _, e := range s.events {
		if e.Title == title {
			found = e
		}
	}
	if found == nil {
		return nil, nil
	}
	return found.Clone(), nil
}

// GetEventByID はIDからイベントを取得する
func (s *RegistryService) GetEventByID(ctx context.Context, id string) (*event.Event, error) {
	if id == "" {
		return nil, event.ErrEventRequired
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.eventsByID[id]
	if !ok {
		return nil, event.ErrEventNotFound
	}
	return e.Clone(), nil
}

// ListEvents はイベントを作成順に返す
func (s *RegistryService) ListEvents(ctx context.Context) []*event.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*event.Event, len(s.events))
	for i, e := range s.events {
		result[i] = e.Clone()
	}
	return result
}

// EventsCount はイベント数を返す
func (s *RegistryService) EventsCount(ctx context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.events)
}

// RegisterPersonForEvent は人物をイベントに参加登録する
// 定員付きイベントでは定員の確認を重複登録の確認より先に行う。
func (s *RegistryService) RegisterPersonForEvent(ctx context.Context, personID, eventID string) error {
	err := s.registerPersonForEvent(ctx, personID, eventID)
	s.observeRegistration("register", err)
	if err != nil {
		logger.Debug("参加登録を拒否しました",
			zap.String("event_id", eventID),
			zap.String("person_id", personID),
			zap.Error(err),
		)
		return err
	}
	logger.Info("参加登録しました", zap.String("event_id", eventID), zap.String("person_id", personID))
	return nil
}

func (s *RegistryService) registerPersonForEvent(ctx context.Context, personID, eventID string) error {
	if eventID == "" {
		return event.ErrEventRequired
	}
	if personID == "" {
		return person.ErrPersonRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	e, p, err := s.resolveLocked(personID, eventID)
	if err != nil {
		return err
	}
	if e.IsFull() {
		return event.ErrEventFull
	}
	if e.HasParticipant(p.ID) {
		return event.ErrAlreadyRegistered
	}

	if s.journal != nil && s.journal.Registrations != nil {
		if err := s.record(ctx, "registration", func(ctx context.Context) error {
			return s.journal.Registrations.Create(ctx, registration.NewRegistration(e.ID, p.ID))
		}); err != nil {
			return fmt.Errorf("参加登録の記録に失敗: %w", err)
		}
	}

	e.AddParticipant(p.ID)
	p.AddEvent(e.ID)
	s.invalidateLocked(ctx, e.ID)
	return nil
}

// UnregisterPersonForEvent は人物の参加登録を取り消す
func (s *RegistryService) UnregisterPersonForEvent(ctx context.Context, personID, eventID string) error {
	err := s.unregisterPersonForEvent(ctx, personID, eventID)
	s.observeRegistration("unregister", err)
	if err != nil {
		logger.Debug("参加取消を拒否しました",
			zap.String("event_id", eventID),
			zap.String("person_id", personID),
			zap.Error(err),
		)
		return err
	}
	logger.Info("参加登録を取り消しました", zap.String("event_id", eventID), zap.String("person_id", personID))
	return nil
}

func (s *RegistryService) unregisterPersonForEvent(ctx context.Context, personID, eventID string) error {
	if personID == "" {
		return person.ErrPersonRequired
	}
	if eventID == "" {
		return event.ErrEventRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	e, p, err := s.resolveLocked(personID, eventID)
	if err != nil {
		return err
	}
	if !e.HasParticipant(p.ID) {
		return event.ErrNotRegistered
	}

	if s.journal != nil && s.journal.Registrations != nil {
		if err := s.record(ctx, "registration", func(ctx context.Context) error {
			return s.journal.Registrations.Delete(ctx, e.ID, p.ID)
		}); err != nil {
			return fmt.Errorf("参加取消の記録に失敗: %w", err)
		}
	}

	e.RemoveParticipant(p.ID)
	p.RemoveEvent(e.ID)
	s.invalidateLocked(ctx, e.ID)
	return nil
}

// GetParticipantsForEvent はイベントの参加者を並べ替えて返す
// 並べ替えは保持している参加者リストそのものに反映される。
func (s *RegistryService) GetParticipantsForEvent(ctx context.Context, eventID string) ([]*person.Person, error) {
	if eventID == "" {
		return nil, event.ErrEventRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.eventsByID[eventID]
	if !ok {
		return nil, event.ErrEventNotFound
	}

	participants := make([]*person.Person, len(e.ParticipantIDs))
	for i, id := range e.ParticipantIDs {
		p, ok := s.persons[id]
		if !ok {
			return nil, fmt.Errorf("参加者 %s の解決に失敗: %w", id, person.ErrPersonNotFound)
		}
		participants[i] = p
	}
	if err := person.SortByParticipation(participants); err != nil {
		return nil, err
	}

	result := make([]*person.Person, len(participants))
	for i, p := range participants {
		e.ParticipantIDs[i] = p.ID
		result[i] = p.Clone()
	}
	return result, nil
}

// GetEventsForPerson は人物が参加登録しているイベントをレジストリの作成順で返す
func (s *RegistryService) GetEventsForPerson(ctx context.Context, personID string) ([]*event.Event, error) {
	if personID == "" {
		return nil, person.ErrPersonRequired
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.persons[personID]; !ok {
		return nil, person.ErrPersonNotFound
	}

	events := []*event.Event{}
	for _, e := range s.events {
		if e.HasParticipant(personID) {
			events = append(events, e.Clone())
		}
	}
	return events, nil
}

// CountEventsForPerson は人物が参加登録しているイベント数を返す
func (s *RegistryService) CountEventsForPerson(ctx context.Context, personID string) (int, error) {
	if personID == "" {
		return 0, person.ErrPersonRequired
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.persons[personID]
	if !ok {
		return 0, person.ErrPersonNotFound
	}
	return p.EventCount(), nil
}

// CancelEvent はイベントをキャンセルする
// キャンセル機能は提供しておらず、存在するイベントに対しては常に ErrEventAlreadyCanceled を返す
func (s *RegistryService) CancelEvent(ctx context.Context, eventID string) error {
	if eventID == "" {
		return event.ErrEventRequired
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.eventsByID[eventID]
	if !ok {
		return event.ErrEventNotFound
	}
	return e.Cancel()
}

// Stats はレジストリの件数を表す
type Stats struct {
	Events        int
	Persons       int
	Registrations int
}

// Stats はレジストリの件数を返す
func (s *RegistryService) Stats(ctx context.Context) Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st := Stats{Events: len(s.events), Persons: len(s.persons)}
	for _, e := range s.events {
		st.Registrations += e.ParticipantCount()
	}
	return st
}

// Restore はジャーナルからレジストリを再構築する
// 開催日時の検証は行わない（過去のイベントも復元する）。
func (s *RegistryService) Restore(ctx context.Context) error {
	if s.journal == nil || s.journal.Persons == nil || s.journal.Events == nil || s.journal.Registrations == nil {
		return nil
	}

	persons, err := s.journal.Persons.List(ctx)
	if err != nil {
		return fmt.Errorf("人物の読み込みに失敗: %w", err)
	}
	events, err := s.journal.Events.List(ctx)
	if err != nil {
		return fmt.Errorf("イベントの読み込みに失敗: %w", err)
	}
	registrations, err := s.journal.Registrations.List(ctx)
	if err != nil {
		return fmt.Errorf("参加登録の読み込みに失敗: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.events = nil
	s.eventsByID = make(map[string]*event.Event, len(events))
	s.persons = make(map[string]*person.Person, len(persons))
	s.personOrder = nil

	for _, p := range persons {
		p.EventIDs = []string{}
		s.addPersonLocked(p)
	}
	for _, e := range events {
		e.ParticipantIDs = []string{}
		s.addEventLocked(e)
	}
	var skipped int
	for _, r := range registrations {
		e, p, err := s.resolveLocked(r.PersonID, r.EventID)
		if err != nil {
			skipped++
			continue
		}
		e.AddParticipant(p.ID)
		p.AddEvent(e.ID)
	}
	if skipped > 0 {
		logger.Warn("参照先のない参加登録をスキップしました", zap.Int("count", skipped))
	}

	logger.Info("ジャーナルからレジストリを復元しました",
		zap.Int("persons", len(persons)),
		zap.Int("events", len(events)),
		zap.Int("registrations", len(registrations)-skipped),
	)
	return nil
}

func (s *RegistryService) addPersonLocked(p *person.Person) {
	s.persons[p.ID] = p
	s.personOrder = append(s.personOrder, p.ID)
}

func (s *RegistryService) addEventLocked(e *event.Event) {
	s.events = append(s.events, e)
	s.eventsByID[e.ID] = e
}

// resolveLocked はイベントと人物がレジストリに存在することを確認する
func (s *RegistryService) resolveLocked(personID, eventID string) (*event.Event, *person.Person, error) {
	e, ok := s.eventsByID[eventID]
	if !ok {
		return nil, nil, event.ErrEventNotFound
	}
	p, ok := s.persons[personID]
	if !ok {
		return nil, nil, person.ErrPersonNotFound
	}
	return e, p, nil
}

// record はジャーナル書き込みの時間を計測する
func (s *RegistryService) record(ctx context.Context, entity string, write func(context.Context) error) error {
	start := time.Now()
	err := write(ctx)
	if s.metrics != nil {
		status := "success"
		if err != nil {
			status = "failed"
		}
		s.metrics.JournalWriteDuration.WithLabelValues(entity, status).Observe(time.Since(start).Seconds())
	}
	if err != nil {
		logger.Error("ジャーナル書き込みに失敗しました", zap.String("entity", entity), zap.Error(err))
	}
	return err
}

func (s *RegistryService) observeEventCreation(err error) {
	if s.metrics == nil {
		return
	}
	s.metrics.EventsCreatedTotal.WithLabelValues(statusLabel(err)).Inc()
}

func (s *RegistryService) observeRegistration(operation string, err error) {
	if s.metrics == nil {
		return
	}
	s.metrics.RegistrationsTotal.WithLabelValues(operation, statusLabel(err)).Inc()
}

func statusLabel(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, event.ErrEventFull):
		return "full"
	case errors.Is(err, event.ErrAlreadyRegistered):
		return "duplicate"
	case errors.Is(err, event.ErrNotRegistered):
		return "not_registered"
	case errors.Is(err, apperr.ErrNotFound):
		return "not_found"
	case errors.Is(err, apperr.ErrInvalidArgument):
		return "invalid"
	default:
		return "error"
	}
}
