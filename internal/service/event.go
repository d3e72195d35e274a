package service

import (
	"time"

	"github.com/google/uuid"

	"github.com/ceylontrip/ceylontrip/internal/domain"
)

type EventService interface {
	Create(e domain.Event) (domain.Event, error)
	Update(id uuid.UUID, e domain.Event) (domain.Event, error)
	Delete(id uuid.UUID) error
	Get(id uuid.UUID) (domain.Event, error)
	All() ([]domain.Event, error)
	Upcoming() ([]domain.Event, error)
	Search(query string) ([]domain.Event, error)
	ByCategory(category string) ([]domain.Event, error)
}

type EventStorage interface {
	SaveEvent(e domain.Event) error
	UpdateEvent(e domain.Event) error
	DeleteEvent(id uuid.UUID) error
	EventById(id uuid.UUID) (domain.Event, error)
	Events() ([]domain.Event, error)
	UpcomingEvents(after time.Time) ([]domain.Event, error)
	SearchEvents(query string) ([]domain.Event, error)
	EventsByCategory(category string) ([]domain.Event, error)
}

type Event struct {
	storage  EventStorage
	renderer *Renderer
}

func NewEvent(storage EventStorage, renderer *Renderer) *Event {
	return &Event{storage: storage, renderer: renderer}
}

func (s *Event) Create(e domain.Event) (domain.Event, error) {
	html, err := s.renderer.Render(e.Description)
	if err != nil {
		return domain.Event{}, err
	}

	e.Id = uuid.New()
	e.Images = orEmpty(e.Images)
	e.DescriptionHTML = html
	now := time.Now().UTC()
	e.CreatedAt = now
	e.UpdatedAt = now

	if err := s.storage.SaveEvent(e); err != nil {
		return domain.Event{}, err
	}
	return e, nil
}

func (s *Event) Update(id uuid.UUID, e domain.Event) (domain.Event, error) {
	existing, err := s.storage.EventById(id)
	if err != nil {
		return domain.Event{}, err
	}

	html, err := s.renderer.Render(e.Description)
	if err != nil {
		return domain.Event{}, err
	}

	e.Id = existing.Id
	e.Images = orEmpty(e.Images)
	e.DescriptionHTML = html
	e.CreatedAt = existing.CreatedAt
	e.UpdatedAt = time.Now().UTC()

	if err := s.storage.UpdateEvent(e); err != nil {
		return domain.Event{}, err
	}
	return e, nil
}

func (s *Event) Delete(id uuid.UUID) error {
	return s.storage.DeleteEvent(id)
}

func (s *Event) Get(id uuid.UUID) (domain.Event, error) {
	return s.storage.EventById(id)
}

func (s *Event) All() ([]domain.Event, error) {
	return s.storage.Events()
}

func (s *Event) Upcoming() ([]domain.Event, error) {
	return s.storage.UpcomingEvents(time.Now().UTC())
}

func (s *Event) Search(query string) ([]domain.Event, error) {
	return s.storage.SearchEvents(query)
}

func (s *Event) ByCategory(category string) ([]domain.Event, error) {
	return s.storage.EventsByCategory(category)
}
