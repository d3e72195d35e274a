package service

import (
	"time"

	"github.com/google/uuid"

	"github.com/ceylontrip/ceylontrip/internal/domain"
)

type DestinationService interface {
	Create(d domain.Destination) (domain.Destination, error)
	Update(id uuid.UUID, d domain.Destination) (domain.Destination, error)
	Delete(id uuid.UUID) error
	Get(id uuid.UUID) (domain.Destination, error)
	All() ([]domain.Destination, error)
	Search(query string) ([]domain.Destination, error)
	ByCategory(category string) ([]domain.Destination, error)
}

type DestinationStorage interface {
	SaveDestination(d domain.Destination) error
	UpdateDestination(d domain.Destination) error
	DeleteDestination(id uuid.UUID) error
	DestinationById(id uuid.UUID) (domain.Destination, error)
	Destinations() ([]domain.Destination, error)
	SearchDestinations(query string) ([]domain.Destination, error)
	DestinationsByCategory(category string) ([]domain.Destination, error)
}

type Destination struct {
	storage  DestinationStorage
	renderer *Renderer
}

func NewDestination(storage DestinationStorage, renderer *Renderer) *Destination {
	return &Destination{storage: storage, renderer: renderer}
}

// orEmpty keeps array columns non-null when the request omits them.
func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func (s *Destination) Create(d domain.Destination) (domain.Destination, error) {
	html, err := s.renderer.Render(d.Description)
	if err != nil {
		return domain.Destination{}, err
	}

	d.Id = uuid.New()
	d.Images = orEmpty(d.Images)
	d.Highlights = orEmpty(d.Highlights)
	d.Activities = orEmpty(d.Activities)
	d.DescriptionHTML = html
	d.Rating = 0
	now := time.Now().UTC()
	d.CreatedAt = now
	d.UpdatedAt = now

	if err := s.storage.SaveDestination(d); err != nil {
		return domain.Destination{}, err
	}
	return d, nil
}

// Update replaces the editable fields of an existing record. Creation
// time and rating are preserved.
func (s *Destination) Update(id uuid.UUID, d domain.Destination) (domain.Destination, error) {
	existing, err := s.storage.DestinationById(id)
	if err != nil {
		return domain.Destination{}, err
	}

	html, err := s.renderer.Render(d.Description)
	if err != nil {
		return domain.Destination{}, err
	}

	d.Id = existing.Id
	d.Images = orEmpty(d.Images)
	d.Highlights = orEmpty(d.Highlights)
	d.Activities = orEmpty(d.Activities)
	d.DescriptionHTML = html
	d.Rating = existing.Rating
	d.CreatedAt = existing.CreatedAt
	d.UpdatedAt = time.Now().UTC()

	if err := s.storage.UpdateDestination(d); err != nil {
		return domain.Destination{}, err
	}
	return d, nil
}

func (s *Destination) Delete(id uuid.UUID) error {
	return s.storage.DeleteDestination(id)
}

func (s *Destination) Get(id uuid.UUID) (domain.Destination, error) {
	return s.storage.DestinationById(id)
}

func (s *Destination) All() ([]domain.Destination, error) {
	return s.storage.Destinations()
}

func (s *Destination) Search(query string) ([]domain.Destination, error) {
	return s.storage.SearchDestinations(query)
}

func (s *Destination) ByCategory(category string) ([]domain.Destination, error) {
	return s.storage.DestinationsByCategory(category)
}
