package service

import (
	"time"

	"github.com/google/uuid"

	"github.com/ceylontrip/ceylontrip/internal/domain"
)

type AttractionService interface {
	Create(a domain.Attraction) (domain.Attraction, error)
	Update(id uuid.UUID, a domain.Attraction) (domain.Attraction, error)
	Delete(id uuid.UUID) error
	Get(id uuid.UUID) (domain.Attraction, error)
	All() ([]domain.Attraction, error)
	Search(query string) ([]domain.Attraction, error)
	ByCategory(category string) ([]domain.Attraction, error)
}

type AttractionStorage interface {
	SaveAttraction(a domain.Attraction) error
	UpdateAttraction(a domain.Attraction) error
	DeleteAttraction(id uuid.UUID) error
	AttractionById(id uuid.UUID) (domain.Attraction, error)
	Attractions() ([]domain.Attraction, error)
	SearchAttractions(query string) ([]domain.Attraction, error)
	AttractionsByCategory(category string) ([]domain.Attraction, error)
}

type Attraction struct {
	storage  AttractionStorage
	renderer *Renderer
}

func NewAttraction(storage AttractionStorage, renderer *Renderer) *Attraction {
	return &Attraction{storage: storage, renderer: renderer}
}

func (s *Attraction) Create(a domain.Attraction) (domain.Attraction, error) {
	html, err := s.renderer.Render(a.Description)
	if err != nil {
		return domain.Attraction{}, err
	}

	a.Id = uuid.New()
	a.Images = orEmpty(a.Images)
	a.DescriptionHTML = html
	a.Rating = 0
	now := time.Now().UTC()
	a.CreatedAt = now
	a.UpdatedAt = now

	if err := s.storage.SaveAttraction(a); err != nil {
		return domain.Attraction{}, err
	}
	return a, nil
}

func (s *Attraction) Update(id uuid.UUID, a domain.Attraction) (domain.Attraction, error) {
	existing, err := s.storage.AttractionById(id)
	if err != nil {
		return domain.Attraction{}, err
	}

	html, err := s.renderer.Render(a.Description)
	if err != nil {
		return domain.Attraction{}, err
	}

	a.Id = existing.Id
	a.Images = orEmpty(a.Images)
	a.DescriptionHTML = html
	a.Rating = existing.Rating
	a.CreatedAt = existing.CreatedAt
	a.UpdatedAt = time.Now().UTC()

	if err := s.storage.UpdateAttraction(a); err != nil {
		return domain.Attraction{}, err
	}
	return a, nil
}

func (s *Attraction) Delete(id uuid.UUID) error {
	return s.storage.DeleteAttraction(id)
}

func (s *Attraction) Get(id uuid.UUID) (domain.Attraction, error) {
	return s.storage.AttractionById(id)
}

func (s *Attraction) All() ([]domain.Attraction, error) {
	return s.storage.Attractions()
}

func (s *Attraction) Search(query string) ([]domain.Attraction, error) {
	return s.storage.SearchAttractions(query)
}

func (s *Attraction) ByCategory(category string) ([]domain.Attraction, error) {
	return s.storage.AttractionsByCategory(category)
}
