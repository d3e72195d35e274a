package service

import (
	"time"

	"github.com/google/uuid"

	"github.com/ceylontrip/ceylontrip/internal/domain"
	"github.com/ceylontrip/ceylontrip/internal/errors"
)

type HotelService interface {
	Create(h domain.Hotel) (domain.Hotel, error)
	Update(id uuid.UUID, h domain.Hotel) (domain.Hotel, error)
	Delete(id uuid.UUID) error
	Get(id uuid.UUID) (domain.Hotel, error)
	All() ([]domain.Hotel, error)
	Search(query string) ([]domain.Hotel, error)
	ByLocation(location string) ([]domain.Hotel, error)
	ByStarRating(stars int) ([]domain.Hotel, error)
	ByPriceRange(min, max float64) ([]domain.Hotel, error)
}

type HotelStorage interface {
	SaveHotel(h domain.Hotel) error
	UpdateHotel(h domain.Hotel) error
	DeleteHotel(id uuid.UUID) error
	HotelById(id uuid.UUID) (domain.Hotel, error)
	Hotels() ([]domain.Hotel, error)
	SearchHotels(query string) ([]domain.Hotel, error)
	HotelsByLocation(location string) ([]domain.Hotel, error)
	HotelsByStarRating(stars int) ([]domain.Hotel, error)
	HotelsByPriceRange(min, max float64) ([]domain.Hotel, error)
}

type Hotel struct {
	storage  HotelStorage
	renderer *Renderer
}

func NewHotel(storage HotelStorage, renderer *Renderer) *Hotel {
	return &Hotel{storage: storage, renderer: renderer}
}

func (s *Hotel) Create(h domain.Hotel) (domain.Hotel, error) {
	html, err := s.renderer.Render(h.Description)
	if err != nil {
		return domain.Hotel{}, err
	}

	h.Id = uuid.New()
	h.Images = orEmpty(h.Images)
	h.Amenities = orEmpty(h.Amenities)
	h.DescriptionHTML = html
	h.Rating = 0
	now := time.Now().UTC()
	h.CreatedAt = now
	h.UpdatedAt = now

	if err := s.storage.SaveHotel(h); err != nil {
		return domain.Hotel{}, err
	}
	return h, nil
}

func (s *Hotel) Update(id uuid.UUID, h domain.Hotel) (domain.Hotel, error) {
	existing, err := s.storage.HotelById(id)
	if err != nil {
		return domain.Hotel{}, err
	}

	html, err := s.renderer.Render(h.Description)
	if err != nil {
		return domain.Hotel{}, err
	}

	h.Id = existing.Id
	h.Images = orEmpty(h.Images)
	h.Amenities = orEmpty(h.Amenities)
	h.DescriptionHTML = html
	h.Rating = existing.Rating
	h.CreatedAt = existing.CreatedAt
	h.UpdatedAt = time.Now().UTC()

	if err := s.storage.UpdateHotel(h); err != nil {
		return domain.Hotel{}, err
	}
	return h, nil
}

func (s *Hotel) Delete(id uuid.UUID) error {
	return s.storage.DeleteHotel(id)
}

func (s *Hotel) Get(id uuid.UUID) (domain.Hotel, error) {
	return s.storage.HotelById(id)
}

func (s *Hotel) All() ([]domain.Hotel, error) {
	return s.storage.Hotels()
}

func (s *Hotel) Search(query string) ([]domain.Hotel, error) {
	return s.storage.SearchHotels(query)
}

func (s *Hotel) ByLocation(location string) ([]domain.Hotel, error) {
	return s.storage.HotelsByLocation(location)
}

func (s *Hotel) ByStarRating(stars int) ([]domain.Hotel, error) {
	if stars < 1 || stars > 5 {
		return nil, errors.BadRequest("Star rating must be between 1 and 5")
	}
	return s.storage.HotelsByStarRating(stars)
}

func (s *Hotel) ByPriceRange(min, max float64) ([]domain.Hotel, error) {
	if min < 0 || max < min {
		return nil, errors.BadRequest("Invalid price range")
	}
	return s.storage.HotelsByPriceRange(min, max)
}
