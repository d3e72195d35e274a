package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ceylontrip/ceylontrip/internal/domain"
	internal_errors "github.com/ceylontrip/ceylontrip/internal/errors"
)

type MockHotelStorage struct {
	MockSaveHotel          func(h domain.Hotel) error
	MockUpdateHotel        func(h domain.Hotel) error
	MockDeleteHotel        func(id uuid.UUID) error
	MockHotelById          func(id uuid.UUID) (domain.Hotel, error)
	MockHotels             func() ([]domain.Hotel, error)
	MockSearchHotels       func(query string) ([]domain.Hotel, error)
	MockHotelsByLocation   func(location string) ([]domain.Hotel, error)
	MockHotelsByStarRating func(stars int) ([]domain.Hotel, error)
	MockHotelsByPriceRange func(min, max float64) ([]domain.Hotel, error)
}

func (m *MockHotelStorage) SaveHotel(h domain.Hotel) error {
	if m.MockSaveHotel != nil {
		return m.MockSaveHotel(h)
	}
	return nil
}

func (m *MockHotelStorage) UpdateHotel(h domain.Hotel) error {
	if m.MockUpdateHotel != nil {
		return m.MockUpdateHotel(h)
	}
	return nil
}

func (m *MockHotelStorage) DeleteHotel(id uuid.UUID) error {
	if m.MockDeleteHotel != nil {
		return m.MockDeleteHotel(id)
	}
	return nil
}

func (m *MockHotelStorage) HotelById(id uuid.UUID) (domain.Hotel, error) {
	if m.MockHotelById != nil {
		return m.MockHotelById(id)
	}
	return domain.Hotel{}, nil
}

func (m *MockHotelStorage) Hotels() ([]domain.Hotel, error) {
	if m.MockHotels != nil {
		return m.MockHotels()
	}
	return nil, nil
}

func (m *MockHotelStorage) SearchHotels(query string) ([]domain.Hotel, error) {
	if m.MockSearchHotels != nil {
		return m.MockSearchHotels(query)
	}
	return nil, nil
}

func (m *MockHotelStorage) HotelsByLocation(location string) ([]domain.Hotel, error) {
	if m.MockHotelsByLocation != nil {
		return m.MockHotelsByLocation(location)
	}
	return nil, nil
}

func (m *MockHotelStorage) HotelsByStarRating(stars int) ([]domain.Hotel, error) {
	if m.MockHotelsByStarRating != nil {
		return m.MockHotelsByStarRating(stars)
	}
	return nil, nil
}

func (m *MockHotelStorage) HotelsByPriceRange(min, max float64) ([]domain.Hotel, error) {
	if m.MockHotelsByPriceRange != nil {
		return m.MockHotelsByPriceRange(min, max)
	}
	return nil, nil
}

func TestHotelByStarRatingBounds(t *testing.T) {
	hotels := NewHotel(&MockHotelStorage{}, NewRenderer())

	for _, stars := range []int{0, -1, 6, 100} {
		_, err := hotels.ByStarRating(stars)
		require.Error(t, err)
		assert.True(t, internal_errors.IsKind(err, internal_errors.KindBadRequest))
	}

	_, err := hotels.ByStarRating(3)
	require.NoError(t, err)
}

func TestHotelByPriceRangeValidation(t *testing.T) {
	hotels := NewHotel(&MockHotelStorage{}, NewRenderer())

	_, err := hotels.ByPriceRange(200, 50)
	require.Error(t, err)
	assert.True(t, internal_errors.IsKind(err, internal_errors.KindBadRequest))

	_, err = hotels.ByPriceRange(-10, 50)
	require.Error(t, err)

	queried := false
	hotels = NewHotel(&MockHotelStorage{
		MockHotelsByPriceRange: func(min, max float64) ([]domain.Hotel, error) {
			queried = true
			return nil, nil
		},
	}, NewRenderer())

	_, err = hotels.ByPriceRange(50, 200)
	require.NoError(t, err)
	assert.True(t, queried)
}
