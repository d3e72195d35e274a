package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ceylontrip/ceylontrip/internal/domain"
	internal_errors "github.com/ceylontrip/ceylontrip/internal/errors"
)

type MockDestinationStorage struct {
	MockSaveDestination        func(d domain.Destination) error
	MockUpdateDestination      func(d domain.Destination) error
	MockDeleteDestination      func(id uuid.UUID) error
	MockDestinationById        func(id uuid.UUID) (domain.Destination, error)
	MockDestinations           func() ([]domain.Destination, error)
	MockSearchDestinations     func(query string) ([]domain.Destination, error)
	MockDestinationsByCategory func(category string) ([]domain.Destination, error)
}

func (m *MockDestinationStorage) SaveDestination(d domain.Destination) error {
	if m.MockSaveDestination != nil {
		return m.MockSaveDestination(d)
	}
	return nil
}

func (m *MockDestinationStorage) UpdateDestination(d domain.Destination) error {
	if m.MockUpdateDestination != nil {
		return m.MockUpdateDestination(d)
	}
	return nil
}

func (m *MockDestinationStorage) DeleteDestination(id uuid.UUID) error {
	if m.MockDeleteDestination != nil {
		return m.MockDeleteDestination(id)
	}
	return nil
}

func (m *MockDestinationStorage) DestinationById(id uuid.UUID) (domain.Destination, error) {
	if m.MockDestinationById != nil {
		return m.MockDestinationById(id)
	}
	return domain.Destination{}, nil
}

func (m *MockDestinationStorage) Destinations() ([]domain.Destination, error) {
	if m.MockDestinations != nil {
		return m.MockDestinations()
	}
	return nil, nil
}

func (m *MockDestinationStorage) SearchDestinations(query string) ([]domain.Destination, error) {
	if m.MockSearchDestinations != nil {
		return m.MockSearchDestinations(query)
	}
	return nil, nil
}

func (m *MockDestinationStorage) DestinationsByCategory(category string) ([]domain.Destination, error) {
	if m.MockDestinationsByCategory != nil {
		return m.MockDestinationsByCategory(category)
	}
	return nil, nil
}

func TestDestinationCreate(t *testing.T) {
	var saved domain.Destination
	svc := NewDestination(&MockDestinationStorage{
		MockSaveDestination: func(d domain.Destination) error {
			saved = d
			return nil
		},
	}, NewRenderer())

	d, err := svc.Create(domain.Destination{
		Name:        "Ella",
		Description: "A **scenic** hill town.",
		Location:    "Uva Province",
		Category:    "Mountain",
		Rating:      4.9, // caller-supplied rating is ignored
	})
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, saved.Id)
	assert.Contains(t, saved.DescriptionHTML, "<strong>scenic</strong>")
	assert.Zero(t, saved.Rating)
	assert.Equal(t, saved.CreatedAt, saved.UpdatedAt)
	assert.Equal(t, saved, d)
}

func TestDestinationUpdatePreservesImmutableFields(t *testing.T) {
	created := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	existing := domain.Destination{
		Id:        uuid.New(),
		Name:      "Ella",
		Rating:    4.5,
		CreatedAt: created,
	}

	var updated domain.Destination
	svc := NewDestination(&MockDestinationStorage{
		MockDestinationById: func(id uuid.UUID) (domain.Destination, error) {
			require.Equal(t, existing.Id, id)
			return existing, nil
		},
		MockUpdateDestination: func(d domain.Destination) error {
			updated = d
			return nil
		},
	}, NewRenderer())

	_, err := svc.Update(existing.Id, domain.Destination{
		Name:        "Ella Gap",
		Description: "Updated text",
		Rating:      1.0, // must not override the accumulated rating
	})
	require.NoError(t, err)

	assert.Equal(t, existing.Id, updated.Id)
	assert.Equal(t, 4.5, updated.Rating)
	assert.Equal(t, created, updated.CreatedAt)
	assert.True(t, updated.UpdatedAt.After(created))
	assert.Equal(t, "Ella Gap", updated.Name)
}

func TestDestinationUpdateUnknownId(t *testing.T) {
	svc := NewDestination(&MockDestinationStorage{
		MockDestinationById: func(id uuid.UUID) (domain.Destination, error) {
			return domain.Destination{}, internal_errors.NotFound("Destination not found")
		},
	}, NewRenderer())

	_, err := svc.Update(uuid.New(), domain.Destination{Description: "x"})
	require.Error(t, err)
	assert.True(t, internal_errors.IsKind(err, internal_errors.KindNotFound))
}
