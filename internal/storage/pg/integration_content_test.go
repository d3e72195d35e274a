package pg

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ceylontrip/ceylontrip/internal/domain"
	internal_errors "github.com/ceylontrip/ceylontrip/internal/errors"
)

func newTestDestination(t *testing.T, category string) domain.Destination {
	t.Helper()
	now := time.Now().UTC().Truncate(time.Microsecond)
	d := domain.Destination{
		Id:              uuid.New(),
		Name:            fmt.Sprintf("Dest %s", uuid.NewString()[:8]),
		Description:     "A place worth visiting",
		DescriptionHTML: "<p>A place worth visiting</p>",
		Location:        "Southern Province",
		Category:        category,
		Images:          []string{"https://example.com/1.jpg"},
		MainImage:       "https://example.com/main.jpg",
		Highlights:      []string{"views"},
		Activities:      []string{"hiking"},
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	require.NoError(t, storage.SaveDestination(d))
	t.Cleanup(func() { _ = storage.DeleteDestination(d.Id) })
	return d
}

func TestDestinationRoundTrip(t *testing.T) {
	d := newTestDestination(t, "Beach")

	got, err := storage.DestinationById(d.Id)
	require.NoError(t, err)
	assert.Equal(t, d.Name, got.Name)
	assert.Equal(t, d.Images, got.Images)
	assert.Equal(t, d.Highlights, got.Highlights)
	assert.Equal(t, "Beach", got.Category)

	t.Run("update", func(t *testing.T) {
		d.Name = "Renamed"
		d.UpdatedAt = time.Now().UTC().Truncate(time.Microsecond)
		require.NoError(t, storage.UpdateDestination(d))

		got, err := storage.DestinationById(d.Id)
		require.NoError(t, err)
		assert.Equal(t, "Renamed", got.Name)
	})

	t.Run("search matches name and description", func(t *testing.T) {
		results, err := storage.SearchDestinations("worth visiting")
		require.NoError(t, err)
		assert.NotEmpty(t, results)
	})

	t.Run("category filter", func(t *testing.T) {
		results, err := storage.DestinationsByCategory("Beach")
		require.NoError(t, err)
		for _, r := range results {
			assert.Equal(t, "Beach", r.Category)
		}
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := storage.DestinationById(uuid.New())
		require.Error(t, err)
		assert.True(t, internal_errors.IsKind(err, internal_errors.KindNotFound))
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, storage.DeleteDestination(d.Id))
		err := storage.DeleteDestination(d.Id)
		require.Error(t, err)
		assert.True(t, internal_errors.IsKind(err, internal_errors.KindNotFound))
	})
}

func TestSearchEvents(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Microsecond)
	e := domain.Event{
		Id:          uuid.New(),
		Name:        fmt.Sprintf("Event %s", uuid.NewString()[:8]),
		Description: "Traditional drumming and dance",
		Category:    "Cultural",
		Location:    "Colombo",
		Venue:       "Nelum Pokuna Theatre",
		StartDate:   now.AddDate(0, 1, 0),
		EndDate:     now.AddDate(0, 1, 1),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	require.NoError(t, storage.SaveEvent(e))
	t.Cleanup(func() { _ = storage.DeleteEvent(e.Id) })

	t.Run("matches venue", func(t *testing.T) {
		results, err := storage.SearchEvents("nelum pokuna")
		require.NoError(t, err)

		var found bool
		for _, got := range results {
			if got.Id == e.Id {
				found = true
			}
		}
		assert.True(t, found)
	})

	t.Run("matches description", func(t *testing.T) {
		results, err := storage.SearchEvents("drumming")
		require.NoError(t, err)
		assert.NotEmpty(t, results)
	})

	t.Run("no match", func(t *testing.T) {
		results, err := storage.SearchEvents(uuid.NewString())
		require.NoError(t, err)
		assert.Empty(t, results)
	})
}

func TestHotelFilters(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Microsecond)
	h := domain.Hotel{
		Id:          uuid.New(),
		Name:        fmt.Sprintf("Hotel %s", uuid.NewString()[:8]),
		Description: "Colonial era hotel",
		Location:    "Galle Fort",
		StarRating:  5,
		Images:      []string{},
		MainImage:   "https://example.com/hotel.jpg",
		PriceRange:  180,
		Amenities:   []string{"pool"},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	require.NoError(t, storage.SaveHotel(h))
	t.Cleanup(func() { _ = storage.DeleteHotel(h.Id) })

	contains := func(hotels []domain.Hotel) bool {
		for _, got := range hotels {
			if got.Id == h.Id {
				return true
			}
		}
		return false
	}

	t.Run("by location", func(t *testing.T) {
		results, err := storage.HotelsByLocation("galle")
		require.NoError(t, err)
		assert.True(t, contains(results))
	})

	t.Run("by star rating", func(t *testing.T) {
		results, err := storage.HotelsByStarRating(5)
		require.NoError(t, err)
		assert.True(t, contains(results))
		for _, got := range results {
			assert.Equal(t, 5, got.StarRating)
		}
	})

	t.Run("by price range", func(t *testing.T) {
		results, err := storage.HotelsByPriceRange(100, 200)
		require.NoError(t, err)
		assert.True(t, contains(results))

		results, err = storage.HotelsByPriceRange(10, 20)
		require.NoError(t, err)
		assert.False(t, contains(results))
	})
}

func TestUpcomingEvents(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Microsecond)

	past := domain.Event{
		Id:        uuid.New(),
		Name:      "Past Festival",
		Category:  "Cultural",
		Location:  "Kandy",
		StartDate: now.AddDate(0, -2, 0),
		EndDate:   now.AddDate(0, -2, 3),
		CreatedAt: now,
		UpdatedAt: now,
	}
	upcoming := domain.Event{
		Id:        uuid.New(),
		Name:      "Upcoming Festival",
		Category:  "Cultural",
		Location:  "Kandy",
		StartDate: now.AddDate(0, 1, 0),
		EndDate:   now.AddDate(0, 1, 3),
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, storage.SaveEvent(past))
	require.NoError(t, storage.SaveEvent(upcoming))
	t.Cleanup(func() {
		_ = storage.DeleteEvent(past.Id)
		_ = storage.DeleteEvent(upcoming.Id)
	})

	events, err := storage.UpcomingEvents(now)
	require.NoError(t, err)

	ids := make(map[uuid.UUID]bool, len(events))
	for _, e := range events {
		ids[e.Id] = true
	}
	assert.True(t, ids[upcoming.Id], "upcoming event should be listed")
	assert.False(t, ids[past.Id], "finished event should be excluded")
}
