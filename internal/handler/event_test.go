package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/ceylontrip/ceylontrip/internal/domain"
)

type MockEventService struct {
	MockCreate     func(e domain.Event) (domain.Event, error)
	MockUpdate     func(id uuid.UUID, e domain.Event) (domain.Event, error)
	MockDelete     func(id uuid.UUID) error
	MockGet        func(id uuid.UUID) (domain.Event, error)
	MockAll        func() ([]domain.Event, error)
	MockUpcoming   func() ([]domain.Event, error)
	MockSearch     func(query string) ([]domain.Event, error)
	MockByCategory func(category string) ([]domain.Event, error)
}

func (m *MockEventService) Create(e domain.Event) (domain.Event, error) {
	if m.MockCreate != nil {
		return m.MockCreate(e)
	}
	return e, nil
}

func (m *MockEventService) Update(id uuid.UUID, e domain.Event) (domain.Event, error) {
	if m.MockUpdate != nil {
		return m.MockUpdate(id, e)
	}
	return e, nil
}

func (m *MockEventService) Delete(id uuid.UUID) error {
	if m.MockDelete != nil {
		return m.MockDelete(id)
	}
	return nil
}

func (m *MockEventService) Get(id uuid.UUID) (domain.Event, error) {
	if m.MockGet != nil {
		return m.MockGet(id)
	}
	return domain.Event{}, nil
}

func (m *MockEventService) All() ([]domain.Event, error) {
	if m.MockAll != nil {
		return m.MockAll()
	}
	return nil, nil
}

func (m *MockEventService) Upcoming() ([]domain.Event, error) {
	if m.MockUpcoming != nil {
		return m.MockUpcoming()
	}
	return nil, nil
}

func (m *MockEventService) Search(query string) ([]domain.Event, error) {
	if m.MockSearch != nil {
		return m.MockSearch(query)
	}
	return nil, nil
}

func (m *MockEventService) ByCategory(category string) ([]domain.Event, error) {
	if m.MockByCategory != nil {
		return m.MockByCategory(category)
	}
	return nil, nil
}

func eventRouter(h *Handler) *chi.Mux {
	router := chi.NewRouter()
	router.Get("/api/events/", h.Events)
	router.Get("/api/events/upcoming", h.UpcomingEvents)
	router.Get("/api/events/search/{query}", h.SearchEvents)
	router.Get("/api/events/category/{category}", h.EventsByCategory)
	router.Get("/api/events/{id}", h.Event)
	return router
}

func TestEventsHandler(t *testing.T) {
	h := &Handler{cfg: testConfig()}
	router := eventRouter(h)

	t.Run("search path", func(t *testing.T) {
		h.events = &MockEventService{
			MockSearch: func(query string) ([]domain.Event, error) {
				assert.Equal(t, "kandy", query)
				return []domain.Event{{Id: uuid.New(), Name: "Kandy Esala Perahera"}}, nil
			},
		}

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/events/search/kandy", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "Kandy Esala Perahera")
	})

	t.Run("search query on the list endpoint", func(t *testing.T) {
		h.events = &MockEventService{
			MockSearch: func(query string) ([]domain.Event, error) {
				assert.Equal(t, "festival", query)
				return nil, nil
			},
			MockAll: func() ([]domain.Event, error) {
				t.Fatal("list should delegate to search")
				return nil, nil
			},
		}

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/events/?search=festival", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("upcoming", func(t *testing.T) {
		h.events = &MockEventService{
			MockUpcoming: func() ([]domain.Event, error) {
				return []domain.Event{{Id: uuid.New(), Name: "Vesak"}}, nil
			},
		}

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/events/upcoming", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "Vesak")
	})
}
