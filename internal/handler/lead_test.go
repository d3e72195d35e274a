package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/ceylontrip/ceylontrip/internal/domain"
	internal_errors "github.com/ceylontrip/ceylontrip/internal/errors"
)

type MockLeadService struct {
	MockSubmitContact         func(c domain.Contact) (domain.Contact, error)
	MockContacts              func(search string, page, limit int) ([]domain.Contact, int64, error)
	MockContact               func(id uuid.UUID) (domain.Contact, error)
	MockSetContactStatus      func(id uuid.UUID, status domain.ContactStatus) error
	MockDeleteContact         func(id uuid.UUID) error
	MockSubscribe             func(email, name string) (domain.Subscription, error)
	MockUnsubscribe           func(email string) error
	MockSubscriptions         func(page, limit int) ([]domain.Subscription, int64, error)
	MockDeleteSubscription    func(id uuid.UUID) error
	MockActiveSubscriberCount func() (int64, error)
}

func (m *MockLeadService) SubmitContact(c domain.Contact) (domain.Contact, error) {
	if m.MockSubmitContact != nil {
		return m.MockSubmitContact(c)
	}
	return c, nil
}

func (m *MockLeadService) Contacts(search string, page, limit int) ([]domain.Contact, int64, error) {
	if m.MockContacts != nil {
		return m.MockContacts(search, page, limit)
	}
	return nil, 0, nil
}

func (m *MockLeadService) Contact(id uuid.UUID) (domain.Contact, error) {
	if m.MockContact != nil {
		return m.MockContact(id)
	}
	return domain.Contact{}, nil
}

func (m *MockLeadService) SetContactStatus(id uuid.UUID, status domain.ContactStatus) error {
	if m.MockSetContactStatus != nil {
		return m.MockSetContactStatus(id, status)
	}
	return nil
}

func (m *MockLeadService) DeleteContact(id uuid.UUID) error {
	if m.MockDeleteContact != nil {
		return m.MockDeleteContact(id)
	}
	return nil
}

func (m *MockLeadService) Subscribe(email, name string) (domain.Subscription, error) {
	if m.MockSubscribe != nil {
		return m.MockSubscribe(email, name)
	}
	return domain.Subscription{}, nil
}

func (m *MockLeadService) Unsubscribe(email string) error {
	if m.MockUnsubscribe != nil {
		return m.MockUnsubscribe(email)
	}
	return nil
}

func (m *MockLeadService) Subscriptions(page, limit int) ([]domain.Subscription, int64, error) {
	if m.MockSubscriptions != nil {
		return m.MockSubscriptions(page, limit)
	}
	return nil, 0, nil
}

func (m *MockLeadService) DeleteSubscription(id uuid.UUID) error {
	if m.MockDeleteSubscription != nil {
		return m.MockDeleteSubscription(id)
	}
	return nil
}

func (m *MockLeadService) ActiveSubscriberCount() (int64, error) {
	if m.MockActiveSubscriberCount != nil {
		return m.MockActiveSubscriberCount()
	}
	return 0, nil
}

func TestSubmitContactHandler(t *testing.T) {
	h := &Handler{cfg: testConfig()}

	router := chi.NewRouter()
	router.Post("/api/contact", h.SubmitContact)

	t.Run("successful request", func(t *testing.T) {
		h.leads = &MockLeadService{
			MockSubmitContact: func(c domain.Contact) (domain.Contact, error) {
				c.Id = uuid.New()
				c.Status = domain.ContactNew
				return c, nil
			},
		}

		body := []byte(`{
			"name": "Kamala",
			"email": "kamala@example.com",
			"subject": "Trip planning",
			"message": "Looking for a 10 day itinerary"
		}`)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, createRequest(t, http.MethodPost, "/api/contact", body))

		assert.Equal(t, http.StatusCreated, rr.Code)
		assert.Contains(t, rr.Body.String(), "Thank you for contacting us")
	})

	t.Run("validation failure", func(t *testing.T) {
		body := []byte(`{"name": "K", "email": "bad", "subject": "hi", "message": "short"}`)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, createRequest(t, http.MethodPost, "/api/contact", body))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestSubscribeHandler(t *testing.T) {
	h := &Handler{cfg: testConfig()}

	router := chi.NewRouter()
	router.Post("/api/newsletter/subscribe", h.Subscribe)

	body := []byte(`{"email": "traveler@example.com"}`)

	t.Run("successful request", func(t *testing.T) {
		h.leads = &MockLeadService{
			MockSubscribe: func(email, name string) (domain.Subscription, error) {
				return domain.Subscription{Id: uuid.New(), Email: email, IsActive: true}, nil
			},
		}

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, createRequest(t, http.MethodPost, "/api/newsletter/subscribe", body))

		assert.Equal(t, http.StatusCreated, rr.Code)
	})

	t.Run("already subscribed", func(t *testing.T) {
		h.leads = &MockLeadService{
			MockSubscribe: func(email, name string) (domain.Subscription, error) {
				return domain.Subscription{}, internal_errors.New(internal_errors.KindDuplicateEmail,
					"This email is already subscribed to our newsletter", http.StatusBadRequest)
			},
		}

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, createRequest(t, http.MethodPost, "/api/newsletter/subscribe", body))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), string(internal_errors.KindDuplicateEmail))
	})
}

func TestSubscriberCountHandler(t *testing.T) {
	h := &Handler{cfg: testConfig(), leads: &MockLeadService{
		MockActiveSubscriberCount: func() (int64, error) { return 42, nil },
	}}

	router := chi.NewRouter()
	router.Get("/api/newsletter/count", h.SubscriberCount)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/newsletter/count", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"count": 42}`, rr.Body.String())
}

func TestContactStatusHandlerInvalidId(t *testing.T) {
	h := &Handler{cfg: testConfig(), leads: &MockLeadService{}}

	router := chi.NewRouter()
	router.Put("/api/contact/{id}/status", h.UpdateContactStatus)

	body := []byte(`{"status": "read"}`)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, createRequest(t, http.MethodPut, "/api/contact/not-a-uuid/status", body))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
