package service

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ceylontrip/ceylontrip/internal/domain"
	"github.com/ceylontrip/ceylontrip/internal/errors"
)

type LeadService interface {
	SubmitContact(c domain.Contact) (domain.Contact, error)
	Contacts(search string, page, limit int) ([]domain.Contact, int64, error)
	Contact(id uuid.UUID) (domain.Contact, error)
	SetContactStatus(id uuid.UUID, status domain.ContactStatus) error
	DeleteContact(id uuid.UUID) error

	Subscribe(email, name string) (domain.Subscription, error)
	Unsubscribe(email string) error
	Subscriptions(page, limit int) ([]domain.Subscription, int64, error)
	DeleteSubscription(id uuid.UUID) error
	ActiveSubscriberCount() (int64, error)
}

type LeadStorage interface {
	SaveContact(c domain.Contact) error
	Contacts(search string, page, limit int) ([]domain.Contact, int64, error)
	ContactById(id uuid.UUID) (domain.Contact, error)
	SetContactStatus(id uuid.UUID, status domain.ContactStatus) error
	DeleteContact(id uuid.UUID) error

	SaveSubscription(s domain.Subscription) error
	SubscriptionByEmail(email string) (domain.Subscription, error)
	SetSubscriptionActive(email string, active bool) error
	Subscriptions(page, limit int) ([]domain.Subscription, int64, error)
	DeleteSubscription(id uuid.UUID) error
	CountActiveSubscriptions() (int64, error)
}

// Lead handles the two capture forms: contact inquiries and newsletter
// subscriptions.
type Lead struct {
	storage LeadStorage
}

func NewLead(storage LeadStorage) *Lead {
	return &Lead{storage: storage}
}

func (s *Lead) SubmitContact(c domain.Contact) (domain.Contact, error) {
	c.Id = uuid.New()
	c.Email = strings.ToLower(c.Email)
	c.Status = domain.ContactNew
	c.SubmittedAt = time.Now().UTC()

	if err := s.storage.SaveContact(c); err != nil {
		return domain.Contact{}, err
	}
	return c, nil
}

func (s *Lead) Contacts(search string, page, limit int) ([]domain.Contact, int64, error) {
	return s.storage.Contacts(search, page, limit)
}

func (s *Lead) Contact(id uuid.UUID) (domain.Contact, error) {
	return s.storage.ContactById(id)
}

func (s *Lead) SetContactStatus(id uuid.UUID, status domain.ContactStatus) error {
	if !status.Valid() {
		return errors.BadRequest("Invalid contact status")
	}
	return s.storage.SetContactStatus(id, status)
}

func (s *Lead) DeleteContact(id uuid.UUID) error {
	return s.storage.DeleteContact(id)
}

// Subscribe registers an email for the newsletter. Re-subscribing a
// previously unsubscribed address reactivates it instead of failing.
func (s *Lead) Subscribe(email, name string) (domain.Subscription, error) {
	email = strings.ToLower(email)

	existing, err := s.storage.SubscriptionByEmail(email)
	if err != nil && !errors.IsKind(err, errors.KindNotFound) {
		return domain.Subscription{}, err
	}
	if err == nil {
		if existing.IsActive {
			return domain.Subscription{}, errors.New(errors.KindDuplicateEmail,
				"This email is already subscribed to our newsletter", 400)
		}
		if err := s.storage.SetSubscriptionActive(email, true); err != nil {
			return domain.Subscription{}, err
		}
		existing.IsActive = true
		return existing, nil
	}

	sub := domain.Subscription{
		Id:           uuid.New(),
		Email:        email,
		Name:         name,
		IsActive:     true,
		SubscribedAt: time.Now().UTC(),
	}
	if err := s.storage.SaveSubscription(sub); err != nil {
		return domain.Subscription{}, err
	}
	return sub, nil
}

func (s *Lead) Unsubscribe(email string) error {
	email = strings.ToLower(email)

	if _, err := s.storage.SubscriptionByEmail(email); err != nil {
		if errors.IsKind(err, errors.KindNotFound) {
			return errors.NotFound("Email not found in our newsletter subscriptions")
		}
		return err
	}
	return s.storage.SetSubscriptionActive(email, false)
}

func (s *Lead) Subscriptions(page, limit int) ([]domain.Subscription, int64, error) {
	return s.storage.Subscriptions(page, limit)
}

func (s *Lead) DeleteSubscription(id uuid.UUID) error {
	return s.storage.DeleteSubscription(id)
}

func (s *Lead) ActiveSubscriberCount() (int64, error) {
	return s.storage.CountActiveSubscriptions()
}
