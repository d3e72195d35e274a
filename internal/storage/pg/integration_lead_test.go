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

func TestContactLifecycle(t *testing.T) {
	c := domain.Contact{
		Id:          uuid.New(),
		Name:        "Kamala",
		Email:       "kamala@example.com",
		Subject:     "Trip planning help",
		Message:     "Looking for a 10 day itinerary",
		Status:      domain.ContactNew,
		SubmittedAt: time.Now().UTC().Truncate(time.Microsecond),
	}
	require.NoError(t, storage.SaveContact(c))
	t.Cleanup(func() { _ = storage.DeleteContact(c.Id) })

	t.Run("listing finds it by subject search", func(t *testing.T) {
		contacts, total, err := storage.Contacts("Trip planning", 1, 10)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, total, int64(1))

		var found bool
		for _, got := range contacts {
			if got.Id == c.Id {
				found = true
				assert.Equal(t, domain.ContactNew, got.Status)
			}
		}
		assert.True(t, found)
	})

	t.Run("lookup by id", func(t *testing.T) {
		got, err := storage.ContactById(c.Id)
		require.NoError(t, err)
		assert.Equal(t, c.Email, got.Email)
		assert.Equal(t, c.Subject, got.Subject)

		_, err = storage.ContactById(uuid.New())
		require.Error(t, err)
		assert.True(t, internal_errors.IsKind(err, internal_errors.KindNotFound))
	})

	t.Run("status transition", func(t *testing.T) {
		require.NoError(t, storage.SetContactStatus(c.Id, domain.ContactResponded))

		contacts, _, err := storage.Contacts(c.Subject, 1, 10)
		require.NoError(t, err)
		for _, got := range contacts {
			if got.Id == c.Id {
				assert.Equal(t, domain.ContactResponded, got.Status)
			}
		}
	})

	t.Run("unknown id", func(t *testing.T) {
		err := storage.SetContactStatus(uuid.New(), domain.ContactRead)
		require.Error(t, err)
		assert.True(t, internal_errors.IsKind(err, internal_errors.KindNotFound))
	})
}

func TestSubscriptionLifecycle(t *testing.T) {
	email := fmt.Sprintf("sub-%s@example.com", uuid.NewString()[:8])
	sub := domain.Subscription{
		Id:           uuid.New(),
		Email:        email,
		Name:         "Traveler",
		IsActive:     true,
		SubscribedAt: time.Now().UTC().Truncate(time.Microsecond),
	}
	require.NoError(t, storage.SaveSubscription(sub))

	t.Run("lookup is case-insensitive", func(t *testing.T) {
		got, err := storage.SubscriptionByEmail("SUB-" + email[4:])
		require.NoError(t, err)
		assert.Equal(t, sub.Id, got.Id)
		assert.True(t, got.IsActive)
	})

	t.Run("deactivate and reactivate", func(t *testing.T) {
		require.NoError(t, storage.SetSubscriptionActive(email, false))

		got, err := storage.SubscriptionByEmail(email)
		require.NoError(t, err)
		assert.False(t, got.IsActive)

		require.NoError(t, storage.SetSubscriptionActive(email, true))
	})

	t.Run("active subscriptions count", func(t *testing.T) {
		count, err := storage.CountActiveSubscriptions()
		require.NoError(t, err)
		assert.GreaterOrEqual(t, count, int64(1))
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := storage.SubscriptionByEmail("nobody@example.com")
		require.Error(t, err)
		assert.True(t, internal_errors.IsKind(err, internal_errors.KindNotFound))
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, storage.DeleteSubscription(sub.Id))

		_, err := storage.SubscriptionByEmail(email)
		require.Error(t, err)
		assert.True(t, internal_errors.IsKind(err, internal_errors.KindNotFound))

		err = storage.DeleteSubscription(sub.Id)
		require.Error(t, err)
		assert.True(t, internal_errors.IsKind(err, internal_errors.KindNotFound))
	})
}
