package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ceylontrip/ceylontrip/internal/domain"
	internal_errors "github.com/ceylontrip/ceylontrip/internal/errors"
)

// =========================================================================
// Contacts
// =========================================================================

func (s *Storage) SaveContact(c domain.Contact) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return s.withTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.Exec(`
            INSERT INTO contacts(id, name, email, subject, message, phone, status, submitted_at)
            VALUES($1, $2, $3, $4, $5, $6, $7, $8)`,
			c.Id, c.Name, c.Email, c.Subject, c.Message, c.Phone, string(c.Status), c.SubmittedAt)
		if err != nil {
			return storeError("insert contact", err)
		}
		return nil
	})
}

func (s *Storage) Contacts(search string, page, limit int) ([]domain.Contact, int64, error) {
	where := "TRUE"
	args := []any{}
	i := 1

	if search != "" {
		where += fmt.Sprintf(" AND (name ILIKE $%d OR email ILIKE $%d OR subject ILIKE $%d OR message ILIKE $%d)", i, i, i, i)
		args = append(args, "%"+search+"%")
		i++
	}

	var total int64
	if err := s.db.QueryRow("SELECT COUNT(*) FROM contacts WHERE "+where, args...).Scan(&total); err != nil {
		return nil, 0, storeError("count contacts", err)
	}

	query := fmt.Sprintf(`
        SELECT id, name, email, subject, message, phone, status, submitted_at
        FROM contacts WHERE %s ORDER BY submitted_at DESC LIMIT $%d OFFSET $%d`, where, i, i+1)
	args = append(args, limit, (page-1)*limit)

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, 0, storeError("query contacts", err)
	}
	defer rows.Close()

	var contacts []domain.Contact
	for rows.Next() {
		c, err := scanContact(rows)
		if err != nil {
			return nil, 0, storeError("scan contact", err)
		}
		contacts = append(contacts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, storeError("iterate contacts", err)
	}
	return contacts, total, nil
}

func (s *Storage) ContactById(id uuid.UUID) (domain.Contact, error) {
	row := s.db.QueryRow(`
        SELECT id, name, email, subject, message, phone, status, submitted_at
        FROM contacts WHERE id = $1`, id)
	c, err := scanContact(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Contact{}, internal_errors.NotFound("Contact submission not found")
		}
		return domain.Contact{}, storeError("query contact", err)
	}
	return c, nil
}

func (s *Storage) SetContactStatus(id uuid.UUID, status domain.ContactStatus) error {
	result, err := s.db.Exec("UPDATE contacts SET status = $2 WHERE id = $1", id, string(status))
	if err != nil {
		return storeError("update contact status", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return storeError("update contact status rows affected", err)
	}
	if rowsAffected == 0 {
		return internal_errors.NotFound("Contact submission not found")
	}
	return nil
}

func (s *Storage) DeleteContact(id uuid.UUID) error {
	result, err := s.db.Exec("DELETE FROM contacts WHERE id = $1", id)
	if err != nil {
		return storeError("delete contact", err)
	}
	rowsDeleted, err := result.RowsAffected()
	if err != nil {
		return storeError("delete contact rows affected", err)
	}
	if rowsDeleted == 0 {
		return internal_errors.NotFound("Contact submission not found")
	}
	return nil
}

func scanContact(row rowScanner) (domain.Contact, error) {
	var c domain.Contact
	var status string
	err := row.Scan(&c.Id, &c.Name, &c.Email, &c.Subject, &c.Message, &c.Phone, &status, &c.SubmittedAt)
	c.Status = domain.ContactStatus(status)
	return c, err
}

// =========================================================================
// Newsletter subscriptions
// =========================================================================

func (s *Storage) SaveSubscription(sub domain.Subscription) error {
	_, err := s.db.Exec(`
        INSERT INTO newsletter_subscriptions(id, email, name, is_active, subscribed_at)
        VALUES($1, $2, $3, $4, $5)`,
		sub.Id, sub.Email, sub.Name, sub.IsActive, sub.SubscribedAt)
	if err != nil {
		return storeError("insert subscription", err)
	}
	return nil
}

func (s *Storage) SubscriptionByEmail(email string) (domain.Subscription, error) {
	var sub domain.Subscription
	err := s.db.QueryRow(`
        SELECT id, email, name, is_active, subscribed_at
        FROM newsletter_subscriptions WHERE lower(email) = lower($1)`, email,
	).Scan(&sub.Id, &sub.Email, &sub.Name, &sub.IsActive, &sub.SubscribedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Subscription{}, internal_errors.NotFound("Subscription not found")
		}
		return domain.Subscription{}, storeError("query subscription", err)
	}
	return sub, nil
}

func (s *Storage) SetSubscriptionActive(email string, active bool) error {
	result, err := s.db.Exec(
		"UPDATE newsletter_subscriptions SET is_active = $2 WHERE lower(email) = lower($1)", email, active)
	if err != nil {
		return storeError("update subscription", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return storeError("update subscription rows affected", err)
	}
	if rowsAffected == 0 {
		return internal_errors.NotFound("Subscription not found")
	}
	return nil
}

func (s *Storage) DeleteSubscription(id uuid.UUID) error {
	result, err := s.db.Exec("DELETE FROM newsletter_subscriptions WHERE id = $1", id)
	if err != nil {
		return storeError("delete subscription", err)
	}
	rowsDeleted, err := result.RowsAffected()
	if err != nil {
		return storeError("delete subscription rows affected", err)
	}
	if rowsDeleted == 0 {
		return internal_errors.NotFound("Subscription not found")
	}
	return nil
}

func (s *Storage) Subscriptions(page, limit int) ([]domain.Subscription, int64, error) {
	var total int64
	if err := s.db.QueryRow("SELECT COUNT(*) FROM newsletter_subscriptions").Scan(&total); err != nil {
		return nil, 0, storeError("count subscriptions", err)
	}

	rows, err := s.db.Query(`
        SELECT id, email, name, is_active, subscribed_at
        FROM newsletter_subscriptions ORDER BY subscribed_at DESC LIMIT $1 OFFSET $2`,
		limit, (page-1)*limit)
	if err != nil {
		return nil, 0, storeError("query subscriptions", err)
	}
	defer rows.Close()

	var subs []domain.Subscription
	for rows.Next() {
		var sub domain.Subscription
		if err := rows.Scan(&sub.Id, &sub.Email, &sub.Name, &sub.IsActive, &sub.SubscribedAt); err != nil {
			return nil, 0, storeError("scan subscription", err)
		}
		subs = append(subs, sub)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, storeError("iterate subscriptions", err)
	}
	return subs, total, nil
}
