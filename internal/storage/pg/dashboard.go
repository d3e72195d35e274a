package pg

import (
	"time"

	"github.com/ceylontrip/ceylontrip/internal/domain"
)

// =========================================================================
// Aggregate queries for the admin dashboard (read-only)
// =========================================================================

func (s *Storage) CountUsers() (int64, error) {
	return s.countRows("users")
}

func (s *Storage) CountDestinations() (int64, error) {
	return s.countRows("destinations")
}

func (s *Storage) CountAttractions() (int64, error) {
	return s.countRows("attractions")
}

func (s *Storage) CountHotels() (int64, error) {
	return s.countRows("hotels")
}

func (s *Storage) CountEvents() (int64, error) {
	return s.countRows("events")
}

func (s *Storage) CountContacts() (int64, error) {
	return s.countRows("contacts")
}

func (s *Storage) CountActiveSubscriptions() (int64, error) {
	var count int64
	err := s.db.QueryRow("SELECT COUNT(*) FROM newsletter_subscriptions WHERE is_active").Scan(&count)
	if err != nil {
		return 0, storeError("count active subscriptions", err)
	}
	return count, nil
}

func (s *Storage) countRows(table string) (int64, error) {
	var count int64
	if err := s.db.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&count); err != nil {
		return 0, storeError("count "+table, err)
	}
	return count, nil
}

func (s *Storage) RecentUsers(n int) ([]domain.User, error) {
	rows, err := s.db.Query(`
        SELECT id, first_name, last_name, email, role, phone, country, is_active, created_at
        FROM users ORDER BY created_at DESC LIMIT $1`, n)
	if err != nil {
		return nil, storeError("query recent users", err)
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var user domain.User
		var role string
		if err := rows.Scan(&user.Id, &user.FirstName, &user.LastName, &user.Email,
			&role, &user.Phone, &user.Country, &user.IsActive, &user.CreatedAt); err != nil {
			return nil, storeError("scan recent user", err)
		}
		user.Role = domain.Role(role)
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, storeError("iterate recent users", err)
	}
	return users, nil
}

func (s *Storage) RecentContacts(n int) ([]domain.Contact, error) {
	rows, err := s.db.Query(`
        SELECT id, name, email, subject, message, phone, status, submitted_at
        FROM contacts ORDER BY submitted_at DESC LIMIT $1`, n)
	if err != nil {
		return nil, storeError("query recent contacts", err)
	}
	defer rows.Close()

	var contacts []domain.Contact
	for rows.Next() {
		c, err := scanContact(rows)
		if err != nil {
			return nil, storeError("scan recent contact", err)
		}
		contacts = append(contacts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, storeError("iterate recent contacts", err)
	}
	return contacts, nil
}

func (s *Storage) MonthlySignups(since time.Time) ([]domain.MonthlySignupCount, error) {
	rows, err := s.db.Query(`
        SELECT EXTRACT(YEAR FROM created_at)::int, EXTRACT(MONTH FROM created_at)::int, COUNT(*)
        FROM users WHERE created_at >= $1
        GROUP BY 1, 2 ORDER BY 1, 2`, since)
	if err != nil {
		return nil, storeError("query monthly signups", err)
	}
	defer rows.Close()

	var buckets []domain.MonthlySignupCount
	for rows.Next() {
		var b domain.MonthlySignupCount
		var month int
		if err := rows.Scan(&b.Year, &month, &b.Count); err != nil {
			return nil, storeError("scan monthly signups", err)
		}
		b.Month = time.Month(month)
		buckets = append(buckets, b)
	}
	if err := rows.Err(); err != nil {
		return nil, storeError("iterate monthly signups", err)
	}
	return buckets, nil
}
