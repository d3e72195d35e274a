package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"

	"github.com/ceylontrip/ceylontrip/internal/domain"
	internal_errors "github.com/ceylontrip/ceylontrip/internal/errors"
)

const pgUniqueViolation = "23505"

// =========================================================================
// Public Methods (satisfy the service.AuthStorage interface)
// =========================================================================

// SaveUser inserts a new account. Email uniqueness is enforced by the
// database: a unique-index violation is the race-resolution path for
// concurrent registrations with the same address and surfaces as a
// DuplicateEmail rejection without touching the existing record.
func (s *Storage) SaveUser(user domain.User) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return s.withTx(ctx, func(tx *sql.Tx) error {
		return s.saveUser(tx, user)
	})
}

// UserByEmail fetches an account by its login key, password hash
// included. Login path only.
func (s *Storage) UserByEmail(email string) (domain.User, error) {
	return s.userByEmail(s.db, email)
}

// UserById fetches an account by id with the password hash excluded from
// the projection. This is the token-verification path.
func (s *Storage) UserById(id domain.UserId) (domain.User, error) {
	return s.userById(s.db, id)
}

// UpdateUser applies a partial update and returns the updated record.
func (s *Storage) UpdateUser(id domain.UserId, update domain.UserUpdate) (domain.User, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var user domain.User
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		var err error
		user, err = s.updateUser(tx, id, update)
		return err
	})
	return user, err
}

// DeleteUser removes an account permanently.
func (s *Storage) DeleteUser(id domain.UserId) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return s.withTx(ctx, func(tx *sql.Tx) error {
		return s.deleteUser(tx, id)
	})
}

// Users lists accounts for the admin panel, newest first.
func (s *Storage) Users(filter domain.UserFilter) ([]domain.User, int64, error) {
	return s.users(s.db, filter)
}

// =========================================================================
// Internal Methods (Core Database Logic)
// =========================================================================

func (s *Storage) saveUser(q Querier, user domain.User) error {
	_, err := q.Exec(`
        INSERT INTO users(id, first_name, last_name, email, password_hash, role, phone, country, is_active, created_at)
        VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		user.Id, user.FirstName, user.LastName, user.Email, user.PassHash,
		string(user.Role), user.Phone, user.Country, user.IsActive, user.CreatedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pgUniqueViolation {
			return internal_errors.DuplicateEmail()
		}
		return storeError("insert user", err)
	}
	return nil
}

func (s *Storage) userByEmail(q Querier, email string) (domain.User, error) {
	var user domain.User
	var role string
	err := q.QueryRow(`
        SELECT id, first_name, last_name, email, password_hash, role, phone, country, is_active, created_at
        FROM users WHERE lower(email) = lower($1)`, email,
	).Scan(&user.Id, &user.FirstName, &user.LastName, &user.Email, &user.PassHash,
		&role, &user.Phone, &user.Country, &user.IsActive, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, internal_errors.NotFound("User not found")
		}
		return domain.User{}, storeError("query user by email", err)
	}
	user.Role = domain.Role(role)
	return user, nil
}

func (s *Storage) userById(q Querier, id domain.UserId) (domain.User, error) {
	var user domain.User
	var role string
	// password_hash deliberately absent from the projection
	err := q.QueryRow(`
        SELECT id, first_name, last_name, email, role, phone, country, is_active, created_at
        FROM users WHERE id = $1`, id,
	).Scan(&user.Id, &user.FirstName, &user.LastName, &user.Email,
		&role, &user.Phone, &user.Country, &user.IsActive, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, internal_errors.NotFound("User not found")
		}
		return domain.User{}, storeError("query user by id", err)
	}
	user.Role = domain.Role(role)
	return user, nil
}

func (s *Storage) updateUser(q Querier, id domain.UserId, update domain.UserUpdate) (domain.User, error) {
	assignments := []string{}
	args := []any{}
	i := 1

	appendSet := func(column string, value any) {
		assignments = append(assignments, fmt.Sprintf("%s = $%d", column, i))
		args = append(args, value)
		i++
	}

	if update.FirstName != nil {
		appendSet("first_name", *update.FirstName)
	}
	if update.LastName != nil {
		appendSet("last_name", *update.LastName)
	}
	if update.Role != nil {
		appendSet("role", string(*update.Role))
	}
	if update.IsActive != nil {
		appendSet("is_active", *update.IsActive)
	}
	if update.Phone != nil {
		appendSet("phone", *update.Phone)
	}
	if update.Country != nil {
		appendSet("country", *update.Country)
	}

	if len(assignments) > 0 {
		args = append(args, id)
		query := fmt.Sprintf("UPDATE users SET %s WHERE id = $%d", strings.Join(assignments, ", "), i)
		result, err := q.Exec(query, args...)
		if err != nil {
			return domain.User{}, storeError("update user", err)
		}
		rowsAffected, err := result.RowsAffected()
		if err != nil {
			return domain.User{}, storeError("update user rows affected", err)
		}
		if rowsAffected == 0 {
			return domain.User{}, internal_errors.NotFound("User not found")
		}
	}

	return s.userById(q, id)
}

func (s *Storage) deleteUser(q Querier, id domain.UserId) error {
	result, err := q.Exec("DELETE FROM users WHERE id = $1", id)
	if err != nil {
		return storeError("delete user", err)
	}
	rowsDeleted, err := result.RowsAffected()
	if err != nil {
		return storeError("delete user rows affected", err)
	}
	if rowsDeleted == 0 {
		return internal_errors.NotFound("User not found")
	}
	return nil
}

func (s *Storage) users(q Querier, filter domain.UserFilter) ([]domain.User, int64, error) {
	where := "TRUE"
	args := []any{}
	i := 1

	if filter.Search != "" {
		where += fmt.Sprintf(" AND (first_name ILIKE $%d OR last_name ILIKE $%d OR email ILIKE $%d)", i, i, i)
		args = append(args, "%"+filter.Search+"%")
		i++
	}
	if filter.Role != "" {
		where += fmt.Sprintf(" AND role = $%d", i)
		args = append(args, string(filter.Role))
		i++
	}

	var total int64
	if err := q.QueryRow("SELECT COUNT(*) FROM users WHERE "+where, args...).Scan(&total); err != nil {
		return nil, 0, storeError("count users", err)
	}

	offset := (filter.Page - 1) * filter.Limit
	query := fmt.Sprintf(`
        SELECT id, first_name, last_name, email, role, phone, country, is_active, created_at
        FROM users WHERE %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`, where, i, i+1)
	args = append(args, filter.Limit, offset)

	rows, err := q.Query(query, args...)
	if err != nil {
		return nil, 0, storeError("query users", err)
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var user domain.User
		var role string
		if err := rows.Scan(&user.Id, &user.FirstName, &user.LastName, &user.Email,
			&role, &user.Phone, &user.Country, &user.IsActive, &user.CreatedAt); err != nil {
			return nil, 0, storeError("scan user", err)
		}
		user.Role = domain.Role(role)
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, storeError("iterate users", err)
	}
	return users, total, nil
}
