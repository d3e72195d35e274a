package pg

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/ceylontrip/ceylontrip/internal/domain"
	internal_errors "github.com/ceylontrip/ceylontrip/internal/errors"
)

const eventColumns = `id, name, description, description_html, location, category,
        images, main_image, venue, start_date, end_date, featured, created_at, updated_at`

func (s *Storage) SaveEvent(e domain.Event) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return s.withTx(ctx, func(tx *sql.Tx) error {
		return s.saveEvent(tx, e)
	})
}

func (s *Storage) UpdateEvent(e domain.Event) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return s.withTx(ctx, func(tx *sql.Tx) error {
		return s.updateEvent(tx, e)
	})
}

func (s *Storage) DeleteEvent(id uuid.UUID) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return s.withTx(ctx, func(tx *sql.Tx) error {
		return s.deleteContentRow(tx, "events", "Event", id)
	})
}

func (s *Storage) EventById(id uuid.UUID) (domain.Event, error) {
	row := s.db.QueryRow("SELECT "+eventColumns+" FROM events WHERE id = $1", id)
	e, err := scanEvent(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Event{}, internal_errors.NotFound("Event not found")
		}
		return domain.Event{}, storeError("query event", err)
	}
	return e, nil
}

func (s *Storage) Events() ([]domain.Event, error) {
	return s.queryEvents("SELECT " + eventColumns + " FROM events ORDER BY start_date")
}

func (s *Storage) UpcomingEvents(after time.Time) ([]domain.Event, error) {
	return s.queryEvents(
		"SELECT "+eventColumns+" FROM events WHERE end_date >= $1 ORDER BY start_date", after)
}

func (s *Storage) SearchEvents(query string) ([]domain.Event, error) {
	return s.queryEvents(`
        SELECT `+eventColumns+` FROM events
        WHERE name ILIKE $1 OR description ILIKE $1 OR location ILIKE $1 OR venue ILIKE $1
        ORDER BY start_date`, "%"+query+"%")
}

func (s *Storage) EventsByCategory(category string) ([]domain.Event, error) {
	return s.queryEvents(
		"SELECT "+eventColumns+" FROM events WHERE category = $1 ORDER BY start_date", category)
}

func (s *Storage) saveEvent(q Querier, e domain.Event) error {
	_, err := q.Exec(`
        INSERT INTO events(id, name, description, description_html, location, category,
            images, main_image, venue, start_date, end_date, featured, created_at, updated_at)
        VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
		e.Id, e.Name, e.Description, e.DescriptionHTML, e.Location, e.Category,
		pq.Array(e.Images), e.MainImage, e.Venue, e.StartDate, e.EndDate,
		e.Featured, e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		return storeError("insert event", err)
	}
	return nil
}

func (s *Storage) updateEvent(q Querier, e domain.Event) error {
	result, err := q.Exec(`
        UPDATE events SET name = $2, description = $3, description_html = $4,
            location = $5, category = $6, images = $7, main_image = $8,
            venue = $9, start_date = $10, end_date = $11, featured = $12, updated_at = $13
        WHERE id = $1`,
		e.Id, e.Name, e.Description, e.DescriptionHTML, e.Location, e.Category,
		pq.Array(e.Images), e.MainImage, e.Venue, e.StartDate, e.EndDate, e.Featured, e.UpdatedAt,
	)
	if err != nil {
		return storeError("update event", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return storeError("update event rows affected", err)
	}
	if rowsAffected == 0 {
		return internal_errors.NotFound("Event not found")
	}
	return nil
}

func (s *Storage) queryEvents(query string, args ...any) ([]domain.Event, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, storeError("query events", err)
	}
	defer rows.Close()

	var result []domain.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, storeError("scan event", err)
		}
		result = append(result, e)
	}
	if err := rows.Err(); err != nil {
		return nil, storeError("iterate events", err)
	}
	return result, nil
}

func scanEvent(row rowScanner) (domain.Event, error) {
	var e domain.Event
	err := row.Scan(&e.Id, &e.Name, &e.Description, &e.DescriptionHTML, &e.Location, &e.Category,
		pq.Array(&e.Images), &e.MainImage, &e.Venue, &e.StartDate, &e.EndDate,
		&e.Featured, &e.CreatedAt, &e.UpdatedAt)
	return e, err
}
