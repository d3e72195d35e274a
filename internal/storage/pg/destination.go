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

const destinationColumns = `id, name, description, description_html, location, category,
        images, main_image, highlights, activities, best_time_to_visit, how_to_reach,
        rating, featured, created_at, updated_at`

// =========================================================================
// Public Methods (satisfy the service.DestinationStorage interface)
// =========================================================================

func (s *Storage) SaveDestination(d domain.Destination) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return s.withTx(ctx, func(tx *sql.Tx) error {
		return s.saveDestination(tx, d)
	})
}

func (s *Storage) UpdateDestination(d domain.Destination) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return s.withTx(ctx, func(tx *sql.Tx) error {
		return s.updateDestination(tx, d)
	})
}

func (s *Storage) DeleteDestination(id uuid.UUID) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return s.withTx(ctx, func(tx *sql.Tx) error {
		return s.deleteContentRow(tx, "destinations", "Destination", id)
	})
}

func (s *Storage) DestinationById(id uuid.UUID) (domain.Destination, error) {
	return s.destinationById(s.db, id)
}

func (s *Storage) Destinations() ([]domain.Destination, error) {
	return s.queryDestinations(s.db, "SELECT "+destinationColumns+" FROM destinations ORDER BY name")
}

func (s *Storage) SearchDestinations(query string) ([]domain.Destination, error) {
	return s.queryDestinations(s.db, `
        SELECT `+destinationColumns+` FROM destinations
        WHERE name ILIKE $1 OR description ILIKE $1 OR location ILIKE $1
        ORDER BY name`, "%"+query+"%")
}

func (s *Storage) DestinationsByCategory(category string) ([]domain.Destination, error) {
	return s.queryDestinations(s.db,
		"SELECT "+destinationColumns+" FROM destinations WHERE category = $1 ORDER BY name", category)
}

// =========================================================================
// Internal Methods (Core Database Logic)
// =========================================================================

func (s *Storage) saveDestination(q Querier, d domain.Destination) error {
	_, err := q.Exec(`
        INSERT INTO destinations(id, name, description, description_html, location, category,
            images, main_image, highlights, activities, best_time_to_visit, how_to_reach,
            rating, featured, created_at, updated_at)
        VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`,
		d.Id, d.Name, d.Description, d.DescriptionHTML, d.Location, d.Category,
		pq.Array(d.Images), d.MainImage, pq.Array(d.Highlights), pq.Array(d.Activities),
		d.BestTimeToVisit, d.HowToReach, d.Rating, d.Featured, d.CreatedAt, d.UpdatedAt,
	)
	if err != nil {
		return storeError("insert destination", err)
	}
	return nil
}

func (s *Storage) updateDestination(q Querier, d domain.Destination) error {
	result, err := q.Exec(`
        UPDATE destinations SET name = $2, description = $3, description_html = $4,
            location = $5, category = $6, images = $7, main_image = $8, highlights = $9,
            activities = $10, best_time_to_visit = $11, how_to_reach = $12,
            featured = $13, updated_at = $14
        WHERE id = $1`,
		d.Id, d.Name, d.Description, d.DescriptionHTML, d.Location, d.Category,
		pq.Array(d.Images), d.MainImage, pq.Array(d.Highlights), pq.Array(d.Activities),
		d.BestTimeToVisit, d.HowToReach, d.Featured, d.UpdatedAt,
	)
	if err != nil {
		return storeError("update destination", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return storeError("update destination rows affected", err)
	}
	if rowsAffected == 0 {
		return internal_errors.NotFound("Destination not found")
	}
	return nil
}

func (s *Storage) destinationById(q Querier, id uuid.UUID) (domain.Destination, error) {
	row := q.QueryRow("SELECT "+destinationColumns+" FROM destinations WHERE id = $1", id)
	d, err := scanDestination(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Destination{}, internal_errors.NotFound("Destination not found")
		}
		return domain.Destination{}, storeError("query destination", err)
	}
	return d, nil
}

func (s *Storage) queryDestinations(q Querier, query string, args ...any) ([]domain.Destination, error) {
	rows, err := q.Query(query, args...)
	if err != nil {
		return nil, storeError("query destinations", err)
	}
	defer rows.Close()

	var result []domain.Destination
	for rows.Next() {
		d, err := scanDestination(rows)
		if err != nil {
			return nil, storeError("scan destination", err)
		}
		result = append(result, d)
	}
	if err := rows.Err(); err != nil {
		return nil, storeError("iterate destinations", err)
	}
	return result, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDestination(row rowScanner) (domain.Destination, error) {
	var d domain.Destination
	err := row.Scan(&d.Id, &d.Name, &d.Description, &d.DescriptionHTML, &d.Location, &d.Category,
		pq.Array(&d.Images), &d.MainImage, pq.Array(&d.Highlights), pq.Array(&d.Activities),
		&d.BestTimeToVisit, &d.HowToReach, &d.Rating, &d.Featured, &d.CreatedAt, &d.UpdatedAt)
	return d, err
}

// deleteContentRow removes one row from a content table. Shared by the
// four collections since deletion is identical for all of them.
func (s *Storage) deleteContentRow(q Querier, table, label string, id uuid.UUID) error {
	result, err := q.Exec("DELETE FROM "+table+" WHERE id = $1", id)
	if err != nil {
		return storeError("delete "+table, err)
	}
	rowsDeleted, err := result.RowsAffected()
	if err != nil {
		return storeError("delete "+table+" rows affected", err)
	}
	if rowsDeleted == 0 {
		return internal_errors.NotFound(label + " not found")
	}
	return nil
}
