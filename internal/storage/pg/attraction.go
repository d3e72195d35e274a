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

const attractionColumns = `id, name, description, description_html, location, category,
        images, main_image, entry_fee, opening_hours, rating, featured, created_at, updated_at`

func (s *Storage) SaveAttraction(a domain.Attraction) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return s.withTx(ctx, func(tx *sql.Tx) error {
		return s.saveAttraction(tx, a)
	})
}

func (s *Storage) UpdateAttraction(a domain.Attraction) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return s.withTx(ctx, func(tx *sql.Tx) error {
		return s.updateAttraction(tx, a)
	})
}

func (s *Storage) DeleteAttraction(id uuid.UUID) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return s.withTx(ctx, func(tx *sql.Tx) error {
		return s.deleteContentRow(tx, "attractions", "Attraction", id)
	})
}

func (s *Storage) AttractionById(id uuid.UUID) (domain.Attraction, error) {
	row := s.db.QueryRow("SELECT "+attractionColumns+" FROM attractions WHERE id = $1", id)
	a, err := scanAttraction(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Attraction{}, internal_errors.NotFound("Attraction not found")
		}
		return domain.Attraction{}, storeError("query attraction", err)
	}
	return a, nil
}

func (s *Storage) Attractions() ([]domain.Attraction, error) {
	return s.queryAttractions("SELECT " + attractionColumns + " FROM attractions ORDER BY name")
}

func (s *Storage) SearchAttractions(query string) ([]domain.Attraction, error) {
	return s.queryAttractions(`
        SELECT `+attractionColumns+` FROM attractions
        WHERE name ILIKE $1 OR description ILIKE $1 OR location ILIKE $1
        ORDER BY name`, "%"+query+"%")
}

func (s *Storage) AttractionsByCategory(category string) ([]domain.Attraction, error) {
	return s.queryAttractions(
		"SELECT "+attractionColumns+" FROM attractions WHERE category = $1 ORDER BY name", category)
}

func (s *Storage) saveAttraction(q Querier, a domain.Attraction) error {
	_, err := q.Exec(`
        INSERT INTO attractions(id, name, description, description_html, location, category,
            images, main_image, entry_fee, opening_hours, rating, featured, created_at, updated_at)
        VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
		a.Id, a.Name, a.Description, a.DescriptionHTML, a.Location, a.Category,
		pq.Array(a.Images), a.MainImage, a.EntryFee, a.OpeningHours,
		a.Rating, a.Featured, a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		return storeError("insert attraction", err)
	}
	return nil
}

func (s *Storage) updateAttraction(q Querier, a domain.Attraction) error {
	result, err := q.Exec(`
        UPDATE attractions SET name = $2, description = $3, description_html = $4,
            location = $5, category = $6, images = $7, main_image = $8,
            entry_fee = $9, opening_hours = $10, featured = $11, updated_at = $12
        WHERE id = $1`,
		a.Id, a.Name, a.Description, a.DescriptionHTML, a.Location, a.Category,
		pq.Array(a.Images), a.MainImage, a.EntryFee, a.OpeningHours, a.Featured, a.UpdatedAt,
	)
	if err != nil {
		return storeError("update attraction", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return storeError("update attraction rows affected", err)
	}
	if rowsAffected == 0 {
		return internal_errors.NotFound("Attraction not found")
	}
	return nil
}

func (s *Storage) queryAttractions(query string, args ...any) ([]domain.Attraction, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, storeError("query attractions", err)
	}
	defer rows.Close()

	var result []domain.Attraction
	for rows.Next() {
		a, err := scanAttraction(rows)
		if err != nil {
			return nil, storeError("scan attraction", err)
		}
		result = append(result, a)
	}
	if err := rows.Err(); err != nil {
		return nil, storeError("iterate attractions", err)
	}
	return result, nil
}

func scanAttraction(row rowScanner) (domain.Attraction, error) {
	var a domain.Attraction
	err := row.Scan(&a.Id, &a.Name, &a.Description, &a.DescriptionHTML, &a.Location, &a.Category,
		pq.Array(&a.Images), &a.MainImage, &a.EntryFee, &a.OpeningHours,
		&a.Rating, &a.Featured, &a.CreatedAt, &a.UpdatedAt)
	return a, err
}
