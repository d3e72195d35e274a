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

const hotelColumns = `id, name, description, description_html, location, star_rating,
        images, main_image, price_range, amenities, rating, featured, created_at, updated_at`

func (s *Storage) SaveHotel(h domain.Hotel) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return s.withTx(ctx, func(tx *sql.Tx) error {
		return s.saveHotel(tx, h)
	})
}

func (s *Storage) UpdateHotel(h domain.Hotel) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return s.withTx(ctx, func(tx *sql.Tx) error {
		return s.updateHotel(tx, h)
	})
}

func (s *Storage) DeleteHotel(id uuid.UUID) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return s.withTx(ctx, func(tx *sql.Tx) error {
		return s.deleteContentRow(tx, "hotels", "Hotel", id)
	})
}

func (s *Storage) HotelById(id uuid.UUID) (domain.Hotel, error) {
	row := s.db.QueryRow("SELECT "+hotelColumns+" FROM hotels WHERE id = $1", id)
	h, err := scanHotel(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Hotel{}, internal_errors.NotFound("Hotel not found")
		}
		return domain.Hotel{}, storeError("query hotel", err)
	}
	return h, nil
}

func (s *Storage) Hotels() ([]domain.Hotel, error) {
	return s.queryHotels("SELECT " + hotelColumns + " FROM hotels ORDER BY name")
}

func (s *Storage) SearchHotels(query string) ([]domain.Hotel, error) {
	return s.queryHotels(`
        SELECT `+hotelColumns+` FROM hotels
        WHERE name ILIKE $1 OR description ILIKE $1 OR location ILIKE $1
        ORDER BY name`, "%"+query+"%")
}

func (s *Storage) HotelsByLocation(location string) ([]domain.Hotel, error) {
	return s.queryHotels(
		"SELECT "+hotelColumns+" FROM hotels WHERE location ILIKE $1 ORDER BY name",
		"%"+location+"%")
}

func (s *Storage) HotelsByStarRating(stars int) ([]domain.Hotel, error) {
	return s.queryHotels(
		"SELECT "+hotelColumns+" FROM hotels WHERE star_rating = $1 ORDER BY name", stars)
}

func (s *Storage) HotelsByPriceRange(min, max float64) ([]domain.Hotel, error) {
	return s.queryHotels(
		"SELECT "+hotelColumns+" FROM hotels WHERE price_range BETWEEN $1 AND $2 ORDER BY price_range",
		min, max)
}

func (s *Storage) saveHotel(q Querier, h domain.Hotel) error {
	_, err := q.Exec(`
        INSERT INTO hotels(id, name, description, description_html, location, star_rating,
            images, main_image, price_range, amenities, rating, featured, created_at, updated_at)
        VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
		h.Id, h.Name, h.Description, h.DescriptionHTML, h.Location, h.StarRating,
		pq.Array(h.Images), h.MainImage, h.PriceRange, pq.Array(h.Amenities),
		h.Rating, h.Featured, h.CreatedAt, h.UpdatedAt,
	)
	if err != nil {
		return storeError("insert hotel", err)
	}
	return nil
}

func (s *Storage) updateHotel(q Querier, h domain.Hotel) error {
	result, err := q.Exec(`
        UPDATE hotels SET name = $2, description = $3, description_html = $4,
            location = $5, star_rating = $6, images = $7, main_image = $8,
            price_range = $9, amenities = $10, featured = $11, updated_at = $12
        WHERE id = $1`,
		h.Id, h.Name, h.Description, h.DescriptionHTML, h.Location, h.StarRating,
		pq.Array(h.Images), h.MainImage, h.PriceRange, pq.Array(h.Amenities), h.Featured, h.UpdatedAt,
	)
	if err != nil {
		return storeError("update hotel", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return storeError("update hotel rows affected", err)
	}
	if rowsAffected == 0 {
		return internal_errors.NotFound("Hotel not found")
	}
	return nil
}

func (s *Storage) queryHotels(query string, args ...any) ([]domain.Hotel, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, storeError("query hotels", err)
	}
	defer rows.Close()

	var result []domain.Hotel
	for rows.Next() {
		h, err := scanHotel(rows)
		if err != nil {
			return nil, storeError("scan hotel", err)
		}
		result = append(result, h)
	}
	if err := rows.Err(); err != nil {
		return nil, storeError("iterate hotels", err)
	}
	return result, nil
}

func scanHotel(row rowScanner) (domain.Hotel, error) {
	var h domain.Hotel
	err := row.Scan(&h.Id, &h.Name, &h.Description, &h.DescriptionHTML, &h.Location, &h.StarRating,
		pq.Array(&h.Images), &h.MainImage, &h.PriceRange, pq.Array(&h.Amenities),
		&h.Rating, &h.Featured, &h.CreatedAt, &h.UpdatedAt)
	return h, err
}
