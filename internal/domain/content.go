package domain

import (
	"time"

	"github.com/google/uuid"
)

// Content collections mirror the public site catalog. Description holds
// the markdown source; DescriptionHTML the rendered, sanitized output.

type Destination struct {
	Id              uuid.UUID
	Name            string
	Description     string
	DescriptionHTML string
	Location        string
	Category        string
	Images          []string
	MainImage       string
	Highlights      []string
	Activities      []string
	BestTimeToVisit string
	HowToReach      string
	Rating          float64
	Featured        bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type Attraction struct {
	Id              uuid.UUID
	Name            string
	Description     string
	DescriptionHTML string
	Location        string
	Category        string
	Images          []string
	MainImage       string
	EntryFee        float64
	OpeningHours    string
	Rating          float64
	Featured        bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type Hotel struct {
	Id              uuid.UUID
	Name            string
	Description     string
	DescriptionHTML string
	Location        string
	StarRating      int
	Images          []string
	MainImage       string
	PriceRange      float64
	Amenities       []string
	Rating          float64
	Featured        bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type Event struct {
	Id              uuid.UUID
	Name            string
	Description     string
	DescriptionHTML string
	Location        string
	Category        string
	Images          []string
	MainImage       string
	Venue           string
	StartDate       time.Time
	EndDate         time.Time
	Featured        bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
