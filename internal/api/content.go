package api

import (
	"time"

	"github.com/ceylontrip/ceylontrip/internal/domain"
)

type DestinationRequest struct {
	Name            string   `json:"name" validate:"required,min=2"`
	Description     string   `json:"description" validate:"required"`
	Location        string   `json:"location" validate:"required"`
	Category        string   `json:"category" validate:"required,oneof=Beach Mountain Cultural Wildlife Adventure Historical Religious City"`
	Images          []string `json:"images"`
	MainImage       string   `json:"mainImage" validate:"required,url"`
	Highlights      []string `json:"highlights"`
	Activities      []string `json:"activities"`
	BestTimeToVisit string   `json:"bestTimeToVisit"`
	HowToReach      string   `json:"howToReach"`
	Featured        bool     `json:"featured"`
}

type DestinationResponse struct {
	Id              string    `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	DescriptionHTML string    `json:"descriptionHtml"`
	Location        string    `json:"location"`
	Category        string    `json:"category"`
	Images          []string  `json:"images"`
	MainImage       string    `json:"mainImage"`
	Highlights      []string  `json:"highlights"`
	Activities      []string  `json:"activities"`
	BestTimeToVisit string    `json:"bestTimeToVisit,omitempty"`
	HowToReach      string    `json:"howToReach,omitempty"`
	Rating          float64   `json:"rating"`
	Featured        bool      `json:"featured"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func FromDestination(d domain.Destination) DestinationResponse {
	return DestinationResponse{
		Id:              d.Id.String(),
		Name:            d.Name,
		Description:     d.Description,
		DescriptionHTML: d.DescriptionHTML,
		Location:        d.Location,
		Category:        d.Category,
		Images:          d.Images,
		MainImage:       d.MainImage,
		Highlights:      d.Highlights,
		Activities:      d.Activities,
		BestTimeToVisit: d.BestTimeToVisit,
		HowToReach:      d.HowToReach,
		Rating:          d.Rating,
		Featured:        d.Featured,
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       d.UpdatedAt,
	}
}

type AttractionRequest struct {
	Name         string   `json:"name" validate:"required,min=2"`
	Description  string   `json:"description" validate:"required"`
	Location     string   `json:"location" validate:"required"`
	Category     string   `json:"category" validate:"required,oneof=Temple Museum Park Beach Mountain Waterfall Fort Palace Garden Other"`
	Images       []string `json:"images"`
	MainImage    string   `json:"mainImage" validate:"required,url"`
	EntryFee     float64  `json:"entryFee" validate:"gte=0"`
	OpeningHours string   `json:"openingHours"`
	Featured     bool     `json:"featured"`
}

type AttractionResponse struct {
	Id              string    `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	DescriptionHTML string    `json:"descriptionHtml"`
	Location        string    `json:"location"`
	Category        string    `json:"category"`
	Images          []string  `json:"images"`
	MainImage       string    `json:"mainImage"`
	EntryFee        float64   `json:"entryFee"`
	OpeningHours    string    `json:"openingHours,omitempty"`
	Rating          float64   `json:"rating"`
	Featured        bool      `json:"featured"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func FromAttraction(a domain.Attraction) AttractionResponse {
	return AttractionResponse{
		Id:              a.Id.String(),
		Name:            a.Name,
		Description:     a.Description,
		DescriptionHTML: a.DescriptionHTML,
		Location:        a.Location,
		Category:        a.Category,
		Images:          a.Images,
		MainImage:       a.MainImage,
		EntryFee:        a.EntryFee,
		OpeningHours:    a.OpeningHours,
		Rating:          a.Rating,
		Featured:        a.Featured,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
}

type HotelRequest struct {
	Name        string   `json:"name" validate:"required,min=2"`
	Description string   `json:"description" validate:"required"`
	Location    string   `json:"location" validate:"required"`
	StarRating  int      `json:"starRating" validate:"required,min=1,max=5"`
	Images      []string `json:"images"`
	MainImage   string   `json:"mainImage" validate:"required,url"`
	PriceRange  float64  `json:"priceRange" validate:"gte=0"`
	Amenities   []string `json:"amenities"`
	Featured    bool     `json:"featured"`
}

type HotelResponse struct {
	Id              string    `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	DescriptionHTML string    `json:"descriptionHtml"`
	Location        string    `json:"location"`
	StarRating      int       `json:"starRating"`
	Images          []string  `json:"images"`
	MainImage       string    `json:"mainImage"`
	PriceRange      float64   `json:"priceRange"`
	Amenities       []string  `json:"amenities"`
	Rating          float64   `json:"rating"`
	Featured        bool      `json:"featured"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func FromHotel(h domain.Hotel) HotelResponse {
	return HotelResponse{
		Id:              h.Id.String(),
		Name:            h.Name,
		Description:     h.Description,
		DescriptionHTML: h.DescriptionHTML,
		Location:        h.Location,
		StarRating:      h.StarRating,
		Images:          h.Images,
		MainImage:       h.MainImage,
		PriceRange:      h.PriceRange,
		Amenities:       h.Amenities,
		Rating:          h.Rating,
		Featured:        h.Featured,
		CreatedAt:       h.CreatedAt,
		UpdatedAt:       h.UpdatedAt,
	}
}

type EventRequest struct {
	Name        string    `json:"name" validate:"required,min=2"`
	Description string    `json:"description" validate:"required"`
	Location    string    `json:"location" validate:"required"`
	Category    string    `json:"category" validate:"required,oneof=Cultural Religious Music Food Sports Art Festival Conference Other"`
	Images      []string  `json:"images"`
	MainImage   string    `json:"mainImage" validate:"omitempty,url"`
	Venue       string    `json:"venue"`
	StartDate   time.Time `json:"startDate" validate:"required"`
	EndDate     time.Time `json:"endDate" validate:"required,gtefield=StartDate"`
	Featured    bool      `json:"featured"`
}

type EventResponse struct {
	Id              string    `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	DescriptionHTML string    `json:"descriptionHtml"`
	Location        string    `json:"location"`
	Category        string    `json:"category"`
	Images          []string  `json:"images"`
	MainImage       string    `json:"mainImage,omitempty"`
	Venue           string    `json:"venue,omitempty"`
	StartDate       time.Time `json:"startDate"`
	EndDate         time.Time `json:"endDate"`
	Featured        bool      `json:"featured"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func FromEvent(e domain.Event) EventResponse {
	return EventResponse{
		Id:              e.Id.String(),
		Name:            e.Name,
		Description:     e.Description,
		DescriptionHTML: e.DescriptionHTML,
		Location:        e.Location,
		Category:        e.Category,
		Images:          e.Images,
		MainImage:       e.MainImage,
		Venue:           e.Venue,
		StartDate:       e.StartDate,
		EndDate:         e.EndDate,
		Featured:        e.Featured,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
}
