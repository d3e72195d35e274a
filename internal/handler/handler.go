package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ceylontrip/ceylontrip/internal/api"
	"github.com/ceylontrip/ceylontrip/internal/config"
	"github.com/ceylontrip/ceylontrip/internal/errors"
	"github.com/ceylontrip/ceylontrip/internal/service"
)

type Handler struct {
	auth         service.AuthService
	destinations service.DestinationService
	attractions  service.AttractionService
	hotels       service.HotelService
	events       service.EventService
	leads        service.LeadService
	dashboard    service.DashboardService
	health       Pinger
	cfg          *config.Config
}

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping() error
}

func New(
	auth service.AuthService,
	destinations service.DestinationService,
	attractions service.AttractionService,
	hotels service.HotelService,
	events service.EventService,
	leads service.LeadService,
	dashboard service.DashboardService,
	health Pinger,
	cfg *config.Config,
) *Handler {
	return &Handler{
		auth:         auth,
		destinations: destinations,
		attractions:  attractions,
		hotels:       hotels,
		events:       events,
		leads:        leads,
		dashboard:    dashboard,
		health:       health,
		cfg:          cfg,
	}
}

// idParam parses the {id} URL parameter.
func idParam(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return uuid.Nil, errors.BadRequest("Invalid id")
	}
	return id, nil
}

// pageParams extracts page/limit query parameters with defaults.
func (h *Handler) pageParams(r *http.Request) (page, limit int) {
	page = intQuery(r, "page", 1)
	limit = intQuery(r, "limit", h.cfg.Public.DefaultPageSize)
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = h.cfg.Public.DefaultPageSize
	}
	return page, limit
}

// intQuery accepts at most 9 digits so the parsed value stays well inside
// int range and OFFSET arithmetic cannot overflow.
func intQuery(r *http.Request, name string, fallback int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" || len(raw) > 9 {
		return fallback
	}
	val := 0
	for _, c := range raw {
		if c < '0' || c > '9' {
			return fallback
		}
		val = val*10 + int(c-'0')
	}
	return val
}

func buildPagination(page, limit int, total int64) api.Pagination {
	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return api.Pagination{
		CurrentPage: page,
		TotalPages:  totalPages,
		Total:       total,
		HasNextPage: int64(page*limit) < total,
		HasPrevPage: page > 1,
	}
}

type messageResponse struct {
	Message string `json:"message"`
}
