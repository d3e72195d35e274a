package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ceylontrip/ceylontrip/internal/api"
	"github.com/ceylontrip/ceylontrip/internal/domain"
	"github.com/ceylontrip/ceylontrip/internal/utils"
)

func (h *Handler) Events(w http.ResponseWriter, r *http.Request) {
	if query := r.URL.Query().Get("search"); query != "" {
		h.writeEvents(w, func() ([]domain.Event, error) {
			return h.events.Search(query)
		})
		return
	}
	if category := r.URL.Query().Get("category"); category != "" {
		h.writeEvents(w, func() ([]domain.Event, error) {
			return h.events.ByCategory(category)
		})
		return
	}
	h.writeEvents(w, h.events.All)
}

func (h *Handler) SearchEvents(w http.ResponseWriter, r *http.Request) {
	query := chi.URLParam(r, "query")
	h.writeEvents(w, func() ([]domain.Event, error) {
		return h.events.Search(query)
	})
}

func (h *Handler) UpcomingEvents(w http.ResponseWriter, r *http.Request) {
	h.writeEvents(w, h.events.Upcoming)
}

func (h *Handler) Event(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	e, err := h.events.Get(id)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, api.FromEvent(e))
}

func (h *Handler) EventsByCategory(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, "category")
	h.writeEvents(w, func() ([]domain.Event, error) {
		return h.events.ByCategory(category)
	})
}

func (h *Handler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var body api.EventRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteError(w, err)
		return
	}

	e, err := h.events.Create(eventFromRequest(body))
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, api.FromEvent(e))
}

func (h *Handler) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	var body api.EventRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteError(w, err)
		return
	}

	e, err := h.events.Update(id, eventFromRequest(body))
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, api.FromEvent(e))
}

func (h *Handler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	if err := h.events.Delete(id); err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, messageResponse{Message: "Event deleted successfully"})
}

func (h *Handler) writeEvents(w http.ResponseWriter, load func() ([]domain.Event, error)) {
	items, err := load()
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	result := make([]api.EventResponse, 0, len(items))
	for _, e := range items {
		result = append(result, api.FromEvent(e))
	}
	utils.WriteJSON(w, http.StatusOK, result)
}

func eventFromRequest(body api.EventRequest) domain.Event {
	return domain.Event{
		Name:        body.Name,
		Description: body.Description,
		Location:    body.Location,
		Category:    body.Category,
		Images:      body.Images,
		MainImage:   body.MainImage,
		Venue:       body.Venue,
		StartDate:   body.StartDate,
		EndDate:     body.EndDate,
		Featured:    body.Featured,
	}
}
