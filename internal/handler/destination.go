package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ceylontrip/ceylontrip/internal/api"
	"github.com/ceylontrip/ceylontrip/internal/domain"
	"github.com/ceylontrip/ceylontrip/internal/utils"
)

func (h *Handler) Destinations(w http.ResponseWriter, r *http.Request) {
	if query := r.URL.Query().Get("search"); query != "" {
		h.writeDestinations(w, func() ([]domain.Destination, error) {
			return h.destinations.Search(query)
		})
		return
	}
	if category := r.URL.Query().Get("category"); category != "" {
		h.writeDestinations(w, func() ([]domain.Destination, error) {
			return h.destinations.ByCategory(category)
		})
		return
	}
	h.writeDestinations(w, h.destinations.All)
}

func (h *Handler) Destination(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	d, err := h.destinations.Get(id)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, api.FromDestination(d))
}

func (h *Handler) SearchDestinations(w http.ResponseWriter, r *http.Request) {
	query := chi.URLParam(r, "query")
	h.writeDestinations(w, func() ([]domain.Destination, error) {
		return h.destinations.Search(query)
	})
}

func (h *Handler) DestinationsByCategory(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, "category")
	h.writeDestinations(w, func() ([]domain.Destination, error) {
		return h.destinations.ByCategory(category)
	})
}

func (h *Handler) CreateDestination(w http.ResponseWriter, r *http.Request) {
	var body api.DestinationRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteError(w, err)
		return
	}

	d, err := h.destinations.Create(destinationFromRequest(body))
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, api.FromDestination(d))
}

func (h *Handler) UpdateDestination(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	var body api.DestinationRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteError(w, err)
		return
	}

	d, err := h.destinations.Update(id, destinationFromRequest(body))
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, api.FromDestination(d))
}

func (h *Handler) DeleteDestination(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	if err := h.destinations.Delete(id); err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, messageResponse{Message: "Destination deleted successfully"})
}

func (h *Handler) writeDestinations(w http.ResponseWriter, load func() ([]domain.Destination, error)) {
	items, err := load()
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	result := make([]api.DestinationResponse, 0, len(items))
	for _, d := range items {
		result = append(result, api.FromDestination(d))
	}
	utils.WriteJSON(w, http.StatusOK, result)
}

func destinationFromRequest(body api.DestinationRequest) domain.Destination {
	return domain.Destination{
		Name:            body.Name,
		Description:     body.Description,
		Location:        body.Location,
		Category:        body.Category,
		Images:          body.Images,
		MainImage:       body.MainImage,
		Highlights:      body.Highlights,
		Activities:      body.Activities,
		BestTimeToVisit: body.BestTimeToVisit,
		HowToReach:      body.HowToReach,
		Featured:        body.Featured,
	}
}
