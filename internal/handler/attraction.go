package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ceylontrip/ceylontrip/internal/api"
	"github.com/ceylontrip/ceylontrip/internal/domain"
	"github.com/ceylontrip/ceylontrip/internal/utils"
)

func (h *Handler) Attractions(w http.ResponseWriter, r *http.Request) {
	if query := r.URL.Query().Get("search"); query != "" {
		h.writeAttractions(w, func() ([]domain.Attraction, error) {
			return h.attractions.Search(query)
		})
		return
	}
	if category := r.URL.Query().Get("category"); category != "" {
		h.writeAttractions(w, func() ([]domain.Attraction, error) {
			return h.attractions.ByCategory(category)
		})
		return
	}
	h.writeAttractions(w, h.attractions.All)
}

func (h *Handler) Attraction(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	a, err := h.attractions.Get(id)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, api.FromAttraction(a))
}

func (h *Handler) SearchAttractions(w http.ResponseWriter, r *http.Request) {
	query := chi.URLParam(r, "query")
	h.writeAttractions(w, func() ([]domain.Attraction, error) {
		return h.attractions.Search(query)
	})
}

func (h *Handler) AttractionsByCategory(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, "category")
	h.writeAttractions(w, func() ([]domain.Attraction, error) {
		return h.attractions.ByCategory(category)
	})
}

func (h *Handler) CreateAttraction(w http.ResponseWriter, r *http.Request) {
	var body api.AttractionRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteError(w, err)
		return
	}

	a, err := h.attractions.Create(attractionFromRequest(body))
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, api.FromAttraction(a))
}

func (h *Handler) UpdateAttraction(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	var body api.AttractionRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteError(w, err)
		return
	}

	a, err := h.attractions.Update(id, attractionFromRequest(body))
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, api.FromAttraction(a))
}

func (h *Handler) DeleteAttraction(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	if err := h.attractions.Delete(id); err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, messageResponse{Message: "Attraction deleted successfully"})
}

func (h *Handler) writeAttractions(w http.ResponseWriter, load func() ([]domain.Attraction, error)) {
	items, err := load()
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	result := make([]api.AttractionResponse, 0, len(items))
	for _, a := range items {
		result = append(result, api.FromAttraction(a))
	}
	utils.WriteJSON(w, http.StatusOK, result)
}

func attractionFromRequest(body api.AttractionRequest) domain.Attraction {
	return domain.Attraction{
		Name:         body.Name,
		Description:  body.Description,
		Location:     body.Location,
		Category:     body.Category,
		Images:       body.Images,
		MainImage:    body.MainImage,
		EntryFee:     body.EntryFee,
		OpeningHours: body.OpeningHours,
		Featured:     body.Featured,
	}
}
