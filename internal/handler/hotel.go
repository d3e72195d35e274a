package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ceylontrip/ceylontrip/internal/api"
	"github.com/ceylontrip/ceylontrip/internal/domain"
	"github.com/ceylontrip/ceylontrip/internal/errors"
	"github.com/ceylontrip/ceylontrip/internal/utils"
)

func (h *Handler) Hotels(w http.ResponseWriter, r *http.Request) {
	if query := r.URL.Query().Get("search"); query != "" {
		h.writeHotels(w, func() ([]domain.Hotel, error) {
			return h.hotels.Search(query)
		})
		return
	}
	h.writeHotels(w, h.hotels.All)
}

func (h *Handler) SearchHotels(w http.ResponseWriter, r *http.Request) {
	query := chi.URLParam(r, "query")
	h.writeHotels(w, func() ([]domain.Hotel, error) {
		return h.hotels.Search(query)
	})
}

func (h *Handler) HotelsByLocation(w http.ResponseWriter, r *http.Request) {
	location := chi.URLParam(r, "location")
	h.writeHotels(w, func() ([]domain.Hotel, error) {
		return h.hotels.ByLocation(location)
	})
}

func (h *Handler) HotelsByRating(w http.ResponseWriter, r *http.Request) {
	stars, err := strconv.Atoi(chi.URLParam(r, "rating"))
	if err != nil {
		utils.WriteError(w, errors.BadRequest("Invalid star rating"))
		return
	}
	h.writeHotels(w, func() ([]domain.Hotel, error) {
		return h.hotels.ByStarRating(stars)
	})
}

func (h *Handler) HotelsByPriceRange(w http.ResponseWriter, r *http.Request) {
	min, errMin := strconv.ParseFloat(chi.URLParam(r, "min"), 64)
	max, errMax := strconv.ParseFloat(chi.URLParam(r, "max"), 64)
	if errMin != nil || errMax != nil {
		utils.WriteError(w, errors.BadRequest("Invalid price range"))
		return
	}
	h.writeHotels(w, func() ([]domain.Hotel, error) {
		return h.hotels.ByPriceRange(min, max)
	})
}

func (h *Handler) Hotel(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	hotel, err := h.hotels.Get(id)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, api.FromHotel(hotel))
}

func (h *Handler) CreateHotel(w http.ResponseWriter, r *http.Request) {
	var body api.HotelRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteError(w, err)
		return
	}

	hotel, err := h.hotels.Create(hotelFromRequest(body))
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, api.FromHotel(hotel))
}

func (h *Handler) UpdateHotel(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	var body api.HotelRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteError(w, err)
		return
	}

	hotel, err := h.hotels.Update(id, hotelFromRequest(body))
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, api.FromHotel(hotel))
}

func (h *Handler) DeleteHotel(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	if err := h.hotels.Delete(id); err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, messageResponse{Message: "Hotel deleted successfully"})
}

func (h *Handler) writeHotels(w http.ResponseWriter, load func() ([]domain.Hotel, error)) {
	items, err := load()
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	result := make([]api.HotelResponse, 0, len(items))
	for _, hotel := range items {
		result = append(result, api.FromHotel(hotel))
	}
	utils.WriteJSON(w, http.StatusOK, result)
}

func hotelFromRequest(body api.HotelRequest) domain.Hotel {
	return domain.Hotel{
		Name:        body.Name,
		Description: body.Description,
		Location:    body.Location,
		StarRating:  body.StarRating,
		Images:      body.Images,
		MainImage:   body.MainImage,
		PriceRange:  body.PriceRange,
		Amenities:   body.Amenities,
		Featured:    body.Featured,
	}
}
