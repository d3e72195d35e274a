package handler

import (
	"net/http"

	"github.com/ceylontrip/ceylontrip/internal/api"
	"github.com/ceylontrip/ceylontrip/internal/domain"
	"github.com/ceylontrip/ceylontrip/internal/middleware"
	"github.com/ceylontrip/ceylontrip/internal/service"
	"github.com/ceylontrip/ceylontrip/internal/utils"
)

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var body api.RegisterRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteError(w, err)
		return
	}

	user, token, err := h.auth.Register(service.Registration{
		FirstName: body.FirstName,
		LastName:  body.LastName,
		Email:     body.Email,
		Password:  body.Password,
		Phone:     body.Phone,
		Country:   body.Country,
	})
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusCreated, api.AuthResponse{
		Message: "Registration successful",
		User:    api.FromUser(user),
		Token:   token,
	})
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var body api.LoginRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteError(w, err)
		return
	}

	user, token, err := h.auth.Login(domain.Credentials{
		Email:    body.Email,
		Password: body.Password,
	})
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, api.AuthResponse{
		Message: "Login successful",
		User:    api.FromUser(user),
		Token:   token,
	})
}

// Me returns the caller's fresh profile. The guard has already resolved
// the identity, but the handler re-reads it so the response reflects the
// current store state.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	identity := middleware.GetIdentity(r)

	user, err := h.auth.Profile(identity.Id)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, api.FromUser(user))
}

func (h *Handler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	identity := middleware.GetIdentity(r)

	var body api.UpdateProfileRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteError(w, err)
		return
	}

	user, err := h.auth.UpdateProfile(identity.Id, domain.UserUpdate{
		FirstName: body.FirstName,
		LastName:  body.LastName,
		Phone:     body.Phone,
		Country:   body.Country,
	})
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, api.FromUser(user))
}
