package handler

import (
	"net/http"

	"github.com/ceylontrip/ceylontrip/internal/api"
	"github.com/ceylontrip/ceylontrip/internal/domain"
	"github.com/ceylontrip/ceylontrip/internal/middleware"
	"github.com/ceylontrip/ceylontrip/internal/utils"
)

func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	stats := h.dashboard.Stats()

	recentUsers := make([]api.UserResponse, 0, len(stats.RecentUsers))
	for _, u := range stats.RecentUsers {
		recentUsers = append(recentUsers, api.FromUser(u))
	}
	recentContacts := make([]api.ContactResponse, 0, len(stats.RecentContacts))
	for _, c := range stats.RecentContacts {
		recentContacts = append(recentContacts, api.FromContact(c))
	}
	monthly := make([]api.MonthlySignupCount, 0, len(stats.MonthlySignups))
	for _, b := range stats.MonthlySignups {
		monthly = append(monthly, api.MonthlySignupCount{
			Year:  b.Year,
			Month: int(b.Month),
			Count: b.Count,
		})
	}

	utils.WriteJSON(w, http.StatusOK, api.DashboardResponse{
		Statistics: api.DashboardStatistics{
			TotalUsers:                 stats.TotalUsers,
			TotalDestinations:          stats.TotalDestinations,
			TotalAttractions:           stats.TotalAttractions,
			TotalHotels:                stats.TotalHotels,
			TotalEvents:                stats.TotalEvents,
			TotalContacts:              stats.TotalContacts,
			TotalNewsletterSubscribers: stats.TotalNewsletterSubscribers,
		},
		RecentUsers:    recentUsers,
		RecentContacts: recentContacts,
		MonthlyUsers:   monthly,
	})
}

// RefreshDashboard recomputes the cached statistics on demand instead of
// waiting for the background interval.
func (h *Handler) RefreshDashboard(w http.ResponseWriter, r *http.Request) {
	if err := h.dashboard.Refresh(); err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, messageResponse{Message: "Dashboard statistics refreshed"})
}

func (h *Handler) Users(w http.ResponseWriter, r *http.Request) {
	page, limit := h.pageParams(r)

	users, total, err := h.auth.Users(domain.UserFilter{
		Search: r.URL.Query().Get("search"),
		Role:   domain.Role(r.URL.Query().Get("role")),
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	result := make([]api.UserResponse, 0, len(users))
	for _, u := range users {
		result = append(result, api.FromUser(u))
	}
	utils.WriteJSON(w, http.StatusOK, api.UsersResponse{
		Users:      result,
		Pagination: buildPagination(page, limit, total),
	})
}

func (h *Handler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	var body api.UpdateUserRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteError(w, err)
		return
	}

	user, err := h.auth.UpdateUser(id, domain.UserUpdate{
		FirstName: body.FirstName,
		LastName:  body.LastName,
		Role:      body.Role,
		IsActive:  body.IsActive,
		Phone:     body.Phone,
		Country:   body.Country,
	})
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, api.FromUser(user))
}

func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	actingAdmin := middleware.GetIdentity(r)
	if err := h.auth.DeleteUser(id, actingAdmin.Id); err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, messageResponse{Message: "User deleted successfully"})
}
