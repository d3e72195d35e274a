package handler

import (
	"net/http"

	"github.com/ceylontrip/ceylontrip/internal/api"
	"github.com/ceylontrip/ceylontrip/internal/domain"
	"github.com/ceylontrip/ceylontrip/internal/utils"
)

func (h *Handler) SubmitContact(w http.ResponseWriter, r *http.Request) {
	var body api.ContactRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteError(w, err)
		return
	}

	c, err := h.leads.SubmitContact(domain.Contact{
		Name:    body.Name,
		Email:   body.Email,
		Subject: body.Subject,
		Message: body.Message,
		Phone:   body.Phone,
	})
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusCreated, struct {
		Message string              `json:"message"`
		Contact api.ContactResponse `json:"contact"`
	}{
		Message: "Thank you for contacting us. We will get back to you soon.",
		Contact: api.FromContact(c),
	})
}

func (h *Handler) Contacts(w http.ResponseWriter, r *http.Request) {
	page, limit := h.pageParams(r)
	search := r.URL.Query().Get("search")

	contacts, total, err := h.leads.Contacts(search, page, limit)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	result := make([]api.ContactResponse, 0, len(contacts))
	for _, c := range contacts {
		result = append(result, api.FromContact(c))
	}
	utils.WriteJSON(w, http.StatusOK, api.ContactsResponse{
		Contacts:   result,
		Pagination: buildPagination(page, limit, total),
	})
}

func (h *Handler) Contact(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	c, err := h.leads.Contact(id)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, api.FromContact(c))
}

func (h *Handler) UpdateContactStatus(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	var body api.UpdateContactStatusRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteError(w, err)
		return
	}

	if err := h.leads.SetContactStatus(id, body.Status); err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, messageResponse{Message: "Contact status updated"})
}

func (h *Handler) DeleteContact(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	if err := h.leads.DeleteContact(id); err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, messageResponse{Message: "Contact submission deleted"})
}

func (h *Handler) Subscribe(w http.ResponseWriter, r *http.Request) {
	var body api.SubscribeRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteError(w, err)
		return
	}

	sub, err := h.leads.Subscribe(body.Email, body.Name)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusCreated, struct {
		Message      string                   `json:"message"`
		Subscription api.SubscriptionResponse `json:"subscription"`
	}{
		Message:      "Successfully subscribed to our newsletter",
		Subscription: api.FromSubscription(sub),
	})
}

func (h *Handler) Unsubscribe(w http.ResponseWriter, r *http.Request) {
	var body api.UnsubscribeRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteError(w, err)
		return
	}

	if err := h.leads.Unsubscribe(body.Email); err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, messageResponse{Message: "Successfully unsubscribed from our newsletter"})
}

func (h *Handler) DeleteSubscription(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	if err := h.leads.DeleteSubscription(id); err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, messageResponse{Message: "Subscription deleted"})
}

func (h *Handler) SubscriberCount(w http.ResponseWriter, r *http.Request) {
	count, err := h.leads.ActiveSubscriberCount()
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, struct {
		Count int64 `json:"count"`
	}{Count: count})
}

func (h *Handler) Subscriptions(w http.ResponseWriter, r *http.Request) {
	page, limit := h.pageParams(r)

	subs, total, err := h.leads.Subscriptions(page, limit)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	result := make([]api.SubscriptionResponse, 0, len(subs))
	for _, sub := range subs {
		result = append(result, api.FromSubscription(sub))
	}
	utils.WriteJSON(w, http.StatusOK, struct {
		Subscriptions []api.SubscriptionResponse `json:"subscriptions"`
		Pagination    api.Pagination             `json:"pagination"`
	}{
		Subscriptions: result,
		Pagination:    buildPagination(page, limit, total),
	})
}
