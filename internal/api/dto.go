// Package api defines the request and response shapes of the public
// JSON surface. Handlers convert between these DTOs and domain types so
// internal fields (password hashes above all) never reach the wire.
package api

import (
	"time"

	"github.com/ceylontrip/ceylontrip/internal/domain"
)

type RegisterRequest struct {
	FirstName string `json:"firstName" validate:"required,min=2,max=50"`
	LastName  string `json:"lastName" validate:"required,min=2,max=50"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
	Phone     string `json:"phone" validate:"omitempty,e164"`
	Country   string `json:"country" validate:"omitempty,max=50"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UpdateProfileRequest struct {
	FirstName *string `json:"firstName" validate:"omitempty,min=2,max=50"`
	LastName  *string `json:"lastName" validate:"omitempty,min=2,max=50"`
	Phone     *string `json:"phone" validate:"omitempty,e164"`
	Country   *string `json:"country" validate:"omitempty,max=50"`
}

type UpdateUserRequest struct {
	FirstName *string      `json:"firstName" validate:"omitempty,min=2,max=50"`
	LastName  *string      `json:"lastName" validate:"omitempty,min=2,max=50"`
	Role      *domain.Role `json:"role" validate:"omitempty,oneof=user admin"`
	IsActive  *bool        `json:"isActive"`
	Phone     *string      `json:"phone" validate:"omitempty,e164"`
	Country   *string      `json:"country" validate:"omitempty,max=50"`
}

type UserResponse struct {
	Id        string    `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Phone     string    `json:"phone,omitempty"`
	Country   string    `json:"country,omitempty"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}

func FromUser(u domain.User) UserResponse {
	return UserResponse{
		Id:        u.Id.String(),
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Role:      string(u.Role),
		Phone:     u.Phone,
		Country:   u.Country,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
	}
}

type AuthResponse struct {
	Message string       `json:"message"`
	User    UserResponse `json:"user"`
	Token   string       `json:"token"`
}

type Pagination struct {
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	Total       int64 `json:"total"`
	HasNextPage bool  `json:"hasNextPage"`
	HasPrevPage bool  `json:"hasPrevPage"`
}

type UsersResponse struct {
	Users      []UserResponse `json:"users"`
	Pagination Pagination     `json:"pagination"`
}

type ContactRequest struct {
	Name    string `json:"name" validate:"required,min=2"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"required,min=5"`
	Message string `json:"message" validate:"required,min=10"`
	Phone   string `json:"phone" validate:"omitempty,e164"`
}

type ContactResponse struct {
	Id          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Subject     string    `json:"subject"`
	Message     string    `json:"message,omitempty"`
	Phone       string    `json:"phone,omitempty"`
	Status      string    `json:"status"`
	SubmittedAt time.Time `json:"submittedAt"`
}

func FromContact(c domain.Contact) ContactResponse {
	return ContactResponse{
		Id:          c.Id.String(),
		Name:        c.Name,
		Email:       c.Email,
		Subject:     c.Subject,
		Message:     c.Message,
		Phone:       c.Phone,
		Status:      string(c.Status),
		SubmittedAt: c.SubmittedAt,
	}
}

type ContactsResponse struct {
	Contacts   []ContactResponse `json:"contacts"`
	Pagination Pagination        `json:"pagination"`
}

type UpdateContactStatusRequest struct {
	Status domain.ContactStatus `json:"status" validate:"required,oneof=new read responded"`
}

type SubscribeRequest struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name" validate:"omitempty,min=2"`
}

type UnsubscribeRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type SubscriptionResponse struct {
	Id           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name,omitempty"`
	IsActive     bool      `json:"isActive"`
	SubscribedAt time.Time `json:"subscribedAt"`
}

func FromSubscription(s domain.Subscription) SubscriptionResponse {
	return SubscriptionResponse{
		Id:           s.Id.String(),
		Email:        s.Email,
		Name:         s.Name,
		IsActive:     s.IsActive,
		SubscribedAt: s.SubscribedAt,
	}
}

type DashboardResponse struct {
	Statistics     DashboardStatistics  `json:"statistics"`
	RecentUsers    []UserResponse       `json:"recentUsers"`
	RecentContacts []ContactResponse    `json:"recentContacts"`
	MonthlyUsers   []MonthlySignupCount `json:"monthlyUsers"`
}

type DashboardStatistics struct {
	TotalUsers                 int64 `json:"totalUsers"`
	TotalDestinations          int64 `json:"totalDestinations"`
	TotalAttractions           int64 `json:"totalAttractions"`
	TotalHotels                int64 `json:"totalHotels"`
	TotalEvents                int64 `json:"totalEvents"`
	TotalContacts              int64 `json:"totalContacts"`
	TotalNewsletterSubscribers int64 `json:"totalNewsletterSubscribers"`
}

type MonthlySignupCount struct {
	Year  int   `json:"year"`
	Month int   `json:"month"`
	Count int64 `json:"count"`
}
