package domain

import (
	"time"

	"github.com/google/uuid"
)

// ContactStatus tracks how far an inquiry has been processed by staff.
type ContactStatus string

const (
	ContactNew       ContactStatus = "new"
	ContactRead      ContactStatus = "read"
	ContactResponded ContactStatus = "responded"
)

func (s ContactStatus) Valid() bool {
	return s == ContactNew || s == ContactRead || s == ContactResponded
}

type Contact struct {
	Id          uuid.UUID
	Name        string
	Email       string
	Subject     string
	Message     string
	Phone       string
	Status      ContactStatus
	SubmittedAt time.Time
}

type Subscription struct {
	Id           uuid.UUID
	Email        string
	Name         string
	IsActive     bool
	SubscribedAt time.Time
}
