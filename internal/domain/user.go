package domain

import (
	"time"

	"github.com/google/uuid"
)

// Role is the authorization tier of an account. Kept as a closed enum so
// privilege checks can be exhaustive.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

type UserId = uuid.UUID

// User is a registered account. PassHash is write-only: it is loaded only
// on the login path and must never be serialized into a response.
type User struct {
	Id        UserId
	FirstName string
	LastName  string
	Email     string
	PassHash  string
	Role      Role
	Phone     string
	Country   string
	IsActive  bool
	CreatedAt time.Time
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

type Credentials struct {
	Email    string
	Password string
}

// UserUpdate carries the admin-editable account fields. Nil pointers mean
// "leave unchanged".
type UserUpdate struct {
	FirstName *string
	LastName  *string
	Role      *Role
	IsActive  *bool
	Phone     *string
	Country   *string
}

// UserFilter narrows admin user listings.
type UserFilter struct {
	Search string
	Role   Role
	Page   int
	Limit  int
}

// MonthlySignupCount is one bucket of the dashboard registration series.
type MonthlySignupCount struct {
	Year  int
	Month time.Month
	Count int64
}
