package service

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/ceylontrip/ceylontrip/internal/domain"
	"github.com/ceylontrip/ceylontrip/internal/errors"
	"github.com/ceylontrip/ceylontrip/internal/jwt"
	"github.com/ceylontrip/ceylontrip/internal/logger"
)

type AuthService interface {
	Register(reg Registration) (domain.User, string, error)
	Login(creds domain.Credentials) (domain.User, string, error)
	Profile(id domain.UserId) (domain.User, error)
	UpdateProfile(id domain.UserId, update domain.UserUpdate) (domain.User, error)

	// Admin user management
	Users(filter domain.UserFilter) ([]domain.User, int64, error)
	UpdateUser(id domain.UserId, update domain.UserUpdate) (domain.User, error)
	DeleteUser(id domain.UserId, actingAdmin domain.UserId) error
}

// AuthStorage is the credential store as consumed by this service. Email
// uniqueness is owned by the store; a racing duplicate insert surfaces as
// a DuplicateEmail rejection from SaveUser.
type AuthStorage interface {
	SaveUser(user domain.User) error
	UserByEmail(email string) (domain.User, error) // includes password hash
	UserById(id domain.UserId) (domain.User, error) // hash excluded
	UpdateUser(id domain.UserId, update domain.UserUpdate) (domain.User, error)
	DeleteUser(id domain.UserId) error
	Users(filter domain.UserFilter) ([]domain.User, int64, error)
}

type Registration struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Phone     string
	Country   string
}

type Auth struct {
	storage AuthStorage
	tokens  jwt.TokenService
}

func NewAuth(storage AuthStorage, tokens jwt.TokenService) *Auth {
	return &Auth{storage: storage, tokens: tokens}
}

// Register creates an active user-tier account and logs it in. The
// plaintext secret is hashed here; it never reaches the store.
func (a *Auth) Register(reg Registration) (domain.User, string, error) {
	passHash, err := bcrypt.GenerateFromPassword([]byte(reg.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Error("failed to hash password", "error", err)
		return domain.User{}, "", err
	}

	user := domain.User{
		Id:        uuid.New(),
		FirstName: reg.FirstName,
		LastName:  reg.LastName,
		Email:     strings.ToLower(reg.Email),
		PassHash:  string(passHash),
		Role:      domain.RoleUser,
		Phone:     reg.Phone,
		Country:   reg.Country,
		IsActive:  true,
		CreatedAt: time.Now().UTC(),
	}

	if err := a.storage.SaveUser(user); err != nil {
		return domain.User{}, "", err
	}

	token, err := a.tokens.Issue(user.Id)
	if err != nil {
		logger.Log.Error("failed to issue token", "user_id", user.Id, "error", err)
		return domain.User{}, "", err
	}

	user.PassHash = ""
	return user, token, nil
}

// Login verifies credentials and issues a token. Unknown email and wrong
// password are indistinguishable to the caller.
func (a *Auth) Login(creds domain.Credentials) (domain.User, string, error) {
	email := strings.ToLower(creds.Email)

	user, err := a.storage.UserByEmail(email)
	if err != nil {
		if errors.IsKind(err, errors.KindNotFound) {
			return domain.User{}, "", errors.InvalidSecret()
		}
		return domain.User{}, "", err
	}

	if !verifySecret(user, creds.Password) {
		logger.Log.Debug("password verification failed", "user_id", user.Id)
		return domain.User{}, "", errors.InvalidSecret()
	}

	// A correct password does not resurrect a deactivated account.
	if !user.IsActive {
		return domain.User{}, "", errors.AccountDeactivated()
	}

	token, err := a.tokens.Issue(user.Id)
	if err != nil {
		logger.Log.Error("failed to issue token", "user_id", user.Id, "error", err)
		return domain.User{}, "", err
	}

	user.PassHash = ""
	return user, token, nil
}

// verifySecret compares the plaintext attempt against the stored bcrypt
// hash. bcrypt's comparison is constant-time.
func verifySecret(user domain.User, attempt string) bool {
	return bcrypt.CompareHashAndPassword([]byte(user.PassHash), []byte(attempt)) == nil
}

func (a *Auth) Profile(id domain.UserId) (domain.User, error) {
	return a.storage.UserById(id)
}

// UpdateProfile applies the self-service subset of account fields. Role
// and active flag are not editable here.
func (a *Auth) UpdateProfile(id domain.UserId, update domain.UserUpdate) (domain.User, error) {
	update.Role = nil
	update.IsActive = nil
	return a.storage.UpdateUser(id, update)
}

func (a *Auth) Users(filter domain.UserFilter) ([]domain.User, int64, error) {
	return a.storage.Users(filter)
}

func (a *Auth) UpdateUser(id domain.UserId, update domain.UserUpdate) (domain.User, error) {
	if update.Role != nil && !update.Role.Valid() {
		return domain.User{}, errors.BadRequest("Invalid role")
	}
	return a.storage.UpdateUser(id, update)
}

// DeleteUser removes an account. Admins cannot delete themselves: the
// acting identity comes from the guard, not the request body.
func (a *Auth) DeleteUser(id domain.UserId, actingAdmin domain.UserId) error {
	if id == actingAdmin {
		return errors.BadRequest("Cannot delete your own account")
	}
	return a.storage.DeleteUser(id)
}
