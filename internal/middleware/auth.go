package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/ceylontrip/ceylontrip/internal/domain"
	internal_errors "github.com/ceylontrip/ceylontrip/internal/errors"
	"github.com/ceylontrip/ceylontrip/internal/jwt"
	"github.com/ceylontrip/ceylontrip/internal/logger"
	"github.com/ceylontrip/ceylontrip/internal/utils"
)

// IdentityLoader fetches the live account referenced by a verified token.
// Implementations must exclude the password hash from the projection.
type IdentityLoader interface {
	UserById(id domain.UserId) (domain.User, error)
}

// Key to store the resolved identity in the request context
type key int

const IdentityKey key = 0

// Auth is the access guard. Every guarded request walks the same path:
// bearer token present -> signature and expiry valid -> identity still
// exists -> account active -> (optionally) role is admin. A rejection at
// any step carries a stable category.
type Auth struct {
	tokens jwt.TokenService
	users  IdentityLoader
}

func NewAuth(tokens jwt.TokenService, users IdentityLoader) *Auth {
	return &Auth{tokens: tokens, users: users}
}

// RequireAuth returns middleware that rejects requests without a valid
// token bound to an active account.
func (a *Auth) RequireAuth() func(http.Handler) http.Handler {
	return a.guard(false)
}

// RequireAdmin is RequireAuth plus a role check.
func (a *Auth) RequireAdmin() func(http.Handler) http.Handler {
	return a.guard(true)
}

// OptionalAuth attaches the identity when a valid token is presented but
// never blocks the request: a malformed or expired token on a public
// route degrades to an anonymous read. Intentional fail-open, so the
// failure is only logged at debug level.
func (a *Auth) OptionalAuth() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, err := a.resolveIdentity(r)
			if err != nil {
				logger.Log.Debug("optional auth failed, proceeding anonymous", "error", err)
				next.ServeHTTP(w, r)
				return
			}
			next.ServeHTTP(w, r.WithContext(withIdentity(r.Context(), user)))
		})
	}
}

// resolveIdentity extracts the bearer token and walks it to a live,
// loaded identity. Returns one of the taxonomy errors on any failed
// transition.
func (a *Auth) resolveIdentity(r *http.Request) (*domain.User, error) {
	tokenString, found := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
	if !found || tokenString == "" {
		return nil, internal_errors.MissingCredential()
	}

	id, err := a.tokens.Verify(tokenString)
	if err != nil {
		return nil, err
	}

	user, err := a.users.UserById(id)
	if err != nil {
		if internal_errors.IsKind(err, internal_errors.KindNotFound) {
			// Identity deleted after the token was issued.
			return nil, internal_errors.IdentityNotFound()
		}
		return nil, err
	}

	if !user.IsActive {
		return nil, internal_errors.AccountDeactivated()
	}

	return &user, nil
}

func (a *Auth) guard(adminOnly bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, err := a.resolveIdentity(r)
			if err != nil {
				utils.WriteError(w, err)
				return
			}

			if adminOnly && !user.IsAdmin() {
				utils.WriteError(w, internal_errors.InsufficientPrivilege())
				return
			}

			next.ServeHTTP(w, r.WithContext(withIdentity(r.Context(), user)))
		})
	}
}

func withIdentity(ctx context.Context, user *domain.User) context.Context {
	return context.WithValue(ctx, IdentityKey, user)
}

// GetIdentity retrieves the resolved identity from the request context.
// Returns nil for anonymous requests.
func GetIdentity(r *http.Request) *domain.User {
	user, ok := r.Context().Value(IdentityKey).(*domain.User)
	if !ok {
		return nil
	}
	return user
}
