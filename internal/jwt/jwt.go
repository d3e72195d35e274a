package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/ceylontrip/ceylontrip/internal/domain"
	internal_errors "github.com/ceylontrip/ceylontrip/internal/errors"
	"github.com/ceylontrip/ceylontrip/internal/logger"
)

// TokenService issues and verifies signed bearer tokens. A token is a
// stateless assertion of identity: it carries only the user id and its
// validity window, never profile data, so account state is always checked
// against the store at verification time.
type TokenService interface {
	Issue(id domain.UserId) (string, error)
	Verify(tokenString string) (domain.UserId, error)
}

type Service struct {
	secret []byte
	ttl    time.Duration
}

// New creates a TokenService signing with the given shared secret. The
// secret is injected here once at startup and never read from ambient
// state.
func New(secret string, ttl time.Duration) *Service {
	return &Service{secret: []byte(secret), ttl: ttl}
}

func (s *Service) Issue(id domain.UserId) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   id.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		logger.Log.Error("failed to sign token", "error", err)
		return "", errors.New("can't create token")
	}
	return tokenString, nil
}

// Verify checks signature and expiry and returns the embedded user id.
// Failures map onto the stable rejection categories: expired tokens are
// distinguished from every other parse or signature problem.
func (s *Service) Verify(tokenString string) (domain.UserId, error) {
	var claims jwt.RegisteredClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return uuid.Nil, internal_errors.ExpiredToken()
		}
		return uuid.Nil, internal_errors.InvalidToken()
	}
	if !token.Valid {
		return uuid.Nil, internal_errors.InvalidToken()
	}

	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, internal_errors.InvalidToken()
	}
	return id, nil
}
