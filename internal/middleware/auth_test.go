package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ceylontrip/ceylontrip/internal/domain"
	internal_errors "github.com/ceylontrip/ceylontrip/internal/errors"
	"github.com/ceylontrip/ceylontrip/internal/jwt"
)

type MockIdentityLoader struct {
	MockUserById func(id domain.UserId) (domain.User, error)
}

func (m *MockIdentityLoader) UserById(id domain.UserId) (domain.User, error) {
	if m.MockUserById != nil {
		return m.MockUserById(id)
	}
	return domain.User{}, nil
}

func TestGuard(t *testing.T) {
	jwtService := jwt.New("test_secret", time.Hour)
	expiredService := jwt.New("test_secret", -time.Minute)

	admin := domain.User{Id: uuid.New(), Email: "admin@example.com", Role: domain.RoleAdmin, IsActive: true}
	user := domain.User{Id: uuid.New(), Email: "user@example.com", Role: domain.RoleUser, IsActive: true}
	inactive := domain.User{Id: uuid.New(), Email: "gone@example.com", Role: domain.RoleUser, IsActive: false}
	deletedId := uuid.New()

	users := map[domain.UserId]domain.User{
		admin.Id:    admin,
		user.Id:     user,
		inactive.Id: inactive,
	}
	loader := &MockIdentityLoader{
		MockUserById: func(id domain.UserId) (domain.User, error) {
			u, ok := users[id]
			if !ok {
				return domain.User{}, internal_errors.NotFound("User not found")
			}
			return u, nil
		},
	}

	token := func(t *testing.T, s jwt.TokenService, id domain.UserId) string {
		tok, err := s.Issue(id)
		require.NoError(t, err)
		return tok
	}

	tests := []struct {
		name           string
		adminOnly      bool
		header         string
		expectedStatus int
		expectedUser   *domain.User
	}{
		{
			name:           "valid token, user route",
			header:         "Bearer " + token(t, jwtService, user.Id),
			expectedStatus: http.StatusOK,
			expectedUser:   &user,
		},
		{
			name:           "valid admin token, admin route",
			adminOnly:      true,
			header:         "Bearer " + token(t, jwtService, admin.Id),
			expectedStatus: http.StatusOK,
			expectedUser:   &admin,
		},
		{
			name:           "non-admin on admin route",
			adminOnly:      true,
			header:         "Bearer " + token(t, jwtService, user.Id),
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "missing header",
			header:         "",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "wrong scheme",
			header:         "Basic abc123",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "garbage token",
			header:         "Bearer not.a.token",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "expired token",
			header:         "Bearer " + token(t, expiredService, user.Id),
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "token for deleted account",
			header:         "Bearer " + token(t, jwtService, deletedId),
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "token for deactivated account",
			header:         "Bearer " + token(t, jwtService, inactive.Id),
			expectedStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := NewAuth(jwtService, loader)

			guard := auth.RequireAuth()
			if tt.adminOnly {
				guard = auth.RequireAdmin()
			}

			req := httptest.NewRequest("GET", "http://example.com", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rr := httptest.NewRecorder()

			handler := guard(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got := GetIdentity(r)
				require.NotNil(t, got, "guard should always propagate identity through context")
				assert.Equal(t, tt.expectedUser, got)
				w.WriteHeader(http.StatusOK)
			}))
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
		})
	}
}

func TestOptionalAuth(t *testing.T) {
	jwtService := jwt.New("test_secret", time.Hour)
	user := domain.User{Id: uuid.New(), Email: "user@example.com", Role: domain.RoleUser, IsActive: true}

	loader := &MockIdentityLoader{
		MockUserById: func(id domain.UserId) (domain.User, error) {
			if id == user.Id {
				return user, nil
			}
			return domain.User{}, internal_errors.NotFound("User not found")
		},
	}
	auth := NewAuth(jwtService, loader)

	token, err := jwtService.Issue(user.Id)
	require.NoError(t, err)

	tests := []struct {
		name         string
		header       string
		expectedUser *domain.User
	}{
		{"valid token attaches identity", "Bearer " + token, &user},
		{"no header proceeds anonymous", "", nil},
		{"garbage token proceeds anonymous", "Bearer garbage", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "http://example.com", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rr := httptest.NewRecorder()

			handler := auth.OptionalAuth()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, tt.expectedUser, GetIdentity(r))
				w.WriteHeader(http.StatusOK)
			}))
			handler.ServeHTTP(rr, req)

			// Optional auth never rejects.
			assert.Equal(t, http.StatusOK, rr.Code)
		})
	}
}

func TestOptionalAuthSwallowsStoreFailure(t *testing.T) {
	jwtService := jwt.New("test_secret", time.Hour)
	loader := &MockIdentityLoader{
		MockUserById: func(id domain.UserId) (domain.User, error) {
			return domain.User{}, internal_errors.StoreUnavailable()
		},
	}
	auth := NewAuth(jwtService, loader)

	token, err := jwtService.Issue(uuid.New())
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "http://example.com", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()

	handler := auth.OptionalAuth()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Nil(t, GetIdentity(r))
		w.WriteHeader(http.StatusOK)
	}))
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}
