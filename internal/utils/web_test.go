package utils

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	internal_errors "github.com/ceylontrip/ceylontrip/internal/errors"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		name            string
		err             error
		expectedStatus  int
		expectedKind    string
		expectedMessage string
	}{
		{
			name:            "taxonomy error keeps kind and message",
			err:             internal_errors.InvalidSecret(),
			expectedStatus:  http.StatusUnauthorized,
			expectedKind:    "invalid_secret",
			expectedMessage: "Invalid email or password",
		},
		{
			name:            "plain error is masked as internal",
			err:             errors.New("pq: connection refused"),
			expectedStatus:  http.StatusInternalServerError,
			expectedKind:    "internal",
			expectedMessage: "Internal server error",
		},
		{
			name:            "store unavailable",
			err:             internal_errors.StoreUnavailable(),
			expectedStatus:  http.StatusServiceUnavailable,
			expectedKind:    "store_unavailable",
			expectedMessage: "Service temporarily unavailable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			WriteError(rr, tt.err)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

			var body struct {
				Error   string `json:"error"`
				Message string `json:"message"`
			}
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
			assert.Equal(t, tt.expectedKind, body.Error)
			assert.Equal(t, tt.expectedMessage, body.Message)
		})
	}
}

func TestDecodeValidate(t *testing.T) {
	type payload struct {
		Email string `json:"email" validate:"required,email"`
	}

	reader := func(s string) io.ReadCloser {
		return io.NopCloser(strings.NewReader(s))
	}

	t.Run("valid body", func(t *testing.T) {
		var p payload
		require.NoError(t, DecodeValidate(reader(`{"email":"a@b.com"}`), &p))
		assert.Equal(t, "a@b.com", p.Email)
	})

	t.Run("malformed json", func(t *testing.T) {
		var p payload
		err := DecodeValidate(reader(`{oops`), &p)
		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, internal_errors.StatusCode(err))
	})

	t.Run("validation failure", func(t *testing.T) {
		var p payload
		err := DecodeValidate(reader(`{"email":"not-an-email"}`), &p)
		require.Error(t, err)
		assert.True(t, internal_errors.IsKind(err, internal_errors.KindValidation))
	})
}
