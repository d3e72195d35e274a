package errors

import (
	"errors"
	"net/http"
)

// Kind is a stable machine-readable category included in error responses.
// Clients match on Kind, not on Message.
type Kind string

const (
	KindMissingCredential     Kind = "missing_credential"
	KindInvalidToken          Kind = "invalid_token"
	KindExpiredToken          Kind = "expired_token"
	KindIdentityNotFound      Kind = "identity_not_found"
	KindAccountDeactivated    Kind = "account_deactivated"
	KindInsufficientPrivilege Kind = "insufficient_privilege"
	KindDuplicateEmail        Kind = "duplicate_email"
	KindInvalidSecret         Kind = "invalid_secret"
	KindStoreUnavailable      Kind = "store_unavailable"
	KindValidation            Kind = "validation_failed"
	KindNotFound              Kind = "not_found"
	KindBadRequest            Kind = "bad_request"
	KindInternal              Kind = "internal"
)

// default error is internal service error at handler level
// if error has different status code use ErrorWithStatusCode
type ErrorWithStatusCode struct {
	Kind       Kind
	Message    string
	StatusCode int
}

func (e *ErrorWithStatusCode) Error() string {
	return e.Message
}

func New(kind Kind, message string, statusCode int) *ErrorWithStatusCode {
	return &ErrorWithStatusCode{Kind: kind, Message: message, StatusCode: statusCode}
}

// Auth taxonomy constructors. Messages are user-facing; the Kind carries
// the category.

func MissingCredential() *ErrorWithStatusCode {
	return New(KindMissingCredential, "Not authorized, no token", http.StatusUnauthorized)
}

func InvalidToken() *ErrorWithStatusCode {
	return New(KindInvalidToken, "Not authorized, token failed", http.StatusUnauthorized)
}

func ExpiredToken() *ErrorWithStatusCode {
	return New(KindExpiredToken, "Not authorized, token expired", http.StatusUnauthorized)
}

func IdentityNotFound() *ErrorWithStatusCode {
	return New(KindIdentityNotFound, "User not found", http.StatusUnauthorized)
}

func AccountDeactivated() *ErrorWithStatusCode {
	return New(KindAccountDeactivated, "Account is deactivated", http.StatusForbidden)
}

func InsufficientPrivilege() *ErrorWithStatusCode {
	return New(KindInsufficientPrivilege, "Access denied. Admin privileges required", http.StatusForbidden)
}

func DuplicateEmail() *ErrorWithStatusCode {
	return New(KindDuplicateEmail, "User already exists with this email", http.StatusBadRequest)
}

// InvalidSecret covers both unknown email and wrong password so login
// responses don't leak which accounts exist.
func InvalidSecret() *ErrorWithStatusCode {
	return New(KindInvalidSecret, "Invalid email or password", http.StatusUnauthorized)
}

func StoreUnavailable() *ErrorWithStatusCode {
	return New(KindStoreUnavailable, "Service temporarily unavailable", http.StatusServiceUnavailable)
}

func NotFound(message string) *ErrorWithStatusCode {
	return New(KindNotFound, message, http.StatusNotFound)
}

func BadRequest(message string) *ErrorWithStatusCode {
	return New(KindBadRequest, message, http.StatusBadRequest)
}

// IsKind reports whether err is an ErrorWithStatusCode of the given kind.
func IsKind(err error, kind Kind) bool {
	var e *ErrorWithStatusCode
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

func IsNotFound(err error) bool {
	var e *ErrorWithStatusCode
	if errors.As(err, &e) {
		return e.StatusCode == http.StatusNotFound
	}
	return false
}

// StatusCode extracts the HTTP status for err, defaulting to 500.
func StatusCode(err error) int {
	var e *ErrorWithStatusCode
	if errors.As(err, &e) {
		return e.StatusCode
	}
	return http.StatusInternalServerError
}

// KindOf extracts the category for err, defaulting to KindInternal.
func KindOf(err error) Kind {
	var e *ErrorWithStatusCode
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}
