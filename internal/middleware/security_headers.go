package middleware

import (
	"net/http"
)

// SecurityHeaders adds standard hardening headers for a JSON API.
// hsts should only be enabled when the service is actually served over
// TLS.
func SecurityHeaders(hsts bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			headers := w.Header()

			headers.Set("X-Frame-Options", "DENY")
			headers.Set("X-Content-Type-Options", "nosniff")
			headers.Set("Referrer-Policy", "strict-origin-when-cross-origin")
			// JSON API only, nothing should ever render or embed it
			headers.Set("Content-Security-Policy", "default-src 'none'; frame-ancestors 'none'")

			if hsts {
				headers.Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
			}

			next.ServeHTTP(w, r)
		})
	}
}
