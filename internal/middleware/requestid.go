package middleware

import (
	"net/http"

	"github.com/google/uuid"
)

// RequestID stamps every response with an X-Request-ID for log correlation.
// An incoming id from a trusted proxy is passed through.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", id)
		next.ServeHTTP(w, r)
	})
}
