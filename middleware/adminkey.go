package middleware

import (
	"crypto/subtle"
	"net/http"

	"golang.org/x/crypto/bcrypt"
)

const apiKeyHeader = "X-Api-Key"

// AdminWrite gates every non-read request behind a shared secret presented in
// the x-api-key header. Reads pass through untouched. When a bcrypt hash of
// the key is configured it takes precedence over the plain key.
func AdminWrite(adminKey, adminKeyHash string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodGet, http.MethodHead, http.MethodOptions:
				next.ServeHTTP(w, r)
				return
			}

			provided := r.Header.Get(apiKeyHeader)
			if provided != "" && keyMatches(provided, adminKey, adminKeyHash) {
				next.ServeHTTP(w, r)
				return
			}

			http.Error(w, "a valid admin x-api-key is required for this operation", http.StatusUnauthorized)
		})
	}
}

func keyMatches(provided, adminKey, adminKeyHash string) bool {
	if adminKeyHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(adminKeyHash), []byte(provided)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(provided), []byte(adminKey)) == 1
}
