package middleware

import (
	"net/http"

	"github.com/cmlabs-hris/storeops-backend-go/internal/handler/http/response"
	"github.com/cmlabs-hris/storeops-backend-go/internal/pkg/jwt"
)

// RequireManager requires manager role
func RequireManager(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := ClaimsFromContext(r.Context())
		if !ok {
			response.HandleError(w, jwt.ErrInvalidToken)
			return
		}

		if !claims.IsManager() {
			response.HandleError(w, jwt.ErrManagerRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}
