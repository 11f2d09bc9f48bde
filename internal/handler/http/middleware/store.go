package middleware

import (
	"net/http"

	"github.com/cmlabs-hris/storeops-backend-go/internal/handler/http/response"
	"github.com/cmlabs-hris/storeops-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
)

// RequireStoreAccess keeps store-scoped tokens inside their own store.
// It must be mounted below a route carrying the {storeID} parameter.
func RequireStoreAccess(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := ClaimsFromContext(r.Context())
		if !ok {
			response.HandleError(w, jwt.ErrInvalidToken)
			return
		}

		if !claims.CanAccessStore(chi.URLParam(r, "storeID")) {
			response.HandleError(w, jwt.ErrStoreAccessDenied)
			return
		}

		next.ServeHTTP(w, r)
	})
}
