package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/nizami-hq/nizami-backend-go/internal/domain/user"
	"github.com/nizami-hq/nizami-backend-go/internal/handler/http/response"
)

// RequireOwner requires owner role. The kiosk role only reaches the portal
// toggle routes.
func RequireOwner(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, user.ErrOwnerAccessRequired)
			return
		}

		role, ok := claims["role"].(string)
		if !ok {
			response.HandleError(w, user.ErrOwnerAccessRequired)
			return
		}

		if role != string(user.RoleOwner) {
			response.HandleError(w, user.ErrOwnerAccessRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}
