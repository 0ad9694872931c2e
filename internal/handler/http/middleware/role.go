package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/workline-hq/attendance-backend-go/internal/domain/user"
	"github.com/workline-hq/attendance-backend-go/internal/handler/http/response"
)

// RequireHR requires the hr role
func RequireHR(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, user.ErrHRAccessRequired)
			return
		}

		roleStr, ok := claims["role"].(string)
		if !ok {
			response.HandleError(w, user.ErrHRAccessRequired)
			return
		}

		if user.Role(roleStr) != user.RoleHR {
			response.HandleError(w, user.ErrHRAccessRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}
