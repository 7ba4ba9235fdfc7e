package middleware

import (
	"net/http"

	"github.com/Rahul-Sharma5/teamtimetracker/internal/domain/auth"
	"github.com/Rahul-Sharma5/teamtimetracker/internal/domain/employee"
	"github.com/Rahul-Sharma5/teamtimetracker/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

// RequireManager passes Managers and Admins through.
func RequireManager(next http.Handler) http.Handler {
	return requireRoles(next, employee.RoleManager, employee.RoleAdmin)
}

// RequireAdmin passes Admins only.
func RequireAdmin(next http.Handler) http.Handler {
	return requireRoles(next, employee.RoleAdmin)
}

func requireRoles(next http.Handler, allowed ...employee.Role) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}

		roleStr, ok := claims["role"].(string)
		if !ok {
			response.HandleError(w, employee.ErrNotPermitted)
			return
		}

		role := employee.Role(roleStr)
		for _, a := range allowed {
			if role == a {
				next.ServeHTTP(w, r)
				return
			}
		}

		response.HandleError(w, employee.ErrNotPermitted)
	})
}
