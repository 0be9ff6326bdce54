package middleware

import (
	"net/http"

	"github.com/baynunah-hr/hr-backend-go/internal/domain/employee"
	"github.com/baynunah-hr/hr-backend-go/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

// RequireHR limits a route group to HR and admin actors.
func RequireHR(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.Forbidden(w, "HR access required")
			return
		}

		role, ok := claims["role"].(string)
		if !ok || !employee.Role(role).IsHR() {
			response.Forbidden(w, "HR access required")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// RequireManager limits a route group to manager, HR and admin actors. The
// line-manager relationship itself is verified in the service transaction.
func RequireManager(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.Forbidden(w, "Manager access required")
			return
		}

		role, ok := claims["role"].(string)
		if !ok {
			response.Forbidden(w, "Manager access required")
			return
		}
		if rr := employee.Role(role); rr != employee.RoleManager && !rr.IsHR() {
			response.Forbidden(w, "Manager access required")
			return
		}

		next.ServeHTTP(w, r)
	})
}
