package http

import (
	"errors"
	"net/http"

	"github.com/baynunah-hr/hr-backend-go/internal/domain/employee"
	"github.com/go-chi/jwtauth/v5"
)

var errNoActor = errors.New("no authenticated actor in request context")

// actorFromRequest extracts the authenticated employee id and role from the
// verified JWT claims.
func actorFromRequest(r *http.Request) (string, employee.Role, error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", "", err
	}

	id, ok := claims["employee_id"].(string)
	if !ok || id == "" {
		return "", "", errNoActor
	}

	role, _ := claims["role"].(string)
	return id, employee.Role(role), nil
}
