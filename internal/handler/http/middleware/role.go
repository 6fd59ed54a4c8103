package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/simpeg-app/simpeg-backend-go/internal/domain/user"
	"github.com/simpeg-app/simpeg-backend-go/internal/handler/http/response"
)

// AdminOnly requires the admin role
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, user.ErrAdminPrivilegeRequired)
			return
		}

		role, ok := claims["role"].(string)
		if !ok || role != string(user.RoleAdmin) {
			response.HandleError(w, user.ErrAdminPrivilegeRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// EmployeeOnly requires an employee or admin role
func EmployeeOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.Forbidden(w, "Employee access required")
			return
		}

		roleStr, ok := claims["role"].(string)
		if !ok {
			response.Forbidden(w, "Employee access required")
			return
		}

		role := user.Role(roleStr)
		if role != user.RoleEmployee && role != user.RoleAdmin {
			response.Forbidden(w, "Employee access required")
			return
		}

		next.ServeHTTP(w, r)
	})
}
