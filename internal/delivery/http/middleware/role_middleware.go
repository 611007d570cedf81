package middleware

import (
	"net/http"

	"go-training-booking/internal/domain/entity"
	"go-training-booking/pkg/response"
)

// RequireRole creates a middleware that checks if the user has any of the required roles
// Role is read from context (set by AuthMiddleware from JWT claims)
func RequireRole(allowedRoleIDs ...int) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			roleID, ok := GetRoleIDFromContext(r.Context())
			if !ok {
				response.Unauthorized(w, "Role information not found")
				return
			}

			allowed := false
			for _, allowedRoleID := range allowedRoleIDs {
				if roleID == allowedRoleID {
					allowed = true
					break
				}
			}

			if !allowed {
				response.Forbidden(w, "You don't have permission to access this resource")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireAdmin is a convenience middleware for admin-only endpoints
func RequireAdmin(next http.Handler) http.Handler {
	return RequireRole(entity.RoleIDAdmin)(next)
}

// RequireTrainer is a convenience middleware for trainer-only endpoints
func RequireTrainer(next http.Handler) http.Handler {
	return RequireRole(entity.RoleIDTrainer)(next)
}

// RequireCompany is a convenience middleware for company-only endpoints
func RequireCompany(next http.Handler) http.Handler {
	return RequireRole(entity.RoleIDCompany)(next)
}

// RequireAdminOrTrainer is a convenience middleware for admin or trainer endpoints
func RequireAdminOrTrainer(next http.Handler) http.Handler {
	return RequireRole(entity.RoleIDAdmin, entity.RoleIDTrainer)(next)
}
