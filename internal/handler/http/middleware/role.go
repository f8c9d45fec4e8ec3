package middleware

import (
	"net/http"

	"github.com/serviceportals/ops-backend-go/internal/handler/http/response"
	"github.com/serviceportals/ops-backend-go/internal/pkg/jwt"
)

// RequireRole allows only the listed roles through.
func RequireRole(roles ...string) func(http.Handler) http.Handler {
	allowed := make(map[string]struct{}, len(roles))
	for _, role := range roles {
		allowed[role] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal, ok := PrincipalFromContext(r.Context())
			if !ok {
				response.Forbidden(w, "Access denied")
				return
			}

			if _, ok := allowed[principal.Role]; !ok {
				response.Forbidden(w, "Access denied")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireAdmin requires the admin role.
func RequireAdmin(next http.Handler) http.Handler {
	return RequireRole(jwt.RoleAdmin)(next)
}

// RequireFeature requires an employee feature-access grant; admins
// always pass.
func RequireFeature(feature string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal, ok := PrincipalFromContext(r.Context())
			if !ok {
				response.Forbidden(w, "Access denied")
				return
			}

			if principal.Role == jwt.RoleAdmin {
				next.ServeHTTP(w, r)
				return
			}

			for _, granted := range principal.FeatureAccess {
				if granted == feature {
					next.ServeHTTP(w, r)
					return
				}
			}

			response.Forbidden(w, "Access denied")
		})
	}
}
