package middleware

import (
	"context"
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/serviceportals/ops-backend-go/internal/domain/auth"
	"github.com/serviceportals/ops-backend-go/internal/handler/http/response"
	"github.com/serviceportals/ops-backend-go/internal/pkg/jwt"
)

type principalKey struct{}

// TokenFromAuthCookie pulls the token out of the cookie that login and
// refresh set.
func TokenFromAuthCookie(r *http.Request) string {
	cookie, err := r.Cookie(jwt.AuthCookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

// Verifier seeks the token in the Authorization header first, then in
// the auth cookie, and leaves the verification result on the context
// for AuthRequired.
func Verifier(ja *jwtauth.JWTAuth) func(http.Handler) http.Handler {
	return jwtauth.Verify(ja, jwtauth.TokenFromHeader, TokenFromAuthCookie)
}

// AuthRequired validates the verified token and stashes the principal
// in the request context.
func AuthRequired(ja *jwtauth.JWTAuth) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, _, err := jwtauth.FromContext(r.Context())

			if err != nil {
				response.Unauthorized(w, err.Error())
				return
			}

			if token == nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			claims, err := token.AsMap(r.Context())
			if err != nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			principal, ok := jwt.PrincipalFromClaims(claims)
			if !ok {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			ctx := context.WithValue(r.Context(), principalKey{}, principal)
			next.ServeHTTP(w, r.WithContext(ctx))
		}
		return http.HandlerFunc(hfn)
	}
}

// PrincipalFromContext returns the principal set by AuthRequired.
func PrincipalFromContext(ctx context.Context) (jwt.Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(jwt.Principal)
	return p, ok
}
