package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/serviceportals/ops-backend-go/internal/pkg/jwt"
)

func okHandler(called *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*called = true
		w.WriteHeader(http.StatusOK)
	})
}

func requestWithPrincipal(p jwt.Principal) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	ctx := context.WithValue(req.Context(), principalKey{}, p)
	return req.WithContext(ctx)
}

func TestAuthRequired_AcceptsBearerToken(t *testing.T) {
	svc := jwt.NewJWTService("test-secret", "1h")
	token, _, err := svc.GenerateAccessToken(jwt.Principal{
		ID: "emp-1", Role: jwt.RoleEmployee, UnitID: "unit-a", FeatureAccess: []string{"payroll"},
	})
	require.NoError(t, err)

	var got jwt.Principal
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p, ok := PrincipalFromContext(r.Context())
		require.True(t, ok)
		got = p
		w.WriteHeader(http.StatusOK)
	})

	handler := jwtauth.Verifier(svc.JWTAuth())(AuthRequired(svc.JWTAuth())(inner))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "emp-1", got.ID)
	assert.Equal(t, "unit-a", got.UnitID)
	assert.Equal(t, []string{"payroll"}, got.FeatureAccess)
}

func TestVerifier_AcceptsAuthCookie(t *testing.T) {
	svc := jwt.NewJWTService("test-secret", "1h")
	token, expiresAt, err := svc.GenerateAccessToken(jwt.Principal{
		ID: "cust-1", Role: jwt.RoleCustomer, UnitID: "unit-a",
	})
	require.NoError(t, err)

	var got jwt.Principal
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p, ok := PrincipalFromContext(r.Context())
		require.True(t, ok)
		got = p
		w.WriteHeader(http.StatusOK)
	})

	handler := Verifier(svc.JWTAuth())(AuthRequired(svc.JWTAuth())(inner))

	// No Authorization header, only the cookie that login sets.
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(svc.AuthCookie(token, expiresAt))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "cust-1", got.ID)
	assert.Equal(t, jwt.RoleCustomer, got.Role)
}

func TestVerifier_RejectsTamperedCookie(t *testing.T) {
	svc := jwt.NewJWTService("test-secret", "1h")

	called := false
	handler := Verifier(svc.JWTAuth())(AuthRequired(svc.JWTAuth())(okHandler(&called)))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: jwt.AuthCookieName, Value: "not-a-token"})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called)
}

func TestAuthRequired_RejectsMissingToken(t *testing.T) {
	svc := jwt.NewJWTService("test-secret", "1h")

	called := false
	handler := jwtauth.Verifier(svc.JWTAuth())(AuthRequired(svc.JWTAuth())(okHandler(&called)))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called)
}

func TestRequireRole(t *testing.T) {
	called := false
	handler := RequireRole(jwt.RoleAdmin, jwt.RoleEmployee)(okHandler(&called))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, requestWithPrincipal(jwt.Principal{ID: "emp-1", Role: jwt.RoleEmployee}))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, called)

	called = false
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, requestWithPrincipal(jwt.Principal{ID: "cust-1", Role: jwt.RoleCustomer}))
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.False(t, called)
}

func TestRequireAdmin_NoPrincipal(t *testing.T) {
	called := false
	handler := RequireAdmin(okHandler(&called))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.False(t, called)
}

func TestRequireFeature(t *testing.T) {
	called := false
	handler := RequireFeature("payroll")(okHandler(&called))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, requestWithPrincipal(jwt.Principal{
		ID: "emp-1", Role: jwt.RoleEmployee, FeatureAccess: []string{"payroll"},
	}))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, called)

	called = false
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, requestWithPrincipal(jwt.Principal{
		ID: "emp-2", Role: jwt.RoleEmployee, FeatureAccess: []string{"tickets"},
	}))
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.False(t, called)

	// Admins bypass feature grants.
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, requestWithPrincipal(jwt.Principal{ID: "admin-1", Role: jwt.RoleAdmin}))
	assert.Equal(t, http.StatusOK, rec.Code)
}
