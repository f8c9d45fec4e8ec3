package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseAccessToken(t *testing.T) {
	svc := NewJWTService("test-secret", "1h")

	token, expiresAt, err := svc.GenerateAccessToken(Principal{
		ID:     "admin-1",
		Role:   RoleAdmin,
		UnitID: "unit-a",
	})
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Greater(t, expiresAt, int64(0))

	p, err := svc.ParseAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin-1", p.ID)
	assert.Equal(t, RoleAdmin, p.Role)
	assert.Equal(t, "unit-a", p.UnitID)
	assert.Empty(t, p.FeatureAccess)
}

func TestEmployeeTokenCarriesFeatureAccess(t *testing.T) {
	svc := NewJWTService("test-secret", "1h")

	token, _, err := svc.GenerateAccessToken(Principal{
		ID:            "emp-1",
		Role:          RoleEmployee,
		UnitID:        "unit-a",
		FeatureAccess: []string{"payroll", "tickets"},
	})
	require.NoError(t, err)

	p, err := svc.ParseAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, []string{"payroll", "tickets"}, p.FeatureAccess)
}

func TestAdminTokenNeverCarriesFeatureAccess(t *testing.T) {
	svc := NewJWTService("test-secret", "1h")

	token, _, err := svc.GenerateAccessToken(Principal{
		ID:            "admin-1",
		Role:          RoleAdmin,
		UnitID:        "unit-a",
		FeatureAccess: []string{"payroll"},
	})
	require.NoError(t, err)

	p, err := svc.ParseAccessToken(token)
	require.NoError(t, err)
	assert.Empty(t, p.FeatureAccess)
}

func TestParseAccessToken_RejectsWrongSecret(t *testing.T) {
	token, _, err := NewJWTService("secret-one", "1h").GenerateAccessToken(Principal{
		ID: "admin-1", Role: RoleAdmin, UnitID: "unit-a",
	})
	require.NoError(t, err)

	_, err = NewJWTService("secret-two", "1h").ParseAccessToken(token)
	assert.Error(t, err)
}

func TestParseAccessToken_RejectsExpired(t *testing.T) {
	svc := NewJWTService("test-secret", "-2m")

	token, _, err := svc.GenerateAccessToken(Principal{
		ID: "admin-1", Role: RoleAdmin, UnitID: "unit-a",
	})
	require.NoError(t, err)

	_, err = svc.ParseAccessToken(token)
	assert.Error(t, err)
}

func TestPrincipalFromClaims(t *testing.T) {
	claims := map[string]interface{}{
		"type":           "access",
		"sub":            "emp-1",
		"role":           RoleEmployee,
		"unit_id":        "unit-a",
		"feature_access": []interface{}{"payroll"},
	}

	p, ok := PrincipalFromClaims(claims)
	require.True(t, ok)
	assert.Equal(t, "emp-1", p.ID)
	assert.Equal(t, []string{"payroll"}, p.FeatureAccess)

	claims["type"] = "refresh"
	_, ok = PrincipalFromClaims(claims)
	assert.False(t, ok)
}

func TestAuthCookie(t *testing.T) {
	svc := NewJWTService("test-secret", "1h")

	cookie := svc.AuthCookie("token-value", 1767225600)
	assert.Equal(t, AuthCookieName, cookie.Name)
	assert.Equal(t, "token-value", cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, "/", cookie.Path)
}
