package jwt

import (
	"net/http"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

// Principal is the authenticated-actor snapshot carried inside an access
// token. FeatureAccess is only populated for employees.
type Principal struct {
	ID            string
	Role          string
	UnitID        string
	FeatureAccess []string
}

const (
	RoleAdmin    = "admin"
	RoleEmployee = "employee"
	RoleCustomer = "customer"
)

// AuthCookieName is the cookie the login and refresh endpoints set.
const AuthCookieName = "auth_token"

type Service interface {
	GenerateAccessToken(p Principal) (token string, expiresAt int64, err error)
	ParseAccessToken(tokenString string) (Principal, error)
	JWTAuth() *jwtauth.JWTAuth
	AuthCookie(token string, expiresAt int64) *http.Cookie
}

type JWTService struct {
	secretKey                 string
	accessTokenExpirationTime string
	tokenAuth                 *jwtauth.JWTAuth
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func NewJWTService(secretKey string, accessTokenExpirationTime string) Service {
	return &JWTService{
		secretKey:                 secretKey,
		accessTokenExpirationTime: accessTokenExpirationTime,
		tokenAuth:                 jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
	}
}

func (j *JWTService) GenerateAccessToken(p Principal) (token string, expiresAt int64, err error) {
	expDuration, err := time.ParseDuration(j.accessTokenExpirationTime)
	if err != nil {
		return "", 0, err
	}
	now := time.Now()
	expiresAt = now.Add(expDuration).Unix()

	claims := map[string]interface{}{
		"sub":     p.ID,
		"role":    p.Role,
		"unit_id": p.UnitID,
		"type":    "access",
		"iat":     now.Unix(),
		"exp":     expiresAt,
	}
	if p.Role == RoleEmployee {
		claims["feature_access"] = p.FeatureAccess
	}

	_, tokenString, err := j.tokenAuth.Encode(claims)
	return tokenString, expiresAt, err
}

// ParseAccessToken verifies signature, expiry and token type, and rebuilds
// the principal from claims.
func (j *JWTService) ParseAccessToken(tokenString string) (Principal, error) {
	token, err := jwtauth.VerifyToken(j.tokenAuth, tokenString)
	if err != nil {
		return Principal{}, err
	}
	return PrincipalFromToken(token)
}

// PrincipalFromToken rebuilds a Principal from a verified token.
func PrincipalFromToken(token jwt.Token) (Principal, error) {
	tokenType, ok := token.Get("type")
	if !ok || tokenType != "access" {
		return Principal{}, jwt.ErrInvalidJWT()
	}

	p := Principal{ID: token.Subject()}

	roleVal, ok := token.Get("role")
	if !ok {
		return Principal{}, jwt.ErrInvalidJWT()
	}
	if p.Role, ok = roleVal.(string); !ok {
		return Principal{}, jwt.ErrInvalidJWT()
	}

	unitVal, ok := token.Get("unit_id")
	if !ok {
		return Principal{}, jwt.ErrInvalidJWT()
	}
	if p.UnitID, ok = unitVal.(string); !ok {
		return Principal{}, jwt.ErrInvalidJWT()
	}

	if featVal, ok := token.Get("feature_access"); ok {
		if items, ok := featVal.([]interface{}); ok {
			for _, item := range items {
				if s, ok := item.(string); ok {
					p.FeatureAccess = append(p.FeatureAccess, s)
				}
			}
		}
	}

	return p, nil
}

// PrincipalFromClaims rebuilds a Principal from a claim map, as produced by
// jwtauth.FromContext.
func PrincipalFromClaims(claims map[string]interface{}) (Principal, bool) {
	tokenType, _ := claims["type"].(string)
	if tokenType != "access" {
		return Principal{}, false
	}
	id, ok := claims["sub"].(string)
	if !ok || id == "" {
		return Principal{}, false
	}
	role, ok := claims["role"].(string)
	if !ok {
		return Principal{}, false
	}
	unitID, ok := claims["unit_id"].(string)
	if !ok {
		return Principal{}, false
	}

	p := Principal{ID: id, Role: role, UnitID: unitID}
	if items, ok := claims["feature_access"].([]interface{}); ok {
		for _, item := range items {
			if s, ok := item.(string); ok {
				p.FeatureAccess = append(p.FeatureAccess, s)
			}
		}
	}
	return p, true
}

// AuthCookie returns the cookie set on successful login and refresh.
func (j *JWTService) AuthCookie(token string, expiresAt int64) *http.Cookie {
	return &http.Cookie{
		Name:     AuthCookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Unix(expiresAt, 0),
		HttpOnly: true,
		Secure:   false,
		SameSite: http.SameSiteStrictMode,
	}
}
