package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/serviceportals/ops-backend-go/internal/domain/auth"
	"github.com/serviceportals/ops-backend-go/internal/handler/http/response"
	"github.com/serviceportals/ops-backend-go/internal/pkg/jwt"
)

type AuthHandler interface {
	AdminLogin(w http.ResponseWriter, r *http.Request)
	EmployeeLogin(w http.ResponseWriter, r *http.Request)
	CustomerLogin(w http.ResponseWriter, r *http.Request)
	Refresh(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
	ForgotPassword(w http.ResponseWriter, r *http.Request)
	ResetPassword(w http.ResponseWriter, r *http.Request)
}

type AuthHandlerImpl struct {
	jwtService  jwt.Service
	authService auth.Service
}

func NewAuthHandler(jwtService jwt.Service, authService auth.Service) AuthHandler {
	return &AuthHandlerImpl{
		jwtService:  jwtService,
		authService: authService,
	}
}

// AdminLogin implements AuthHandler.
func (h *AuthHandlerImpl) AdminLogin(w http.ResponseWriter, r *http.Request) {
	var loginReq auth.AdminLoginRequest

	if err := json.NewDecoder(r.Body).Decode(&loginReq); err != nil {
		slog.Error("AdminLogin decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := loginReq.Validate(); err != nil {
		slog.Error("AdminLogin validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	loginResp, err := h.authService.AdminLogin(r.Context(), loginReq)
	if err != nil {
		slog.Error("AdminLogin service error", "error", err, "business_unit", loginReq.BusinessUnit)
		response.HandleError(w, err)
		return
	}

	http.SetCookie(w, h.jwtService.AuthCookie(loginResp.Token, loginResp.ExpiresAt))
	response.SuccessWithMessage(w, "Login successful", loginResp)
}

// EmployeeLogin implements AuthHandler.
func (h *AuthHandlerImpl) EmployeeLogin(w http.ResponseWriter, r *http.Request) {
	var loginReq auth.EmployeeLoginRequest

	if err := json.NewDecoder(r.Body).Decode(&loginReq); err != nil {
		slog.Error("EmployeeLogin decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := loginReq.Validate(); err != nil {
		slog.Error("EmployeeLogin validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	loginResp, err := h.authService.EmployeeLogin(r.Context(), loginReq)
	if err != nil {
		slog.Error("EmployeeLogin service error", "error", err)
		response.HandleError(w, err)
		return
	}

	http.SetCookie(w, h.jwtService.AuthCookie(loginResp.Token, loginResp.ExpiresAt))
	response.SuccessWithMessage(w, "Login successful", loginResp)
}

// CustomerLogin implements AuthHandler.
func (h *AuthHandlerImpl) CustomerLogin(w http.ResponseWriter, r *http.Request) {
	var loginReq auth.CustomerLoginRequest

	if err := json.NewDecoder(r.Body).Decode(&loginReq); err != nil {
		slog.Error("CustomerLogin decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := loginReq.Validate(); err != nil {
		slog.Error("CustomerLogin validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	loginResp, err := h.authService.CustomerLogin(r.Context(), loginReq)
	if err != nil {
		slog.Error("CustomerLogin service error", "error", err)
		response.HandleError(w, err)
		return
	}

	http.SetCookie(w, h.jwtService.AuthCookie(loginResp.Token, loginResp.ExpiresAt))
	response.SuccessWithMessage(w, "Login successful", loginResp)
}

// Refresh implements AuthHandler. The current token is read from the auth
// cookie, falling back to the Authorization header.
func (h *AuthHandlerImpl) Refresh(w http.ResponseWriter, r *http.Request) {
	token := tokenFromRequest(r)
	if token == "" {
		response.Unauthorized(w, "Missing authentication token")
		return
	}

	tokenResp, err := h.authService.Refresh(r.Context(), token)
	if err != nil {
		slog.Error("Refresh service error", "error", err)
		response.HandleError(w, err)
		return
	}

	http.SetCookie(w, h.jwtService.AuthCookie(tokenResp.Token, tokenResp.ExpiresAt))
	response.SuccessWithMessage(w, "Token refreshed", tokenResp)
}

// Logout implements AuthHandler.
func (h *AuthHandlerImpl) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     jwt.AuthCookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	response.SuccessWithMessage(w, "Logged out", nil)
}

// ForgotPassword implements AuthHandler.
func (h *AuthHandlerImpl) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var forgotReq auth.ForgotPasswordRequest

	if err := json.NewDecoder(r.Body).Decode(&forgotReq); err != nil {
		slog.Error("ForgotPassword decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := forgotReq.Validate(); err != nil {
		slog.Error("ForgotPassword validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	if err := h.authService.ForgotPassword(r.Context(), forgotReq); err != nil {
		slog.Error("ForgotPassword service error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Identical response whether or not the email exists.
	response.SuccessWithMessage(w, "If the email is registered, a reset code has been sent", nil)
}

// ResetPassword implements AuthHandler.
func (h *AuthHandlerImpl) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var resetReq auth.ResetPasswordRequest

	if err := json.NewDecoder(r.Body).Decode(&resetReq); err != nil {
		slog.Error("ResetPassword decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := resetReq.Validate(); err != nil {
		slog.Error("ResetPassword validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	if err := h.authService.ResetPassword(r.Context(), resetReq); err != nil {
		slog.Error("ResetPassword service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Password has been reset successfully", nil)
}

func tokenFromRequest(r *http.Request) string {
	if cookie, err := r.Cookie(jwt.AuthCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	if header := r.Header.Get("Authorization"); strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}
