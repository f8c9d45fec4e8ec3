package auth

import "context"

type Service interface {
	AdminLogin(ctx context.Context, req AdminLoginRequest) (AdminLoginResponse, error)
	EmployeeLogin(ctx context.Context, req EmployeeLoginRequest) (EmployeeLoginResponse, error)
	CustomerLogin(ctx context.Context, req CustomerLoginRequest) (CustomerLoginResponse, error)
	// Refresh re-signs the presented token with a fresh issue time,
	// re-reading employee feature access from storage.
	Refresh(ctx context.Context, token string) (TokenResponse, error)
	// ForgotPassword never reveals whether the email exists.
	ForgotPassword(ctx context.Context, req ForgotPasswordRequest) error
	ResetPassword(ctx context.Context, req ResetPasswordRequest) error
}
