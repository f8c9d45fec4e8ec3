package auth

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/serviceportals/ops-backend-go/internal/config"
	"github.com/serviceportals/ops-backend-go/internal/domain/admin"
	"github.com/serviceportals/ops-backend-go/internal/domain/auth"
	"github.com/serviceportals/ops-backend-go/internal/domain/customer"
	"github.com/serviceportals/ops-backend-go/internal/domain/employee"
	"github.com/serviceportals/ops-backend-go/internal/domain/unit"
	"github.com/serviceportals/ops-backend-go/internal/pkg/email"
	"github.com/serviceportals/ops-backend-go/internal/pkg/jwt"
)

type AuthServiceImpl struct {
	cfg       config.AuthConfig
	units     unit.Repository
	admins    admin.Repository
	employees employee.Repository
	customers customer.Repository
	jwt       jwt.Service
	mailer    email.Service
}

func NewAuthService(
	cfg config.AuthConfig,
	units unit.Repository,
	admins admin.Repository,
	employees employee.Repository,
	customers customer.Repository,
	jwtService jwt.Service,
	mailer email.Service,
) auth.Service {
	return &AuthServiceImpl{
		cfg:       cfg,
		units:     units,
		admins:    admins,
		employees: employees,
		customers: customers,
		jwt:       jwtService,
		mailer:    mailer,
	}
}

// AdminLogin implements auth.Service. The configured master password
// authenticates as any unit's admin.
func (a *AuthServiceImpl) AdminLogin(ctx context.Context, req auth.AdminLoginRequest) (auth.AdminLoginResponse, error) {
	unitData, err := a.units.GetByCode(ctx, req.BusinessUnit)
	if err != nil {
		if errors.Is(err, unit.ErrUnitNotFound) {
			return auth.AdminLoginResponse{}, auth.ErrUnitNotFound
		}
		return auth.AdminLoginResponse{}, fmt.Errorf("failed to get business unit: %w", err)
	}

	adminData, err := a.admins.GetByUnitID(ctx, unitData.ID)
	if err != nil {
		if errors.Is(err, admin.ErrAdminNotFound) {
			return auth.AdminLoginResponse{}, auth.ErrInvalidCredentials
		}
		return auth.AdminLoginResponse{}, fmt.Errorf("failed to get admin: %w", err)
	}

	if !a.isMasterPassword(req.Password) {
		if err := bcrypt.CompareHashAndPassword([]byte(adminData.PasswordHash), []byte(req.Password)); err != nil {
			return auth.AdminLoginResponse{}, auth.ErrInvalidCredentials
		}
	}

	token, expiresAt, err := a.jwt.GenerateAccessToken(jwt.Principal{
		ID:     adminData.ID,
		Role:   jwt.RoleAdmin,
		UnitID: unitData.ID,
	})
	if err != nil {
		return auth.AdminLoginResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}

	return auth.AdminLoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		Admin: auth.AdminResponse{
			ID:           adminData.ID,
			BusinessUnit: unitData.Code,
			Name:         adminData.Name,
			Email:        adminData.Email,
		},
	}, nil
}

func (a *AuthServiceImpl) isMasterPassword(password string) bool {
	return a.cfg.MasterPassword != "" && password == a.cfg.MasterPassword
}

// EmployeeLogin implements auth.Service. An empty business unit falls
// back to a cross-unit first-match name search.
func (a *AuthServiceImpl) EmployeeLogin(ctx context.Context, req auth.EmployeeLoginRequest) (auth.EmployeeLoginResponse, error) {
	unitID := ""
	if req.BusinessUnit != "" {
		unitData, err := a.units.GetByCode(ctx, req.BusinessUnit)
		if err != nil {
			if errors.Is(err, unit.ErrUnitNotFound) {
				return auth.EmployeeLoginResponse{}, auth.ErrUnitNotFound
			}
			return auth.EmployeeLoginResponse{}, fmt.Errorf("failed to get business unit: %w", err)
		}
		unitID = unitData.ID
	}

	employeeData, err := a.employees.GetByName(ctx, req.Name, unitID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return auth.EmployeeLoginResponse{}, auth.ErrInvalidCredentials
		}
		return auth.EmployeeLoginResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(employeeData.PasswordHash), []byte(req.Password)); err != nil {
		return auth.EmployeeLoginResponse{}, auth.ErrInvalidCredentials
	}

	token, expiresAt, err := a.jwt.GenerateAccessToken(jwt.Principal{
		ID:            employeeData.ID,
		Role:          jwt.RoleEmployee,
		UnitID:        employeeData.UnitID,
		FeatureAccess: employeeData.FeatureAccess,
	})
	if err != nil {
		return auth.EmployeeLoginResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}

	return auth.EmployeeLoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		Employee:  employee.ToResponse(employeeData),
	}, nil
}

// CustomerLogin implements auth.Service.
func (a *AuthServiceImpl) CustomerLogin(ctx context.Context, req auth.CustomerLoginRequest) (auth.CustomerLoginResponse, error) {
	unitData, err := a.units.GetByCode(ctx, req.BusinessUnit)
	if err != nil {
		if errors.Is(err, unit.ErrUnitNotFound) {
			return auth.CustomerLoginResponse{}, auth.ErrUnitNotFound
		}
		return auth.CustomerLoginResponse{}, fmt.Errorf("failed to get business unit: %w", err)
	}

	customerData, err := a.customers.GetByEmail(ctx, req.Identifier, unitData.ID)
	if err != nil {
		if errors.Is(err, customer.ErrCustomerNotFound) {
			return auth.CustomerLoginResponse{}, auth.ErrInvalidCredentials
		}
		return auth.CustomerLoginResponse{}, fmt.Errorf("failed to get customer: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(customerData.PasswordHash), []byte(req.Password)); err != nil {
		return auth.CustomerLoginResponse{}, auth.ErrInvalidCredentials
	}

	token, expiresAt, err := a.jwt.GenerateAccessToken(jwt.Principal{
		ID:     customerData.ID,
		Role:   jwt.RoleCustomer,
		UnitID: customerData.UnitID,
	})
	if err != nil {
		return auth.CustomerLoginResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}

	return auth.CustomerLoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		Customer:  customer.ToResponse(customerData),
	}, nil
}

// Refresh implements auth.Service. Employee feature access is re-read
// from storage so revocations take effect on the next refresh.
func (a *AuthServiceImpl) Refresh(ctx context.Context, token string) (auth.TokenResponse, error) {
	principal, err := a.jwt.ParseAccessToken(token)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	if principal.Role == jwt.RoleEmployee {
		employeeData, err := a.employees.GetByID(ctx, principal.ID, principal.UnitID)
		if err != nil {
			if errors.Is(err, employee.ErrEmployeeNotFound) {
				return auth.TokenResponse{}, auth.ErrInvalidToken
			}
			return auth.TokenResponse{}, fmt.Errorf("failed to get employee: %w", err)
		}
		principal.FeatureAccess = employeeData.FeatureAccess
	}

	newToken, expiresAt, err := a.jwt.GenerateAccessToken(principal)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}

	return auth.TokenResponse{Token: newToken, ExpiresAt: expiresAt}, nil
}

// ForgotPassword implements auth.Service. The response is identical
// whether or not the email is known, so accounts cannot be enumerated.
func (a *AuthServiceImpl) ForgotPassword(ctx context.Context, req auth.ForgotPasswordRequest) error {
	customerData, err := a.customers.GetByEmailAnyUnit(ctx, req.Email)
	if err != nil {
		if errors.Is(err, customer.ErrCustomerNotFound) {
			return nil
		}
		return fmt.Errorf("failed to get customer: %w", err)
	}

	otp := fmt.Sprintf("%06d", rand.Intn(1000000))

	expiry, err := time.ParseDuration(a.cfg.OTPExpiration)
	if err != nil {
		expiry = 15 * time.Minute
	}
	expiresAt := time.Now().Add(expiry)

	if err := a.customers.SetResetOTP(ctx, customerData.ID, otp, expiresAt); err != nil {
		return fmt.Errorf("failed to store reset code: %w", err)
	}

	err = a.mailer.SendResetOTP(customerData.Email, otp, expiresAt.Format(time.RFC1123))
	if err != nil {
		if errors.Is(err, email.ErrNotConfigured) {
			return auth.ErrSMTPNotConfigured
		}
		return fmt.Errorf("failed to send reset code: %w", err)
	}

	return nil
}

// ResetPassword implements auth.Service. The stored hash is only
// replaced after an exact, unexpired code match.
func (a *AuthServiceImpl) ResetPassword(ctx context.Context, req auth.ResetPasswordRequest) error {
	customerData, err := a.customers.GetByEmailAnyUnit(ctx, req.Email)
	if err != nil {
		if errors.Is(err, customer.ErrCustomerNotFound) {
			return auth.ErrInvalidOTP
		}
		return fmt.Errorf("failed to get customer: %w", err)
	}

	if customerData.ResetOTP == nil || customerData.ResetOTPExp == nil {
		return auth.ErrInvalidOTP
	}
	if *customerData.ResetOTP != req.OTP || time.Now().After(*customerData.ResetOTPExp) {
		return auth.ErrInvalidOTP
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := a.customers.ResetPassword(ctx, customerData.ID, string(hash)); err != nil {
		return fmt.Errorf("failed to reset password: %w", err)
	}

	return nil
}
