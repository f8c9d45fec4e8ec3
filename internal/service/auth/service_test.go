package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/serviceportals/ops-backend-go/internal/config"
	"github.com/serviceportals/ops-backend-go/internal/domain/admin"
	"github.com/serviceportals/ops-backend-go/internal/domain/auth"
	"github.com/serviceportals/ops-backend-go/internal/domain/customer"
	"github.com/serviceportals/ops-backend-go/internal/domain/employee"
	"github.com/serviceportals/ops-backend-go/internal/domain/unit"
	"github.com/serviceportals/ops-backend-go/internal/pkg/jwt"
)

const testSecret = "test-secret-key-for-jwt"

type fakeUnitRepo struct {
	units map[string]unit.BusinessUnit // keyed by code
}

func (f *fakeUnitRepo) Create(ctx context.Context, u unit.BusinessUnit) (unit.BusinessUnit, error) {
	return u, nil
}

func (f *fakeUnitRepo) GetByID(ctx context.Context, id string) (unit.BusinessUnit, error) {
	for _, u := range f.units {
		if u.ID == id {
			return u, nil
		}
	}
	return unit.BusinessUnit{}, unit.ErrUnitNotFound
}

func (f *fakeUnitRepo) GetByCode(ctx context.Context, code string) (unit.BusinessUnit, error) {
	if u, ok := f.units[code]; ok {
		return u, nil
	}
	return unit.BusinessUnit{}, unit.ErrUnitNotFound
}

func (f *fakeUnitRepo) List(ctx context.Context) ([]unit.BusinessUnit, error) {
	var out []unit.BusinessUnit
	for _, u := range f.units {
		out = append(out, u)
	}
	return out, nil
}

type fakeAdminRepo struct {
	admins map[string]admin.Admin // keyed by unit ID
}

func (f *fakeAdminRepo) Create(ctx context.Context, a admin.Admin) (admin.Admin, error) {
	f.admins[a.UnitID] = a
	return a, nil
}

func (f *fakeAdminRepo) GetByID(ctx context.Context, id string) (admin.Admin, error) {
	for _, a := range f.admins {
		if a.ID == id {
			return a, nil
		}
	}
	return admin.Admin{}, admin.ErrAdminNotFound
}

func (f *fakeAdminRepo) GetByUnitID(ctx context.Context, unitID string) (admin.Admin, error) {
	if a, ok := f.admins[unitID]; ok {
		return a, nil
	}
	return admin.Admin{}, admin.ErrAdminNotFound
}

func (f *fakeAdminRepo) UpdatePassword(ctx context.Context, id string, passwordHash string) error {
	return nil
}

type fakeEmployeeRepo struct {
	employees []employee.Employee
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	f.employees = append(f.employees, e)
	return e, nil
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string, unitID string) (employee.Employee, error) {
	for _, e := range f.employees {
		if e.ID == id && e.UnitID == unitID {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) GetByName(ctx context.Context, name string, unitID string) (employee.Employee, error) {
	for _, e := range f.employees {
		if e.Name == name && (unitID == "" || e.UnitID == unitID) {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) GetByUnitID(ctx context.Context, unitID string) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, e := range f.employees {
		if e.UnitID == unitID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeEmployeeRepo) ListNames(ctx context.Context) ([]employee.PublicListing, error) {
	return nil, nil
}

func (f *fakeEmployeeRepo) Update(ctx context.Context, e employee.Employee) error { return nil }

func (f *fakeEmployeeRepo) UpdateStatus(ctx context.Context, id string, status employee.Status) error {
	return nil
}

func (f *fakeEmployeeRepo) UpdateFeatureAccess(ctx context.Context, id string, features []string) error {
	return nil
}

func (f *fakeEmployeeRepo) Delete(ctx context.Context, id string, unitID string) error { return nil }

type fakeCustomerRepo struct {
	customers map[string]customer.Customer // keyed by ID

	otpSet        bool
	storedOTP     string
	resetCalled   bool
	storedNewHash string
}

func (f *fakeCustomerRepo) Create(ctx context.Context, c customer.Customer) (customer.Customer, error) {
	f.customers[c.ID] = c
	return c, nil
}

func (f *fakeCustomerRepo) GetByID(ctx context.Context, id string, unitID string) (customer.Customer, error) {
	if c, ok := f.customers[id]; ok && c.UnitID == unitID {
		return c, nil
	}
	return customer.Customer{}, customer.ErrCustomerNotFound
}

func (f *fakeCustomerRepo) GetByEmail(ctx context.Context, email string, unitID string) (customer.Customer, error) {
	for _, c := range f.customers {
		if c.Email == email && c.UnitID == unitID {
			return c, nil
		}
	}
	return customer.Customer{}, customer.ErrCustomerNotFound
}

func (f *fakeCustomerRepo) GetByEmailAnyUnit(ctx context.Context, email string) (customer.Customer, error) {
	for _, c := range f.customers {
		if c.Email == email {
			return c, nil
		}
	}
	return customer.Customer{}, customer.ErrCustomerNotFound
}

func (f *fakeCustomerRepo) GetByUnitID(ctx context.Context, unitID string) ([]customer.Customer, error) {
	return nil, nil
}

func (f *fakeCustomerRepo) Update(ctx context.Context, c customer.Customer) error { return nil }

func (f *fakeCustomerRepo) SetResetOTP(ctx context.Context, id string, otp string, expiresAt time.Time) error {
	f.otpSet = true
	f.storedOTP = otp
	if c, ok := f.customers[id]; ok {
		c.ResetOTP = &otp
		exp := expiresAt
		c.ResetOTPExp = &exp
		f.customers[id] = c
	}
	return nil
}

func (f *fakeCustomerRepo) ResetPassword(ctx context.Context, id string, passwordHash string) error {
	f.resetCalled = true
	f.storedNewHash = passwordHash
	if c, ok := f.customers[id]; ok {
		c.PasswordHash = passwordHash
		c.ResetOTP = nil
		c.ResetOTPExp = nil
		f.customers[id] = c
	}
	return nil
}

func (f *fakeCustomerRepo) Delete(ctx context.Context, id string, unitID string) error { return nil }

type fakeMailer struct {
	otpSentTo string
	otpValue  string
}

func (f *fakeMailer) SendResetOTP(to, otp, expiresAt string) error {
	f.otpSentTo = to
	f.otpValue = otp
	return nil
}

func (f *fakeMailer) SendWorkOrderSubmitted(to, customerName, workOrderID, completionDate string) error {
	return nil
}

func hashOf(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err)
	return string(hash)
}

func newTestService(t *testing.T, units *fakeUnitRepo, admins *fakeAdminRepo, employees *fakeEmployeeRepo, customers *fakeCustomerRepo) (auth.Service, jwt.Service) {
	t.Helper()
	jwtService := jwt.NewJWTService(testSecret, "1h")
	cfg := config.AuthConfig{MasterPassword: "Printersuae@2025", OTPExpiration: "15m"}
	svc := NewAuthService(cfg, units, admins, employees, customers, jwtService, &fakeMailer{})
	return svc, jwtService
}

func TestAdminLogin_MasterPassword(t *testing.T) {
	ctx := context.Background()
	units := &fakeUnitRepo{units: map[string]unit.BusinessUnit{
		"G3": {ID: "unit-g3", Code: "G3", Name: "G3 Services"},
	}}
	admins := &fakeAdminRepo{admins: map[string]admin.Admin{
		"unit-g3": {ID: "admin-1", UnitID: "unit-g3", Name: "G3 Admin", Email: "admin@g3.example", PasswordHash: hashOf(t, "some-other-password")},
	}}
	svc, jwtService := newTestService(t, units, admins, &fakeEmployeeRepo{}, &fakeCustomerRepo{customers: map[string]customer.Customer{}})

	resp, err := svc.AdminLogin(ctx, auth.AdminLoginRequest{BusinessUnit: "G3", Password: "Printersuae@2025"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "G3", resp.Admin.BusinessUnit)
	assert.Equal(t, "admin-1", resp.Admin.ID)

	principal, err := jwtService.ParseAccessToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, jwt.RoleAdmin, principal.Role)
	assert.Equal(t, "unit-g3", principal.UnitID)
}

func TestAdminLogin_OwnPassword(t *testing.T) {
	ctx := context.Background()
	units := &fakeUnitRepo{units: map[string]unit.BusinessUnit{
		"G3": {ID: "unit-g3", Code: "G3"},
	}}
	admins := &fakeAdminRepo{admins: map[string]admin.Admin{
		"unit-g3": {ID: "admin-1", UnitID: "unit-g3", PasswordHash: hashOf(t, "own-password-123")},
	}}
	svc, _ := newTestService(t, units, admins, &fakeEmployeeRepo{}, &fakeCustomerRepo{customers: map[string]customer.Customer{}})

	_, err := svc.AdminLogin(ctx, auth.AdminLoginRequest{BusinessUnit: "G3", Password: "own-password-123"})
	assert.NoError(t, err)
}

func TestAdminLogin_WrongPassword(t *testing.T) {
	ctx := context.Background()
	units := &fakeUnitRepo{units: map[string]unit.BusinessUnit{
		"G3": {ID: "unit-g3", Code: "G3"},
	}}
	admins := &fakeAdminRepo{admins: map[string]admin.Admin{
		"unit-g3": {ID: "admin-1", UnitID: "unit-g3", PasswordHash: hashOf(t, "own-password-123")},
	}}
	svc, _ := newTestService(t, units, admins, &fakeEmployeeRepo{}, &fakeCustomerRepo{customers: map[string]customer.Customer{}})

	_, err := svc.AdminLogin(ctx, auth.AdminLoginRequest{BusinessUnit: "G3", Password: "nope"})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestAdminLogin_UnknownUnit(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t,
		&fakeUnitRepo{units: map[string]unit.BusinessUnit{}},
		&fakeAdminRepo{admins: map[string]admin.Admin{}},
		&fakeEmployeeRepo{},
		&fakeCustomerRepo{customers: map[string]customer.Customer{}},
	)

	_, err := svc.AdminLogin(ctx, auth.AdminLoginRequest{BusinessUnit: "NOPE", Password: "Printersuae@2025"})
	assert.ErrorIs(t, err, auth.ErrUnitNotFound)
}

func TestEmployeeLogin_CrossUnitFallback(t *testing.T) {
	ctx := context.Background()
	employees := &fakeEmployeeRepo{employees: []employee.Employee{
		{ID: "emp-1", UnitID: "unit-a", Name: "Dana", PasswordHash: hashOf(t, "password123"), FeatureAccess: []string{"payroll"}},
	}}
	svc, jwtService := newTestService(t,
		&fakeUnitRepo{units: map[string]unit.BusinessUnit{}},
		&fakeAdminRepo{admins: map[string]admin.Admin{}},
		employees,
		&fakeCustomerRepo{customers: map[string]customer.Customer{}},
	)

	resp, err := svc.EmployeeLogin(ctx, auth.EmployeeLoginRequest{Name: "Dana", Password: "password123"})
	require.NoError(t, err)
	assert.Equal(t, "emp-1", resp.Employee.ID)

	principal, err := jwtService.ParseAccessToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, jwt.RoleEmployee, principal.Role)
	assert.Equal(t, "unit-a", principal.UnitID)
	assert.Equal(t, []string{"payroll"}, principal.FeatureAccess)
}

func TestEmployeeLogin_WrongPassword(t *testing.T) {
	ctx := context.Background()
	employees := &fakeEmployeeRepo{employees: []employee.Employee{
		{ID: "emp-1", UnitID: "unit-a", Name: "Dana", PasswordHash: hashOf(t, "password123")},
	}}
	svc, _ := newTestService(t,
		&fakeUnitRepo{units: map[string]unit.BusinessUnit{}},
		&fakeAdminRepo{admins: map[string]admin.Admin{}},
		employees,
		&fakeCustomerRepo{customers: map[string]customer.Customer{}},
	)

	_, err := svc.EmployeeLogin(ctx, auth.EmployeeLoginRequest{Name: "Dana", Password: "wrong"})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestEmployeeLogin_UnknownName(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t,
		&fakeUnitRepo{units: map[string]unit.BusinessUnit{}},
		&fakeAdminRepo{admins: map[string]admin.Admin{}},
		&fakeEmployeeRepo{},
		&fakeCustomerRepo{customers: map[string]customer.Customer{}},
	)

	_, err := svc.EmployeeLogin(ctx, auth.EmployeeLoginRequest{Name: "Nobody", Password: "whatever"})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestForgotPassword_UnknownEmailIsSilent(t *testing.T) {
	ctx := context.Background()
	customers := &fakeCustomerRepo{customers: map[string]customer.Customer{}}
	svc, _ := newTestService(t,
		&fakeUnitRepo{units: map[string]unit.BusinessUnit{}},
		&fakeAdminRepo{admins: map[string]admin.Admin{}},
		&fakeEmployeeRepo{},
		customers,
	)

	err := svc.ForgotPassword(ctx, auth.ForgotPasswordRequest{Email: "nobody@example.com"})
	assert.NoError(t, err)
	assert.False(t, customers.otpSet)
}

func TestForgotPassword_StoresOTPAndSendsEmail(t *testing.T) {
	ctx := context.Background()
	customers := &fakeCustomerRepo{customers: map[string]customer.Customer{
		"cust-1": {ID: "cust-1", UnitID: "unit-a", Email: "jane@example.com", PasswordHash: hashOf(t, "password123")},
	}}
	mailer := &fakeMailer{}
	jwtService := jwt.NewJWTService(testSecret, "1h")
	cfg := config.AuthConfig{OTPExpiration: "15m"}
	svc := NewAuthService(cfg,
		&fakeUnitRepo{units: map[string]unit.BusinessUnit{}},
		&fakeAdminRepo{admins: map[string]admin.Admin{}},
		&fakeEmployeeRepo{},
		customers, jwtService, mailer)

	err := svc.ForgotPassword(ctx, auth.ForgotPasswordRequest{Email: "jane@example.com"})
	require.NoError(t, err)
	assert.True(t, customers.otpSet)
	assert.Len(t, customers.storedOTP, 6)
	assert.Equal(t, "jane@example.com", mailer.otpSentTo)
	assert.Equal(t, customers.storedOTP, mailer.otpValue)
}

func TestResetPassword_WrongOTPLeavesHashUnchanged(t *testing.T) {
	ctx := context.Background()
	otp := "123456"
	exp := time.Now().Add(10 * time.Minute)
	customers := &fakeCustomerRepo{customers: map[string]customer.Customer{
		"cust-1": {ID: "cust-1", Email: "jane@example.com", PasswordHash: hashOf(t, "old-password"), ResetOTP: &otp, ResetOTPExp: &exp},
	}}
	svc, _ := newTestService(t,
		&fakeUnitRepo{units: map[string]unit.BusinessUnit{}},
		&fakeAdminRepo{admins: map[string]admin.Admin{}},
		&fakeEmployeeRepo{},
		customers,
	)

	err := svc.ResetPassword(ctx, auth.ResetPasswordRequest{Email: "jane@example.com", OTP: "654321", NewPassword: "new-password-1"})
	assert.ErrorIs(t, err, auth.ErrInvalidOTP)
	assert.False(t, customers.resetCalled)
}

func TestResetPassword_ExpiredOTP(t *testing.T) {
	ctx := context.Background()
	otp := "123456"
	exp := time.Now().Add(-time.Minute)
	customers := &fakeCustomerRepo{customers: map[string]customer.Customer{
		"cust-1": {ID: "cust-1", Email: "jane@example.com", PasswordHash: hashOf(t, "old-password"), ResetOTP: &otp, ResetOTPExp: &exp},
	}}
	svc, _ := newTestService(t,
		&fakeUnitRepo{units: map[string]unit.BusinessUnit{}},
		&fakeAdminRepo{admins: map[string]admin.Admin{}},
		&fakeEmployeeRepo{},
		customers,
	)

	err := svc.ResetPassword(ctx, auth.ResetPasswordRequest{Email: "jane@example.com", OTP: "123456", NewPassword: "new-password-1"})
	assert.ErrorIs(t, err, auth.ErrInvalidOTP)
	assert.False(t, customers.resetCalled)
}

func TestResetPassword_Success(t *testing.T) {
	ctx := context.Background()
	otp := "123456"
	exp := time.Now().Add(10 * time.Minute)
	customers := &fakeCustomerRepo{customers: map[string]customer.Customer{
		"cust-1": {ID: "cust-1", Email: "jane@example.com", PasswordHash: hashOf(t, "old-password"), ResetOTP: &otp, ResetOTPExp: &exp},
	}}
	svc, _ := newTestService(t,
		&fakeUnitRepo{units: map[string]unit.BusinessUnit{}},
		&fakeAdminRepo{admins: map[string]admin.Admin{}},
		&fakeEmployeeRepo{},
		customers,
	)

	err := svc.ResetPassword(ctx, auth.ResetPasswordRequest{Email: "jane@example.com", OTP: "123456", NewPassword: "new-password-1"})
	require.NoError(t, err)
	require.True(t, customers.resetCalled)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(customers.storedNewHash), []byte("new-password-1")))
}

func TestRefresh_ReloadsEmployeeFeatureAccess(t *testing.T) {
	ctx := context.Background()
	employees := &fakeEmployeeRepo{employees: []employee.Employee{
		{ID: "emp-1", UnitID: "unit-a", Name: "Dana", PasswordHash: hashOf(t, "password123"), FeatureAccess: []string{"payroll"}},
	}}
	svc, jwtService := newTestService(t,
		&fakeUnitRepo{units: map[string]unit.BusinessUnit{}},
		&fakeAdminRepo{admins: map[string]admin.Admin{}},
		employees,
		&fakeCustomerRepo{customers: map[string]customer.Customer{}},
	)

	login, err := svc.EmployeeLogin(ctx, auth.EmployeeLoginRequest{Name: "Dana", Password: "password123"})
	require.NoError(t, err)

	// Revoke the payroll grant, then refresh.
	employees.employees[0].FeatureAccess = []string{"tickets"}

	refreshed, err := svc.Refresh(ctx, login.Token)
	require.NoError(t, err)

	principal, err := jwtService.ParseAccessToken(refreshed.Token)
	require.NoError(t, err)
	assert.Equal(t, []string{"tickets"}, principal.FeatureAccess)
}

func TestRefresh_RejectsGarbageToken(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t,
		&fakeUnitRepo{units: map[string]unit.BusinessUnit{}},
		&fakeAdminRepo{admins: map[string]admin.Admin{}},
		&fakeEmployeeRepo{},
		&fakeCustomerRepo{customers: map[string]customer.Customer{}},
	)

	_, err := svc.Refresh(ctx, "not-a-token")
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}
