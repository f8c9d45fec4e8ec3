package employee

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/serviceportals/ops-backend-go/internal/domain/employee"
	"github.com/serviceportals/ops-backend-go/internal/pkg/jwt"
)

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
	statuses  map[string][]employee.Status
}

func newFakeEmployeeRepo(employees ...employee.Employee) *fakeEmployeeRepo {
	f := &fakeEmployeeRepo{employees: map[string]employee.Employee{}, statuses: map[string][]employee.Status{}}
	for _, e := range employees {
		f.employees[e.ID] = e
	}
	return f
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	e.ID = "emp-new"
	f.employees[e.ID] = e
	return e, nil
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string, unitID string) (employee.Employee, error) {
	if e, ok := f.employees[id]; ok && e.UnitID == unitID {
		return e, nil
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) GetByName(ctx context.Context, name string, unitID string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) GetByUnitID(ctx context.Context, unitID string) ([]employee.Employee, error) {
	return nil, nil
}

func (f *fakeEmployeeRepo) ListNames(ctx context.Context) ([]employee.PublicListing, error) {
	return nil, nil
}

func (f *fakeEmployeeRepo) Update(ctx context.Context, e employee.Employee) error {
	f.employees[e.ID] = e
	return nil
}

func (f *fakeEmployeeRepo) UpdateStatus(ctx context.Context, id string, status employee.Status) error {
	f.statuses[id] = append(f.statuses[id], status)
	return nil
}

func (f *fakeEmployeeRepo) UpdateFeatureAccess(ctx context.Context, id string, features []string) error {
	return nil
}

func (f *fakeEmployeeRepo) Delete(ctx context.Context, id string, unitID string) error { return nil }

func TestUpdateStatus_AdminFlipsAnyEmployee(t *testing.T) {
	repo := newFakeEmployeeRepo(employee.Employee{ID: "emp-1", UnitID: "unit-a", Status: employee.StatusAvailable})
	svc := NewEmployeeService(repo)

	admin := jwt.Principal{ID: "admin-1", Role: jwt.RoleAdmin, UnitID: "unit-a"}
	err := svc.UpdateStatus(context.Background(), admin, "emp-1", "unavailable")
	require.NoError(t, err)
	assert.Equal(t, []employee.Status{employee.StatusUnavailable}, repo.statuses["emp-1"])
}

func TestUpdateStatus_EmployeeFlipsOnlyThemself(t *testing.T) {
	repo := newFakeEmployeeRepo(
		employee.Employee{ID: "emp-1", UnitID: "unit-a"},
		employee.Employee{ID: "emp-2", UnitID: "unit-a"},
	)
	svc := NewEmployeeService(repo)

	self := jwt.Principal{ID: "emp-1", Role: jwt.RoleEmployee, UnitID: "unit-a"}
	require.NoError(t, svc.UpdateStatus(context.Background(), self, "emp-1", "unavailable"))

	err := svc.UpdateStatus(context.Background(), self, "emp-2", "unavailable")
	assert.ErrorIs(t, err, employee.ErrStatusForbidden)
	assert.Empty(t, repo.statuses["emp-2"])
}

func TestUpdateStatus_CustomerIsRejected(t *testing.T) {
	repo := newFakeEmployeeRepo(employee.Employee{ID: "emp-1", UnitID: "unit-a"})
	svc := NewEmployeeService(repo)

	cust := jwt.Principal{ID: "cust-1", Role: jwt.RoleCustomer, UnitID: "unit-a"}
	err := svc.UpdateStatus(context.Background(), cust, "emp-1", "available")
	assert.ErrorIs(t, err, employee.ErrStatusForbidden)
	assert.Empty(t, repo.statuses["emp-1"])
}

func TestUpdateStatus_InvalidStatus(t *testing.T) {
	repo := newFakeEmployeeRepo(employee.Employee{ID: "emp-1", UnitID: "unit-a"})
	svc := NewEmployeeService(repo)

	admin := jwt.Principal{ID: "admin-1", Role: jwt.RoleAdmin, UnitID: "unit-a"}
	err := svc.UpdateStatus(context.Background(), admin, "emp-1", "on-break")
	assert.ErrorIs(t, err, employee.ErrInvalidStatus)
}

func TestUpdateStatus_UnknownEmployee(t *testing.T) {
	svc := NewEmployeeService(newFakeEmployeeRepo())

	admin := jwt.Principal{ID: "admin-1", Role: jwt.RoleAdmin, UnitID: "unit-a"}
	err := svc.UpdateStatus(context.Background(), admin, "emp-missing", "available")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestCreate_NewEmployeeStartsAvailable(t *testing.T) {
	repo := newFakeEmployeeRepo()
	svc := NewEmployeeService(repo)

	emp, err := svc.Create(context.Background(), "unit-a", employee.CreateEmployeeRequest{
		Name:     "Dana",
		Email:    "dana@example.com",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)
	assert.Equal(t, employee.StatusAvailable, emp.Status)
	assert.NotEqual(t, "s3cret-pass", emp.PasswordHash)
	assert.NotNil(t, emp.FeatureAccess)
}
