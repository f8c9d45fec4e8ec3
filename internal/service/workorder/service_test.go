package workorder

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/serviceportals/ops-backend-go/internal/domain/customer"
	"github.com/serviceportals/ops-backend-go/internal/domain/employee"
	"github.com/serviceportals/ops-backend-go/internal/domain/notification"
	"github.com/serviceportals/ops-backend-go/internal/domain/workorder"
	"github.com/serviceportals/ops-backend-go/internal/pkg/email"
	"github.com/serviceportals/ops-backend-go/internal/pkg/jwt"
)

type fakeOrderRepo struct {
	orders map[string]workorder.WorkOrder
	nextID int
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: map[string]workorder.WorkOrder{}}
}

func (f *fakeOrderRepo) Create(ctx context.Context, wo workorder.WorkOrder) (workorder.WorkOrder, error) {
	f.nextID++
	wo.ID = "wo-" + string(rune('0'+f.nextID))
	wo.CreatedAt = time.Now()
	wo.UpdatedAt = wo.CreatedAt
	f.orders[wo.ID] = wo
	return wo, nil
}

func (f *fakeOrderRepo) GetByID(ctx context.Context, id string, unitID string) (workorder.WorkOrder, error) {
	if wo, ok := f.orders[id]; ok && wo.UnitID == unitID {
		return wo, nil
	}
	return workorder.WorkOrder{}, workorder.ErrWorkOrderNotFound
}

func (f *fakeOrderRepo) List(ctx context.Context, unitID string, filter workorder.ListFilter) ([]workorder.WorkOrder, error) {
	var out []workorder.WorkOrder
	for _, wo := range f.orders {
		if wo.UnitID != unitID {
			continue
		}
		if filter.AssignedEmployeeID != "" && (wo.AssignedEmployeeID == nil || *wo.AssignedEmployeeID != filter.AssignedEmployeeID) {
			continue
		}
		if filter.CustomerID != "" && wo.CustomerID != filter.CustomerID {
			continue
		}
		out = append(out, wo)
	}
	return out, nil
}

func (f *fakeOrderRepo) Update(ctx context.Context, wo workorder.WorkOrder) error {
	if _, ok := f.orders[wo.ID]; !ok {
		return workorder.ErrWorkOrderNotFound
	}
	f.orders[wo.ID] = wo
	return nil
}

func (f *fakeOrderRepo) Delete(ctx context.Context, id string, unitID string) error {
	delete(f.orders, id)
	return nil
}

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

func (f *fakeEmployeeRepo) Update(ctx context.Context, e employee.Employee) error { return nil }

func (f *fakeEmployeeRepo) UpdateStatus(ctx context.Context, id string, status employee.Status) error {
	f.statuses[id] = append(f.statuses[id], status)
	if e, ok := f.employees[id]; ok {
		e.Status = status
		f.employees[id] = e
	}
	return nil
}

func (f *fakeEmployeeRepo) UpdateFeatureAccess(ctx context.Context, id string, features []string) error {
	return nil
}

func (f *fakeEmployeeRepo) Delete(ctx context.Context, id string, unitID string) error { return nil }

type fakeCustomerRepo struct {
	customers map[string]customer.Customer
}

func (f *fakeCustomerRepo) Create(ctx context.Context, c customer.Customer) (customer.Customer, error) {
	return c, nil
}

func (f *fakeCustomerRepo) GetByID(ctx context.Context, id string, unitID string) (customer.Customer, error) {
	if c, ok := f.customers[id]; ok && c.UnitID == unitID {
		return c, nil
	}
	return customer.Customer{}, customer.ErrCustomerNotFound
}

func (f *fakeCustomerRepo) GetByEmail(ctx context.Context, email string, unitID string) (customer.Customer, error) {
	return customer.Customer{}, customer.ErrCustomerNotFound
}

func (f *fakeCustomerRepo) GetByEmailAnyUnit(ctx context.Context, email string) (customer.Customer, error) {
	return customer.Customer{}, customer.ErrCustomerNotFound
}

func (f *fakeCustomerRepo) GetByUnitID(ctx context.Context, unitID string) ([]customer.Customer, error) {
	return nil, nil
}

func (f *fakeCustomerRepo) Update(ctx context.Context, c customer.Customer) error { return nil }

func (f *fakeCustomerRepo) SetResetOTP(ctx context.Context, id string, otp string, expiresAt time.Time) error {
	return nil
}

func (f *fakeCustomerRepo) ResetPassword(ctx context.Context, id string, passwordHash string) error {
	return nil
}

func (f *fakeCustomerRepo) Delete(ctx context.Context, id string, unitID string) error { return nil }

type fakeNotificationRepo struct {
	created []notification.Notification
}

func (f *fakeNotificationRepo) Create(ctx context.Context, n notification.Notification) (notification.Notification, error) {
	f.created = append(f.created, n)
	return n, nil
}

func (f *fakeNotificationRepo) GetByID(ctx context.Context, id string, unitID string) (notification.Notification, error) {
	return notification.Notification{}, notification.ErrNotificationNotFound
}

func (f *fakeNotificationRepo) ListUnread(ctx context.Context, unitID string, kinds []notification.Kind, limit int) ([]notification.Notification, error) {
	return nil, nil
}

func (f *fakeNotificationRepo) CountUnread(ctx context.Context, unitID string) (map[notification.Kind]int, error) {
	return nil, nil
}

func (f *fakeNotificationRepo) MarkRead(ctx context.Context, id string, unitID string) error {
	return nil
}

func (f *fakeNotificationRepo) MarkAllRead(ctx context.Context, unitID string, kind *notification.Kind) error {
	return nil
}

type fakeFileStorage struct{}

func (f *fakeFileStorage) Upload(ctx context.Context, file io.Reader, path string, contentType string) (string, error) {
	return path, nil
}

func (f *fakeFileStorage) Download(ctx context.Context, path string) (io.ReadCloser, error) {
	return nil, nil
}

func (f *fakeFileStorage) Delete(ctx context.Context, path string) error { return nil }

func (f *fakeFileStorage) GetURL(ctx context.Context, path string, expiry time.Duration) (string, error) {
	return "http://files.local/" + path, nil
}

func (f *fakeFileStorage) Exists(ctx context.Context, path string) (bool, error) { return true, nil }

type fakeMailer struct {
	submittedTo []string
	sendErr     error
}

func (f *fakeMailer) SendResetOTP(to, otp, expiresAt string) error { return nil }

func (f *fakeMailer) SendWorkOrderSubmitted(to, customerName, workOrderID, completionDate string) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.submittedTo = append(f.submittedTo, to)
	return nil
}

func strPtr(s string) *string { return &s }

func adminPrincipal() jwt.Principal {
	return jwt.Principal{ID: "admin-1", Role: jwt.RoleAdmin, UnitID: "unit-a"}
}

func setup(employees *fakeEmployeeRepo) (workorder.Service, *fakeOrderRepo, *fakeNotificationRepo, *fakeMailer) {
	orders := newFakeOrderRepo()
	notifications := &fakeNotificationRepo{}
	mailer := &fakeMailer{}
	customers := &fakeCustomerRepo{customers: map[string]customer.Customer{
		"cust-1": {ID: "cust-1", UnitID: "unit-a", Name: "Jane", Email: "jane@example.com"},
	}}
	svc := NewWorkOrderService(orders, employees, customers, notifications, &fakeFileStorage{}, mailer)
	return svc, orders, notifications, mailer
}

func TestCreate_WithoutEmployeeIsDraft(t *testing.T) {
	ctx := context.Background()
	svc, _, _, _ := setup(newFakeEmployeeRepo())

	wo, err := svc.Create(ctx, adminPrincipal(), workorder.CreateWorkOrderRequest{
		CustomerID:  "cust-1",
		Description: "Fix the printer",
	})
	require.NoError(t, err)
	assert.Equal(t, workorder.StatusDraft, wo.Status)
	assert.Nil(t, wo.AssignedEmployeeID)
}

func TestCreate_WithEmployeeIsAssignedAndHoldsEmployee(t *testing.T) {
	ctx := context.Background()
	employees := newFakeEmployeeRepo(employee.Employee{ID: "emp-1", UnitID: "unit-a", Status: employee.StatusAvailable})
	svc, _, _, _ := setup(employees)

	wo, err := svc.Create(ctx, adminPrincipal(), workorder.CreateWorkOrderRequest{
		CustomerID:  "cust-1",
		EmployeeID:  strPtr("emp-1"),
		Description: "Fix the printer",
	})
	require.NoError(t, err)
	assert.Equal(t, workorder.StatusAssigned, wo.Status)
	assert.Equal(t, []employee.Status{employee.StatusUnavailable}, employees.statuses["emp-1"])
}

func TestCreate_UnknownCustomer(t *testing.T) {
	ctx := context.Background()
	svc, _, _, _ := setup(newFakeEmployeeRepo())

	_, err := svc.Create(ctx, adminPrincipal(), workorder.CreateWorkOrderRequest{
		CustomerID:  "cust-unknown",
		Description: "Fix the printer",
	})
	assert.ErrorIs(t, err, customer.ErrCustomerNotFound)
}

func TestSubmit_CompletesOrderAndReleasesEmployee(t *testing.T) {
	ctx := context.Background()
	employees := newFakeEmployeeRepo(employee.Employee{ID: "emp-1", UnitID: "unit-a", Status: employee.StatusAvailable})
	svc, orders, notifications, mailer := setup(employees)

	created, err := svc.Create(ctx, adminPrincipal(), workorder.CreateWorkOrderRequest{
		CustomerID:  "cust-1",
		EmployeeID:  strPtr("emp-1"),
		Description: "Fix the printer",
	})
	require.NoError(t, err)

	submitted, err := svc.Submit(ctx, jwt.Principal{ID: "emp-1", Role: jwt.RoleEmployee, UnitID: "unit-a"}, workorder.SubmitWorkOrderRequest{
		ID:                created.ID,
		CompletionDate:    "2026-08-20",
		EmployeeSignature: "http://files.local/signatures/emp.png",
		CustomerSignature: "http://files.local/signatures/cust.png",
	})
	require.NoError(t, err)

	assert.Equal(t, workorder.StatusSubmitted, submitted.Status)
	require.NotNil(t, submitted.CompletionDate)
	assert.Equal(t, "2026-08-20", submitted.CompletionDate.Format("2006-01-02"))

	// Employee held on create, released on submit.
	assert.Equal(t, []employee.Status{employee.StatusUnavailable, employee.StatusAvailable}, employees.statuses["emp-1"])

	// Exactly one notification referencing the order.
	require.Len(t, notifications.created, 1)
	assert.Equal(t, notification.KindWorkOrder, notifications.created[0].Kind)
	assert.Equal(t, created.ID, notifications.created[0].RefID)

	// Customer got the confirmation email.
	assert.Equal(t, []string{"jane@example.com"}, mailer.submittedTo)

	stored := orders.orders[created.ID]
	assert.Equal(t, workorder.StatusSubmitted, stored.Status)
}

func TestSubmit_OnlyAssignedEmployee(t *testing.T) {
	ctx := context.Background()
	employees := newFakeEmployeeRepo(employee.Employee{ID: "emp-1", UnitID: "unit-a"})
	svc, _, _, _ := setup(employees)

	created, err := svc.Create(ctx, adminPrincipal(), workorder.CreateWorkOrderRequest{
		CustomerID:  "cust-1",
		EmployeeID:  strPtr("emp-1"),
		Description: "Fix the printer",
	})
	require.NoError(t, err)

	_, err = svc.Submit(ctx, jwt.Principal{ID: "emp-2", Role: jwt.RoleEmployee, UnitID: "unit-a"}, workorder.SubmitWorkOrderRequest{
		ID:                created.ID,
		CompletionDate:    "2026-08-20",
		EmployeeSignature: "sig",
		CustomerSignature: "sig",
	})
	assert.ErrorIs(t, err, workorder.ErrNotAssignedToYou)
}

func TestSubmit_FailsWhenEmailNotConfigured(t *testing.T) {
	ctx := context.Background()
	employees := newFakeEmployeeRepo(employee.Employee{ID: "emp-1", UnitID: "unit-a"})
	svc, _, _, mailer := setup(employees)
	mailer.sendErr = email.ErrNotConfigured

	created, err := svc.Create(ctx, adminPrincipal(), workorder.CreateWorkOrderRequest{
		CustomerID:  "cust-1",
		EmployeeID:  strPtr("emp-1"),
		Description: "Fix the printer",
	})
	require.NoError(t, err)

	_, err = svc.Submit(ctx, jwt.Principal{ID: "emp-1", Role: jwt.RoleEmployee, UnitID: "unit-a"}, workorder.SubmitWorkOrderRequest{
		ID:                created.ID,
		CompletionDate:    "2026-08-20",
		EmployeeSignature: "sig",
		CustomerSignature: "sig",
	})
	assert.ErrorIs(t, err, email.ErrNotConfigured)
	assert.Empty(t, mailer.submittedTo)
}

func TestSubmit_TwiceIsConflict(t *testing.T) {
	ctx := context.Background()
	employees := newFakeEmployeeRepo(employee.Employee{ID: "emp-1", UnitID: "unit-a"})
	svc, _, _, _ := setup(employees)

	created, err := svc.Create(ctx, adminPrincipal(), workorder.CreateWorkOrderRequest{
		CustomerID:  "cust-1",
		EmployeeID:  strPtr("emp-1"),
		Description: "Fix the printer",
	})
	require.NoError(t, err)

	p := jwt.Principal{ID: "emp-1", Role: jwt.RoleEmployee, UnitID: "unit-a"}
	req := workorder.SubmitWorkOrderRequest{
		ID:                created.ID,
		CompletionDate:    "2026-08-20",
		EmployeeSignature: "sig",
		CustomerSignature: "sig",
	}

	_, err = svc.Submit(ctx, p, req)
	require.NoError(t, err)

	_, err = svc.Submit(ctx, p, req)
	assert.ErrorIs(t, err, workorder.ErrWorkOrderSubmitted)
}

func TestUpdate_SubmittedOrderIsFrozen(t *testing.T) {
	ctx := context.Background()
	employees := newFakeEmployeeRepo(employee.Employee{ID: "emp-1", UnitID: "unit-a"})
	svc, _, _, _ := setup(employees)

	created, err := svc.Create(ctx, adminPrincipal(), workorder.CreateWorkOrderRequest{
		CustomerID:  "cust-1",
		EmployeeID:  strPtr("emp-1"),
		Description: "Fix the printer",
	})
	require.NoError(t, err)

	_, err = svc.Submit(ctx, jwt.Principal{ID: "emp-1", Role: jwt.RoleEmployee, UnitID: "unit-a"}, workorder.SubmitWorkOrderRequest{
		ID:                created.ID,
		CompletionDate:    "2026-08-20",
		EmployeeSignature: "sig",
		CustomerSignature: "sig",
	})
	require.NoError(t, err)

	_, err = svc.Update(ctx, adminPrincipal(), workorder.UpdateWorkOrderRequest{
		ID:          created.ID,
		Description: strPtr("Changed my mind"),
	})
	assert.ErrorIs(t, err, workorder.ErrWorkOrderSubmitted)
}

func TestUpdate_ReassignmentReconcilesAvailability(t *testing.T) {
	ctx := context.Background()
	employees := newFakeEmployeeRepo(
		employee.Employee{ID: "emp-1", UnitID: "unit-a"},
		employee.Employee{ID: "emp-2", UnitID: "unit-a"},
	)
	svc, _, _, _ := setup(employees)

	created, err := svc.Create(ctx, adminPrincipal(), workorder.CreateWorkOrderRequest{
		CustomerID:  "cust-1",
		EmployeeID:  strPtr("emp-1"),
		Description: "Fix the printer",
	})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, adminPrincipal(), workorder.UpdateWorkOrderRequest{
		ID:         created.ID,
		EmployeeID: strPtr("emp-2"),
	})
	require.NoError(t, err)
	assert.Equal(t, workorder.StatusAssigned, updated.Status)
	assert.Equal(t, []employee.Status{employee.StatusUnavailable, employee.StatusAvailable}, employees.statuses["emp-1"])
	assert.Equal(t, []employee.Status{employee.StatusUnavailable}, employees.statuses["emp-2"])
}

func TestUpdate_ClearEmployeeReturnsToDraft(t *testing.T) {
	ctx := context.Background()
	employees := newFakeEmployeeRepo(employee.Employee{ID: "emp-1", UnitID: "unit-a"})
	svc, _, _, _ := setup(employees)

	created, err := svc.Create(ctx, adminPrincipal(), workorder.CreateWorkOrderRequest{
		CustomerID:  "cust-1",
		EmployeeID:  strPtr("emp-1"),
		Description: "Fix the printer",
	})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, adminPrincipal(), workorder.UpdateWorkOrderRequest{
		ID:            created.ID,
		ClearEmployee: true,
	})
	require.NoError(t, err)
	assert.Equal(t, workorder.StatusDraft, updated.Status)
	assert.Nil(t, updated.AssignedEmployeeID)
}

func TestGet_EmployeeOnlySeesOwnAssignments(t *testing.T) {
	ctx := context.Background()
	employees := newFakeEmployeeRepo(employee.Employee{ID: "emp-1", UnitID: "unit-a"})
	svc, _, _, _ := setup(employees)

	created, err := svc.Create(ctx, adminPrincipal(), workorder.CreateWorkOrderRequest{
		CustomerID:  "cust-1",
		EmployeeID:  strPtr("emp-1"),
		Description: "Fix the printer",
	})
	require.NoError(t, err)

	_, err = svc.Get(ctx, jwt.Principal{ID: "emp-2", Role: jwt.RoleEmployee, UnitID: "unit-a"}, created.ID)
	assert.ErrorIs(t, err, workorder.ErrNotAssignedToYou)

	_, err = svc.Get(ctx, jwt.Principal{ID: "emp-1", Role: jwt.RoleEmployee, UnitID: "unit-a"}, created.ID)
	assert.NoError(t, err)
}

func TestGet_CustomerCannotSeeOthersOrders(t *testing.T) {
	ctx := context.Background()
	svc, _, _, _ := setup(newFakeEmployeeRepo())

	created, err := svc.Create(ctx, adminPrincipal(), workorder.CreateWorkOrderRequest{
		CustomerID:  "cust-1",
		Description: "Fix the printer",
	})
	require.NoError(t, err)

	_, err = svc.Get(ctx, jwt.Principal{ID: "cust-2", Role: jwt.RoleCustomer, UnitID: "unit-a"}, created.ID)
	assert.ErrorIs(t, err, workorder.ErrWorkOrderNotFound)
}
