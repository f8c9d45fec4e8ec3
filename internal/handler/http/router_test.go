package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/serviceportals/ops-backend-go/internal/domain/employee"
	"github.com/serviceportals/ops-backend-go/internal/pkg/jwt"
)

// okStub satisfies every handler interface with a bare 200, so routing
// and middleware can be exercised without services behind them.
type okStub struct{}

func (okStub) ok(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) }

func (s okStub) AddComment(w http.ResponseWriter, r *http.Request)          { s.ok(w, r) }
func (s okStub) AdminLogin(w http.ResponseWriter, r *http.Request)          { s.ok(w, r) }
func (s okStub) Complete(w http.ResponseWriter, r *http.Request)            { s.ok(w, r) }
func (s okStub) Create(w http.ResponseWriter, r *http.Request)              { s.ok(w, r) }
func (s okStub) CreateAdvertisement(w http.ResponseWriter, r *http.Request) { s.ok(w, r) }
func (s okStub) CreateLink(w http.ResponseWriter, r *http.Request)          { s.ok(w, r) }
func (s okStub) CreateServiceType(w http.ResponseWriter, r *http.Request)   { s.ok(w, r) }
func (s okStub) CustomerLogin(w http.ResponseWriter, r *http.Request)       { s.ok(w, r) }
func (s okStub) Delete(w http.ResponseWriter, r *http.Request)              { s.ok(w, r) }
func (s okStub) DeleteAdvertisement(w http.ResponseWriter, r *http.Request) { s.ok(w, r) }
func (s okStub) DeleteServiceType(w http.ResponseWriter, r *http.Request)   { s.ok(w, r) }
func (s okStub) EmployeeLogin(w http.ResponseWriter, r *http.Request)       { s.ok(w, r) }
func (s okStub) Feed(w http.ResponseWriter, r *http.Request)                { s.ok(w, r) }
func (s okStub) ForgotPassword(w http.ResponseWriter, r *http.Request)      { s.ok(w, r) }
func (s okStub) Generate(w http.ResponseWriter, r *http.Request)            { s.ok(w, r) }
func (s okStub) Get(w http.ResponseWriter, r *http.Request)                 { s.ok(w, r) }
func (s okStub) List(w http.ResponseWriter, r *http.Request)                { s.ok(w, r) }
func (s okStub) ListAdvertisements(w http.ResponseWriter, r *http.Request)  { s.ok(w, r) }
func (s okStub) ListByDate(w http.ResponseWriter, r *http.Request)          { s.ok(w, r) }
func (s okStub) ListByEmployee(w http.ResponseWriter, r *http.Request)      { s.ok(w, r) }
func (s okStub) ListComments(w http.ResponseWriter, r *http.Request)        { s.ok(w, r) }
func (s okStub) ListPublic(w http.ResponseWriter, r *http.Request)          { s.ok(w, r) }
func (s okStub) ListServiceTypes(w http.ResponseWriter, r *http.Request)    { s.ok(w, r) }
func (s okStub) Logout(w http.ResponseWriter, r *http.Request)              { s.ok(w, r) }
func (s okStub) MarkAllRead(w http.ResponseWriter, r *http.Request)         { s.ok(w, r) }
func (s okStub) MarkRead(w http.ResponseWriter, r *http.Request)            { s.ok(w, r) }
func (s okStub) PayrollExport(w http.ResponseWriter, r *http.Request)       { s.ok(w, r) }
func (s okStub) Refresh(w http.ResponseWriter, r *http.Request)             { s.ok(w, r) }
func (s okStub) RequestSignature(w http.ResponseWriter, r *http.Request)    { s.ok(w, r) }
func (s okStub) ResetPassword(w http.ResponseWriter, r *http.Request)       { s.ok(w, r) }
func (s okStub) Review(w http.ResponseWriter, r *http.Request)              { s.ok(w, r) }
func (s okStub) Sign(w http.ResponseWriter, r *http.Request)                { s.ok(w, r) }
func (s okStub) Slip(w http.ResponseWriter, r *http.Request)                { s.ok(w, r) }
func (s okStub) Submit(w http.ResponseWriter, r *http.Request)              { s.ok(w, r) }
func (s okStub) Update(w http.ResponseWriter, r *http.Request)              { s.ok(w, r) }
func (s okStub) UpdateAdvertisement(w http.ResponseWriter, r *http.Request) { s.ok(w, r) }
func (s okStub) UpdateServiceType(w http.ResponseWriter, r *http.Request)   { s.ok(w, r) }
func (s okStub) UpdateStatus(w http.ResponseWriter, r *http.Request)        { s.ok(w, r) }

func newTestRouter(t *testing.T) (http.Handler, jwt.Service) {
	t.Helper()
	svc := jwt.NewJWTService("test-secret", "1h")
	stub := okStub{}
	return NewRouter(svc, "test", Handlers{
		Auth:         stub,
		WorkOrder:    stub,
		Notification: stub,
		Employee:     stub,
		Customer:     stub,
		Ticket:       stub,
		Leave:        stub,
		Advance:      stub,
		Payroll:      stub,
		Report:       stub,
		Asset:        stub,
		Schedule:     stub,
		Master:       stub,
		Rating:       stub,
	}), svc
}

func bearerFor(t *testing.T, svc jwt.Service, p jwt.Principal) string {
	t.Helper()
	token, _, err := svc.GenerateAccessToken(p)
	require.NoError(t, err)
	return "Bearer " + token
}

func doRequest(router http.Handler, method, path, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(`{"status":"available"}`))
	req.Header.Set("Content-Type", "application/json")
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestRouter_CookieOnlyClientIsAuthenticated(t *testing.T) {
	router, svc := newTestRouter(t)

	token, expiresAt, err := svc.GenerateAccessToken(jwt.Principal{
		ID: "cust-1", Role: jwt.RoleCustomer, UnitID: "unit-a",
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/work-orders", nil)
	req.AddCookie(svc.AuthCookie(token, expiresAt))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_UnauthenticatedIsRejected(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doRequest(router, http.MethodGet, "/api/v1/work-orders", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRouter_EmployeeStatusPatchRejectsCustomers(t *testing.T) {
	router, svc := newTestRouter(t)

	cust := bearerFor(t, svc, jwt.Principal{ID: "cust-1", Role: jwt.RoleCustomer, UnitID: "unit-a"})
	rec := doRequest(router, http.MethodPatch, "/api/v1/employees/emp-1/status", cust)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	emp := bearerFor(t, svc, jwt.Principal{ID: "emp-1", Role: jwt.RoleEmployee, UnitID: "unit-a"})
	rec = doRequest(router, http.MethodPatch, "/api/v1/employees/emp-1/status", emp)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_CustomerScreenNeedsFeatureGrant(t *testing.T) {
	router, svc := newTestRouter(t)

	ungranted := bearerFor(t, svc, jwt.Principal{
		ID: "emp-1", Role: jwt.RoleEmployee, UnitID: "unit-a",
	})
	rec := doRequest(router, http.MethodGet, "/api/v1/customers", ungranted)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	granted := bearerFor(t, svc, jwt.Principal{
		ID: "emp-1", Role: jwt.RoleEmployee, UnitID: "unit-a",
		FeatureAccess: []string{employee.FeatureCustomers},
	})
	rec = doRequest(router, http.MethodGet, "/api/v1/customers", granted)
	assert.Equal(t, http.StatusOK, rec.Code)

	admin := bearerFor(t, svc, jwt.Principal{ID: "admin-1", Role: jwt.RoleAdmin, UnitID: "unit-a"})
	rec = doRequest(router, http.MethodGet, "/api/v1/customers", admin)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_TicketUpdateNeedsFeatureGrant(t *testing.T) {
	router, svc := newTestRouter(t)

	ungranted := bearerFor(t, svc, jwt.Principal{
		ID: "emp-1", Role: jwt.RoleEmployee, UnitID: "unit-a",
	})
	rec := doRequest(router, http.MethodPut, "/api/v1/tickets/tick-1", ungranted)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	granted := bearerFor(t, svc, jwt.Principal{
		ID: "emp-1", Role: jwt.RoleEmployee, UnitID: "unit-a",
		FeatureAccess: []string{employee.FeatureTickets},
	})
	rec = doRequest(router, http.MethodPut, "/api/v1/tickets/tick-1", granted)
	assert.Equal(t, http.StatusOK, rec.Code)

	// Ticket browsing and commenting stay open to customers.
	cust := bearerFor(t, svc, jwt.Principal{ID: "cust-1", Role: jwt.RoleCustomer, UnitID: "unit-a"})
	rec = doRequest(router, http.MethodGet, "/api/v1/tickets", cust)
	assert.Equal(t, http.StatusOK, rec.Code)
}
