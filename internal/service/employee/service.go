package employee

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/serviceportals/ops-backend-go/internal/domain/employee"
	"github.com/serviceportals/ops-backend-go/internal/pkg/jwt"
)

type EmployeeServiceImpl struct {
	employees employee.Repository
}

func NewEmployeeService(employees employee.Repository) employee.Service {
	return &EmployeeServiceImpl{employees: employees}
}

// Create implements employee.Service. New employees start available.
func (s *EmployeeServiceImpl) Create(ctx context.Context, unitID string, req employee.CreateEmployeeRequest) (employee.Employee, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to hash password: %w", err)
	}

	e := employee.Employee{
		UnitID:        unitID,
		Name:          req.Name,
		Email:         req.Email,
		PhoneNumber:   req.PhoneNumber,
		PasswordHash:  string(hash),
		Status:        employee.StatusAvailable,
		FeatureAccess: req.FeatureAccess,
	}
	if e.FeatureAccess == nil {
		e.FeatureAccess = []string{}
	}

	return s.employees.Create(ctx, e)
}

func (s *EmployeeServiceImpl) Get(ctx context.Context, id string, unitID string) (employee.Employee, error) {
	return s.employees.GetByID(ctx, id, unitID)
}

func (s *EmployeeServiceImpl) List(ctx context.Context, unitID string) ([]employee.Employee, error) {
	return s.employees.GetByUnitID(ctx, unitID)
}

func (s *EmployeeServiceImpl) ListPublic(ctx context.Context) ([]employee.PublicListing, error) {
	return s.employees.ListNames(ctx)
}

func (s *EmployeeServiceImpl) Update(ctx context.Context, unitID string, req employee.UpdateEmployeeRequest) (employee.Employee, error) {
	e, err := s.employees.GetByID(ctx, req.ID, unitID)
	if err != nil {
		return employee.Employee{}, err
	}

	if req.Name != nil {
		e.Name = *req.Name
	}
	if req.Email != nil {
		e.Email = *req.Email
	}
	if req.PhoneNumber != nil {
		e.PhoneNumber = req.PhoneNumber
	}

	if err := s.employees.Update(ctx, e); err != nil {
		return employee.Employee{}, err
	}

	if req.FeatureAccess != nil {
		e.FeatureAccess = *req.FeatureAccess
		if err := s.employees.UpdateFeatureAccess(ctx, e.ID, e.FeatureAccess); err != nil {
			return employee.Employee{}, err
		}
	}

	return e, nil
}

// UpdateStatus implements employee.Service. Admins may flip any employee
// in their unit; an employee may only flip their own availability.
func (s *EmployeeServiceImpl) UpdateStatus(ctx context.Context, p jwt.Principal, id string, status string) error {
	switch p.Role {
	case jwt.RoleAdmin:
	case jwt.RoleEmployee:
		if p.ID != id {
			return employee.ErrStatusForbidden
		}
	default:
		return employee.ErrStatusForbidden
	}

	if status != string(employee.StatusAvailable) && status != string(employee.StatusUnavailable) {
		return employee.ErrInvalidStatus
	}
	if _, err := s.employees.GetByID(ctx, id, p.UnitID); err != nil {
		return err
	}
	return s.employees.UpdateStatus(ctx, id, employee.Status(status))
}

func (s *EmployeeServiceImpl) Delete(ctx context.Context, id string, unitID string) error {
	return s.employees.Delete(ctx, id, unitID)
}
