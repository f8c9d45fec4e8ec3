package customer

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/serviceportals/ops-backend-go/internal/domain/customer"
)

type CustomerServiceImpl struct {
	customers customer.Repository
}

func NewCustomerService(customers customer.Repository) customer.Service {
	return &CustomerServiceImpl{customers: customers}
}

func (s *CustomerServiceImpl) Create(ctx context.Context, unitID string, req customer.CreateCustomerRequest) (customer.Customer, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return customer.Customer{}, fmt.Errorf("failed to hash password: %w", err)
	}

	c := customer.Customer{
		UnitID:       unitID,
		Name:         req.Name,
		Email:        req.Email,
		PhoneNumber:  req.PhoneNumber,
		Address:      req.Address,
		PasswordHash: string(hash),
	}

	return s.customers.Create(ctx, c)
}

func (s *CustomerServiceImpl) Get(ctx context.Context, id string, unitID string) (customer.Customer, error) {
	return s.customers.GetByID(ctx, id, unitID)
}

func (s *CustomerServiceImpl) List(ctx context.Context, unitID string) ([]customer.Customer, error) {
	return s.customers.GetByUnitID(ctx, unitID)
}

func (s *CustomerServiceImpl) Update(ctx context.Context, unitID string, req customer.UpdateCustomerRequest) (customer.Customer, error) {
	c, err := s.customers.GetByID(ctx, req.ID, unitID)
	if err != nil {
		return customer.Customer{}, err
	}

	if req.Name != nil {
		c.Name = *req.Name
	}
	if req.Email != nil {
		c.Email = *req.Email
	}
	if req.PhoneNumber != nil {
		c.PhoneNumber = req.PhoneNumber
	}
	if req.Address != nil {
		c.Address = req.Address
	}

	if err := s.customers.Update(ctx, c); err != nil {
		return customer.Customer{}, err
	}

	return c, nil
}

func (s *CustomerServiceImpl) Delete(ctx context.Context, id string, unitID string) error {
	return s.customers.Delete(ctx, id, unitID)
}
