package master

import (
	"context"

	"github.com/serviceportals/ops-backend-go/internal/domain/master/servicetype"
)

type ServiceTypeServiceImpl struct {
	types servicetype.Repository
}

func NewServiceTypeService(types servicetype.Repository) servicetype.Service {
	return &ServiceTypeServiceImpl{types: types}
}

func (s *ServiceTypeServiceImpl) Create(ctx context.Context, unitID string, req servicetype.CreateServiceTypeRequest) (servicetype.ServiceType, error) {
	return s.types.Create(ctx, servicetype.ServiceType{
		UnitID:      unitID,
		Name:        req.Name,
		Description: req.Description,
	})
}

func (s *ServiceTypeServiceImpl) List(ctx context.Context, unitID string) ([]servicetype.ServiceType, error) {
	return s.types.GetByUnitID(ctx, unitID)
}

func (s *ServiceTypeServiceImpl) Update(ctx context.Context, unitID string, req servicetype.UpdateServiceTypeRequest) (servicetype.ServiceType, error) {
	st, err := s.types.GetByID(ctx, req.ID, unitID)
	if err != nil {
		return servicetype.ServiceType{}, err
	}

	if req.Name != nil {
		st.Name = *req.Name
	}
	if req.Description != nil {
		st.Description = req.Description
	}

	if err := s.types.Update(ctx, st); err != nil {
		return servicetype.ServiceType{}, err
	}

	return st, nil
}

func (s *ServiceTypeServiceImpl) Delete(ctx context.Context, id string, unitID string) error {
	return s.types.Delete(ctx, id, unitID)
}
