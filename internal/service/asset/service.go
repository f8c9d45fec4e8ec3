package asset

import (
	"context"
	"fmt"
	"time"

	"github.com/serviceportals/ops-backend-go/internal/domain/asset"
)

type AssetServiceImpl struct {
	assets asset.Repository
}

func NewAssetService(assets asset.Repository) asset.Service {
	return &AssetServiceImpl{assets: assets}
}

func toTrackedDates(inputs []asset.TrackedDateInput) ([]asset.TrackedDate, error) {
	dates := make([]asset.TrackedDate, 0, len(inputs))
	for _, in := range inputs {
		td := asset.TrackedDate{
			Kind:   asset.DateKind(in.Kind),
			Status: asset.DateStatus(in.Status),
		}
		if td.Status == "" {
			td.Status = asset.DateStatusUpcoming
		}
		if in.Due != nil {
			due, err := time.Parse("2006-01-02", *in.Due)
			if err != nil {
				return nil, fmt.Errorf("invalid due date %q: %w", *in.Due, err)
			}
			td.Due = &due
		}
		dates = append(dates, td)
	}
	return dates, nil
}

func (s *AssetServiceImpl) Create(ctx context.Context, unitID string, req asset.CreateAssetRequest) (asset.Asset, error) {
	dates, err := toTrackedDates(req.TrackedDates)
	if err != nil {
		return asset.Asset{}, err
	}

	a := asset.Asset{
		UnitID:       unitID,
		Name:         req.Name,
		Category:     req.Category,
		DocumentURL:  req.DocumentURL,
		TrackedDates: dates,
	}

	return s.assets.Create(ctx, a)
}

func (s *AssetServiceImpl) Get(ctx context.Context, id string, unitID string) (asset.Asset, error) {
	return s.assets.GetByID(ctx, id, unitID)
}

func (s *AssetServiceImpl) List(ctx context.Context, unitID string, filter asset.ListFilter) ([]asset.Asset, error) {
	return s.assets.List(ctx, unitID, filter)
}

func (s *AssetServiceImpl) Update(ctx context.Context, unitID string, req asset.UpdateAssetRequest) (asset.Asset, error) {
	a, err := s.assets.GetByID(ctx, req.ID, unitID)
	if err != nil {
		return asset.Asset{}, err
	}

	if req.Name != nil {
		a.Name = *req.Name
	}
	if req.Category != nil {
		a.Category = *req.Category
	}
	if req.DocumentURL != nil {
		a.DocumentURL = req.DocumentURL
	}
	if req.TrackedDates != nil {
		dates, err := toTrackedDates(*req.TrackedDates)
		if err != nil {
			return asset.Asset{}, err
		}
		a.TrackedDates = dates
	}

	if err := s.assets.Update(ctx, a); err != nil {
		return asset.Asset{}, err
	}

	return a, nil
}

func (s *AssetServiceImpl) Delete(ctx context.Context, id string, unitID string) error {
	return s.assets.Delete(ctx, id, unitID)
}
