package master

import (
	"context"

	"github.com/serviceportals/ops-backend-go/internal/domain/master/advertisement"
)

type AdvertisementServiceImpl struct {
	ads advertisement.Repository
}

func NewAdvertisementService(ads advertisement.Repository) advertisement.Service {
	return &AdvertisementServiceImpl{ads: ads}
}

func (s *AdvertisementServiceImpl) Create(ctx context.Context, unitID string, req advertisement.CreateAdvertisementRequest) (advertisement.Advertisement, error) {
	return s.ads.Create(ctx, advertisement.Advertisement{
		UnitID:   unitID,
		Title:    req.Title,
		Body:     req.Body,
		ImageURL: req.ImageURL,
		Active:   req.Active,
	})
}

func (s *AdvertisementServiceImpl) List(ctx context.Context, unitID string, activeOnly bool) ([]advertisement.Advertisement, error) {
	return s.ads.GetByUnitID(ctx, unitID, activeOnly)
}

func (s *AdvertisementServiceImpl) Update(ctx context.Context, unitID string, req advertisement.UpdateAdvertisementRequest) (advertisement.Advertisement, error) {
	ad, err := s.ads.GetByID(ctx, req.ID, unitID)
	if err != nil {
		return advertisement.Advertisement{}, err
	}

	if req.Title != nil {
		ad.Title = *req.Title
	}
	if req.Body != nil {
		ad.Body = *req.Body
	}
	if req.ImageURL != nil {
		ad.ImageURL = req.ImageURL
	}
	if req.Active != nil {
		ad.Active = *req.Active
	}

	if err := s.ads.Update(ctx, ad); err != nil {
		return advertisement.Advertisement{}, err
	}

	return ad, nil
}

func (s *AdvertisementServiceImpl) Delete(ctx context.Context, id string, unitID string) error {
	return s.ads.Delete(ctx, id, unitID)
}
