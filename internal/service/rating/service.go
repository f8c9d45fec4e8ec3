package rating

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/serviceportals/ops-backend-go/internal/domain/rating"
	"github.com/serviceportals/ops-backend-go/internal/domain/workorder"
	"github.com/serviceportals/ops-backend-go/internal/pkg/jwt"
)

type RatingServiceImpl struct {
	links  rating.Repository
	orders workorder.Repository
}

func NewRatingService(links rating.Repository, orders workorder.Repository) rating.Service {
	return &RatingServiceImpl{links: links, orders: orders}
}

// CreateLink implements rating.Service. The work order must exist in
// the admin's unit and be submitted; a second link for the same order
// is a conflict.
func (s *RatingServiceImpl) CreateLink(ctx context.Context, p jwt.Principal, req rating.CreateRatingLinkRequest) (rating.RatingLink, error) {
	wo, err := s.orders.GetByID(ctx, req.WorkOrderID, p.UnitID)
	if err != nil {
		return rating.RatingLink{}, err
	}
	if wo.Status != workorder.StatusSubmitted {
		return rating.RatingLink{}, rating.ErrOrderNotSubmitted
	}

	link := rating.RatingLink{
		UnitID:      p.UnitID,
		WorkOrderID: req.WorkOrderID,
		Token:       uuid.NewString(),
	}

	created, err := s.links.Create(ctx, link)
	if err != nil {
		return rating.RatingLink{}, err
	}

	return created, nil
}

func (s *RatingServiceImpl) List(ctx context.Context, p jwt.Principal) ([]rating.RatingLink, error) {
	return s.links.GetByUnitID(ctx, p.UnitID)
}

// Submit implements rating.Service. Public, token-addressed; a link
// accepts exactly one submission.
func (s *RatingServiceImpl) Submit(ctx context.Context, req rating.SubmitRatingRequest) (rating.RatingLink, error) {
	link, err := s.links.GetByToken(ctx, req.Token)
	if err != nil {
		return rating.RatingLink{}, err
	}
	if link.Submitted() {
		return rating.RatingLink{}, rating.ErrAlreadySubmitted
	}

	if err := s.links.SaveSubmission(ctx, link.ID, req.Score, req.Comment); err != nil {
		return rating.RatingLink{}, fmt.Errorf("failed to save rating: %w", err)
	}

	return s.links.GetByToken(ctx, req.Token)
}
