package rating

import (
	"time"

	"github.com/serviceportals/ops-backend-go/internal/pkg/validator"
)

type CreateRatingLinkRequest struct {
	WorkOrderID string `json:"work_order_id"`
}

func (r *CreateRatingLinkRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.WorkOrderID) {
		errs = append(errs, validator.ValidationError{Field: "work_order_id", Message: "work_order_id is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SubmitRatingRequest struct {
	Token   string  `json:"-"`
	Score   int     `json:"score"`
	Comment *string `json:"comment"`
}

func (r *SubmitRatingRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Score < 1 || r.Score > 5 {
		errs = append(errs, validator.ValidationError{Field: "score", Message: "score must be between 1 and 5"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RatingLinkResponse struct {
	ID          string     `json:"id"`
	WorkOrderID string     `json:"work_order_id"`
	Token       string     `json:"token"`
	Score       *int       `json:"score,omitempty"`
	Comment     *string    `json:"comment,omitempty"`
	SubmittedAt *time.Time `json:"submitted_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

func ToResponse(l RatingLink) RatingLinkResponse {
	return RatingLinkResponse{
		ID:          l.ID,
		WorkOrderID: l.WorkOrderID,
		Token:       l.Token,
		Score:       l.Score,
		Comment:     l.Comment,
		SubmittedAt: l.SubmittedAt,
		CreatedAt:   l.CreatedAt,
	}
}
