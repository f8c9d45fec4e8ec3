package advertisement

import (
	"time"

	"github.com/serviceportals/ops-backend-go/internal/pkg/validator"
)

type CreateAdvertisementRequest struct {
	Title    string  `json:"title"`
	Body     string  `json:"body"`
	ImageURL *string `json:"image_url"`
	Active   bool    `json:"active"`
}

func (r *CreateAdvertisementRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{Field: "title", Message: "title is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateAdvertisementRequest struct {
	ID       string  `json:"-"`
	Title    *string `json:"title"`
	Body     *string `json:"body"`
	ImageURL *string `json:"image_url"`
	Active   *bool   `json:"active"`
}

func (r *UpdateAdvertisementRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Title != nil && validator.IsEmpty(*r.Title) {
		errs = append(errs, validator.ValidationError{Field: "title", Message: "title must not be empty"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AdvertisementResponse struct {
	ID        string    `json:"id"`
	UnitID    string    `json:"unit_id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	ImageURL  *string   `json:"image_url,omitempty"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ToResponse(ad Advertisement) AdvertisementResponse {
	return AdvertisementResponse{
		ID:        ad.ID,
		UnitID:    ad.UnitID,
		Title:     ad.Title,
		Body:      ad.Body,
		ImageURL:  ad.ImageURL,
		Active:    ad.Active,
		CreatedAt: ad.CreatedAt,
		UpdatedAt: ad.UpdatedAt,
	}
}
