package employee

import "context"

type Repository interface {
	Create(ctx context.Context, e Employee) (Employee, error)
	GetByID(ctx context.Context, id string, unitID string) (Employee, error)
	// GetByName looks an employee up case-insensitively. An empty unitID
	// searches across all units and returns the first match.
	GetByName(ctx context.Context, name string, unitID string) (Employee, error)
	GetByUnitID(ctx context.Context, unitID string) ([]Employee, error)
	// ListNames is intentionally unscoped: it backs the public login
	// selection listing.
	ListNames(ctx context.Context) ([]PublicListing, error)
	Update(ctx context.Context, e Employee) error
	UpdateStatus(ctx context.Context, id string, status Status) error
	UpdateFeatureAccess(ctx context.Context, id string, features []string) error
	Delete(ctx context.Context, id string, unitID string) error
}

// PublicListing is the minimal shape exposed without authentication.
type PublicListing struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	UnitCode string `json:"unit_code"`
}
