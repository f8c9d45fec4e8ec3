package advance

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/serviceportals/ops-backend-go/internal/domain/advance"
	"github.com/serviceportals/ops-backend-go/internal/domain/notification"
	"github.com/serviceportals/ops-backend-go/internal/pkg/jwt"
)

type AdvanceServiceImpl struct {
	requests      advance.Repository
	notifications notification.Repository
}

func NewAdvanceService(requests advance.Repository, notifications notification.Repository) advance.Service {
	return &AdvanceServiceImpl{requests: requests, notifications: notifications}
}

// Create implements advance.Service.
func (s *AdvanceServiceImpl) Create(ctx context.Context, p jwt.Principal, req advance.CreateRequest) (advance.Request, error) {
	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return advance.Request{}, fmt.Errorf("invalid amount: %w", err)
	}

	r := advance.Request{
		UnitID:     p.UnitID,
		EmployeeID: p.ID,
		Amount:     amount,
		Reason:     req.Reason,
		Status:     advance.StatusPending,
	}

	created, err := s.requests.Create(ctx, r)
	if err != nil {
		return advance.Request{}, fmt.Errorf("failed to create advance salary request: %w", err)
	}

	_, err = s.notifications.Create(ctx, notification.Notification{
		UnitID: created.UnitID,
		Kind:   notification.KindAdvanceSalary,
		RefID:  created.ID,
		Title:  "Advance salary request",
		Body:   created.Reason,
		Payload: map[string]interface{}{
			"request_id":  created.ID,
			"employee_id": created.EmployeeID,
			"amount":      created.Amount.String(),
		},
	})
	if err != nil {
		slog.Error("Failed to insert advance salary notification", "request_id", created.ID, "error", err)
	}

	return created, nil
}

func (s *AdvanceServiceImpl) Get(ctx context.Context, p jwt.Principal, id string) (advance.Request, error) {
	r, err := s.requests.GetByID(ctx, id, p.UnitID)
	if err != nil {
		return advance.Request{}, err
	}
	if p.Role == jwt.RoleEmployee && r.EmployeeID != p.ID {
		return advance.Request{}, advance.ErrRequestNotFound
	}
	return r, nil
}

func (s *AdvanceServiceImpl) List(ctx context.Context, p jwt.Principal) ([]advance.Request, error) {
	employeeID := ""
	if p.Role == jwt.RoleEmployee {
		employeeID = p.ID
	}
	return s.requests.List(ctx, p.UnitID, employeeID)
}

// Review implements advance.Service.
func (s *AdvanceServiceImpl) Review(ctx context.Context, p jwt.Principal, req advance.ReviewRequest) (advance.Request, error) {
	r, err := s.requests.GetByID(ctx, req.ID, p.UnitID)
	if err != nil {
		return advance.Request{}, err
	}
	if r.Status != advance.StatusPending {
		return advance.Request{}, advance.ErrRequestAlreadyProcessed
	}

	status := advance.Status(req.Status)
	if err := s.requests.UpdateStatus(ctx, r.ID, p.UnitID, status, p.ID); err != nil {
		return advance.Request{}, fmt.Errorf("failed to update advance salary request: %w", err)
	}

	r.Status = status
	r.ReviewedBy = &p.ID
	now := time.Now()
	r.ReviewedAt = &now
	return r, nil
}
