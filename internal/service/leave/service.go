package leave

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/serviceportals/ops-backend-go/internal/domain/leave"
	"github.com/serviceportals/ops-backend-go/internal/domain/notification"
	"github.com/serviceportals/ops-backend-go/internal/pkg/jwt"
)

type LeaveServiceImpl struct {
	requests      leave.Repository
	notifications notification.Repository
}

func NewLeaveService(requests leave.Repository, notifications notification.Repository) leave.Service {
	return &LeaveServiceImpl{requests: requests, notifications: notifications}
}

// Create implements leave.Service. Dates were validated by the DTO.
func (s *LeaveServiceImpl) Create(ctx context.Context, p jwt.Principal, req leave.CreateRequest) (leave.Request, error) {
	start, _ := time.Parse("2006-01-02", req.StartDate)
	end, _ := time.Parse("2006-01-02", req.EndDate)

	r := leave.Request{
		UnitID:     p.UnitID,
		EmployeeID: p.ID,
		Kind:       leave.Kind(req.Kind),
		StartDate:  start,
		EndDate:    end,
		Reason:     req.Reason,
		Status:     leave.StatusPending,
	}

	created, err := s.requests.Create(ctx, r)
	if err != nil {
		return leave.Request{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	_, err = s.notifications.Create(ctx, notification.Notification{
		UnitID: created.UnitID,
		Kind:   notification.KindLeave,
		RefID:  created.ID,
		Title:  string(created.Kind) + " request",
		Body:   created.Reason,
		Payload: map[string]interface{}{
			"request_id":  created.ID,
			"employee_id": created.EmployeeID,
			"kind":        string(created.Kind),
		},
	})
	if err != nil {
		slog.Error("Failed to insert leave notification", "request_id", created.ID, "error", err)
	}

	return created, nil
}

func (s *LeaveServiceImpl) Get(ctx context.Context, p jwt.Principal, id string) (leave.Request, error) {
	r, err := s.requests.GetByID(ctx, id, p.UnitID)
	if err != nil {
		return leave.Request{}, err
	}
	if p.Role == jwt.RoleEmployee && r.EmployeeID != p.ID {
		return leave.Request{}, leave.ErrRequestNotFound
	}
	return r, nil
}

func (s *LeaveServiceImpl) List(ctx context.Context, p jwt.Principal) ([]leave.Request, error) {
	employeeID := ""
	if p.Role == jwt.RoleEmployee {
		employeeID = p.ID
	}
	return s.requests.List(ctx, p.UnitID, employeeID)
}

// Review implements leave.Service. A processed request cannot be
// reviewed again.
func (s *LeaveServiceImpl) Review(ctx context.Context, p jwt.Principal, req leave.ReviewRequest) (leave.Request, error) {
	r, err := s.requests.GetByID(ctx, req.ID, p.UnitID)
	if err != nil {
		return leave.Request{}, err
	}
	if r.Status != leave.StatusPending {
		return leave.Request{}, leave.ErrRequestAlreadyProcessed
	}

	status := leave.Status(req.Status)
	if err := s.requests.UpdateStatus(ctx, r.ID, p.UnitID, status, p.ID); err != nil {
		return leave.Request{}, fmt.Errorf("failed to update leave request: %w", err)
	}

	r.Status = status
	r.ReviewedBy = &p.ID
	now := time.Now()
	r.ReviewedAt = &now
	return r, nil
}

func (s *LeaveServiceImpl) Delete(ctx context.Context, p jwt.Principal, id string) error {
	r, err := s.requests.GetByID(ctx, id, p.UnitID)
	if err != nil {
		return err
	}
	if p.Role == jwt.RoleEmployee {
		if r.EmployeeID != p.ID {
			return leave.ErrRequestNotFound
		}
		if r.Status != leave.StatusPending {
			return leave.ErrRequestAlreadyProcessed
		}
	}
	return s.requests.Delete(ctx, id, p.UnitID)
}
