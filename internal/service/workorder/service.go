package workorder

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/serviceportals/ops-backend-go/internal/domain/customer"
	"github.com/serviceportals/ops-backend-go/internal/domain/employee"
	"github.com/serviceportals/ops-backend-go/internal/domain/notification"
	"github.com/serviceportals/ops-backend-go/internal/domain/workorder"
	"github.com/serviceportals/ops-backend-go/internal/pkg/email"
	"github.com/serviceportals/ops-backend-go/internal/pkg/jwt"
	"github.com/serviceportals/ops-backend-go/internal/pkg/storage"
)

type WorkOrderServiceImpl struct {
	orders        workorder.Repository
	employees     employee.Repository
	customers     customer.Repository
	notifications notification.Repository
	files         storage.FileStorage
	mailer        email.Service
}

func NewWorkOrderService(
	orders workorder.Repository,
	employees employee.Repository,
	customers customer.Repository,
	notifications notification.Repository,
	files storage.FileStorage,
	mailer email.Service,
) workorder.Service {
	return &WorkOrderServiceImpl{
		orders:        orders,
		employees:     employees,
		customers:     customers,
		notifications: notifications,
		files:         files,
		mailer:        mailer,
	}
}

// Create implements workorder.Service. Supplying an employee assigns the
// order immediately and flips that employee to unavailable.
func (s *WorkOrderServiceImpl) Create(ctx context.Context, p jwt.Principal, req workorder.CreateWorkOrderRequest) (workorder.WorkOrder, error) {
	if _, err := s.customers.GetByID(ctx, req.CustomerID, p.UnitID); err != nil {
		return workorder.WorkOrder{}, err
	}

	if req.EmployeeID != nil && *req.EmployeeID != "" {
		if _, err := s.employees.GetByID(ctx, *req.EmployeeID, p.UnitID); err != nil {
			return workorder.WorkOrder{}, err
		}
	}

	wo := workorder.WorkOrder{
		UnitID:             p.UnitID,
		CustomerID:         req.CustomerID,
		AssignedEmployeeID: req.EmployeeID,
		Description:        req.Description,
		Status:             workorder.DeriveStatus(req.EmployeeID),
		CreatedBy:          p.ID,
		UpdatedBy:          p.ID,
	}

	created, err := s.orders.Create(ctx, wo)
	if err != nil {
		return workorder.WorkOrder{}, fmt.Errorf("failed to create work order: %w", err)
	}

	if created.Status == workorder.StatusAssigned {
		if err := s.employees.UpdateStatus(ctx, *created.AssignedEmployeeID, employee.StatusUnavailable); err != nil {
			slog.Error("Failed to mark employee unavailable", "employee_id", *created.AssignedEmployeeID, "error", err)
		}
	}

	return created, nil
}

// Get implements workorder.Service. Employees only see orders assigned
// to them; customers only their own.
func (s *WorkOrderServiceImpl) Get(ctx context.Context, p jwt.Principal, id string) (workorder.WorkOrder, error) {
	wo, err := s.orders.GetByID(ctx, id, p.UnitID)
	if err != nil {
		return workorder.WorkOrder{}, err
	}
	if err := checkReadAccess(p, wo); err != nil {
		return workorder.WorkOrder{}, err
	}
	return wo, nil
}

func checkReadAccess(p jwt.Principal, wo workorder.WorkOrder) error {
	switch p.Role {
	case jwt.RoleEmployee:
		if wo.AssignedEmployeeID == nil || *wo.AssignedEmployeeID != p.ID {
			return workorder.ErrNotAssignedToYou
		}
	case jwt.RoleCustomer:
		if wo.CustomerID != p.ID {
			return workorder.ErrWorkOrderNotFound
		}
	}
	return nil
}

// List implements workorder.Service.
func (s *WorkOrderServiceImpl) List(ctx context.Context, p jwt.Principal, filter workorder.ListFilter) ([]workorder.WorkOrder, error) {
	switch p.Role {
	case jwt.RoleEmployee:
		filter.AssignedEmployeeID = p.ID
	case jwt.RoleCustomer:
		filter.CustomerID = p.ID
	}
	return s.orders.List(ctx, p.UnitID, filter)
}

// Update implements workorder.Service. A submitted order can no longer
// be edited.
func (s *WorkOrderServiceImpl) Update(ctx context.Context, p jwt.Principal, req workorder.UpdateWorkOrderRequest) (workorder.WorkOrder, error) {
	wo, err := s.orders.GetByID(ctx, req.ID, p.UnitID)
	if err != nil {
		return workorder.WorkOrder{}, err
	}
	if wo.Status == workorder.StatusSubmitted {
		return workorder.WorkOrder{}, workorder.ErrWorkOrderSubmitted
	}

	previousEmployee := wo.AssignedEmployeeID

	if req.CustomerID != nil {
		if _, err := s.customers.GetByID(ctx, *req.CustomerID, p.UnitID); err != nil {
			return workorder.WorkOrder{}, err
		}
		wo.CustomerID = *req.CustomerID
	}
	if req.Description != nil {
		wo.Description = *req.Description
	}
	if req.ClearEmployee {
		wo.AssignedEmployeeID = nil
	} else if req.EmployeeID != nil && *req.EmployeeID != "" {
		if _, err := s.employees.GetByID(ctx, *req.EmployeeID, p.UnitID); err != nil {
			return workorder.WorkOrder{}, err
		}
		wo.AssignedEmployeeID = req.EmployeeID
	}

	wo.Status = workorder.DeriveStatus(wo.AssignedEmployeeID)
	wo.UpdatedBy = p.ID

	if err := s.orders.Update(ctx, wo); err != nil {
		return workorder.WorkOrder{}, fmt.Errorf("failed to update work order: %w", err)
	}

	s.reconcileAvailability(ctx, previousEmployee, wo.AssignedEmployeeID)

	return wo, nil
}

// reconcileAvailability releases the previously assigned employee and
// holds the newly assigned one when the assignment changed.
func (s *WorkOrderServiceImpl) reconcileAvailability(ctx context.Context, before, after *string) {
	beforeID, afterID := "", ""
	if before != nil {
		beforeID = *before
	}
	if after != nil {
		afterID = *after
	}
	if beforeID == afterID {
		return
	}

	if beforeID != "" {
		if err := s.employees.UpdateStatus(ctx, beforeID, employee.StatusAvailable); err != nil {
			slog.Error("Failed to release employee", "employee_id", beforeID, "error", err)
		}
	}
	if afterID != "" {
		if err := s.employees.UpdateStatus(ctx, afterID, employee.StatusUnavailable); err != nil {
			slog.Error("Failed to mark employee unavailable", "employee_id", afterID, "error", err)
		}
	}
}

// Submit implements workorder.Service. Only the assigned employee can
// submit; completion date and both signatures are mandatory.
func (s *WorkOrderServiceImpl) Submit(ctx context.Context, p jwt.Principal, req workorder.SubmitWorkOrderRequest) (workorder.WorkOrder, error) {
	wo, err := s.orders.GetByID(ctx, req.ID, p.UnitID)
	if err != nil {
		return workorder.WorkOrder{}, err
	}
	if wo.Status == workorder.StatusSubmitted {
		return workorder.WorkOrder{}, workorder.ErrWorkOrderSubmitted
	}
	if wo.AssignedEmployeeID == nil || *wo.AssignedEmployeeID != p.ID {
		return workorder.WorkOrder{}, workorder.ErrNotAssignedToYou
	}

	completionDate, err := time.Parse("2006-01-02", req.CompletionDate)
	if err != nil {
		return workorder.WorkOrder{}, fmt.Errorf("invalid completion date: %w", err)
	}

	employeeSigURL, err := s.storeUpload(ctx, "signatures", req.EmployeeSignature)
	if err != nil {
		return workorder.WorkOrder{}, fmt.Errorf("failed to store employee signature: %w", err)
	}
	customerSigURL, err := s.storeUpload(ctx, "signatures", req.CustomerSignature)
	if err != nil {
		return workorder.WorkOrder{}, fmt.Errorf("failed to store customer signature: %w", err)
	}

	wo.CompletionDate = &completionDate
	wo.EmployeeSignatureURL = &employeeSigURL
	wo.CustomerSignatureURL = &customerSigURL

	if req.BeforePhoto != "" {
		url, err := s.storeUpload(ctx, "photos", req.BeforePhoto)
		if err != nil {
			return workorder.WorkOrder{}, fmt.Errorf("failed to store before photo: %w", err)
		}
		wo.BeforePhotoURL = &url
	}
	if req.AfterPhoto != "" {
		url, err := s.storeUpload(ctx, "photos", req.AfterPhoto)
		if err != nil {
			return workorder.WorkOrder{}, fmt.Errorf("failed to store after photo: %w", err)
		}
		wo.AfterPhotoURL = &url
	}

	wo.Status = workorder.StatusSubmitted
	wo.UpdatedBy = p.ID

	if err := s.orders.Update(ctx, wo); err != nil {
		return workorder.WorkOrder{}, fmt.Errorf("failed to submit work order: %w", err)
	}

	if err := s.employees.UpdateStatus(ctx, p.ID, employee.StatusAvailable); err != nil {
		slog.Error("Failed to release employee after submission", "employee_id", p.ID, "error", err)
	}

	_, err = s.notifications.Create(ctx, notification.Notification{
		UnitID: wo.UnitID,
		Kind:   notification.KindWorkOrder,
		RefID:  wo.ID,
		Title:  "Work order submitted",
		Body:   "Work order " + wo.ID + " was completed and signed.",
		Payload: map[string]interface{}{
			"work_order_id":   wo.ID,
			"completion_date": req.CompletionDate,
		},
	})
	if err != nil {
		slog.Error("Failed to insert work order notification", "work_order_id", wo.ID, "error", err)
	}

	if err := s.notifyCustomer(ctx, wo, req.CompletionDate); err != nil {
		return workorder.WorkOrder{}, err
	}

	return wo, nil
}

// notifyCustomer sends the completion confirmation email. The submission
// endpoint fails loudly when the email cannot go out, including when no
// SMTP host is configured.
func (s *WorkOrderServiceImpl) notifyCustomer(ctx context.Context, wo workorder.WorkOrder, completionDate string) error {
	customerData, err := s.customers.GetByID(ctx, wo.CustomerID, wo.UnitID)
	if err != nil {
		return fmt.Errorf("failed to look up customer for confirmation email: %w", err)
	}

	if err := s.mailer.SendWorkOrderSubmitted(customerData.Email, customerData.Name, wo.ID, completionDate); err != nil {
		return fmt.Errorf("failed to send confirmation email: %w", err)
	}
	return nil
}

// storeUpload stores a data URL and returns its public URL. Values that
// are not data URLs are taken as already-uploaded URLs and passed
// through.
func (s *WorkOrderServiceImpl) storeUpload(ctx context.Context, prefix, value string) (string, error) {
	if !strings.HasPrefix(value, "data:") {
		return value, nil
	}
	return storage.SaveDataURL(ctx, s.files, prefix, value)
}

// Delete implements workorder.Service. Deleting an assigned order
// releases the employee.
func (s *WorkOrderServiceImpl) Delete(ctx context.Context, p jwt.Principal, id string) error {
	wo, err := s.orders.GetByID(ctx, id, p.UnitID)
	if err != nil {
		return err
	}

	if err := s.orders.Delete(ctx, id, p.UnitID); err != nil {
		return err
	}

	if wo.AssignedEmployeeID != nil && wo.Status == workorder.StatusAssigned {
		if err := s.employees.UpdateStatus(ctx, *wo.AssignedEmployeeID, employee.StatusAvailable); err != nil {
			slog.Error("Failed to release employee after deletion", "employee_id", *wo.AssignedEmployeeID, "error", err)
		}
	}

	return nil
}
