package response

import (
	"errors"
	"net/http"

	"github.com/serviceportals/ops-backend-go/internal/domain/admin"
	"github.com/serviceportals/ops-backend-go/internal/domain/advance"
	"github.com/serviceportals/ops-backend-go/internal/domain/asset"
	"github.com/serviceportals/ops-backend-go/internal/domain/auth"
	"github.com/serviceportals/ops-backend-go/internal/domain/customer"
	"github.com/serviceportals/ops-backend-go/internal/domain/employee"
	"github.com/serviceportals/ops-backend-go/internal/domain/leave"
	"github.com/serviceportals/ops-backend-go/internal/domain/master/advertisement"
	"github.com/serviceportals/ops-backend-go/internal/domain/master/servicetype"
	"github.com/serviceportals/ops-backend-go/internal/domain/notification"
	"github.com/serviceportals/ops-backend-go/internal/domain/payroll"
	"github.com/serviceportals/ops-backend-go/internal/domain/rating"
	"github.com/serviceportals/ops-backend-go/internal/domain/schedule"
	"github.com/serviceportals/ops-backend-go/internal/domain/ticket"
	"github.com/serviceportals/ops-backend-go/internal/domain/unit"
	"github.com/serviceportals/ops-backend-go/internal/domain/workorder"
	"github.com/serviceportals/ops-backend-go/internal/pkg/email"
	"github.com/serviceportals/ops-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid credentials")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrUnitNotFound), errors.Is(err, unit.ErrUnitNotFound):
		NotFound(w, "Business unit not found")
	case errors.Is(err, auth.ErrInvalidOTP):
		BadRequest(w, "Invalid or expired reset code", nil)
	case errors.Is(err, auth.ErrSMTPNotConfigured), errors.Is(err, email.ErrNotConfigured):
		ServiceUnavailable(w, "Outbound email is not configured")
	case errors.Is(err, unit.ErrUnitCodeExists):
		Conflict(w, "Business unit code already exists")
	case errors.Is(err, admin.ErrAdminNotFound):
		NotFound(w, "Admin not found")

	// People
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmailExists), errors.Is(err, customer.ErrEmailExists):
		Conflict(w, "Email already registered in this business unit")
	case errors.Is(err, employee.ErrInvalidStatus):
		BadRequest(w, "Status must be available or unavailable", nil)
	case errors.Is(err, employee.ErrStatusForbidden):
		Forbidden(w, "You cannot change this employee's availability")
	case errors.Is(err, customer.ErrCustomerNotFound):
		NotFound(w, "Customer not found")

	// Work orders
	case errors.Is(err, workorder.ErrWorkOrderNotFound):
		NotFound(w, "Work order not found")
	case errors.Is(err, workorder.ErrWorkOrderSubmitted):
		Conflict(w, "Work order has already been submitted")
	case errors.Is(err, workorder.ErrNotAssignedToYou):
		Forbidden(w, "Work order is not assigned to you")

	// Tickets
	case errors.Is(err, ticket.ErrTicketNotFound):
		NotFound(w, "Ticket not found")
	case errors.Is(err, ticket.ErrCommentNotFound):
		NotFound(w, "Comment not found")
	case errors.Is(err, ticket.ErrNotYourTicket):
		Forbidden(w, "Ticket does not belong to you")

	// Requests
	case errors.Is(err, leave.ErrRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrRequestAlreadyProcessed):
		Conflict(w, "Leave request already processed")
	case errors.Is(err, advance.ErrRequestNotFound):
		NotFound(w, "Advance salary request not found")
	case errors.Is(err, advance.ErrRequestAlreadyProcessed):
		Conflict(w, "Advance salary request already processed")

	// Payroll
	case errors.Is(err, payroll.ErrRecordNotFound):
		NotFound(w, "Payroll record not found")
	case errors.Is(err, payroll.ErrPeriodExists):
		Conflict(w, "Payroll already generated for this employee and period")
	case errors.Is(err, payroll.ErrInvalidTransition):
		Conflict(w, "Payroll status transition not allowed")
	case errors.Is(err, payroll.ErrNotYourPayroll):
		Forbidden(w, "Payroll record does not belong to you")

	// Assets and schedules
	case errors.Is(err, asset.ErrAssetNotFound):
		NotFound(w, "Asset not found")
	case errors.Is(err, schedule.ErrEntryNotFound):
		NotFound(w, "Schedule entry not found")

	// Master data
	case errors.Is(err, servicetype.ErrServiceTypeNotFound):
		NotFound(w, "Service type not found")
	case errors.Is(err, servicetype.ErrNameExists):
		Conflict(w, "Service type name already exists in this business unit")
	case errors.Is(err, advertisement.ErrAdvertisementNotFound):
		NotFound(w, "Advertisement not found")

	// Ratings
	case errors.Is(err, rating.ErrRatingLinkNotFound):
		NotFound(w, "Rating link not found")
	case errors.Is(err, rating.ErrLinkExists):
		Conflict(w, "Rating link already exists for this work order")
	case errors.Is(err, rating.ErrOrderNotSubmitted):
		Conflict(w, "Work order has not been submitted yet")
	case errors.Is(err, rating.ErrAlreadySubmitted):
		Conflict(w, "Rating has already been submitted")

	// Notifications
	case errors.Is(err, notification.ErrNotificationNotFound):
		NotFound(w, "Notification not found")
	case errors.Is(err, notification.ErrInvalidKind):
		BadRequest(w, "Invalid notification kind", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
