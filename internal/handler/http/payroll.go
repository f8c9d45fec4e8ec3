package http

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/serviceportals/ops-backend-go/internal/domain/payroll"
	"github.com/serviceportals/ops-backend-go/internal/handler/http/response"
)

type PayrollHandler interface {
	Generate(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	RequestSignature(w http.ResponseWriter, r *http.Request)
	Sign(w http.ResponseWriter, r *http.Request)
	Complete(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	Slip(w http.ResponseWriter, r *http.Request)
}

type PayrollHandlerImpl struct {
	payrollService payroll.Service
}

func NewPayrollHandler(payrollService payroll.Service) PayrollHandler {
	return &PayrollHandlerImpl{payrollService: payrollService}
}

// Generate implements PayrollHandler.
func (h *PayrollHandlerImpl) Generate(w http.ResponseWriter, r *http.Request) {
	p, ok := mustPrincipal(w, r)
	if !ok {
		return
	}

	var generateReq payroll.GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&generateReq); err != nil {
		slog.Error("Payroll generate decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := generateReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	rec, err := h.payrollService.Generate(r.Context(), p, generateReq)
	if err != nil {
		slog.Error("Payroll generate service error", "error", err, "employee_id", generateReq.EmployeeID, "period", generateReq.Period)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Payroll record generated", payroll.ToResponse(rec))
}

// Get implements PayrollHandler.
func (h *PayrollHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	p, ok := mustPrincipal(w, r)
	if !ok {
		return
	}

	rec, err := h.payrollService.Get(r.Context(), p, chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, payroll.ToResponse(rec))
}

// List implements PayrollHandler.
func (h *PayrollHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	p, ok := mustPrincipal(w, r)
	if !ok {
		return
	}

	records, err := h.payrollService.List(r.Context(), p, r.URL.Query().Get("employee_id"), r.URL.Query().Get("period"))
	if err != nil {
		slog.Error("Payroll list service error", "error", err)
		response.HandleError(w, err)
		return
	}

	items := make([]payroll.RecordResponse, 0, len(records))
	for _, rec := range records {
		items = append(items, payroll.ToResponse(rec))
	}
	response.Success(w, items)
}

// RequestSignature implements PayrollHandler.
func (h *PayrollHandlerImpl) RequestSignature(w http.ResponseWriter, r *http.Request) {
	p, ok := mustPrincipal(w, r)
	if !ok {
		return
	}

	rec, err := h.payrollService.RequestSignature(r.Context(), p, chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Signature requested", payroll.ToResponse(rec))
}

// Sign implements PayrollHandler. IP address and user agent are captured
// here for the signature audit trail.
func (h *PayrollHandlerImpl) Sign(w http.ResponseWriter, r *http.Request) {
	p, ok := mustPrincipal(w, r)
	if !ok {
		return
	}

	var signReq payroll.SignRequest
	if err := json.NewDecoder(r.Body).Decode(&signReq); err != nil {
		slog.Error("Payroll sign decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	signReq.ID = chi.URLParam(r, "id")
	signReq.IPAddress = r.RemoteAddr
	signReq.UserAgent = r.UserAgent()

	if err := signReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	rec, err := h.payrollService.Sign(r.Context(), p, signReq)
	if err != nil {
		slog.Error("Payroll sign service error", "error", err, "record_id", signReq.ID)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll record signed", payroll.ToResponse(rec))
}

// Complete implements PayrollHandler.
func (h *PayrollHandlerImpl) Complete(w http.ResponseWriter, r *http.Request) {
	p, ok := mustPrincipal(w, r)
	if !ok {
		return
	}

	rec, err := h.payrollService.Complete(r.Context(), p, chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll record completed", payroll.ToResponse(rec))
}

// Delete implements PayrollHandler.
func (h *PayrollHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	p, ok := mustPrincipal(w, r)
	if !ok {
		return
	}

	if err := h.payrollService.Delete(r.Context(), p, chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll record deleted", nil)
}

// Slip implements PayrollHandler. The payslip streams back as a PDF
// download.
func (h *PayrollHandlerImpl) Slip(w http.ResponseWriter, r *http.Request) {
	p, ok := mustPrincipal(w, r)
	if !ok {
		return
	}

	id := chi.URLParam(r, "id")
	slip, err := h.payrollService.Slip(r.Context(), p, id)
	if err != nil {
		slog.Error("Payroll slip service error", "error", err, "record_id", id)
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="payslip-`+id+`.pdf"`)
	if _, err := io.Copy(w, slip); err != nil {
		slog.Error("Payroll slip write error", "error", err, "record_id", id)
	}
}
