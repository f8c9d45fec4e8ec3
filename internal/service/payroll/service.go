package payroll

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/serviceportals/ops-backend-go/internal/domain/employee"
	"github.com/serviceportals/ops-backend-go/internal/domain/payroll"
	"github.com/serviceportals/ops-backend-go/internal/domain/unit"
	"github.com/serviceportals/ops-backend-go/internal/pkg/jwt"
	"github.com/serviceportals/ops-backend-go/internal/pkg/pdf"
	"github.com/serviceportals/ops-backend-go/internal/pkg/storage"
)

type PayrollServiceImpl struct {
	records   payroll.Repository
	employees employee.Repository
	units     unit.Repository
	files     storage.FileStorage
	slips     pdf.Generator
}

func NewPayrollService(
	records payroll.Repository,
	employees employee.Repository,
	units unit.Repository,
	files storage.FileStorage,
	slips pdf.Generator,
) payroll.Service {
	return &PayrollServiceImpl{
		records:   records,
		employees: employees,
		units:     units,
		files:     files,
		slips:     slips,
	}
}

// Generate implements payroll.Service. One record per employee and
// period; a duplicate surfaces as ErrPeriodExists.
func (s *PayrollServiceImpl) Generate(ctx context.Context, p jwt.Principal, req payroll.GenerateRequest) (payroll.Record, error) {
	if _, err := s.employees.GetByID(ctx, req.EmployeeID, p.UnitID); err != nil {
		return payroll.Record{}, err
	}

	base, err := decimal.NewFromString(req.BaseSalary)
	if err != nil {
		return payroll.Record{}, fmt.Errorf("invalid base salary: %w", err)
	}
	overtime := decimal.Zero
	if req.OvertimePay != "" {
		if overtime, err = decimal.NewFromString(req.OvertimePay); err != nil {
			return payroll.Record{}, fmt.Errorf("invalid overtime pay: %w", err)
		}
	}
	deductions := decimal.Zero
	if req.Deductions != "" {
		if deductions, err = decimal.NewFromString(req.Deductions); err != nil {
			return payroll.Record{}, fmt.Errorf("invalid deductions: %w", err)
		}
	}

	rec := payroll.Record{
		UnitID:      p.UnitID,
		EmployeeID:  req.EmployeeID,
		Period:      req.Period,
		BaseSalary:  base,
		OvertimePay: overtime,
		Deductions:  deductions,
		NetPay:      base.Add(overtime).Sub(deductions),
		Status:      payroll.StatusGenerated,
		CreatedBy:   p.ID,
	}

	return s.records.Create(ctx, rec)
}

// Get implements payroll.Service. Employees only see their own records.
func (s *PayrollServiceImpl) Get(ctx context.Context, p jwt.Principal, id string) (payroll.Record, error) {
	rec, err := s.records.GetByID(ctx, id, p.UnitID)
	if err != nil {
		return payroll.Record{}, err
	}
	if p.Role == jwt.RoleEmployee && rec.EmployeeID != p.ID {
		return payroll.Record{}, payroll.ErrNotYourPayroll
	}
	return rec, nil
}

func (s *PayrollServiceImpl) List(ctx context.Context, p jwt.Principal, employeeID string, period string) ([]payroll.Record, error) {
	if p.Role == jwt.RoleEmployee {
		employeeID = p.ID
	}
	return s.records.List(ctx, p.UnitID, employeeID, period)
}

// RequestSignature implements payroll.Service.
func (s *PayrollServiceImpl) RequestSignature(ctx context.Context, p jwt.Principal, id string) (payroll.Record, error) {
	return s.transition(ctx, p.UnitID, id, payroll.StatusPendingSignature)
}

// Sign implements payroll.Service. Accepting stores the signature image
// with the signer's IP and user agent; declining rejects the record.
func (s *PayrollServiceImpl) Sign(ctx context.Context, p jwt.Principal, req payroll.SignRequest) (payroll.Record, error) {
	rec, err := s.records.GetByID(ctx, req.ID, p.UnitID)
	if err != nil {
		return payroll.Record{}, err
	}
	if rec.EmployeeID != p.ID {
		return payroll.Record{}, payroll.ErrNotYourPayroll
	}

	target := payroll.StatusSigned
	if !req.Accept {
		target = payroll.StatusRejected
	}
	if !payroll.CanTransition(rec.Status, target) {
		return payroll.Record{}, payroll.ErrInvalidTransition
	}

	if req.Accept {
		sigURL := req.Signature
		if strings.HasPrefix(req.Signature, "data:") {
			sigURL, err = storage.SaveDataURL(ctx, s.files, "payroll-signatures", req.Signature)
			if err != nil {
				return payroll.Record{}, fmt.Errorf("failed to store signature: %w", err)
			}
		}
		now := time.Now()
		rec.SignatureURL = &sigURL
		rec.SignedAt = &now
		rec.SignedIP = &req.IPAddress
		rec.SignedUA = &req.UserAgent
	}

	rec.Status = target
	if err := s.records.Update(ctx, rec); err != nil {
		return payroll.Record{}, fmt.Errorf("failed to update payroll record: %w", err)
	}

	return rec, nil
}

// Complete implements payroll.Service.
func (s *PayrollServiceImpl) Complete(ctx context.Context, p jwt.Principal, id string) (payroll.Record, error) {
	return s.transition(ctx, p.UnitID, id, payroll.StatusCompleted)
}

func (s *PayrollServiceImpl) transition(ctx context.Context, unitID, id string, target payroll.Status) (payroll.Record, error) {
	rec, err := s.records.GetByID(ctx, id, unitID)
	if err != nil {
		return payroll.Record{}, err
	}
	if !payroll.CanTransition(rec.Status, target) {
		return payroll.Record{}, payroll.ErrInvalidTransition
	}

	rec.Status = target
	if err := s.records.Update(ctx, rec); err != nil {
		return payroll.Record{}, fmt.Errorf("failed to update payroll record: %w", err)
	}
	return rec, nil
}

func (s *PayrollServiceImpl) Delete(ctx context.Context, p jwt.Principal, id string) error {
	return s.records.Delete(ctx, id, p.UnitID)
}

// Slip implements payroll.Service.
func (s *PayrollServiceImpl) Slip(ctx context.Context, p jwt.Principal, id string) (io.Reader, error) {
	rec, err := s.Get(ctx, p, id)
	if err != nil {
		return nil, err
	}

	employeeData, err := s.employees.GetByID(ctx, rec.EmployeeID, rec.UnitID)
	if err != nil {
		return nil, err
	}
	unitData, err := s.units.GetByID(ctx, rec.UnitID)
	if err != nil {
		return nil, err
	}

	signedAt := "-"
	if rec.SignedAt != nil {
		signedAt = rec.SignedAt.Format(time.RFC1123)
	}

	return s.slips.GeneratePayslip(ctx, pdf.PayslipData{
		UnitName:     unitData.Name,
		UnitCode:     unitData.Code,
		EmployeeName: employeeData.Name,
		Period:       rec.Period,
		BaseSalary:   rec.BaseSalary.StringFixed(2),
		OvertimePay:  rec.OvertimePay.StringFixed(2),
		Deductions:   rec.Deductions.StringFixed(2),
		NetPay:       rec.NetPay.StringFixed(2),
		Status:       string(rec.Status),
		SignedAt:     signedAt,
	})
}
