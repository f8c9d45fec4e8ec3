package report

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/serviceportals/ops-backend-go/internal/domain/employee"
	"github.com/serviceportals/ops-backend-go/internal/domain/payroll"
)

// Service renders XLSX exports for admins.
type Service interface {
	PayrollExport(ctx context.Context, unitID string, period string, w io.Writer) error
}

type ReportServiceImpl struct {
	records   payroll.Repository
	employees employee.Repository
}

func NewReportService(records payroll.Repository, employees employee.Repository) Service {
	return &ReportServiceImpl{records: records, employees: employees}
}

var payrollHeaders = []interface{}{
	"Employee", "Period", "Base Salary", "Overtime Pay", "Deductions", "Net Pay", "Status", "Signed At",
}

// PayrollExport writes one payroll row per record for the unit,
// optionally filtered by period.
func (s *ReportServiceImpl) PayrollExport(ctx context.Context, unitID string, period string, w io.Writer) error {
	records, err := s.records.List(ctx, unitID, "", period)
	if err != nil {
		return fmt.Errorf("failed to list payroll records: %w", err)
	}

	names := make(map[string]string)
	employees, err := s.employees.GetByUnitID(ctx, unitID)
	if err != nil {
		return fmt.Errorf("failed to list employees: %w", err)
	}
	for _, e := range employees {
		names[e.ID] = e.Name
	}

	f := excelize.NewFile()
	sheet := "Payroll"
	f.SetSheetName("Sheet1", sheet)
	f.SetSheetRow(sheet, "A1", &payrollHeaders)
	style, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	f.SetCellStyle(sheet, "A1", "H1", style)

	for i, rec := range records {
		name := names[rec.EmployeeID]
		if name == "" {
			name = rec.EmployeeID
		}
		signedAt := ""
		if rec.SignedAt != nil {
			signedAt = rec.SignedAt.Format(time.RFC3339)
		}

		row := []interface{}{
			name,
			rec.Period,
			rec.BaseSalary.StringFixed(2),
			rec.OvertimePay.StringFixed(2),
			rec.Deductions.StringFixed(2),
			rec.NetPay.StringFixed(2),
			string(rec.Status),
			signedAt,
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		f.SetSheetRow(sheet, cell, &row)
	}

	f.SetColWidth(sheet, "A", "A", 25)
	f.SetColWidth(sheet, "C", "F", 15)
	f.SetColWidth(sheet, "H", "H", 25)

	return f.Write(w)
}
