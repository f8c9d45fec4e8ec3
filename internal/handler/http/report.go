package http

import (
	"log/slog"
	"net/http"

	"github.com/serviceportals/ops-backend-go/internal/handler/http/response"
	"github.com/serviceportals/ops-backend-go/internal/service/report"
)

type ReportHandler interface {
	PayrollExport(w http.ResponseWriter, r *http.Request)
}

type ReportHandlerImpl struct {
	reportService report.Service
}

func NewReportHandler(reportService report.Service) ReportHandler {
	return &ReportHandlerImpl{reportService: reportService}
}

// PayrollExport implements ReportHandler. The export streams back as an
// XLSX download, optionally filtered by period.
func (h *ReportHandlerImpl) PayrollExport(w http.ResponseWriter, r *http.Request) {
	p, ok := mustPrincipal(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="payroll-export.xlsx"`)

	if err := h.reportService.PayrollExport(r.Context(), p.UnitID, r.URL.Query().Get("period"), w); err != nil {
		slog.Error("Payroll export service error", "error", err)
		response.HandleError(w, err)
	}
}
