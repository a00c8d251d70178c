package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/nizami-hq/nizami-backend-go/internal/domain/payroll"
	"github.com/nizami-hq/nizami-backend-go/internal/handler/http/response"
)

type PayrollHandler interface {
	GetCycle(w http.ResponseWriter, r *http.Request)
	Summaries(w http.ResponseWriter, r *http.Request)
	EmployeeSummary(w http.ResponseWriter, r *http.Request)
	Report(w http.ResponseWriter, r *http.Request)
}

type PayrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &PayrollHandlerImpl{payrollService: payrollService}
}

// GetCycle implements PayrollHandler.
func (h *PayrollHandlerImpl) GetCycle(w http.ResponseWriter, r *http.Request) {
	cycle, err := h.payrollService.GetCycle(r.Context(), r.URL.Query().Get("cycle"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, cycle)
}

// Summaries implements PayrollHandler.
func (h *PayrollHandlerImpl) Summaries(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.payrollService.Summaries(r.Context(), r.URL.Query().Get("cycle"))
	if err != nil {
		slog.Error("Payroll summaries service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, summaries)
}

// EmployeeSummary implements PayrollHandler.
func (h *PayrollHandlerImpl) EmployeeSummary(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")

	summary, err := h.payrollService.EmployeeSummary(r.Context(), employeeID, r.URL.Query().Get("cycle"))
	if err != nil {
		slog.Error("Payroll employee summary service error", "error", err, "employee_id", employeeID)
		response.HandleError(w, err)
		return
	}

	response.Success(w, summary)
}

// Report implements PayrollHandler.
func (h *PayrollHandlerImpl) Report(w http.ResponseWriter, r *http.Request) {
	cycle := r.URL.Query().Get("cycle")

	pdfBytes, err := h.payrollService.Report(r.Context(), cycle)
	if err != nil {
		slog.Error("Payroll report service error", "error", err)
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="payroll-report.pdf"`)
	w.Header().Set("Content-Length", fmt.Sprintf("%d", len(pdfBytes)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(pdfBytes); err != nil {
		slog.Error("Failed to write payroll report", "error", err)
	}
}
