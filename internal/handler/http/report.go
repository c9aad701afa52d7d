package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/caribhr/payroll-backend-go/internal/handler/http/response"
	reportservice "github.com/caribhr/payroll-backend-go/internal/service/report"
)

type ReportHandler interface {
	ACHExport(w http.ResponseWriter, r *http.Request)
	DeductionsReport(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService *reportservice.Service
}

func NewReportHandler(reportService *reportservice.Service) ReportHandler {
	return &reportHandlerImpl{reportService: reportService}
}

func (h *reportHandlerImpl) ACHExport(w http.ResponseWriter, r *http.Request) {
	runID := chi.URLParam(r, "runID")
	if runID == "" {
		response.BadRequest(w, "Run ID is required", nil)
		return
	}

	result, err := h.reportService.BuildACHExport(r.Context(), runID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *reportHandlerImpl) DeductionsReport(w http.ResponseWriter, r *http.Request) {
	runID := chi.URLParam(r, "runID")
	if runID == "" {
		response.BadRequest(w, "Run ID is required", nil)
		return
	}

	result, err := h.reportService.BuildDeductionsReport(r.Context(), runID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
