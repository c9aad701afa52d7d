package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/caribhr/payroll-backend-go/internal/domain/loan"
	"github.com/caribhr/payroll-backend-go/internal/handler/http/response"
	loanservice "github.com/caribhr/payroll-backend-go/internal/service/loan"
)

type LoanHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	ListByEmployee(w http.ResponseWriter, r *http.Request)
	Cancel(w http.ResponseWriter, r *http.Request)
	GetPayments(w http.ResponseWriter, r *http.Request)
}

type loanHandlerImpl struct {
	loanService *loanservice.Service
}

func NewLoanHandler(loanService *loanservice.Service) LoanHandler {
	return &loanHandlerImpl{loanService: loanService}
}

func (h *loanHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req loan.CreateLoanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.loanService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Loan created", toLoanResponse(result))
}

func (h *loanHandlerImpl) ListByEmployee(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	result, err := h.loanService.GetByEmployee(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	out := make([]loan.LoanResponse, 0, len(result))
	for _, l := range result {
		out = append(out, toLoanResponse(l))
	}

	response.Success(w, out)
}

func (h *loanHandlerImpl) Cancel(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Loan ID is required", nil)
		return
	}

	if err := h.loanService.Cancel(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Loan cancelled", nil)
}

func (h *loanHandlerImpl) GetPayments(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Loan ID is required", nil)
		return
	}

	result, err := h.loanService.GetPayments(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func toLoanResponse(l loan.Loan) loan.LoanResponse {
	return loan.LoanResponse{
		ID:               l.ID,
		EmployeeID:       l.EmployeeID,
		Type:             string(l.Type),
		OriginalAmount:   l.OriginalAmount,
		RemainingBalance: l.RemainingBalance,
		Installment:      l.Installment,
		Status:           string(l.Status),
		PayeeName:        l.PayeeName,
		StartDate:        l.StartDate.Format("2006-01-02"),
	}
}
