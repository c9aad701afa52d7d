package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/caribhr/payroll-backend-go/internal/domain/specialpay"
	"github.com/caribhr/payroll-backend-go/internal/handler/http/response"
	specialpayservice "github.com/caribhr/payroll-backend-go/internal/service/specialpay"
)

type SpecialPayHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
}

type specialPayHandlerImpl struct {
	specialPayService *specialpayservice.Service
}

func NewSpecialPayHandler(specialPayService *specialpayservice.Service) SpecialPayHandler {
	return &specialPayHandlerImpl{specialPayService: specialPayService}
}

func (h *specialPayHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req specialpay.CreateEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.specialPayService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Special pay entry created", result)
}

func (h *specialPayHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Entry ID is required", nil)
		return
	}

	if err := h.specialPayService.Approve(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Entry approved", nil)
}

func (h *specialPayHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Entry ID is required", nil)
		return
	}

	if err := h.specialPayService.Reject(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Entry rejected", nil)
}
