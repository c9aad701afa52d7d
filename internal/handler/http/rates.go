package http

import (
	"encoding/json"
	"net/http"

	"github.com/caribhr/payroll-backend-go/internal/domain/rates"
	"github.com/caribhr/payroll-backend-go/internal/handler/http/response"
	ratesservice "github.com/caribhr/payroll-backend-go/internal/service/rates"
)

type RateTableHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
}

type rateTableHandlerImpl struct {
	ratesService *ratesservice.Service
}

func NewRateTableHandler(ratesService *ratesservice.Service) RateTableHandler {
	return &rateTableHandlerImpl{ratesService: ratesService}
}

func (h *rateTableHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	result, err := h.ratesService.GetActive(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *rateTableHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req rates.RateTable
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.ratesService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Rate table updated", result)
}
