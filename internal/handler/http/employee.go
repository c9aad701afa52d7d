package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/caribhr/payroll-backend-go/internal/domain/employee"
	"github.com/caribhr/payroll-backend-go/internal/handler/http/response"
	employeeservice "github.com/caribhr/payroll-backend-go/internal/service/employee"
)

type EmployeeHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type employeeHandlerImpl struct {
	employeeService *employeeservice.Service
}

func NewEmployeeHandler(employeeService *employeeservice.Service) EmployeeHandler {
	return &employeeHandlerImpl{employeeService: employeeService}
}

func (h *employeeHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req employee.CreateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.employeeService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Employee created", toEmployeeResponse(result))
}

func (h *employeeHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	result, err := h.employeeService.GetByID(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, toEmployeeResponse(result))
}

func (h *employeeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.employeeService.ListActive(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	out := make([]employee.EmployeeResponse, 0, len(result))
	for _, emp := range result {
		out = append(out, toEmployeeResponse(emp))
	}

	response.Success(w, out)
}

func (h *employeeHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	var req employee.UpdateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = id

	result, err := h.employeeService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, toEmployeeResponse(result))
}

func (h *employeeHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	if err := h.employeeService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee deleted", nil)
}

func toEmployeeResponse(emp employee.Employee) employee.EmployeeResponse {
	resp := employee.EmployeeResponse{
		ID:                   emp.ID,
		EmployeeCode:         emp.EmployeeCode,
		FullName:             emp.FullName,
		Classification:       string(emp.Classification),
		PayFrequency:         string(emp.PayFrequency),
		MonthlySalary:        emp.MonthlySalary,
		HourlyRate:           emp.HourlyRate,
		StandardHoursPerWeek: emp.StandardHoursPerWeek,
		ShiftsPerWeek:        emp.ShiftsPerWeek,
		IsExemptSS:           emp.IsExemptSS,
		IsExemptMedical:      emp.IsExemptMedical,
		EmploymentStatus:     string(emp.EmploymentStatus),
		HasBankInfo:          emp.HasBankInfo(),
	}
	if emp.DOB != nil {
		dob := emp.DOB.Format("2006-01-02")
		resp.DOB = &dob
	}
	return resp
}
