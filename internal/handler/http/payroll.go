package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/issouftoure58-design/nexus-sub008/internal/domain/payroll"
	"github.com/issouftoure58-design/nexus-sub008/internal/handler/http/response"
)

type PayrollHandler interface {
	ComputeRun(w http.ResponseWriter, r *http.Request)
	GetRun(w http.ResponseWriter, r *http.Request)
	GetActiveRun(w http.ResponseWriter, r *http.Request)
	ListRuns(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &payrollHandlerImpl{payrollService: payrollService}
}

func (h *payrollHandlerImpl) ComputeRun(w http.ResponseWriter, r *http.Request) {
	var req payroll.ComputeRunRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.payrollService.ComputeRun(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Payroll run computed and posted", result)
}

func (h *payrollHandlerImpl) GetRun(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.payrollService.GetRun(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) GetActiveRun(w http.ResponseWriter, r *http.Request) {
	year, month, ok := periodParams(r)
	if !ok {
		response.BadRequest(w, "Invalid period parameters", nil)
		return
	}

	result, err := h.payrollService.GetActiveRun(r.Context(), year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) ListRuns(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	result, err := h.payrollService.ListRuns(r.Context(), page, limit)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	totalPages := 0
	if result.Limit > 0 {
		totalPages = int((result.TotalCount + int64(result.Limit) - 1) / int64(result.Limit))
	}
	response.SuccessWithMeta(w, result.Data, &response.Meta{
		Page:       result.Page,
		Limit:      result.Limit,
		TotalItems: result.TotalCount,
		TotalPages: totalPages,
	})
}

func periodParams(r *http.Request) (year, month int, ok bool) {
	year, errY := strconv.Atoi(chi.URLParam(r, "year"))
	month, errM := strconv.Atoi(chi.URLParam(r, "month"))
	if errY != nil || errM != nil || month < 1 || month > 12 {
		return 0, 0, false
	}
	return year, month, true
}
