package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/issouftoure58-design/nexus-sub008/internal/domain/worktime"
	"github.com/issouftoure58-design/nexus-sub008/internal/handler/http/response"
)

type WorktimeHandler interface {
	CreateAttendance(w http.ResponseWriter, r *http.Request)
	GetAttendance(w http.ResponseWriter, r *http.Request)
	GetBreakdownReport(w http.ResponseWriter, r *http.Request)
}

type worktimeHandlerImpl struct {
	worktimeService worktime.WorktimeService
}

func NewWorktimeHandler(worktimeService worktime.WorktimeService) WorktimeHandler {
	return &worktimeHandlerImpl{worktimeService: worktimeService}
}

func (h *worktimeHandlerImpl) CreateAttendance(w http.ResponseWriter, r *http.Request) {
	var req worktime.CreateAttendanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.worktimeService.CreateAttendance(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Attendance record created", result)
}

func (h *worktimeHandlerImpl) GetAttendance(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.worktimeService.GetAttendance(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *worktimeHandlerImpl) GetBreakdownReport(w http.ResponseWriter, r *http.Request) {
	filter := worktime.BreakdownFilter{
		EmployeeID: chi.URLParam(r, "employeeID"),
		From:       r.URL.Query().Get("from"),
		To:         r.URL.Query().Get("to"),
	}

	result, err := h.worktimeService.GetBreakdownReport(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
