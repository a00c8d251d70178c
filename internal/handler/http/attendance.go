package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/nizami-hq/nizami-backend-go/internal/domain/attendance"
	"github.com/nizami-hq/nizami-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	Toggle(w http.ResponseWriter, r *http.Request)
	ListShifts(w http.ResponseWriter, r *http.Request)
	DeleteShift(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &AttendanceHandlerImpl{attendanceService: attendanceService}
}

// Toggle implements AttendanceHandler.
func (h *AttendanceHandlerImpl) Toggle(w http.ResponseWriter, r *http.Request) {
	var req attendance.ToggleRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Toggle decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.attendanceService.Toggle(r.Context(), req)
	if err != nil {
		slog.Error("Toggle service error", "error", err, "employee_id", req.EmployeeID)
		response.HandleError(w, err)
		return
	}

	slog.Info("Attendance toggled",
		"employee_id", req.EmployeeID,
		"action", result.Action)
	response.Success(w, result)
}

// ListShifts implements AttendanceHandler.
func (h *AttendanceHandlerImpl) ListShifts(w http.ResponseWriter, r *http.Request) {
	filter := attendance.ShiftFilter{}

	if v := r.URL.Query().Get("employee_id"); v != "" {
		filter.EmployeeID = &v
	}
	if v := r.URL.Query().Get("date"); v != "" {
		filter.Date = &v
	}
	if v := r.URL.Query().Get("status"); v != "" {
		status := attendance.ShiftStatus(v)
		filter.Status = &status
	}
	if v := r.URL.Query().Get("limit"); v != "" {
		if limit, err := strconv.Atoi(v); err == nil {
			filter.Limit = limit
		}
	}

	shifts, err := h.attendanceService.ListShifts(r.Context(), filter)
	if err != nil {
		slog.Error("ListShifts service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, shifts)
}

// DeleteShift implements AttendanceHandler.
func (h *AttendanceHandlerImpl) DeleteShift(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.attendanceService.DeleteShift(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Shift deleted successfully", nil)
}
