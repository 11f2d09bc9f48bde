package http

import (
	"encoding/json"
	"net/http"

	"github.com/cmlabs-hris/storeops-backend-go/internal/domain/timelog"
	"github.com/cmlabs-hris/storeops-backend-go/internal/handler/http/response"
)

type TimeLogHandler interface {
	ClockIn(w http.ResponseWriter, r *http.Request)
	ClockOut(w http.ResponseWriter, r *http.Request)
	ListEntries(w http.ResponseWriter, r *http.Request)
	Reconcile(w http.ResponseWriter, r *http.Request)
}

type timeLogHandlerImpl struct {
	timeLogService timelog.TimeLogService
}

func NewTimeLogHandler(timeLogService timelog.TimeLogService) TimeLogHandler {
	return &timeLogHandlerImpl{
		timeLogService: timeLogService,
	}
}

func (h *timeLogHandlerImpl) ClockIn(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeClockRequest(w, r)
	if !ok {
		return
	}

	result, err := h.timeLogService.ClockIn(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Clocked in", result)
}

func (h *timeLogHandlerImpl) ClockOut(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeClockRequest(w, r)
	if !ok {
		return
	}

	result, err := h.timeLogService.ClockOut(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Clocked out", result)
}

func (h *timeLogHandlerImpl) ListEntries(w http.ResponseWriter, r *http.Request) {
	req, err := storeWeekFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.timeLogService.ListEntries(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *timeLogHandlerImpl) Reconcile(w http.ResponseWriter, r *http.Request) {
	req, err := storeWeekFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.timeLogService.ReconcileWeek(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func decodeClockRequest(w http.ResponseWriter, r *http.Request) (timelog.ClockRequest, bool) {
	var req timelog.ClockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return req, false
	}
	req.StoreID = storeIDFromRequest(r)
	return req, true
}
