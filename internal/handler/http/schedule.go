package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/cmlabs-hris/storeops-backend-go/internal/domain/schedule"
	"github.com/cmlabs-hris/storeops-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type ScheduleHandler interface {
	GetSchedule(w http.ResponseWriter, r *http.Request)
	AddRow(w http.ResponseWriter, r *http.Request)
	UpdateRow(w http.ResponseWriter, r *http.Request)
	UpdateActualHours(w http.ResponseWriter, r *http.Request)

	// Manager only
	OverrideActualHours(w http.ResponseWriter, r *http.Request)
	Lock(w http.ResponseWriter, r *http.Request)
	Unlock(w http.ResponseWriter, r *http.Request)
}

type scheduleHandlerImpl struct {
	scheduleService schedule.ScheduleService
}

func NewScheduleHandler(scheduleService schedule.ScheduleService) ScheduleHandler {
	return &scheduleHandlerImpl{
		scheduleService: scheduleService,
	}
}

func (h *scheduleHandlerImpl) GetSchedule(w http.ResponseWriter, r *http.Request) {
	req, err := storeWeekFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.scheduleService.GetSchedule(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *scheduleHandlerImpl) AddRow(w http.ResponseWriter, r *http.Request) {
	sw, err := storeWeekFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req schedule.AddRowRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.StoreWeek = sw

	result, err := h.scheduleService.AddRow(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Row added successfully", result)
}

func (h *scheduleHandlerImpl) UpdateRow(w http.ResponseWriter, r *http.Request) {
	sw, err := storeWeekFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req schedule.UpdateRowRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.StoreWeek = sw
	req.RowID = chi.URLParam(r, "rowID")

	result, err := h.scheduleService.UpdateRow(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Row updated successfully", result)
}

func (h *scheduleHandlerImpl) UpdateActualHours(w http.ResponseWriter, r *http.Request) {
	h.writeActualHours(w, r, h.scheduleService.UpdateActualHours)
}

func (h *scheduleHandlerImpl) OverrideActualHours(w http.ResponseWriter, r *http.Request) {
	h.writeActualHours(w, r, h.scheduleService.OverrideActualHours)
}

func (h *scheduleHandlerImpl) writeActualHours(
	w http.ResponseWriter,
	r *http.Request,
	write func(ctx context.Context, req schedule.UpdateActualHoursRequest) (schedule.ScheduleResponse, error),
) {
	sw, err := storeWeekFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req schedule.UpdateActualHoursRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.StoreWeek = sw
	req.RowID = chi.URLParam(r, "rowID")

	result, err := write(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Actual hours updated successfully", result)
}

func (h *scheduleHandlerImpl) Lock(w http.ResponseWriter, r *http.Request) {
	h.setLocked(w, r, true)
}

func (h *scheduleHandlerImpl) Unlock(w http.ResponseWriter, r *http.Request) {
	h.setLocked(w, r, false)
}

func (h *scheduleHandlerImpl) setLocked(w http.ResponseWriter, r *http.Request, locked bool) {
	req, err := storeWeekFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.scheduleService.SetLocked(r.Context(), req, locked)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	message := "Schedule unlocked"
	if locked {
		message = "Schedule locked"
	}
	response.SuccessWithMessage(w, message, result)
}
