package http

import (
	"encoding/json"
	"net/http"

	"github.com/cmlabs-hris/storeops-backend-go/internal/domain/traffic"
	"github.com/cmlabs-hris/storeops-backend-go/internal/handler/http/response"
)

type TrafficHandler interface {
	RecordCount(w http.ResponseWriter, r *http.Request)
	GetStoreTraffic(w http.ResponseWriter, r *http.Request)
}

type trafficHandlerImpl struct {
	trafficService traffic.TrafficService
}

func NewTrafficHandler(trafficService traffic.TrafficService) TrafficHandler {
	return &trafficHandlerImpl{
		trafficService: trafficService,
	}
}

// RecordCount upserts one hour of door counter and register data
func (h *trafficHandlerImpl) RecordCount(w http.ResponseWriter, r *http.Request) {
	var req traffic.RecordCountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.StoreID = storeIDFromRequest(r)

	result, err := h.trafficService.RecordCount(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Traffic recorded", result)
}

func (h *trafficHandlerImpl) GetStoreTraffic(w http.ResponseWriter, r *http.Request) {
	req, err := storeWeekFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.trafficService.GetStoreTraffic(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
