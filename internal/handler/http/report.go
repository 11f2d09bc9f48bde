package http

import (
	"net/http"

	"github.com/cmlabs-hris/storeops-backend-go/internal/domain/report"
	"github.com/cmlabs-hris/storeops-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	GetStoreReport(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

// GetStoreReport returns seller metrics and conversion for a store-week
func (h *reportHandlerImpl) GetStoreReport(w http.ResponseWriter, r *http.Request) {
	req, err := storeWeekFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.reportService.GetStoreReport(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
