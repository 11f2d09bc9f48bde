package http

import (
	"encoding/json"
	"net/http"

	"github.com/cmlabs-hris/storeops-backend-go/internal/domain/sale"
	"github.com/cmlabs-hris/storeops-backend-go/internal/handler/http/response"
)

type SaleHandler interface {
	CreateSale(w http.ResponseWriter, r *http.Request)
	CreateReturn(w http.ResponseWriter, r *http.Request)
	ListSales(w http.ResponseWriter, r *http.Request)
}

type saleHandlerImpl struct {
	saleService sale.SaleService
}

func NewSaleHandler(saleService sale.SaleService) SaleHandler {
	return &saleHandlerImpl{
		saleService: saleService,
	}
}

func (h *saleHandlerImpl) CreateSale(w http.ResponseWriter, r *http.Request) {
	var req sale.CreateSaleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.StoreID = storeIDFromRequest(r)

	result, err := h.saleService.CreateSale(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Sale recorded successfully", result)
}

func (h *saleHandlerImpl) CreateReturn(w http.ResponseWriter, r *http.Request) {
	var req sale.CreateReturnRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.StoreID = storeIDFromRequest(r)

	result, err := h.saleService.CreateReturn(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Return recorded successfully", result)
}

func (h *saleHandlerImpl) ListSales(w http.ResponseWriter, r *http.Request) {
	req, err := storeWeekFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.saleService.ListSales(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
