package http

import (
	"net/http"

	"github.com/cmlabs-hris/storeops-backend-go/internal/domain/payroll"
	"github.com/cmlabs-hris/storeops-backend-go/internal/handler/http/response"
)

type PayrollHandler interface {
	GetWeeklyPayroll(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &payrollHandlerImpl{
		payrollService: payrollService,
	}
}

func (h *payrollHandlerImpl) GetWeeklyPayroll(w http.ResponseWriter, r *http.Request) {
	req, err := storeWeekFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.payrollService.GetWeeklyPayroll(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
