package handler

import (
	"net/http"
	"time"

	"github.com/dealerdesk/finance-engine/internal/service"
	"github.com/dealerdesk/finance-engine/pkg/response"
)

type CashflowHandler struct {
	service *service.CashflowService
}

func NewCashflowHandler(service *service.CashflowService) *CashflowHandler {
	return &CashflowHandler{service: service}
}

// Summary returns the month's income/expense totals. An optional ?month=yyyy-mm
// query selects a past period; default is the current month.
func (h *CashflowHandler) Summary(w http.ResponseWriter, r *http.Request) {
	ref := time.Now()
	if month := r.URL.Query().Get("month"); month != "" {
		parsed, err := time.Parse("2006-01", month)
		if err != nil {
			response.BadRequest(w, "month must be in yyyy-mm format", err)
			return
		}
		ref = parsed
	}

	summary, err := h.service.Summary(r.Context(), ref)
	if err != nil {
		writeBusinessError(w, err)
		return
	}

	response.Success(w, summary)
}
