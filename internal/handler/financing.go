package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/dealerdesk/finance-engine/internal/config"
	"github.com/dealerdesk/finance-engine/internal/domain"
	"github.com/dealerdesk/finance-engine/internal/service"
	customError "github.com/dealerdesk/finance-engine/pkg/errors"
	"github.com/dealerdesk/finance-engine/pkg/response"
)

type FinancingHandler struct {
	service   *service.FinancingService
	validator *validator.Validate
	cfg       *config.Config
}

func NewFinancingHandler(service *service.FinancingService, cfg *config.Config) *FinancingHandler {
	return &FinancingHandler{
		service:   service,
		validator: validator.New(),
		cfg:       cfg,
	}
}

// CreateQuote computes a financing simulation and stores it.
func (h *FinancingHandler) CreateQuote(w http.ResponseWriter, r *http.Request) {
	var req domain.QuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body", err)
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		response.BadRequest(w, "invalid request", err)
		return
	}

	quote, result, err := h.service.Quote(r.Context(), req.Parameters())
	if err != nil {
		writeBusinessError(w, err)
		return
	}

	response.Created(w, domain.QuoteResponse{Quote: quote, Result: result})
}

// GetQuote returns a stored simulation by id.
func (h *FinancingHandler) GetQuote(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["quoteId"])
	if err != nil {
		response.BadRequest(w, "invalid quote id", err)
		return
	}

	quote, err := h.service.GetQuote(r.Context(), id)
	if err != nil {
		writeBusinessError(w, err)
		return
	}

	response.Success(w, quote)
}

// ListQuotes returns the most recent simulations.
func (h *FinancingHandler) ListQuotes(w http.ResponseWriter, r *http.Request) {
	quotes, err := h.service.RecentQuotes(r.Context(), h.cfg.Business.QuoteListLimit)
	if err != nil {
		writeBusinessError(w, err)
		return
	}

	response.Success(w, quotes)
}

// writeBusinessError maps BusinessError codes onto HTTP statuses.
func writeBusinessError(w http.ResponseWriter, err error) {
	var bizErr *customError.BusinessError
	if !errors.As(err, &bizErr) {
		response.InternalServerError(w, "unexpected error", err)
		return
	}

	switch bizErr.Code {
	case customError.ErrCodeInvalidLoanParameters, customError.ErrCodeEmptyImportBatch:
		response.BadRequest(w, bizErr.Message, bizErr.Err)
	case customError.ErrCodeQuoteNotFound:
		response.NotFound(w, bizErr.Message)
	default:
		response.InternalServerError(w, bizErr.Message, bizErr.Err)
	}
}
