package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"github.com/dealerdesk/finance-engine/internal/domain"
	"github.com/dealerdesk/finance-engine/internal/history"
	"github.com/dealerdesk/finance-engine/pkg/response"
)

type LookupHandler struct {
	history   *history.Service
	validator *validator.Validate
}

func NewLookupHandler(history *history.Service) *LookupHandler {
	return &LookupHandler{
		history:   history,
		validator: validator.New(),
	}
}

// Record adds a market-value lookup to the owner's history.
func (h *LookupHandler) Record(w http.ResponseWriter, r *http.Request) {
	var req domain.LookupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body", err)
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		response.BadRequest(w, "invalid request", err)
		return
	}

	result := domain.LookupResult{
		Key:        req.Key,
		Make:       req.Make,
		Model:      req.Model,
		Year:       req.Year,
		Value:      req.Value,
		LookedUpAt: time.Now(),
	}

	if err := h.history.Record(r.Context(), req.Owner, result); err != nil {
		writeBusinessError(w, err)
		return
	}

	response.Created(w, result)
}

// List returns the owner's lookup history, most recent first.
func (h *LookupHandler) List(w http.ResponseWriter, r *http.Request) {
	owner := mux.Vars(r)["owner"]

	results, err := h.history.List(r.Context(), owner)
	if err != nil {
		writeBusinessError(w, err)
		return
	}

	response.Success(w, results)
}

// Find returns the cached lookup for one plate/VIN, or 404.
func (h *LookupHandler) Find(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	result, err := h.history.Find(r.Context(), vars["owner"], vars["key"])
	if err != nil {
		writeBusinessError(w, err)
		return
	}
	if result == nil {
		response.NotFound(w, "no cached lookup for this key")
		return
	}

	response.Success(w, result)
}
