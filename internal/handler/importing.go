package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/dealerdesk/finance-engine/internal/domain"
	"github.com/dealerdesk/finance-engine/internal/repository"
	"github.com/dealerdesk/finance-engine/internal/service"
	customError "github.com/dealerdesk/finance-engine/pkg/errors"
	"github.com/dealerdesk/finance-engine/pkg/response"
)

type ImportHandler struct {
	service   *service.ImportService
	catRepo   repository.CategoryRepository
	validator *validator.Validate
}

func NewImportHandler(service *service.ImportService, catRepo repository.CategoryRepository) *ImportHandler {
	return &ImportHandler{
		service:   service,
		catRepo:   catRepo,
		validator: validator.New(),
	}
}

// Preview dry-runs the pipeline: nothing is persisted, validation errors are
// part of the payload, not an HTTP failure.
func (h *ImportHandler) Preview(w http.ResponseWriter, r *http.Request) {
	var req domain.ImportPreviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body", err)
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		response.BadRequest(w, "invalid request", err)
		return
	}

	preview, err := h.service.Preview(r.Context(), req.CSV)
	if err != nil {
		writeBusinessError(w, err)
		return
	}

	response.Success(w, preview)
}

// Commit persists a validated batch. A batch with validation errors comes
// back as 422 carrying the full error list.
func (h *ImportHandler) Commit(w http.ResponseWriter, r *http.Request) {
	var req domain.ImportCommitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body", err)
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		response.BadRequest(w, "invalid request", err)
		return
	}

	summary, validationErrs, err := h.service.Commit(r.Context(), req.CSV)
	if err != nil {
		if errors.Is(err, customError.ErrImportValidationFailed) {
			response.UnprocessableEntity(w, "import batch failed validation", validationErrs)
			return
		}
		writeBusinessError(w, err)
		return
	}

	response.Created(w, summary)
}

// Categories lists the categories the classifier matches against.
func (h *ImportHandler) Categories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.catRepo.List(r.Context())
	if err != nil {
		writeBusinessError(w, customError.WrapDatabaseError(err))
		return
	}

	response.Success(w, categories)
}
