package errors

import (
	"errors"
	"fmt"
)

// Domain errors
var (
	ErrQuoteNotFound          = errors.New("quote not found")
	ErrInvalidLoanParameters  = errors.New("invalid loan parameters")
	ErrImportValidationFailed = errors.New("import batch failed validation")
	ErrEmptyImportBatch       = errors.New("import batch contains no records")
)

// BusinessError represents a business logic error
type BusinessError struct {
	Code    string
	Message string
	Err     error
}

func (e *BusinessError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *BusinessError) Unwrap() error {
	return e.Err
}

// NewBusinessError creates a new business error
func NewBusinessError(code, message string, err error) *BusinessError {
	return &BusinessError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Error codes
const (
	ErrCodeQuoteNotFound          = "QUOTE_NOT_FOUND"
	ErrCodeInvalidLoanParameters  = "INVALID_LOAN_PARAMETERS"
	ErrCodeImportValidationFailed = "IMPORT_VALIDATION_FAILED"
	ErrCodeEmptyImportBatch       = "EMPTY_IMPORT_BATCH"
	ErrCodeDatabaseError          = "DATABASE_ERROR"
	ErrCodeCacheError             = "CACHE_ERROR"
)

// Wrap common errors with business context
func WrapQuoteNotFound(id string) *BusinessError {
	return NewBusinessError(
		ErrCodeQuoteNotFound,
		fmt.Sprintf("Quote with ID %s not found", id),
		ErrQuoteNotFound,
	)
}

func WrapInvalidLoanParameters(reason string) *BusinessError {
	return NewBusinessError(
		ErrCodeInvalidLoanParameters,
		reason,
		ErrInvalidLoanParameters,
	)
}

func WrapImportValidationFailed(violations int) *BusinessError {
	return NewBusinessError(
		ErrCodeImportValidationFailed,
		fmt.Sprintf("import batch rejected with %d validation error(s)", violations),
		ErrImportValidationFailed,
	)
}

func WrapEmptyImportBatch() *BusinessError {
	return NewBusinessError(
		ErrCodeEmptyImportBatch,
		"no importable rows found in the submitted CSV",
		ErrEmptyImportBatch,
	)
}

func WrapDatabaseError(err error) *BusinessError {
	return NewBusinessError(
		ErrCodeDatabaseError,
		"database operation failed",
		err,
	)
}

func WrapCacheError(err error) *BusinessError {
	return NewBusinessError(
		ErrCodeCacheError,
		"cache operation failed",
		err,
	)
}
