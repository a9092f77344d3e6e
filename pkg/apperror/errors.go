package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Validation (VAL) ----

// Validation returns a caller-input error. Never submitted to the ledger.
func Validation(message string) *AppError {
	return New("VAL_001", message, http.StatusBadRequest)
}

func ErrWalletNotConnected() *AppError {
	return New("VAL_002", "Wallet not connected", http.StatusUnauthorized)
}

func ErrInvalidAmount() *AppError {
	return New("VAL_003", "Amount must be a positive number", http.StatusBadRequest)
}

// ---- Transaction lifecycle (TXN) ----

// ErrConcurrentOperation signals that another operation is already
// processing for the same target. The second request is rejected, not
// queued.
func ErrConcurrentOperation(target string) *AppError {
	return New("TXN_001", fmt.Sprintf("An operation is already in progress for %s", target), http.StatusConflict)
}

// ErrSubmission wraps a signing/submission layer failure (user rejected the
// signature, wallet disconnected mid-flow, malformed transaction).
func ErrSubmission(err error) *AppError {
	return Wrap("TXN_002", "Transaction submission failed", http.StatusBadGateway, err)
}

// ErrFinality wraps a ledger-side execution failure after submission.
func ErrFinality(err error) *AppError {
	return Wrap("TXN_003", "Transaction rejected by the ledger", http.StatusBadGateway, err)
}

// ---- Read path (FETCH) ----

const (
	FetchUnavailable = "FETCH_001"
	FetchMalformed   = "FETCH_002"
)

// ErrFetchUnavailable wraps a network/timeout failure while querying the
// ledger. Non-fatal: the last good snapshot is retained.
func ErrFetchUnavailable(err error) *AppError {
	return Wrap(FetchUnavailable, "Ledger unavailable", http.StatusServiceUnavailable, err)
}

// ErrFetchMalformed wraps an unexpected view function payload.
func ErrFetchMalformed(err error) *AppError {
	return Wrap(FetchMalformed, "Malformed ledger response", http.StatusBadGateway, err)
}

// ---- Rate limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

func ErrNotFound(entity string) *AppError {
	return New("SYS_404", fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}
