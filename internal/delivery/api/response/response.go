// Package response renders the JSON envelopes shared by every API handler.
package response

import (
	"net/http"
	"strconv"

	deliverycontext "editorradar/internal/delivery/context"
	domainerrors "editorradar/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// RetryAfterSeconds is advertised on 429 and 503 responses.
const RetryAfterSeconds = 5

// SuccessResponse defines the structure for successful responses
type SuccessResponse struct {
	Data any       `json:"data"`
	Meta *MetaInfo `json:"meta"`
}

// ErrorResponse defines the structure for error responses
type ErrorResponse struct {
	Error *ErrorInfo `json:"error"`
	Meta  *MetaInfo  `json:"meta"`
}

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code      string `json:"code"`              // Machine-readable error code, e.g., "INVALID_QUERY"
	Message   string `json:"message"`           // User-friendly error message
	Details   any    `json:"details,omitempty"` // Only for 4xx errors other than 401/403
	Retryable bool   `json:"retryable"`
}

// MetaInfo represents response metadata
type MetaInfo struct {
	RequestID string `json:"request_id"`
}

func meta(c echo.Context) *MetaInfo {
	return &MetaInfo{RequestID: deliverycontext.GetRequestID(c)}
}

// Success returns a successful response
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, SuccessResponse{
		Data: data,
		Meta: meta(c),
	})
}

// Error returns an error response
func Error(c echo.Context, statusCode int, errorCode string, message string, details any) error {
	return write(c, statusCode, errorCode, message, details, false)
}

func write(c echo.Context, statusCode int, errorCode, message string, details any, retryable bool) error {
	if statusCode >= http.StatusInternalServerError || statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden {
		details = nil
	}
	if statusCode == http.StatusServiceUnavailable || statusCode == http.StatusTooManyRequests {
		c.Response().Header().Set("Retry-After", strconv.Itoa(RetryAfterSeconds))
		retryable = true
	}

	return c.JSON(statusCode, ErrorResponse{
		Error: &ErrorInfo{
			Code:      errorCode,
			Message:   message,
			Details:   details,
			Retryable: retryable,
		},
		Meta: meta(c),
	})
}

// BadRequest returns a 400 error
func BadRequest(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, nil)
}

// BadRequestWithDetails returns a 400 error with details
func BadRequestWithDetails(c echo.Context, errorCode string, message string, details any) error {
	return Error(c, http.StatusBadRequest, errorCode, message, details)
}

// BindingError returns a binding error response
func BindingError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, nil)
}

// Unauthorized returns a 401 error
func Unauthorized(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusUnauthorized, errorCode, message, nil)
}

// Forbidden returns a 403 error
func Forbidden(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusForbidden, errorCode, message, nil)
}

// InternalServerError returns a 500 error
func InternalServerError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message, nil)
}

// HandleAppError renders domain errors; anything else is handed to the central error handler.
func HandleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		var details any
		if d := appErr.Details(); d != "" {
			details = d
		}

		return write(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), details, domainerrors.IsRetryable(err))
	}

	return errors.WithStack(err)
}
