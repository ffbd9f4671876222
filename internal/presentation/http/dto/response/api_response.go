package response

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sokoni/sokoni-api/internal/application/service"
	"github.com/sokoni/sokoni-api/internal/domain/cart"
	"github.com/sokoni/sokoni-api/internal/domain/fulfillment"
	"github.com/sokoni/sokoni-api/internal/domain/payment"
	"github.com/sokoni/sokoni-api/internal/domain/pricing"
	"github.com/sokoni/sokoni-api/pkg/apperror"
	"github.com/sokoni/sokoni-api/pkg/pagination"
)

// APIResponse represents a standard API response
type APIResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Errors  interface{} `json:"errors,omitempty"`
	Meta    *Meta       `json:"meta,omitempty"`
}

// Meta contains metadata about the response
type Meta struct {
	Timestamp string `json:"timestamp"`
	RequestID string `json:"request_id"`
}

// newMeta creates metadata for the response
func newMeta(c *gin.Context) *Meta {
	requestID := c.GetHeader("X-Request-ID")
	if requestID == "" {
		requestID = uuid.New().String()
	}
	return &Meta{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		RequestID: requestID,
	}
}

// Success sends a success response
func Success(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, APIResponse{
		Success: true,
		Message: message,
		Data:    data,
		Meta:    newMeta(c),
	})
}

// SuccessWithPagination sends a success response with pagination
func SuccessWithPagination[T any](c *gin.Context, statusCode int, message string, result *pagination.PaginatedResult[T]) {
	c.JSON(statusCode, APIResponse{
		Success: true,
		Message: message,
		Data:    result,
		Meta:    newMeta(c),
	})
}

// toAppError translates engine validation failures and store conflicts into
// HTTP-coded errors. Engine failures are client-correctable (422); a store
// conflict asks the client to re-fetch and retry (409).
func toAppError(err error) *apperror.AppError {
	var insufficient *cart.InsufficientStockError
	if errors.As(err, &insufficient) {
		return apperror.NewUnprocessableError(insufficient.Error())
	}
	var conflict *service.StoreConflictError
	if errors.As(err, &conflict) {
		return apperror.NewConflictError(conflict.Error())
	}

	switch {
	case errors.Is(err, cart.ErrOutOfStock),
		errors.Is(err, cart.ErrDuplicateLineItem),
		errors.Is(err, payment.ErrOverpayment),
		errors.Is(err, payment.ErrNegativePayment),
		errors.Is(err, payment.ErrAlreadyPaid),
		errors.Is(err, fulfillment.ErrTerminalState),
		errors.Is(err, fulfillment.ErrInvalidTransition),
		errors.Is(err, pricing.ErrDivisionGuard):
		return apperror.NewUnprocessableError(err.Error())
	case errors.Is(err, cart.ErrLineNotFound):
		return apperror.NewAppError(http.StatusNotFound, err.Error())
	}
	return apperror.GetAppError(err)
}

// Error sends an error response
func Error(c *gin.Context, err error) {
	appErr := toAppError(err)
	c.JSON(appErr.Code, APIResponse{
		Success: false,
		Message: appErr.Message,
		Errors:  appErr.Errors,
		Meta:    newMeta(c),
	})
}

// ErrorWithCode sends an error response with a specific status code
func ErrorWithCode(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, APIResponse{
		Success: false,
		Message: message,
		Meta:    newMeta(c),
	})
}

// Created sends a 201 Created response
func Created(c *gin.Context, message string, data interface{}) {
	Success(c, http.StatusCreated, message, data)
}

// OK sends a 200 OK response
func OK(c *gin.Context, message string, data interface{}) {
	Success(c, http.StatusOK, message, data)
}

// NoContent sends a 204 No Content response
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// NotFound sends a 404 Not Found response
func NotFound(c *gin.Context, message string) {
	ErrorWithCode(c, http.StatusNotFound, message)
}

// Unauthorized sends a 401 Unauthorized response
func Unauthorized(c *gin.Context, message string) {
	ErrorWithCode(c, http.StatusUnauthorized, message)
}

// BadRequest sends a 400 Bad Request response
func BadRequest(c *gin.Context, message string) {
	ErrorWithCode(c, http.StatusBadRequest, message)
}
