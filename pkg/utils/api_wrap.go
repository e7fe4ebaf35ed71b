package utils

import (
	"errors"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func traceID(c *gin.Context) string {
	if v, ok := c.Get("trace_id"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

func RespondCreated(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusCreated, APIResponse{
		Status:  "success",
		Code:    http.StatusCreated,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceID(c),
	})
}

// HandleServiceError maps service-layer sentinel errors to the HTTP taxonomy.
// Internal errors are logged and, outside development mode, their detail is
// replaced by a generic message.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrValidation):
		RespondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrEmptyCart):
		RespondError(c, http.StatusBadRequest, "Cart is empty")
	case errors.Is(err, ErrNoRemainingDays):
		RespondError(c, http.StatusBadRequest, "No undelivered days remain on this plan")
	case errors.Is(err, ErrInvalidTransition):
		RespondError(c, http.StatusBadRequest, "Invalid status transition")
	case errors.Is(err, ErrPaymentVerificationFailed), errors.Is(err, ErrInvalidSignature):
		RespondError(c, http.StatusBadRequest, "Payment verification failed")
	case errors.Is(err, ErrEmailAlreadyExists):
		RespondError(c, http.StatusBadRequest, "Email already registered")
	case errors.Is(err, ErrInvalidCredentials):
		RespondError(c, http.StatusUnauthorized, "Invalid email or password")
	case errors.Is(err, ErrUnauthenticated):
		RespondError(c, http.StatusUnauthorized, "Authentication required")
	case errors.Is(err, ErrForbidden):
		RespondError(c, http.StatusForbidden, "Forbidden: insufficient permissions")
	case errors.Is(err, ErrNotFound):
		RespondError(c, http.StatusNotFound, "Resource not found")
	default:
		log.Printf("internal error: %v", err)
		msg := "Internal server error"
		if os.Getenv("APP_ENV") == "development" {
			msg = err.Error()
		}
		RespondError(c, http.StatusInternalServerError, msg)
	}
}
