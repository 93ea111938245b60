package utils

import (
	"errors"
	"log"
	"net/http"

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
	v, _ := c.Get("trace_id")
	s, _ := v.(string)
	return s
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

// HandleServiceError maps service-layer sentinel errors onto HTTP responses.
// Anything unrecognized is reported as a 500 without leaking details.
func HandleServiceError(c *gin.Context, err error) {
	var validationErrs ValidationErrors
	if errors.As(err, &validationErrs) {
		RespondError(c, http.StatusBadRequest, validationErrs.Error())
		return
	}

	switch {
	case errors.Is(err, ErrEmailAlreadyExists),
		errors.Is(err, ErrInvalidCredentials),
		errors.Is(err, ErrOutOfStock),
		errors.Is(err, ErrInvalidInput):
		RespondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrNoToken):
		RespondError(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, ErrInvalidToken), errors.Is(err, ErrForbidden):
		RespondError(c, http.StatusForbidden, err.Error())
	case errors.Is(err, ErrUserNotFound),
		errors.Is(err, ErrCustomerNotFound),
		errors.Is(err, ErrVendorNotFound),
		errors.Is(err, ErrEventNotFound),
		errors.Is(err, ErrGiftNotFound),
		errors.Is(err, ErrOrderNotFound):
		RespondError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrProvisionFailed):
		log.Printf("Provisioning error: %v", err)
		RespondError(c, http.StatusInternalServerError, ErrProvisionFailed.Error())
	case errors.Is(err, ErrDatabaseError):
		log.Printf("Database error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
