package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"coursepay/internal/domain"
)

// RespondDomainError maps domain errors to HTTP responses. Internal
// detail is never echoed for 5xx.
func RespondDomainError(c *gin.Context, err error) {
	switch {
	case domain.IsValidation(err):
		RespondError(c, http.StatusBadRequest, err.Error(), nil)
	case errors.Is(err, domain.ErrInvalidCredentials):
		RespondError(c, http.StatusUnauthorized, "Invalid credentials", nil)
	case domain.IsUnauthorized(err):
		RespondError(c, http.StatusUnauthorized, err.Error(), nil)
	case domain.IsNotFound(err):
		RespondError(c, http.StatusNotFound, err.Error(), nil)
	case domain.IsStorage(err):
		getDeps().Log.Error("storage failure", zap.Error(err))
		RespondError(c, http.StatusInternalServerError, "failed to store receipt file", nil)
	case domain.IsPersistence(err):
		getDeps().Log.Error("persistence failure", zap.Error(err))
		RespondError(c, http.StatusInternalServerError, "database operation failed", nil)
	default:
		getDeps().Log.Error("unhandled error", zap.Error(err))
		RespondError(c, http.StatusInternalServerError, "internal server error", nil)
	}
}
