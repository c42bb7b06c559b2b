package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"coursepay/internal/domain"
	"coursepay/internal/domain/models"
)

// GET /admin/email-settings
// Absence is a valid state: the dashboard gets an empty object, not 404.
func GetEmailSettings(c *gin.Context) {
	s, err := getDeps().Settings.Get(c.Request.Context())
	if err != nil {
		if domain.IsNotFound(err) {
			c.JSON(http.StatusOK, gin.H{})
			return
		}
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, s)
}

// PUT /admin/email-settings
func PutEmailSettings(c *gin.Context) {
	var req models.EmailSettings
	if !BindJSONOrError(c, &req) {
		return
	}

	saved, err := getDeps().Settings.Upsert(c.Request.Context(), req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, saved)
}
