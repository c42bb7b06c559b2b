package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"coursepay/internal/domain"
	"coursepay/internal/domain/models"
	"coursepay/internal/utils"
)

// GET /admin/email-template/:name
func GetEmailTemplate(c *gin.Context) {
	tpl, err := getDeps().Templates.GetByName(c.Request.Context(), c.Param("name"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, tpl)
}

// PUT /admin/email-template
func PutEmailTemplate(c *gin.Context) {
	var req models.EmailTemplate
	if !BindJSONOrError(c, &req) {
		return
	}
	req.Name = utils.TrimOrEmpty(req.Name)
	if req.Name == "" {
		RespondDomainError(c, domain.ValidationError{Field: "name", Msg: "required"})
		return
	}

	saved, err := getDeps().Templates.Upsert(c.Request.Context(), req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, saved)
}
