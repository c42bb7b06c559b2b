package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"coursepay/internal/domain"
	"coursepay/internal/domain/models"
)

// GET /admin/payments
func ListPayments(c *gin.Context) {
	recs, err := getDeps().Confirmations.List(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, recs)
}

type statusUpdateRequest struct {
	Status string `json:"status"`
	Notes  string `json:"notes"`
}

// PATCH /admin/payments/:id
func UpdatePaymentStatus(c *gin.Context) {
	var req statusUpdateRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if !models.ValidStatusTarget(req.Status) {
		RespondDomainError(c, domain.ValidationError{
			Field: "status",
			Msg:   fmt.Sprintf("must be %q or %q", models.StatusVerified, models.StatusRejected),
		})
		return
	}

	rec, err := getDeps().Confirmations.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status, req.Notes)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

// GET /admin/payments/:id/receipt-pdf
func PaymentReceiptPDF(c *gin.Context) {
	data, filename, err := getDeps().Docs.ConfirmationSheet(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", data)
}
