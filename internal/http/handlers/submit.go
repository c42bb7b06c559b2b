package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"coursepay/internal/services"
)

// POST /submit
func Submit(c *gin.Context) {
	d := getDeps()

	in := services.SubmissionInput{
		Name:          c.PostForm("name"),
		Phone:         c.PostForm("phone"),
		Email:         c.PostForm("email"),
		Courses:       c.PostForm("courses"),
		ReceiptNumber: c.PostForm("receiptNumber"),
		PaymentAmount: c.PostForm("paymentAmount"),
	}

	// older clients upload under "paymentReceipt"
	header, err := c.FormFile("receiptFile")
	if err != nil {
		header, err = c.FormFile("paymentReceipt")
	}
	if err == nil && header != nil {
		f, openErr := header.Open()
		if openErr != nil {
			RespondError(c, http.StatusBadRequest, "could not read uploaded file", openErr)
			return
		}
		defer f.Close()
		in.File = f
		in.Filename = header.Filename
		in.Size = header.Size
		in.ContentType = header.Header.Get("Content-Type")
	}

	rec, err := d.Submissions.Submit(c.Request.Context(), in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Payment confirmation submitted successfully",
		"id":      rec.ID,
	})
}
