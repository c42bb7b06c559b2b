package api

import (
	stdhttp "net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	h "coursepay/internal/http/handlers"
	"coursepay/internal/http/middleware"
)

// RouterOptions carries everything the engine needs beyond handler deps.
type RouterOptions struct {
	Log         *zap.Logger
	TokenSecret []byte

	// LocalReceiptDir, when non-empty, serves stored receipt files
	// under /receipts. Empty when the S3 driver is active.
	LocalReceiptDir string
}

func NewRouter(opts RouterOptions) *gin.Engine {
	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(log), gin.Recovery(), middleware.CORS())

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Warn("failed to set trusted proxies", zap.Error(err))
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	r.GET("/health", h.Health)
	r.GET("/db-check", h.DBCheck)
	r.POST("/submit", h.Submit)
	r.POST("/admin/login", h.Login)

	if opts.LocalReceiptDir != "" {
		r.Static("/receipts", opts.LocalReceiptDir)
	}

	admin := r.Group("/admin", middleware.RequireAdmin(opts.TokenSecret))
	{
		admin.GET("/payments", h.ListPayments)
		admin.PATCH("/payments/:id", h.UpdatePaymentStatus)
		admin.GET("/payments/:id/receipt-pdf", h.PaymentReceiptPDF)

		admin.GET("/email-settings", h.GetEmailSettings)
		admin.PUT("/email-settings", h.PutEmailSettings)

		admin.GET("/email-template/:name", h.GetEmailTemplate)
		admin.PUT("/email-template", h.PutEmailTemplate)
	}

	return r
}
