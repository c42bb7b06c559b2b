package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	intconfig "coursepay/internal/config"
)

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func DBCheck(c *gin.Context) {
	if err := intconfig.EnsureDB(); err != nil {
		RespondError(c, http.StatusInternalServerError, "database not reachable", err)
		return
	}
	var count int
	if err := intconfig.DB.QueryRowContext(c.Request.Context(),
		"SELECT COUNT(*) FROM payment_confirmations").Scan(&count); err != nil {
		RespondError(c, http.StatusInternalServerError, "database query failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "confirmations": count})
}
