package handlers

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"coursepay/internal/http/middleware"
	"coursepay/internal/repositories"
	"coursepay/internal/services"
)

// Deps holds the wired services the handlers run against. Init is
// called once from main; tests swap in their own set.
type Deps struct {
	Submissions   services.SubmissionService
	Auth          services.AuthService
	Docs          services.DocsService
	Confirmations repositories.ConfirmationRepository
	Settings      repositories.SettingsRepository
	Templates     repositories.TemplateRepository
	Log           *zap.Logger
}

var (
	depsMu sync.RWMutex
	deps   Deps
)

func Init(d Deps) {
	depsMu.Lock()
	defer depsMu.Unlock()
	if d.Log == nil {
		d.Log = zap.NewNop()
	}
	deps = d
}

func getDeps() Deps {
	depsMu.RLock()
	defer depsMu.RUnlock()
	return deps
}

// RespondError sends a standard error payload with request_id included.
func RespondError(c *gin.Context, status int, message string, err error) {
	payload := gin.H{
		"error":      message,
		"request_id": middleware.GetRequestID(c),
	}
	if err != nil {
		payload["detail"] = err.Error()
	}
	c.JSON(status, payload)
}

// BindJSONOrError ensures body is present and parsable.
func BindJSONOrError[T any](c *gin.Context, dst *T) bool {
	if c.Request.Body == nil {
		RespondError(c, http.StatusBadRequest, "empty request body", nil)
		return false
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid payload", err)
		return false
	}
	return true
}
