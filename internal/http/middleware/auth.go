package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"coursepay/internal/domain/models"
)

const adminIdentityKey = "admin_identity"

// RequireAdmin rejects any request that does not carry a valid bearer
// token signed with the shared secret. The parsed identity is stored on
// the context for handlers that want it.
func RequireAdmin(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := bearerToken(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}

		parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return secret, nil
		})
		if err != nil || !parsed.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		claims, ok := parsed.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		c.Set(adminIdentityKey, models.AdminIdentity{
			ID:    claimString(claims, "sub"),
			Email: claimString(claims, "email"),
			Name:  claimString(claims, "name"),
		})
		c.Next()
	}
}

// AdminFromContext returns the identity stored by RequireAdmin.
func AdminFromContext(c *gin.Context) (models.AdminIdentity, bool) {
	v, ok := c.Get(adminIdentityKey)
	if !ok {
		return models.AdminIdentity{}, false
	}
	id, ok := v.(models.AdminIdentity)
	return id, ok
}

func bearerToken(c *gin.Context) (string, error) {
	h := c.GetHeader("Authorization")
	if h == "" {
		return "", errors.New("missing authorization header")
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
		return "", errors.New("malformed authorization header")
	}
	return strings.TrimSpace(parts[1]), nil
}

func claimString(claims jwt.MapClaims, key string) string {
	if v, ok := claims[key].(string); ok {
		return v
	}
	return ""
}
