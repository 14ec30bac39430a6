package server

import (
	"net/http"
	"strings"

	"github.com/gasplexhq/gasplex/internal/config"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// BearerScopeRequired validates the Authorization bearer token and requires
// the given scope claim. The gate is disabled when no signing secret is
// configured so local setups work without an auth gateway.
func BearerScopeRequired(cfg config.Config, scope string) gin.HandlerFunc {
	secret := []byte(cfg.AuthJWTSecret)

	return func(c *gin.Context) {
		if len(secret) == 0 {
			c.Next()
			return
		}

		raw := bearerToken(c.GetHeader("Authorization"))
		if raw == "" {
			unauthorized(c)
			return
		}

		claims := jwt.MapClaims{}
		token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return secret, nil
		})
		if err != nil || !token.Valid {
			unauthorized(c)
			return
		}

		if !hasScope(claims, scope) {
			unauthorized(c)
			return
		}

		c.Next()
	}
}

func bearerToken(header string) string {
	header = strings.TrimSpace(header)
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

func hasScope(claims jwt.MapClaims, scope string) bool {
	raw, ok := claims["scope"]
	if !ok {
		return false
	}

	switch v := raw.(type) {
	case string:
		for _, s := range strings.Fields(v) {
			if s == scope {
				return true
			}
		}
	case []any:
		for _, item := range v {
			if s, ok := item.(string); ok && s == scope {
				return true
			}
		}
	}
	return false
}

func unauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"status":  "error",
		"message": "unauthorized",
	})
}
