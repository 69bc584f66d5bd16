package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/topoclimb/topoclimb-gateway/config"
)

// AdminAuth protects registry mutations with HTTP basic auth.
//
// ADMIN_PASSWORD may hold either a bcrypt hash (recommended for deployments)
// or a plaintext value; plaintext is hashed once at startup so the comparison
// is always constant-time bcrypt. An empty password disables the admin API
// entirely.
func AdminAuth(cfg config.Config) gin.HandlerFunc {
	enabled := cfg.AdminPassword != ""

	var hash []byte
	if enabled {
		if strings.HasPrefix(cfg.AdminPassword, "$2") {
			hash = []byte(cfg.AdminPassword)
		} else {
			h, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
			if err != nil {
				enabled = false
			}
			hash = h
		}
	}

	return func(c *gin.Context) {
		if !enabled {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin API is disabled"})
			return
		}

		user, pass, ok := c.Request.BasicAuth()
		if !ok || user != cfg.AdminUser ||
			bcrypt.CompareHashAndPassword(hash, []byte(pass)) != nil {
			c.Header("WWW-Authenticate", `Basic realm="topoclimb-gateway"`)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "admin credentials required"})
			return
		}
		c.Next()
	}
}
