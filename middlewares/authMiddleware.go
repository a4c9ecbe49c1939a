package middlewares

import (
	"net/http"
	"strings"

	"github.com/Sanchit24s/payslip-backend/config"
	"github.com/Sanchit24s/payslip-backend/utils"
	"github.com/gin-gonic/gin"
)

// AuthMiddleware guards the admin API. Every protected route requires a
// Bearer token whose claim matches the configured admin email.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.Request.Header.Get("Authorization")

		bearer := "Bearer "
		if !strings.HasPrefix(auth, bearer) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			c.Abort()
			return
		}
		auth = auth[len(bearer):]

		validate, err := utils.JwtValidate(auth)
		if err != nil || !validate.Valid {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			c.Abort()
			return
		}

		customClaim, ok := validate.Claims.(*utils.JwtCustomClaim)
		if !ok || !strings.EqualFold(customClaim.Email, config.GetAdminEmail()) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			c.Abort()
			return
		}

		ctx := utils.SetUserEmailInContext(c.Request.Context(), customClaim.Email)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
