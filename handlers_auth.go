package main

import (
	"net/http"
	"strings"

	"github.com/Sanchit24s/payslip-backend/config"
	"github.com/Sanchit24s/payslip-backend/utils"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// loginHandler checks the single configured admin credential and issues a
// JWT. Wrong email and wrong password answer identically.
func loginHandler() gin.HandlerFunc {
	logger := config.GetLogger()
	return func(c *gin.Context) {
		var req loginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
			return
		}
		if err := validate.Struct(req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "email and password are required"})
			return
		}

		if !strings.EqualFold(req.Email, config.GetAdminEmail()) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}
		if err := utils.ComparePassword(config.GetAdminPasswordHash(), req.Password); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}

		token, err := utils.JwtGenerate(config.GetAdminEmail())
		if err != nil {
			config.LogError(logger, "handlers_auth.go", "loginHandler", "JwtGenerate", nil, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to issue token"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"token": token})
	}
}

func protectedHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		email, _ := utils.GetUserEmailFromContext(c.Request.Context())
		c.JSON(http.StatusOK, gin.H{"message": "authorized", "email": email})
	}
}
