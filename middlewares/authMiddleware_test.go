package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Sanchit24s/payslip-backend/utils"
	"github.com/gin-gonic/gin"
)

func protectedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(AuthMiddleware())
	r.GET("/ping", func(c *gin.Context) {
		email, _ := utils.GetUserEmailFromContext(c.Request.Context())
		c.JSON(http.StatusOK, gin.H{"email": email})
	})
	return r
}

func TestAuthMiddleware(t *testing.T) {
	t.Setenv("ADMIN_EMAIL", "admin@example.com")
	r := protectedRouter()

	token, err := utils.JwtGenerate("admin@example.com")
	if err != nil {
		t.Fatalf("JwtGenerate error: %v", err)
	}

	cases := []struct {
		name   string
		header string
		status int
	}{
		{"no header", "", http.StatusUnauthorized},
		{"not bearer", "Basic abc", http.StatusUnauthorized},
		{"garbage token", "Bearer garbage", http.StatusUnauthorized},
		{"valid token", "Bearer " + token, http.StatusOK},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		if tc.header != "" {
			req.Header.Set("Authorization", tc.header)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != tc.status {
			t.Fatalf("%s: expected status %d, got %d", tc.name, tc.status, w.Code)
		}
	}
}

func TestAuthMiddleware_RejectsOtherEmail(t *testing.T) {
	t.Setenv("ADMIN_EMAIL", "admin@example.com")
	r := protectedRouter()

	token, err := utils.JwtGenerate("intruder@example.com")
	if err != nil {
		t.Fatalf("JwtGenerate error: %v", err)
	}
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for non-admin claim, got %d", w.Code)
	}
}
