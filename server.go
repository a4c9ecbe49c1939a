package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Sanchit24s/payslip-backend/config"
	"github.com/Sanchit24s/payslip-backend/middlewares"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func customNotFoundHandler(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"error": "route not found"})
}

func newRouter() *gin.Engine {
	r := gin.New()
	r.Use(middlewares.RequestLogger())
	r.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	if clientURL := config.GetClientURL(); clientURL != "" {
		corsConfig.AllowOrigins = []string{clientURL}
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AddAllowMethods("GET", "POST", "OPTIONS")
	corsConfig.AddAllowHeaders("Origin", "Content-Type", "Authorization", "X-Correlation-Id")
	corsConfig.AddExposeHeaders("Content-Length", "Content-Disposition")
	corsConfig.AllowCredentials = true
	r.Use(cors.New(corsConfig))

	r.GET("/healthz", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	api := r.Group("/api/v1")
	api.POST("/auth/login", loginHandler())

	protected := api.Group("")
	protected.Use(middlewares.AuthMiddleware())
	protected.GET("/auth/protected", protectedHandler())

	protected.GET("/employees", employeesHandler())
	protected.GET("/employee/:empId", employeeDetailHandler())
	protected.GET("/department", departmentsHandler())
	protected.GET("/employees-monthly-status", monthlyStatusHandler())

	protected.GET("/stats", statsHandler())
	protected.GET("/report", salaryReportHandler())
	protected.GET("/report/register", payrollRegisterHandler())

	protected.POST("/generate-slip", generateSlipHandler())
	protected.POST("/generate-slip-by-id", generateSlipByIdHandler())
	protected.POST("/send-all-email", sendAllEmailHandler())
	protected.POST("/resend-email", resendEmailHandler())
	protected.POST("/download-all", downloadAllHandler())

	r.NoRoute(customNotFoundHandler)
	return r
}

func main() {
	logger := config.GetLogger()

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stopSignals()

	// Redis only backs the report cache; the service runs without it.
	config.ConnectRedis()
	defer config.CloseRedis()

	srv := &http.Server{
		Addr:    ":" + config.GetPort(),
		Handler: newRouter(),
	}
	serverErrCh := make(chan error, 1)
	go func() {
		serverErrCh <- srv.ListenAndServe()
	}()

	logger.WithFields(logrus.Fields{
		"port": config.GetPort(),
	}).Info("payslip server started")

	select {
	case <-sigCtx.Done():
		// graceful shutdown below
	case err := <-serverErrCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithFields(logrus.Fields{"field": "http"}).Error("server stopped unexpectedly: " + err.Error())
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.WithFields(logrus.Fields{"field": "http"}).Error("graceful shutdown failed: " + err.Error())
	}
}
