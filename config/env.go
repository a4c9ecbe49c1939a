package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

func init() {
	// Load env from .env. Missing file is fine in production; Cloud Run
	// injects everything through the environment.
	godotenv.Load()
}

func GetPort() string {
	port := os.Getenv("PORT")
	if port == "" {
		return "8000"
	}
	return port
}

func GetClientURL() string {
	return strings.TrimSpace(os.Getenv("CLIENT_URL"))
}

// GetSheetID returns the spreadsheet holding Employee_Details and
// Monthly_Attendance.
func GetSheetID() string {
	return strings.TrimSpace(os.Getenv("GOOGLE_SHEET_ID"))
}

// GetGoogleCredentialsBase64 returns the base64-encoded service account JSON
// used for both the Sheets API and Cloud Storage.
func GetGoogleCredentialsBase64() string {
	return strings.TrimSpace(os.Getenv("GOOGLE_CREDENTIALS_BASE64"))
}

func GetGCSBucket() string {
	return strings.TrimSpace(os.Getenv("GCS_BUCKET"))
}

type SMTPConfig struct {
	Host     string
	Port     int
	Secure   bool
	User     string
	Password string
}

func GetSMTPConfig() SMTPConfig {
	port, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err != nil {
		port = 587
	}
	return SMTPConfig{
		Host:     os.Getenv("SMTP_HOST"),
		Port:     port,
		Secure:   os.Getenv("SMTP_SECURE") == "true",
		User:     os.Getenv("SMTP_USER"),
		Password: os.Getenv("SMTP_PASS"),
	}
}

// GetAdminEmail / GetAdminPasswordHash identify the single console user.
// The hash is produced with cmd/hash-password.
func GetAdminEmail() string {
	return strings.TrimSpace(os.Getenv("ADMIN_EMAIL"))
}

func GetAdminPasswordHash() string {
	return strings.TrimSpace(os.Getenv("ADMIN_PASSWORD_HASH"))
}

// GetPayslipConcurrency caps in-flight render/upload/email chains during a
// batch run. Third-party quotas (Sheets, SMTP) are the reason this exists.
func GetPayslipConcurrency() int {
	n, err := strconv.Atoi(os.Getenv("PAYSLIP_CONCURRENCY"))
	if err != nil || n <= 0 {
		return 5
	}
	return n
}

func GetPayslipTemplatePath() string {
	path := strings.TrimSpace(os.Getenv("PAYSLIP_TEMPLATE_PATH"))
	if path == "" {
		return "templates/payslip_template.pdf"
	}
	return path
}

func GetJWTSecret() string {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return "payslip-secret"
	}
	return secret
}

func GetTokenLifespan() time.Duration {
	hours, err := strconv.Atoi(os.Getenv("TOKEN_HOUR_LIFESPAN"))
	if err != nil || hours <= 0 {
		hours = 24
	}
	return time.Duration(hours) * time.Hour
}

// GetStorageAccessBaseURL overrides the default public GCS URL form, with an
// optional {objectKey} placeholder.
func GetStorageAccessBaseURL() string {
	return strings.TrimSpace(os.Getenv("STORAGE_ACCESS_BASE_URL"))
}

func GetReportCacheEnabled() bool {
	v := strings.TrimSpace(os.Getenv("ENABLE_REPORT_CACHE"))
	return v == "1" || strings.EqualFold(v, "true") || strings.EqualFold(v, "yes") || strings.EqualFold(v, "on")
}

// GetReportCacheTTL is REPORT_CACHE_TTL_SECONDS, default 120s.
func GetReportCacheTTL() time.Duration {
	ttl := 120
	if v := strings.TrimSpace(os.Getenv("REPORT_CACHE_TTL_SECONDS")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			ttl = n
		}
	}
	return time.Duration(ttl) * time.Second
}
