package utils

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/Sanchit24s/payslip-backend/config"
	"google.golang.org/api/option"
)

// getGoogleClient initializes a Google Cloud Storage client.
// Prefers explicit base64 credentials (shared with the Sheets client);
// falls back to ADC (Cloud Run service account / GOOGLE_APPLICATION_CREDENTIALS).
func getGoogleClient(ctx context.Context) (*storage.Client, error) {
	if credB64 := config.GetGoogleCredentialsBase64(); credB64 != "" {
		credJSON, err := base64.StdEncoding.DecodeString(credB64)
		if err != nil {
			return nil, fmt.Errorf("failed to decode GOOGLE_CREDENTIALS_BASE64: %w", err)
		}
		return storage.NewClient(ctx, option.WithCredentialsJSON(credJSON))
	}
	return storage.NewClient(ctx)
}

// UploadPayslipPDF writes a rendered payslip under folderPath and returns its
// public URL. Errors propagate to the fan-out task boundary.
func UploadPayslipPDF(ctx context.Context, data []byte, fileName string, folderPath string) (string, error) {
	bucketName := config.GetGCSBucket()
	if bucketName == "" {
		return "", errors.New("GCS_BUCKET is required")
	}

	client, err := getGoogleClient(ctx)
	if err != nil {
		return "", err
	}
	defer client.Close()

	objectKey := strings.TrimSuffix(folderPath, "/") + "/" + fileName
	wc := client.Bucket(bucketName).Object(objectKey).NewWriter(ctx)
	wc.ContentType = "application/pdf"
	wc.Metadata = map[string]string{
		"x-goog-acl": "public-read",
	}

	if _, err := wc.Write(data); err != nil {
		return "", fmt.Errorf("failed to upload payslip to Google Cloud Storage: %v", err)
	}
	if err := wc.Close(); err != nil {
		return "", fmt.Errorf("failed to close writer: %v", err)
	}

	return BuildObjectAccessURL(objectKey), nil
}

// BuildObjectAccessURL maps an object key to its public URL.
// STORAGE_ACCESS_BASE_URL overrides the default public GCS form, with an
// optional {objectKey} placeholder.
func BuildObjectAccessURL(objectKey string) string {
	base := config.GetStorageAccessBaseURL()
	if base != "" {
		if strings.Contains(base, "{objectKey}") {
			escaped := objectKey
			if strings.Contains(base, "?") {
				escaped = url.QueryEscape(objectKey)
			}
			return strings.ReplaceAll(base, "{objectKey}", escaped)
		}
		return strings.TrimRight(base, "/") + "/" + objectKey
	}

	bucket := config.GetGCSBucket()
	if bucket != "" {
		return "https://storage.googleapis.com/" + bucket + "/" + objectKey
	}
	return objectKey
}
