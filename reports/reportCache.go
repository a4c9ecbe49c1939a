package reports

import (
	"fmt"

	"github.com/Sanchit24s/payslip-backend/config"
)

func CacheKey(report string, month string, department string) string {
	if department == "" {
		department = "All"
	}
	return fmt.Sprintf("report:%s:%s:%s", report, month, department)
}

// CacheGet loads a cached report payload. Disabled or missing cache reads as
// a miss, never an error surfaced to the caller.
func CacheGet[T any](key string, dest *T) bool {
	if !config.GetReportCacheEnabled() {
		return false
	}
	found, err := config.GetRedisObject(key, dest)
	if err != nil {
		config.LogError(config.GetLogger(), "reportCache.go", "CacheGet", key, nil, err)
		return false
	}
	return found
}

func CacheSet(key string, obj any) {
	if !config.GetReportCacheEnabled() {
		return
	}
	if err := config.SetRedisObject(key, obj, config.GetReportCacheTTL()); err != nil {
		config.LogError(config.GetLogger(), "reportCache.go", "CacheSet", key, nil, err)
	}
}
