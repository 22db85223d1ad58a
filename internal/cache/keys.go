package cache

import "strings"

const (
	GlobalKeyPrefix = "interviewbank"
)

// GenerateCacheKey builds a colon separated key under GlobalKeyPrefix.
// Extra params are joined by "_" and appended as a final segment.
func GenerateCacheKey(serviceName, objectType, identifier string, paramsKey ...string) string {
	baseKey := strings.Join([]string{GlobalKeyPrefix, serviceName, objectType, identifier}, ":")
	if len(paramsKey) > 0 {
		return strings.Join([]string{baseKey, strings.Join(paramsKey, "_")}, ":")
	}
	return baseKey
}

// RecentReportsKey is the list holding the latest interview summaries.
func RecentReportsKey() string {
	return GenerateCacheKey("interview", "reports", "recent")
}
