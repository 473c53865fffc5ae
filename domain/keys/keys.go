package keys

import (
	"crypto/md5"
	"fmt"
	"strings"
)

const (
	// PfxAuction is used for prefixing auction cache keys
	PfxAuction = "auction"
	// PfxGlobalFarm is used for prefixing global farm cache keys
	PfxGlobalFarm = "globalFarm"
	// PfxHealthCheck is used for prefixing health check cache keys
	PfxHealthCheck = "healthcheck"
)

// MD5 hashes the data with md5
func MD5(data string) string {
	return fmt.Sprintf("%x", md5.Sum([]byte(data)))
}

// CustomKey is used to join the customized key by componets with specified delimiter
func CustomKey(delimiter string, components ...string) string {
	return strings.Join(components, delimiter)
}

// CacheKey is used to join the cache key by componets
func CacheKey(components ...string) string {
	return CustomKey(":", components...)
}
