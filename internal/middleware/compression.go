// Package middleware holds the gin middleware shared by the public and
// admin routes.
package middleware

import (
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
)

// Compression gzips responses for clients that accept it. /metrics is
// always skipped because Prometheus negotiates its own encoding; probes and
// other tiny bodies can be added through skip.
func Compression(skip ...string) gin.HandlerFunc {
	excluded := []string{"/metrics"}
	for _, p := range skip {
		if p != "/metrics" {
			excluded = append(excluded, p)
		}
	}
	return gzip.Gzip(gzip.DefaultCompression,
		gzip.WithExcludedPaths(excluded),
		gzip.WithExcludedExtensions([]string{".png", ".gif", ".jpeg", ".jpg"}),
	)
}
