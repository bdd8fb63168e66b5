package middleware

import (
	"net"
	"strings"

	"marassi/models"

	"github.com/gin-gonic/gin"
	"github.com/mssola/useragent"
)

const clientMetaKey = "clientMeta"

// ClientMetaMiddleware captures the request attributes persisted with each
// submission: client IP, raw User-Agent, and a parsed browser/OS summary
// used for logging.
func ClientMetaMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		meta := buildClientMeta(c)
		c.Set(clientMetaKey, meta)
		c.Next()
	}
}

// ClientMeta returns the metadata captured by ClientMetaMiddleware, building
// it on the spot if the middleware did not run.
func ClientMeta(c *gin.Context) models.RequestMeta {
	if v, exists := c.Get(clientMetaKey); exists {
		if meta, ok := v.(models.RequestMeta); ok {
			return meta
		}
	}
	return buildClientMeta(c)
}

func buildClientMeta(c *gin.Context) models.RequestMeta {
	ua := c.Request.UserAgent()
	if ua == "" {
		ua = "unknown"
	}

	meta := models.RequestMeta{
		IPAddress: getClientIP(c),
		UserAgent: ua,
	}

	parsed := useragent.New(ua)
	name, version := parsed.Browser()
	meta.Client = strings.TrimSpace(name + " " + version)
	if os := parsed.OS(); os != "" {
		meta.Client = strings.TrimSpace(meta.Client + " / " + os)
	}
	return meta
}

func getClientIP(c *gin.Context) string {
	// Check X-Forwarded-For header, which can contain multiple IPs.
	if xff := c.GetHeader("X-Forwarded-For"); xff != "" {
		// The header may contain a comma-separated list of IPs. Use the first one.
		ips := strings.Split(xff, ",")
		if len(ips) > 0 && ips[0] != "" {
			return strings.TrimSpace(ips[0])
		}
	}

	// Check X-Real-IP header.
	if xri := c.GetHeader("X-Real-IP"); xri != "" {
		return strings.TrimSpace(xri)
	}

	// Fallback: use the remote address.
	ip := c.Request.RemoteAddr
	// RemoteAddr might be in "ip:port" format; strip the port if present.
	if host, _, err := net.SplitHostPort(ip); err == nil {
		ip = host
	}
	if ip == "" {
		ip = "unknown"
	}
	return ip
}
