package middleware

import (
	"net"
	"strings"

	"github.com/gin-gonic/gin"
)

// clientIPFromHeaders resolves the originating client IP when the API sits
// behind a proxy. CF-Connecting-IP wins over X-Forwarded-For (left-most
// entry); an empty result means no trustworthy header was present.
func clientIPFromHeaders(c *gin.Context) string {
	if cf := strings.TrimSpace(c.GetHeader("CF-Connecting-IP")); cf != "" {
		if ip := net.ParseIP(cf); ip != nil {
			return ip.String()
		}
	}
	if xff := c.GetHeader("X-Forwarded-For"); xff != "" {
		first := strings.TrimSpace(strings.SplitN(xff, ",", 2)[0])
		if ip := net.ParseIP(first); ip != nil {
			return ip.String()
		}
	}
	return ""
}

// RealIP stores the resolved client IP under "real_ip" for rate-limit keys
// and access logs. Falls back to the socket peer address.
func RealIP() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := clientIPFromHeaders(c)
		if ip == "" {
			ip = c.ClientIP()
		}
		c.Set("real_ip", ip)
		c.Next()
	}
}
