package middleware

import (
	"net/http" // HTTP methods
	"slices"   // Wildcard lookup

	"github.com/gin-contrib/cors"   // CORS handling
	"github.com/gin-contrib/secure" // Security headers
	"github.com/gin-gonic/gin"      // Gin web framework
)

// CORSMiddleware allows the given origins; "*" allows every origin
func CORSMiddleware(origins []string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", RequestIDHeader},
		ExposeHeaders: []string{RequestIDHeader},
	}
	if len(origins) == 0 || slices.Contains(origins, "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cors.New(cfg)
}

// SecurityHeadersMiddleware sets the usual hardening headers on every response.
// HSTS is only announced in production.
func SecurityHeadersMiddleware(isProd bool) gin.HandlerFunc {
	cfg := secure.Config{
		FrameDeny:             true,
		ContentTypeNosniff:    true,
		BrowserXssFilter:      true,
		IENoOpen:              true,
		ReferrerPolicy:        "no-referrer",
		ContentSecurityPolicy: "default-src 'self'",
	}
	if isProd {
		cfg.STSSeconds = 15552000
		cfg.STSIncludeSubdomains = true
	}
	return secure.New(cfg)
}
