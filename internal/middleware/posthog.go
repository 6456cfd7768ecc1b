package middleware

import (
	"net/http"
	"strings"

	"github.com/SscSPs/freelance_books/internal/utils"
	"github.com/gin-gonic/gin"
)

// pathsToSkip contains paths that should not be tracked by PostHog
var pathsToSkip = map[string]bool{
	"/api/health": true,
	"/metrics":    true,
}

// PosthogMiddleware tracks successful authenticated API calls with PostHog.
func PosthogMiddleware(posthogClient *utils.PosthogClientWrapper) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !posthogClient.IsInitialized() || pathsToSkip[c.Request.URL.Path] {
			c.Next()
			return
		}

		c.Next()

		if len(c.Errors) > 0 || c.Writer.Status() >= http.StatusBadRequest {
			return
		}

		userID, exists := GetUserIDFromContext(c)
		if !exists {
			return
		}

		eventName := EventNameForRoute(c.Request.Method, c.FullPath())
		if eventName == "" {
			return
		}

		posthogClient.Enqueue(userID, eventName, map[string]any{
			"method":      c.Request.Method,
			"route":       c.FullPath(),
			"status_code": c.Writer.Status(),
		})
	}
}

// EventNameForRoute derives an analytics event name from a route template,
// e.g. GET "/api/invoices/:id/pdf" becomes "get_api_invoices_id_pdf".
func EventNameForRoute(method, route string) string {
	route = strings.Trim(route, "/")
	if route == "" {
		return ""
	}
	route = strings.ReplaceAll(route, ":", "")
	route = strings.ReplaceAll(route, "/", "_")
	return strings.ToLower(method) + "_" + route
}
