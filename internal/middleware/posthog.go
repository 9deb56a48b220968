package middleware

import (
	"net/http"
	"strings"

	"github.com/SscSPs/floor_assignment_app/internal/utils"
	"github.com/gin-gonic/gin"
)

// PosthogMiddleware records one analytics event per successful admin mutation,
// e.g. "POST /api/v1/assignment" becomes "api_v1_assignment_post".
// Reads are not tracked; the board polls them constantly.
func PosthogMiddleware(posthogClient *utils.PosthogClientWrapper) gin.HandlerFunc {
	return func(c *gin.Context) {
		if posthogClient == nil || !posthogClient.IsInitialized() || c.Request.Method == http.MethodGet {
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

		route := c.FullPath()
		if route == "" {
			return
		}
		eventName := strings.NewReplacer("/", "_", ":", "").Replace(strings.TrimPrefix(route, "/")) +
			"_" + strings.ToLower(c.Request.Method)

		props := map[string]any{
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"status_code": c.Writer.Status(),
		}
		if len(c.Params) > 0 {
			params := make(map[string]string, len(c.Params))
			for _, param := range c.Params {
				params[param.Key] = param.Value
			}
			props["params"] = params
		}

		posthogClient.Enqueue(userID, eventName, props)
	}
}
