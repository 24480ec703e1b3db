package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Instaresz90008/demo-app-sub000/utils"
)

// getLogger returns the request-scoped logger placed in the context by the
// request-logging middleware, falling back to the shared logger when a route
// was registered without it.
func getLogger(c *gin.Context) *zap.Logger {
	if l, ok := c.Get("logger"); ok {
		if logger, ok := l.(*zap.Logger); ok {
			return logger
		}
	}
	return utils.GetLogger()
}
