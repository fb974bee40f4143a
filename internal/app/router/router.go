// Package router wires the HTTP routes of the service.
package router

import (
	"github.com/gin-gonic/gin"

	reporthandler "fund_backend/internal/feature/holdings/transport/handler"
	platformhandler "fund_backend/internal/platform/http/handler"
)

// NewRouter builds the gin engine. The service is a single read-only
// page: every path except /healthz serves the holdings report.
func NewRouter(report *reporthandler.ReportHandler) *gin.Engine {
	r := gin.Default()

	// Liveness probe
	r.GET("/healthz", platformhandler.Health)
	r.HEAD("/healthz", platformhandler.Health)

	// The report answers on any path, matching the edge-cache setup
	// which fans all paths into the same origin handler.
	r.GET("/", report.Get)
	r.NoRoute(report.Get)

	return r
}
