// Package handler provides the HTTP handler for the holdings report page.
package handler

import (
	"bytes"
	"context"
	_ "embed"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"fund_backend/internal/feature/holdings/domain/entity"
	"fund_backend/internal/feature/holdings/transport/view"
)

//go:embed report.gohtml
var reportPage string

// reportTemplate is parsed once at startup; a broken template is a
// programming error and should fail fast.
var reportTemplate = template.Must(template.New("report").Parse(reportPage))

// cacheControl lets the edge cache hold a rendered page for 5 minutes,
// the same horizon as the Redis page cache.
const cacheControl = "public, max-age=300"

// ReportUsecase runs one holdings report pipeline execution.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type ReportUsecase interface {
	BuildReport(ctx context.Context) (entity.FundReport, error)
}

// ReportHandler serves the rendered holdings performance page.
type ReportHandler struct {
	uc ReportUsecase
}

// NewReportHandler creates a ReportHandler with the given usecase.
func NewReportHandler(uc ReportUsecase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Get builds the report and renders it as HTML. Any pipeline failure
// (upstream fetch or processing) becomes a plain-text 500 carrying the
// error message; stack traces stay server-side.
func (h *ReportHandler) Get(c *gin.Context) {
	report, err := h.uc.BuildReport(c.Request.Context())
	if err != nil {
		slog.Error("failed to build holdings report", "error", err)
		c.String(http.StatusInternalServerError, "Error: %s", err.Error())
		return
	}

	var buf bytes.Buffer
	if err := reportTemplate.Execute(&buf, view.NewReportView(report)); err != nil {
		slog.Error("failed to render holdings report", "error", err)
		c.String(http.StatusInternalServerError, "Error: %s", err.Error())
		return
	}

	c.Header("Cache-Control", cacheControl)
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}
