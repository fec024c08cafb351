package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	apperrors "expenser/internal/errors"
	"expenser/internal/export"
	"expenser/internal/services"
)

// ReportHandler serves downloadable report exports.
type ReportHandler struct {
	exportService services.ExportServicer
	auditService  services.AuditServicer
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(exportService services.ExportServicer, auditService services.AuditServicer) *ReportHandler {
	return &ReportHandler{exportService: exportService, auditService: auditService}
}

// exportQuery carries the export parameters. type selects the report detail
// level here, not the transaction-type filter the analytics views use.
type exportQuery struct {
	Format     string   `form:"format,default=csv" binding:"omitempty,report_format"`
	Type       string   `form:"type,default=summary" binding:"omitempty,report_type"`
	TimeRange  string   `form:"time_range" binding:"omitempty,time_range"`
	FromDate   string   `form:"from_date"`
	ToDate     string   `form:"to_date"`
	Categories []string `form:"category"`
}

// exportQueryError keeps the dedicated error code for an unsupported format;
// every other binding failure is generic invalid input.
func exportQueryError(err error) error {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		for _, fieldErr := range validationErrs {
			if fieldErr.Tag() == "report_format" {
				return apperrors.WithMessage(apperrors.ErrInvalidReportFormat,
					fmt.Sprintf("unsupported format %q, use csv, json, or pdf", fieldErr.Value()))
			}
		}
	}
	return apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error())
}

// ExportReport streams a generated report as a file download
// @Summary     Export transactions report
// @Description Generate a CSV, JSON, or PDF report of the filtered transactions and return it as an attachment
// @Tags        reports
// @Accept      json
// @Produce     text/csv
// @Produce     application/json
// @Produce     application/pdf
// @Security    BearerAuth
// @Param       format     query string false "Export format (csv, json, pdf); default csv"
// @Param       type       query string false "PDF detail level (summary, detailed); default summary"
// @Param       time_range query string false "Relative window (1month, 3months, 6months, 1year, all)"
// @Param       from_date  query string false "Filter by start date (RFC3339 or YYYY-MM-DD); overrides time_range"
// @Param       to_date    query string false "Filter by end date (RFC3339 or YYYY-MM-DD)"
// @Param       category   query string false "Filter by category name (repeatable)"
// @Success     200 {file} file "Report file"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /reports/export [get]
func (h *ReportHandler) ExportReport(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var q exportQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondWithError(c, exportQueryError(err))
		return
	}
	format := export.Format(q.Format)
	reportType := export.ReportType(q.Type)

	filter, err := buildReportFilter(q.TimeRange, q.FromDate, q.ToDate, q.Categories)
	if err != nil {
		respondWithError(c, err)
		return
	}

	data, filename, err := h.exportService.GenerateReport(userID, filter, format, reportType)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "EXPORT_REPORT", "report", "", c.ClientIP(), map[string]any{
		"format": string(format),
		"type":   string(reportType),
	})

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, format.ContentType(), data)
}
