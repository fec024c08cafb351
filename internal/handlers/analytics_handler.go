package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "expenser/internal/errors"
	"expenser/internal/models"
	"expenser/internal/report"
	"expenser/internal/services"
)

// AnalyticsHandler serves the derived aggregate views.
type AnalyticsHandler struct {
	analyticsService services.AnalyticsServicer
}

// NewAnalyticsHandler creates a new AnalyticsHandler.
func NewAnalyticsHandler(analyticsService services.AnalyticsServicer) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

// analyticsQuery carries the filter parameters shared by the analytics views.
// time_range is a convenience alias for from_date relative to now; explicit
// from_date/to_date take precedence.
type analyticsQuery struct {
	TimeRange  string   `form:"time_range" binding:"omitempty,time_range"`
	FromDate   string   `form:"from_date"`
	ToDate     string   `form:"to_date"`
	Type       string   `form:"type" binding:"omitempty,transaction_type"`
	Categories []string `form:"category"`
}

func parseReportFilter(c *gin.Context) (report.Filter, error) {
	var q analyticsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		return report.Filter{}, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error())
	}

	filter, err := buildReportFilter(q.TimeRange, q.FromDate, q.ToDate, q.Categories)
	if err != nil {
		return filter, err
	}

	if q.Type != "" {
		txType := models.TransactionType(q.Type)
		filter.Type = &txType
	}
	return filter, nil
}

// buildReportFilter maps the validated date-window parameters onto a report
// filter. "all" and an absent time_range both mean no lower bound.
func buildReportFilter(timeRange, fromDate, toDate string, categories []string) (report.Filter, error) {
	var filter report.Filter

	now := time.Now()
	var from time.Time
	switch timeRange {
	case "1month":
		from = now.AddDate(0, -1, 0)
	case "3months":
		from = now.AddDate(0, -3, 0)
	case "6months":
		from = now.AddDate(0, -6, 0)
	case "1year":
		from = now.AddDate(-1, 0, 0)
	}
	if !from.IsZero() {
		filter.From = &from
	}

	if fromDate != "" {
		t, err := parseFlexibleTime(fromDate)
		if err != nil {
			return filter, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid from_date format, use RFC3339 or YYYY-MM-DD")
		}
		filter.From = &t
	}

	if toDate != "" {
		t, err := parseFlexibleTime(toDate)
		if err != nil {
			return filter, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid to_date format, use RFC3339 or YYYY-MM-DD")
		}
		filter.To = &t
	}

	if len(categories) > 0 {
		filter.Categories = categories
	}
	return filter, nil
}

// GetSummary returns the headline statistics for the filtered view
// @Summary     Get financial summary
// @Description Get income/expense totals, savings rate, health score, average daily spending, top category, and recommendations
// @Tags        analytics
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       time_range query string false "Relative window (1month, 3months, 6months, 1year, all)"
// @Param       from_date  query string false "Filter by start date (RFC3339 or YYYY-MM-DD); overrides time_range"
// @Param       to_date    query string false "Filter by end date (RFC3339 or YYYY-MM-DD)"
// @Param       type       query string false "Filter by transaction type (income, expense)"
// @Param       category   query string false "Filter by category name (repeatable)"
// @Success     200 {object} report.Summary "Summary statistics"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /analytics/summary [get]
func (h *AnalyticsHandler) GetSummary(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	filter, err := parseReportFilter(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	summary, err := h.analyticsService.GetSummary(userID, filter)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"summary": summary})
}

type trendQuery struct {
	Interval string `form:"interval,default=month" binding:"omitempty,trend_interval"`
}

// GetTrend returns income/expense totals per period
// @Summary     Get income/expense trend
// @Description Get income, expense, and net totals grouped by calendar month or day, ascending
// @Tags        analytics
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       interval   query string false "Grouping interval (month, day); default month"
// @Param       time_range query string false "Relative window (1month, 3months, 6months, 1year, all)"
// @Param       from_date  query string false "Filter by start date (RFC3339 or YYYY-MM-DD); overrides time_range"
// @Param       to_date    query string false "Filter by end date (RFC3339 or YYYY-MM-DD)"
// @Param       category   query string false "Filter by category name (repeatable)"
// @Success     200 {array} report.TrendPoint "Trend points"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /analytics/trend [get]
func (h *AnalyticsHandler) GetTrend(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var q trendQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}
	interval := report.IntervalMonth
	if q.Interval == "day" {
		interval = report.IntervalDay
	}

	filter, err := parseReportFilter(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	points, err := h.analyticsService.GetTrend(userID, filter, interval)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"trend": points})
}

// GetCategoryBreakdown returns per-category expense totals
// @Summary     Get category breakdown
// @Description Get expense totals, counts, averages, and percentage share per category, descending by total
// @Tags        analytics
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       time_range query string false "Relative window (1month, 3months, 6months, 1year, all)"
// @Param       from_date  query string false "Filter by start date (RFC3339 or YYYY-MM-DD); overrides time_range"
// @Param       to_date    query string false "Filter by end date (RFC3339 or YYYY-MM-DD)"
// @Success     200 {array} report.CategorySummary "Category rows"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /analytics/categories [get]
func (h *AnalyticsHandler) GetCategoryBreakdown(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	filter, err := parseReportFilter(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	breakdown, err := h.analyticsService.GetCategoryBreakdown(userID, filter)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"categories": breakdown})
}

// GetPatterns returns weekday spending and top spending days
// @Summary     Get spending patterns
// @Description Get expense totals per weekday (Sun-Sat) and the five highest-spend days
// @Tags        analytics
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       time_range query string false "Relative window (1month, 3months, 6months, 1year, all)"
// @Param       from_date  query string false "Filter by start date (RFC3339 or YYYY-MM-DD); overrides time_range"
// @Param       to_date    query string false "Filter by end date (RFC3339 or YYYY-MM-DD)"
// @Success     200 {object} services.Patterns "Spending patterns"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /analytics/patterns [get]
func (h *AnalyticsHandler) GetPatterns(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	filter, err := parseReportFilter(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	patterns, err := h.analyticsService.GetPatterns(userID, filter)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"patterns": patterns})
}
