package services

import (
	"time"

	"gorm.io/gorm"

	apperrors "expenser/internal/errors"
	"expenser/internal/models"
	"expenser/internal/report"
)

// topSpendingDaysLimit caps the "biggest spending days" list.
const topSpendingDaysLimit = 5

// analyticsService computes derived views over a user's transactions. All
// aggregation math lives in the report package; this service only loads the
// rows and applies the filter.
type analyticsService struct {
	db *gorm.DB
}

// NewAnalyticsService creates a new AnalyticsServicer.
func NewAnalyticsService(db *gorm.DB) AnalyticsServicer {
	return &analyticsService{db: db}
}

func (s *analyticsService) loadTransactions(userID string, filter report.Filter) ([]models.Transaction, error) {
	var transactions []models.Transaction
	err := s.db.Where("user_id = ?", userID).Order("date ASC").Find(&transactions).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return filter.Apply(transactions), nil
}

func (s *analyticsService) loadCategories(userID string) ([]models.Category, error) {
	var categories []models.Category
	if err := s.db.Where("user_id = ?", userID).Find(&categories).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return categories, nil
}

func (s *analyticsService) GetSummary(userID string, filter report.Filter) (*report.Summary, error) {
	transactions, err := s.loadTransactions(userID, filter)
	if err != nil {
		return nil, err
	}
	categories, err := s.loadCategories(userID)
	if err != nil {
		return nil, err
	}
	summary := report.ComputeSummary(transactions, categories, time.Now())
	return &summary, nil
}

func (s *analyticsService) GetTrend(userID string, filter report.Filter, interval report.TrendInterval) ([]report.TrendPoint, error) {
	transactions, err := s.loadTransactions(userID, filter)
	if err != nil {
		return nil, err
	}
	return report.Trend(transactions, interval), nil
}

func (s *analyticsService) GetCategoryBreakdown(userID string, filter report.Filter) ([]report.CategorySummary, error) {
	transactions, err := s.loadTransactions(userID, filter)
	if err != nil {
		return nil, err
	}
	categories, err := s.loadCategories(userID)
	if err != nil {
		return nil, err
	}
	return report.CategoryBreakdown(transactions, categories), nil
}

func (s *analyticsService) GetPatterns(userID string, filter report.Filter) (*Patterns, error) {
	transactions, err := s.loadTransactions(userID, filter)
	if err != nil {
		return nil, err
	}
	return &Patterns{
		Weekdays:        report.WeekdayPattern(transactions),
		TopSpendingDays: report.TopSpendingDays(transactions, topSpendingDaysLimit),
	}, nil
}
