package services

import (
	"context"
	"time"

	"expenser/internal/export"
	"expenser/internal/models"
	"expenser/internal/pagination"
	"expenser/internal/report"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(email, password, displayName string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id string) (*models.User, error)
	AttemptLogin(email, password string) (*models.User, error)
	StoreRefreshTokenHash(userID, tokenHash string) error
	GetRefreshTokenHash(userID string) (string, error)
	UpdateProfile(userID, displayName, photoURL string) (*models.User, error)
}

// CategoryServicer defines the contract for category-related business logic.
type CategoryServicer interface {
	SeedDefaults(userID string) error
	CreateCategory(userID, name, color, icon string) (*models.Category, error)
	GetUserCategories(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Category], error)
	GetAllUserCategories(userID string) ([]models.Category, error)
}

// TransactionFilter holds optional filter parameters for listing transactions.
type TransactionFilter struct {
	FromDate  *time.Time
	ToDate    *time.Time
	Type      *models.TransactionType
	Category  *string
	Search    *string
	MinAmount *int64
	MaxAmount *int64
}

// TransactionUpdate holds the partial fields of a transaction update; nil
// fields are left untouched.
type TransactionUpdate struct {
	Amount      *int64
	Description *string
	Category    *string
	Date        *time.Time
	Type        *models.TransactionType
	Tags        *models.Tags
}

// UserStats summarizes a user's lifetime transaction activity.
type UserStats struct {
	TransactionCount int64 `json:"transaction_count"`
	TotalIncome      int64 `json:"total_income"`
	TotalExpenses    int64 `json:"total_expenses"`
}

// TransactionServicer defines the contract for transaction-related business logic.
type TransactionServicer interface {
	CreateTransaction(userID string, transactionType models.TransactionType, amount int64, description, category string, date time.Time, tags models.Tags) (*models.Transaction, error)
	GetUserTransactions(userID string, page pagination.PageRequest, filter TransactionFilter) (*pagination.PageResponse[models.Transaction], error)
	GetTransactionByID(userID, transactionID string) (*models.Transaction, error)
	UpdateTransaction(userID, transactionID string, update TransactionUpdate) (*models.Transaction, error)
	DeleteTransaction(userID, transactionID string) error
	GetUserStats(userID string) (*UserStats, error)
	SeedDemoData(userID string) error
}

// AnalyticsServicer defines the contract for the derived aggregate views.
type AnalyticsServicer interface {
	GetSummary(userID string, filter report.Filter) (*report.Summary, error)
	GetTrend(userID string, filter report.Filter, interval report.TrendInterval) ([]report.TrendPoint, error)
	GetCategoryBreakdown(userID string, filter report.Filter) ([]report.CategorySummary, error)
	GetPatterns(userID string, filter report.Filter) (*Patterns, error)
}

// Patterns bundles the weekday pattern with the top spending days.
type Patterns struct {
	Weekdays        []report.WeekdayTotal `json:"weekdays"`
	TopSpendingDays []report.SpendingDay  `json:"top_spending_days"`
}

// ExportServicer defines the contract for report generation.
type ExportServicer interface {
	GenerateReport(userID string, filter report.Filter, format export.Format, reportType export.ReportType) ([]byte, string, error)
}

// ChatServicer defines the contract for the assistant conversation.
type ChatServicer interface {
	SendMessage(ctx context.Context, userID, text string) (*models.ChatMessage, error)
	GetMessages(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.ChatMessage], error)
}

// AuditServicer defines the contract for the activity trail.
type AuditServicer interface {
	Log(userID, action, resourceType, resourceID, ipAddress string, changes map[string]any)
}
