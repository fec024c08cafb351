package services

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	apperrors "expenser/internal/errors"
	"expenser/internal/logger"
	"expenser/internal/models"
	"expenser/internal/pagination"
)

// transactionService handles transaction-related business logic.
type transactionService struct {
	db *gorm.DB
}

// NewTransactionService creates a new TransactionServicer.
func NewTransactionService(db *gorm.DB) TransactionServicer {
	return &transactionService{db: db}
}

// CreateTransaction records a new income or expense entry for a user.
func (s *transactionService) CreateTransaction(
	userID string,
	transactionType models.TransactionType,
	amount int64,
	description, category string,
	date time.Time,
	tags models.Tags,
) (*models.Transaction, error) {
	if amount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
	}
	if transactionType != models.TransactionTypeIncome && transactionType != models.TransactionTypeExpense {
		return nil, apperrors.ErrInvalidTransactionType
	}
	if strings.TrimSpace(description) == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "description is required")
	}

	// Default date to now if not provided
	if date.IsZero() {
		date = time.Now()
	}
	date = models.DateOnly(date)

	transaction := &models.Transaction{
		UserID:      userID,
		Type:        transactionType,
		Amount:      amount,
		Description: strings.TrimSpace(description),
		Category:    strings.TrimSpace(category),
		Date:        date,
		Tags:        tags,
	}

	if err := s.db.Create(transaction).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return transaction, nil
}

// GetUserTransactions retrieves a paginated, filtered list of the user's transactions.
func (s *transactionService) GetUserTransactions(userID string, page pagination.PageRequest, filter TransactionFilter) (*pagination.PageResponse[models.Transaction], error) {
	page.Defaults()

	base := s.db.Model(&models.Transaction{}).Where("user_id = ?", userID)
	base = applyTransactionFilters(base, filter)

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var transactions []models.Transaction
	if err := base.Scopes(pagination.Paginate(page)).
		Order("date DESC, created_at DESC").
		Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(transactions, page.Page, page.PageSize, totalItems)
	return &result, nil
}

func applyTransactionFilters(q *gorm.DB, f TransactionFilter) *gorm.DB {
	if f.FromDate != nil {
		q = q.Where("date >= ?", *f.FromDate)
	}
	if f.ToDate != nil {
		q = q.Where("date <= ?", *f.ToDate)
	}
	if f.Type != nil {
		q = q.Where("type = ?", *f.Type)
	}
	if f.Category != nil {
		q = q.Where("category = ?", *f.Category)
	}
	if f.Search != nil && *f.Search != "" {
		pattern := "%" + strings.ToLower(*f.Search) + "%"
		q = q.Where("LOWER(description) LIKE ? OR LOWER(tags) LIKE ?", pattern, pattern)
	}
	if f.MinAmount != nil {
		q = q.Where("amount >= ?", *f.MinAmount)
	}
	if f.MaxAmount != nil {
		q = q.Where("amount <= ?", *f.MaxAmount)
	}
	return q
}

// GetTransactionByID retrieves a transaction by ID for a specific user.
func (s *transactionService) GetTransactionByID(userID, transactionID string) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := s.db.Where("id = ? AND user_id = ?", transactionID, userID).First(&transaction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTransactionNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &transaction, nil
}

// UpdateTransaction applies a partial update to an existing transaction.
// Missing fields keep their previous values.
func (s *transactionService) UpdateTransaction(userID, transactionID string, update TransactionUpdate) (*models.Transaction, error) {
	transaction, err := s.GetTransactionByID(userID, transactionID)
	if err != nil {
		return nil, err
	}

	if update.Amount != nil {
		if *update.Amount <= 0 {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
		}
		transaction.Amount = *update.Amount
	}
	if update.Type != nil {
		if *update.Type != models.TransactionTypeIncome && *update.Type != models.TransactionTypeExpense {
			return nil, apperrors.ErrInvalidTransactionType
		}
		transaction.Type = *update.Type
	}
	if update.Description != nil {
		if strings.TrimSpace(*update.Description) == "" {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "description is required")
		}
		transaction.Description = strings.TrimSpace(*update.Description)
	}
	if update.Category != nil {
		transaction.Category = strings.TrimSpace(*update.Category)
	}
	if update.Date != nil {
		transaction.Date = models.DateOnly(*update.Date)
	}
	if update.Tags != nil {
		transaction.Tags = *update.Tags
	}

	if err := s.db.Save(transaction).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return transaction, nil
}

// DeleteTransaction removes a transaction owned by the user.
func (s *transactionService) DeleteTransaction(userID, transactionID string) error {
	transaction, err := s.GetTransactionByID(userID, transactionID)
	if err != nil {
		return err
	}
	if err := s.db.Delete(transaction).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// GetUserStats returns lifetime totals across all of the user's transactions.
func (s *transactionService) GetUserStats(userID string) (*UserStats, error) {
	var stats UserStats

	err := s.db.Model(&models.Transaction{}).Where("user_id = ?", userID).
		Count(&stats.TransactionCount).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	type row struct {
		Type  models.TransactionType
		Total int64
	}
	var rows []row
	err = s.db.Model(&models.Transaction{}).
		Select("type, COALESCE(SUM(amount), 0) AS total").
		Where("user_id = ?", userID).
		Group("type").
		Scan(&rows).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	for _, r := range rows {
		switch r.Type {
		case models.TransactionTypeIncome:
			stats.TotalIncome = r.Total
		case models.TransactionTypeExpense:
			stats.TotalExpenses = r.Total
		}
	}
	return &stats, nil
}

// SeedDemoData inserts a small set of sample transactions so a fresh account
// has something to look at. Skipped when the user already has transactions.
func (s *transactionService) SeedDemoData(userID string) error {
	var count int64
	if err := s.db.Model(&models.Transaction{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count > 0 {
		return nil
	}

	today := models.DateOnly(time.Now())
	samples := []models.Transaction{
		{
			UserID:      userID,
			Type:        models.TransactionTypeIncome,
			Amount:      300000,
			Description: "Monthly salary",
			Category:    "Income",
			Date:        today,
		},
		{
			UserID:      userID,
			Type:        models.TransactionTypeExpense,
			Amount:      2550,
			Description: "Lunch at restaurant",
			Category:    "Food & Dining",
			Date:        today,
			Tags:        models.Tags{"restaurant", "lunch"},
		},
		{
			UserID:      userID,
			Type:        models.TransactionTypeExpense,
			Amount:      12000,
			Description: "Electricity bill",
			Category:    "Bills & Utilities",
			Date:        today.AddDate(0, 0, -1),
			Tags:        models.Tags{"utilities", "monthly"},
		},
	}

	if err := s.db.Create(&samples).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	logger.Get().Infow("demo transactions seeded", "user_id", userID, "count", len(samples))
	return nil
}
