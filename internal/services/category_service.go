package services

import (
	"strings"

	"gorm.io/gorm"

	apperrors "expenser/internal/errors"
	"expenser/internal/logger"
	"expenser/internal/models"
	"expenser/internal/pagination"
)

type categoryService struct {
	db *gorm.DB
}

// NewCategoryService creates a new category service instance.
func NewCategoryService(db *gorm.DB) CategoryServicer {
	return &categoryService{db: db}
}

// SeedDefaults creates the starter category set for a new user. It is a no-op
// when the user already has categories, so re-running onboarding is safe.
func (s *categoryService) SeedDefaults(userID string) error {
	var count int64
	if err := s.db.Model(&models.Category{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count > 0 {
		return nil
	}

	categories := make([]models.Category, 0, len(models.DefaultCategories))
	for _, d := range models.DefaultCategories {
		categories = append(categories, models.Category{
			UserID: userID,
			Name:   d.Name,
			Color:  d.Color,
			Icon:   d.Icon,
		})
	}

	if err := s.db.Create(&categories).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	logger.Get().Infow("default categories seeded", "user_id", userID, "count", len(categories))
	return nil
}

func (s *categoryService) CreateCategory(userID, name, color, icon string) (*models.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Category name is required")
	}

	var count int64
	err := s.db.Model(&models.Category{}).
		Where("user_id = ? AND LOWER(name) = LOWER(?)", userID, name).
		Count(&count).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count > 0 {
		return nil, apperrors.ErrDuplicateCategory
	}

	category := models.Category{
		UserID: userID,
		Name:   name,
		Color:  color,
		Icon:   icon,
	}
	if err := s.db.Create(&category).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &category, nil
}

func (s *categoryService) GetUserCategories(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Category], error) {
	page.Defaults()

	query := s.db.Model(&models.Category{}).Where("user_id = ?", userID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var categories []models.Category
	err := query.Scopes(pagination.Paginate(page)).Order("name asc").Find(&categories).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	resp := pagination.NewPageResponse(categories, page.Page, page.PageSize, total)
	return &resp, nil
}

func (s *categoryService) GetAllUserCategories(userID string) ([]models.Category, error) {
	var categories []models.Category
	err := s.db.Where("user_id = ?", userID).Order("name asc").Find(&categories).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return categories, nil
}
