package services

import (
	"bytes"
	"fmt"
	"time"

	"gorm.io/gorm"

	apperrors "expenser/internal/errors"
	"expenser/internal/export"
	"expenser/internal/models"
	"expenser/internal/report"
)

// exportService renders a user's filtered transactions as a downloadable report.
type exportService struct {
	db *gorm.DB
}

// NewExportService creates a new ExportServicer.
func NewExportService(db *gorm.DB) ExportServicer {
	return &exportService{db: db}
}

// GenerateReport builds a report in the requested format and returns the raw
// bytes together with a suggested filename.
func (s *exportService) GenerateReport(userID string, filter report.Filter, format export.Format, reportType export.ReportType) ([]byte, string, error) {
	switch format {
	case export.FormatCSV, export.FormatJSON, export.FormatPDF:
	default:
		return nil, "", apperrors.ErrInvalidReportFormat
	}

	var transactions []models.Transaction
	err := s.db.Where("user_id = ?", userID).Order("date ASC").Find(&transactions).Error
	if err != nil {
		return nil, "", apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	transactions = filter.Apply(transactions)

	var categories []models.Category
	if err := s.db.Where("user_id = ?", userID).Find(&categories).Error; err != nil {
		return nil, "", apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	now := time.Now()
	var buf bytes.Buffer

	switch format {
	case export.FormatCSV:
		err = export.WriteCSV(&buf, transactions)
	case export.FormatJSON:
		err = export.WriteJSON(&buf, export.NewReport(transactions, categories, filter, now))
	case export.FormatPDF:
		err = export.WritePDF(&buf, export.NewReport(transactions, categories, filter, now), reportType)
	}
	if err != nil {
		return nil, "", apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	filename := fmt.Sprintf("expenser-report-%s.%s", now.Format("2006-01-02"), format.Extension())
	return buf.Bytes(), filename, nil
}
