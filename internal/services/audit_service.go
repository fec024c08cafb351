package services

import (
	"encoding/json"

	"gorm.io/gorm"

	"expenser/internal/logger"
	"expenser/internal/models"
)

// auditService appends entries to the activity trail. Writes are best-effort:
// a failed audit insert is logged but never fails the request that caused it.
type auditService struct {
	db *gorm.DB
}

// NewAuditService creates a new AuditServicer.
func NewAuditService(db *gorm.DB) AuditServicer {
	return &auditService{db: db}
}

func (s *auditService) Log(userID, action, resourceType, resourceID, ipAddress string, changes map[string]any) {
	var encoded string
	if len(changes) > 0 {
		if b, err := json.Marshal(changes); err == nil {
			encoded = string(b)
		}
	}

	entry := models.AuditLog{
		UserID:       userID,
		Action:       action,
		ResourceType: resourceType,
		IPAddress:    ipAddress,
		Changes:      encoded,
	}
	if resourceID != "" {
		entry.ResourceID = &resourceID
	}

	if err := s.db.Create(&entry).Error; err != nil {
		logger.Get().Warnw("audit log write failed",
			"user_id", userID,
			"action", action,
			"resource_type", resourceType,
			"error", err,
		)
	}
}
