package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	apperrors "expenser/internal/errors"
	"expenser/internal/gemini"
	"expenser/internal/logger"
	"expenser/internal/models"
	"expenser/internal/pagination"
)

// chatService persists the assistant conversation and proxies prompts to the
// Gemini API. History is append-only; there is no edit or delete.
type chatService struct {
	db     *gorm.DB
	client *gemini.Client
}

// NewChatService creates a new ChatServicer.
func NewChatService(db *gorm.DB, client *gemini.Client) ChatServicer {
	return &chatService{db: db, client: client}
}

// SendMessage stores the user's message, forwards it verbatim to the model,
// then stores and returns the assistant reply. The user message is kept even
// when the upstream call fails, so history reflects what was actually asked.
func (s *chatService) SendMessage(ctx context.Context, userID, text string) (*models.ChatMessage, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "message text is required")
	}

	if s.client == nil || !s.client.Enabled() {
		return nil, apperrors.ErrChatNotEnabled
	}

	userMsg := models.ChatMessage{
		UserID: userID,
		Sender: models.ChatSenderUser,
		Text:   text,
	}
	if err := s.db.Create(&userMsg).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	reply, err := s.client.GenerateText(ctx, text)
	if err != nil {
		logger.Get().Warnw("chat upstream call failed", "user_id", userID, "error", err)
		return nil, apperrors.Wrap(apperrors.ErrChatUpstream, err)
	}

	assistantMsg := models.ChatMessage{
		UserID: userID,
		Sender: models.ChatSenderAssistant,
		Text:   reply,
	}
	if err := s.db.Create(&assistantMsg).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return &assistantMsg, nil
}

// GetMessages returns the paginated conversation history in ascending order.
// A brand-new history gets a synthesized greeting entry that is never stored.
func (s *chatService) GetMessages(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.ChatMessage], error) {
	page.Defaults()

	base := s.db.Model(&models.ChatMessage{}).Where("user_id = ?", userID)

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if totalItems == 0 {
		greeting := models.ChatMessage{
			UserID: userID,
			Sender: models.ChatSenderAssistant,
			Text:   s.greetingFor(userID),
		}
		greeting.CreatedAt = time.Now()
		resp := pagination.NewPageResponse([]models.ChatMessage{greeting}, page.Page, page.PageSize, 1)
		return &resp, nil
	}

	var messages []models.ChatMessage
	if err := base.Scopes(pagination.Paginate(page)).
		Order("created_at ASC").
		Find(&messages).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	resp := pagination.NewPageResponse(messages, page.Page, page.PageSize, totalItems)
	return &resp, nil
}

func (s *chatService) greetingFor(userID string) string {
	name := "there"
	var user models.User
	if err := s.db.Select("email", "display_name").Where("id = ?", userID).First(&user).Error; err == nil {
		switch {
		case user.DisplayName != "":
			name = user.DisplayName
		case user.Email != "":
			name = strings.SplitN(user.Email, "@", 2)[0]
		}
	}
	return fmt.Sprintf("Hello %s! I'm your AI financial assistant. I can help you analyze your spending patterns, provide budgeting advice, and answer questions about your finances. What would you like to know?", name)
}
