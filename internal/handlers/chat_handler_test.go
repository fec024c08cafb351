package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "expenser/internal/errors"
	"expenser/internal/models"
	"expenser/internal/pagination"
	"expenser/internal/uuid"
)

func setupChatRouter(handler *ChatHandler) *gin.Engine {
	r := gin.New()
	authed := r.Group("/", injectUserID(testUserID))
	authed.POST("/chat/messages", handler.SendMessage)
	authed.GET("/chat/messages", handler.GetMessages)
	return r
}

func TestChatHandler_SendMessage(t *testing.T) {
	t.Run("returns 200 with assistant reply", func(t *testing.T) {
		var gotText string
		chatSvc := &mockChatService{
			sendMessageFn: func(_ context.Context, userID, text string) (*models.ChatMessage, error) {
				gotText = text
				return &models.ChatMessage{
					Base:   models.Base{ID: uuid.New()},
					UserID: userID,
					Sender: models.ChatSenderAssistant,
					Text:   "You spent $25.50 on food this month.",
				}, nil
			},
		}
		r := setupChatRouter(NewChatHandler(chatSvc))

		rec := doRequest(r, "POST", "/chat/messages", `{"message":"How much did I spend on food?"}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if gotText != "How much did I spend on food?" {
			t.Errorf("unexpected forwarded text: %q", gotText)
		}
		result := parseJSON(t, rec)
		message := result["message"].(map[string]interface{})
		if message["sender"] != "assistant" {
			t.Errorf("expected assistant sender, got %v", message["sender"])
		}
		if message["text"] != "You spent $25.50 on food this month." {
			t.Errorf("unexpected reply text: %v", message["text"])
		}
	})

	t.Run("returns 400 on empty message", func(t *testing.T) {
		r := setupChatRouter(NewChatHandler(&mockChatService{}))

		rec := doRequest(r, "POST", "/chat/messages", `{"message":""}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})

	t.Run("returns 502 when the upstream fails", func(t *testing.T) {
		chatSvc := &mockChatService{
			sendMessageFn: func(_ context.Context, _, _ string) (*models.ChatMessage, error) {
				return nil, apperrors.ErrChatUpstream
			},
		}
		r := setupChatRouter(NewChatHandler(chatSvc))

		rec := doRequest(r, "POST", "/chat/messages", `{"message":"hello"}`)

		if rec.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "CHAT_UPSTREAM")
	})

	t.Run("returns 503 when chat is not configured", func(t *testing.T) {
		chatSvc := &mockChatService{
			sendMessageFn: func(_ context.Context, _, _ string) (*models.ChatMessage, error) {
				return nil, apperrors.ErrChatNotEnabled
			},
		}
		r := setupChatRouter(NewChatHandler(chatSvc))

		rec := doRequest(r, "POST", "/chat/messages", `{"message":"hello"}`)

		if rec.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", rec.Code)
		}
	})

	t.Run("returns 401 without auth", func(t *testing.T) {
		handler := NewChatHandler(&mockChatService{})
		r := gin.New()
		r.POST("/chat/messages", handler.SendMessage)

		rec := doRequest(r, "POST", "/chat/messages", `{"message":"hello"}`)

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
	})
}

func TestChatHandler_GetMessages(t *testing.T) {
	t.Run("returns paginated history", func(t *testing.T) {
		chatSvc := &mockChatService{
			getMessagesFn: func(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.ChatMessage], error) {
				items := []models.ChatMessage{
					{Base: models.Base{ID: uuid.New()}, UserID: userID, Sender: models.ChatSenderUser, Text: "hello"},
					{Base: models.Base{ID: uuid.New()}, UserID: userID, Sender: models.ChatSenderAssistant, Text: "Hi! How can I help?"},
				}
				resp := pagination.NewPageResponse(items, page.Page, page.PageSize, 2)
				return &resp, nil
			},
		}
		r := setupChatRouter(NewChatHandler(chatSvc))

		rec := doRequest(r, "GET", "/chat/messages?page=1&page_size=50", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		if result["total_items"] != float64(2) {
			t.Errorf("expected total_items 2, got %v", result["total_items"])
		}
		data := result["data"].([]interface{})
		if len(data) != 2 {
			t.Fatalf("expected 2 messages, got %d", len(data))
		}
		first := data[0].(map[string]interface{})
		if first["sender"] != "user" {
			t.Errorf("expected user message first, got %v", first["sender"])
		}
	})

	t.Run("returns 400 on invalid page", func(t *testing.T) {
		r := setupChatRouter(NewChatHandler(&mockChatService{}))

		rec := doRequest(r, "GET", "/chat/messages?page=-1", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}
