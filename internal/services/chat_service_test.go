package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"expenser/internal/gemini"
	"expenser/internal/models"
	"expenser/internal/pagination"
	"expenser/internal/testutil"
)

func geminiStub(t *testing.T, handler http.HandlerFunc) *gemini.Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return gemini.NewClient(server.URL, "test-key", "test-model", server.Client())
}

func replyWith(text string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"` + text + `"}]}}]}`))
	}
}

func TestSendMessage(t *testing.T) {
	t.Run("stores_both_sides_of_the_exchange", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewChatService(db, geminiStub(t, replyWith("Try cutting dining out.")))

		user := testutil.CreateTestUser(t, db)
		reply, err := svc.SendMessage(context.Background(), user.ID, "How can I save money?")
		testutil.AssertNoError(t, err)

		if reply.Sender != models.ChatSenderAssistant {
			t.Errorf("expected assistant reply, got sender %s", reply.Sender)
		}
		if reply.Text != "Try cutting dining out." {
			t.Errorf("unexpected reply text %q", reply.Text)
		}

		var count int64
		db.Model(&models.ChatMessage{}).Where("user_id = ?", user.ID).Count(&count)
		if count != 2 {
			t.Errorf("expected 2 stored messages, got %d", count)
		}
	})

	t.Run("empty_text", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewChatService(db, geminiStub(t, replyWith("hi")))

		user := testutil.CreateTestUser(t, db)
		_, err := svc.SendMessage(context.Background(), user.ID, "   ")
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("upstream_failure_keeps_user_message", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewChatService(db, geminiStub(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"error":{"message":"quota exceeded"}}`))
		}))

		user := testutil.CreateTestUser(t, db)
		_, err := svc.SendMessage(context.Background(), user.ID, "hello?")
		testutil.AssertAppError(t, err, "CHAT_UPSTREAM")

		var messages []models.ChatMessage
		db.Where("user_id = ?", user.ID).Find(&messages)
		if len(messages) != 1 {
			t.Fatalf("expected the user message to be kept, got %d messages", len(messages))
		}
		if messages[0].Sender != models.ChatSenderUser || messages[0].Text != "hello?" {
			t.Errorf("unexpected stored message %+v", messages[0])
		}
	})

	t.Run("not_configured", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewChatService(db, gemini.NewClient("", "", "", nil))

		user := testutil.CreateTestUser(t, db)
		_, err := svc.SendMessage(context.Background(), user.ID, "hello")
		testutil.AssertAppError(t, err, "CHAT_NOT_ENABLED")

		var count int64
		db.Model(&models.ChatMessage{}).Where("user_id = ?", user.ID).Count(&count)
		if count != 0 {
			t.Errorf("expected no stored messages, got %d", count)
		}
	})
}

func TestGetMessages(t *testing.T) {
	t.Run("empty_history_returns_greeting", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewChatService(db, nil)

		user := testutil.CreateTestUserWithEmail(t, db, "greeted@example.com")
		page, err := svc.GetMessages(user.ID, pagination.PageRequest{})
		testutil.AssertNoError(t, err)

		if len(page.Data) != 1 {
			t.Fatalf("expected a single greeting entry, got %d", len(page.Data))
		}
		greeting := page.Data[0]
		if greeting.Sender != models.ChatSenderAssistant {
			t.Errorf("expected assistant greeting, got %s", greeting.Sender)
		}
		if !strings.Contains(greeting.Text, "greeted") {
			t.Errorf("expected greeting to address the user, got %q", greeting.Text)
		}

		// The greeting is synthesized, never stored.
		var count int64
		db.Model(&models.ChatMessage{}).Where("user_id = ?", user.ID).Count(&count)
		if count != 0 {
			t.Errorf("expected greeting not to be persisted, got %d rows", count)
		}
	})

	t.Run("ascending_order", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewChatService(db, geminiStub(t, replyWith("ok")))

		user := testutil.CreateTestUser(t, db)
		_, err := svc.SendMessage(context.Background(), user.ID, "first question")
		testutil.AssertNoError(t, err)
		_, err = svc.SendMessage(context.Background(), user.ID, "second question")
		testutil.AssertNoError(t, err)

		page, err := svc.GetMessages(user.ID, pagination.PageRequest{})
		testutil.AssertNoError(t, err)

		if len(page.Data) != 4 {
			t.Fatalf("expected 4 messages, got %d", len(page.Data))
		}
		if page.Data[0].Text != "first question" {
			t.Errorf("expected oldest message first, got %q", page.Data[0].Text)
		}
		if page.Data[0].Sender != models.ChatSenderUser || page.Data[1].Sender != models.ChatSenderAssistant {
			t.Error("expected alternating user/assistant order")
		}
	})
}
