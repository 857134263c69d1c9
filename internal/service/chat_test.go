package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"

	"safescout/internal/domain"
	"safescout/internal/service"
	mock_service "safescout/internal/service/mocks"
	"safescout/pkg/e"
)

func TestChatService_Send_PersistsBothSides(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockChatRepository(ctrl)
	svc := service.NewChatService(repo, newTestLogger())

	userID := mustUUID(t)
	var stored []*domain.ChatMessage
	repo.EXPECT().
		Append(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, msg *domain.ChatMessage) error {
			stored = append(stored, msg)
			return nil
		}).
		Times(2)

	res, err := svc.Send(context.Background(), userID, domain.ChatRequest{Message: "  is this area dangerous?  "})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if len(stored) != 2 {
		t.Fatalf("expected 2 persisted messages got %d", len(stored))
	}
	if stored[0].Sender != domain.SenderUser || stored[0].Message != "is this area dangerous?" {
		t.Fatalf("user message wrong: %+v", stored[0])
	}
	if stored[1].Sender != domain.SenderAssistant {
		t.Fatalf("second message must come from the assistant: %+v", stored[1])
	}
	if res.UserMessage.ID != stored[0].ID || res.AIResponse.ID != stored[1].ID {
		t.Fatalf("response does not echo the persisted pair")
	}
	if res.UserMessage.UserID != userID || res.AIResponse.UserID != userID {
		t.Fatalf("messages not attributed to caller")
	}
}

func TestChatService_Send_ReplyKeywords(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		message  string
		wantPart string
	}{
		{"safety_tips", "any SAFETY advice?", "safety tips for tourists"},
		{"danger_beats_emergency", "danger! need emergency help", "safety tips for tourists"},
		{"emergency_contacts", "help me please", "Emergency Services: 911"},
		{"resources", "where is the nearest hospital", "Safety Resources"},
		{"fallback", "good morning", "personal safety assistant"},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := mock_service.NewMockChatRepository(ctrl)
			repo.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil).Times(2)

			svc := service.NewChatService(repo, newTestLogger())

			res, err := svc.Send(context.Background(), mustUUID(t), domain.ChatRequest{Message: c.message})
			if err != nil {
				t.Fatalf("unexpected err: %v", err)
			}
			if !strings.Contains(res.AIResponse.Message, c.wantPart) {
				t.Fatalf("reply to %q missing %q:\n%s", c.message, c.wantPart, res.AIResponse.Message)
			}
		})
	}
}

func TestChatService_Send_BlankMessage(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockChatRepository(ctrl)
	svc := service.NewChatService(repo, newTestLogger())

	_, err := svc.Send(context.Background(), mustUUID(t), domain.ChatRequest{Message: "   "})
	if !errors.Is(err, e.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput got %v", err)
	}
}

func TestChatService_Send_RepoError(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockChatRepository(ctrl)
	repo.EXPECT().Append(gomock.Any(), gomock.Any()).Return(errors.New("insert failed")).Times(1)

	svc := service.NewChatService(repo, newTestLogger())

	if _, err := svc.Send(context.Background(), mustUUID(t), domain.ChatRequest{Message: "hi"}); err == nil {
		t.Fatalf("expected error, got nil")
	}
}

func TestChatService_History_OK_DefaultLimit(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockChatRepository(ctrl)
	userID := mustUUID(t)
	repo.EXPECT().
		ListByOwner(gomock.Any(), userID, 50, 0).
		Return([]*domain.ChatMessage{}, nil).
		Times(1)

	svc := service.NewChatService(repo, newTestLogger())

	if _, err := svc.History(context.Background(), userID, userID, 0, 0); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}

func TestChatService_History_ForeignUserForbidden(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockChatRepository(ctrl)
	svc := service.NewChatService(repo, newTestLogger())

	_, err := svc.History(context.Background(), mustUUID(t), mustUUID(t), 0, 0)
	if !errors.Is(err, e.ErrForbidden) {
		t.Fatalf("expected ErrForbidden got %v", err)
	}
}
