package domain

import (
	"time"

	"github.com/google/uuid"
)

type ChatSender string

const (
	SenderUser      ChatSender = "user"
	SenderAssistant ChatSender = "ai"
)

type ChatMessage struct {
	ID        uuid.UUID  `json:"id"`
	UserID    uuid.UUID  `json:"user_id"`
	Message   string     `json:"message"`
	Sender    ChatSender `json:"sender"`
	Timestamp time.Time  `json:"timestamp"`
}

type ChatRequest struct {
	Message string `json:"message" validate:"required"`
}

type ChatResponse struct {
	UserMessage ChatMessage `json:"user_message"`
	AIResponse  ChatMessage `json:"ai_response"`
}
