package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"safescout/internal/domain"
	"safescout/pkg/e"

	"github.com/google/uuid"
)

// ChatService runs the scripted safety assistant. Both the user message
// and the generated reply are persisted so history survives restarts.
type ChatService struct {
	repo   ChatRepository
	logger *slog.Logger
}

func NewChatService(repo ChatRepository, logger *slog.Logger) *ChatService {
	return &ChatService{repo: repo, logger: logger}
}

func (s *ChatService) Send(ctx context.Context, userID uuid.UUID, req domain.ChatRequest) (*domain.ChatResponse, error) {
	const op = "service.Chat.Send"

	text := strings.TrimSpace(req.Message)
	if text == "" {
		return nil, fmt.Errorf("%s: message: %w", op, e.ErrInvalidInput)
	}

	userMsg := &domain.ChatMessage{
		ID:        uuid.New(),
		UserID:    userID,
		Message:   text,
		Sender:    domain.SenderUser,
		Timestamp: time.Now().UTC(),
	}
	if err := s.repo.Append(ctx, userMsg); err != nil {
		return nil, err
	}

	aiMsg := &domain.ChatMessage{
		ID:        uuid.New(),
		UserID:    userID,
		Message:   assistantReply(text),
		Sender:    domain.SenderAssistant,
		Timestamp: time.Now().UTC(),
	}
	if err := s.repo.Append(ctx, aiMsg); err != nil {
		return nil, err
	}

	return &domain.ChatResponse{UserMessage: *userMsg, AIResponse: *aiMsg}, nil
}

// History returns the caller's own conversation, oldest first.
func (s *ChatService) History(ctx context.Context, requested, actingUserID uuid.UUID, limit, offset int) ([]*domain.ChatMessage, error) {
	const op = "service.Chat.History"

	if requested != actingUserID {
		return nil, fmt.Errorf("%s: %w", op, e.ErrForbidden)
	}
	limit, offset, err := normalizePage(limit, offset, 50)
	if err != nil {
		return nil, err
	}
	return s.repo.ListByOwner(ctx, actingUserID, limit, offset)
}

// assistantReply picks a canned answer by keyword. Branch order matters:
// "danger"/"safety" wins over the emergency branch when both match.
func assistantReply(message string) string {
	lower := strings.ToLower(message)

	switch {
	case strings.Contains(lower, "danger") || strings.Contains(lower, "safety"):
		return "Here are some important safety tips for tourists:\n\n" +
			"1. Always keep your valuables secure and out of sight\n" +
			"2. Stay in well-lit, populated areas, especially at night\n" +
			"3. Keep digital copies of important documents\n" +
			"4. Share your location with trusted contacts\n" +
			"5. Trust your instincts - if something feels wrong, leave the area\n\n" +
			"Would you like specific safety information about a particular area?"
	case strings.Contains(lower, "help") || strings.Contains(lower, "emergency"):
		return "Emergency Contacts:\n\n" +
			"Emergency Services: 911\n" +
			"Police: 911\n" +
			"Ambulance: 911\n" +
			"Fire Department: 911\n\n" +
			"Tip: Use the SOS button in the app to alert your emergency contacts and share your location automatically.\n\n" +
			"Are you in immediate danger? If so, please call emergency services right away."
	case strings.Contains(lower, "police") || strings.Contains(lower, "hospital"):
		return "I can help you find nearby safety resources!\n\n" +
			"Hospitals and Medical Centers\n" +
			"Police Stations\n" +
			"Embassy Locations\n\n" +
			"Check the 'Safety Resources' section in the app to see locations near you on the map, " +
			"complete with addresses, phone numbers, and directions.\n\n" +
			"Would you like me to help you with anything else?"
	default:
		return "Hello! I'm your personal safety assistant. I can help you with:\n\n" +
			"- Safety tips and advice for tourists\n" +
			"- Information about danger zones and safe areas\n" +
			"- Emergency contacts and resources\n" +
			"- Nearby police stations, hospitals, and embassies\n" +
			"- What to do in case of an emergency\n\n" +
			"How can I assist you today?"
	}
}
