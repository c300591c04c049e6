package usecase

import (
	"context"
	"strings"
	"time"

	"unilagyard/internal/domain/entity"
	"unilagyard/internal/domain/repository"
	ws "unilagyard/internal/infrastructure/websocket"
	"unilagyard/pkg/errors"
	"unilagyard/pkg/logger"
)

type ChatUseCase struct {
	chatRepo         repository.ChatRepository
	userRepo         repository.UserRepository
	productRepo      repository.ProductRepository
	notificationRepo repository.NotificationRepository
	wsManager        *ws.Manager
}

func NewChatUseCase(
	chatRepo repository.ChatRepository,
	userRepo repository.UserRepository,
	productRepo repository.ProductRepository,
	notificationRepo repository.NotificationRepository,
	wsManager *ws.Manager,
) *ChatUseCase {
	return &ChatUseCase{
		chatRepo:         chatRepo,
		userRepo:         userRepo,
		productRepo:      productRepo,
		notificationRepo: notificationRepo,
		wsManager:        wsManager,
	}
}

type CreateChatInput struct {
	RecipientID    string
	ProductID      string
	InitialMessage string
}

type SendMessageInput struct {
	ChatID string
	Text   string
}

type ChatResponse struct {
	*entity.Chat
	Product   *entity.Product `json:"product,omitempty"`
	OtherUser *entity.User    `json:"other_user,omitempty"`
}

type MessageResponse struct {
	*entity.Message
	Sender *entity.User `json:"sender,omitempty"`
}

func (uc *ChatUseCase) CreateChat(ctx context.Context, userID string, input CreateChatInput) (*ChatResponse, error) {
	if userID == input.RecipientID {
		return nil, errors.BadRequest("You cannot start a conversation with yourself", nil)
	}

	recipient, err := uc.userRepo.GetByID(ctx, input.RecipientID)
	if err != nil {
		return nil, errors.NotFound("Recipient", err)
	}

	var product *entity.Product
	if input.ProductID != "" {
		product, err = uc.productRepo.GetByID(ctx, input.ProductID)
		if err != nil {
			return nil, errors.NotFound("Product", err)
		}
	}

	// Best-effort existence check before creating; concurrent creates can
	// still race and produce a duplicate conversation.
	var chat *entity.Chat
	existing, err := uc.chatRepo.FindByParticipants(ctx, userID, input.RecipientID, input.ProductID)
	if err == nil && existing != nil {
		chat = existing
	} else {
		if err != nil && !errors.Is(err, "NOT_FOUND") {
			return nil, err
		}

		chat = &entity.Chat{
			Participants: []string{userID, input.RecipientID},
			ProductID:    input.ProductID,
			UnreadCount:  make(map[string]int),
			LastUpdated:  time.Now(),
		}

		if err := uc.chatRepo.Create(ctx, chat); err != nil {
			return nil, err
		}
	}

	if strings.TrimSpace(input.InitialMessage) != "" {
		message, err := uc.SendMessage(ctx, userID, SendMessageInput{
			ChatID: chat.ID,
			Text:   input.InitialMessage,
		})
		if err != nil {
			return nil, err
		}
		chat.LastMessage = message.Text
	}

	return &ChatResponse{
		Chat:      chat,
		Product:   product,
		OtherUser: recipient,
	}, nil
}

// ListChats returns the user's conversations ordered by last update
// descending, each enriched with the other participant and the product the
// conversation is about.
func (uc *ChatUseCase) ListChats(ctx context.Context, userID string, limit, offset int) ([]*ChatResponse, int64, error) {
	chats, total, err := uc.chatRepo.ListByUserID(ctx, userID, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]*ChatResponse, 0, len(chats))
	for _, chat := range chats {
		resp := &ChatResponse{Chat: chat}

		for _, participant := range chat.Participants {
			if participant != userID {
				if other, err := uc.userRepo.GetByID(ctx, participant); err == nil {
					resp.OtherUser = other
				}
				break
			}
		}

		if chat.ProductID != "" {
			if product, err := uc.productRepo.GetByID(ctx, chat.ProductID); err == nil {
				resp.Product = product
			}
		}

		responses = append(responses, resp)
	}

	return responses, total, nil
}

func (uc *ChatUseCase) GetChatByID(ctx context.Context, userID, chatID string) (*entity.Chat, error) {
	chat, err := uc.chatRepo.GetByID(ctx, chatID)
	if err != nil {
		return nil, err
	}

	if !isParticipant(chat, userID) {
		return nil, errors.Forbidden("You are not part of this conversation", nil)
	}

	return chat, nil
}

func (uc *ChatUseCase) GetMessages(ctx context.Context, userID, chatID string, limit, offset int) ([]*entity.Message, int64, error) {
	chat, err := uc.chatRepo.GetByID(ctx, chatID)
	if err != nil {
		return nil, 0, err
	}

	if !isParticipant(chat, userID) {
		return nil, 0, errors.Forbidden("You are not part of this conversation", nil)
	}

	return uc.chatRepo.GetMessagesByChat(ctx, chatID, limit, offset)
}

// SendMessage writes the message document, then updates the parent
// conversation's summary. The two writes are not transactional: a failure
// between them leaves the summary stale but never corrupts the message
// history. Empty or whitespace-only text is a no-op.
func (uc *ChatUseCase) SendMessage(ctx context.Context, userID string, input SendMessageInput) (*MessageResponse, error) {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return nil, nil
	}

	chat, err := uc.chatRepo.GetByID(ctx, input.ChatID)
	if err != nil {
		return nil, err
	}

	if !isParticipant(chat, userID) {
		return nil, errors.Forbidden("You are not part of this conversation", nil)
	}

	message := &entity.Message{
		ChatID:   input.ChatID,
		SenderID: userID,
		Text:     text,
		Read:     false,
	}

	if err := uc.chatRepo.CreateMessage(ctx, message); err != nil {
		return nil, err
	}

	chat.LastMessage = text
	chat.LastUpdated = message.CreatedAt
	if chat.UnreadCount == nil {
		chat.UnreadCount = make(map[string]int)
	}
	for _, participant := range chat.Participants {
		if participant != userID {
			chat.UnreadCount[participant]++
		}
	}

	if err := uc.chatRepo.Update(ctx, chat); err != nil {
		// Summary is stale until the next successful send.
		logger.Warn("Message %s written but chat %s summary update failed: %v", message.ID, chat.ID, err)
	}

	uc.notifyParticipants(ctx, chat, userID, message)

	return &MessageResponse{Message: message}, nil
}

func (uc *ChatUseCase) notifyParticipants(ctx context.Context, chat *entity.Chat, senderID string, message *entity.Message) {
	uc.wsManager.NotifyUsers(ctx, chat.Participants, ws.Event{
		Type:    "message",
		ChatID:  chat.ID,
		Payload: message,
	})

	for _, participant := range chat.Participants {
		if participant == senderID {
			continue
		}
		notification := &entity.Notification{
			UserID: participant,
			Type:   "message",
			Title:  "New message",
			Body:   message.Text,
		}
		if err := uc.notificationRepo.Create(ctx, notification); err != nil {
			logger.Warn("Failed to create message notification for %s: %v", participant, err)
		}
	}
}

// MarkChatRead marks each unread message individually; a failure part-way
// leaves some messages read and others not, and nothing is retried.
func (uc *ChatUseCase) MarkChatRead(ctx context.Context, userID, chatID string) error {
	chat, err := uc.chatRepo.GetByID(ctx, chatID)
	if err != nil {
		return err
	}

	if !isParticipant(chat, userID) {
		return errors.Forbidden("You are not part of this conversation", nil)
	}

	unread, err := uc.chatRepo.ListUnreadMessages(ctx, chatID, userID)
	if err != nil {
		return err
	}

	for _, message := range unread {
		if err := uc.chatRepo.MarkMessageRead(ctx, chatID, message.ID); err != nil {
			logger.Warn("Failed to mark message %s read in chat %s: %v", message.ID, chatID, err)
		}
	}

	if chat.UnreadCount != nil && chat.UnreadCount[userID] != 0 {
		chat.UnreadCount[userID] = 0
		if err := uc.chatRepo.Update(ctx, chat); err != nil {
			logger.Warn("Failed to reset unread count for %s in chat %s: %v", userID, chatID, err)
		}
	}

	uc.wsManager.NotifyUsers(ctx, chat.Participants, ws.Event{
		Type:   "read",
		ChatID: chatID,
	})

	return nil
}

func isParticipant(chat *entity.Chat, userID string) bool {
	for _, p := range chat.Participants {
		if p == userID {
			return true
		}
	}
	return false
}
