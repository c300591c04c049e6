package repository

import (
	"context"

	"unilagyard/internal/domain/entity"
)

type ChatRepository interface {
	Create(ctx context.Context, chat *entity.Chat) error
	GetByID(ctx context.Context, id string) (*entity.Chat, error)
	Update(ctx context.Context, chat *entity.Chat) error
	ListByUserID(ctx context.Context, userID string, limit, offset int) ([]*entity.Chat, int64, error)
	ListAll(ctx context.Context, limit, offset int) ([]*entity.Chat, int64, error)
	FindByParticipants(ctx context.Context, userID, otherUserID, productID string) (*entity.Chat, error)
	Count(ctx context.Context) (int64, error)

	// Message methods
	CreateMessage(ctx context.Context, message *entity.Message) error
	GetMessagesByChat(ctx context.Context, chatID string, limit, offset int) ([]*entity.Message, int64, error)
	ListUnreadMessages(ctx context.Context, chatID, userID string) ([]*entity.Message, error)
	MarkMessageRead(ctx context.Context, chatID, messageID string) error
}
