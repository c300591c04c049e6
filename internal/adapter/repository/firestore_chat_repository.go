package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"unilagyard/internal/domain/entity"
	"unilagyard/internal/domain/repository"
	"unilagyard/pkg/errors"
	"unilagyard/pkg/logger"
)

type firestoreChatRepository struct {
	client *firestore.Client
}

func NewFirestoreChatRepository(client *firestore.Client) repository.ChatRepository {
	return &firestoreChatRepository{
		client: client,
	}
}

func (r *firestoreChatRepository) Create(ctx context.Context, chat *entity.Chat) error {
	if chat.ID == "" {
		chat.ID = uuid.New().String()
	}

	now := time.Now()
	chat.CreatedAt = now
	chat.UpdatedAt = now
	if chat.LastUpdated.IsZero() {
		chat.LastUpdated = now
	}

	_, err := r.client.Collection("chats").Doc(chat.ID).Set(ctx, chat)
	if err != nil {
		return errors.Internal("Failed to create chat", err)
	}

	return nil
}

func (r *firestoreChatRepository) GetByID(ctx context.Context, id string) (*entity.Chat, error) {
	doc, err := r.client.Collection("chats").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Chat", err)
		}
		return nil, errors.Internal("Failed to get chat", err)
	}

	var chat entity.Chat
	if err := doc.DataTo(&chat); err != nil {
		return nil, errors.Internal("Failed to parse chat data", err)
	}

	return &chat, nil
}

func (r *firestoreChatRepository) Update(ctx context.Context, chat *entity.Chat) error {
	chat.UpdatedAt = time.Now()

	_, err := r.client.Collection("chats").Doc(chat.ID).Set(ctx, chat)
	if err != nil {
		return errors.Internal("Failed to update chat", err)
	}

	return nil
}

func (r *firestoreChatRepository) ListByUserID(ctx context.Context, userID string, limit, offset int) ([]*entity.Chat, int64, error) {
	query := r.client.Collection("chats").
		Where("participants", "array-contains", userID).
		OrderBy("lastUpdated", firestore.Desc)

	allDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		logger.Error("Failed to fetch chats for user %s: %v", userID, err)
		return nil, 0, errors.Internal("Failed to fetch chats", err)
	}

	total := int64(len(allDocs))

	// Pagination in memory; the working set per user is small.
	start := offset
	end := len(allDocs)
	if limit > 0 && start+limit < end {
		end = start + limit
	}
	if start >= len(allDocs) {
		return []*entity.Chat{}, total, nil
	}

	var chats []*entity.Chat
	for _, doc := range allDocs[start:end] {
		var chat entity.Chat
		if err := doc.DataTo(&chat); err != nil {
			return nil, 0, errors.Internal("Failed to parse chat data", err)
		}
		chats = append(chats, &chat)
	}

	return chats, total, nil
}

// ListAll returns every conversation, newest activity first. Admin oversight
// only; never exposed to regular users.
func (r *firestoreChatRepository) ListAll(ctx context.Context, limit, offset int) ([]*entity.Chat, int64, error) {
	query := r.client.Collection("chats").OrderBy("lastUpdated", firestore.Desc)

	allDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		logger.Error("Failed to fetch chats: %v", err)
		return nil, 0, errors.Internal("Failed to fetch chats", err)
	}

	total := int64(len(allDocs))

	start := offset
	end := len(allDocs)
	if limit > 0 && start+limit < end {
		end = start + limit
	}
	if start >= len(allDocs) {
		return []*entity.Chat{}, total, nil
	}

	var chats []*entity.Chat
	for _, doc := range allDocs[start:end] {
		var chat entity.Chat
		if err := doc.DataTo(&chat); err != nil {
			return nil, 0, errors.Internal("Failed to parse chat data", err)
		}
		chats = append(chats, &chat)
	}

	return chats, total, nil
}

// FindByParticipants looks for an existing direct chat between two users,
// optionally scoped to a product. Best-effort: a race between two concurrent
// creates can still produce duplicates.
func (r *firestoreChatRepository) FindByParticipants(ctx context.Context, userID, otherUserID, productID string) (*entity.Chat, error) {
	query := r.client.Collection("chats").Where("participants", "array-contains", userID)
	if productID != "" {
		query = query.Where("productId", "==", productID)
	}

	iter := query.Documents(ctx)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to query chats", err)
		}

		var chat entity.Chat
		if err := doc.DataTo(&chat); err != nil {
			continue
		}

		for _, p := range chat.Participants {
			if p == otherUserID {
				return &chat, nil
			}
		}
	}

	return nil, errors.NotFound("Chat", nil)
}

func (r *firestoreChatRepository) Count(ctx context.Context) (int64, error) {
	docs, err := r.client.Collection("chats").Documents(ctx).GetAll()
	if err != nil {
		return 0, errors.Internal("Failed to count chats", err)
	}
	return int64(len(docs)), nil
}

func (r *firestoreChatRepository) CreateMessage(ctx context.Context, message *entity.Message) error {
	if message.ID == "" {
		message.ID = uuid.New().String()
	}

	message.CreatedAt = time.Now()

	_, err := r.client.Collection("chats").Doc(message.ChatID).Collection("messages").Doc(message.ID).Set(ctx, message)
	if err != nil {
		return errors.Internal("Failed to create message", err)
	}

	return nil
}

func (r *firestoreChatRepository) GetMessagesByChat(ctx context.Context, chatID string, limit, offset int) ([]*entity.Message, int64, error) {
	query := r.client.Collection("chats").Doc(chatID).Collection("messages").
		OrderBy("createdAt", firestore.Asc)

	countDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		logger.Error("Failed to count messages for chat %s: %v", chatID, err)
		return nil, 0, errors.Internal("Failed to count messages", err)
	}
	total := int64(len(countDocs))

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	iter := query.Documents(ctx)
	var messages []*entity.Message

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, errors.Internal("Failed to iterate messages", err)
		}

		var message entity.Message
		if err := doc.DataTo(&message); err != nil {
			return nil, 0, errors.Internal("Failed to parse message data", err)
		}
		messages = append(messages, &message)
	}

	return messages, total, nil
}

func (r *firestoreChatRepository) ListUnreadMessages(ctx context.Context, chatID, userID string) ([]*entity.Message, error) {
	query := r.client.Collection("chats").Doc(chatID).Collection("messages").
		Where("read", "==", false)

	iter := query.Documents(ctx)
	var messages []*entity.Message

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate unread messages", err)
		}

		var message entity.Message
		if err := doc.DataTo(&message); err != nil {
			continue
		}

		// Only messages from the other participant count as unread for this user.
		if message.SenderID != userID {
			messages = append(messages, &message)
		}
	}

	return messages, nil
}

func (r *firestoreChatRepository) MarkMessageRead(ctx context.Context, chatID, messageID string) error {
	docRef := r.client.Collection("chats").Doc(chatID).Collection("messages").Doc(messageID)
	_, err := docRef.Update(ctx, []firestore.Update{
		{Path: "read", Value: true},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			logger.Warn("MarkMessageRead: message %s not found in chat %s", messageID, chatID)
			return nil
		}
		return errors.Internal("Failed to update message read status", err)
	}

	return nil
}
