package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"unilagyard/internal/domain/entity"
	ws "unilagyard/internal/infrastructure/websocket"
	"unilagyard/pkg/errors"
)

func newChatTestCase(chatRepo *fakeChatRepo, userRepo *fakeUserRepo, productRepo *fakeProductRepo) *ChatUseCase {
	return NewChatUseCase(chatRepo, userRepo, productRepo, &fakeNotificationRepo{}, ws.NewManager(nil))
}

func directChat(id string, participants ...string) *entity.Chat {
	return &entity.Chat{
		ID:           id,
		Participants: participants,
		UnreadCount:  make(map[string]int),
	}
}

func TestSendMessageWhitespaceOnlyIsNoOp(t *testing.T) {
	chatRepo := newFakeChatRepo(directChat("chat-1", "buyer", "seller"))
	uc := newChatTestCase(chatRepo, newFakeUserRepo(), newFakeProductRepo())

	for _, text := range []string{"", "   ", "\n\t  "} {
		message, err := uc.SendMessage(context.Background(), "buyer", SendMessageInput{
			ChatID: "chat-1",
			Text:   text,
		})

		require.NoError(t, err)
		assert.Nil(t, message)
	}

	// No document was ever written.
	assert.Zero(t, chatRepo.createMessageCalls)
	assert.Zero(t, chatRepo.updateCalls)
}

func TestSendMessageTrimsAndUpdatesSummary(t *testing.T) {
	chatRepo := newFakeChatRepo(directChat("chat-1", "buyer", "seller"))
	uc := newChatTestCase(chatRepo, newFakeUserRepo(), newFakeProductRepo())

	message, err := uc.SendMessage(context.Background(), "buyer", SendMessageInput{
		ChatID: "chat-1",
		Text:   "  is this still available?  ",
	})

	require.NoError(t, err)
	require.NotNil(t, message)
	assert.Equal(t, "is this still available?", message.Text)
	assert.Equal(t, "buyer", message.SenderID)
	assert.False(t, message.Read)

	chat := chatRepo.chats["chat-1"]
	assert.Equal(t, "is this still available?", chat.LastMessage)
	assert.Equal(t, 1, chat.UnreadCount["seller"])
	assert.Zero(t, chat.UnreadCount["buyer"])
}

func TestSendMessageRejectsNonParticipant(t *testing.T) {
	chatRepo := newFakeChatRepo(directChat("chat-1", "buyer", "seller"))
	uc := newChatTestCase(chatRepo, newFakeUserRepo(), newFakeProductRepo())

	_, err := uc.SendMessage(context.Background(), "stranger", SendMessageInput{
		ChatID: "chat-1",
		Text:   "hello",
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, "FORBIDDEN"))
	assert.Zero(t, chatRepo.createMessageCalls)
}

func TestCreateChatRejectsSelfChat(t *testing.T) {
	uc := newChatTestCase(newFakeChatRepo(), newFakeUserRepo(), newFakeProductRepo())

	_, err := uc.CreateChat(context.Background(), "buyer", CreateChatInput{RecipientID: "buyer"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestCreateChatReusesExistingConversation(t *testing.T) {
	seller := &entity.User{ID: "seller", DisplayName: "Ada"}
	chatRepo := newFakeChatRepo(directChat("chat-1", "buyer", "seller"))
	uc := newChatTestCase(chatRepo, newFakeUserRepo(seller), newFakeProductRepo())

	chat, err := uc.CreateChat(context.Background(), "buyer", CreateChatInput{RecipientID: "seller"})

	require.NoError(t, err)
	assert.Equal(t, "chat-1", chat.ID)
	assert.Len(t, chatRepo.chats, 1)
}

func TestCreateChatTrimsInitialMessageSummary(t *testing.T) {
	seller := &entity.User{ID: "seller", DisplayName: "Ada"}
	chatRepo := newFakeChatRepo()
	uc := newChatTestCase(chatRepo, newFakeUserRepo(seller), newFakeProductRepo())

	chat, err := uc.CreateChat(context.Background(), "buyer", CreateChatInput{
		RecipientID:    "seller",
		InitialMessage: "  is this still available?  ",
	})

	require.NoError(t, err)
	assert.Equal(t, "is this still available?", chat.LastMessage)
	assert.Equal(t, "is this still available?", chatRepo.chats[chat.ID].LastMessage)
}

func TestMarkChatReadMarksEachUnreadMessage(t *testing.T) {
	chatRepo := newFakeChatRepo(directChat("chat-1", "buyer", "seller"))
	uc := newChatTestCase(chatRepo, newFakeUserRepo(), newFakeProductRepo())

	for _, text := range []string{"hello", "still there?", "offer stands"} {
		_, err := uc.SendMessage(context.Background(), "seller", SendMessageInput{ChatID: "chat-1", Text: text})
		require.NoError(t, err)
	}
	require.Equal(t, 3, chatRepo.chats["chat-1"].UnreadCount["buyer"])

	require.NoError(t, uc.MarkChatRead(context.Background(), "buyer", "chat-1"))

	unread, err := chatRepo.ListUnreadMessages(context.Background(), "chat-1", "buyer")
	require.NoError(t, err)
	assert.Empty(t, unread)
	assert.Zero(t, chatRepo.chats["chat-1"].UnreadCount["buyer"])
}

func TestGetMessagesRejectsNonParticipant(t *testing.T) {
	chatRepo := newFakeChatRepo(directChat("chat-1", "buyer", "seller"))
	uc := newChatTestCase(chatRepo, newFakeUserRepo(), newFakeProductRepo())

	_, _, err := uc.GetMessages(context.Background(), "stranger", "chat-1", 20, 0)

	require.Error(t, err)
	assert.True(t, errors.Is(err, "FORBIDDEN"))
}
