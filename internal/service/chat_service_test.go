package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"moody-be/internal/config"
	"moody-be/internal/constant"
	"moody-be/internal/entity"
	"moody-be/internal/pkg/serverutils"
	"moody-be/internal/repository/unitofwork"
	"moody-be/pkg/chatbot"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testChatConfig() config.ChatConfig {
	return config.ChatConfig{
		ContextWindow: 20,
		HistoryLimit:  50,
		Model:         "test-model",
		Timeout:       5 * time.Second,
	}
}

func newChatServiceForTest(t *testing.T, provider chatbot.Provider) (IChatService, unitofwork.RepositoryFactory) {
	t.Helper()
	factory, _ := newTestFactory(t)
	return NewChatService(factory, provider, testChatConfig(), nopLogger{}), factory
}

func seedChatMessage(t *testing.T, factory unitofwork.RepositoryFactory, userId uuid.UUID, content string, role entity.ChatRole, at time.Time) {
	t.Helper()
	msg := &entity.ChatMessage{
		Id:        uuid.New(),
		UserId:    userId,
		Content:   content,
		Role:      role,
		CreatedAt: at,
	}
	uow := factory.NewUnitOfWork(context.Background())
	require.NoError(t, uow.ChatMessageRepository().Create(context.Background(), msg))
}

func countChatMessages(t *testing.T, factory unitofwork.RepositoryFactory, userId uuid.UUID) int64 {
	t.Helper()
	uow := factory.NewUnitOfWork(context.Background())
	msgs, err := uow.ChatMessageRepository().FindRecent(context.Background(), userId, 1000)
	require.NoError(t, err)
	return int64(len(msgs))
}

func TestSendMessagePersistsBothTurns(t *testing.T) {
	provider := &fakeProvider{reply: "That sounds hard. What's been weighing on you today?"}
	svc, factory := newChatServiceForTest(t, provider)
	user := seedTestUser(t, factory, "sub-anxious")

	res, err := svc.SendMessage(context.Background(), user.SupabaseId, "I feel anxious today")
	require.NoError(t, err)

	assert.Equal(t, "I feel anxious today", res.UserMessage.Content)
	assert.Equal(t, "user", res.UserMessage.Role)
	assert.Equal(t, provider.reply, res.AiReply.Content)
	assert.Equal(t, "ai", res.AiReply.Role)

	history, err := svc.GetHistory(context.Background(), user.SupabaseId)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "user", history[0].Role)
	assert.Equal(t, "ai", history[1].Role)
	assert.Equal(t, res.UserMessage.Id, history[0].Id)
	assert.Equal(t, res.AiReply.Id, history[1].Id)
}

func TestSendMessageWindowExcludesJustWrittenTurn(t *testing.T) {
	provider := &fakeProvider{reply: "ok"}
	svc, factory := newChatServiceForTest(t, provider)
	user := seedTestUser(t, factory, "sub-window")

	// 25 prior turns; only the newest 20 may reach the model.
	base := time.Now().Add(-time.Hour)
	for i := 0; i < 25; i++ {
		role := entity.ChatRoleUser
		if i%2 == 1 {
			role = entity.ChatRoleAi
		}
		seedChatMessage(t, factory, user.Id, fmt.Sprintf("turn-%02d", i), role, base.Add(time.Duration(i)*time.Minute))
	}

	_, err := svc.SendMessage(context.Background(), user.SupabaseId, "new message")
	require.NoError(t, err)

	require.Len(t, provider.calls, 1)
	turns := provider.calls[0]
	// 20 history turns plus the new message.
	require.Len(t, turns, 21)
	assert.Equal(t, "turn-05", turns[0].Text)
	assert.Equal(t, "turn-24", turns[19].Text)
	assert.Equal(t, "new message", turns[20].Text)
	assert.Equal(t, chatbot.RoleUser, turns[20].Role)
}

func TestSendMessageUserTurnSurvivesModelFailure(t *testing.T) {
	provider := &fakeProvider{err: errors.New("upstream 500")}
	svc, factory := newChatServiceForTest(t, provider)
	user := seedTestUser(t, factory, "sub-fail")

	_, err := svc.SendMessage(context.Background(), user.SupabaseId, "hello?")
	require.Error(t, err)

	appErr, ok := serverutils.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, serverutils.ErrCodeServiceUnavailable, appErr.Code)

	// The user turn must be durable even though the reply never came.
	assert.EqualValues(t, 1, countChatMessages(t, factory, user.Id))

	history, err := svc.GetHistory(context.Background(), user.SupabaseId)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "user", history[0].Role)
	assert.Equal(t, "hello?", history[0].Content)
}

func TestSendMessageEmptyReplyGetsFallback(t *testing.T) {
	provider := &fakeProvider{reply: "   "}
	svc, factory := newChatServiceForTest(t, provider)
	user := seedTestUser(t, factory, "sub-empty")

	res, err := svc.SendMessage(context.Background(), user.SupabaseId, "say nothing")
	require.NoError(t, err)
	assert.Equal(t, constant.ChatFallbackReply, res.AiReply.Content)
	assert.EqualValues(t, 2, countChatMessages(t, factory, user.Id))
}

func TestSendMessageLengthBoundary(t *testing.T) {
	provider := &fakeProvider{reply: "ok"}
	svc, factory := newChatServiceForTest(t, provider)
	user := seedTestUser(t, factory, "sub-length")

	// Exactly 2000 characters is accepted.
	_, err := svc.SendMessage(context.Background(), user.SupabaseId, strings.Repeat("a", 2000))
	require.NoError(t, err)
	assert.EqualValues(t, 2, countChatMessages(t, factory, user.Id))

	// 2001 characters is rejected with nothing written.
	_, err = svc.SendMessage(context.Background(), user.SupabaseId, strings.Repeat("a", 2001))
	require.Error(t, err)
	appErr, ok := serverutils.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, serverutils.ErrCodeInvalidArgument, appErr.Code)
	assert.EqualValues(t, 2, countChatMessages(t, factory, user.Id))
}

func TestSendMessageLengthCountsCharactersNotBytes(t *testing.T) {
	provider := &fakeProvider{reply: "ok"}
	svc, factory := newChatServiceForTest(t, provider)
	user := seedTestUser(t, factory, "sub-multibyte")

	// 1500 two-byte characters (3000 bytes) is well under the limit.
	_, err := svc.SendMessage(context.Background(), user.SupabaseId, strings.Repeat("é", 1500))
	require.NoError(t, err)
	assert.EqualValues(t, 2, countChatMessages(t, factory, user.Id))

	// 2001 multibyte characters is still over it.
	_, err = svc.SendMessage(context.Background(), user.SupabaseId, strings.Repeat("é", 2001))
	require.Error(t, err)
	appErr, ok := serverutils.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, serverutils.ErrCodeInvalidArgument, appErr.Code)
	assert.EqualValues(t, 2, countChatMessages(t, factory, user.Id))
}

func TestSendMessageReplyIsStampedAfterUserTurn(t *testing.T) {
	provider := &fakeProvider{reply: "ok"}
	svc, factory := newChatServiceForTest(t, provider)
	user := seedTestUser(t, factory, "sub-stamp")

	res, err := svc.SendMessage(context.Background(), user.SupabaseId, "quick one")
	require.NoError(t, err)
	assert.True(t, res.AiReply.CreatedAt.After(res.UserMessage.CreatedAt))
}

func TestSendMessageRejectsBlankMessage(t *testing.T) {
	provider := &fakeProvider{reply: "ok"}
	svc, factory := newChatServiceForTest(t, provider)
	user := seedTestUser(t, factory, "sub-blank")

	_, err := svc.SendMessage(context.Background(), user.SupabaseId, "   \n\t ")
	require.Error(t, err)
	appErr, ok := serverutils.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, serverutils.ErrCodeInvalidArgument, appErr.Code)
	assert.EqualValues(t, 0, countChatMessages(t, factory, user.Id))
	assert.Empty(t, provider.calls)
}

func TestSendMessageUnknownSubjectWritesNothing(t *testing.T) {
	provider := &fakeProvider{reply: "ok"}
	svc, factory := newChatServiceForTest(t, provider)

	_, err := svc.SendMessage(context.Background(), "no-such-subject", "hello")
	require.Error(t, err)
	appErr, ok := serverutils.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, serverutils.ErrCodeNotFound, appErr.Code)
	assert.Empty(t, provider.calls)

	// No rows at all for any user.
	uow := factory.NewUnitOfWork(context.Background())
	count, err := uow.ChatMessageRepository().Count(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 0, count)
}

func TestGetHistoryOrderAndLimit(t *testing.T) {
	provider := &fakeProvider{reply: "ok"}
	svc, factory := newChatServiceForTest(t, provider)
	user := seedTestUser(t, factory, "sub-history")

	base := time.Now().Add(-2 * time.Hour)
	for i := 0; i < 60; i++ {
		seedChatMessage(t, factory, user.Id, fmt.Sprintf("msg-%02d", i), entity.ChatRoleUser, base.Add(time.Duration(i)*time.Minute))
	}

	history, err := svc.GetHistory(context.Background(), user.SupabaseId)
	require.NoError(t, err)
	require.Len(t, history, 50)

	// Newest 50, oldest first.
	assert.Equal(t, "msg-10", history[0].Content)
	assert.Equal(t, "msg-59", history[49].Content)
	for i := 1; i < len(history); i++ {
		assert.False(t, history[i].CreatedAt.Before(history[i-1].CreatedAt))
	}
}

func TestGetHistoryIsIdempotent(t *testing.T) {
	provider := &fakeProvider{reply: "ok"}
	svc, factory := newChatServiceForTest(t, provider)
	user := seedTestUser(t, factory, "sub-idempotent")

	_, err := svc.SendMessage(context.Background(), user.SupabaseId, "first")
	require.NoError(t, err)

	first, err := svc.GetHistory(context.Background(), user.SupabaseId)
	require.NoError(t, err)
	second, err := svc.GetHistory(context.Background(), user.SupabaseId)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestSendMessageDanglingUserTurnStaysInContext(t *testing.T) {
	provider := &fakeProvider{err: errors.New("boom")}
	svc, factory := newChatServiceForTest(t, provider)
	user := seedTestUser(t, factory, "sub-dangling")

	_, err := svc.SendMessage(context.Background(), user.SupabaseId, "are you there?")
	require.Error(t, err)

	// Recover and retry: the dangling turn is ordinary history now.
	provider.err = nil
	provider.reply = "I'm here."
	res, err := svc.SendMessage(context.Background(), user.SupabaseId, "hello again")
	require.NoError(t, err)
	assert.Equal(t, "I'm here.", res.AiReply.Content)

	turns := provider.calls[len(provider.calls)-1]
	require.Len(t, turns, 2)
	assert.Equal(t, "are you there?", turns[0].Text)
	assert.Equal(t, "hello again", turns[1].Text)
}
