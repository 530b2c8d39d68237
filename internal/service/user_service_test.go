package service

import (
	"context"
	"testing"
	"time"

	"moody-be/internal/dto"
	"moody-be/internal/entity"
	"moody-be/internal/pkg/serverutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetProfileCreatesUserOnFirstCall(t *testing.T) {
	factory, _ := newTestFactory(t)
	svc := NewUserService(factory)
	ctx := context.Background()

	profile, err := svc.GetProfile(ctx, "sub-new", "new@example.com")
	require.NoError(t, err)
	assert.Equal(t, "sub-new", profile.SupabaseId)
	assert.Equal(t, "new@example.com", profile.Email)

	// Second call returns the same row, no duplicate.
	again, err := svc.GetProfile(ctx, "sub-new", "new@example.com")
	require.NoError(t, err)
	assert.Equal(t, profile.Id, again.Id)

	uow := factory.NewUnitOfWork(ctx)
	count, err := uow.UserRepository().Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestUpdateProfileSetsName(t *testing.T) {
	factory, _ := newTestFactory(t)
	svc := NewUserService(factory)
	user := seedTestUser(t, factory, "sub-rename")

	res, err := svc.UpdateProfile(context.Background(), user.SupabaseId, &dto.UpdateProfileRequest{Name: "Alex"})
	require.NoError(t, err)
	require.NotNil(t, res.Name)
	assert.Equal(t, "Alex", *res.Name)
}

func TestUpdateProfileUnknownSubject(t *testing.T) {
	factory, _ := newTestFactory(t)
	svc := NewUserService(factory)

	_, err := svc.UpdateProfile(context.Background(), "ghost", &dto.UpdateProfileRequest{Name: "Nobody"})
	require.Error(t, err)
	appErr, ok := serverutils.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, serverutils.ErrCodeNotFound, appErr.Code)
}

func TestDeleteAccountCascades(t *testing.T) {
	factory, _ := newTestFactory(t)
	svc := NewUserService(factory)
	user := seedTestUser(t, factory, "sub-delete")
	ctx := context.Background()

	uow := factory.NewUnitOfWork(ctx)
	now := time.Now()
	require.NoError(t, uow.ChatMessageRepository().Create(ctx, &entity.ChatMessage{
		Id: uuid.New(), UserId: user.Id, Content: "hi", Role: entity.ChatRoleUser, CreatedAt: now,
	}))
	require.NoError(t, uow.MoodRepository().Create(ctx, &entity.MoodEntry{
		Id: uuid.New(), UserId: user.Id, Mood: entity.MoodOkay, CreatedAt: now,
	}))
	require.NoError(t, uow.JournalRepository().Create(ctx, &entity.JournalEntry{
		Id: uuid.New(), UserId: user.Id, Title: "t", Content: "c", CreatedAt: now, UpdatedAt: now,
	}))

	require.NoError(t, svc.DeleteAccount(ctx, user.SupabaseId))

	uow = factory.NewUnitOfWork(ctx)
	chatCount, err := uow.ChatMessageRepository().Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 0, chatCount)

	moodCount, err := uow.MoodRepository().Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 0, moodCount)

	journals, err := uow.JournalRepository().FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, journals)

	userCount, err := uow.UserRepository().Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 0, userCount)
}
