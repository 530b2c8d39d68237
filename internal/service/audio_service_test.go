package service

import (
	"context"
	"testing"
	"time"

	"moody-be/internal/entity"
	"moody-be/internal/pkg/serverutils"
	"moody-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedAudioTrack(t *testing.T, factory unitofwork.RepositoryFactory, title string, category entity.AudioCategory) {
	t.Helper()
	track := &entity.AudioTrack{
		Id:        uuid.New(),
		Title:     title,
		Duration:  "3:00",
		Category:  category,
		AudioURL:  "https://example.com/" + title + ".mp3",
		CreatedAt: time.Now(),
	}
	uow := factory.NewUnitOfWork(context.Background())
	require.NoError(t, uow.AudioRepository().Create(context.Background(), track))
}

func TestAudioGetByCategory(t *testing.T) {
	factory, _ := newTestFactory(t)
	svc := NewAudioService(factory)
	ctx := context.Background()

	seedAudioTrack(t, factory, "Beta", entity.AudioCategoryRelaxing)
	seedAudioTrack(t, factory, "Alpha", entity.AudioCategoryRelaxing)
	seedAudioTrack(t, factory, "Pump", entity.AudioCategoryWorkout)

	tracks, err := svc.GetByCategory(ctx, "relaxing")
	require.NoError(t, err)
	require.Len(t, tracks, 2)
	assert.Equal(t, "Alpha", tracks[0].Title)
	assert.Equal(t, "Beta", tracks[1].Title)
}

func TestAudioGetByCategoryInvalid(t *testing.T) {
	factory, _ := newTestFactory(t)
	svc := NewAudioService(factory)

	_, err := svc.GetByCategory(context.Background(), "metal")
	require.Error(t, err)
	appErr, ok := serverutils.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, serverutils.ErrCodeInvalidArgument, appErr.Code)
}

func TestAudioGetAllIsCached(t *testing.T) {
	factory, db := newTestFactory(t)
	svc := NewAudioService(factory)
	ctx := context.Background()

	seedAudioTrack(t, factory, "Only", entity.AudioCategoryWorkout)

	first, err := svc.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, first, 1)

	// Bypass the service and add a row; the cached response must not see it.
	require.NoError(t, db.Exec("DELETE FROM audio_tracks").Error)

	second, err := svc.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, second, 1)
}
