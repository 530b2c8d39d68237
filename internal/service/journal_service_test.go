package service

import (
	"context"
	"testing"

	"moody-be/internal/dto"
	"moody-be/internal/pkg/serverutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJournalCrud(t *testing.T) {
	factory, _ := newTestFactory(t)
	svc := NewJournalService(factory)
	user := seedTestUser(t, factory, "sub-journal")
	ctx := context.Background()

	created, err := svc.Create(ctx, user.SupabaseId, &dto.CreateJournalRequest{
		Title:   "First entry",
		Content: "Today I started journaling.",
	})
	require.NoError(t, err)
	assert.Equal(t, "First entry", created.Title)

	shown, err := svc.Show(ctx, user.SupabaseId, created.Id)
	require.NoError(t, err)
	assert.Equal(t, created.Id, shown.Id)

	newTitle := "First entry (edited)"
	updated, err := svc.Update(ctx, user.SupabaseId, created.Id, &dto.UpdateJournalRequest{Title: &newTitle})
	require.NoError(t, err)
	assert.Equal(t, newTitle, updated.Title)
	// Content untouched by partial update.
	assert.Equal(t, "Today I started journaling.", updated.Content)

	require.NoError(t, svc.Delete(ctx, user.SupabaseId, created.Id))

	_, err = svc.Show(ctx, user.SupabaseId, created.Id)
	require.Error(t, err)
	appErr, ok := serverutils.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, serverutils.ErrCodeNotFound, appErr.Code)
}

func TestJournalGetAllNewestFirst(t *testing.T) {
	factory, _ := newTestFactory(t)
	svc := NewJournalService(factory)
	user := seedTestUser(t, factory, "sub-journal-list")
	ctx := context.Background()

	first, err := svc.Create(ctx, user.SupabaseId, &dto.CreateJournalRequest{Title: "older", Content: "a"})
	require.NoError(t, err)
	second, err := svc.Create(ctx, user.SupabaseId, &dto.CreateJournalRequest{Title: "newer", Content: "b"})
	require.NoError(t, err)

	entries, err := svc.GetAll(ctx, user.SupabaseId)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, second.Id, entries[0].Id)
	assert.Equal(t, first.Id, entries[1].Id)
}

func TestJournalOwnershipIsEnforced(t *testing.T) {
	factory, _ := newTestFactory(t)
	svc := NewJournalService(factory)
	owner := seedTestUser(t, factory, "sub-owner")
	intruder := seedTestUser(t, factory, "sub-intruder")
	ctx := context.Background()

	created, err := svc.Create(ctx, owner.SupabaseId, &dto.CreateJournalRequest{Title: "private", Content: "secret"})
	require.NoError(t, err)

	// Another user's entry looks exactly like a missing one.
	_, err = svc.Show(ctx, intruder.SupabaseId, created.Id)
	require.Error(t, err)
	appErr, ok := serverutils.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, serverutils.ErrCodeNotFound, appErr.Code)

	title := "hijacked"
	_, err = svc.Update(ctx, intruder.SupabaseId, created.Id, &dto.UpdateJournalRequest{Title: &title})
	require.Error(t, err)

	err = svc.Delete(ctx, intruder.SupabaseId, created.Id)
	require.Error(t, err)

	// Owner still sees the untouched entry.
	shown, err := svc.Show(ctx, owner.SupabaseId, created.Id)
	require.NoError(t, err)
	assert.Equal(t, "private", shown.Title)
}

func TestJournalShowUnknownId(t *testing.T) {
	factory, _ := newTestFactory(t)
	svc := NewJournalService(factory)
	user := seedTestUser(t, factory, "sub-journal-missing")

	_, err := svc.Show(context.Background(), user.SupabaseId, uuid.New())
	require.Error(t, err)
	appErr, ok := serverutils.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, serverutils.ErrCodeNotFound, appErr.Code)
}
