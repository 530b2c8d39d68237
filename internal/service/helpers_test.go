package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"moody-be/internal/entity"
	"moody-be/internal/model"
	"moody-be/internal/repository/unitofwork"
	"moody-be/pkg/chatbot"
	"moody-be/pkg/events"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to access sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&model.User{},
		&model.MoodEntry{},
		&model.JournalEntry{},
		&model.AudioTrack{},
		&model.DailyQuote{},
		&model.ChatMessage{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}

	return db
}

func newTestFactory(t *testing.T) (unitofwork.RepositoryFactory, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	return unitofwork.NewRepositoryFactory(db), db
}

func seedTestUser(t *testing.T, factory unitofwork.RepositoryFactory, supabaseId string) *entity.User {
	t.Helper()

	now := time.Now()
	user := &entity.User{
		Id:         uuid.New(),
		SupabaseId: supabaseId,
		Email:      supabaseId + "@example.com",
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	uow := factory.NewUnitOfWork(context.Background())
	if err := uow.UserRepository().Create(context.Background(), user); err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	return user
}

// nopLogger keeps service logs out of test output.
type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

// fakeProvider records every Generate call and returns a canned result.
type fakeProvider struct {
	reply string
	err   error
	calls [][]chatbot.Turn
}

func (f *fakeProvider) Generate(ctx context.Context, turns []chatbot.Turn) (string, error) {
	copied := make([]chatbot.Turn, len(turns))
	copy(copied, turns)
	f.calls = append(f.calls, copied)
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

// stubPublisher records published events.
type stubPublisher struct {
	events []events.Event
}

func (s *stubPublisher) Publish(ctx context.Context, event events.Event) error {
	s.events = append(s.events, event)
	return nil
}
