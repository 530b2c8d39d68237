package unitofwork

import (
	"context"

	"moody-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	ChatMessageRepository() contract.ChatMessageRepository
	MoodRepository() contract.MoodRepository
	JournalRepository() contract.JournalRepository
	AudioRepository() contract.AudioRepository
	QuoteRepository() contract.QuoteRepository
}
