package contract

import (
	"context"

	"moody-be/internal/entity"
	"moody-be/internal/repository/specification"

	"github.com/google/uuid"
)

type ChatMessageRepository interface {
	// Create appends a turn. Messages are immutable once written.
	Create(ctx context.Context, message *entity.ChatMessage) error
	// FindRecent returns up to limit turns for the user, NEWEST first.
	// Callers that need chronological order reverse the slice.
	FindRecent(ctx context.Context, userId uuid.UUID, limit int) ([]*entity.ChatMessage, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatMessage, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	DeleteAllByUserId(ctx context.Context, userId uuid.UUID) error
}
