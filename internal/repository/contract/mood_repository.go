package contract

import (
	"context"

	"moody-be/internal/entity"
	"moody-be/internal/repository/specification"

	"github.com/google/uuid"
)

type MoodRepository interface {
	Create(ctx context.Context, entry *entity.MoodEntry) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.MoodEntry, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	DeleteAllByUserId(ctx context.Context, userId uuid.UUID) error
}
