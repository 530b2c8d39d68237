package contract

import (
	"context"

	"moody-be/internal/entity"
	"moody-be/internal/repository/specification"
)

type AudioRepository interface {
	Create(ctx context.Context, track *entity.AudioTrack) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.AudioTrack, error)
}
