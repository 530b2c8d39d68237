package contract

import (
	"context"

	"moody-be/internal/entity"
	"moody-be/internal/repository/specification"
)

type QuoteRepository interface {
	Create(ctx context.Context, quote *entity.DailyQuote) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.DailyQuote, error)
}
