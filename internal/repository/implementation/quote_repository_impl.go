package implementation

import (
	"context"
	"errors"

	"moody-be/internal/entity"
	"moody-be/internal/mapper"
	"moody-be/internal/model"
	"moody-be/internal/repository/contract"
	"moody-be/internal/repository/specification"

	"gorm.io/gorm"
)

type QuoteRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.QuoteMapper
}

func NewQuoteRepository(db *gorm.DB) contract.QuoteRepository {
	return &QuoteRepositoryImpl{
		db:     db,
		mapper: mapper.NewQuoteMapper(),
	}
}

func (r *QuoteRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *QuoteRepositoryImpl) Create(ctx context.Context, quote *entity.DailyQuote) error {
	m := r.mapper.ToModel(quote)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*quote = *r.mapper.ToEntity(m)
	return nil
}

func (r *QuoteRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.DailyQuote, error) {
	var m model.DailyQuote
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}
