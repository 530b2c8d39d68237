package mapper

import (
	"moody-be/internal/entity"
	"moody-be/internal/model"
)

type QuoteMapper struct{}

func NewQuoteMapper() *QuoteMapper {
	return &QuoteMapper{}
}

func (m *QuoteMapper) ToEntity(q *model.DailyQuote) *entity.DailyQuote {
	if q == nil {
		return nil
	}
	return &entity.DailyQuote{
		Id:        q.Id,
		QuoteText: q.QuoteText,
		Author:    q.Author,
		Date:      q.Date,
	}
}

func (m *QuoteMapper) ToModel(q *entity.DailyQuote) *model.DailyQuote {
	if q == nil {
		return nil
	}
	return &model.DailyQuote{
		Id:        q.Id,
		QuoteText: q.QuoteText,
		Author:    q.Author,
		Date:      q.Date,
	}
}
