package service

import (
	"context"
	"time"

	"moody-be/internal/dto"
	"moody-be/internal/pkg/serverutils"
	"moody-be/internal/repository/specification"
	"moody-be/internal/repository/unitofwork"
)

type IQuoteService interface {
	GetToday(ctx context.Context) (*dto.DailyQuoteResponse, error)
}

type quoteService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewQuoteService(uowFactory unitofwork.RepositoryFactory) IQuoteService {
	return &quoteService{
		uowFactory: uowFactory,
	}
}

func (s *quoteService) GetToday(ctx context.Context) (*dto.DailyQuoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	quote, err := uow.QuoteRepository().FindOne(ctx, specification.ByQuoteDate{Day: time.Now()})
	if err != nil {
		return nil, err
	}
	if quote == nil {
		return nil, serverutils.NewNotFoundError("No quote available for today")
	}

	return &dto.DailyQuoteResponse{
		Id:        quote.Id,
		QuoteText: quote.QuoteText,
		Author:    quote.Author,
		Date:      quote.Date,
	}, nil
}
