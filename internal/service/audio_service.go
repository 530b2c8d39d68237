package service

import (
	"context"
	"fmt"
	"time"

	"moody-be/internal/dto"
	"moody-be/internal/entity"
	"moody-be/internal/pkg/serverutils"
	"moody-be/internal/repository/specification"
	"moody-be/internal/repository/unitofwork"

	gocache "github.com/patrickmn/go-cache"
)

const (
	audioCacheTTL     = 5 * time.Minute
	audioCacheAllKey  = "audio:all"
	audioCacheCatTmpl = "audio:category:%s"
)

type IAudioService interface {
	GetAll(ctx context.Context) ([]*dto.AudioTrackResponse, error)
	GetByCategory(ctx context.Context, category string) ([]*dto.AudioTrackResponse, error)
}

// audioService serves the static meditation/workout catalog. The catalog
// only changes on reseed, so responses sit in an in-process cache.
type audioService struct {
	uowFactory unitofwork.RepositoryFactory
	cache      *gocache.Cache
}

func NewAudioService(uowFactory unitofwork.RepositoryFactory) IAudioService {
	return &audioService{
		uowFactory: uowFactory,
		cache:      gocache.New(audioCacheTTL, 10*time.Minute),
	}
}

func toAudioTrackResponses(tracks []*entity.AudioTrack) []*dto.AudioTrackResponse {
	result := make([]*dto.AudioTrackResponse, 0, len(tracks))
	for _, track := range tracks {
		result = append(result, &dto.AudioTrackResponse{
			Id:        track.Id,
			Title:     track.Title,
			Author:    track.Author,
			Duration:  track.Duration,
			Category:  string(track.Category),
			AudioURL:  track.AudioURL,
			CreatedAt: track.CreatedAt,
		})
	}
	return result
}

func (s *audioService) GetAll(ctx context.Context) ([]*dto.AudioTrackResponse, error) {
	if cached, found := s.cache.Get(audioCacheAllKey); found {
		return cached.([]*dto.AudioTrackResponse), nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	tracks, err := uow.AudioRepository().FindAll(ctx,
		specification.OrderBy{Field: "category"},
		specification.OrderBy{Field: "title"},
	)
	if err != nil {
		return nil, err
	}

	result := toAudioTrackResponses(tracks)
	s.cache.Set(audioCacheAllKey, result, gocache.DefaultExpiration)
	return result, nil
}

func (s *audioService) GetByCategory(ctx context.Context, category string) ([]*dto.AudioTrackResponse, error) {
	switch entity.AudioCategory(category) {
	case entity.AudioCategoryRelaxing, entity.AudioCategoryWorkout:
	default:
		return nil, serverutils.NewInvalidArgumentError(fmt.Sprintf("Unknown audio category '%s'", category))
	}

	cacheKey := fmt.Sprintf(audioCacheCatTmpl, category)
	if cached, found := s.cache.Get(cacheKey); found {
		return cached.([]*dto.AudioTrackResponse), nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	tracks, err := uow.AudioRepository().FindAll(ctx,
		specification.ByCategory{Category: category},
		specification.OrderBy{Field: "title"},
	)
	if err != nil {
		return nil, err
	}

	result := toAudioTrackResponses(tracks)
	s.cache.Set(cacheKey, result, gocache.DefaultExpiration)
	return result, nil
}
