package mapper

import (
	"moody-be/internal/entity"
	"moody-be/internal/model"
)

type AudioMapper struct{}

func NewAudioMapper() *AudioMapper {
	return &AudioMapper{}
}

func (m *AudioMapper) ToEntity(t *model.AudioTrack) *entity.AudioTrack {
	if t == nil {
		return nil
	}
	return &entity.AudioTrack{
		Id:        t.Id,
		Title:     t.Title,
		Author:    t.Author,
		Duration:  t.Duration,
		Category:  entity.AudioCategory(t.Category),
		AudioURL:  t.AudioURL,
		CreatedAt: t.CreatedAt,
	}
}

func (m *AudioMapper) ToModel(t *entity.AudioTrack) *model.AudioTrack {
	if t == nil {
		return nil
	}
	return &model.AudioTrack{
		Id:        t.Id,
		Title:     t.Title,
		Author:    t.Author,
		Duration:  t.Duration,
		Category:  string(t.Category),
		AudioURL:  t.AudioURL,
		CreatedAt: t.CreatedAt,
	}
}

func (m *AudioMapper) ToEntities(tracks []*model.AudioTrack) []*entity.AudioTrack {
	entities := make([]*entity.AudioTrack, len(tracks))
	for i, t := range tracks {
		entities[i] = m.ToEntity(t)
	}
	return entities
}
