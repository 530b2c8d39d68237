package implementation

import (
	"context"

	"moody-be/internal/entity"
	"moody-be/internal/mapper"
	"moody-be/internal/model"
	"moody-be/internal/repository/contract"
	"moody-be/internal/repository/specification"

	"gorm.io/gorm"
)

type AudioRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.AudioMapper
}

func NewAudioRepository(db *gorm.DB) contract.AudioRepository {
	return &AudioRepositoryImpl{
		db:     db,
		mapper: mapper.NewAudioMapper(),
	}
}

func (r *AudioRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *AudioRepositoryImpl) Create(ctx context.Context, track *entity.AudioTrack) error {
	m := r.mapper.ToModel(track)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*track = *r.mapper.ToEntity(m)
	return nil
}

func (r *AudioRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.AudioTrack, error) {
	var models []*model.AudioTrack
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
