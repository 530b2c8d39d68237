package model

import (
	"time"

	"github.com/google/uuid"
)

type AudioTrack struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title     string    `gorm:"type:varchar(500);not null"`
	Author    *string   `gorm:"type:varchar(255)"`
	Duration  string    `gorm:"type:varchar(20);not null"`
	Category  string    `gorm:"type:varchar(20);not null;index"`
	AudioURL  string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (AudioTrack) TableName() string {
	return "audio_tracks"
}
