package model

import (
	"time"

	"github.com/google/uuid"
)

type MoodEntry struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserId    uuid.UUID `gorm:"type:uuid;not null;index"`
	Mood      string    `gorm:"type:varchar(10);not null"`
	Note      *string   `gorm:"type:varchar(500)"`
	CreatedAt time.Time `gorm:"autoCreateTime;index"`

	User *User `gorm:"foreignKey:UserId;constraint:OnDelete:CASCADE"`
}

func (MoodEntry) TableName() string {
	return "mood_entries"
}
