package entity

import (
	"time"

	"github.com/google/uuid"
)

type AudioCategory string

const (
	AudioCategoryRelaxing AudioCategory = "relaxing"
	AudioCategoryWorkout  AudioCategory = "workout"
)

type AudioTrack struct {
	Id        uuid.UUID
	Title     string
	Author    *string
	Duration  string
	Category  AudioCategory
	AudioURL  string
	CreatedAt time.Time
}
