package dto

import (
	"time"

	"github.com/google/uuid"
)

type AudioTrackResponse struct {
	Id        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Author    *string   `json:"author"`
	Duration  string    `json:"duration"`
	Category  string    `json:"category"`
	AudioURL  string    `json:"audio_url"`
	CreatedAt time.Time `json:"created_at"`
}
