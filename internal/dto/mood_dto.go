package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateMoodRequest struct {
	Mood string  `json:"mood" validate:"required,oneof=awful bad okay good great"`
	Note *string `json:"note" validate:"omitempty,max=500"`
}

type MoodEntryResponse struct {
	Id        uuid.UUID `json:"id"`
	Mood      string    `json:"mood"`
	Note      *string   `json:"note"`
	CreatedAt time.Time `json:"created_at"`
}

// WeeklyMoodDay is one slot of the 7-day chart. Score is nil when no entry
// was logged on that day.
type WeeklyMoodDay struct {
	Day   string `json:"day"`
	Score *int   `json:"score"`
}

type MoodBreakdownItem struct {
	Mood       string `json:"mood"`
	Label      string `json:"label"`
	Percentage int    `json:"percentage"`
	Color      string `json:"color"`
}

type MoodStatsResponse struct {
	Total     int                 `json:"total"`
	Breakdown []MoodBreakdownItem `json:"breakdown"`
}

// MoodLoggedEvent is published on the mood topic after a new entry is
// committed. It satisfies events.Event.
type MoodLoggedEvent struct {
	UserId     uuid.UUID `json:"user_id"`
	Mood       string    `json:"mood"`
	OccurredAt time.Time `json:"occurred_at"`
}

func (e MoodLoggedEvent) EventType() string {
	return "MOOD_LOGGED"
}

func (e MoodLoggedEvent) Payload() map[string]interface{} {
	return map[string]interface{}{
		"user_id": e.UserId.String(),
		"mood":    e.Mood,
	}
}

func (e MoodLoggedEvent) Timestamp() time.Time {
	return e.OccurredAt
}
