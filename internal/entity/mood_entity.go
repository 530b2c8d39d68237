package entity

import (
	"time"

	"github.com/google/uuid"
)

type MoodLevel string

const (
	MoodAwful MoodLevel = "awful"
	MoodBad   MoodLevel = "bad"
	MoodOkay  MoodLevel = "okay"
	MoodGood  MoodLevel = "good"
	MoodGreat MoodLevel = "great"
)

type MoodEntry struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	Mood      MoodLevel
	Note      *string
	CreatedAt time.Time
}
