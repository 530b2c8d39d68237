package entity

import (
	"time"

	"github.com/google/uuid"
)

type DailyQuote struct {
	Id        uuid.UUID
	QuoteText string
	Author    *string
	Date      time.Time
}
