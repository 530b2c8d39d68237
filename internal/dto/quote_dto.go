package dto

import (
	"time"

	"github.com/google/uuid"
)

type DailyQuoteResponse struct {
	Id        uuid.UUID `json:"id"`
	QuoteText string    `json:"quote_text"`
	Author    *string   `json:"author"`
	Date      time.Time `json:"date"`
}
