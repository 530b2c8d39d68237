package model

import (
	"time"

	"github.com/google/uuid"
)

type DailyQuote struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey"`
	QuoteText string    `gorm:"type:text;not null"`
	Author    *string   `gorm:"type:varchar(255)"`
	Date      time.Time `gorm:"not null;index"`
}

func (DailyQuote) TableName() string {
	return "daily_quotes"
}
