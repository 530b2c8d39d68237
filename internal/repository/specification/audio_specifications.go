package specification

import (
	"time"

	"gorm.io/gorm"
)

type ByCategory struct {
	Category string
}

func (s ByCategory) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("category = ?", s.Category)
}

// ByQuoteDate matches the daily quote whose date falls on the given calendar day
type ByQuoteDate struct {
	Day time.Time
}

func (s ByQuoteDate) Apply(db *gorm.DB) *gorm.DB {
	start := time.Date(s.Day.Year(), s.Day.Month(), s.Day.Day(), 0, 0, 0, 0, s.Day.Location())
	return db.Where("date >= ? AND date < ?", start, start.AddDate(0, 0, 1))
}
