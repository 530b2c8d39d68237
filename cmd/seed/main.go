package main

import (
	"log"
	"os"
	"time"

	"moody-be/internal/model"
	"moody-be/pkg/database"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func strPtr(s string) *string { return &s }

func main() {
	// Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	seedAudioTracks(db)
	seedDailyQuotes(db)

	color.Green("Seeding completed!")
}

func seedAudioTracks(db *gorm.DB) {
	color.Cyan("Seeding Audio Catalog...")

	tracks := []model.AudioTrack{
		{Title: "Morning Calm", Author: strPtr("Serene Sounds"), Duration: "10:00", Category: "relaxing", AudioURL: "https://ygkepuokloqilxrbxbql.supabase.co/storage/v1/object/public/audio-sessions/Morning-Calm.mp3"},
		{Title: "Ocean Breathing", Author: strPtr("Serene Sounds"), Duration: "8:30", Category: "relaxing", AudioURL: "https://ygkepuokloqilxrbxbql.supabase.co/storage/v1/object/public/audio-sessions/Ocean-Breathing.mp3"},
		{Title: "Forest Rain", Author: nil, Duration: "12:00", Category: "relaxing", AudioURL: "https://ygkepuokloqilxrbxbql.supabase.co/storage/v1/object/public/audio-sessions/Forest-Rain.mp3"},
		{Title: "In-Pursuit - Siine", Duration: "3:00", Category: "workout", AudioURL: "https://ygkepuokloqilxrbxbql.supabase.co/storage/v1/object/public/audio-sessions/In-Pursuit%20-%20Siine.mp3"},
		{Title: "Into-the-Night - Hallmore", Duration: "3:00", Category: "workout", AudioURL: "https://ygkepuokloqilxrbxbql.supabase.co/storage/v1/object/public/audio-sessions/Into-the-Night%20-%20Hallmore.mp3"},
		{Title: "Pose - ALICE", Duration: "3:00", Category: "workout", AudioURL: "https://ygkepuokloqilxrbxbql.supabase.co/storage/v1/object/public/audio-sessions/Pose%20-%20ALICE.mp3"},
		{Title: "Supernovas - Hallman", Duration: "3:00", Category: "workout", AudioURL: "https://ygkepuokloqilxrbxbql.supabase.co/storage/v1/object/public/audio-sessions/Supernovas%20-%20Hallman.mp3"},
		{Title: "Ur-Face - LeDorean", Duration: "3:00", Category: "workout", AudioURL: "https://ygkepuokloqilxrbxbql.supabase.co/storage/v1/object/public/audio-sessions/Ur-Face%20-%20LeDorean.mp3"},
		{Title: "MENTAL - Manuelo Jersey", Duration: "3:00", Category: "workout", AudioURL: "https://ygkepuokloqilxrbxbql.supabase.co/storage/v1/object/public/audio-sessions/MENTAL%20-%20Manuelo%20Jersey.mp3"},
	}

	for _, t := range tracks {
		var existing model.AudioTrack
		if err := db.Where("title = ?", t.Title).First(&existing).Error; err == nil {
			log.Printf("Track '%s' already exists, skipping...", t.Title)
			continue
		}

		t.Id = uuid.New()
		if err := db.Create(&t).Error; err != nil {
			color.Red("Error creating track '%s': %v", t.Title, err)
		} else {
			log.Printf("Created track: %s (%s)", t.Title, t.Category)
		}
	}
}

func seedDailyQuotes(db *gorm.DB) {
	color.Cyan("Seeding Daily Quotes...")

	quotes := []struct {
		Text   string
		Author *string
	}{
		{"You don't have to control your thoughts. You just have to stop letting them control you.", strPtr("Dan Millman")},
		{"Feelings are much like waves: we can't stop them from coming, but we can choose which ones to surf.", strPtr("Jonatan Martensson")},
		{"There is hope, even when your brain tells you there isn't.", strPtr("John Green")},
		{"Self-care is how you take your power back.", strPtr("Lalah Delia")},
		{"Almost everything will work again if you unplug it for a few minutes, including you.", strPtr("Anne Lamott")},
		{"You are not your illness. You have an individual story to tell.", strPtr("Julian Seifter")},
		{"Small steps every day.", nil},
	}

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	for i, q := range quotes {
		date := today.AddDate(0, 0, i)

		var existing model.DailyQuote
		if err := db.Where("date >= ? AND date < ?", date, date.AddDate(0, 0, 1)).First(&existing).Error; err == nil {
			log.Printf("Quote for %s already exists, skipping...", date.Format("2006-01-02"))
			continue
		}

		quote := model.DailyQuote{
			Id:        uuid.New(),
			QuoteText: q.Text,
			Author:    q.Author,
			Date:      date,
		}
		if err := db.Create(&quote).Error; err != nil {
			color.Red("Error creating quote for %s: %v", date.Format("2006-01-02"), err)
		} else {
			log.Printf("Created quote for %s", date.Format("2006-01-02"))
		}
	}
}
