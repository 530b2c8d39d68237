package bootstrap

import (
	"context"
	"log"

	"moody-be/internal/config"
	"moody-be/internal/constant"
	"moody-be/internal/controller"
	"moody-be/internal/pkg/logger"
	"moody-be/internal/repository/unitofwork"
	"moody-be/internal/service"
	"moody-be/pkg/chatbot"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	UserController    controller.IUserController
	MoodController    controller.IMoodController
	JournalController controller.IJournalController
	AudioController   controller.IAudioController
	QuoteController   controller.IQuoteController
	ChatController    controller.IChatController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. Redis (mood stats cache)
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
	}

	// 4. Model Provider
	geminiProvider := chatbot.NewGeminiProvider(
		cfg.Keys.GoogleGemini,
		cfg.Chat.Model,
		constant.ChatSystemInstruction,
		cfg.Chat.Timeout,
	)

	// 5. Services
	publisherService := service.NewPublisherService(constant.MoodLoggedTopic, pubSub)
	consumerService := service.NewConsumerService(pubSub, constant.MoodLoggedTopic, rdb, sysLogger)

	userService := service.NewUserService(uowFactory)
	moodService := service.NewMoodService(uowFactory, publisherService, rdb, sysLogger)
	journalService := service.NewJournalService(uowFactory)
	audioService := service.NewAudioService(uowFactory)
	quoteService := service.NewQuoteService(uowFactory)
	chatService := service.NewChatService(uowFactory, geminiProvider, cfg.Chat, sysLogger)

	// 6. Controllers
	return &Container{
		UserController:    controller.NewUserController(userService),
		MoodController:    controller.NewMoodController(moodService),
		JournalController: controller.NewJournalController(journalService),
		AudioController:   controller.NewAudioController(audioService),
		QuoteController:   controller.NewQuoteController(quoteService),
		ChatController:    controller.NewChatController(chatService),
		ConsumerService:   consumerService,
		Logger:            sysLogger,
	}
}
