package service

import (
	"context"
	"encoding/json"

	"moody-be/internal/dto"
	"moody-be/internal/pkg/logger"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drops cached mood aggregates when a new entry is logged,
// so the next stats read recomputes from the database.
type consumerService struct {
	pubSub    *gochannel.GoChannel
	topicName string
	redis     *redis.Client
	logger    logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	redisClient *redis.Client,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:    pubSub,
		topicName: topicName,
		redis:     redisClient,
		logger:    log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.MoodLoggedEvent
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.logger.Error("consumer", "Failed to unmarshal mood event", map[string]interface{}{"error": err.Error()})
		msg.Ack() // invalid payloads are not retriable
		return
	}

	if cs.redis == nil {
		msg.Ack()
		return
	}

	key := moodStatsCacheKey(payload.UserId)
	if err := cs.redis.Del(ctx, key).Err(); err != nil {
		cs.logger.Warn("consumer", "Failed to invalidate mood stats cache", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
		msg.Nack()
		return
	}

	msg.Ack()
}
