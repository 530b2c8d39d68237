package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"moody-be/internal/constant"
	"moody-be/internal/dto"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishCarriesEventPayloadAndType(t *testing.T) {
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	messages, err := pubSub.Subscribe(ctx, constant.MoodLoggedTopic)
	require.NoError(t, err)

	publisher := NewPublisherService(constant.MoodLoggedTopic, pubSub)
	evt := dto.MoodLoggedEvent{UserId: uuid.New(), Mood: "good", OccurredAt: time.Now()}
	require.NoError(t, publisher.Publish(ctx, evt))

	select {
	case msg := <-messages:
		assert.Equal(t, "MOOD_LOGGED", msg.Metadata.Get("event_type"))
		var decoded dto.MoodLoggedEvent
		require.NoError(t, json.Unmarshal(msg.Payload, &decoded))
		assert.Equal(t, evt.UserId, decoded.UserId)
		assert.Equal(t, "good", decoded.Mood)
		msg.Ack()
	case <-ctx.Done():
		t.Fatal("no message received")
	}
}
