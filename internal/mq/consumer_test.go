package mq

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestConsumer_Subscribe_AlreadyStarted(t *testing.T) {
	t.Run("subscribe when already started returns nil", func(t *testing.T) {
		c := &Consumer{
			started: true,
		}

		err := c.Subscribe()
		assert.NoError(t, err)
	})
}

func TestConsumer_Close(t *testing.T) {
	t.Run("nil consumer close returns nil", func(t *testing.T) {
		var c *Consumer
		err := c.Close()
		assert.NoError(t, err)
	})

	t.Run("consumer with nil client close returns nil", func(t *testing.T) {
		c := &Consumer{
			client: nil,
		}
		err := c.Close()
		assert.NoError(t, err)
	})
}

func TestRecentActivityHandler(t *testing.T) {
	t.Run("handler processes message", func(t *testing.T) {
		processed := false
		handler := func(ctx context.Context, msg *RecentActivityMessage) error {
			processed = true
			assert.Equal(t, int64(42), msg.SiteID)
			return nil
		}

		msg := &RecentActivityMessage{
			SiteID:    42,
			Page:      "/pricing",
			Referrer:  "google.com",
			Browser:   "Chrome",
			Timestamp: time.Now(),
		}

		err := handler(context.Background(), msg)
		assert.NoError(t, err)
		assert.True(t, processed)
	})

	t.Run("handler returns error", func(t *testing.T) {
		handler := func(ctx context.Context, msg *RecentActivityMessage) error {
			return assert.AnError
		}

		msg := &RecentActivityMessage{
			SiteID: 42,
		}

		err := handler(context.Background(), msg)
		assert.Error(t, err)
	})

	t.Run("nil handler does not panic", func(t *testing.T) {
		var handler RecentActivityHandler
		if handler != nil {
			_ = handler(context.Background(), &RecentActivityMessage{})
		}
	})
}

func TestConsumer_NewConsumer_Structure(t *testing.T) {
	t.Run("consumer structure is correct", func(t *testing.T) {
		c := &Consumer{
			topic:   "test-topic",
			group:   "test-group",
			handler: func(ctx context.Context, msg *RecentActivityMessage) error { return nil },
		}

		assert.Equal(t, "test-topic", c.topic)
		assert.Equal(t, "test-group", c.group)
		assert.NotNil(t, c.handler)
	})
}
