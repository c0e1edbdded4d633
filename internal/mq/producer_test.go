package mq

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestProducer_SendRecentActivity_NilProducer(t *testing.T) {
	t.Run("nil producer returns nil", func(t *testing.T) {
		var p *Producer
		msg := &RecentActivityMessage{
			SiteID:    42,
			Page:      "/pricing",
			Referrer:  "google.com",
			OS:        "macOS",
			Browser:   "Chrome",
			Device:    "desktop",
			Country:   "US:United States",
			City:      "US: San Francisco, CA",
			Language:  "en",
			Timestamp: time.Now(),
		}

		err := p.SendRecentActivity(context.Background(), msg)
		assert.NoError(t, err)
	})
}

func TestProducer_Close(t *testing.T) {
	t.Run("nil producer close returns nil", func(t *testing.T) {
		var p *Producer
		err := p.Close()
		assert.NoError(t, err)
	})
}

func TestRecentActivityMessage(t *testing.T) {
	t.Run("marshal and unmarshal", func(t *testing.T) {
		now := time.Now()
		msg := &RecentActivityMessage{
			SiteID:    42,
			Page:      "/pricing",
			Referrer:  "google.com",
			OS:        "iOS",
			Browser:   "Safari",
			Device:    "mobile",
			Country:   "US:United States",
			City:      "US: San Francisco, CA",
			Language:  "en",
			Timestamp: now,
		}

		data, err := json.Marshal(msg)
		assert.NoError(t, err)
		assert.NotEmpty(t, data)

		var unmarshaled RecentActivityMessage
		err = json.Unmarshal(data, &unmarshaled)
		assert.NoError(t, err)
		assert.Equal(t, msg.SiteID, unmarshaled.SiteID)
		assert.Equal(t, msg.Page, unmarshaled.Page)
		assert.Equal(t, msg.Referrer, unmarshaled.Referrer)
		assert.Equal(t, msg.Browser, unmarshaled.Browser)
		assert.Equal(t, msg.Country, unmarshaled.Country)
	})

	t.Run("empty message", func(t *testing.T) {
		msg := &RecentActivityMessage{}
		data, err := json.Marshal(msg)
		assert.NoError(t, err)
		assert.NotEmpty(t, data)
	})
}
