package mq

import (
	"time"
)

// RecentActivityMessage represents a recent-activity entry published
// for asynchronous persistence
type RecentActivityMessage struct {
	SiteID    int64     `json:"site_id"`
	Page      string    `json:"page"`
	Referrer  string    `json:"referrer"`
	OS        string    `json:"os"`
	Browser   string    `json:"browser"`
	Device    string    `json:"device"`
	Country   string    `json:"country"`
	City      string    `json:"city"`
	Language  string    `json:"language"`
	Timestamp time.Time `json:"timestamp"`
}
