package model

import (
	"time"
)

// Counter represents an aggregate (site, metric, value, date) row.
// Rows are created with count = 1 and only ever incremented.
type Counter struct {
	ID     int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	SiteID int64  `json:"site_id" gorm:"uniqueIndex:idx_site_metric;not null"`
	Name   string `json:"name" gorm:"type:varchar(32);uniqueIndex:idx_site_metric;not null"`
	Value  string `json:"value" gorm:"type:varchar(255);uniqueIndex:idx_site_metric;not null"`
	Date   string `json:"date" gorm:"type:date;uniqueIndex:idx_site_metric;not null"`
	Count  int64  `json:"count" gorm:"not null;default:1"`
}

// TableName returns the table name for Counter
func (Counter) TableName() string {
	return "stats"
}

// RecentActivity represents one entry of the recent-activity feed
type RecentActivity struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	SiteID    int64     `json:"site_id" gorm:"index;not null"`
	Page      string    `json:"page" gorm:"type:varchar(255)"`
	Referrer  string    `json:"referrer" gorm:"type:varchar(255)"`
	OS        string    `json:"os" gorm:"type:varchar(64)"`
	Browser   string    `json:"browser" gorm:"type:varchar(64)"`
	Device    string    `json:"device" gorm:"type:varchar(64)"`
	Country   string    `json:"country" gorm:"type:varchar(255)"`
	City      string    `json:"city" gorm:"type:varchar(255)"`
	Language  string    `json:"language" gorm:"type:varchar(2)"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// TableName returns the table name for RecentActivity
func (RecentActivity) TableName() string {
	return "recents"
}

// Metric is one (name, value) pair produced by the normalizer. Each
// pair maps to exactly one Counter upsert.
type Metric struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// NormalizedRecord is the canonical output of the normalizer, ready
// for aggregation
type NormalizedRecord struct {
	SiteID   int64           `json:"site_id"`
	Date     string          `json:"date"`
	Metrics  []Metric        `json:"metrics"`
	Recent   *RecentActivity `json:"recent,omitempty"`
	NewVisit bool            `json:"new_visit"`
}

// ClassificationResult holds the derived browser/OS/device and
// geolocation fields. All fields are optional; absent fields are empty.
type ClassificationResult struct {
	Browser   string `json:"browser,omitempty"`
	OS        string `json:"os,omitempty"`
	Device    string `json:"device,omitempty"`
	IsBot     bool   `json:"is_bot"`
	Continent string `json:"continent,omitempty"`
	Country   string `json:"country,omitempty"`
	City      string `json:"city,omitempty"`
}
