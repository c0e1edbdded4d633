package model

import (
	"strings"
	"time"
)

// Account represents the owner of one or more tracked sites
type Account struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Email     string    `json:"email" gorm:"type:varchar(255);uniqueIndex;not null"`
	CanTrack  bool      `json:"can_track" gorm:"default:true"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// TableName returns the table name for Account
func (Account) TableName() string {
	return "accounts"
}

// Site represents a tracked site entity
type Site struct {
	ID        int64   `json:"id" gorm:"primaryKey;autoIncrement"`
	Domain    string  `json:"domain" gorm:"type:varchar(255);uniqueIndex;not null"`
	AccountID int64   `json:"account_id" gorm:"index;not null"`
	Account   Account `json:"account"`
	// DomainKey is the shared secret checked against the X-Domain-Key
	// header when key restriction is enabled
	DomainKey     string    `json:"domain_key" gorm:"type:varchar(64)"`
	ExcludeBots   bool      `json:"exclude_bots" gorm:"default:false"`
	ExcludeIPs    string    `json:"exclude_ips" gorm:"type:text"`
	ExcludeParams string    `json:"exclude_params" gorm:"type:text"`
	CreatedAt     time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// TableName returns the table name for Site
func (Site) TableName() string {
	return "sites"
}

// TrackingEnabled reports whether the owning account may track
func (s *Site) TrackingEnabled() bool {
	return s.Account.CanTrack
}

// ExcludedIPList returns the excluded IP/CIDR entries, one per line
func (s *Site) ExcludedIPList() []string {
	return splitLines(s.ExcludeIPs)
}

// ExcludedParamList returns the excluded query parameter names, one per line
func (s *Site) ExcludedParamList() []string {
	return splitLines(s.ExcludeParams)
}

// NormalizeDomain lower-cases a domain and strips the scheme and a
// leading www. prefix. Stored site domains and all domain comparisons
// use this form.
func NormalizeDomain(domain string) string {
	d := strings.ToLower(strings.TrimSpace(domain))
	d = strings.TrimPrefix(d, "https://")
	d = strings.TrimPrefix(d, "http://")
	d = strings.TrimPrefix(d, "www.")
	return d
}

// splitLines splits a newline-separated setting into non-empty entries
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == '\n' || r == '\r'
	})
	entries := make([]string, 0, len(fields))
	for _, f := range fields {
		if f = strings.TrimSpace(f); f != "" {
			entries = append(entries, f)
		}
	}
	return entries
}
