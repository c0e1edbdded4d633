package model

// EventPayload represents a custom event carried by a tracking request
type EventPayload struct {
	Name  string   `json:"name" binding:"required"`
	Value *float64 `json:"value"`
	Unit  string   `json:"unit" binding:"omitempty,max=32"`
}

// TrackRequest represents the body of a tracking request. The page
// field is required even for event requests, matching the client
// snippet which always sends the current page.
type TrackRequest struct {
	Domain           string        `json:"domain" binding:"required"`
	Page             string        `json:"page" binding:"required"`
	Event            *EventPayload `json:"event"`
	Referrer         string        `json:"referrer"`
	UserAgent        string        `json:"user_agent"`
	IP               string        `json:"ip" binding:"omitempty,ip"`
	Language         string        `json:"language"`
	ScreenResolution string        `json:"screen_resolution"`
}

// IsEvent reports whether the request carries a custom event payload
func (r *TrackRequest) IsEvent() bool {
	return r.Event != nil
}
