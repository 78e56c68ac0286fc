package model

import "time"

// MarketplaceEvent is the envelope published for every domain change.
type MarketplaceEvent struct {
	ID         string      `json:"id"`
	Type       string      `json:"type"`
	OccurredAt time.Time   `json:"occurredAt"`
	Payload    interface{} `json:"payload"`
}

// RequestStatusChange is the payload of event_request.status_changed.
type RequestStatusChange struct {
	Request        *EventRequest `json:"request"`
	PreviousStatus string        `json:"previousStatus"`
}
