package model

import (
	"time"

	"github.com/browbeat/event-marketplace/constant"
)

type EventRequest struct {
	ID                uint64                      `db:"id" json:"id"`
	UserID            uint64                      `db:"user_id" json:"userId"`
	VendorID          uint64                      `db:"vendor_id" json:"vendorId"`
	EventType         string                      `db:"event_type" json:"eventType"`
	EventDate         string                      `db:"event_date" json:"eventDate"`
	GuestCount        int                         `db:"guest_count" json:"guestCount"`
	StartTime         string                      `db:"start_time" json:"startTime"`
	Duration          int                         `db:"duration" json:"duration"`
	Budget            *int                        `db:"budget" json:"budget"`
	AdditionalDetails *string                     `db:"additional_details" json:"additionalDetails"`
	Status            constant.EventRequestStatus `db:"status" json:"status"`
	CreatedAt         time.Time                   `db:"created_at" json:"createdAt"`
}

// EndsAt is the wall-clock end of the event: date + start time + duration hours.
func (e *EventRequest) EndsAt(loc *time.Location) (time.Time, error) {
	start, err := time.ParseInLocation(constant.DateLayout+" "+constant.TimeLayout, e.EventDate+" "+e.StartTime, loc)
	if err != nil {
		return time.Time{}, err
	}
	return start.Add(time.Duration(e.Duration) * time.Hour), nil
}

// EventRequestFilter selects requests by client or by vendor. UserID wins
// when both are set.
type EventRequestFilter struct {
	UserID   uint64
	VendorID uint64
}

type CreateEventRequestRequest struct {
	UserID            uint64  `json:"userId" validate:"required"`
	VendorID          uint64  `json:"vendorId" validate:"required"`
	EventType         string  `json:"eventType" validate:"required,event_type"`
	EventDate         string  `json:"eventDate" validate:"required,datetime=2006-01-02"`
	GuestCount        int     `json:"guestCount" validate:"required,gt=0"`
	StartTime         string  `json:"startTime" validate:"required,datetime=15:04"`
	Duration          int     `json:"duration" validate:"required,gt=0"`
	Budget            *int    `json:"budget" validate:"omitempty,gte=0"`
	AdditionalDetails *string `json:"additionalDetails"`
}

// EventRequestPatch holds the fields of a partial request update; nil means
// unchanged. The client and vendor of a request cannot be reassigned.
type EventRequestPatch struct {
	EventType         *string                      `json:"eventType" validate:"omitempty,event_type"`
	EventDate         *string                      `json:"eventDate" validate:"omitempty,datetime=2006-01-02"`
	GuestCount        *int                         `json:"guestCount" validate:"omitempty,gt=0"`
	StartTime         *string                      `json:"startTime" validate:"omitempty,datetime=15:04"`
	Duration          *int                         `json:"duration" validate:"omitempty,gt=0"`
	Budget            *int                         `json:"budget" validate:"omitempty,gte=0"`
	AdditionalDetails *string                      `json:"additionalDetails"`
	Status            *constant.EventRequestStatus `json:"status" validate:"omitempty,request_status"`
}

func (p *EventRequestPatch) Apply(e *EventRequest) {
	if p == nil {
		return
	}
	if p.EventType != nil {
		e.EventType = *p.EventType
	}
	if p.EventDate != nil {
		e.EventDate = *p.EventDate
	}
	if p.GuestCount != nil {
		e.GuestCount = *p.GuestCount
	}
	if p.StartTime != nil {
		e.StartTime = *p.StartTime
	}
	if p.Duration != nil {
		e.Duration = *p.Duration
	}
	if p.Budget != nil {
		e.Budget = p.Budget
	}
	if p.AdditionalDetails != nil {
		e.AdditionalDetails = p.AdditionalDetails
	}
	if p.Status != nil {
		e.Status = *p.Status
	}
}
