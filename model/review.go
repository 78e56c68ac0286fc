package model

import "time"

type Review struct {
	ID        uint64    `db:"id" json:"id"`
	UserID    uint64    `db:"user_id" json:"userId"`
	VendorID  uint64    `db:"vendor_id" json:"vendorId"`
	Rating    int       `db:"rating" json:"rating"`
	Comment   *string   `db:"comment" json:"comment"`
	EventType *string   `db:"event_type" json:"eventType"`
	EventDate *string   `db:"event_date" json:"eventDate"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

// ReviewFilter selects reviews by author or vendor. UserID wins when both are set.
type ReviewFilter struct {
	UserID   uint64
	VendorID uint64
}

type CreateReviewRequest struct {
	UserID    uint64  `json:"userId" validate:"required"`
	VendorID  uint64  `json:"vendorId" validate:"required"`
	Rating    int     `json:"rating" validate:"required,min=1,max=5"`
	Comment   *string `json:"comment"`
	EventType *string `json:"eventType" validate:"omitempty,event_type"`
	EventDate *string `json:"eventDate" validate:"omitempty,datetime=2006-01-02"`
}
