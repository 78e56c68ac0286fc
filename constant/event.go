package constant

// Routing keys published on the marketplace events exchange.
const (
	EventUserRegistered       = "user.registered"
	EventVendorCreated        = "vendor.created"
	EventRequestCreated       = "event_request.created"
	EventRequestStatusChanged = "event_request.status_changed"
	EventReviewCreated        = "review.created"
)
