package constant

type contextKey string

const (
	UserIDKey    contextKey = "user_id"
	RequestIDKey contextKey = "request_id"
)

// RequestIDHeader carries the request id in and out of the API.
const RequestIDHeader = "X-Request-ID"

// VendorCategories is the fixed set of vendor categories, in display order.
var VendorCategories = []string{
	"Venue",
	"Catering",
	"Photography",
	"Decoration",
	"Music & Entertainment",
	"Event Planning",
	"Transportation",
	"Florist",
}

// EventTypes is the fixed set of event types, in display order.
var EventTypes = []string{
	"Wedding",
	"Birthday",
	"Corporate Event",
	"Anniversary",
	"Baby Shower",
	"Graduation",
	"Holiday Party",
	"Other",
}

const DefaultFeaturedLimit = 6

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)
