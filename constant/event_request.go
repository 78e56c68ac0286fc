package constant

type EventRequestStatus string

const (
	EventRequestStatusPending   EventRequestStatus = "pending"
	EventRequestStatusAccepted  EventRequestStatus = "accepted"
	EventRequestStatusDeclined  EventRequestStatus = "declined"
	EventRequestStatusCompleted EventRequestStatus = "completed"
)

var EventRequestStatuses = []EventRequestStatus{
	EventRequestStatusPending,
	EventRequestStatusAccepted,
	EventRequestStatusDeclined,
	EventRequestStatusCompleted,
}

func (s EventRequestStatus) Valid() bool {
	for _, st := range EventRequestStatuses {
		if s == st {
			return true
		}
	}
	return false
}
