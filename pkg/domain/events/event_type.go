package events

// EventType represents the type of an event in the system.
type EventType string

// Event type constants
const (
	EventTypeRateRefreshStarted EventType = "Rate.RefreshStarted"
	EventTypeRateUpdated        EventType = "Rate.Updated"
	EventTypeRateRefreshFailed  EventType = "Rate.RefreshFailed"
)

// String returns the string representation of the event type.
func (et EventType) String() string {
	return string(et)
}
