package events

import (
	"time"

	"github.com/google/uuid"
)

// Event is implemented by everything emitted on the event bus.
type Event interface {
	Type() string
}

// FlowEvent carries the fields shared by every rate refresh event.
type FlowEvent struct {
	FetchID   uuid.UUID
	From      string
	To        string
	Timestamp time.Time
}

// RateRefreshStarted is emitted when a fetch begins.
type RateRefreshStarted struct {
	FlowEvent
}

func (e RateRefreshStarted) Type() string { return EventTypeRateRefreshStarted.String() }

// RateUpdated is emitted after a successful fetch replaced the stored rate.
type RateUpdated struct {
	FlowEvent
	Rate     float64
	Previous float64
	Provider string
}

func (e RateUpdated) Type() string { return EventTypeRateUpdated.String() }

// RateRefreshFailed is emitted when a fetch failed and the previous rate was kept.
type RateRefreshFailed struct {
	FlowEvent
	Rate   float64
	Reason string
}

func (e RateRefreshFailed) Type() string { return EventTypeRateRefreshFailed.String() }
