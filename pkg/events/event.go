package events

import "time"

// Event is the contract every published event satisfies. The publisher
// serializes the concrete event and carries EventType as message metadata.
type Event interface {
	// EventType returns the unique code for this event (e.g., "MOOD_LOGGED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}
