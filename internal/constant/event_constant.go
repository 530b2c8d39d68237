package constant

const (
	// MoodLoggedTopic carries mood-entry creation events. Consumers use it
	// to invalidate cached mood aggregates.
	MoodLoggedTopic = "MOOD_LOGGED"
)
