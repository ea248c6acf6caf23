package models

import "time"

// LogEntry is a single line in a channel's game log
type LogEntry struct {
	// Timestamp is when the entry was recorded
	Timestamp time.Time

	// Author is the display name of whoever triggered the entry
	Author string

	// Content is the rendered event text
	Content string
}
