package datemath

import "time"

// ParseResult holds the result of resolving a date phrase.
type ParseResult struct {
	AbsoluteTime time.Time
	IsAllDay     bool
}
