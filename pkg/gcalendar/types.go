package gcalendar

import "time"

// BusyWindow is one occupied interval on the user's calendar.
type BusyWindow struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}
