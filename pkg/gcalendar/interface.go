package gcalendar

import (
	"context"
	"time"
)

// ICalendar is the availability lookup interface satisfied by Client.
type ICalendar interface {
	BusyWindows(ctx context.Context, calendarID string, from, to time.Time) ([]BusyWindow, error)
}
