package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Parser converts the date phrases the parse pipeline extracts ("tomorrow",
// "friday", "15/3", "march 15") into absolute time.Time values.
type Parser struct {
	location *time.Location
}

var (
	numericDateRe   = regexp.MustCompile(`^(\d{1,2})[/-](\d{1,2})(?:[/-](\d{2,4}))?$`)
	inDurationRe    = regexp.MustCompile(`in (\d+) (day|days|week|weeks|month|months)`)
	monthNameDateRe = regexp.MustCompile(`^(january|february|march|april|may|june|july|august|september|october|november|december)\s+(\d{1,2})$`)
)

var weekdays = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

var months = map[string]time.Month{
	"january": time.January, "february": time.February, "march": time.March,
	"april": time.April, "may": time.May, "june": time.June,
	"july": time.July, "august": time.August, "september": time.September,
	"october": time.October, "november": time.November, "december": time.December,
}

// NewParser creates a date parser for the given IANA timezone string, e.g. "Europe/Berlin".
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Parse converts a date phrase to an absolute time.Time.
// The baseTime is used as the reference point (usually time.Now()).
// Unknown phrases fall back to the start of the base day.
func (p *Parser) Parse(phrase string, baseTime time.Time) (time.Time, error) {
	phrase = strings.ToLower(strings.TrimSpace(phrase))

	switch phrase {
	case "today":
		return p.startOfDay(baseTime), nil
	case "tomorrow":
		return p.startOfDay(baseTime.AddDate(0, 0, 1)), nil
	case "yesterday":
		return p.startOfDay(baseTime.AddDate(0, 0, -1)), nil
	case "next week":
		return p.startOfDay(baseTime.AddDate(0, 0, 7)), nil
	case "next month":
		return p.startOfDay(baseTime.AddDate(0, 1, 0)), nil
	}

	// Bare weekday name: the upcoming occurrence.
	if wd, ok := weekdays[phrase]; ok {
		return p.upcomingWeekday(wd, baseTime), nil
	}

	// "in X days/weeks/months"
	if strings.HasPrefix(phrase, "in ") {
		return p.parseInDuration(phrase, baseTime)
	}

	// "next <weekday>"
	if strings.HasPrefix(phrase, "next ") {
		return p.parseNextWeekday(phrase, baseTime)
	}

	// Numeric D/M or D/M/Y.
	if m := numericDateRe.FindStringSubmatch(phrase); m != nil {
		return p.parseNumericDate(m, baseTime)
	}

	// Month-name plus day, e.g. "march 15".
	if m := monthNameDateRe.FindStringSubmatch(phrase); m != nil {
		day, _ := strconv.Atoi(m[2])
		return p.monthDay(months[m[1]], day, baseTime), nil
	}

	// Fallback: treat unknown as today.
	return p.startOfDay(baseTime), nil
}

// parseInDuration handles patterns like "in 3 days", "in 2 weeks", "in 1 month".
func (p *Parser) parseInDuration(phrase string, baseTime time.Time) (time.Time, error) {
	matches := inDurationRe.FindStringSubmatch(phrase)
	if len(matches) != 3 {
		return baseTime, fmt.Errorf("invalid duration format: %q", phrase)
	}

	amount, _ := strconv.Atoi(matches[1])
	unit := matches[2]

	switch {
	case strings.HasPrefix(unit, "day"):
		return p.startOfDay(baseTime.AddDate(0, 0, amount)), nil
	case strings.HasPrefix(unit, "week"):
		return p.startOfDay(baseTime.AddDate(0, 0, amount*7)), nil
	case strings.HasPrefix(unit, "month"):
		return p.startOfDay(baseTime.AddDate(0, amount, 0)), nil
	}

	return baseTime, fmt.Errorf("unknown time unit: %q", unit)
}

// parseNextWeekday handles patterns like "next monday", "next friday".
func (p *Parser) parseNextWeekday(phrase string, baseTime time.Time) (time.Time, error) {
	dayName := strings.TrimPrefix(phrase, "next ")
	targetWeekday, ok := weekdays[dayName]
	if !ok {
		return baseTime, fmt.Errorf("unknown weekday: %q", dayName)
	}
	return p.upcomingWeekday(targetWeekday, baseTime), nil
}

// parseNumericDate handles D/M and D/M/Y forms. A two-digit year is taken as 20xx;
// a missing year resolves to the next occurrence of that day/month.
func (p *Parser) parseNumericDate(m []string, baseTime time.Time) (time.Time, error) {
	day, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return baseTime, fmt.Errorf("invalid numeric date: %s/%s", m[1], m[2])
	}

	if m[3] != "" {
		year, _ := strconv.Atoi(m[3])
		if year < 100 {
			year += 2000
		}
		return time.Date(year, time.Month(month), day, 0, 0, 0, 0, p.location), nil
	}

	return p.monthDay(time.Month(month), day, baseTime), nil
}

func (p *Parser) upcomingWeekday(target time.Weekday, baseTime time.Time) time.Time {
	daysUntil := int(target - baseTime.Weekday())
	if daysUntil <= 0 {
		daysUntil += 7
	}
	return p.startOfDay(baseTime.AddDate(0, 0, daysUntil))
}

// monthDay resolves a month/day without a year to its next occurrence.
func (p *Parser) monthDay(month time.Month, day int, baseTime time.Time) time.Time {
	candidate := time.Date(baseTime.Year(), month, day, 0, 0, 0, 0, p.location)
	if candidate.Before(p.startOfDay(baseTime)) {
		candidate = candidate.AddDate(1, 0, 0)
	}
	return candidate
}

// startOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) startOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

// EndOfDay returns 23:59:59 at the end of the given start-of-day time.
func (p *Parser) EndOfDay(startOfDay time.Time) time.Time {
	return startOfDay.Add(23*time.Hour + 59*time.Minute + 59*time.Second)
}
