package usecase

import (
	"regexp"
	"strings"

	"smart-todo-backend/internal/model"
)

// Pattern classes tried in fixed priority order for date extraction.
// The first class that matches anywhere in the text wins.
var (
	relativeDateRe = regexp.MustCompile(`(?i)\b(today|tomorrow|next week|next month)\b`)
	weekdayRe      = regexp.MustCompile(`(?i)\b(?:on\s+)?(monday|tuesday|wednesday|thursday|friday|saturday|sunday)\b`)
	numericDateRe  = regexp.MustCompile(`\b(\d{1,2}[/-]\d{1,2}(?:[/-]\d{2,4})?)\b`)
	monthDateRe    = regexp.MustCompile(`(?i)\b((?:january|february|march|april|may|june|july|august|september|october|november|december)\s+\d{1,2})\b`)

	clockTimeRe = regexp.MustCompile(`(?i)\b(?:at\s+)?(\d{1,2}(?::\d{2})?\s*(?:am|pm))\b`)
	dayPartRe   = regexp.MustCompile(`(?i)\b(?:in\s+the\s+)?(morning|afternoon|evening|night)\b`)

	withPersonRe  = regexp.MustCompile(`\bwith\s+([A-Z][a-zA-Z]+(?:\s+[A-Z][a-zA-Z]+)?)`)
	personAndMeRe = regexp.MustCompile(`\b([A-Z][a-zA-Z]+)\s+and\s+me\b`)
	contactVerbRe = regexp.MustCompile(`(?i)\b(?:call|meet|email|text|ask|remind)\s+([A-Z][a-zA-Z]+)\b`)

	whitespaceRe = regexp.MustCompile(`\s+`)
)

var highPriorityKeywords = []string{"urgent", "asap", "important", "high priority", "critical"}
var lowPriorityKeywords = []string{"low priority", "when possible", "eventually"}

// categoryBuckets are checked in order; the first bucket with a keyword hit wins.
var categoryBuckets = []struct {
	name     string
	keywords []string
}{
	{"work", []string{"meeting", "project", "deadline", "report", "presentation", "client", "office", "standup"}},
	{"personal", []string{"call", "family", "friend", "home", "birthday", "dinner", "visit"}},
	{"shopping", []string{"buy", "purchase", "shop", "grocery", "groceries", "order"}},
	{"health", []string{"doctor", "dentist", "gym", "workout", "exercise", "medicine", "appointment"}},
	{"finance", []string{"pay", "bill", "bank", "budget", "tax", "invoice"}},
}

// tagChecks are independent: every matching tag is included.
var tagChecks = []struct {
	tag      string
	keywords []string
}{
	{"urgent", []string{"urgent", "asap", "critical"}},
	{"meeting", []string{"meeting", "call"}},
	{"email", []string{"email", "message"}},
	{"shopping", []string{"buy", "purchase"}},
}

var durationBuckets = []struct {
	duration string
	keywords []string
}{
	{"15 minutes", []string{"call", "email", "text", "quick"}},
	{"1 hour", []string{"meeting", "gym", "workout", "appointment"}},
	{"2 hours", []string{"report", "presentation", "review"}},
	{"1 day", []string{"plan", "organize", "research", "move"}},
}

const defaultDuration = "30 minutes"

var leadingVerbs = []string{"plan", "schedule", "organize", "prepare", "do", "complete"}

// heuristicParse extracts structured attributes from raw text with regex and
// keyword heuristics. It is pure, never fails, and never touches the network.
func heuristicParse(text string) model.ParsedTask {
	original := text
	trimmed := strings.TrimSpace(text)

	parsed := model.ParsedTask{
		TaskName:          original,
		Priority:          model.PriorityMedium,
		Category:          "general",
		People:            []string{},
		Tags:              []string{},
		EstimatedDuration: defaultDuration,
		Suggestions:       genericSuggestions(),
		Confidence:        0.5,
	}

	if trimmed == "" {
		return parsed
	}

	working := trimmed
	lower := strings.ToLower(trimmed)

	// 1. Date: first matching pattern class wins; strip the match from the name.
	for _, re := range []*regexp.Regexp{relativeDateRe, weekdayRe, numericDateRe, monthDateRe} {
		if m := re.FindStringSubmatchIndex(working); m != nil {
			parsed.Date = strings.ToLower(working[m[2]:m[3]])
			working = working[:m[0]] + working[m[1]:]
			break
		}
	}

	// 2. Time: clock form beats day-part words.
	for _, re := range []*regexp.Regexp{clockTimeRe, dayPartRe} {
		if m := re.FindStringSubmatchIndex(working); m != nil {
			parsed.Time = strings.ToLower(working[m[2]:m[3]])
			working = working[:m[0]] + working[m[1]:]
			break
		}
	}

	// 3. Priority keywords.
	if containsAny(lower, highPriorityKeywords) {
		parsed.Priority = model.PriorityHigh
	} else if containsAny(lower, lowPriorityKeywords) {
		parsed.Priority = model.PriorityLow
	}

	// 4. People. "with X" and "X and me" are stripped from the name; a name
	// following a contact verb is captured but stays part of the task name.
	for _, re := range []*regexp.Regexp{withPersonRe, personAndMeRe} {
		for {
			m := re.FindStringSubmatchIndex(working)
			if m == nil {
				break
			}
			parsed.People = appendUnique(parsed.People, working[m[2]:m[3]])
			working = working[:m[0]] + working[m[1]:]
		}
	}
	for _, m := range contactVerbRe.FindAllStringSubmatch(working, -1) {
		parsed.People = appendUnique(parsed.People, m[1])
	}

	// 5. Category: first bucket with a keyword hit.
	for _, bucket := range categoryBuckets {
		if containsAny(lower, bucket.keywords) {
			parsed.Category = bucket.name
			break
		}
	}

	// 6. Tags are additive.
	for _, check := range tagChecks {
		if containsAny(lower, check.keywords) {
			parsed.Tags = append(parsed.Tags, check.tag)
		}
	}

	// 7. Duration estimate.
	for _, bucket := range durationBuckets {
		if containsAny(lower, bucket.keywords) {
			parsed.EstimatedDuration = bucket.duration
			break
		}
	}

	// 8. Subtask suggestions.
	parsed.Suggestions = suggestFor(lower, parsed.Category)

	// 9. Confidence scoring.
	confidence := 0.5
	if parsed.Date != "" {
		confidence += 0.2
	}
	if parsed.Time != "" {
		confidence += 0.1
	}
	if len(parsed.People) > 0 {
		confidence += 0.1
	}
	if len(trimmed) > 10 {
		confidence += 0.1
	}
	if confidence > 1.0 {
		confidence = 1.0
	}
	parsed.Confidence = confidence

	// 10. Residual task name cleanup.
	parsed.TaskName = cleanTaskName(working, trimmed)

	return parsed
}

// cleanTaskName collapses whitespace, trims dangling connectors, and strips a
// leading planner verb. Falls back to the trimmed input if nothing remains.
func cleanTaskName(working, fallback string) string {
	name := whitespaceRe.ReplaceAllString(working, " ")
	name = strings.Trim(name, " ,.-:")

	for _, suffix := range []string{" at", " on", " in", " by", " for"} {
		name = strings.TrimSuffix(name, suffix)
	}

	lowerName := strings.ToLower(name)
	for _, verb := range leadingVerbs {
		if strings.HasPrefix(lowerName, verb+" ") {
			name = strings.TrimSpace(name[len(verb)+1:])
			break
		}
	}

	if name == "" {
		return fallback
	}
	return name
}

func suggestFor(lower, category string) []string {
	switch {
	case strings.Contains(lower, "meeting"):
		return []string{"Prepare agenda", "Send calendar invites", "Book a room"}
	case strings.Contains(lower, "buy") || strings.Contains(lower, "purchase") || category == "shopping":
		return []string{"Make a shopping list", "Check the budget", "Compare prices"}
	case category == "health":
		return []string{"Book the appointment", "Set a reminder", "Check opening hours"}
	case category == "finance":
		return []string{"Gather the paperwork", "Check the due date", "Confirm the amount"}
	case category == "work":
		return []string{"Outline the deliverable", "Block focus time", "Share a status update"}
	}
	return genericSuggestions()
}

func genericSuggestions() []string {
	return []string{"Break it into smaller steps", "Set a reminder", "Add a deadline"}
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

func appendUnique(list []string, item string) []string {
	for _, existing := range list {
		if existing == item {
			return list
		}
	}
	return append(list, item)
}
