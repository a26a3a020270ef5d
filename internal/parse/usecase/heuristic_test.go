package usecase

import (
	"reflect"
	"testing"

	"smart-todo-backend/internal/model"
)

func TestHeuristicParse(t *testing.T) {
	t.Run("contact verb with date and time", func(t *testing.T) {
		parsed := heuristicParse("Call Sarah tomorrow at 3pm")

		if parsed.TaskName != "Call Sarah" {
			t.Errorf("expected task name 'Call Sarah', got %q", parsed.TaskName)
		}
		if parsed.Date != "tomorrow" {
			t.Errorf("expected date 'tomorrow', got %q", parsed.Date)
		}
		if parsed.Time != "3pm" {
			t.Errorf("expected time '3pm', got %q", parsed.Time)
		}
		if len(parsed.People) != 1 || parsed.People[0] != "Sarah" {
			t.Errorf("expected people [Sarah], got %v", parsed.People)
		}
		if parsed.Category != "personal" {
			t.Errorf("expected category personal, got %q", parsed.Category)
		}
		if parsed.Priority != model.PriorityMedium {
			t.Errorf("expected medium priority, got %q", parsed.Priority)
		}
		if parsed.Confidence < 0.8 {
			t.Errorf("expected confidence >= 0.8, got %v", parsed.Confidence)
		}
		if parsed.EstimatedDuration != "15 minutes" {
			t.Errorf("expected 15 minutes, got %q", parsed.EstimatedDuration)
		}
	})

	t.Run("urgency keywords raise priority", func(t *testing.T) {
		parsed := heuristicParse("urgent: finish report")

		if parsed.Priority != model.PriorityHigh {
			t.Errorf("expected high priority, got %q", parsed.Priority)
		}
		if parsed.Category != "work" {
			t.Errorf("expected category work, got %q", parsed.Category)
		}
		found := false
		for _, tag := range parsed.Tags {
			if tag == "urgent" {
				found = true
			}
		}
		if !found {
			t.Errorf("expected urgent tag, got %v", parsed.Tags)
		}
	})

	t.Run("low priority keywords", func(t *testing.T) {
		parsed := heuristicParse("sort old photos when possible")
		if parsed.Priority != model.PriorityLow {
			t.Errorf("expected low priority, got %q", parsed.Priority)
		}
	})

	t.Run("with-person is stripped from the task name", func(t *testing.T) {
		parsed := heuristicParse("Buy groceries with Anna on Friday")

		if parsed.TaskName != "Buy groceries" {
			t.Errorf("expected 'Buy groceries', got %q", parsed.TaskName)
		}
		if parsed.Date != "friday" {
			t.Errorf("expected date friday, got %q", parsed.Date)
		}
		if len(parsed.People) != 1 || parsed.People[0] != "Anna" {
			t.Errorf("expected people [Anna], got %v", parsed.People)
		}
		if parsed.Category != "shopping" {
			t.Errorf("expected category shopping, got %q", parsed.Category)
		}
	})

	t.Run("numeric and month dates", func(t *testing.T) {
		parsed := heuristicParse("Dentist appointment 12/05")
		if parsed.Date != "12/05" {
			t.Errorf("expected date 12/05, got %q", parsed.Date)
		}
		if parsed.Category != "health" {
			t.Errorf("expected category health, got %q", parsed.Category)
		}

		parsed = heuristicParse("File taxes by April 15")
		if parsed.Date != "april 15" {
			t.Errorf("expected date 'april 15', got %q", parsed.Date)
		}
		if parsed.Category != "finance" {
			t.Errorf("expected category finance, got %q", parsed.Category)
		}
	})

	t.Run("day part words count as time", func(t *testing.T) {
		parsed := heuristicParse("Water the plants in the morning")
		if parsed.Time != "morning" {
			t.Errorf("expected time morning, got %q", parsed.Time)
		}
	})

	t.Run("leading planner verb is stripped", func(t *testing.T) {
		parsed := heuristicParse("Schedule team meeting next week")
		if parsed.TaskName != "team meeting" {
			t.Errorf("expected 'team meeting', got %q", parsed.TaskName)
		}
		if parsed.Date != "next week" {
			t.Errorf("expected date 'next week', got %q", parsed.Date)
		}
	})

	t.Run("empty input yields neutral defaults", func(t *testing.T) {
		parsed := heuristicParse("  ")

		if parsed.Confidence != 0.5 {
			t.Errorf("expected confidence 0.5, got %v", parsed.Confidence)
		}
		if parsed.Priority != model.PriorityMedium {
			t.Errorf("expected medium priority, got %q", parsed.Priority)
		}
		if parsed.Category != "general" {
			t.Errorf("expected category general, got %q", parsed.Category)
		}
	})

	t.Run("deterministic for identical input", func(t *testing.T) {
		a := heuristicParse("Plan birthday dinner with Tom tomorrow evening")
		b := heuristicParse("Plan birthday dinner with Tom tomorrow evening")
		if !reflect.DeepEqual(a, b) {
			t.Errorf("expected identical results, got %+v vs %+v", a, b)
		}
	})

	t.Run("confidence stays within bounds", func(t *testing.T) {
		inputs := []string{
			"",
			"x",
			"Meet Alice and Bob with Carol tomorrow at 9:30am about the urgent project deadline",
			"buy milk",
		}
		for _, in := range inputs {
			parsed := heuristicParse(in)
			if parsed.Confidence < 0 || parsed.Confidence > 1 {
				t.Errorf("confidence out of bounds for %q: %v", in, parsed.Confidence)
			}
			if parsed.People == nil || parsed.Tags == nil || parsed.Suggestions == nil {
				t.Errorf("expected non-nil slices for %q", in)
			}
		}
	})

	t.Run("meeting suggestions", func(t *testing.T) {
		parsed := heuristicParse("Team meeting on Monday")
		if len(parsed.Suggestions) == 0 {
			t.Fatal("expected suggestions")
		}
		if parsed.Suggestions[0] != "Prepare agenda" {
			t.Errorf("expected meeting suggestions, got %v", parsed.Suggestions)
		}
	})
}
