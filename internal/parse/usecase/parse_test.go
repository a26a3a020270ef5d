package usecase_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"smart-todo-backend/internal/model"
	"smart-todo-backend/internal/parse"
	"smart-todo-backend/internal/parse/usecase"
	"smart-todo-backend/pkg/gcalendar"
	"smart-todo-backend/pkg/modelclient"
)

// mock dependencies

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

type mockCalendar struct {
	windows []gcalendar.BusyWindow
	err     error
}

func (m *mockCalendar) BusyWindows(ctx context.Context, calendarID string, from, to time.Time) ([]gcalendar.BusyWindow, error) {
	return m.windows, m.err
}

func TestParse(t *testing.T) {
	sc := model.Scope{UserID: "u1"}

	var flakyCalls int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req modelclient.ParseRequest
		json.NewDecoder(r.Body).Decode(&req)

		switch {
		case strings.Contains(req.UserInput, "error_model_500"):
			w.WriteHeader(http.StatusInternalServerError)

		case strings.Contains(req.UserInput, "slow_model"):
			time.Sleep(300 * time.Millisecond)
			w.Write([]byte(`{"success":true,"parsed":{"taskName":"slow","confidence":0.9}}`))

		case strings.Contains(req.UserInput, "flaky_model"):
			if atomic.AddInt32(&flakyCalls, 1) == 1 {
				time.Sleep(300 * time.Millisecond)
			}
			w.Write([]byte(`{"success":true,"parsed":{"taskName":"Recovered","confidence":0.9}}`))

		case strings.Contains(req.UserInput, "fenced_model"):
			w.Write([]byte(`{"success":true,"parsed":"` + "```json\\n{\\\"taskName\\\":\\\"Review PR\\\",\\\"priority\\\":\\\"high\\\",\\\"confidence\\\":0.85}\\n```" + `"}`))

		case req.Feature == "smart-scheduling":
			w.Write([]byte(`{"success":true,"parsed":{"taskName":"Scheduled","date":"2026-09-02","time":"10am","confidence":0.8}}`))

		default:
			w.Write([]byte(`{"success":true,"parsed":{"taskName":"Submit expense report","date":"tomorrow","priority":"HIGH","people":["Lena"],"category":"work","confidence":0.92}}`))
		}
	}))
	defer ts.Close()

	client := modelclient.NewClient(ts.URL, "test-key")
	fastRetry := usecase.Config{RetryBaseDelay: time.Millisecond}

	t.Run("model success", func(t *testing.T) {
		uc := usecase.New(&mockLogger{}, client, nil, usecase.Config{})

		out, err := uc.Parse(context.Background(), sc, parse.ParseInput{
			Text:    "Submit expense report tomorrow",
			Feature: model.FeatureSmartParse,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Parsed.ModelBacked {
			t.Error("expected model-backed result")
		}
		if out.Parsed.TaskName != "Submit expense report" {
			t.Errorf("unexpected task name %q", out.Parsed.TaskName)
		}
		if out.Parsed.Priority != model.PriorityHigh {
			t.Errorf("expected normalized high priority, got %q", out.Parsed.Priority)
		}
		if out.Parsed.Confidence != 0.92 {
			t.Errorf("expected confidence 0.92, got %v", out.Parsed.Confidence)
		}
	})

	t.Run("fenced payload is repaired", func(t *testing.T) {
		uc := usecase.New(&mockLogger{}, client, nil, usecase.Config{})

		out, err := uc.Parse(context.Background(), sc, parse.ParseInput{
			Text:    "fenced_model please",
			Feature: model.FeatureSmartParse,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Parsed.TaskName != "Review PR" {
			t.Errorf("expected repaired task name, got %q", out.Parsed.TaskName)
		}
	})

	t.Run("model failure degrades silently for smart-parse", func(t *testing.T) {
		uc := usecase.New(&mockLogger{}, client, nil, fastRetry)

		out, err := uc.Parse(context.Background(), sc, parse.ParseInput{
			Text:    "error_model_500 call Sarah tomorrow",
			Feature: model.FeatureSmartParse,
		})
		if err != nil {
			t.Fatalf("expected heuristic fallback, got error: %v", err)
		}
		if out.Parsed.ModelBacked {
			t.Error("fallback result must not be model-backed")
		}
		if out.Parsed.Date != "tomorrow" {
			t.Errorf("expected heuristic date, got %q", out.Parsed.Date)
		}
	})

	t.Run("model failure surfaces for other features", func(t *testing.T) {
		uc := usecase.New(&mockLogger{}, client, nil, fastRetry)

		_, err := uc.Parse(context.Background(), sc, parse.ParseInput{
			Text:    "error_model_500 breakdown",
			Feature: model.FeatureTaskBreakdown,
		})
		if err == nil {
			t.Fatal("expected error for non-degradable feature")
		}
	})

	t.Run("timed-out attempt is retried", func(t *testing.T) {
		uc := usecase.New(&mockLogger{}, client, nil, fastRetry)

		out, err := uc.Parse(context.Background(), sc, parse.ParseInput{
			Text:    "flaky_model draft the report",
			Feature: model.FeatureSmartParse,
			Timeout: 50 * time.Millisecond,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Parsed.ModelBacked {
			t.Error("retry after a timed-out attempt must reach the model")
		}
		if out.Parsed.TaskName != "Recovered" {
			t.Errorf("unexpected task name %q", out.Parsed.TaskName)
		}
	})

	t.Run("timeout degrades silently for smart-parse", func(t *testing.T) {
		uc := usecase.New(&mockLogger{}, client, nil, fastRetry)

		start := time.Now()
		out, err := uc.Parse(context.Background(), sc, parse.ParseInput{
			Text:    "slow_model finish slides",
			Feature: model.FeatureSmartParse,
			Timeout: 50 * time.Millisecond,
		})
		if err != nil {
			t.Fatalf("expected heuristic fallback on timeout, got: %v", err)
		}
		if out.Parsed.ModelBacked {
			t.Error("timed-out call must fall back to heuristics")
		}
		if elapsed := time.Since(start); elapsed > 250*time.Millisecond {
			t.Errorf("fallback took too long: %v", elapsed)
		}
	})

	t.Run("quick match answers without the model", func(t *testing.T) {
		// No model configured at all: a quick match must still answer.
		uc := usecase.New(&mockLogger{}, nil, nil, usecase.Config{})

		out, err := uc.Parse(context.Background(), sc, parse.ParseInput{
			Text:    "Buy Milk",
			Feature: model.FeatureSmartParse,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Parsed.FastResponse {
			t.Error("expected fast response flag")
		}
		if out.Parsed.TaskName != "Milk" {
			t.Errorf("expected prefix-stripped task name, got %q", out.Parsed.TaskName)
		}
		if out.Parsed.Category != "shopping" {
			t.Errorf("expected shopping category, got %q", out.Parsed.Category)
		}
		if out.Parsed.Confidence != 0.9 {
			t.Errorf("expected confidence 0.9, got %v", out.Parsed.Confidence)
		}
	})

	t.Run("second identical request answers from cache", func(t *testing.T) {
		uc := usecase.New(&mockLogger{}, client, nil, usecase.Config{})
		input := parse.ParseInput{Text: "Plan sprint review next week", Feature: model.FeatureSmartParse}

		first, err := uc.Parse(context.Background(), sc, input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if first.Parsed.Cached {
			t.Error("first response must not be cached")
		}

		second, err := uc.Parse(context.Background(), sc, input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !second.Parsed.Cached {
			t.Error("second response must come from cache")
		}
	})

	t.Run("cache entries expire", func(t *testing.T) {
		uc := usecase.New(&mockLogger{}, client, nil, usecase.Config{CacheTTL: 20 * time.Millisecond})
		input := parse.ParseInput{Text: "Water the office plants", Feature: model.FeatureSmartParse}

		if _, err := uc.Parse(context.Background(), sc, input); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		time.Sleep(40 * time.Millisecond)

		out, err := uc.Parse(context.Background(), sc, input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Parsed.Cached {
			t.Error("expired entry must not be served from cache")
		}
	})

	t.Run("empty input is rejected", func(t *testing.T) {
		uc := usecase.New(&mockLogger{}, client, nil, usecase.Config{})

		_, err := uc.Parse(context.Background(), sc, parse.ParseInput{Text: "   ", Feature: model.FeatureSmartParse})
		if err != parse.ErrEmptyInput {
			t.Errorf("expected ErrEmptyInput, got %v", err)
		}
	})

	t.Run("unknown feature is rejected", func(t *testing.T) {
		uc := usecase.New(&mockLogger{}, client, nil, usecase.Config{})

		_, err := uc.Parse(context.Background(), sc, parse.ParseInput{Text: "anything", Feature: "mystery"})
		if err != parse.ErrUnknownFeature {
			t.Errorf("expected ErrUnknownFeature, got %v", err)
		}
	})

	t.Run("scheduling tolerates calendar failure", func(t *testing.T) {
		cal := &mockCalendar{err: context.DeadlineExceeded}
		uc := usecase.New(&mockLogger{}, client, cal, usecase.Config{})

		out, err := uc.Parse(context.Background(), sc, parse.ParseInput{
			Text:    "Find a slot for the retro",
			Feature: model.FeatureSmartScheduling,
		})
		if err != nil {
			t.Fatalf("calendar failure must not break scheduling: %v", err)
		}
		if out.Parsed.TaskName != "Scheduled" {
			t.Errorf("unexpected task name %q", out.Parsed.TaskName)
		}
	})
}
