package usecase

import (
	"context"
	"errors"
	"time"

	"smart-todo-backend/internal/model"
	"smart-todo-backend/internal/parse"
	"smart-todo-backend/pkg/modelclient"
)

// modelParseWithRetry retries transient failures with exponential backoff.
// Each attempt gets its own deadline, so a timed-out call is retried like any
// other transient failure. Validation and rate-limit failures are never
// retried, and cancelling the parent context stops the loop immediately.
func (uc implUseCase) modelParseWithRetry(ctx context.Context, input parse.ParseInput, timeout time.Duration) (model.ParsedTask, error) {
	var lastErr error
	for attempt := 0; attempt <= uc.retry; attempt++ {
		if attempt > 0 {
			delay := uc.retryDelay * time.Duration(1<<(attempt-1))
			uc.l.Warnf(ctx, "parse.usecase.modelParseWithRetry: attempt %d failed: %v, retrying in %v", attempt, lastErr, delay)
			select {
			case <-ctx.Done():
				return model.ParsedTask{}, lastErr
			case <-time.After(delay):
			}
		}

		attemptCtx, cancel := context.WithTimeout(ctx, timeout)
		parsed, err := uc.modelParse(attemptCtx, input)
		cancel()
		if err == nil {
			return parsed, nil
		}
		lastErr = err

		var me *modelclient.ModelError
		if !errors.As(err, &me) || !me.Kind.Retryable() {
			return model.ParsedTask{}, err
		}
		if ctx.Err() != nil {
			return model.ParsedTask{}, err
		}
	}
	return model.ParsedTask{}, lastErr
}

// modelParse runs one model-backed parse call and normalizes the reply.
func (uc implUseCase) modelParse(ctx context.Context, input parse.ParseInput) (model.ParsedTask, error) {
	extra := uc.buildContext(ctx, input)
	req := modelclient.BuildParseRequest(string(input.Feature), input.Text, extra)

	resp, err := uc.model.Parse(ctx, req)
	if err != nil {
		return model.ParsedTask{}, err
	}

	raw := resp.Parsed
	if len(raw) == 0 {
		raw = resp.Breakdown
	}

	payload, err := modelclient.DecodePayload(raw)
	if err != nil {
		return model.ParsedTask{}, err
	}

	parsed := normalizePayload(payload, input.Text)
	if len(parsed.Suggestions) == 0 && len(resp.Suggestions) > 0 {
		parsed.Suggestions = resp.Suggestions
	}
	return parsed, nil
}

// buildContext assembles the extra context for the model call. Smart-scheduling
// requests are enriched with the user's busy windows for the coming week.
func (uc implUseCase) buildContext(ctx context.Context, input parse.ParseInput) map[string]interface{} {
	extra := make(map[string]interface{}, len(input.Context)+1)
	for k, v := range input.Context {
		extra[k] = v
	}

	if input.Feature != model.FeatureSmartScheduling || uc.calendar == nil {
		return extra
	}

	now := time.Now()
	windows, err := uc.calendar.BusyWindows(ctx, uc.calendarID, now, now.AddDate(0, 0, 7))
	if err != nil {
		uc.l.Warnf(ctx, "parse.usecase.buildContext.BusyWindows: %v", err)
		return extra
	}

	busy := make([]map[string]string, 0, len(windows))
	for _, w := range windows {
		busy = append(busy, map[string]string{
			"start": w.Start.Format(time.RFC3339),
			"end":   w.End.Format(time.RFC3339),
		})
	}
	extra["busyWindows"] = busy
	return extra
}

// normalizePayload fills wire-level absences with defaults and clamps the
// confidence into [0, 1].
func normalizePayload(payload *modelclient.ParsedPayload, fallbackName string) model.ParsedTask {
	parsed := model.ParsedTask{
		TaskName:          payload.TaskName,
		Date:              payload.Date,
		Time:              payload.Time,
		Priority:          model.NormalizePriority(payload.Priority),
		People:            payload.People,
		Category:          payload.Category,
		Tags:              payload.Tags,
		EstimatedDuration: payload.EstimatedDuration,
		Suggestions:       payload.Suggestions,
		ModelBacked:       true,
	}

	if parsed.TaskName == "" {
		parsed.TaskName = fallbackName
	}
	if parsed.Category == "" {
		parsed.Category = "general"
	}
	if parsed.People == nil {
		parsed.People = []string{}
	}
	if parsed.Tags == nil {
		parsed.Tags = []string{}
	}
	if parsed.Suggestions == nil {
		parsed.Suggestions = []string{}
	}

	confidence := 0.5
	if payload.Confidence != nil {
		confidence = *payload.Confidence
	}
	if confidence < 0 {
		confidence = 0
	}
	if confidence > 1 {
		confidence = 1
	}
	parsed.Confidence = confidence

	return parsed
}
