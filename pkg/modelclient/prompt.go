package modelclient

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// Feature prompt templates. The wording is deliberately configurable: callers
// may override any entry before wiring the client. %s receives the user input.
var PromptTemplates = map[string]string{
	"smart-parse": `Extract structured task attributes from the input below.
Return ONLY a JSON object with keys: taskName, date, time, priority (low|medium|high),
people (array), category, tags (array), estimatedDuration, suggestions (array of
subtask titles), confidence (0..1). No markdown, no prose.

Input: %s`,

	"task-breakdown": `Break the task below into 3-6 concrete subtasks.
Return ONLY a JSON object with keys: taskName, suggestions (array of subtask titles),
confidence (0..1). No markdown, no prose.

Task: %s`,

	"smart-prioritize": `Assess the urgency of the task below.
Return ONLY a JSON object with keys: taskName, priority (low|medium|high),
tags (array), confidence (0..1). No markdown, no prose.

Task: %s`,

	"contextual-suggestions": `Suggest 3-5 helpful follow-up actions for the task below.
Return ONLY a JSON object with keys: suggestions (array), confidence (0..1).
No markdown, no prose.

Task: %s`,

	"smart-scheduling": `Propose a date and time for the task below, avoiding the busy
windows listed in the context. Return ONLY a JSON object with keys: taskName, date,
time, estimatedDuration, confidence (0..1). No markdown, no prose.

Task: %s`,
}

// BuildParseRequest assembles the wire request for one feature call, folding
// the rendered instruction template into the context object.
func BuildParseRequest(feature, userInput string, extra map[string]interface{}) ParseRequest {
	ctx := make(map[string]interface{}, len(extra)+1)
	for k, v := range extra {
		ctx[k] = v
	}
	if tpl, ok := PromptTemplates[feature]; ok {
		ctx["instructions"] = fmt.Sprintf(tpl, userInput)
	}
	return ParseRequest{
		UserInput: userInput,
		Feature:   feature,
		Context:   ctx,
	}
}

var codeFenceRe = regexp.MustCompile("(?s)```(?:json)?\\s*(.+?)\\s*```")

// DecodePayload parses a model reply into a ParsedPayload. It first tries the
// raw message directly; when that fails it strips code fences and falls back to
// the first {...} object substring before giving up.
func DecodePayload(raw json.RawMessage) (*ParsedPayload, error) {
	if len(raw) == 0 {
		return nil, NewModelError(KindValidation, fmt.Errorf("empty model payload"))
	}

	var payload ParsedPayload
	if err := json.Unmarshal(raw, &payload); err == nil {
		return &payload, nil
	}

	// The payload may arrive as a quoted string of model text.
	var text string
	if err := json.Unmarshal(raw, &text); err != nil {
		text = string(raw)
	}

	repaired := extractJSONObject(text)
	if repaired == "" {
		return nil, NewModelError(KindValidation, fmt.Errorf("no JSON object found in model output"))
	}

	if err := json.Unmarshal([]byte(repaired), &payload); err != nil {
		return nil, NewModelError(KindValidation, fmt.Errorf("failed to parse repaired model output: %w", err))
	}
	return &payload, nil
}

// extractJSONObject locates the first {...} object in model text, stripping
// markdown code fences and surrounding prose first.
func extractJSONObject(text string) string {
	if matches := codeFenceRe.FindStringSubmatch(text); len(matches) > 1 {
		text = matches[1]
	}

	start := strings.Index(text, "{")
	if start == -1 {
		return ""
	}

	depth := 0
	for i := start; i < len(text); i++ {
		switch text[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return strings.TrimSpace(text[start : i+1])
			}
		}
	}
	return ""
}
