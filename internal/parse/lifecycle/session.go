package lifecycle

import (
	"context"
	"strings"
	"sync"
	"time"

	"smart-todo-backend/internal/model"
)

// session holds the per-input-field parse state. All fields are guarded by mu.
type session struct {
	mu      sync.Mutex
	scope   model.Scope
	feature model.Feature
	timer   *time.Timer
	cancel  context.CancelFunc
	nextSeq uint64
	applied uint64
	latest  model.ParsedTask
	has     bool
	closed  bool
}

// reset stops the pending debounce timer and cancels any in-flight request.
// Caller must hold mu.
func (s *session) reset() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

// shutdown tears the session down. Safe to call without holding mu.
func (s *session) shutdown() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reset()
	s.closed = true
}

// meetsThreshold reports whether text is substantial enough to parse. The
// trimmed length must exceed minChars; anything at or below it is noise.
func meetsThreshold(text string, minChars, minWords int) bool {
	trimmed := strings.TrimSpace(text)
	if len(trimmed) <= minChars {
		return false
	}
	return len(strings.Fields(trimmed)) >= minWords
}
