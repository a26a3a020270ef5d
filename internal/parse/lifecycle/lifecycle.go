package lifecycle

import (
	"context"
	"time"

	"github.com/google/uuid"

	"smart-todo-backend/internal/model"
	"smart-todo-backend/internal/parse"
)

// Open starts a new parse session and returns its ID.
func (m *Manager) Open(sc model.Scope, feature model.Feature) string {
	id := uuid.NewString()
	m.sessions.Add(id, &session{scope: sc, feature: feature})
	return id
}

// Keystroke registers an input change. Any pending debounce and in-flight
// request for the session are dropped; when the new text clears the typing
// threshold, a parse is scheduled after the quiet period.
func (m *Manager) Keystroke(sessionID, text string) error {
	s, ok := m.sessions.Get(sessionID)
	if !ok {
		return ErrSessionNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrSessionNotFound
	}
	s.reset()

	if !meetsThreshold(text, m.cfg.MinCharsTyping, m.cfg.MinWords) {
		return nil
	}

	s.timer = time.AfterFunc(m.cfg.DebounceWindow, func() {
		m.dispatch(sessionID, s, text)
	})
	return nil
}

// Blur registers the field losing focus. The lower blur threshold applies and
// the parse fires immediately, skipping the debounce window.
func (m *Manager) Blur(sessionID, text string) error {
	s, ok := m.sessions.Get(sessionID)
	if !ok {
		return ErrSessionNotFound
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrSessionNotFound
	}
	s.reset()
	s.mu.Unlock()

	if !meetsThreshold(text, m.cfg.MinCharsBlur, m.cfg.MinWords) {
		return nil
	}

	m.dispatch(sessionID, s, text)
	return nil
}

// Latest returns the most recently applied result for the session.
func (m *Manager) Latest(sessionID string) (model.ParsedTask, bool) {
	s, ok := m.sessions.Get(sessionID)
	if !ok {
		return model.ParsedTask{}, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.latest, s.has
}

// Close tears the session down and drops it from the table.
func (m *Manager) Close(sessionID string) {
	if s, ok := m.sessions.Peek(sessionID); ok {
		s.shutdown()
	}
	m.sessions.Remove(sessionID)
}

// dispatch launches one parse request. Each request gets the next sequence
// number; a response is applied only if no later request has been applied and
// its context was not cancelled in the meantime.
func (m *Manager) dispatch(sessionID string, s *session, text string) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.reset()
	s.nextSeq++
	seq := s.nextSeq
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	scope := s.scope
	feature := s.feature
	s.mu.Unlock()

	go func() {
		out, err := m.uc.Parse(ctx, scope, parse.ParseInput{Text: text, Feature: feature})
		if err != nil {
			if ctx.Err() != nil {
				m.l.Debugf(ctx, "parse.lifecycle.dispatch: request %d superseded", seq)
				return
			}
			m.l.Errorf(ctx, "parse.lifecycle.dispatch: request %d failed: %v", seq, err)
			return
		}

		s.mu.Lock()
		stale := seq <= s.applied || ctx.Err() != nil || s.closed
		if !stale {
			s.applied = seq
			s.latest = out.Parsed
			s.has = true
		}
		s.mu.Unlock()

		if stale {
			m.l.Debugf(ctx, "parse.lifecycle.dispatch: dropping stale result %d", seq)
			return
		}
		if m.onResult != nil {
			m.onResult(Result{SessionID: sessionID, Seq: seq, Parsed: out.Parsed})
		}
	}()
}
