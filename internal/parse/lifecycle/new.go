package lifecycle

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"smart-todo-backend/internal/model"
	"smart-todo-backend/internal/parse"
	pkgLog "smart-todo-backend/pkg/log"
)

// Result is one applied parse outcome, tagged with its session and sequence
// number. Consumers can rely on Seq increasing monotonically per session.
type Result struct {
	SessionID string
	Seq       uint64
	Parsed    model.ParsedTask
}

// Config tunes input thresholds and session housekeeping.
type Config struct {
	DebounceWindow time.Duration // quiet period after the last keystroke
	MinCharsTyping int           // trimmed length must exceed this while typing
	MinCharsBlur   int           // trimmed length must exceed this on blur
	MinWords       int           // minimum word count for both triggers
	SessionLimit   int           // max tracked sessions
	SessionIdleTTL time.Duration // idle sessions are dropped after this
}

const (
	defaultDebounceWindow = 1200 * time.Millisecond
	defaultMinCharsTyping = 8
	defaultMinCharsBlur   = 5
	defaultMinWords       = 2
	defaultSessionLimit   = 1000
	defaultSessionIdleTTL = 10 * time.Minute
)

// Manager tracks one parse session per input field and decides when typed
// text is worth a parse request. It debounces keystrokes, cancels superseded
// in-flight requests, and guarantees stale responses are never applied.
type Manager struct {
	l        pkgLog.Logger
	uc       parse.UseCase
	cfg      Config
	sessions *expirable.LRU[string, *session]
	onResult func(Result)
}

// NewManager creates a lifecycle manager. onResult is invoked for every
// applied parse result and may be nil.
func NewManager(l pkgLog.Logger, uc parse.UseCase, cfg Config, onResult func(Result)) *Manager {
	if cfg.DebounceWindow <= 0 {
		cfg.DebounceWindow = defaultDebounceWindow
	}
	if cfg.MinCharsTyping <= 0 {
		cfg.MinCharsTyping = defaultMinCharsTyping
	}
	if cfg.MinCharsBlur <= 0 {
		cfg.MinCharsBlur = defaultMinCharsBlur
	}
	if cfg.MinWords <= 0 {
		cfg.MinWords = defaultMinWords
	}
	if cfg.SessionLimit <= 0 {
		cfg.SessionLimit = defaultSessionLimit
	}
	if cfg.SessionIdleTTL <= 0 {
		cfg.SessionIdleTTL = defaultSessionIdleTTL
	}

	m := &Manager{
		l:        l,
		uc:       uc,
		cfg:      cfg,
		onResult: onResult,
	}
	m.sessions = expirable.NewLRU[string, *session](cfg.SessionLimit, func(_ string, s *session) {
		s.shutdown()
	}, cfg.SessionIdleTTL)
	return m
}
