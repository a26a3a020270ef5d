package usecase

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"smart-todo-backend/internal/model"
	"smart-todo-backend/internal/parse"
	"smart-todo-backend/pkg/gcalendar"
	pkgLog "smart-todo-backend/pkg/log"
	"smart-todo-backend/pkg/modelclient"
)

type implUseCase struct {
	l            pkgLog.Logger
	model        modelclient.IModelClient
	calendar     gcalendar.ICalendar
	calendarID   string
	cache        *expirable.LRU[string, model.ParsedTask]
	quickMatches []quickMatch
	timeout      time.Duration
	retry        int
	retryDelay   time.Duration
}

// Config tunes the parse pipeline. Zero values fall back to sane defaults.
type Config struct {
	CacheSize      int
	CacheTTL       time.Duration
	Timeout        time.Duration
	RetryAttempts  int
	RetryBaseDelay time.Duration
	CalendarID     string
}

const (
	defaultCacheSize      = 256
	defaultCacheTTL       = 5 * time.Minute
	defaultRetryAttempts  = 2
	defaultRetryBaseDelay = time.Second
)

// New creates the parse use case. The model client and calendar client may be
// nil: parsing then runs on heuristics alone.
func New(l pkgLog.Logger, mc modelclient.IModelClient, cal gcalendar.ICalendar, cfg Config) parse.UseCase {
	if cfg.CacheSize <= 0 {
		cfg.CacheSize = defaultCacheSize
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = defaultCacheTTL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = modelclient.DefaultTimeout
	}
	if cfg.RetryAttempts <= 0 {
		cfg.RetryAttempts = defaultRetryAttempts
	}
	if cfg.RetryBaseDelay <= 0 {
		cfg.RetryBaseDelay = defaultRetryBaseDelay
	}

	return implUseCase{
		l:            l,
		model:        mc,
		calendar:     cal,
		calendarID:   cfg.CalendarID,
		cache:        expirable.NewLRU[string, model.ParsedTask](cfg.CacheSize, nil, cfg.CacheTTL),
		quickMatches: defaultQuickMatches(),
		timeout:      cfg.Timeout,
		retry:        cfg.RetryAttempts,
		retryDelay:   cfg.RetryBaseDelay,
	}
}
