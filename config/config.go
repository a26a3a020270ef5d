package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// External collaborators
	Model    ModelConfig
	Supabase SupabaseConfig
	Calendar CalendarConfig

	// Parse pipeline tuning
	Parse ParseConfig
	Chat  ChatConfig

	// AI endpoint protection
	RateLimit RateLimitConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// ModelConfig configures the hosted model endpoint used for AI task parsing.
// An empty URL disables model-backed parsing entirely; the heuristic parser
// then serves every request.
type ModelConfig struct {
	URL     string
	APIKey  string
	Timeout time.Duration // per-call timeout for inline parsing
}

// SupabaseConfig configures the hosted relational backend.
type SupabaseConfig struct {
	URL        string
	ServiceKey string
	TasksTable string
}

// CalendarConfig configures the optional Google Calendar lookup that enriches
// the smart-scheduling feature context.
type CalendarConfig struct {
	CredentialsPath string
	CalendarID      string
	Timezone        string
}

// ParseConfig tunes the parse pipeline: lifecycle debouncing, retries, caching.
type ParseConfig struct {
	DebounceWindow time.Duration
	MinCharsTyping int
	MinCharsBlur   int
	MinWords       int
	RetryAttempts  int
	RetryBaseDelay time.Duration
	CacheTTL       time.Duration
	CacheSize      int
	SessionIdleTTL time.Duration
}

// ChatConfig tunes the conversational assistant relay.
type ChatConfig struct {
	Timeout time.Duration
}

type RateLimitConfig struct {
	PerMin int
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Model endpoint
	cfg.Model.URL = viper.GetString("model.url")
	cfg.Model.APIKey = viper.GetString("model.api_key")
	cfg.Model.Timeout = viper.GetDuration("model.timeout")
	if key := viper.GetString("model_api_key"); key != "" {
		cfg.Model.APIKey = key
	}

	// Supabase
	cfg.Supabase.URL = viper.GetString("supabase.url")
	cfg.Supabase.ServiceKey = viper.GetString("supabase.service_key")
	cfg.Supabase.TasksTable = viper.GetString("supabase.tasks_table")
	if supabaseURL := viper.GetString("supabase_url"); supabaseURL != "" {
		cfg.Supabase.URL = supabaseURL
	}
	if supabaseKey := viper.GetString("supabase_service_key"); supabaseKey != "" {
		cfg.Supabase.ServiceKey = supabaseKey
	}

	// Google Calendar (optional)
	cfg.Calendar.CredentialsPath = viper.GetString("calendar.credentials_path")
	cfg.Calendar.CalendarID = viper.GetString("calendar.calendar_id")
	cfg.Calendar.Timezone = viper.GetString("calendar.timezone")

	// Parse pipeline
	cfg.Parse.DebounceWindow = viper.GetDuration("parse.debounce_window")
	cfg.Parse.MinCharsTyping = viper.GetInt("parse.min_chars_typing")
	cfg.Parse.MinCharsBlur = viper.GetInt("parse.min_chars_blur")
	cfg.Parse.MinWords = viper.GetInt("parse.min_words")
	cfg.Parse.RetryAttempts = viper.GetInt("parse.retry_attempts")
	cfg.Parse.RetryBaseDelay = viper.GetDuration("parse.retry_base_delay")
	cfg.Parse.CacheTTL = viper.GetDuration("parse.cache_ttl")
	cfg.Parse.CacheSize = viper.GetInt("parse.cache_size")
	cfg.Parse.SessionIdleTTL = viper.GetDuration("parse.session_idle_ttl")

	// Chat
	cfg.Chat.Timeout = viper.GetDuration("chat.timeout")

	// Rate limiting
	cfg.RateLimit.PerMin = viper.GetInt("rate_limit.per_min")

	if cfg.Supabase.URL == "" {
		return nil, fmt.Errorf("supabase.url is required - tasks cannot be persisted without the hosted backend")
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("model.timeout", "5s")
	viper.SetDefault("supabase.tasks_table", "tasks")
	viper.SetDefault("calendar.timezone", "UTC")

	// Parse pipeline defaults mirror the web client's behavior.
	viper.SetDefault("parse.debounce_window", "1200ms")
	viper.SetDefault("parse.min_chars_typing", 8)
	viper.SetDefault("parse.min_chars_blur", 5)
	viper.SetDefault("parse.min_words", 2)
	viper.SetDefault("parse.retry_attempts", 2)
	viper.SetDefault("parse.retry_base_delay", "1s")
	viper.SetDefault("parse.cache_ttl", "5m")
	viper.SetDefault("parse.cache_size", 256)
	viper.SetDefault("parse.session_idle_ttl", "10m")

	viper.SetDefault("chat.timeout", "30s")
	viper.SetDefault("rate_limit.per_min", 60)
}
