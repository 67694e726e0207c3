package mcpserver

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/erraggy/tscodegen/config"
)

// serverConfig holds all configurable MCP server defaults.
// Loaded once at startup from environment variables via loadConfig().
type serverConfig struct {
	// Generator configuration applied to every tool call before per-call overrides.
	ConfigFile         string
	SkipPathPrefix     string
	FilenameConvention string

	// Document processing.
	Concurrency   int
	MaxInlineSize int64

	// Document cache.
	CacheEnabled bool
	CacheMaxSize int
	CacheTTL     time.Duration

	// List output limits.
	ListLimit int
	MaxLimit  int
}

// cfg is the active server configuration, initialized at package load time.
var cfg = loadConfig()

// loadConfig reads configuration from TSCODEGEN_* environment variables.
// Invalid values log a warning and fall back to the hardcoded default.
func loadConfig() *serverConfig {
	return &serverConfig{
		ConfigFile:         os.Getenv("TSCODEGEN_CONFIG_FILE"),
		SkipPathPrefix:     os.Getenv("TSCODEGEN_SKIP_PATH_PREFIX"),
		FilenameConvention: envConvention("TSCODEGEN_FILENAME_CONVENTION"),
		Concurrency:        envInt("TSCODEGEN_CONCURRENCY", 8),
		MaxInlineSize:      envInt64("TSCODEGEN_MAX_INLINE_SIZE", 10*1024*1024),
		CacheEnabled:       envBool("TSCODEGEN_CACHE_ENABLED", true),
		CacheMaxSize:       envInt("TSCODEGEN_CACHE_MAX_SIZE", 10),
		CacheTTL:           envDuration("TSCODEGEN_CACHE_TTL", 15*time.Minute),
		ListLimit:          envInt("TSCODEGEN_LIST_LIMIT", 100),
		MaxLimit:           envInt("TSCODEGEN_MAX_LIMIT", 1000),
	}
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("invalid bool env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return b
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return n
}

func envInt64(key string, fallback int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n <= 0 {
		slog.Warn("invalid int64 env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return n
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		slog.Warn("invalid duration env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return d
}

func envConvention(key string) string {
	v := os.Getenv(key)
	if v == "" {
		return ""
	}
	if !config.FilenameConvention(v).IsValid() {
		slog.Warn("invalid filename convention env var, ignoring", "key", key, "value", v, "valid", config.ValidFilenameConventions())
		return ""
	}
	return v
}
