package config

import (
	"log"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/floor_assignment_app/internal/core/domain"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL       string
	Port              string
	IsProduction      bool
	EnableDBCheck     bool
	LogLevel          slog.Level
	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string
	SessionCookieName string
	MigrationsPath    string

	// Location used to decide what "today" is for the board.
	Timezone *time.Location

	// Public display
	DisplayMode            string
	DisplayDefaultRows     int
	DisplayDefaultCols     int
	DisplayPageInterval    time.Duration
	DisplayRefreshInterval time.Duration

	// Rate limits in ulule/limiter formatted form, e.g. "5-M".
	LoginRateLimit  string
	PublicRateLimit string

	CORSAllowedOrigins []string
	PosthogAPIKey      string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("JWT_SECRET", "")
	viper.SetDefault("JWT_EXPIRY_DURATION", "12h")
	viper.SetDefault("JWT_ISSUER", "floor-board")
	viper.SetDefault("SESSION_COOKIE_NAME", "floor_session")
	viper.SetDefault("MIGRATIONS_PATH", "file://migrations")
	viper.SetDefault("TIMEZONE", "Asia/Tokyo")
	viper.SetDefault("DISPLAY_MODE", "workplace")
	viper.SetDefault("DISPLAY_DEFAULT_ROWS", 12)
	viper.SetDefault("DISPLAY_DEFAULT_COLS", 2)
	viper.SetDefault("DISPLAY_PAGE_INTERVAL", "10s")
	viper.SetDefault("DISPLAY_REFRESH_INTERVAL", "30s")
	viper.SetDefault("LOGIN_RATE_LIMIT", "5-M")
	viper.SetDefault("PUBLIC_RATE_LIMIT", "120-M")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "")
	viper.SetDefault("POSTHOG_API_KEY", "")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")
	cfg.LogLevel = parseLogLevel(viper.GetString("LOG_LEVEL"))

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = "a-very-secret-key-should-be-longer-and-random" // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}
	cfg.JWTExpiryDuration = durationOrDefault("JWT_EXPIRY_DURATION", 12*time.Hour)
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")
	cfg.SessionCookieName = viper.GetString("SESSION_COOKIE_NAME")
	cfg.MigrationsPath = viper.GetString("MIGRATIONS_PATH")

	tzName := viper.GetString("TIMEZONE")
	loc, err := time.LoadLocation(tzName)
	if err != nil {
		log.Printf("Warning: Invalid value for TIMEZONE ('%s'). Defaulting to UTC.\n", tzName)
		loc = time.UTC
	}
	cfg.Timezone = loc

	cfg.DisplayMode = viper.GetString("DISPLAY_MODE")
	cfg.DisplayDefaultRows = gridSizeOrDefault("DISPLAY_DEFAULT_ROWS", 12)
	cfg.DisplayDefaultCols = gridSizeOrDefault("DISPLAY_DEFAULT_COLS", 2)
	cfg.DisplayPageInterval = durationOrDefault("DISPLAY_PAGE_INTERVAL", 10*time.Second)
	cfg.DisplayRefreshInterval = durationOrDefault("DISPLAY_REFRESH_INTERVAL", 30*time.Second)

	cfg.LoginRateLimit = viper.GetString("LOGIN_RATE_LIMIT")
	cfg.PublicRateLimit = viper.GetString("PUBLIC_RATE_LIMIT")
	cfg.CORSAllowedOrigins = splitList(viper.GetString("CORS_ALLOWED_ORIGINS"))
	cfg.PosthogAPIKey = viper.GetString("POSTHOG_API_KEY")

	return cfg, nil
}

// durationOrDefault parses key as a duration (e.g. "60m", "1h"), falling back to def.
func durationOrDefault(key string, def time.Duration) time.Duration {
	raw := viper.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		if raw != "" {
			log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, def.String())
		}
		return def
	}
	return d
}

// gridSizeOrDefault reads a grid dimension, which must lie in [1, domain.MaxGridSize].
func gridSizeOrDefault(key string, def int) int {
	v := viper.GetInt(key)
	if v < 1 || v > domain.MaxGridSize {
		log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %d.\n", key, viper.GetString(key), def)
		return def
	}
	return v
}

func parseLogLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		log.Printf("Warning: Invalid value for LOG_LEVEL ('%s'). Defaulting to info.\n", s)
		return slog.LevelInfo
	}
	return level
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
