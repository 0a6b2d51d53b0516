package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Environment string `validate:"required,oneof=dev staging prod test"`
	LogLevel    string `validate:"required,oneof=debug info warn warning error"`
	LogFormat   string `validate:"required,oneof=json text"`
	LogDir      string
	Version     string

	Port           int    `validate:"min=1,max=65535"`
	APIKey         string `validate:"required"`
	TrustedProxies []string

	DBDriver   string `validate:"required,oneof=postgres sqlite"`
	DBUser     string `validate:"required_if=DBDriver postgres"`
	DBPassword string
	DBHost     string `validate:"required_if=DBDriver postgres"`
	DBPort     string `validate:"required_if=DBDriver postgres"`
	DBName     string `validate:"required_if=DBDriver postgres"`
	DBMaxConns int    `validate:"min=1"`
	SQLitePath string `validate:"required_if=DBDriver sqlite"`

	DiscordToken string
	DiscordAppID string
	OwnerIDs     []string

	EncryptionKey     string
	EncryptionKeyFile string `validate:"required_without=EncryptionKey"`

	TornAPIBase           string        `validate:"required,url"`
	TornV2Base            string        `validate:"required,url"`
	TornRequestsPerMinute int           `validate:"min=1"`
	SyncInterval          time.Duration `validate:"min=1m"`
	Timezone              string        `validate:"required"`
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		Environment:       getEnv("ENVIRONMENT", DefaultEnvironment),
		LogLevel:          strings.ToLower(getEnv("LOG_LEVEL", DefaultLogLevel)),
		LogFormat:         strings.ToLower(getEnv("LOG_FORMAT", DefaultLogFormat)),
		LogDir:            getEnv("LOG_DIR", DefaultLogDir),
		Version:           getEnv("VERSION", "dev"),
		APIKey:            getEnv("API_KEY", ""),
		TrustedProxies:    splitList(getEnv("TRUSTED_PROXIES", "")),
		DBDriver:          strings.ToLower(getEnv("DB_DRIVER", DefaultDBDriver)),
		DBUser:            getEnv("DB_USER", "postgres"),
		DBPassword:        getEnv("DB_PASSWORD", "postgres"),
		DBHost:            getEnv("DB_HOST", "localhost"),
		DBPort:            getEnv("DB_PORT", "5432"),
		DBName:            getEnv("DB_NAME", "tornbot"),
		SQLitePath:        getEnv("SQLITE_PATH", DefaultSQLitePath),
		DiscordToken:      getEnv("DISCORD_TOKEN", ""),
		DiscordAppID:      getEnv("DISCORD_APP_ID", ""),
		OwnerIDs:          splitList(getEnv("OWNER_IDS", "")),
		EncryptionKey:     getEnv("ENCRYPTION_KEY", ""),
		EncryptionKeyFile: getEnv("ENCRYPTION_KEY_FILE", DefaultEncryptionKeyFile),
		TornAPIBase:       strings.TrimRight(getEnv("TORN_API_BASE", DefaultTornAPIBase), "/"),
		TornV2Base:        strings.TrimRight(getEnv("TORN_V2_BASE", DefaultTornV2Base), "/"),
		Timezone:          getEnv("TIMEZONE", DefaultTimezone),
	}

	port, err := strconv.Atoi(getEnv("PORT", strconv.Itoa(DefaultPort)))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgInvalidPort, err)
	}
	cfg.Port = port

	// Validate API key is set
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%s", ErrMsgAPIKeyRequired)
	}

	if cfg.DBMaxConns, err = getEnvAsInt("DB_MAX_CONNS", DefaultDBMaxConns); err != nil {
		return nil, err
	}
	if cfg.TornRequestsPerMinute, err = getEnvAsInt("TORN_REQUESTS_PER_MINUTE", DefaultTornRequestsPerMinute); err != nil {
		return nil, err
	}
	if cfg.SyncInterval, err = getEnvAsDuration("SYNC_INTERVAL", DefaultSyncInterval); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}

// IsOwner reports whether the chat user id is a configured bot owner
func (c *Config) IsOwner(userID string) bool {
	for _, id := range c.OwnerIDs {
		if id == userID {
			return true
		}
	}
	return false
}

// Location resolves the configured timezone, falling back to UTC
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) (int, error) {
	raw, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(raw) == "" {
		return defaultValue, nil
	}
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%s %s: %w", ErrMsgInvalidInt, key, err)
	}
	return v, nil
}

func getEnvAsDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	raw, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(raw) == "" {
		return defaultValue, nil
	}
	v, err := time.ParseDuration(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%s %s: %w", ErrMsgInvalidDuration, key, err)
	}
	return v, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
