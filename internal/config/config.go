package config

import (
	"os"
	"strings"
	"time"
)

// Backend and strategy selectors. Everything defaults to the
// zero-dependency in-process setup; redis and kafka are opt in.
const (
	CartBackendMemory = "memory"
	CartBackendRedis  = "redis"

	PendingBackendOff    = "off"
	PendingBackendMemory = "memory"
	PendingBackendRedis  = "redis"

	StrategyMail     = "mail"
	StrategyGitHub   = "github"
	StrategyDownload = "download"
)

type GitHub struct {
	Owner  string
	Repo   string
	Branch string
	Token  string
}

type Config struct {
	HTTPPort        string
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration

	CatalogPath    string
	CatalogDBPath  string // empty keeps the catalog in memory
	MigrationsPath string

	RedisAddr      string
	CatalogCache   bool
	CartBackend    string
	CartTTL        time.Duration
	PendingBackend string

	SubmitStrategy string
	OrderEmail     string
	GitHub         GitHub

	KafkaBrokers []string
}

// Load reads the configuration from the environment. The GitHub token
// only ever comes from the environment.
func Load() *Config {
	return &Config{
		HTTPPort:        getEnv("HTTP_PORT", "8080"),
		RequestTimeout:  getDuration("REQUEST_TIMEOUT", 30*time.Second),
		ShutdownTimeout: getDuration("SHUTDOWN_TIMEOUT", 10*time.Second),

		CatalogPath:    getEnv("CATALOG_PATH", "data/catalog.json"),
		CatalogDBPath:  os.Getenv("CATALOG_DB_PATH"),
		MigrationsPath: getEnv("MIGRATIONS_PATH", "migrations"),

		RedisAddr:      os.Getenv("REDIS_ADDR"),
		CatalogCache:   os.Getenv("CATALOG_CACHE") == "redis",
		CartBackend:    getEnv("CART_BACKEND", CartBackendMemory),
		CartTTL:        getDuration("CART_TTL", 30*time.Minute),
		PendingBackend: getEnv("PENDING_BACKEND", PendingBackendOff),

		SubmitStrategy: getEnv("SUBMIT_STRATEGY", StrategyGitHub),
		OrderEmail:     os.Getenv("ORDER_EMAIL"),
		GitHub: GitHub{
			Owner:  os.Getenv("GITHUB_OWNER"),
			Repo:   os.Getenv("GITHUB_REPO"),
			Branch: getEnv("GITHUB_BRANCH", "main"),
			Token:  os.Getenv("GITHUB_TOKEN"),
		},

		KafkaBrokers: getList("KAFKA_BROKERS"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return d
}

func getList(key string) []string {
	value := os.Getenv(key)
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
