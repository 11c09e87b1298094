package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// DefaultJWTSecret is the signing key used when JWT_SECRET is unset.
// It is only suitable for local development.
const DefaultJWTSecret = "dev_secret_change_me"

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort  string
	JWTSecret   string
	TokenTTL    time.Duration
	SwaggerHost string

	StoreDriver string
	DataFile    string
	BoltPath    string
	RedisAddr   string
	RedisDB     int
	RedisPass   string
	RedisKey    string
	MySQLDSN    string

	AdminEmail     string
	AdminPassword  string
	AllowedOrigins []string

	LogMode string
	LogFile string

	// EnvFileErr is set when no .env file could be loaded.
	EnvFileErr error
}

// Load builds Config from environment with sensible defaults.
// A .env file in the working directory is applied first when present.
func Load() *Config {
	envErr := godotenv.Load()

	return &Config{
		ServerPort:  getEnv("PORT", "4000"),
		JWTSecret:   getEnv("JWT_SECRET", DefaultJWTSecret),
		TokenTTL:    getEnvDuration("TOKEN_TTL", 8*time.Hour),
		SwaggerHost: os.Getenv("SWAGGER_HOST"),

		StoreDriver: strings.ToLower(getEnv("STORE_DRIVER", "file")),
		DataFile:    getEnv("DATA_FILE", "data/db.json"),
		BoltPath:    getEnv("BOLT_PATH", "data/store.db"),
		RedisAddr:   getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:     getEnvInt("REDIS_DB", 0),
		RedisPass:   os.Getenv("REDIS_PASSWORD"),
		RedisKey:    getEnv("REDIS_KEY", "storefront:document"),
		MySQLDSN:    getEnv("MYSQL_DSN", "user:password@tcp(localhost:3306)/storefront?charset=utf8mb4&parseTime=True&loc=Local"),

		AdminEmail:     getEnv("ADMIN_EMAIL", "admin@gunshop.test"),
		AdminPassword:  getEnv("ADMIN_PASSWORD", "AdminPass123"),
		AllowedOrigins: getEnvList("ALLOWED_ORIGINS"),

		LogMode: getEnv("LOG_MODE", "development"),
		LogFile: os.Getenv("LOG_FILE"),

		EnvFileErr: envErr,
	}
}

// InsecureSecret reports whether tokens are signed with the development default.
func (c *Config) InsecureSecret() bool {
	return c.JWTSecret == DefaultJWTSecret
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil && parsed > 0 {
			return parsed
		}
	}
	return def
}

func getEnvList(key string) []string {
	var out []string
	for _, item := range strings.Split(os.Getenv(key), ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
