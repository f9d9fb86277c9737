package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Env struct {
	AppAddr string
	GinMode string
	AppEnv  string

	DBUser string
	DBPass string
	DBHost string
	DBPort string
	DBName string

	DBAutoMigrate bool

	JWTSecret  string
	AccessTTL  time.Duration
	RefreshTTL time.Duration
	BcryptCost int

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	CacheTTL      time.Duration

	RabbitURL string

	CORSAllowedOrigins []string

	LogLevel string
	LogFile  string
	LogJSON  bool

	CommissionRate  float64
	PlatformFeeRate float64
	Currency        string
}

// LoadEnv reads .env (when present) and the process environment.
func LoadEnv() Env {
	_ = godotenv.Load()

	return Env{
		AppAddr: envStr("APP_ADDR", ":8080"),
		GinMode: envStr("GIN_MODE", ""),
		AppEnv:  envStr("APP_ENV", "development"),

		DBUser: envStr("DB_USER", "root"),
		DBPass: os.Getenv("DB_PASS"),
		DBHost: envStr("DB_HOST", "127.0.0.1"),
		DBPort: envStr("DB_PORT", "3306"),
		DBName: envStr("DB_NAME", "reservoria"),

		DBAutoMigrate: envBool("DB_AUTO_MIGRATE", false),

		JWTSecret:  envStr("JWT_SECRET", "change-me-in-production"),
		AccessTTL:  envDur("ACCESS_TOKEN_TTL", 24*time.Hour),
		RefreshTTL: envDur("REFRESH_TOKEN_TTL", 30*24*time.Hour),
		BcryptCost: envInt("BCRYPT_COST", 10),

		RedisAddr:     envStr("REDIS_ADDR", ""),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       envInt("REDIS_DB", 0),
		CacheTTL:      envDur("CACHE_TTL", 5*time.Minute),

		RabbitURL: envStr("RABBITMQ_URL", ""),

		CORSAllowedOrigins: envList("CORS_ALLOWED_ORIGINS", []string{
			"http://localhost:3000",
			"http://127.0.0.1:3000",
			"http://localhost:3001",
			"http://127.0.0.1:3001",
			"http://localhost:5173",
			"http://127.0.0.1:5173",
		}),

		LogLevel: envStr("LOG_LEVEL", "info"),
		LogFile:  envStr("LOG_FILE", ""),
		LogJSON:  strings.EqualFold(envStr("LOG_FORMAT", "text"), "json"),

		CommissionRate:  envFloat("COMMISSION_RATE", 0.10),
		PlatformFeeRate: envFloat("PLATFORM_FEE_RATE", 0),
		Currency:        envStr("CURRENCY", "TRY"),
	}
}

func (e Env) IsProduction() bool {
	return strings.EqualFold(e.AppEnv, "production")
}

func envStr(k, d string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return d
}

func envInt(k string, d int) int {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return d
	}
	if n, err := strconv.Atoi(v); err == nil {
		return n
	}
	return d
}

func envBool(k string, d bool) bool {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return d
	}
	if b, err := strconv.ParseBool(v); err == nil {
		return b
	}
	return d
}

func envFloat(k string, d float64) float64 {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return d
	}
	if f, err := strconv.ParseFloat(v, 64); err == nil {
		return f
	}
	return d
}

func envDur(k string, d time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return d
	}
	if dur, err := time.ParseDuration(v); err == nil {
		return dur
	}
	return d
}

func envList(k string, d []string) []string {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return d
	}
	out := []string{}
	for _, p := range strings.Split(v, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
