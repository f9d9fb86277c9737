package config

import (
	"strings"
	"testing"
	"time"
)

func TestLoadEnvDefaults(t *testing.T) {
	t.Setenv("APP_ADDR", "")
	t.Setenv("COMMISSION_RATE", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", "")

	env := LoadEnv()
	if env.AppAddr != ":8080" {
		t.Fatalf("AppAddr = %q", env.AppAddr)
	}
	if env.CommissionRate != 0.10 {
		t.Fatalf("CommissionRate = %v", env.CommissionRate)
	}
	if env.RefreshTTL != 30*24*time.Hour {
		t.Fatalf("RefreshTTL = %v", env.RefreshTTL)
	}
	if len(env.CORSAllowedOrigins) == 0 {
		t.Fatalf("expected default CORS origins")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("APP_ADDR", ":9090")
	t.Setenv("ACCESS_TOKEN_TTL", "15m")
	t.Setenv("BCRYPT_COST", "not-a-number")
	t.Setenv("COMMISSION_RATE", "0.2")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, ,https://b.example")

	env := LoadEnv()
	if env.AppAddr != ":9090" || env.AccessTTL != 15*time.Minute {
		t.Fatalf("unexpected env %+v", env)
	}
	if env.BcryptCost != 10 {
		t.Fatalf("invalid int should fall back to default, got %d", env.BcryptCost)
	}
	if env.CommissionRate != 0.2 {
		t.Fatalf("CommissionRate = %v", env.CommissionRate)
	}
	if strings.Join(env.CORSAllowedOrigins, "|") != "https://a.example|https://b.example" {
		t.Fatalf("origins = %v", env.CORSAllowedOrigins)
	}
}

func TestDSN(t *testing.T) {
	dsn := DSN(Env{DBUser: "app", DBPass: "secret", DBHost: "db", DBPort: "3306", DBName: "reservoria"})
	if !strings.HasPrefix(dsn, "app:secret@tcp(db:3306)/reservoria?") {
		t.Fatalf("unexpected dsn %s", dsn)
	}
	if !strings.Contains(dsn, "parseTime=true") {
		t.Fatalf("dsn must enable parseTime: %s", dsn)
	}
}

func TestLoadEnvFlags(t *testing.T) {
	t.Setenv("DB_AUTO_MIGRATE", "true")
	t.Setenv("LOG_FORMAT", "JSON")
	env := LoadEnv()
	if !env.DBAutoMigrate || !env.LogJSON {
		t.Fatalf("flags not parsed: migrate=%v json=%v", env.DBAutoMigrate, env.LogJSON)
	}
	t.Setenv("DB_AUTO_MIGRATE", "maybe")
	if LoadEnv().DBAutoMigrate {
		t.Fatalf("unparseable bool should fall back to false")
	}
}
