package config

import (
	"testing"
)

var envKeys = []string{
	"APP_PORT", "APP_ENV", "LOG_LEVEL", "DB_DRIVER", "DB_HOST", "DB_PORT", "DB_USER",
	"DB_PASSWORD", "DB_NAME", "DATABASE_DSN", "JWT_SECRET", "TOKEN_TTL_MINUTES", "STATIC_DIR",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range envKeys {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg := Load()

	if cfg.Port != "3000" {
		t.Errorf("Load() Port = %v, want 3000", cfg.Port)
	}
	if cfg.Env != "dev" {
		t.Errorf("Load() Env = %v, want dev", cfg.Env)
	}
	if cfg.DBDriver != "mysql" {
		t.Errorf("Load() DBDriver = %v, want mysql", cfg.DBDriver)
	}
	if cfg.DBHost != "localhost" || cfg.DBUser != "root" || cfg.DBName != "rentor_db" {
		t.Errorf("Load() db defaults = %s/%s/%s", cfg.DBHost, cfg.DBUser, cfg.DBName)
	}
	if cfg.DBPassword != "" {
		t.Errorf("Load() DBPassword = %q, want empty", cfg.DBPassword)
	}
	if cfg.JWTSecret != DefaultJWTSecret {
		t.Errorf("Load() JWTSecret = %v, want %v", cfg.JWTSecret, DefaultJWTSecret)
	}
	if cfg.TokenTTLMinutes != 60 {
		t.Errorf("Load() TokenTTLMinutes = %v, want 60", cfg.TokenTTLMinutes)
	}
	if cfg.StaticDir != "public" {
		t.Errorf("Load() StaticDir = %v, want public", cfg.StaticDir)
	}
}

func TestLoad_FromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_PORT", "9090")
	t.Setenv("APP_ENV", "prod")
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "5433")
	t.Setenv("DB_USER", "rentor")
	t.Setenv("DB_PASSWORD", "pw")
	t.Setenv("DB_NAME", "listings")
	t.Setenv("JWT_SECRET", "my-secret")
	t.Setenv("TOKEN_TTL_MINUTES", "30")
	t.Setenv("STATIC_DIR", "/srv/www")

	cfg := Load()

	if cfg.Port != "9090" {
		t.Errorf("Load() Port = %v, want 9090", cfg.Port)
	}
	if cfg.Env != "prod" {
		t.Errorf("Load() Env = %v, want prod", cfg.Env)
	}
	if cfg.DBDriver != "postgres" || cfg.DBHost != "db.internal" || cfg.DBPort != "5433" {
		t.Errorf("Load() db = %s %s:%s", cfg.DBDriver, cfg.DBHost, cfg.DBPort)
	}
	if cfg.DBUser != "rentor" || cfg.DBPassword != "pw" || cfg.DBName != "listings" {
		t.Errorf("Load() credentials = %s/%s/%s", cfg.DBUser, cfg.DBPassword, cfg.DBName)
	}
	if cfg.JWTSecret != "my-secret" {
		t.Errorf("Load() JWTSecret = %v, want my-secret", cfg.JWTSecret)
	}
	if cfg.TokenTTLMinutes != 30 {
		t.Errorf("Load() TokenTTLMinutes = %v, want 30", cfg.TokenTTLMinutes)
	}
	if cfg.StaticDir != "/srv/www" {
		t.Errorf("Load() StaticDir = %v, want /srv/www", cfg.StaticDir)
	}
}

func TestLoad_InvalidTTL(t *testing.T) {
	for _, v := range []string{"invalid", "-5", "0"} {
		t.Run(v, func(t *testing.T) {
			clearEnv(t)
			t.Setenv("TOKEN_TTL_MINUTES", v)

			cfg := Load()

			if cfg.TokenTTLMinutes != 60 {
				t.Errorf("Load() TokenTTLMinutes = %v, want 60 (default)", cfg.TokenTTLMinutes)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	valid := Config{Port: "3000", Env: "dev", DBDriver: "mysql", DBName: "rentor_db", JWTSecret: DefaultJWTSecret}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"valid dev config", func(c *Config) {}, false},
		{"valid prod config", func(c *Config) { c.Env = "prod"; c.JWTSecret = "production-secret-key" }, false},
		{"dsn instead of name", func(c *Config) { c.DBName = ""; c.DatabaseDSN = "root@tcp(localhost)/x" }, false},
		{"sqlite driver", func(c *Config) { c.DBDriver = "sqlite" }, false},
		{"empty port", func(c *Config) { c.Port = "" }, true},
		{"unknown driver", func(c *Config) { c.DBDriver = "oracle" }, true},
		{"no database", func(c *Config) { c.DBName = "" }, true},
		{"empty secret", func(c *Config) { c.JWTSecret = "" }, true},
		{"default secret in prod", func(c *Config) { c.Env = "prod" }, true},
		{"default secret in test env", func(c *Config) { c.Env = "test" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			err := Validate(cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
