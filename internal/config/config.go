package config

import (
	"errors"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// DefaultJWTSecret 仅用于本地开发，Validate 会在非 dev 环境拒绝它。
const DefaultJWTSecret = "dev-secret-change-me"

type Config struct {
	Port            string
	Env             string
	LogLevel        string
	DBDriver        string
	DBHost          string
	DBPort          string
	DBUser          string
	DBPassword      string
	DBName          string
	DatabaseDSN     string
	JWTSecret       string
	TokenTTLMinutes int
	StaticDir       string
}

func getenv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func getenvInt(key string, def int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil || v <= 0 {
		return def
	}
	return v
}

// Load 读取 .env（如存在）与环境变量，未设置的项使用默认值。
func Load() Config {
	_ = godotenv.Load()
	return Config{
		Port:            getenv("APP_PORT", "3000"),
		Env:             getenv("APP_ENV", "dev"),
		LogLevel:        getenv("LOG_LEVEL", "info"),
		DBDriver:        getenv("DB_DRIVER", "mysql"),
		DBHost:          getenv("DB_HOST", "localhost"),
		DBPort:          os.Getenv("DB_PORT"),
		DBUser:          getenv("DB_USER", "root"),
		DBPassword:      os.Getenv("DB_PASSWORD"),
		DBName:          getenv("DB_NAME", "rentor_db"),
		DatabaseDSN:     os.Getenv("DATABASE_DSN"),
		JWTSecret:       getenv("JWT_SECRET", DefaultJWTSecret),
		TokenTTLMinutes: getenvInt("TOKEN_TTL_MINUTES", 60),
		StaticDir:       getenv("STATIC_DIR", "public"),
	}
}

// Validate 检查启动所需的配置项。
func Validate(cfg Config) error {
	if cfg.Port == "" {
		return errors.New("APP_PORT is required")
	}
	switch cfg.DBDriver {
	case "mysql", "postgres", "sqlite":
	default:
		return errors.New("DB_DRIVER must be one of mysql, postgres, sqlite")
	}
	if cfg.DatabaseDSN == "" && cfg.DBName == "" {
		return errors.New("DB_NAME or DATABASE_DSN is required")
	}
	if cfg.JWTSecret == "" {
		return errors.New("JWT_SECRET is required")
	}
	if cfg.Env != "dev" && cfg.JWTSecret == DefaultJWTSecret {
		return errors.New("JWT_SECRET must be changed outside dev")
	}
	return nil
}
