package config

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DSN       string
	JWTSecret string
	AppPort   string

	S3Region    string
	S3Bucket    string
	S3AccessKey string
	S3SecretKey string
	S3Endpoint  string
}

func Load() Config {
	if err := godotenv.Load(); err != nil {
		slog.Info(".env file not found, using system environment variables")
	}

	cfg := Config{
		DSN:         os.Getenv("MYSQL_DSN"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		AppPort:     os.Getenv("APP_PORT"),
		S3Region:    os.Getenv("S3_REGION"),
		S3Bucket:    os.Getenv("S3_BUCKET"),
		S3AccessKey: os.Getenv("S3_ACCESS_KEY"),
		S3SecretKey: os.Getenv("S3_SECRET_KEY"),
		S3Endpoint:  os.Getenv("S3_ENDPOINT"),
	}

	if cfg.DSN == "" {
		slog.Error("MYSQL_DSN not set in environment")
		os.Exit(1)
	}
	if cfg.JWTSecret == "" {
		// Known weakness carried from the first deployment: a predictable
		// fallback secret instead of refusing to start.
		slog.Warn("JWT_SECRET not set, falling back to insecure default")
		cfg.JWTSecret = "dev-secret-only"
	}
	if cfg.AppPort == "" {
		cfg.AppPort = "8080"
	}
	if cfg.S3Bucket == "" {
		cfg.S3Bucket = "siproa-evidencias"
	}

	return cfg
}
