package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"siproa/internal/config"
	"siproa/internal/db"
	"siproa/internal/directory"
	httpserver "siproa/internal/http"
	"siproa/internal/models"
	"siproa/internal/seed"
	"siproa/internal/storage"
)

func main() {
	cfg := config.Load()
	ctx := context.Background()

	gdb := db.Connect(cfg.DSN)
	db.AutoMigrate(gdb,
		&models.User{},
		&models.Role{},
		&models.UserRole{},
	)

	if err := seed.EnsureRoles(gdb); err != nil {
		slog.Error("role provisioning failed", "error", err)
		os.Exit(1)
	}

	dir := directory.New(directory.NewGormStore(gdb))
	result, err := dir.EnsureAdmin(ctx)
	if err != nil {
		slog.Error("admin bootstrap failed", "error", err)
		os.Exit(1)
	}
	slog.Info("admin bootstrap", "result", result.String())

	up, err := storage.NewS3Bucket(ctx, storage.S3Config{
		Region:    cfg.S3Region,
		Bucket:    cfg.S3Bucket,
		AccessKey: cfg.S3AccessKey,
		SecretKey: cfg.S3SecretKey,
		Endpoint:  cfg.S3Endpoint,
	})
	if err != nil {
		slog.Error("storage init failed", "error", err)
		os.Exit(1)
	}

	r := httpserver.NewRouter(dir, up, cfg.JWTSecret)
	slog.Info("server listening", "port", cfg.AppPort)
	if err := r.Run(fmt.Sprintf(":%s", cfg.AppPort)); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
