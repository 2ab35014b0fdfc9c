package db

import (
	"log/slog"
	"os"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func Connect(dsn string) *gorm.DB {
	gdb, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	sqlDB, _ := gdb.DB()
	if err := sqlDB.Ping(); err != nil {
		slog.Error("database ping failed", "error", err)
		os.Exit(1)
	}

	slog.Info("database connected")
	return gdb
}

func AutoMigrate(gdb *gorm.DB, models ...any) {
	if err := gdb.AutoMigrate(models...); err != nil {
		slog.Error("auto-migration failed", "error", err)
		os.Exit(1)
	}
}
