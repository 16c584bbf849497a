package config

import (
	"Go-Pantry-Assistant/internal/utils"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func ConnectDB(cfg *utils.Config, logger *zap.Logger) (*gorm.DB, error) {
	logMode := gormlogger.Warn
	if cfg.LogLevel == "debug" {
		logMode = gormlogger.Info
	}

	db, err := gorm.Open(postgres.Open(cfg.DatabaseDSN()), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(logMode),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(0)

	logger.Info("Database connection established",
		zap.String("host", cfg.DBHost),
		zap.String("database", cfg.DBName))
	return db, nil
}
