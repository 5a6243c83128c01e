package utils

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LoggerConfig определяет конфигурацию для логгера
type LoggerConfig struct {
	// Формат логов (console/json)
	Format string
	// Минимальный уровень (debug, info, warn, error)
	Level string
}

// InitLogger инициализирует и возвращает логгер
func InitLogger(config ...LoggerConfig) *zap.Logger {
	var cfg LoggerConfig
	if len(config) > 0 {
		cfg = config[0]
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	if cfg.Level != "" {
		if level, err := zapcore.ParseLevel(cfg.Level); err == nil {
			zapCfg.Level = zap.NewAtomicLevelAt(level)
		}
	}

	logger, err := zapCfg.Build()
	if err != nil {
		// Конфигурация выше всегда валидна, сюда попасть нельзя
		panic(err)
	}

	return logger.Named("learning-dashboard")
}
