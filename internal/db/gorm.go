package db

import (
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm/logger"
)

func newLogger(logs *zap.SugaredLogger, level string) logger.Interface {
	if logs == nil {
		logs = zap.NewNop().Sugar()
	}

	return logger.New(
		zap.NewStdLog(logs.Desugar().With(zap.String("component", "gorm"))),
		logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  parseLogLevel(level),
			IgnoreRecordNotFoundError: true,
			// statements carry user data; keep bound values out of the log
			ParameterizedQueries: true,
		},
	)
}

func parseLogLevel(level string) logger.LogLevel {
	switch level {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info":
		return logger.Info
	default:
		return logger.Warn
	}
}
