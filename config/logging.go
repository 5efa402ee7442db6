package config

import (
	"go.uber.org/zap"
)

// InitLogger sets up the global zap logger used across the handlers.
func InitLogger() *zap.Logger {
	logger := zap.NewExample()
	_ = zap.ReplaceGlobals(logger)
	return logger
}
