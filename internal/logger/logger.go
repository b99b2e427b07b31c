// Package logger provides structured logging with zap.
package logger

import "go.uber.org/zap"

// New creates a new zap.Logger depending on the environment.
// Production gets JSON output at info level; anything else gets the development console encoder.
func New(env string) *zap.Logger {
	if env == "production" {
		logger, err := zap.NewProduction()
		if err != nil {
			return zap.NewNop()
		}
		return logger.Named("customer-registry")
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return logger.Named("customer-registry")
}
