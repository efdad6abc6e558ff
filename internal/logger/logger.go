package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/aliskhannn/capitals-quiz-generator/internal/config"
)

// New builds the application logger. Verbose mode lowers the level to
// Debug so per-quiz diagnostics are emitted; otherwise only warnings
// and errors surface.
func New(cfg *config.Config) (*zap.Logger, error) {
	if cfg.Env == "production" {
		return zap.NewProduction()
	}

	zapCfg := zap.NewDevelopmentConfig()
	if cfg.Verbose {
		zapCfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	} else {
		zapCfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	}

	return zapCfg.Build()
}
