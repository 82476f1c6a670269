package logger

import (
	"go.uber.org/zap"
)

// Log is the package-level logger. InitLogger must run once at startup before
// any other package touches it.
var Log = zap.NewNop()

func InitLogger(level string) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		lvl = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = lvl
	logger, err := cfg.Build()
	if err != nil {
		panic(err)
	}
	Log = logger
}
