// Package logging builds the zap logger used by the commands and bridges it
// into log/slog for the library packages.
package logging

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/exp/zapslog"
	"go.uber.org/zap/zapcore"
)

// ReleaseMode selects JSON production logging.
const ReleaseMode = "release"

// New builds a zap logger. ReleaseMode gives JSON output, any other mode the
// colored development console. An empty level keeps the config's default.
func New(mode, level string) (*zap.Logger, error) {
	var config zap.Config

	if mode == ReleaseMode {
		config = zap.NewProductionConfig()
	} else {
		config = zap.NewDevelopmentConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	if level != "" {
		lvl, err := zap.ParseAtomicLevel(level)
		if err != nil {
			return nil, fmt.Errorf("logging: %w", err)
		}
		config.Level = lvl
	}

	return config.Build()
}

// Slog wraps the core of l in a slog.Logger.
func Slog(l *zap.Logger) *slog.Logger {
	return slog.New(zapslog.NewHandler(l.Core()))
}

// Setup builds the command logger and tags it with the command name and a
// fresh run id. The returned func flushes buffered entries.
func Setup(command, mode, level string) (*slog.Logger, func(), error) {
	zl, err := New(mode, level)
	if err != nil {
		return nil, nil, err
	}
	sync := func() {
		_ = zl.Sync()
	}

	log := Slog(zl).With(
		slog.String("command", command),
		slog.String("run_id", uuid.NewString()))
	return log, sync, nil
}
