package logs

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"storefront/config"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Params defines the parameters required for the logger
type Params struct {
	fx.In

	Lc     fx.Lifecycle `optional:"true"`
	Config *config.Config
}

// New creates and initializes slog.Logger. When env.log.file is set, records
// are also written to a size-rotated file.
func New(params Params) (*slog.Logger, error) {
	logCfg := params.Config.Env.Log

	level, err := parseLogLevel(logCfg.Level)
	if err != nil {
		return nil, err
	}

	var out io.Writer = os.Stdout
	if logCfg.File != "" {
		rotator := newRotator(logCfg)
		out = io.MultiWriter(os.Stdout, rotator)

		if params.Lc != nil {
			params.Lc.Append(fx.Hook{
				OnStop: func(context.Context) error {
					return rotator.Close()
				},
			})
		}
	}

	return newLogger(out, level, logCfg.Pretty), nil
}

func newLogger(out io.Writer, level slog.Level, pretty bool) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	if pretty {
		return slog.New(slog.NewTextHandler(out, opts))
	}

	return slog.New(slog.NewJSONHandler(out, opts))
}

func newRotator(cfg config.Log) *lumberjack.Logger {
	rotator := &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    10, // Megabytes
		MaxBackups: 5,
		MaxAge:     30, // Days
		Compress:   true,
	}
	if cfg.MaxSizeMB > 0 {
		rotator.MaxSize = cfg.MaxSizeMB
	}
	if cfg.MaxBackups > 0 {
		rotator.MaxBackups = cfg.MaxBackups
	}
	if cfg.MaxAgeDays > 0 {
		rotator.MaxAge = cfg.MaxAgeDays
	}

	return rotator
}

// parseLogLevel converts string log level to slog.Level
func parseLogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, errors.Errorf("unknown log level: %s", level)
	}
}
