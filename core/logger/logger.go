package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"version-counter/core/middleware/rayid"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

const timeLayout = "2006-01-02 15:04:05"

// New creates a new zap logger based on the configuration.
//
// Entries go to stdout and, when cfg.Dir is set, to a dated file
// (log-YYYY_MM_DD_HH-MM-SS.txt) that is rotated by size.
func New(cfg *Config) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}

	var encoderCfg zapcore.EncoderConfig
	if level == zapcore.DebugLevel {
		encoderCfg = zap.NewDevelopmentEncoderConfig()
	} else {
		encoderCfg = zap.NewProductionEncoderConfig()
	}
	encoderCfg.LevelKey = "level"
	encoderCfg.TimeKey = "time"
	encoderCfg.MessageKey = "message"
	encoderCfg.NameKey = "logger"
	encoderCfg.EncodeTime = zapcore.TimeEncoderOfLayout(timeLayout)

	// Set format based on configuration
	consoleCfg := encoderCfg
	var consoleEncoder zapcore.Encoder
	if cfg.Format == "json" {
		consoleEncoder = zapcore.NewJSONEncoder(consoleCfg)
	} else {
		consoleCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		consoleEncoder = zapcore.NewConsoleEncoder(consoleCfg)
	}

	cores := []zapcore.Core{
		zapcore.NewCore(consoleEncoder, zapcore.Lock(os.Stdout), level),
	}

	if cfg.Dir != "" {
		if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
		fileCfg := encoderCfg
		fileCfg.EncodeLevel = zapcore.CapitalLevelEncoder
		file := &lumberjack.Logger{
			Filename:   filepath.Join(cfg.Dir, FileName(time.Now())),
			MaxSize:    100, // megabytes
			MaxBackups: 14,
			MaxAge:     30, // days
			Compress:   true,
		}
		cores = append(cores, zapcore.NewCore(zapcore.NewConsoleEncoder(fileCfg), zapcore.AddSync(file), level))
	}

	logger := zap.New(zapcore.NewTee(cores...), zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))
	return logger, nil
}

// FileName returns the dated log file name for a process started at t.
func FileName(t time.Time) string {
	return t.Format("log-2006_01_02_15-04-05.txt")
}

// WithRayID returns a logger with the ray_id field set from the Fiber context.
func WithRayID(l *zap.Logger, c *fiber.Ctx) *zap.Logger {
	rid := c.Locals(rayid.LocalKey)
	if str, ok := rid.(string); ok && str != "" {
		return l.With(zap.String(rayid.LocalKey, str))
	}
	return l
}
