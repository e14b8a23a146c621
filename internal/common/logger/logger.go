package logger

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config controls the process logger
type Config struct {
	// Level is one of debug, info, warn, error
	Level string `yaml:"level"`

	// Format is json or console
	Format string `yaml:"format"`

	// Caller adds the calling file and line to every entry
	Caller bool `yaml:"caller"`
}

// New builds a zap logger writing to stdout
func New(cfg Config) (*zap.Logger, error) {
	var enc zapcore.Encoder
	switch format := strings.ToLower(strings.TrimSpace(cfg.Format)); format {
	case "", "json":
		enc = zapcore.NewJSONEncoder(jsonEncoderConfig())
	case "console":
		enc = zapcore.NewConsoleEncoder(consoleEncoderConfig())
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}

	core := zapcore.NewCore(enc, zapcore.AddSync(os.Stdout), ParseLevel(cfg.Level))

	logger := zap.New(core, zap.AddStacktrace(zapcore.ErrorLevel))
	if cfg.Caller {
		logger = logger.WithOptions(zap.AddCaller())
	}

	return logger, nil
}

// ParseLevel maps a level name to a zap level, defaulting to info
func ParseLevel(s string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

func consoleEncoderConfig() zapcore.EncoderConfig {
	cfg := zap.NewProductionEncoderConfig()
	cfg.EncodeTime = zapcore.TimeEncoderOfLayout("2006-01-02 15:04:05")
	cfg.EncodeLevel = zapcore.CapitalLevelEncoder
	cfg.ConsoleSeparator = " | "
	return cfg
}

func jsonEncoderConfig() zapcore.EncoderConfig {
	cfg := zap.NewProductionEncoderConfig()
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncodeLevel = zapcore.LowercaseLevelEncoder
	return cfg
}
