// Package logging builds the zap loggers used by the command-line tools.
// Library packages never log.
package logging

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger wraps zap.Logger.
type Logger struct {
	*zap.Logger
}

// Config selects level and encoding.
type Config struct {
	Level       string // "debug", "info", "warn", "error"
	Development bool   // console encoding with colors; JSON otherwise
	OutputPaths []string
	Writer      io.Writer // when set, replaces OutputPaths
}

// DefaultConfig logs info and above as JSON to stderr, keeping stdout for
// the tool's own output.
func DefaultConfig() Config {
	return Config{Level: "info", OutputPaths: []string{"stderr"}}
}

// New builds a logger from cfg. An unknown level is an error.
func New(cfg Config) (*Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	if cfg.Writer != nil {
		enc := zapcore.NewJSONEncoder(encoderConfig(false))
		if cfg.Development {
			enc = zapcore.NewConsoleEncoder(encoderConfig(true))
		}
		core := zapcore.NewCore(enc, zapcore.AddSync(cfg.Writer), level)

		return &Logger{Logger: zap.New(core)}, nil
	}

	out := cfg.OutputPaths
	if len(out) == 0 {
		out = []string{"stderr"}
	}

	zapCfg := zap.Config{
		Level:             zap.NewAtomicLevelAt(level),
		Development:       cfg.Development,
		Encoding:          encoding(cfg.Development),
		EncoderConfig:     encoderConfig(cfg.Development),
		OutputPaths:       out,
		ErrorOutputPaths:  []string{"stderr"},
		DisableStacktrace: !cfg.Development,
	}
	logger, err := zapCfg.Build()
	if err != nil {
		return nil, err
	}

	return &Logger{Logger: logger}, nil
}

// NewDefault builds a logger from DefaultConfig, falling back to a no-op
// logger if that fails.
func NewDefault() *Logger {
	logger, err := New(DefaultConfig())
	if err != nil {
		return NewNop()
	}

	return logger
}

// NewNop returns a logger that discards everything.
func NewNop() *Logger { return &Logger{Logger: zap.NewNop()} }

func encoding(development bool) string {
	if development {
		return "console"
	}

	return "json"
}

func encoderConfig(development bool) zapcore.EncoderConfig {
	if development {
		cfg := zap.NewDevelopmentEncoderConfig()
		cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		return cfg
	}

	cfg := zap.NewProductionEncoderConfig()
	cfg.TimeKey = "timestamp"
	cfg.MessageKey = "message"
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder

	return cfg
}
