package logging

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	// LogLevelEnvVar selects the level: debug, info, warn or error. Unset
	// means no output at all.
	LogLevelEnvVar = "FORMULARY_LOG_LEVEL"

	// LogFileEnvVar is a file path, or "stderr"/"stdout". Defaults to
	// stderr since the form owns stdout.
	LogFileEnvVar = "FORMULARY_LOG_FILE"
)

var logger = zap.NewNop()

// Initialize installs a console logger at level, falling back to
// $FORMULARY_LOG_LEVEL. With neither set the logger stays silent.
func Initialize(level string) error {
	if level == "" {
		level = os.Getenv(LogLevelEnvVar)
	}
	if level == "" {
		logger = zap.NewNop()
		return nil
	}

	l, err := build(parseLevel(level), os.Getenv(LogFileEnvVar))
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	logger = l
	return nil
}

// build assembles a console core writing to output.
func build(level zapcore.Level, output string) (*zap.Logger, error) {
	if output == "" {
		output = "stderr"
	}
	sink, _, err := zap.Open(output)
	if err != nil {
		return nil, err
	}

	enc := zap.NewDevelopmentEncoderConfig()
	enc.EncodeTime = zapcore.ISO8601TimeEncoder
	enc.EncodeCaller = zapcore.ShortCallerEncoder
	enc.EncodeLevel = zapcore.CapitalLevelEncoder
	if output == "stderr" {
		enc.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(enc), sink, level)
	return zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1)), nil
}

func parseLevel(level string) zapcore.Level {
	level = strings.ToLower(level)
	if level == "warning" {
		level = "warn"
	}
	var l zapcore.Level
	if err := l.UnmarshalText([]byte(level)); err != nil || l > zapcore.ErrorLevel {
		return zapcore.InfoLevel
	}
	return l
}

// InitializeFromEnv is Initialize with the level taken from the environment.
func InitializeFromEnv() error {
	return Initialize("")
}

// SetLogger swaps in l; nil restores the silent logger.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
}

// GetLogger returns the installed logger.
func GetLogger() *zap.Logger {
	return logger
}

func Info(msg string, fields ...zap.Field)  { logger.Info(msg, fields...) }
func Debug(msg string, fields ...zap.Field) { logger.Debug(msg, fields...) }
func Warn(msg string, fields ...zap.Field)  { logger.Warn(msg, fields...) }
func Error(msg string, fields ...zap.Field) { logger.Error(msg, fields...) }

// LogQuestion logs a lifecycle event for a single question
// ("built", "accepted", "rejected", "skipped", ...).
func LogQuestion(name, questionType, event string) {
	Debug("Question event",
		zap.String("question", name),
		zap.String("type", questionType),
		zap.String("event", event),
	)
}

// LogValidation logs the outcome of validating a question's value.
func LogValidation(name string, errors []string) {
	if len(errors) == 0 {
		Debug("Validation passed", zap.String("question", name))
		return
	}
	Debug("Validation failed",
		zap.String("question", name),
		zap.Strings("errors", errors),
	)
}

// LogStep logs a wizard navigation event.
func LogStep(event string, index int, label string) {
	Debug("Wizard step",
		zap.String("event", event),
		zap.Int("index", index),
		zap.String("label", label),
	)
}

// LogRegistration logs a new entry in a handler, validator or theme registry.
func LogRegistration(kind, name string) {
	Debug("Registered",
		zap.String("kind", kind),
		zap.String("name", name),
	)
}

// Sync flushes buffered entries.
func Sync() {
	_ = logger.Sync()
}
