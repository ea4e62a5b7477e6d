package logging

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	logger     *zap.Logger
	fileWriter *lumberjack.Logger

	// baseCore is the console core set by Initialize. Attached files are
	// always teed onto it, never onto a previous tee.
	baseCore zapcore.Core
)

// LogLevelEnvVar is the environment variable that controls logging verbosity.
// When unset or empty, logging is silent (no zap output).
// Valid values: "debug", "info", "warn", "error"
const LogLevelEnvVar = "SMARTTHERMO_LOG_LEVEL"

// Rotation limits for the log file attached with AttachFile.
const (
	fileMaxSizeMB  = 10
	fileMaxBackups = 3
	fileMaxAgeDays = 28
)

// Initialize creates a new logger with the specified level.
// If level is empty, it checks SMARTTHERMO_LOG_LEVEL environment variable.
// If neither is set, logging is disabled (silent mode).
func Initialize(level string) error {
	if level == "" {
		level = os.Getenv(LogLevelEnvVar)
	}

	closeFile()

	if level == "" {
		logger = zap.NewNop()
		baseCore = logger.Core()
		return nil
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(ParseLevel(level)),
		Development:      false,
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}

	config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.EncodeCaller = zapcore.ShortCallerEncoder

	var err error
	logger, err = config.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	baseCore = logger.Core()

	return nil
}

// InitializeFromEnv initializes the logger from the SMARTTHERMO_LOG_LEVEL
// environment variable.
func InitializeFromEnv() error {
	return Initialize("")
}

// ParseLevel maps a level name to a zap level.
// Unknown names map to info.
func ParseLevel(level string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// AttachFile adds a rotating JSON log file to the current logger.
// Entries below level are not written to the file; console output keeps
// its own level. Calling it again replaces the previous file.
func AttachFile(level, path string) error {
	if path == "" {
		return fmt.Errorf("log file path is empty")
	}

	if baseCore == nil {
		baseCore = GetLogger().Core()
	}
	closeFile()

	fileWriter = &lumberjack.Logger{
		Filename:   path,
		MaxSize:    fileMaxSizeMB,
		MaxBackups: fileMaxBackups,
		MaxAge:     fileMaxAgeDays,
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	fileCore := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(fileWriter),
		ParseLevel(level),
	)

	logger = zap.New(zapcore.NewTee(baseCore, fileCore), zap.AddCaller())
	return nil
}

// GetLogger returns the global logger instance
func GetLogger() *zap.Logger {
	if logger == nil {
		// Silent until initialized
		logger = zap.NewNop()
	}
	return logger
}

// Info logs an info message
func Info(msg string, fields ...zap.Field) {
	GetLogger().Info(msg, fields...)
}

// Debug logs a debug message
func Debug(msg string, fields ...zap.Field) {
	GetLogger().Debug(msg, fields...)
}

// Warn logs a warning message
func Warn(msg string, fields ...zap.Field) {
	GetLogger().Warn(msg, fields...)
}

// Error logs an error message
func Error(msg string, fields ...zap.Field) {
	GetLogger().Error(msg, fields...)
}

// LogConfigEvent logs a configuration file event ("loaded", "saved", "bootstrapped")
func LogConfigEvent(path string, event string) {
	Info("Config event",
		zap.String("path", path),
		zap.String("event", event),
	)
}

// LogStateChange logs a change to one device state field
func LogStateChange(field string, oldValue, newValue any) {
	Info("State changed",
		zap.String("field", field),
		zap.Any("old", oldValue),
		zap.Any("new", newValue),
	)
}

// Sync flushes any buffered log entries and closes the attached log file
func Sync() {
	if logger != nil {
		_ = logger.Sync()
	}
	closeFile()
}

func closeFile() {
	if fileWriter != nil {
		_ = fileWriter.Close()
		fileWriter = nil
	}
}
