// Package logging provides leveled, structured logging for numstep.
//
// Logger keeps a small printf-style API (Debug, Info, Warn, Error with
// format arguments, plus WithField/WithComponent) on top of zap.
package logging

import (
	"io"
	"os"
	"sort"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Level represents the severity level of a log message.
type Level int

const (
	// LevelDebug is for detailed debugging information.
	LevelDebug Level = iota
	// LevelInfo is for general informational messages.
	LevelInfo
	// LevelWarn is for warning messages.
	LevelWarn
	// LevelError is for error messages.
	LevelError
)

// String returns the string representation of the log level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

func (l Level) zap() zapcore.Level {
	switch l {
	case LevelDebug:
		return zapcore.DebugLevel
	case LevelWarn:
		return zapcore.WarnLevel
	case LevelError:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// ParseLevel parses a string into a Level. Unknown names map to LevelInfo.
func ParseLevel(s string) Level {
	switch s {
	case "debug", "DEBUG":
		return LevelDebug
	case "info", "INFO":
		return LevelInfo
	case "warn", "WARN", "warning", "WARNING":
		return LevelWarn
	case "error", "ERROR":
		return LevelError
	default:
		return LevelInfo
	}
}

// Config configures a Logger.
type Config struct {
	// Level is the minimum log level to output.
	Level Level
	// Output is where logs are written. Defaults to os.Stderr.
	Output io.Writer
	// Name is attached to every entry.
	Name string
	// JSON selects the JSON encoder instead of the console one.
	JSON bool
}

// DefaultConfig returns the default logger configuration.
func DefaultConfig() Config {
	return Config{
		Level:  LevelInfo,
		Output: os.Stderr,
		Name:   "numstep",
	}
}

// Logger provides structured logging.
// Loggers derived with WithField share the level of their parent.
type Logger struct {
	sugar    *zap.SugaredLogger
	level    zap.AtomicLevel
	disabled *atomic.Bool
}

// New creates a logger with the given configuration.
func New(cfg Config) *Logger {
	if cfg.Output == nil {
		cfg.Output = os.Stderr
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "ts"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	var enc zapcore.Encoder
	if cfg.JSON {
		enc = zapcore.NewJSONEncoder(encCfg)
	} else {
		enc = zapcore.NewConsoleEncoder(encCfg)
	}

	level := zap.NewAtomicLevelAt(cfg.Level.zap())
	core := zapcore.NewCore(enc, zapcore.AddSync(cfg.Output), level)

	return &Logger{
		sugar:    zap.New(core).Named(cfg.Name).Sugar(),
		level:    level,
		disabled: new(atomic.Bool),
	}
}

// WithField returns a new logger with the given field added.
func (l *Logger) WithField(key string, value any) *Logger {
	return l.derive(l.sugar.With(key, value))
}

// WithFields returns a new logger with the given fields added, in key order.
func (l *Logger) WithFields(fields map[string]any) *Logger {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	args := make([]any, 0, 2*len(keys))
	for _, k := range keys {
		args = append(args, k, fields[k])
	}
	return l.derive(l.sugar.With(args...))
}

// WithComponent returns a new logger with the component field set.
func (l *Logger) WithComponent(component string) *Logger {
	return l.WithField("component", component)
}

func (l *Logger) derive(s *zap.SugaredLogger) *Logger {
	return &Logger{sugar: s, level: l.level, disabled: l.disabled}
}

// SetLevel sets the minimum log level.
func (l *Logger) SetLevel(level Level) {
	l.level.SetLevel(level.zap())
}

// Disable disables all logging.
func (l *Logger) Disable() {
	l.disabled.Store(true)
}

// Enable enables logging.
func (l *Logger) Enable() {
	l.disabled.Store(false)
}

// Debug logs a debug message.
func (l *Logger) Debug(msg string, args ...any) {
	if !l.disabled.Load() {
		l.sugar.Debugf(msg, args...)
	}
}

// Info logs an info message.
func (l *Logger) Info(msg string, args ...any) {
	if !l.disabled.Load() {
		l.sugar.Infof(msg, args...)
	}
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string, args ...any) {
	if !l.disabled.Load() {
		l.sugar.Warnf(msg, args...)
	}
}

// Error logs an error message.
func (l *Logger) Error(msg string, args ...any) {
	if !l.disabled.Load() {
		l.sugar.Errorf(msg, args...)
	}
}

// Sync flushes buffered entries.
func (l *Logger) Sync() error {
	return l.sugar.Sync()
}

// Nop returns a logger that discards all output.
func Nop() *Logger {
	disabled := new(atomic.Bool)
	disabled.Store(true)
	return &Logger{
		sugar:    zap.NewNop().Sugar(),
		level:    zap.NewAtomicLevelAt(zapcore.ErrorLevel),
		disabled: disabled,
	}
}

var (
	global     *Logger
	globalMu   sync.RWMutex
	globalOnce sync.Once
)

// Get returns the process-wide logger, creating a default one on first use.
func Get() *Logger {
	globalOnce.Do(func() {
		globalMu.Lock()
		if global == nil {
			global = New(DefaultConfig())
		}
		globalMu.Unlock()
	})
	globalMu.RLock()
	defer globalMu.RUnlock()
	return global
}

// Set replaces the process-wide logger.
func Set(l *Logger) {
	globalMu.Lock()
	defer globalMu.Unlock()
	global = l
}
