package shapekit

import "log/slog"

// Logger is the structured logging interface accepted by the shapekit
// engines ([keypath.Enumerator], [merge.Merger]).
//
// It mirrors the log/slog calling convention: attrs are alternating
// key-value pairs.
//
//	logger.Debug("depth bound reached", "path", "a.b.c", "max_depth", 10)
//
// Use [NewSlogAdapter] to plug in a *slog.Logger. Other logging libraries
// (zap, zerolog) only need a five-method adapter.
type Logger interface {
	Debug(msg string, attrs ...any)
	Info(msg string, attrs ...any)
	Warn(msg string, attrs ...any)
	Error(msg string, attrs ...any)

	// With returns a Logger that prepends attrs to every record.
	With(attrs ...any) Logger
}

// NopLogger discards all output. It is the default for every engine.
type NopLogger struct{}

// Debug implements Logger.
func (NopLogger) Debug(_ string, _ ...any) {}

// Info implements Logger.
func (NopLogger) Info(_ string, _ ...any) {}

// Warn implements Logger.
func (NopLogger) Warn(_ string, _ ...any) {}

// Error implements Logger.
func (NopLogger) Error(_ string, _ ...any) {}

// With implements Logger.
func (n NopLogger) With(_ ...any) Logger { return n }

var _ Logger = NopLogger{}

// SlogAdapter wraps a *slog.Logger to implement the Logger interface.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter creates a new SlogAdapter from a *slog.Logger.
// If logger is nil, slog.Default() is used.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogAdapter{logger: logger}
}

// Debug implements Logger.
func (s *SlogAdapter) Debug(msg string, attrs ...any) {
	s.logger.Debug(msg, attrs...)
}

// Info implements Logger.
func (s *SlogAdapter) Info(msg string, attrs ...any) {
	s.logger.Info(msg, attrs...)
}

// Warn implements Logger.
func (s *SlogAdapter) Warn(msg string, attrs ...any) {
	s.logger.Warn(msg, attrs...)
}

// Error implements Logger.
func (s *SlogAdapter) Error(msg string, attrs ...any) {
	s.logger.Error(msg, attrs...)
}

// With implements Logger.
func (s *SlogAdapter) With(attrs ...any) Logger {
	return &SlogAdapter{logger: s.logger.With(attrs...)}
}

var _ Logger = (*SlogAdapter)(nil)

// LoggerOrNop returns l, or a NopLogger when l is nil.
func LoggerOrNop(l Logger) Logger {
	if l == nil {
		return NopLogger{}
	}
	return l
}
