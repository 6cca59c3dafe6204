package cli

import "go.uber.org/zap"

// debugLogger wraps zap for verbose discovery tracing.
type debugLogger struct {
	sugared *zap.SugaredLogger
}

func newDebugLogger(verbose bool) *debugLogger {
	if !verbose {
		return &debugLogger{}
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	cfg.Encoding = "json"
	logger, _ := cfg.Build()
	return &debugLogger{sugared: logger.Sugar()}
}

func (l *debugLogger) Debug(format string, args ...interface{}) {
	if l.sugared == nil {
		return
	}
	l.sugared.Debugf(format, args...)
}

// Sugared exposes the underlying logger for the pipeline; nil when quiet.
func (l *debugLogger) Sugared() *zap.SugaredLogger {
	if l == nil {
		return nil
	}
	return l.sugared
}
