package jsondiffpatch

import "github.com/sirupsen/logrus"

// Logger is the structured logging surface this engine uses. It is
// intentionally small: the only place the algorithm itself logs is a
// per-hunk text-diff application failure (see text_diff.go), logged at
// Warn and not treated as fatal unless every hunk in the patch fails.
type Logger interface {
	Warn(msg string, fields map[string]any)
}

// nopLogger discards everything; it is the default when no Logger is
// configured via WithLogger.
type nopLogger struct{}

func (nopLogger) Warn(string, map[string]any) {}

// LogrusLogger adapts a *logrus.Logger (or logrus.StandardLogger()) to
// the Logger interface.
type LogrusLogger struct {
	entry *logrus.Entry
}

// NewLogrusLogger wraps l. A nil l uses logrus's standard logger.
func NewLogrusLogger(l *logrus.Logger) *LogrusLogger {
	if l == nil {
		l = logrus.StandardLogger()
	}
	return &LogrusLogger{entry: logrus.NewEntry(l)}
}

func (l *LogrusLogger) Warn(msg string, fields map[string]any) {
	l.entry.WithFields(logrus.Fields(fields)).Warn(msg)
}
