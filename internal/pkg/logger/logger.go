package logger

import (
	"os"

	"github.com/sirupsen/logrus"

	"github.com/hailgo/hailcore/internal/pkg/models"
)

// AppLogger wraps logrus with the application's output conventions
type AppLogger struct {
	*logrus.Logger
}

// NewAppLogger creates the application logger. Debug builds log text to
// stdout; everything else emits JSON for log shipping.
func NewAppLogger(cfg models.AppConfig) *AppLogger {
	l := logrus.New()
	l.SetOutput(os.Stdout)

	if cfg.Debug {
		l.SetLevel(logrus.DebugLevel)
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		l.SetLevel(logrus.InfoLevel)
		l.SetFormatter(&logrus.JSONFormatter{})
	}

	return &AppLogger{Logger: l}
}

// WithComponent tags entries with the emitting component name
func (l *AppLogger) WithComponent(name string) *logrus.Entry {
	return l.WithField("component", name)
}
