package dbbadger

import (
	"strings"

	log "github.com/sirupsen/logrus"
)

// Logger forwards badger logs to logrus. Badger's info messages are very
// verbose and are demoted to debug level.
type Logger struct {
	entry *log.Entry
}

// NewLogger returns a badger.Logger backed by the standard logrus logger.
func NewLogger() *Logger {
	return &Logger{log.WithField("module", "badger")}
}

func (l *Logger) Errorf(format string, args ...interface{}) {
	l.entry.Errorf(trim(format), args...)
}

func (l *Logger) Warningf(format string, args ...interface{}) {
	l.entry.Warnf(trim(format), args...)
}

func (l *Logger) Infof(format string, args ...interface{}) {
	l.entry.Debugf(trim(format), args...)
}

func (l *Logger) Debugf(format string, args ...interface{}) {
	l.entry.Tracef(trim(format), args...)
}

func trim(format string) string {
	return strings.TrimSuffix(format, "\n")
}
