// Package log constructs the application logger.
package log

import (
	"os"

	"github.com/sirupsen/logrus"
)

// New creates a logrus logger writing to stderr at the given level, so log
// output never mixes with formatted query results on stdout.
func New(level logrus.Level) *logrus.Logger {
	logger := logrus.New()
	logger.Formatter = new(logrus.TextFormatter)
	logger.Level = level
	logger.Out = os.Stderr
	return logger
}
