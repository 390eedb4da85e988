package log

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Verbose controls whether debug messages are being printed.
var Verbose bool

var logger = logrus.New()

func init() {
	logger.SetOutput(os.Stderr)
	logger.SetLevel(logrus.DebugLevel)
	logger.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
}

// Debug prints a formatted debug message if verbose output is selected.
func Debug(format string, a ...interface{}) {
	if Verbose {
		logger.Debugf(format, a...)
	}
}

// Log prints a formatted message.
func Log(format string, a ...interface{}) {
	logger.Infof(format, a...)
}

// Warning prints a formatted warning.
func Warning(format string, a ...interface{}) {
	logger.Warnf(format, a...)
}

// Error prints a formatted error message.
func Error(format string, a ...interface{}) {
	logger.Errorf(format, a...)
}

// Fatal prints a formatted error message and terminates the program.
func Fatal(format string, a ...interface{}) {
	logger.Fatalf(format, a...)
}
